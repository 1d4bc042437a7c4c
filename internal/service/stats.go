package service

import (
	"sort"

	"github.com/orderdesk/orderdesk/internal/model"
)

// DefaultTopUsers is the ranking size when the caller does not ask for one.
const DefaultTopUsers = 5

// Stats holds aggregate statistics over all users and orders.
type Stats struct {
	TotalUsers   int     `json:"totalUsers"`
	ActiveUsers  int     `json:"activeUsers"`
	TotalOrders  int     `json:"totalOrders"`
	TotalRevenue float64 `json:"totalRevenue"`
}

// Stats computes counts and total revenue across the whole data set.
func (s *Service) Stats() Stats {
	users := s.users.List()

	active := 0
	for _, u := range users {
		if u.IsActive() {
			active++
		}
	}

	orders := s.orders.List()
	var revenue float64
	for _, o := range orders {
		revenue += o.Total
	}

	return Stats{
		TotalUsers:   len(users),
		ActiveUsers:  active,
		TotalOrders:  len(orders),
		TotalRevenue: revenue,
	}
}

// UserRanking is one entry of the top-users view.
type UserRanking struct {
	User       model.User `json:"user"`
	OrderCount int        `json:"orderCount"`
	TotalSpent float64    `json:"totalSpent"`
}

// TopUsers ranks users by order count, descending. Equal counts are broken
// by ascending user ID so rankings are deterministic. Returns at most limit
// entries; a non-positive limit falls back to DefaultTopUsers.
func (s *Service) TopUsers(limit int) []UserRanking {
	if limit <= 0 {
		limit = DefaultTopUsers
	}

	users := s.users.List()
	rankings := make([]UserRanking, 0, len(users))
	for _, u := range users {
		orders := s.ordersOf(u.ID)

		var spent float64
		for _, o := range orders {
			spent += o.Total
		}

		rankings = append(rankings, UserRanking{
			User:       u,
			OrderCount: len(orders),
			TotalSpent: spent,
		})
	}

	sort.Slice(rankings, func(i, j int) bool {
		if rankings[i].OrderCount != rankings[j].OrderCount {
			return rankings[i].OrderCount > rankings[j].OrderCount
		}
		return rankings[i].User.ID < rankings[j].User.ID
	})

	if len(rankings) > limit {
		rankings = rankings[:limit]
	}
	return rankings
}
