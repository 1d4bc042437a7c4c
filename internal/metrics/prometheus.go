package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// PrometheusRecorder exposes counters to a Prometheus registry.
// Served over the /metrics endpoint via promhttp.
type PrometheusRecorder struct {
	usersCreated      prometheus.Counter
	usersDeleted      prometheus.Counter
	ordersCreated     prometheus.Counter
	validationsFailed prometheus.Counter
	conflicts         prometheus.Counter
	dataResets        prometheus.Counter
}

// NewPrometheus returns a Recorder registered with the default registry.
func NewPrometheus() *PrometheusRecorder {
	return NewPrometheusWith(prometheus.DefaultRegisterer)
}

// NewPrometheusWith returns a Recorder registered with the given registerer.
func NewPrometheusWith(reg prometheus.Registerer) *PrometheusRecorder {
	factory := promauto.With(reg)
	return &PrometheusRecorder{
		usersCreated: factory.NewCounter(prometheus.CounterOpts{
			Name: "orderdesk_users_created_total",
			Help: "Number of users created.",
		}),
		usersDeleted: factory.NewCounter(prometheus.CounterOpts{
			Name: "orderdesk_users_deleted_total",
			Help: "Number of users deleted.",
		}),
		ordersCreated: factory.NewCounter(prometheus.CounterOpts{
			Name: "orderdesk_orders_created_total",
			Help: "Number of orders created.",
		}),
		validationsFailed: factory.NewCounter(prometheus.CounterOpts{
			Name: "orderdesk_validation_failures_total",
			Help: "Number of create requests rejected by validation.",
		}),
		conflicts: factory.NewCounter(prometheus.CounterOpts{
			Name: "orderdesk_conflicts_total",
			Help: "Number of create requests rejected by uniqueness constraints.",
		}),
		dataResets: factory.NewCounter(prometheus.CounterOpts{
			Name: "orderdesk_data_resets_total",
			Help: "Number of bulk data resets.",
		}),
	}
}

func (p *PrometheusRecorder) IncUserCreated()      { p.usersCreated.Inc() }
func (p *PrometheusRecorder) IncUserDeleted()      { p.usersDeleted.Inc() }
func (p *PrometheusRecorder) IncOrderCreated()     { p.ordersCreated.Inc() }
func (p *PrometheusRecorder) IncValidationFailed() { p.validationsFailed.Inc() }
func (p *PrometheusRecorder) IncConflict()         { p.conflicts.Inc() }
func (p *PrometheusRecorder) IncDataReset()        { p.dataResets.Inc() }
