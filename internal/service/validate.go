package service

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

// CreateUserInput defines input for creating a user.
//
// The email rule is deliberately permissive ("contains @ and ."): the strict
// validator email tag would silently reject addresses the API historically
// accepted.
type CreateUserInput struct {
	Name  string `validate:"notblank,max=100"`
	Email string `validate:"notblank,looseemail"`
}

// newValidator builds the request validator with the custom tags used above.
func newValidator() *validator.Validate {
	v := validator.New()

	// required, but treating whitespace-only values as missing
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})

	_ = v.RegisterValidation("looseemail", func(fl validator.FieldLevel) bool {
		email := fl.Field().String()
		return strings.Contains(email, "@") && strings.Contains(email, ".")
	})

	return v
}

// validateCreateUser checks input and returns every violation found, not just
// the first. Pure: no store access; uniqueness is enforced separately.
func (s *Service) validateCreateUser(input CreateUserInput) []string {
	err := s.validate.Struct(input)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return []string{"invalid request"}
	}

	violations := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		violations = append(violations, violationMessage(fe))
	}
	return violations
}

func violationMessage(fe validator.FieldError) string {
	switch fe.StructField() {
	case "Name":
		if fe.Tag() == "max" {
			return "name must not exceed 100 characters"
		}
		return "name is required"
	case "Email":
		if fe.Tag() == "looseemail" {
			return "email format is invalid"
		}
		return "email is required"
	default:
		return strings.ToLower(fe.StructField()) + " is invalid"
	}
}
