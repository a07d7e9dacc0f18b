package handler

import (
	"errors"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/mveiros/ironwood-companion/internal/domain"
)

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

// getValidator returns the process-wide request validator.
func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()
		_ = validate.RegisterValidation("skill", validateSkill)
	})
	return validate
}

func validateSkill(fl validator.FieldLevel) bool {
	return domain.Skill(fl.Field().String()).IsValid()
}

// formatValidationError turns validator errors into a field→message map
// without leaking internal struct names.
func formatValidationError(err error) map[string]string {
	if err == nil {
		return nil
	}

	errs := make(map[string]string)

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		errs["error"] = "Invalid request format"
		return errs
	}

	for _, e := range validationErrors {
		field := strings.ToLower(e.Field())
		switch e.Tag() {
		case "required":
			errs[field] = "is required"
		case "skill":
			errs[field] = "is not a known skill"
		case "min":
			errs[field] = "is below the minimum of " + e.Param()
		case "max":
			errs[field] = "is above the maximum of " + e.Param()
		default:
			errs[field] = "is invalid"
		}
	}
	return errs
}
