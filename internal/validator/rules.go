package validator

import (
	"log"
	"strings"
	"unicode"

	"internhub_backend/internal/models"

	"github.com/go-playground/validator/v10"
)

// registerCustomRules installs the domain validation tags. Registration
// failures abort startup.
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	mustRegister("is-user-role", validateUserRole)
	mustRegister("is-application-status", validateApplicationStatus)
	mustRegister("is-company-size", validateCompanySize)
	mustRegister("password-strength", validatePasswordStrength)
}

func validateUserRole(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true // empty is handled by 'required'
	}
	switch models.UserRole(value) {
	case models.UserRoleStudent, models.UserRoleCompany:
		return true
	default:
		return false
	}
}

// validateApplicationStatus accepts only the statuses a company may set,
// in either casing. PENDING is the initial state and never a valid
// transition target.
func validateApplicationStatus(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch models.ApplicationStatus(strings.ToUpper(value)) {
	case models.ApplicationStatusAccepted, models.ApplicationStatusRejected:
		return true
	default:
		return false
	}
}

func validateCompanySize(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch models.CompanySize(value) {
	case models.CompanySizeStartup, models.CompanySizeSmall, models.CompanySizeMedium,
		models.CompanySizeLarge, models.CompanySizeEnterprise:
		return true
	default:
		return false
	}
}

// validatePasswordStrength requires at least one lowercase letter, one
// uppercase letter and one digit.
func validatePasswordStrength(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}

	var hasLower, hasUpper, hasDigit bool
	for _, r := range value {
		switch {
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	return hasLower && hasUpper && hasDigit
}
