package validator

import (
	"log"

	"lye_backend/internal/models"

	"github.com/go-playground/validator/v10"
)

// registerCustomRules installs the domain validation tags. Empty values
// pass every custom rule; 'required' handles presence separately.
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			// A broken rule registration is a startup error.
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	mustRegister("is-user-role", validateUserRole)
	mustRegister("is-materia", validateMateria)
	mustRegister("is-school-grade", validateSchoolGrade)
}

func validateUserRole(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch models.UserRole(value) {
	case models.UserRoleResearcher, models.UserRoleAdmin, models.UserRoleRoot:
		return true
	default:
		return false
	}
}

func validateMateria(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return models.IsValidMateria(value)
}

func validateSchoolGrade(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return models.IsValidSchoolGrade(value)
}
