package validator

import "github.com/go-playground/validator/v10"

// registerCustomRules wires portal-specific validation tags.
func registerCustomRules(v *validator.Validate) {
	// userrole: the only roles a signup form may choose. Admin is never
	// self-assigned; it exists only through the hardcoded login.
	_ = v.RegisterValidation("userrole", func(fl validator.FieldLevel) bool {
		switch fl.Field().String() {
		case "applicant", "employer":
			return true
		}
		return false
	})
}
