package forms

import "github.com/go-playground/validator/v10"

// LoginForm mirrors the login view's inputs, one named field per input.
type LoginForm struct {
	Username string `json:"username" validate:"notblank"`
	Password string `json:"password" validate:"required,min=6"`
}

// LoginErrors carries one message per field; empty string means no error.
type LoginErrors struct {
	Username string `json:"username,omitempty"`
	Password string `json:"password,omitempty"`
}

// ValidateLogin checks the form and reports per-field messages plus overall
// validity. Pure function of the field values.
func ValidateLogin(form LoginForm) (LoginErrors, bool) {
	var errs LoginErrors
	err := validate.Struct(form)
	if err == nil {
		return errs, true
	}

	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return errs, false
	}
	for _, fe := range fieldErrs {
		switch fe.StructField() {
		case "Username":
			errs.Username = "Username is required"
		case "Password":
			if fe.Tag() == "required" {
				errs.Password = "Password is required"
			} else {
				errs.Password = "Password must be at least 6 characters"
			}
		}
	}
	return errs, false
}
