package forms

import "github.com/go-playground/validator/v10"

// SignupForm mirrors the signup view's inputs, one named field per input.
type SignupForm struct {
	FirstName       string `json:"first_name" validate:"notblank"`
	LastName        string `json:"last_name" validate:"notblank"`
	Email           string `json:"email" validate:"notblank,emailshape"`
	Mobile          string `json:"mobile" validate:"notblank,mobile"`
	Address         string `json:"address" validate:"notblank"`
	Password        string `json:"password" validate:"required,min=8,passwordchars"`
	ConfirmPassword string `json:"confirm_password" validate:"required,eqfield=Password"`
}

// SignupErrors carries one message per field; empty string means no error.
type SignupErrors struct {
	FirstName       string `json:"first_name,omitempty"`
	LastName        string `json:"last_name,omitempty"`
	Email           string `json:"email,omitempty"`
	Mobile          string `json:"mobile,omitempty"`
	Address         string `json:"address,omitempty"`
	Password        string `json:"password,omitempty"`
	ConfirmPassword string `json:"confirm_password,omitempty"`
}

// ValidateSignup checks the form and reports per-field messages plus overall
// validity. Pure function of the field values.
func ValidateSignup(form SignupForm) (SignupErrors, bool) {
	var errs SignupErrors
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
		case "FirstName":
			errs.FirstName = "First name is required"
		case "LastName":
			errs.LastName = "Last name is required"
		case "Email":
			if fe.Tag() == "notblank" {
				errs.Email = "Email is required"
			} else {
				errs.Email = "Please enter a valid email address"
			}
		case "Mobile":
			if fe.Tag() == "notblank" {
				errs.Mobile = "Mobile number is required"
			} else {
				errs.Mobile = "Please enter a valid mobile number"
			}
		case "Address":
			errs.Address = "Address is required"
		case "Password":
			switch fe.Tag() {
			case "required":
				errs.Password = "Password is required"
			case "min":
				errs.Password = "Password must be at least 8 characters"
			default:
				errs.Password = "Password must contain uppercase, lowercase and numbers"
			}
		case "ConfirmPassword":
			if fe.Tag() == "required" {
				errs.ConfirmPassword = "Please confirm your password"
			} else {
				errs.ConfirmPassword = "Passwords do not match"
			}
		}
	}
	return errs, false
}
