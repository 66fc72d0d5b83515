package forms

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

var (
	emailShapeRe   = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	mobileDigitsRe = regexp.MustCompile(`^\d{10,15}$`)
	mobileStripRe  = regexp.MustCompile(`[-()\s]`)
)

func newValidator() *validator.Validate {
	v := validator.New()

	// Presence after trimming, matching how the forms treat text inputs.
	v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})

	v.RegisterValidation("emailshape", func(fl validator.FieldLevel) bool {
		return emailShapeRe.MatchString(fl.Field().String())
	})

	// 10-15 digits once separator characters and whitespace are stripped.
	v.RegisterValidation("mobile", func(fl validator.FieldLevel) bool {
		stripped := mobileStripRe.ReplaceAllString(fl.Field().String(), "")
		return mobileDigitsRe.MatchString(stripped)
	})

	v.RegisterValidation("passwordchars", func(fl validator.FieldLevel) bool {
		var hasLower, hasUpper, hasDigit bool
		for _, r := range fl.Field().String() {
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
	})

	return v
}
