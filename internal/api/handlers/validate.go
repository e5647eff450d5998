package handlers

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

var usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)

func newValidator() *validator.Validate {
	v := validator.New()

	// Report json field names, not Go struct field names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	v.RegisterValidation("username_chars", func(fl validator.FieldLevel) bool {
		return usernamePattern.MatchString(fl.Field().String())
	})

	v.RegisterValidation("password_complexity", func(fl validator.FieldLevel) bool {
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

// fieldErrors translates validator failures into the per-field messages the
// frontend renders next to each input.
func fieldErrors(err error) []FieldError {
	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []FieldError{{Field: "", Message: "Invalid request"}}
	}

	errs := make([]FieldError, 0, len(validationErrs))
	for _, fe := range validationErrs {
		errs = append(errs, FieldError{
			Field:   fe.Field(),
			Message: fieldMessage(fe),
		})
	}
	return errs
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Field() {
	case "username":
		switch fe.Tag() {
		case "required":
			return "Username is required"
		case "min":
			return "Username must be at least 3 characters"
		case "max":
			return "Username must be less than 50 characters"
		case "username_chars":
			return "Username can only contain letters, numbers, and underscores"
		}
	case "email":
		switch fe.Tag() {
		case "required":
			return "Email is required"
		case "email":
			return "Invalid email address"
		case "max":
			return "Email must be less than 100 characters"
		}
	case "password":
		switch fe.Tag() {
		case "required":
			return "Password is required"
		case "min":
			return "Password must be at least 8 characters"
		case "max":
			return "Password must be less than 100 characters"
		case "password_complexity":
			return "Password must contain at least one lowercase letter, one uppercase letter, and one number"
		}
	}
	return fmt.Sprintf("Invalid value for %s", fe.Field())
}
