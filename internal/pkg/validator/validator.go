package validator

import (
	"reflect"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// DateLayout is the calendar date format accepted from clients.
const DateLayout = "2006-01-02"

var (
	// Same patterns as the form page script.
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern = regexp.MustCompile(`^[\d\s+\-()]{6,20}$`)
)

// Validator instance
var validate *validator.Validate

func init() {
	validate = validator.New()

	// Use JSON tag names in error messages
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// Register custom validations
	registerCustomValidations()
}

func registerCustomValidations() {
	// Contact email, same rule as the form page
	validate.RegisterValidation("booking_email", func(fl validator.FieldLevel) bool {
		return IsBookingEmail(fl.Field().String())
	})

	// Digits, spaces, plus, dash and parentheses, 6 to 20 characters
	validate.RegisterValidation("booking_phone", func(fl validator.FieldLevel) bool {
		return IsBookingPhone(fl.Field().String())
	})

	// YYYY-MM-DD calendar date
	validate.RegisterValidation("booking_date", func(fl validator.FieldLevel) bool {
		_, err := time.Parse(DateLayout, fl.Field().String())
		return err == nil
	})
}

// IsBookingEmail reports whether s looks like a deliverable address.
func IsBookingEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// IsBookingPhone reports whether s looks like a phone number.
func IsBookingPhone(s string) bool {
	return phonePattern.MatchString(s)
}

// Validate validates a struct and returns a map of field errors
func Validate(s interface{}) map[string]string {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return map[string]string{"_": err.Error()}
	}

	errors := make(map[string]string)
	for _, err := range verrs {
		field := err.Field()
		switch err.Tag() {
		case "required":
			errors[field] = "This field is required"
		case "email", "booking_email":
			errors[field] = "Invalid email format"
		case "booking_phone":
			errors[field] = "Invalid phone number"
		case "booking_date":
			errors[field] = "Date must use the YYYY-MM-DD format"
		case "min":
			errors[field] = "Value is too short (min: " + err.Param() + ")"
		case "max":
			errors[field] = "Value is too long (max: " + err.Param() + ")"
		default:
			errors[field] = "Invalid value"
		}
	}

	return errors
}
