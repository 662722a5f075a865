package validator

import (
	"errors"
	"reflect"
	"regexp"
	"strings"
	"time"

	playground "github.com/go-playground/validator/v10"
)

type ValidationError struct {
	Field   string
	Message string
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	var msgs []string
	for _, err := range v {
		msgs = append(msgs, err.Field+": "+err.Message)
	}
	return strings.Join(msgs, "; ")
}

func (v ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string)
	for _, err := range v {
		result[err.Field] = err.Message
	}
	return result
}

// IsEmpty checks if a string is empty after trimming whitespace.
func IsEmpty(s string) bool {
	return strings.TrimSpace(s) == ""
}

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// Email validation
func IsValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

var isoDateRegex = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// IsValidDate accepts only ISO YYYY-MM-DD strings naming a real calendar day.
func IsValidDate(dateStr string) (time.Time, bool) {
	if !isoDateRegex.MatchString(dateStr) {
		return time.Time{}, false
	}
	date, err := time.Parse("2006-01-02", dateStr)
	return date, err == nil
}

var clockRegex = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)

// IsValidClock checks a 24-hour HH:MM time of day.
func IsValidClock(s string) bool {
	return clockRegex.MatchString(s)
}

var validate = newValidate()

func newValidate() *playground.Validate {
	v := playground.New(playground.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})
	_ = v.RegisterValidation("clock", func(fl playground.FieldLevel) bool {
		s := fl.Field().String()
		return s == "" || IsValidClock(s)
	})
	_ = v.RegisterValidation("isodate", func(fl playground.FieldLevel) bool {
		_, ok := IsValidDate(fl.Field().String())
		return ok
	})
	return v
}

// Struct validates tagged request structs and converts failures into ValidationErrors.
func Struct(v interface{}) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var fieldErrs playground.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	errs := make(ValidationErrors, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		errs = append(errs, ValidationError{
			Field:   fe.Field(),
			Message: formatFieldError(fe),
		})
	}
	return errs
}

func formatFieldError(fe playground.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "email":
		return "must be a valid email address"
	case "max":
		return "must be at most " + fe.Param() + " characters"
	case "oneof":
		return "must be one of: " + fe.Param()
	case "clock":
		return "must be a time in HH:MM format"
	case "isodate":
		return "must be a date in YYYY-MM-DD format"
	case "gt":
		return "must be greater than " + fe.Param()
	default:
		return "invalid value"
	}
}
