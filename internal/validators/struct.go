package validators

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/BruksfildServices01/academy-scheduler/internal/domain/availability"
)

// New returns a validator that reports fields by their json name and knows
// the academy's custom tags: contact (e-mail or phone) and hhmm (time of day).
func New() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("contact", func(fl validator.FieldLevel) bool {
		return IsContact(fl.Field().String())
	})
	_ = v.RegisterValidation("hhmm", func(fl validator.FieldLevel) bool {
		_, err := availability.ParseTimeOfDay(fl.Field().String())
		return err == nil
	})
	return v
}

// Fields flattens validator errors into a field -> message map. ok is false
// when err is not a validation failure.
func Fields(err error) (fields map[string]string, ok bool) {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil, false
	}
	fields = make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[fe.Field()] = Message(fe)
	}
	return fields, true
}

func Message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "required"
	case "gt":
		return "must be positive"
	case "gte":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "lte":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "datetime":
		return "must be YYYY-MM-DD"
	case "contact":
		return "must be an e-mail or phone number"
	case "email":
		return "must be an e-mail address"
	case "hhmm":
		return "must be HH:MM"
	case "oneof":
		return "must be one of " + fe.Param()
	case "max":
		return fmt.Sprintf("at most %s characters", fe.Param())
	default:
		return "invalid"
	}
}
