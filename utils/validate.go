package utils

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// ValidateStruct runs the validate tags of payload. Failures come back as ValidationErrors
// keyed by json field name.
func ValidateStruct(payload any) error {
	err := validate.Struct(payload)
	if err == nil {
		return nil
	}

	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	out := make(ValidationErrors, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		out = append(out, NewValidationError(fe.Field(), fe.Value(), describeRule(fe.Tag(), fe.Param())))
	}
	return out
}

func describeRule(tag, param string) string {
	switch tag {
	case "required":
		return "This field is required."
	case "oneof":
		return fmt.Sprintf("Must be one of: %s.", strings.ReplaceAll(param, " ", ", "))
	case "gt":
		return fmt.Sprintf("Must be greater than %s.", param)
	case "gte", "min":
		return fmt.Sprintf("Must be at least %s.", param)
	case "max":
		return fmt.Sprintf("Must be at most %s.", param)
	case "email":
		return "Enter a valid email address."
	default:
		return fmt.Sprintf("Failed on the '%s' rule.", tag)
	}
}
