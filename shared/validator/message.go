package validator

import (
	"errors"
	"strings"

	val "github.com/go-playground/validator/v10"
)

// templates maps a validation tag to the message shown to desk staff.
var templates = map[string]string{
	"required": "{field} is required",
	"gte":      "{field} must be greater than or equal to {param}",
	"lte":      "{field} must be less than or equal to {param}",
	"oneof":    "{field} must be one of {param}",
	"max":      "{field} must be less than or equal to {param}",
	"min":      "{field} must be greater than or equal to {param}",
	"email":    "{field} must be a valid email address",
	"url":      "{field} must be a valid URL",
	"uuid":     "{field} must be a valid id",
	"day":      "{field} must be a date formatted as YYYY-MM-DD",
	"clock":    "{field} must be a time formatted as hh:mm AM/PM",
	"notblank": "{field} must not be blank",
}

func describe(fieldErr val.FieldError) (string, bool) {
	template, ok := templates[fieldErr.Tag()]
	if !ok {
		return "", false
	}

	replacer := strings.NewReplacer("{field}", fieldErr.Field(), "{param}", fieldErr.Param())

	return replacer.Replace(template), true
}

// message returns the first describable field error, so one request gets one sentence.
func message(err error) string {
	var fieldErrors val.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return err.Error()
	}

	for _, fieldErr := range fieldErrors {
		if msg, ok := describe(fieldErr); ok {
			return msg
		}
	}

	return fieldErrors.Error()
}
