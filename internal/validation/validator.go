// Tripwise - Travel Recommendation and Trip Budget Estimation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tripwise

package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/tomtom215/tripwise/internal/models"
)

// ErrorCode is the API error code for every validation failure.
const ErrorCode = "VALIDATION_ERROR"

var (
	shared     *validator.Validate
	sharedOnce sync.Once
)

// GetValidator returns the process-wide validator with the Tripwise tags
// registered. Field names in its errors are json names.
func GetValidator() *validator.Validate {
	sharedOnce.Do(func() {
		shared = newValidator()
	})
	return shared
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(jsonName)

	for tag, fn := range map[string]validator.Func{
		"month_name": isMonthName,
		"season":     isSeason,
	} {
		if err := v.RegisterValidation(tag, fn); err != nil {
			panic(fmt.Sprintf("validation: register %q: %v", tag, err))
		}
	}
	return v
}

func jsonName(fld reflect.StructField) string {
	name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
	switch name {
	case "", "-":
		return fld.Name
	default:
		return name
	}
}

// ValidationError is one failed constraint on one field.
type ValidationError struct {
	field   string
	tag     string
	param   string
	value   interface{}
	message string
}

// Field returns the json name of the failing field.
func (e *ValidationError) Field() string { return e.field }

// Tag returns the failing validate tag, e.g. "month_name".
func (e *ValidationError) Tag() string { return e.tag }

// Param returns the tag parameter ("50" for max=50).
func (e *ValidationError) Param() string { return e.param }

// Value returns the rejected value.
func (e *ValidationError) Value() interface{} { return e.value }

func (e *ValidationError) Error() string { return e.message }

// RequestValidationError collects every failed constraint of a request.
type RequestValidationError struct {
	errors []ValidationError
}

// Errors returns the individual failures in struct field order.
func (ve *RequestValidationError) Errors() []ValidationError {
	return ve.errors
}

func (ve *RequestValidationError) Error() string {
	if len(ve.errors) == 0 {
		return "validation failed"
	}
	parts := make([]string, len(ve.errors))
	for i := range ve.errors {
		parts[i] = ve.errors[i].message
	}
	return strings.Join(parts, "; ")
}

// APIError carries the fields of models.APIError without importing the
// api layer.
type APIError struct {
	Code    string
	Message string
	Details map[string]interface{}
}

// ToAPIError shapes the failures for an error response. A single failure
// reports its field, tag and value; several are listed under "fields".
func (ve *RequestValidationError) ToAPIError() *APIError {
	switch len(ve.errors) {
	case 0:
		return &APIError{Code: ErrorCode, Message: "Validation failed"}
	case 1:
		e := ve.errors[0]
		return &APIError{
			Code:    ErrorCode,
			Message: e.message,
			Details: map[string]interface{}{
				"field": e.field,
				"tag":   e.tag,
				"value": e.value,
			},
		}
	}

	fields := make([]map[string]interface{}, 0, len(ve.errors))
	lines := make([]string, 0, len(ve.errors))
	for _, e := range ve.errors {
		fields = append(fields, map[string]interface{}{
			"field":   e.field,
			"tag":     e.tag,
			"message": e.message,
		})
		lines = append(lines, e.field+": "+e.message)
	}
	return &APIError{
		Code:    ErrorCode,
		Message: strings.Join(lines, "; "),
		Details: map[string]interface{}{"fields": fields},
	}
}

// ValidateStruct runs the validate tags of s. It returns nil when every
// constraint holds.
func ValidateStruct(s interface{}) *RequestValidationError {
	err := GetValidator().Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		// InvalidValidationError: s was not a struct.
		return &RequestValidationError{errors: []ValidationError{{
			field:   "unknown",
			tag:     "unknown",
			message: err.Error(),
		}}}
	}

	out := &RequestValidationError{errors: make([]ValidationError, 0, len(fieldErrs))}
	for _, fe := range fieldErrs {
		out.errors = append(out.errors, ValidationError{
			field:   fe.Field(),
			tag:     fe.Tag(),
			param:   fe.Param(),
			value:   fe.Value(),
			message: describe(fe),
		})
	}
	return out
}

// describe renders a failure as "<field> <reason>".
func describe(fe validator.FieldError) string {
	return fe.Field() + " " + reason(fe)
}

func reason(fe validator.FieldError) string {
	p := fe.Param()
	text := fe.Kind() == reflect.String

	switch fe.Tag() {
	case "required":
		return "is required"
	case "month_name":
		return "must be an English month name such as March"
	case "season":
		return "must be a season 0-3 or a label such as Apr-Jun"
	case "latitude":
		return "must be a valid latitude (-90 to 90)"
	case "longitude":
		return "must be a valid longitude (-180 to 180)"
	case "datetime":
		return "must be a date/time in the form " + p
	case "printascii":
		return "must contain printable ASCII only"
	case "oneof":
		return "must be one of: " + p
	case "gt":
		return "must be greater than " + p
	case "gte":
		return "must be greater than or equal to " + p
	case "lt":
		return "must be less than " + p
	case "lte":
		return "must be less than or equal to " + p
	case "min":
		if text {
			return "must be at least " + p + " characters"
		}
		return "must be at least " + p
	case "max":
		if text {
			return "must be at most " + p + " characters"
		}
		return "must be at most " + p
	default:
		return "failed " + fe.Tag() + " validation"
	}
}

// isMonthName accepts full English month names in any case.
func isMonthName(fl validator.FieldLevel) bool {
	f := fl.Field()
	if f.Kind() != reflect.String {
		return false
	}
	_, err := models.MonthFromName(f.String())
	return err == nil
}

// isSeason accepts a bucket index 0-3 or its label ("Jul-Sep").
func isSeason(fl validator.FieldLevel) bool {
	f := fl.Field()
	switch f.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return models.Season(f.Int()).Valid()
	case reflect.String:
		_, err := models.ParseSeason(f.String())
		return err == nil
	default:
		return false
	}
}
