package http

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

// CityRequest is the body of PUT /cities.
type CityRequest struct {
	// Name is the city name
	Name string `json:"name" validate:"notblank" example:"Paris"`

	// Country is the country the city belongs to
	Country string `json:"country" validate:"notblank" example:"France"`
}

// AirportRequest is the body of PUT /cities/{name}/airports.
type AirportRequest struct {
	// Code is the airport code
	Code string `json:"code" validate:"notblank" example:"CDG"`

	// Name is the airport's display name
	Name string `json:"name" validate:"notblank" example:"Paris Charles de Gaulle"`

	// NumberOfTerminals must be at least 1
	NumberOfTerminals int `json:"numberOfTerminals" validate:"gt=0" example:"3"`

	// Address is the postal address of the airport
	Address string `json:"address" validate:"notblank" example:"95700 Roissy-en-France, Paris"`
}

// FlightRequest is the body of PUT /flights.
type FlightRequest struct {
	// Number is the unique flight number
	Number string `json:"number" validate:"notblank" example:"AF100"`

	// FromAirport is the departure airport code
	FromAirport string `json:"fromAirport" validate:"notblank" example:"CDG"`

	// ToAirport is the arrival airport code
	ToAirport string `json:"toAirport" validate:"notblank" example:"LHR"`

	// Price must be positive
	Price float64 `json:"price" validate:"gt=0" example:"100"`

	// FlightTimeInMinutes must be positive
	FlightTimeInMinutes int `json:"flightTimeInMinutes" validate:"gt=0" example:"80"`

	// Operator is the operating airline
	Operator string `json:"operator" validate:"notblank" example:"Air France"`
}

// ValidationError represents a field-level validation error.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors holds multiple validation errors.
type ValidationErrors struct {
	Errors []ValidationError `json:"errors"`
}

// Error implements the error interface.
func (v *ValidationErrors) Error() string {
	if len(v.Errors) == 0 {
		return "validation failed"
	}
	return v.Errors[0].Field + " " + v.Errors[0].Message
}

// Add appends a field error.
func (v *ValidationErrors) Add(field, message string) {
	v.Errors = append(v.Errors, ValidationError{Field: field, Message: message})
}

// HasErrors reports whether any error was collected.
func (v *ValidationErrors) HasErrors() bool {
	return len(v.Errors) > 0
}

// ToMap converts the errors to the field→message map rendered in error details.
func (v *ValidationErrors) ToMap() map[string]string {
	m := make(map[string]string, len(v.Errors))
	for _, e := range v.Errors {
		m[e.Field] = e.Message
	}
	return m
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("notblank", validators.NotBlank)
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Validate checks the request against its struct tags.
func (r *CityRequest) Validate() error { return validateStruct(r) }

// Validate checks the request against its struct tags.
func (r *AirportRequest) Validate() error { return validateStruct(r) }

// Validate checks the request against its struct tags.
func (r *FlightRequest) Validate() error { return validateStruct(r) }

// validateStruct runs the validator and translates its field errors into
// ValidationErrors keyed by JSON field name.
func validateStruct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	errs := &ValidationErrors{}
	for _, fe := range fieldErrs {
		errs.Add(fe.Field(), fieldMessage(fe))
	}
	return errs
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "notblank", "required":
		return "is required"
	case "gt":
		return "must be greater than " + fe.Param()
	default:
		return "is invalid"
	}
}
