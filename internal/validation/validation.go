// Package validation turns a raw request body into a model.InputReport,
// reporting missing or out-of-domain fields by their JSON path.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/go-playground/validator/v10"

	"covid-estimator/internal/model"
)

// ErrMalformedBody is returned for bodies that are not JSON at all.
var ErrMalformedBody = errors.New("malformed request body")

type InputValidationError struct {
	Field  string
	Reason string
}

func (e *InputValidationError) Error() string {
	if e.Field == "" {
		return "invalid input: " + e.Reason
	}
	return fmt.Sprintf("invalid field %s: %s", e.Field, e.Reason)
}

// Pointer fields let a missing value be told apart from a zero.
type reportPayload struct {
	Region            *regionPayload `json:"region" validate:"required"`
	PeriodType        *string        `json:"periodType" validate:"required,min=1"`
	TimeToElapse      *int           `json:"timeToElapse" validate:"required,gt=0,lte=71582788"`
	ReportedCases     *int           `json:"reportedCases" validate:"required,gte=0,lte=1000000000000"`
	Population        *int           `json:"population" validate:"required,gt=0"`
	TotalHospitalBeds *int           `json:"totalHospitalBeds" validate:"required,gte=0"`
}

type regionPayload struct {
	Name                     *string  `json:"name" validate:"required"`
	AvgAge                   *float64 `json:"avgAge" validate:"required,gte=0"`
	AvgDailyIncomeInUSD      *float64 `json:"avgDailyIncomeInUSD" validate:"required,gte=0"`
	AvgDailyIncomePopulation *float64 `json:"avgDailyIncomePopulation" validate:"required,gte=0,lte=1"`
}

// Validator is a wrapper around the actual validator configured to name
// fields after their JSON tags.
type Validator struct {
	validator *validator.Validate
}

func NewValidator() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &Validator{validator: v}
}

// DecodeReport parses and validates body. Failures are either
// ErrMalformedBody or *InputValidationError.
func (v *Validator) DecodeReport(body []byte) (*model.InputReport, error) {
	if !json.Valid(body) {
		return nil, ErrMalformedBody
	}

	// Well-formed JSON that does not fit the payload is a typing problem.
	var payload reportPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return nil, &InputValidationError{
				Field:  typeErr.Field,
				Reason: fmt.Sprintf("cannot use %s as %s", typeErr.Value, typeErr.Type),
			}
		}
		return nil, &InputValidationError{Reason: err.Error()}
	}

	if err := v.validator.Struct(&payload); err != nil {
		return nil, toInputError(err)
	}

	return payload.toReport(), nil
}

func toInputError(err error) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return &InputValidationError{Reason: err.Error()}
	}

	fe := fieldErrs[0]
	field := fe.Namespace()
	if i := strings.Index(field, "."); i >= 0 {
		field = field[i+1:]
	}

	return &InputValidationError{Field: field, Reason: reason(fe)}
}

func reason(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return "must not be empty"
	case "gt":
		return "must be greater than " + fe.Param()
	case "gte":
		return "must be at least " + fe.Param()
	case "lte":
		return "must be at most " + fe.Param()
	}
	return "failed " + fe.Tag() + " validation"
}

// Only called after validation, so every pointer is set.
func (p *reportPayload) toReport() *model.InputReport {
	return &model.InputReport{
		Region: model.Region{
			Name:                     *p.Region.Name,
			AvgAge:                   *p.Region.AvgAge,
			AvgDailyIncomeInUSD:      *p.Region.AvgDailyIncomeInUSD,
			AvgDailyIncomePopulation: *p.Region.AvgDailyIncomePopulation,
		},
		PeriodType:        *p.PeriodType,
		TimeToElapse:      *p.TimeToElapse,
		ReportedCases:     *p.ReportedCases,
		Population:        *p.Population,
		TotalHospitalBeds: *p.TotalHospitalBeds,
	}
}
