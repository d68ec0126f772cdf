// Package form turns the raw text a user typed into store inputs. Everything
// the store would otherwise have to distrust is rejected here.
package form

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/kelsos/networth/internal/apperrors"
	"github.com/kelsos/networth/internal/models"
)

// Error lists every rejected field with a human readable message.
type Error struct {
	Fields map[string]string
}

func (e *Error) Error() string {
	names := make([]string, 0, len(e.Fields))
	for field := range e.Fields {
		names = append(names, field)
	}
	sort.Strings(names)

	msgs := make([]string, 0, len(names))
	for _, field := range names {
		msgs = append(msgs, fmt.Sprintf("%s: %s", field, e.Fields[field]))
	}
	return strings.Join(msgs, "; ")
}

// Unwrap lets callers match form errors with errors.Is(err, apperrors.ErrInvalidInput).
func (e *Error) Unwrap() error {
	return apperrors.ErrInvalidInput
}

// Parser validates forms and converts them into store inputs.
type Parser struct {
	validate *validator.Validate
	currency string
}

// NewParser creates a parser that fills in defaultCurrency when a form leaves
// the currency blank.
func NewParser(defaultCurrency string) *Parser {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	if err := v.RegisterValidation("asset_type", validateAssetType); err != nil {
		panic(fmt.Sprintf("form: cannot register asset_type rule: %v", err))
	}

	return &Parser{
		validate: v,
		currency: strings.ToUpper(strings.TrimSpace(defaultCurrency)),
	}
}

func validateAssetType(fl validator.FieldLevel) bool {
	return models.AssetType(fl.Field().String()).Known()
}

// check runs the struct rules and collects failures into fields
func (p *Parser) check(form interface{}, fields map[string]string) {
	err := p.validate.Struct(form)
	if err == nil {
		return
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		fields["form"] = err.Error()
		return
	}

	for _, fe := range verrs {
		fields[fe.Field()] = describe(fe)
	}
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "asset_type":
		names := make([]string, len(models.AssetTypes))
		for i, t := range models.AssetTypes {
			names[i] = string(t)
		}
		return "must be one of " + strings.Join(names, ", ")
	case "iso4217":
		return "must be an ISO 4217 currency code"
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	default:
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}

// number parses a numeric field. Fields that already failed validation are
// left alone so the first message wins.
func number(fields map[string]string, name, raw string, nonNegative bool) float64 {
	if _, failed := fields[name]; failed {
		return 0
	}

	d, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		fields[name] = "must be a number"
		return 0
	}

	f, _ := d.Float64()
	if math.IsInf(f, 0) || math.IsNaN(f) {
		fields[name] = "must be a finite number"
		return 0
	}
	if nonNegative && f < 0 {
		fields[name] = "cannot be negative"
		return 0
	}
	return f
}

// text formats a stored number back into an editable string
func text(f float64) string {
	return decimal.NewFromFloat(f).String()
}
