package form

import (
	"strings"

	"github.com/kelsos/networth/internal/models"
)

const defaultDebtType = "other"

// DebtForm holds the raw debt fields as typed in the dashboard.
type DebtForm struct {
	Name             string `json:"name" validate:"required,max=100"`
	Type             string `json:"type" validate:"max=32"`
	Principal        string `json:"principal" validate:"required"`
	InterestRate     string `json:"interestRate" validate:"required"`
	RemainingBalance string `json:"remainingBalance" validate:"required"`
	MonthlyPayment   string `json:"monthlyPayment" validate:"required"`
	Currency         string `json:"currency" validate:"omitempty,iso4217"`
}

// DebtFormFrom pre-fills a form with an existing debt for editing.
func DebtFormFrom(d models.Debt) DebtForm {
	return DebtForm{
		Name:             d.Name,
		Type:             d.Type,
		Principal:        text(d.Principal),
		InterestRate:     text(d.InterestRate),
		RemainingBalance: text(d.RemainingBalance),
		MonthlyPayment:   text(d.MonthlyPayment),
		Currency:         d.Currency,
	}
}

// Debt validates f and converts it into a store input. The type is free-form;
// a blank one becomes "other".
func (p *Parser) Debt(f DebtForm) (models.DebtInput, error) {
	f.Name = strings.TrimSpace(f.Name)
	f.Type = strings.ToLower(strings.TrimSpace(f.Type))
	f.Currency = strings.ToUpper(strings.TrimSpace(f.Currency))

	fields := make(map[string]string)
	p.check(f, fields)

	in := models.DebtInput{
		Name:             f.Name,
		Type:             f.Type,
		Principal:        number(fields, "principal", f.Principal, true),
		InterestRate:     number(fields, "interestRate", f.InterestRate, false),
		RemainingBalance: number(fields, "remainingBalance", f.RemainingBalance, true),
		MonthlyPayment:   number(fields, "monthlyPayment", f.MonthlyPayment, true),
		Currency:         f.Currency,
	}
	if in.Type == "" {
		in.Type = defaultDebtType
	}
	if in.Currency == "" {
		in.Currency = p.currency
	}

	if len(fields) > 0 {
		return models.DebtInput{}, &Error{Fields: fields}
	}
	return in, nil
}
