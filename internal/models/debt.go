package models

// Suggested debt types shown by the dashboard form. Debt.Type is free-form and
// any other string is accepted.
var DebtTypes = []string{"mortgage", "auto", "student", "credit", "personal", "other"}

// Debt is a liability. ID is assigned by the store and never changes.
type Debt struct {
	ID               string  `json:"id"`
	Name             string  `json:"name"`
	Type             string  `json:"type"`
	Principal        float64 `json:"principal"`
	InterestRate     float64 `json:"interestRate"`
	RemainingBalance float64 `json:"remainingBalance"`
	MonthlyPayment   float64 `json:"monthlyPayment"`
	Currency         string  `json:"currency"`
}

// Paid is the part of the principal already repaid.
func (d Debt) Paid() float64 {
	return d.Principal - d.RemainingBalance
}

// DebtInput carries every debt field except the ID.
type DebtInput struct {
	Name             string  `json:"name"`
	Type             string  `json:"type"`
	Principal        float64 `json:"principal"`
	InterestRate     float64 `json:"interestRate"`
	RemainingBalance float64 `json:"remainingBalance"`
	MonthlyPayment   float64 `json:"monthlyPayment"`
	Currency         string  `json:"currency"`
}

// Debt builds the record stored under id.
func (in DebtInput) Debt(id string) Debt {
	return Debt{
		ID:               id,
		Name:             in.Name,
		Type:             in.Type,
		Principal:        in.Principal,
		InterestRate:     in.InterestRate,
		RemainingBalance: in.RemainingBalance,
		MonthlyPayment:   in.MonthlyPayment,
		Currency:         in.Currency,
	}
}

// Patch returns a patch that replaces every field with the input's values.
func (in DebtInput) Patch() DebtPatch {
	return DebtPatch{
		Name:             &in.Name,
		Type:             &in.Type,
		Principal:        &in.Principal,
		InterestRate:     &in.InterestRate,
		RemainingBalance: &in.RemainingBalance,
		MonthlyPayment:   &in.MonthlyPayment,
		Currency:         &in.Currency,
	}
}

// DebtPatch is a partial update. Nil fields keep their current value.
type DebtPatch struct {
	Name             *string  `json:"name,omitempty"`
	Type             *string  `json:"type,omitempty"`
	Principal        *float64 `json:"principal,omitempty"`
	InterestRate     *float64 `json:"interestRate,omitempty"`
	RemainingBalance *float64 `json:"remainingBalance,omitempty"`
	MonthlyPayment   *float64 `json:"monthlyPayment,omitempty"`
	Currency         *string  `json:"currency,omitempty"`
}

// Apply returns a copy of d with the patch merged over it. The ID is kept.
func (p DebtPatch) Apply(d Debt) Debt {
	if p.Name != nil {
		d.Name = *p.Name
	}
	if p.Type != nil {
		d.Type = *p.Type
	}
	if p.Principal != nil {
		d.Principal = *p.Principal
	}
	if p.InterestRate != nil {
		d.InterestRate = *p.InterestRate
	}
	if p.RemainingBalance != nil {
		d.RemainingBalance = *p.RemainingBalance
	}
	if p.MonthlyPayment != nil {
		d.MonthlyPayment = *p.MonthlyPayment
	}
	if p.Currency != nil {
		d.Currency = *p.Currency
	}
	return d
}
