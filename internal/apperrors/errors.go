package apperrors

import "errors"

// Lookup errors indicate that a referenced record does not exist.
var (
	// ErrNotFound indicates that no asset or debt carries the given ID.
	ErrNotFound = errors.New("record not found")

	// ErrAssetNotFound indicates that no asset with the given ID exists.
	ErrAssetNotFound = wrapped(ErrNotFound, "asset not found")

	// ErrDebtNotFound indicates that no debt with the given ID exists.
	ErrDebtNotFound = wrapped(ErrNotFound, "debt not found")
)

// Input errors indicate that a caller handed over values the portfolio cannot accept.
var (
	// ErrInvalidInput indicates a missing, non-numeric or non-finite value.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNoChartData indicates that there is no positive value to chart.
	ErrNoChartData = errors.New("no asset value to chart")
)

type sentinel struct {
	msg    string
	parent error
}

func (e *sentinel) Error() string { return e.msg }
func (e *sentinel) Unwrap() error { return e.parent }

func wrapped(parent error, msg string) error {
	return &sentinel{msg: msg, parent: parent}
}
