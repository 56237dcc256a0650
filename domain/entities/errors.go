package entities

import "errors"

var (
	// ErrInvalidDate is returned when a date is not in J/M/AAAA form
	ErrInvalidDate = errors.New("invalid date, expected DD/MM/YYYY")

	// ErrEmptyDisplayName is returned when a display name is blank after trimming
	ErrEmptyDisplayName = errors.New("display name cannot be empty")

	// ErrInvalidProfile is returned for a profile outside the fixed enumeration
	ErrInvalidProfile = errors.New("invalid arrival profile")
)
