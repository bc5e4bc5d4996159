package registration

import "errors"

var (
	ErrHospitalNotFound = errors.New("hospital not found")
	ErrPatientNotFound  = errors.New("patient not found")

	// ErrAllocationRace means another registration took the number first.
	// The caller may retry.
	ErrAllocationRace = errors.New("registration number already taken")

	ErrSequenceExhausted         = errors.New("registration sequence exhausted for the year")
	ErrInvalidRegistrationNumber = errors.New("invalid registration number")
)
