package rent

import "errors"

var (
	ErrChargeDoesNotExist = errors.New("rent charge does not exist")
	ErrChargeAlreadyPaid  = errors.New("rent charge is already paid")
	ErrChargeExists       = errors.New("tenant already has an unpaid rent charge")
	ErrInvalidAmount      = errors.New("rent amount must be positive")
)
