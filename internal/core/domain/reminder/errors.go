package reminder

import "errors"

var (
	ErrInvalidTimeOfDay = errors.New("reminder time must be a zero-padded 24-hour HH:MM string")
	ErrEntityIDNotSet   = errors.New("reminder entity id is not set")
)
