package complaint

import "errors"

var (
	ErrComplaintDoesNotExist    = errors.New("complaint does not exist")
	ErrComplaintAlreadyResolved = errors.New("complaint is already resolved")
)
