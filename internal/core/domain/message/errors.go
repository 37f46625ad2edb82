package message

import "errors"

var (
	ErrUnknownKind    = errors.New("unknown message kind")
	ErrPayloadMissing = errors.New("message payload does not match its kind")
)
