package assetcache

import "errors"

var ErrParseStatus = errors.New("invalid cache generation status")

type Status struct {
	v string
}

func (s Status) String() string {
	return s.v
}

func ParseStatus(value string) (Status, error) {
	switch value {
	case "installing":
		return StatusInstalling, nil
	case "active":
		return StatusActive, nil
	case "stale":
		return StatusStale, nil
	default:
		return StatusUnknown, ErrParseStatus
	}
}

var (
	StatusUnknown    = Status{}
	StatusInstalling = Status{v: "installing"}
	StatusActive     = Status{v: "active"}
	StatusStale      = Status{v: "stale"}
)
