package assetcache

import (
	"fmt"
	"time"
)

// Name identifies one cache generation. Names embed the install instant
// so that every deployment produces a fresh name and activation always
// triggers a cleanup pass.
type Name string

const namePrefix = "ltapp-cache"

func NewName(now time.Time) Name {
	return Name(fmt.Sprintf("%s-%d", namePrefix, now.UnixMilli()))
}

// Generation is one versioned snapshot of precached static assets.
// Exactly one generation is active at a time.
type Generation struct {
	Name      Name
	Assets    []string
	Status    Status
	CreatedAt time.Time
}

type Asset struct {
	URL         string
	ContentType string
	Body        []byte
}
