package notification

import "context"

// DefaultVibration is the on/off millisecond pattern used when a
// reminder fires.
var DefaultVibration = []int{200, 100, 200}

// Notification is a user-visible alert. Tag deduplicates: showing a
// notification with an existing tag replaces it instead of stacking.
type Notification struct {
	Title     string
	Body      string
	Tag       string
	Vibration []int
}

type Notifier interface {
	Show(ctx context.Context, n Notification) error
	// Dismiss removes the notification with the tag and stops any
	// currently-sounding alarm for it.
	Dismiss(ctx context.Context, tag string) error
}

// Center keeps the currently visible notifications so the foreground
// can repopulate its controls after a reload.
type Center interface {
	Upsert(n Notification)
	Remove(tag string)
	List() []Notification
}
