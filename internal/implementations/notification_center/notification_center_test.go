package notificationcenter

import (
	"ltapp/internal/core/domain/notification"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUpsertReplacesByTag(t *testing.T) {
	assert := require.New(t)
	center := NewInMemory()

	center.Upsert(notification.Notification{Title: "Reminder!", Body: "first", Tag: "complaint-1"})
	center.Upsert(notification.Notification{Title: "Reminder!", Body: "second", Tag: "complaint-1"})

	visible := center.List()
	assert.Len(visible, 1)
	assert.Equal("second", visible[0].Body)
}

func TestListIsSortedByTag(t *testing.T) {
	assert := require.New(t)
	center := NewInMemory()

	center.Upsert(notification.Notification{Tag: "rent-2"})
	center.Upsert(notification.Notification{Tag: "complaint-1"})

	visible := center.List()
	assert.Len(visible, 2)
	assert.Equal("complaint-1", visible[0].Tag)
	assert.Equal("rent-2", visible[1].Tag)
}

func TestRemove(t *testing.T) {
	assert := require.New(t)
	center := NewInMemory()

	center.Upsert(notification.Notification{Tag: "complaint-1"})
	center.Remove("complaint-1")
	center.Remove("complaint-1")

	assert.Empty(center.List())
}
