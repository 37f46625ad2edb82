package notificationcenter

import (
	"ltapp/internal/core/domain/notification"
	"sort"
	"sync"
)

// InMemory keeps the visible notifications keyed by tag. Upserting an
// existing tag replaces the notification instead of stacking a second
// one.
type InMemory struct {
	lock    sync.RWMutex
	entries map[string]notification.Notification
}

func NewInMemory() *InMemory {
	return &InMemory{entries: make(map[string]notification.Notification)}
}

func (c *InMemory) Upsert(n notification.Notification) {
	c.lock.Lock()
	defer c.lock.Unlock()
	c.entries[n.Tag] = n
}

func (c *InMemory) Remove(tag string) {
	c.lock.Lock()
	defer c.lock.Unlock()
	delete(c.entries, tag)
}

func (c *InMemory) List() []notification.Notification {
	c.lock.RLock()
	defer c.lock.RUnlock()
	result := make([]notification.Notification, 0, len(c.entries))
	for _, n := range c.entries {
		result = append(result, n)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Tag < result[j].Tag })
	return result
}
