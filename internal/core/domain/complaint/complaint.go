package complaint

import (
	"fmt"
	c "ltapp/internal/core/domain/common"
	"time"
)

type ID int64

// Complaint is a tenant-logged issue. Reminders are scoped to its id;
// resolving a complaint cancels its reminder.
type Complaint struct {
	ID         ID
	TenantName string
	Message    string
	CreatedAt  time.Time
	ResolvedAt c.Optional[time.Time]
}

func (c Complaint) IsResolved() bool {
	return c.ResolvedAt.IsPresent
}

// EntityID is the reminder scope key for the complaint.
func (c Complaint) EntityID() string {
	return fmt.Sprintf("complaint-%d", c.ID)
}

type CreateInput struct {
	TenantName string
	Message    string
	CreatedAt  time.Time
}
