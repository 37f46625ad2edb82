package rent

import (
	"fmt"
	c "ltapp/internal/core/domain/common"
	"time"
)

type ID int64

// Charge is a rent amount a landlord set for a tenant. Amount is in
// minor currency units. Reminders are scoped to the charge id; marking
// a charge paid cancels its reminder.
type Charge struct {
	ID         ID
	TenantName string
	Amount     int64
	DueDate    time.Time
	CreatedAt  time.Time
	PaidAt     c.Optional[time.Time]
}

func (ch Charge) IsPaid() bool {
	return ch.PaidAt.IsPresent
}

// EntityID is the reminder scope key for the charge.
func (ch Charge) EntityID() string {
	return fmt.Sprintf("rent-%d", ch.ID)
}

type CreateInput struct {
	TenantName string
	Amount     int64
	DueDate    time.Time
	CreatedAt  time.Time
}
