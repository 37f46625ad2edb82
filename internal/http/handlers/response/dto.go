package response

import (
	"ltapp/internal/core/domain/complaint"
	"ltapp/internal/core/domain/notification"
	"ltapp/internal/core/domain/rent"
	"time"
)

type Complaint struct {
	ID         int64      `json:"id"`
	TenantName string     `json:"tenant_name"`
	Message    string     `json:"message"`
	CreatedAt  time.Time  `json:"created_at"`
	ResolvedAt *time.Time `json:"resolved_at"`
}

func (c *Complaint) FromDomainType(item complaint.Complaint) {
	c.ID = int64(item.ID)
	c.TenantName = item.TenantName
	c.Message = item.Message
	c.CreatedAt = item.CreatedAt
	if item.ResolvedAt.IsPresent {
		resolvedAt := item.ResolvedAt.Value
		c.ResolvedAt = &resolvedAt
	}
}

type RentCharge struct {
	ID         int64      `json:"id"`
	TenantName string     `json:"tenant_name"`
	Amount     int64      `json:"amount"`
	DueDate    time.Time  `json:"due_date"`
	CreatedAt  time.Time  `json:"created_at"`
	PaidAt     *time.Time `json:"paid_at"`
}

func (c *RentCharge) FromDomainType(charge rent.Charge) {
	c.ID = int64(charge.ID)
	c.TenantName = charge.TenantName
	c.Amount = charge.Amount
	c.DueDate = charge.DueDate
	c.CreatedAt = charge.CreatedAt
	if charge.PaidAt.IsPresent {
		paidAt := charge.PaidAt.Value
		c.PaidAt = &paidAt
	}
}

type Notification struct {
	Title     string `json:"title"`
	Body      string `json:"body"`
	Tag       string `json:"tag"`
	Vibration []int  `json:"vibration,omitempty"`
}

func (n *Notification) FromDomainType(notif notification.Notification) {
	n.Title = notif.Title
	n.Body = notif.Body
	n.Tag = notif.Tag
	n.Vibration = notif.Vibration
}
