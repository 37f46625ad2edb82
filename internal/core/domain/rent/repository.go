package rent

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, input CreateInput) (Charge, error)
	GetByID(ctx context.Context, id ID) (Charge, error)
	GetByTenant(ctx context.Context, tenantName string) (Charge, error)
	SetPaid(ctx context.Context, id ID, at time.Time) (Charge, error)
}
