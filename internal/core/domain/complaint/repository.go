package complaint

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, input CreateInput) (Complaint, error)
	GetByID(ctx context.Context, id ID) (Complaint, error)
	List(ctx context.Context) ([]Complaint, error)
	SetResolved(ctx context.Context, id ID, at time.Time) (Complaint, error)
}
