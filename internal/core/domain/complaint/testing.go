package complaint

import (
	"context"
	c "ltapp/internal/core/domain/common"
	"sync"
	"time"
)

type FakeRepository struct {
	CreateError      error
	GetByIDError     error
	ListError        error
	SetResolvedError error

	Complaints []Complaint
	nextID     ID
	lock       sync.Mutex
}

func NewFakeRepository() *FakeRepository {
	return &FakeRepository{nextID: 1}
}

func (r *FakeRepository) Create(ctx context.Context, input CreateInput) (Complaint, error) {
	if r.CreateError != nil {
		return Complaint{}, r.CreateError
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	created := Complaint{
		ID:         r.nextID,
		TenantName: input.TenantName,
		Message:    input.Message,
		CreatedAt:  input.CreatedAt,
	}
	r.nextID++
	r.Complaints = append(r.Complaints, created)
	return created, nil
}

func (r *FakeRepository) GetByID(ctx context.Context, id ID) (Complaint, error) {
	if r.GetByIDError != nil {
		return Complaint{}, r.GetByIDError
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	for _, existing := range r.Complaints {
		if existing.ID == id {
			return existing, nil
		}
	}
	return Complaint{}, ErrComplaintDoesNotExist
}

func (r *FakeRepository) List(ctx context.Context) ([]Complaint, error) {
	if r.ListError != nil {
		return nil, r.ListError
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	complaints := make([]Complaint, len(r.Complaints))
	copy(complaints, r.Complaints)
	return complaints, nil
}

func (r *FakeRepository) SetResolved(ctx context.Context, id ID, at time.Time) (Complaint, error) {
	if r.SetResolvedError != nil {
		return Complaint{}, r.SetResolvedError
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	for ix := range r.Complaints {
		if r.Complaints[ix].ID != id {
			continue
		}
		if r.Complaints[ix].IsResolved() {
			return Complaint{}, ErrComplaintAlreadyResolved
		}
		r.Complaints[ix].ResolvedAt = c.NewOptional(at, true)
		return r.Complaints[ix], nil
	}
	return Complaint{}, ErrComplaintDoesNotExist
}
