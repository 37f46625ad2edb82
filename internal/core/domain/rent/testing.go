package rent

import (
	"context"
	c "ltapp/internal/core/domain/common"
	"sync"
	"time"
)

type FakeRepository struct {
	CreateError  error
	GetError     error
	SetPaidError error

	Charges []Charge
	nextID  ID
	lock    sync.Mutex
}

func NewFakeRepository() *FakeRepository {
	return &FakeRepository{nextID: 1}
}

func (r *FakeRepository) Create(ctx context.Context, input CreateInput) (Charge, error) {
	if r.CreateError != nil {
		return Charge{}, r.CreateError
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	for _, existing := range r.Charges {
		if existing.TenantName == input.TenantName && !existing.IsPaid() {
			return Charge{}, ErrChargeExists
		}
	}
	created := Charge{
		ID:         r.nextID,
		TenantName: input.TenantName,
		Amount:     input.Amount,
		DueDate:    input.DueDate,
		CreatedAt:  input.CreatedAt,
	}
	r.nextID++
	r.Charges = append(r.Charges, created)
	return created, nil
}

func (r *FakeRepository) GetByID(ctx context.Context, id ID) (Charge, error) {
	if r.GetError != nil {
		return Charge{}, r.GetError
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	for _, existing := range r.Charges {
		if existing.ID == id {
			return existing, nil
		}
	}
	return Charge{}, ErrChargeDoesNotExist
}

func (r *FakeRepository) GetByTenant(ctx context.Context, tenantName string) (Charge, error) {
	if r.GetError != nil {
		return Charge{}, r.GetError
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	for _, existing := range r.Charges {
		if existing.TenantName == tenantName && !existing.IsPaid() {
			return existing, nil
		}
	}
	return Charge{}, ErrChargeDoesNotExist
}

func (r *FakeRepository) SetPaid(ctx context.Context, id ID, at time.Time) (Charge, error) {
	if r.SetPaidError != nil {
		return Charge{}, r.SetPaidError
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	for ix := range r.Charges {
		if r.Charges[ix].ID != id {
			continue
		}
		if r.Charges[ix].IsPaid() {
			return Charge{}, ErrChargeAlreadyPaid
		}
		r.Charges[ix].PaidAt = c.NewOptional(at, true)
		return r.Charges[ix], nil
	}
	return Charge{}, ErrChargeDoesNotExist
}
