package rent

import (
	"context"
	"database/sql"
	"errors"
	c "ltapp/internal/core/domain/common"
	e "ltapp/internal/core/domain/errors"
	"ltapp/internal/core/domain/rent"
	"time"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
)

const PG_UNIQUE_CONSTRAINT_ERR_CODE = "23505"
const UNPAID_CHARGE_CONSTRAINT_NAME = "rent_charge_unpaid_tenant_idx"

type PgxRentRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) *PgxRentRepository {
	if pool == nil {
		panic(e.NewNilArgumentError("pool"))
	}
	return &PgxRentRepository{pool: pool}
}

func (r *PgxRentRepository) Create(
	ctx context.Context,
	input rent.CreateInput,
) (created rent.Charge, err error) {
	row := r.pool.QueryRow(
		ctx,
		`INSERT INTO rent_charge (tenant_name, amount, due_date, created_at)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, tenant_name, amount, due_date, created_at, paid_at`,
		input.TenantName,
		input.Amount,
		input.DueDate,
		input.CreatedAt,
	)
	created, err = scanCharge(row)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == PG_UNIQUE_CONSTRAINT_ERR_CODE &&
			pgErr.ConstraintName == UNPAID_CHARGE_CONSTRAINT_NAME {
			return created, rent.ErrChargeExists
		}
	}
	return created, err
}

func (r *PgxRentRepository) GetByID(ctx context.Context, id rent.ID) (found rent.Charge, err error) {
	row := r.pool.QueryRow(
		ctx,
		`SELECT id, tenant_name, amount, due_date, created_at, paid_at
		 FROM rent_charge WHERE id = $1`,
		int64(id),
	)
	found, err = scanCharge(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return found, rent.ErrChargeDoesNotExist
	}
	return found, err
}

// GetByTenant returns the tenant's outstanding unpaid charge.
func (r *PgxRentRepository) GetByTenant(
	ctx context.Context,
	tenantName string,
) (found rent.Charge, err error) {
	row := r.pool.QueryRow(
		ctx,
		`SELECT id, tenant_name, amount, due_date, created_at, paid_at
		 FROM rent_charge WHERE tenant_name = $1 AND paid_at IS NULL`,
		tenantName,
	)
	found, err = scanCharge(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return found, rent.ErrChargeDoesNotExist
	}
	return found, err
}

func (r *PgxRentRepository) SetPaid(
	ctx context.Context,
	id rent.ID,
	at time.Time,
) (paid rent.Charge, err error) {
	current, err := r.GetByID(ctx, id)
	if err != nil {
		return paid, err
	}
	if current.IsPaid() {
		return paid, rent.ErrChargeAlreadyPaid
	}

	row := r.pool.QueryRow(
		ctx,
		`UPDATE rent_charge SET paid_at = $2
		 WHERE id = $1 AND paid_at IS NULL
		 RETURNING id, tenant_name, amount, due_date, created_at, paid_at`,
		int64(id),
		at,
	)
	paid, err = scanCharge(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return paid, rent.ErrChargeAlreadyPaid
	}
	return paid, err
}

func scanCharge(row pgx.Row) (rent.Charge, error) {
	var (
		charge rent.Charge
		id     int64
		paidAt sql.NullTime
	)
	err := row.Scan(&id, &charge.TenantName, &charge.Amount, &charge.DueDate, &charge.CreatedAt, &paidAt)
	if err != nil {
		return charge, err
	}
	charge.ID = rent.ID(id)
	charge.PaidAt = c.NewOptional(paidAt.Time, paidAt.Valid)
	return charge, nil
}
