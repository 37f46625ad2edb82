package complaint

import (
	"context"
	"database/sql"
	"errors"
	c "ltapp/internal/core/domain/common"
	"ltapp/internal/core/domain/complaint"
	e "ltapp/internal/core/domain/errors"
	"time"

	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
)

type PgxComplaintRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) *PgxComplaintRepository {
	if pool == nil {
		panic(e.NewNilArgumentError("pool"))
	}
	return &PgxComplaintRepository{pool: pool}
}

func (r *PgxComplaintRepository) Create(
	ctx context.Context,
	input complaint.CreateInput,
) (created complaint.Complaint, err error) {
	row := r.pool.QueryRow(
		ctx,
		`INSERT INTO complaint (tenant_name, message, created_at)
		 VALUES ($1, $2, $3)
		 RETURNING id, tenant_name, message, created_at, resolved_at`,
		input.TenantName,
		input.Message,
		input.CreatedAt,
	)
	return scanComplaint(row)
}

func (r *PgxComplaintRepository) GetByID(
	ctx context.Context,
	id complaint.ID,
) (found complaint.Complaint, err error) {
	row := r.pool.QueryRow(
		ctx,
		`SELECT id, tenant_name, message, created_at, resolved_at
		 FROM complaint WHERE id = $1`,
		int64(id),
	)
	found, err = scanComplaint(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return found, complaint.ErrComplaintDoesNotExist
	}
	return found, err
}

func (r *PgxComplaintRepository) List(ctx context.Context) ([]complaint.Complaint, error) {
	rows, err := r.pool.Query(
		ctx,
		`SELECT id, tenant_name, message, created_at, resolved_at
		 FROM complaint ORDER BY created_at DESC, id DESC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	complaints := make([]complaint.Complaint, 0)
	for rows.Next() {
		item, err := scanComplaint(rows)
		if err != nil {
			return nil, err
		}
		complaints = append(complaints, item)
	}
	return complaints, rows.Err()
}

func (r *PgxComplaintRepository) SetResolved(
	ctx context.Context,
	id complaint.ID,
	at time.Time,
) (resolved complaint.Complaint, err error) {
	current, err := r.GetByID(ctx, id)
	if err != nil {
		return resolved, err
	}
	if current.IsResolved() {
		return resolved, complaint.ErrComplaintAlreadyResolved
	}

	row := r.pool.QueryRow(
		ctx,
		`UPDATE complaint SET resolved_at = $2
		 WHERE id = $1 AND resolved_at IS NULL
		 RETURNING id, tenant_name, message, created_at, resolved_at`,
		int64(id),
		at,
	)
	resolved, err = scanComplaint(row)
	if errors.Is(err, pgx.ErrNoRows) {
		// Lost the race with a concurrent resolution.
		return resolved, complaint.ErrComplaintAlreadyResolved
	}
	return resolved, err
}

func scanComplaint(row pgx.Row) (complaint.Complaint, error) {
	var (
		item       complaint.Complaint
		id         int64
		resolvedAt sql.NullTime
	)
	err := row.Scan(&id, &item.TenantName, &item.Message, &item.CreatedAt, &resolvedAt)
	if err != nil {
		return item, err
	}
	item.ID = complaint.ID(id)
	item.ResolvedAt = c.NewOptional(resolvedAt.Time, resolvedAt.Valid)
	return item, nil
}
