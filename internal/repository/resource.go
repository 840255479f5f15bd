package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/stpnv0/SocietyBooker/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const resourceSelect = `SELECT r.id, r.building_id, r.pool_id, r.class, r.label, r.block_id,
		r.starts_at, r.ends_at, r.status, r.held_by, r.reserved_at,
		r.created_at, r.updated_at, r.deleted_at,
		p.requires_approval, p.fee
	FROM resources r
	JOIN resource_pools p ON p.id = r.pool_id`

type ResourceRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewResourceRepo(db *dbpg.DB) *ResourceRepository {
	return &ResourceRepository{db: db, strategy: readStrategy()}
}

func (r *ResourceRepository) Create(ctx context.Context, res *domain.Resource) error {
	query := `INSERT INTO resources (id, building_id, pool_id, class, label, block_id,
					starts_at, ends_at, status, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.db.Master.ExecContext(
		ctx, query, res.ID, res.BuildingID, res.PoolID, res.Class, res.Label, res.BlockID,
		res.StartsAt, res.EndsAt, res.Status, res.CreatedAt, res.UpdatedAt,
	)
	if err != nil {
		switch pgCode(err) {
		case pgForeignKeyViolation:
			return domain.ErrPoolNotFound
		case pgExclusionViolation:
			return domain.ErrSlotOverlap
		}
		return fmt.Errorf("insert resource: %w", err)
	}

	return nil
}

func (r *ResourceRepository) GetByID(ctx context.Context, buildingID, id string) (*domain.Resource, error) {
	query := resourceSelect + `
	WHERE r.id = $1 AND r.building_id = $2 AND r.deleted_at IS NULL`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id, buildingID)
	if err != nil {
		return nil, fmt.Errorf("get resource: %w", err)
	}

	res, err := scanResource(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrResourceNotFound
		}
		return nil, fmt.Errorf("scan resource: %w", err)
	}

	return res, nil
}

func (r *ResourceRepository) FindAvailable(ctx context.Context, buildingID string, f domain.ResourceFilter) ([]*domain.Resource, error) {
	query := resourceSelect + `
	WHERE r.building_id = $1
	  AND r.status = $2
	  AND r.deleted_at IS NULL
	  AND p.deleted_at IS NULL
	  AND (r.block_id IS NULL OR r.block_id = $3)`
	args := []any{buildingID, domain.ResourceAvailable, f.BlockID}

	if f.Class != "" {
		args = append(args, f.Class)
		query += fmt.Sprintf(" AND r.class = $%d", len(args))
	}
	if f.PoolID != "" {
		args = append(args, f.PoolID)
		query += fmt.Sprintf(" AND r.pool_id = $%d", len(args))
	}
	if f.Date != nil {
		from, to := f.DayBounds()
		args = append(args, from, to)
		query += fmt.Sprintf(" AND r.starts_at >= $%d AND r.starts_at < $%d", len(args)-1, len(args))
	}
	query += " ORDER BY r.starts_at NULLS LAST, r.label, r.id"

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, fmt.Errorf("find available: %w", err)
	}
	defer rows.Close()

	var res []*domain.Resource
	for rows.Next() {
		rs, err := scanResource(rows)
		if err != nil {
			return nil, fmt.Errorf("scan resource: %w", err)
		}
		res = append(res, rs)
	}

	return res, rows.Err()
}

// Reserve flips available to occupied in one statement, so among concurrent
// callers exactly one sees a row affected.
func (r *ResourceRepository) Reserve(ctx context.Context, buildingID, id, entryID string) error {
	query := `UPDATE resources
			  SET status = $4, held_by = $3, reserved_at = now(), updated_at = now()
			  WHERE id = $1
			    AND building_id = $2
			    AND status = $5
			    AND deleted_at IS NULL`
	res, err := r.db.Master.ExecContext(
		ctx, query, id, buildingID, entryID,
		domain.ResourceOccupied, domain.ResourceAvailable,
	)
	if err != nil {
		return fmt.Errorf("reserve resource: %w", err)
	}

	n, err := affected(res)
	if err != nil {
		return err
	}
	if n == 0 {
		return r.unavailableReason(ctx, buildingID, id)
	}

	return nil
}

func (r *ResourceRepository) Release(ctx context.Context, buildingID, id, entryID string) error {
	query := `UPDATE resources
			  SET status = $4, held_by = NULL, reserved_at = NULL, updated_at = now()
			  WHERE id = $1
			    AND building_id = $2
			    AND held_by = $3
			    AND status = $5`
	res, err := r.db.Master.ExecContext(
		ctx, query, id, buildingID, entryID,
		domain.ResourceAvailable, domain.ResourceOccupied,
	)
	if err != nil {
		return fmt.Errorf("release resource: %w", err)
	}

	n, err := affected(res)
	if err != nil {
		return err
	}
	if n == 0 {
		ok, err := exists(ctx, r.db, `SELECT 1 FROM resources WHERE id = $1 AND building_id = $2`, id, buildingID)
		if err != nil {
			return err
		}
		if !ok {
			return domain.ErrResourceNotFound
		}
		return domain.ErrNotReserved
	}

	return nil
}

func (r *ResourceRepository) SetMaintenance(ctx context.Context, buildingID, id string, on bool) error {
	from, to := domain.ResourceAvailable, domain.ResourceMaintenance
	if !on {
		from, to = to, from
	}

	query := `UPDATE resources
			  SET status = $4, updated_at = now()
			  WHERE id = $1 AND building_id = $2 AND status = $3 AND deleted_at IS NULL`
	res, err := r.db.Master.ExecContext(ctx, query, id, buildingID, from, to)
	if err != nil {
		return fmt.Errorf("set maintenance: %w", err)
	}

	n, err := affected(res)
	if err != nil {
		return err
	}
	if n == 0 {
		current, err := r.currentStatus(ctx, buildingID, id)
		if err != nil {
			return err
		}
		return domain.MaintenanceConflict(current)
	}

	return nil
}

func (r *ResourceRepository) SoftDelete(ctx context.Context, buildingID, id string) error {
	query := `UPDATE resources
			  SET deleted_at = now(), updated_at = now()
			  WHERE id = $1 AND building_id = $2 AND deleted_at IS NULL AND status <> $3`
	res, err := r.db.Master.ExecContext(ctx, query, id, buildingID, domain.ResourceOccupied)
	if err != nil {
		return fmt.Errorf("delete resource: %w", err)
	}

	n, err := affected(res)
	if err != nil {
		return err
	}
	if n == 0 {
		if _, err := r.currentStatus(ctx, buildingID, id); err != nil {
			return err
		}
		return domain.ErrResourceInUse
	}

	return nil
}

// ReleaseOrphaned frees occupied resources whose holder entry is missing or
// no longer holding, reserved before the given instant.
func (r *ResourceRepository) ReleaseOrphaned(ctx context.Context, reservedBefore time.Time) ([]*domain.Resource, error) {
	query := `UPDATE resources r
			  SET status = $1, held_by = NULL, reserved_at = NULL, updated_at = now()
			  WHERE r.status = $2
			    AND r.reserved_at < $3
			    AND NOT EXISTS (
			        SELECT 1 FROM ledger_entries e
			        WHERE e.id = r.held_by AND e.status = ANY($4)
			    )
			  RETURNING r.id, r.building_id, r.pool_id, r.class, r.label`

	rows, err := r.db.Master.QueryContext(
		ctx, query, domain.ResourceAvailable, domain.ResourceOccupied,
		reservedBefore, statusArray(domain.HoldingStatuses),
	)
	if err != nil {
		return nil, fmt.Errorf("release orphaned: %w", err)
	}
	defer rows.Close()

	var res []*domain.Resource
	for rows.Next() {
		rs := domain.Resource{Status: domain.ResourceAvailable}
		if err = rows.Scan(&rs.ID, &rs.BuildingID, &rs.PoolID, &rs.Class, &rs.Label); err != nil {
			return nil, fmt.Errorf("scan orphaned: %w", err)
		}
		res = append(res, &rs)
	}

	return res, rows.Err()
}

func (r *ResourceRepository) CountByStatus(ctx context.Context, buildingID string) (map[domain.ResourceClass]map[domain.ResourceStatus]int, error) {
	query := `SELECT class, status, COUNT(*)
			  FROM resources
			  WHERE building_id = $1 AND deleted_at IS NULL
			  GROUP BY class, status`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, buildingID)
	if err != nil {
		return nil, fmt.Errorf("count resources: %w", err)
	}
	defer rows.Close()

	res := make(map[domain.ResourceClass]map[domain.ResourceStatus]int)
	for rows.Next() {
		var (
			class  domain.ResourceClass
			status domain.ResourceStatus
			count  int
		)
		if err = rows.Scan(&class, &status, &count); err != nil {
			return nil, fmt.Errorf("scan count: %w", err)
		}
		if res[class] == nil {
			res[class] = make(map[domain.ResourceStatus]int)
		}
		res[class][status] = count
	}

	return res, rows.Err()
}

func (r *ResourceRepository) unavailableReason(ctx context.Context, buildingID, id string) error {
	status, err := r.currentStatus(ctx, buildingID, id)
	if err != nil {
		return err
	}
	if status == domain.ResourceOccupied {
		return domain.ErrAlreadyReserved
	}
	return fmt.Errorf("%w: resource is %s", domain.ErrResourceUnavailable, status)
}

func (r *ResourceRepository) currentStatus(ctx context.Context, buildingID, id string) (domain.ResourceStatus, error) {
	var status domain.ResourceStatus
	err := r.db.Master.QueryRowContext(ctx,
		`SELECT status FROM resources WHERE id = $1 AND building_id = $2 AND deleted_at IS NULL`,
		id, buildingID,
	).Scan(&status)
	if errors.Is(err, sql.ErrNoRows) {
		return "", domain.ErrResourceNotFound
	}
	if err != nil {
		return "", fmt.Errorf("get resource status: %w", err)
	}
	return status, nil
}

func scanResource(s scanner) (*domain.Resource, error) {
	var r domain.Resource
	if err := s.Scan(
		&r.ID, &r.BuildingID, &r.PoolID, &r.Class, &r.Label, &r.BlockID,
		&r.StartsAt, &r.EndsAt, &r.Status, &r.HeldBy, &r.ReservedAt,
		&r.CreatedAt, &r.UpdatedAt, &r.DeletedAt,
		&r.RequiresApproval, &r.Fee,
	); err != nil {
		return nil, err
	}
	return &r, nil
}
