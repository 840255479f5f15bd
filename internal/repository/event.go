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

const eventColumns = `id, building_id, title, description, starts_at, registration_limit,
		registered_count, requires_approval, fee, created_at, updated_at, deleted_at`

type EventRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewEventRepo(db *dbpg.DB) *EventRepository {
	return &EventRepository{db: db, strategy: readStrategy()}
}

func (r *EventRepository) Create(ctx context.Context, e *domain.Event) error {
	query := `INSERT INTO events (id, building_id, title, description, starts_at, registration_limit,
					registered_count, requires_approval, fee, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, 0, $7, $8, $9, $10)`
	_, err := r.db.Master.ExecContext(
		ctx, query, e.ID, e.BuildingID, e.Title, e.Description, e.StartsAt,
		e.RegistrationLimit, e.RequiresApproval, e.Fee, e.CreatedAt, e.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert event: %w", err)
	}

	return nil
}

func (r *EventRepository) GetByID(ctx context.Context, buildingID, id string) (*domain.Event, error) {
	query := `SELECT ` + eventColumns + `
			  FROM events
			  WHERE id = $1 AND building_id = $2 AND deleted_at IS NULL`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id, buildingID)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}

	e, err := scanEvent(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("scan event: %w", err)
	}

	return e, nil
}

func (r *EventRepository) ListOpen(ctx context.Context, buildingID string, now time.Time) ([]*domain.Event, error) {
	query := `SELECT ` + eventColumns + `
			  FROM events
			  WHERE building_id = $1
			    AND deleted_at IS NULL
			    AND starts_at > $2
			    AND registered_count < registration_limit
			  ORDER BY starts_at`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, buildingID, now)
	if err != nil {
		return nil, fmt.Errorf("list open events: %w", err)
	}
	defer rows.Close()

	var res []*domain.Event
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		res = append(res, e)
	}

	return res, rows.Err()
}

// IncrementRegistration checks the limit and increments in the same
// statement: a full event is exactly registered_count = registration_limit.
func (r *EventRepository) IncrementRegistration(ctx context.Context, buildingID, id string) error {
	query := `UPDATE events
			  SET registered_count = registered_count + 1, updated_at = now()
			  WHERE id = $1
			    AND building_id = $2
			    AND deleted_at IS NULL
			    AND registered_count < registration_limit`
	res, err := r.db.Master.ExecContext(ctx, query, id, buildingID)
	if err != nil {
		return fmt.Errorf("increment registration: %w", err)
	}

	n, err := affected(res)
	if err != nil {
		return err
	}
	if n == 0 {
		ok, err := exists(ctx, r.db,
			`SELECT 1 FROM events WHERE id = $1 AND building_id = $2 AND deleted_at IS NULL`, id, buildingID)
		if err != nil {
			return err
		}
		if !ok {
			return domain.ErrEventNotFound
		}
		return domain.ErrCapacityExceeded
	}

	return nil
}

func (r *EventRepository) DecrementRegistration(ctx context.Context, buildingID, id string) error {
	query := `UPDATE events
			  SET registered_count = registered_count - 1, updated_at = now()
			  WHERE id = $1 AND building_id = $2 AND registered_count > 0`
	res, err := r.db.Master.ExecContext(ctx, query, id, buildingID)
	if err != nil {
		return fmt.Errorf("decrement registration: %w", err)
	}

	n, err := affected(res)
	if err != nil {
		return err
	}
	if n == 0 {
		ok, err := exists(ctx, r.db, `SELECT 1 FROM events WHERE id = $1 AND building_id = $2`, id, buildingID)
		if err != nil {
			return err
		}
		if !ok {
			return domain.ErrEventNotFound
		}
	}

	return nil
}

func scanEvent(s scanner) (*domain.Event, error) {
	var e domain.Event
	if err := s.Scan(
		&e.ID, &e.BuildingID, &e.Title, &e.Description, &e.StartsAt, &e.RegistrationLimit,
		&e.RegisteredCount, &e.RequiresApproval, &e.Fee, &e.CreatedAt, &e.UpdatedAt, &e.DeletedAt,
	); err != nil {
		return nil, err
	}
	return &e, nil
}
