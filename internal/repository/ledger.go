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

const entryColumns = `id, building_id, class, resource_id, member_id, unit_id, status, policy,
		effective_at, amount, payment_status, note, dedupe_key, created_by, created_at,
		decided_by, decided_at, closed_by, closed_at, updated_at`

type LedgerRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewLedgerRepo(db *dbpg.DB) *LedgerRepository {
	return &LedgerRepository{db: db, strategy: readStrategy()}
}

// Create relies on the partial unique indexes for the dedupe and holding
// rules, so two concurrent requests cannot both get in.
func (r *LedgerRepository) Create(ctx context.Context, e *domain.Entry) error {
	query := `INSERT INTO ledger_entries (id, building_id, class, resource_id, member_id, unit_id,
					status, policy, effective_at, amount, payment_status, note, dedupe_key,
					created_by, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`
	_, err := r.db.Master.ExecContext(
		ctx, query, e.ID, e.BuildingID, e.Class, e.ResourceID, e.MemberID, e.UnitID,
		e.Status, e.Policy, e.EffectiveAt, e.Amount, e.PaymentStatus, e.Note, e.DedupeKey,
		e.CreatedBy, e.CreatedAt, e.UpdatedAt,
	)
	if err != nil {
		switch pgCode(err) {
		case pgUniqueViolation:
			return domain.ErrDuplicateActiveEntry
		case pgForeignKeyViolation:
			return domain.ErrMemberNotFound
		}
		return fmt.Errorf("insert entry: %w", err)
	}

	return nil
}

func (r *LedgerRepository) GetByID(ctx context.Context, buildingID, id string) (*domain.Entry, error) {
	query := `SELECT ` + entryColumns + `
			  FROM ledger_entries
			  WHERE id = $1 AND building_id = $2`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id, buildingID)
	if err != nil {
		return nil, fmt.Errorf("get entry: %w", err)
	}

	e, err := scanEntry(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEntryNotFound
		}
		return nil, fmt.Errorf("scan entry: %w", err)
	}

	return e, nil
}

// Transition moves an entry from one status to another only if it is still
// in the expected status. Losing a race shows up as ErrInvalidTransition.
func (r *LedgerRepository) Transition(
	ctx context.Context,
	buildingID, id string,
	from, to domain.EntryStatus,
	actorID string,
	at time.Time,
) (*domain.Entry, error) {
	if !domain.CanTransition(from, to) {
		return nil, domain.ErrInvalidTransition
	}

	var stamp domain.Entry
	stamp.Stamp(to, actorID, at)

	query := `UPDATE ledger_entries
			  SET status = $4,
			      decided_by = COALESCE($5::text, decided_by),
			      decided_at = COALESCE($6::timestamptz, decided_at),
			      closed_by = COALESCE($7::text, closed_by),
			      closed_at = COALESCE($8::timestamptz, closed_at),
			      updated_at = $9
			  WHERE id = $1 AND building_id = $2 AND status = $3
			  RETURNING ` + entryColumns

	row := r.db.Master.QueryRowContext(
		ctx, query, id, buildingID, from, to,
		stamp.DecidedBy, stamp.DecidedAt, stamp.ClosedBy, stamp.ClosedAt, at,
	)
	e, err := scanEntry(row)
	if err == nil {
		return e, nil
	}

	if pgCode(err) == pgUniqueViolation {
		return nil, domain.ErrDuplicateActiveEntry
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("transition entry: %w", err)
	}

	ok, err := exists(ctx, r.db, `SELECT 1 FROM ledger_entries WHERE id = $1 AND building_id = $2`, id, buildingID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrEntryNotFound
	}
	return nil, domain.ErrInvalidTransition
}

func (r *LedgerRepository) FindActiveByResource(ctx context.Context, buildingID, resourceID string) (*domain.Entry, error) {
	query := `SELECT ` + entryColumns + `
			  FROM ledger_entries
			  WHERE building_id = $1 AND resource_id = $2 AND status = ANY($3)
			  ORDER BY created_at DESC
			  LIMIT 1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, buildingID, resourceID, statusArray(domain.HoldingStatuses))
	if err != nil {
		return nil, fmt.Errorf("find active entry: %w", err)
	}

	e, err := scanEntry(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEntryNotFound
		}
		return nil, fmt.Errorf("scan entry: %w", err)
	}

	return e, nil
}

func (r *LedgerRepository) ListByRequester(ctx context.Context, buildingID, memberID string, statuses []domain.EntryStatus) ([]*domain.Entry, error) {
	query := `SELECT ` + entryColumns + `
			  FROM ledger_entries
			  WHERE building_id = $1 AND member_id = $2`
	args := []any{buildingID, memberID}

	return r.list(ctx, query, args, statuses)
}

func (r *LedgerRepository) ListByStatus(ctx context.Context, buildingID string, class domain.ResourceClass, statuses []domain.EntryStatus) ([]*domain.Entry, error) {
	query := `SELECT ` + entryColumns + `
			  FROM ledger_entries
			  WHERE building_id = $1 AND ($2 = '' OR class = $2)`
	args := []any{buildingID, class}

	return r.list(ctx, query, args, statuses)
}

// CancelExpiredPending closes pending entries whose effective time has come
// without a decision.
func (r *LedgerRepository) CancelExpiredPending(ctx context.Context, now time.Time) ([]*domain.Entry, error) {
	query := `UPDATE ledger_entries
			  SET status = $1, closed_by = $2, closed_at = $3, updated_at = $3
			  WHERE status = $4 AND effective_at IS NOT NULL AND effective_at <= $3
			  RETURNING ` + entryColumns

	rows, err := r.db.Master.QueryContext(ctx, query, domain.EntryCancelled, domain.SystemActor, now, domain.EntryPending)
	if err != nil {
		return nil, fmt.Errorf("cancel expired: %w", err)
	}
	defer rows.Close()

	return scanEntries(rows)
}

func (r *LedgerRepository) MarkPaid(ctx context.Context, buildingID, id string, at time.Time) (*domain.Entry, error) {
	query := `UPDATE ledger_entries
			  SET payment_status = $3, updated_at = $4
			  WHERE id = $1 AND building_id = $2 AND payment_status = $5 AND status = ANY($6)
			  RETURNING ` + entryColumns

	row := r.db.Master.QueryRowContext(
		ctx, query, id, buildingID, domain.PaymentPaid, at,
		domain.PaymentUnpaid, statusArray(domain.HoldingStatuses),
	)
	e, err := scanEntry(row)
	if err == nil {
		return e, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("mark paid: %w", err)
	}

	ok, err := exists(ctx, r.db, `SELECT 1 FROM ledger_entries WHERE id = $1 AND building_id = $2`, id, buildingID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrEntryNotFound
	}
	return nil, domain.ErrInvalidTransition
}

func (r *LedgerRepository) CountByStatus(ctx context.Context, buildingID string) (map[domain.EntryStatus]int, error) {
	query := `SELECT status, COUNT(*)
			  FROM ledger_entries
			  WHERE building_id = $1
			  GROUP BY status`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, buildingID)
	if err != nil {
		return nil, fmt.Errorf("count entries: %w", err)
	}
	defer rows.Close()

	res := make(map[domain.EntryStatus]int)
	for rows.Next() {
		var (
			status domain.EntryStatus
			count  int
		)
		if err = rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("scan count: %w", err)
		}
		res[status] = count
	}

	return res, rows.Err()
}

// list appends the status filter only when one is given.
func (r *LedgerRepository) list(ctx context.Context, query string, args []any, statuses []domain.EntryStatus) ([]*domain.Entry, error) {
	if len(statuses) > 0 {
		args = append(args, statusArray(statuses))
		query += fmt.Sprintf(" AND status = ANY($%d)", len(args))
	}
	query += " ORDER BY created_at DESC"

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}
	defer rows.Close()

	return scanEntries(rows)
}

func scanEntries(rows *sql.Rows) ([]*domain.Entry, error) {
	var res []*domain.Entry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("scan entry: %w", err)
		}
		res = append(res, e)
	}
	return res, rows.Err()
}

func scanEntry(s scanner) (*domain.Entry, error) {
	var e domain.Entry
	if err := s.Scan(
		&e.ID, &e.BuildingID, &e.Class, &e.ResourceID, &e.MemberID, &e.UnitID, &e.Status, &e.Policy,
		&e.EffectiveAt, &e.Amount, &e.PaymentStatus, &e.Note, &e.DedupeKey, &e.CreatedBy, &e.CreatedAt,
		&e.DecidedBy, &e.DecidedAt, &e.ClosedBy, &e.ClosedAt, &e.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &e, nil
}
