package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/stpnv0/SocietyBooker/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgExclusionViolation  = "23P01"
)

type scanner interface {
	Scan(dest ...any) error
}

// readStrategy is used for idempotent reads only. Conditional writes are
// never retried: a lost reply could have been applied.
func readStrategy() retry.Strategy {
	return retry.Strategy{
		Attempts: 3,
		Delay:    500 * time.Millisecond,
		Backoff:  2,
	}
}

func pgCode(err error) string {
	var pgErr *pq.Error
	if errors.As(err, &pgErr) {
		return string(pgErr.Code)
	}
	return ""
}

func affected(res sql.Result) (int64, error) {
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected: %w", err)
	}
	return n, nil
}

// exists tells a missing row apart from a failed condition after a
// conditional update touched nothing.
func exists(ctx context.Context, db *dbpg.DB, query string, args ...any) (bool, error) {
	var one int
	err := db.Master.QueryRowContext(ctx, query, args...).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("check existence: %w", err)
	}
	return true, nil
}

func statusArray(statuses []domain.EntryStatus) pq.StringArray {
	arr := make(pq.StringArray, len(statuses))
	for i, st := range statuses {
		arr[i] = string(st)
	}
	return arr
}
