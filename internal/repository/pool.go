package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/stpnv0/SocietyBooker/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type PoolRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewPoolRepo(db *dbpg.DB) *PoolRepository {
	return &PoolRepository{db: db, strategy: readStrategy()}
}

func (r *PoolRepository) Create(ctx context.Context, p *domain.Pool) error {
	query := `INSERT INTO resource_pools (id, building_id, class, name, requires_approval, fee, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.db.Master.ExecContext(
		ctx, query, p.ID, p.BuildingID, p.Class,
		p.Name, p.RequiresApproval, p.Fee, p.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert pool: %w", err)
	}

	return nil
}

func (r *PoolRepository) GetByID(ctx context.Context, buildingID, id string) (*domain.Pool, error) {
	query := `SELECT id, building_id, class, name, requires_approval, fee, created_at, deleted_at
			  FROM resource_pools
			  WHERE id = $1 AND building_id = $2 AND deleted_at IS NULL`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id, buildingID)
	if err != nil {
		return nil, fmt.Errorf("get pool: %w", err)
	}

	p, err := scanPool(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrPoolNotFound
		}
		return nil, fmt.Errorf("scan pool: %w", err)
	}

	return p, nil
}

func (r *PoolRepository) List(ctx context.Context, buildingID string, class domain.ResourceClass) ([]*domain.Pool, error) {
	query := `SELECT id, building_id, class, name, requires_approval, fee, created_at, deleted_at
			  FROM resource_pools
			  WHERE building_id = $1 AND deleted_at IS NULL AND ($2 = '' OR class = $2)
			  ORDER BY name`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, buildingID, string(class))
	if err != nil {
		return nil, fmt.Errorf("list pools: %w", err)
	}
	defer rows.Close()

	var res []*domain.Pool
	for rows.Next() {
		p, err := scanPool(rows)
		if err != nil {
			return nil, fmt.Errorf("scan pool: %w", err)
		}
		res = append(res, p)
	}

	return res, rows.Err()
}

func scanPool(s scanner) (*domain.Pool, error) {
	var p domain.Pool
	if err := s.Scan(
		&p.ID, &p.BuildingID, &p.Class, &p.Name,
		&p.RequiresApproval, &p.Fee, &p.CreatedAt, &p.DeletedAt,
	); err != nil {
		return nil, err
	}
	return &p, nil
}
