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

const memberColumns = `id, building_id, block_id, unit_id, name, phone, role, telegram_chat_id, created_at, deleted_at`

type MemberRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewMemberRepo(db *dbpg.DB) *MemberRepository {
	return &MemberRepository{db: db, strategy: readStrategy()}
}

func (r *MemberRepository) Create(ctx context.Context, m *domain.Member) error {
	query := `INSERT INTO members (id, building_id, block_id, unit_id, name, phone, role, telegram_chat_id, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.db.Master.ExecContext(
		ctx, query, m.ID, m.BuildingID, m.BlockID, m.UnitID,
		m.Name, m.Phone, m.Role, m.TelegramChatID, m.CreatedAt,
	)
	if err != nil {
		if pgCode(err) == pgUniqueViolation {
			return domain.ErrPhoneTaken
		}
		return fmt.Errorf("insert member: %w", err)
	}

	return nil
}

func (r *MemberRepository) GetByID(ctx context.Context, buildingID, id string) (*domain.Member, error) {
	query := `SELECT ` + memberColumns + `
			  FROM members
			  WHERE id = $1 AND building_id = $2 AND deleted_at IS NULL`

	return r.getOne(ctx, query, id, buildingID)
}

func (r *MemberRepository) GetByPhone(ctx context.Context, phone string) (*domain.Member, error) {
	query := `SELECT ` + memberColumns + `
			  FROM members
			  WHERE phone = $1 AND deleted_at IS NULL`

	return r.getOne(ctx, query, phone)
}

func (r *MemberRepository) getOne(ctx context.Context, query string, args ...any) (*domain.Member, error) {
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, fmt.Errorf("get member: %w", err)
	}

	var m domain.Member
	if err = row.Scan(
		&m.ID, &m.BuildingID, &m.BlockID, &m.UnitID, &m.Name,
		&m.Phone, &m.Role, &m.TelegramChatID, &m.CreatedAt, &m.DeletedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrMemberNotFound
		}
		return nil, fmt.Errorf("scan member: %w", err)
	}

	return &m, nil
}
