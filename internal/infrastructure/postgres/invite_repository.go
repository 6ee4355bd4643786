package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/dukastock/duka-stock-api/internal/domain"
	"github.com/dukastock/duka-stock-api/internal/domain/entity"
	"github.com/dukastock/duka-stock-api/internal/domain/repository"
)

var _ repository.InviteRepository = (*InviteRepo)(nil)

// InviteRepo implementación del puerto InviteRepository sobre PostgreSQL (usable con pool o tx).
type InviteRepo struct {
	q Querier
}

// NewInviteRepository construye el adaptador de persistencia para invitaciones. Pasar pool o tx (Querier).
func NewInviteRepository(q Querier) *InviteRepo {
	return &InviteRepo{q: q}
}

// Create persiste una invitación nueva.
func (r *InviteRepo) Create(invite *entity.Invite) error {
	query := `
		INSERT INTO invites (id, boss_id, worker_email, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		invite.ID, invite.BossID, invite.WorkerEmail, invite.Status,
		invite.CreatedAt, invite.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert invite: %w", err)
	}
	return nil
}

// GetPendingByEmail busca una invitación pendiente para el email. Si un email
// tiene varias, gana la más antigua (el primer jefe que invitó).
func (r *InviteRepo) GetPendingByEmail(email string) (*entity.Invite, error) {
	return r.getOne(`
		SELECT id, boss_id, worker_email, status, created_at, updated_at
		FROM invites WHERE worker_email = $1 AND status = $2
		ORDER BY created_at LIMIT 1`, email, entity.InviteStatusPending)
}

// GetByBossAndEmail busca la invitación de un jefe a un email (cualquier estado).
func (r *InviteRepo) GetByBossAndEmail(bossID, email string) (*entity.Invite, error) {
	return r.getOne(`
		SELECT id, boss_id, worker_email, status, created_at, updated_at
		FROM invites WHERE boss_id = $1 AND worker_email = $2`, bossID, email)
}

// ListByBoss lista las invitaciones de un jefe, la más reciente primero.
func (r *InviteRepo) ListByBoss(bossID string) ([]*entity.Invite, error) {
	rows, err := r.q.Query(context.Background(), `
		SELECT id, boss_id, worker_email, status, created_at, updated_at
		FROM invites WHERE boss_id = $1 ORDER BY created_at DESC`, bossID)
	if err != nil {
		return nil, fmt.Errorf("list invites: %w", err)
	}
	defer rows.Close()
	var list []*entity.Invite
	for rows.Next() {
		var in entity.Invite
		if err := rows.Scan(&in.ID, &in.BossID, &in.WorkerEmail, &in.Status, &in.CreatedAt, &in.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan invite: %w", err)
		}
		list = append(list, &in)
	}
	return list, rows.Err()
}

// MarkAccepted pasa la invitación a accepted.
func (r *InviteRepo) MarkAccepted(id string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE invites SET status = $2, updated_at = now() WHERE id = $1`,
		id, entity.InviteStatusAccepted,
	)
	if err != nil {
		return fmt.Errorf("mark invite accepted: %w", err)
	}
	return nil
}

func (r *InviteRepo) getOne(query string, args ...any) (*entity.Invite, error) {
	var in entity.Invite
	err := r.q.QueryRow(context.Background(), query, args...).Scan(
		&in.ID, &in.BossID, &in.WorkerEmail, &in.Status, &in.CreatedAt, &in.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get invite: %w", err)
	}
	return &in, nil
}
