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

var _ repository.ProfileRepository = (*ProfileRepo)(nil)

// ProfileRepo implementación del puerto ProfileRepository sobre PostgreSQL (usable con pool o tx).
type ProfileRepo struct {
	q Querier
}

// NewProfileRepository construye el adaptador de persistencia para perfiles. Pasar pool o tx (Querier).
func NewProfileRepository(q Querier) *ProfileRepo {
	return &ProfileRepo{q: q}
}

// Create persiste un nuevo perfil. boss_id es NULL para jefes.
func (r *ProfileRepo) Create(profile *entity.Profile) error {
	query := `
		INSERT INTO profiles (id, email, password_hash, role, boss_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NULLIF($5, ''), $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		profile.ID, profile.Email, profile.PasswordHash, profile.Role, profile.BossID,
		profile.CreatedAt, profile.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert profile: %w", err)
	}
	return nil
}

// GetByID obtiene un perfil por ID.
func (r *ProfileRepo) GetByID(id string) (*entity.Profile, error) {
	return r.getOne(`SELECT id, email, password_hash, role, COALESCE(boss_id, ''), created_at, updated_at
		FROM profiles WHERE id = $1`, id)
}

// FindByEmail obtiene un perfil por email (ya normalizado a minúsculas).
func (r *ProfileRepo) FindByEmail(email string) (*entity.Profile, error) {
	return r.getOne(`SELECT id, email, password_hash, role, COALESCE(boss_id, ''), created_at, updated_at
		FROM profiles WHERE email = $1`, email)
}

func (r *ProfileRepo) getOne(query string, arg any) (*entity.Profile, error) {
	var p entity.Profile
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&p.ID, &p.Email, &p.PasswordHash, &p.Role, &p.BossID, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get profile: %w", err)
	}
	return &p, nil
}
