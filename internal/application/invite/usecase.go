package invite

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dukastock/duka-stock-api/internal/application/dto"
	"github.com/dukastock/duka-stock-api/internal/domain"
	"github.com/dukastock/duka-stock-api/internal/domain/entity"
	"github.com/dukastock/duka-stock-api/internal/domain/repository"
)

// InviteUseCase gestiona las invitaciones de un jefe a sus workers.
type InviteUseCase struct {
	inviteRepo repository.InviteRepository
}

// NewInviteUseCase construye el caso de uso.
func NewInviteUseCase(inviteRepo repository.InviteRepository) *InviteUseCase {
	return &InviteUseCase{inviteRepo: inviteRepo}
}

// CreateInvite registra una invitación pendiente para el email indicado.
// El email se normaliza a minúsculas; un jefe no puede invitar dos veces
// al mismo email.
func (uc *InviteUseCase) CreateInvite(bossID string, in dto.CreateInviteRequest) (*dto.InviteResponse, error) {
	email := strings.ToLower(strings.TrimSpace(in.WorkerEmail))
	if email == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.inviteRepo.GetByBossAndEmail(bossID, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	invite := &entity.Invite{
		ID:          uuid.New().String(),
		BossID:      bossID,
		WorkerEmail: email,
		Status:      entity.InviteStatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.inviteRepo.Create(invite); err != nil {
		return nil, err
	}
	return toInviteResponse(invite), nil
}

// ListInvites devuelve las invitaciones emitidas por el jefe.
func (uc *InviteUseCase) ListInvites(bossID string) ([]dto.InviteResponse, error) {
	invites, err := uc.inviteRepo.ListByBoss(bossID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.InviteResponse, 0, len(invites))
	for _, in := range invites {
		out = append(out, *toInviteResponse(in))
	}
	return out, nil
}

func toInviteResponse(i *entity.Invite) *dto.InviteResponse {
	return &dto.InviteResponse{
		ID:          i.ID,
		WorkerEmail: i.WorkerEmail,
		Status:      i.Status,
		CreatedAt:   i.CreatedAt,
	}
}
