package repository

import "github.com/dukastock/duka-stock-api/internal/domain/entity"

// InviteRepository define el puerto de persistencia para invitaciones (DIP).
type InviteRepository interface {
	Create(invite *entity.Invite) error
	GetPendingByEmail(email string) (*entity.Invite, error)
	GetByBossAndEmail(bossID, email string) (*entity.Invite, error)
	ListByBoss(bossID string) ([]*entity.Invite, error)
	MarkAccepted(id string) error
}
