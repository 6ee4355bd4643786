package entity

import "time"

// Roles válidos para Profile.
const (
	RoleBoss   = "boss"
	RoleWorker = "worker"
)

// Profile representa una cuenta del sistema. El rol y el vínculo al jefe son
// inmutables después del registro: un worker pertenece a exactamente un boss.
type Profile struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Role         string // boss, worker
	BossID       string // vacío si role=boss; id del jefe si role=worker
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// InventoryOwnerID devuelve el id del jefe dueño del inventario visible para
// este perfil: él mismo si es boss, su jefe vinculado si es worker.
func (p *Profile) InventoryOwnerID() string {
	if p.Role == RoleWorker {
		return p.BossID
	}
	return p.ID
}
