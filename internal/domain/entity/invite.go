package entity

import "time"

// Estados válidos para Invite.
const (
	InviteStatusPending  = "pending"
	InviteStatusAccepted = "accepted"
)

// Invite registra la invitación de un jefe a un worker por email. Cuando el
// worker se registra con ese email queda vinculado al jefe y la invitación
// pasa a accepted.
type Invite struct {
	ID          string
	BossID      string
	WorkerEmail string // siempre minúsculas y sin espacios
	Status      string // pending, accepted
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
