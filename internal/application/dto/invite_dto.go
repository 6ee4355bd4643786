package dto

import "time"

// CreateInviteRequest body para POST /api/invites.
type CreateInviteRequest struct {
	WorkerEmail string `json:"worker_email" validate:"required,email"`
}

// InviteResponse salida de una invitación.
type InviteResponse struct {
	ID          string    `json:"id"`
	WorkerEmail string    `json:"worker_email"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}
