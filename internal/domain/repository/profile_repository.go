package repository

import "github.com/dukastock/duka-stock-api/internal/domain/entity"

// ProfileRepository define el puerto de persistencia para Profile (DIP).
type ProfileRepository interface {
	Create(profile *entity.Profile) error
	GetByID(id string) (*entity.Profile, error)
	FindByEmail(email string) (*entity.Profile, error)
}
