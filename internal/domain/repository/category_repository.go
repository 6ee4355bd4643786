package repository

import (
	"github.com/dukastock/duka-stock-api/internal/domain/entity"
	"github.com/dukastock/duka-stock-api/internal/domain/inventory"
)

// CategoryRepository define el puerto de persistencia para categorías
// principales y sub-categorías (DIP).
type CategoryRepository interface {
	CreateMain(category *entity.MainCategory) error
	GetMainByID(id string) (*entity.MainCategory, error)
	UpdateMain(category *entity.MainCategory) error

	CreateSub(sub *entity.SubCategory) error
	GetSubByID(id string) (*entity.SubCategory, error)
	UpdateSub(sub *entity.SubCategory) error

	// GetTreeByOwner carga el árbol completo del jefe en una sola consulta
	// relacional: categorías por nombre ascendente, ítems por número ascendente.
	GetTreeByOwner(ownerID string) (inventory.Tree, error)
}
