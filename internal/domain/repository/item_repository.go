package repository

import (
	"time"

	"github.com/dukastock/duka-stock-api/internal/domain/entity"
)

// ItemRepository define el puerto de persistencia para ítems serializados (DIP).
// Delete y Renumber se usan juntos dentro de una transacción (ver TxRunner):
// borrar un ítem y recompactar la numeración es una sola operación lógica.
type ItemRepository interface {
	GetByID(id string) (*entity.Item, error)
	CountBySubCategory(subCategoryID string) (int, error)
	CreateBatch(items []*entity.Item) error
	MarkSold(id string, soldDate time.Time) error
	MarkAvailable(id string) error
	Delete(id string) error

	// Renumber reasigna item_number = 1..N a los ítems restantes de la
	// sub-categoría, en orden ascendente del número actual. Es idempotente.
	Renumber(subCategoryID string) error
}
