package inventory

import (
	"context"

	"github.com/dukastock/duka-stock-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando un
// repositorio de ítems atado a esa tx. Garantiza que borrar un ítem y
// renumerar sus hermanos sea todo-o-nada: sin transacción, un fallo a mitad
// de la renumeración dejaría la secuencia con huecos.
type TxRunner interface {
	Run(ctx context.Context, fn func(itemRepo repository.ItemRepository) error) error
}
