package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/dukastock/duka-stock-api/internal/application/dto"
	"github.com/dukastock/duka-stock-api/internal/domain"
	"github.com/dukastock/duka-stock-api/internal/domain/entity"
	"github.com/dukastock/duka-stock-api/internal/domain/repository"
)

// StockUseCase maneja el ciclo de vida de los ítems serializados: alta en
// lote, venta, reversión de venta y borrado con renumeración.
type StockUseCase struct {
	itemRepo     repository.ItemRepository
	categoryRepo repository.CategoryRepository
	txRunner     TxRunner
}

// NewStockUseCase construye el caso de uso.
func NewStockUseCase(itemRepo repository.ItemRepository, categoryRepo repository.CategoryRepository, txRunner TxRunner) *StockUseCase {
	return &StockUseCase{itemRepo: itemRepo, categoryRepo: categoryRepo, txRunner: txRunner}
}

// AddStock crea quantity ítems nuevos numerados a continuación de los
// existentes (count+1..count+quantity), todos disponibles.
func (uc *StockUseCase) AddStock(ownerID, subCategoryID string, in dto.AddStockRequest) ([]dto.ItemDTO, error) {
	if in.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}
	if _, err := uc.ownedSubCategory(ownerID, subCategoryID); err != nil {
		return nil, err
	}
	count, err := uc.itemRepo.CountBySubCategory(subCategoryID)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	items := make([]*entity.Item, 0, in.Quantity)
	for i := 1; i <= in.Quantity; i++ {
		items = append(items, &entity.Item{
			ID:            uuid.New().String(),
			SubCategoryID: subCategoryID,
			ItemNumber:    count + i,
			Status:        entity.ItemStatusAvailable,
			CreatedAt:     now,
			UpdatedAt:     now,
		})
	}
	if err := uc.itemRepo.CreateBatch(items); err != nil {
		return nil, err
	}
	out := make([]dto.ItemDTO, 0, len(items))
	for _, it := range items {
		out = append(out, toItemDTO(it))
	}
	return out, nil
}

// Sell marca un ítem disponible como vendido. La fecha de venta sólo puede
// ser hoy o ayer; un ítem ya vendido no se vende dos veces.
func (uc *StockUseCase) Sell(ownerID, itemID string, in dto.SellItemRequest) (*dto.ItemDTO, error) {
	soldDate, err := time.Parse(entity.SoldDateLayout, in.SoldDate)
	if err != nil {
		return nil, domain.ErrInvalidSoldDate
	}
	if !withinSellWindow(in.SoldDate, time.Now()) {
		return nil, domain.ErrInvalidSoldDate
	}
	item, err := uc.ownedItem(ownerID, itemID)
	if err != nil {
		return nil, err
	}
	if item.Status != entity.ItemStatusAvailable {
		return nil, domain.ErrConflict
	}
	if err := uc.itemRepo.MarkSold(itemID, soldDate); err != nil {
		return nil, err
	}
	item.Status = entity.ItemStatusSold
	item.SoldDate = &soldDate
	d := toItemDTO(item)
	return &d, nil
}

// Revert devuelve un ítem vendido al estado disponible, limpiando la fecha.
// La restricción de rol (solo jefe) se aplica en la capa HTTP.
func (uc *StockUseCase) Revert(ownerID, itemID string) (*dto.ItemDTO, error) {
	item, err := uc.ownedItem(ownerID, itemID)
	if err != nil {
		return nil, err
	}
	if item.Status != entity.ItemStatusSold {
		return nil, domain.ErrConflict
	}
	if err := uc.itemRepo.MarkAvailable(itemID); err != nil {
		return nil, err
	}
	item.Status = entity.ItemStatusAvailable
	item.SoldDate = nil
	d := toItemDTO(item)
	return &d, nil
}

// DeleteItem borra el ítem y renumera a sus hermanos en la misma transacción,
// de modo que la secuencia 1..N nunca queda con huecos visibles.
func (uc *StockUseCase) DeleteItem(ctx context.Context, ownerID, itemID string) error {
	item, err := uc.ownedItem(ownerID, itemID)
	if err != nil {
		return err
	}
	return uc.txRunner.Run(ctx, func(itemRepo repository.ItemRepository) error {
		if err := itemRepo.Delete(item.ID); err != nil {
			return err
		}
		return itemRepo.Renumber(item.SubCategoryID)
	})
}

// ownedItem carga el ítem y verifica, subiendo por la jerarquía, que su
// categoría pertenezca al dueño del inventario visible para el caller.
func (uc *StockUseCase) ownedItem(ownerID, itemID string) (*entity.Item, error) {
	item, err := uc.itemRepo.GetByID(itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	if _, err := uc.ownedSubCategory(ownerID, item.SubCategoryID); err != nil {
		return nil, err
	}
	return item, nil
}

func (uc *StockUseCase) ownedSubCategory(ownerID, subCategoryID string) (*entity.SubCategory, error) {
	sub, err := uc.categoryRepo.GetSubByID(subCategoryID)
	if err != nil {
		return nil, err
	}
	if sub == nil {
		return nil, domain.ErrNotFound
	}
	category, err := uc.categoryRepo.GetMainByID(sub.MainCategoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrNotFound
	}
	if category.OwnerID != ownerID {
		return nil, domain.ErrForbidden
	}
	return sub, nil
}

// withinSellWindow acepta solo la fecha de hoy o la de ayer. Se compara por
// cadena calendario para ignorar la hora del reloj.
func withinSellWindow(soldDate string, now time.Time) bool {
	today := now.Format(entity.SoldDateLayout)
	yesterday := now.AddDate(0, 0, -1).Format(entity.SoldDateLayout)
	return soldDate == today || soldDate == yesterday
}

func toItemDTO(i *entity.Item) dto.ItemDTO {
	return dto.ItemDTO{
		ID:         i.ID,
		ItemNumber: i.ItemNumber,
		Status:     i.Status,
		SoldDate:   i.SoldDateString(),
	}
}
