package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/dukastock/duka-stock-api/internal/domain/entity"
	"github.com/dukastock/duka-stock-api/internal/domain/repository"
)

var _ repository.ItemRepository = (*ItemRepo)(nil)

// ItemRepo implementación del puerto ItemRepository sobre PostgreSQL (usable con pool o tx).
type ItemRepo struct {
	q Querier
}

// NewItemRepository construye el adaptador de persistencia para ítems. Pasar pool o tx (Querier).
func NewItemRepository(q Querier) *ItemRepo {
	return &ItemRepo{q: q}
}

// GetByID obtiene un ítem por ID.
func (r *ItemRepo) GetByID(id string) (*entity.Item, error) {
	query := `
		SELECT id, sub_category_id, item_number, status, sold_date, created_at, updated_at
		FROM items WHERE id = $1`
	var it entity.Item
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&it.ID, &it.SubCategoryID, &it.ItemNumber, &it.Status, &it.SoldDate, &it.CreatedAt, &it.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get item: %w", err)
	}
	return &it, nil
}

// CountBySubCategory cuenta los ítems de una sub-categoría (cualquier estado).
func (r *ItemRepo) CountBySubCategory(subCategoryID string) (int, error) {
	var count int
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM items WHERE sub_category_id = $1`, subCategoryID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count items: %w", err)
	}
	return count, nil
}

// CreateBatch inserta un lote de ítems con CopyFrom (eficiente para lotes grandes).
func (r *ItemRepo) CreateBatch(items []*entity.Item) error {
	rows := make([][]any, 0, len(items))
	for _, it := range items {
		rows = append(rows, []any{
			it.ID, it.SubCategoryID, it.ItemNumber, it.Status, it.SoldDate, it.CreatedAt, it.UpdatedAt,
		})
	}
	_, err := r.q.CopyFrom(context.Background(),
		pgx.Identifier{"items"},
		[]string{"id", "sub_category_id", "item_number", "status", "sold_date", "created_at", "updated_at"},
		pgx.CopyFromRows(rows),
	)
	if err != nil {
		return fmt.Errorf("copy items: %w", err)
	}
	return nil
}

// MarkSold marca el ítem como vendido con la fecha indicada.
func (r *ItemRepo) MarkSold(id string, soldDate time.Time) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE items SET status = $2, sold_date = $3, updated_at = now() WHERE id = $1`,
		id, entity.ItemStatusSold, soldDate,
	)
	if err != nil {
		return fmt.Errorf("mark item sold: %w", err)
	}
	return nil
}

// MarkAvailable devuelve el ítem a disponible y limpia la fecha de venta.
func (r *ItemRepo) MarkAvailable(id string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE items SET status = $2, sold_date = NULL, updated_at = now() WHERE id = $1`,
		id, entity.ItemStatusAvailable,
	)
	if err != nil {
		return fmt.Errorf("mark item available: %w", err)
	}
	return nil
}

// Delete elimina un ítem por ID.
func (r *ItemRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	return nil
}

// Renumber reasigna item_number = 1..N en orden del número actual con un solo
// UPDATE sobre ROW_NUMBER(). Es idempotente: re-ejecutarla sobre una secuencia
// ya densa no cambia nada.
func (r *ItemRepo) Renumber(subCategoryID string) error {
	query := `
		UPDATE items i
		SET item_number = ranked.new_number, updated_at = now()
		FROM (
			SELECT id, ROW_NUMBER() OVER (ORDER BY item_number) AS new_number
			FROM items WHERE sub_category_id = $1
		) ranked
		WHERE i.id = ranked.id AND i.item_number <> ranked.new_number`
	_, err := r.q.Exec(context.Background(), query, subCategoryID)
	if err != nil {
		return fmt.Errorf("renumber items: %w", err)
	}
	return nil
}
