package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/dukastock/duka-stock-api/internal/domain"
	"github.com/dukastock/duka-stock-api/internal/domain/entity"
	"github.com/dukastock/duka-stock-api/internal/domain/inventory"
	"github.com/dukastock/duka-stock-api/internal/domain/repository"
)

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

// CategoryRepo implementación del puerto CategoryRepository sobre PostgreSQL (usable con pool o tx).
type CategoryRepo struct {
	q Querier
}

// NewCategoryRepository construye el adaptador de persistencia para categorías. Pasar pool o tx (Querier).
func NewCategoryRepository(q Querier) *CategoryRepo {
	return &CategoryRepo{q: q}
}

// CreateMain persiste una categoría principal.
func (r *CategoryRepo) CreateMain(category *entity.MainCategory) error {
	query := `
		INSERT INTO main_categories (id, owner_id, name, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		category.ID, category.OwnerID, category.Name, category.CreatedAt, category.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert main category: %w", err)
	}
	return nil
}

// GetMainByID obtiene una categoría principal por ID.
func (r *CategoryRepo) GetMainByID(id string) (*entity.MainCategory, error) {
	var c entity.MainCategory
	err := r.q.QueryRow(context.Background(),
		`SELECT id, owner_id, name, created_at, updated_at FROM main_categories WHERE id = $1`, id,
	).Scan(&c.ID, &c.OwnerID, &c.Name, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get main category: %w", err)
	}
	return &c, nil
}

// UpdateMain actualiza nombre y updated_at de una categoría principal.
func (r *CategoryRepo) UpdateMain(category *entity.MainCategory) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE main_categories SET name = $2, updated_at = $3 WHERE id = $1`,
		category.ID, category.Name, category.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update main category: %w", err)
	}
	return nil
}

// CreateSub persiste una sub-categoría.
func (r *CategoryRepo) CreateSub(sub *entity.SubCategory) error {
	query := `
		INSERT INTO sub_categories (id, main_category_id, name, buying_price, selling_price, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		sub.ID, sub.MainCategoryID, sub.Name, sub.BuyingPrice, sub.SellingPrice,
		sub.CreatedAt, sub.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert sub category: %w", err)
	}
	return nil
}

// GetSubByID obtiene una sub-categoría por ID.
func (r *CategoryRepo) GetSubByID(id string) (*entity.SubCategory, error) {
	var s entity.SubCategory
	err := r.q.QueryRow(context.Background(),
		`SELECT id, main_category_id, name, buying_price, selling_price, created_at, updated_at
		FROM sub_categories WHERE id = $1`, id,
	).Scan(&s.ID, &s.MainCategoryID, &s.Name, &s.BuyingPrice, &s.SellingPrice, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sub category: %w", err)
	}
	return &s, nil
}

// UpdateSub actualiza nombre, precios y updated_at de una sub-categoría.
func (r *CategoryRepo) UpdateSub(sub *entity.SubCategory) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE sub_categories SET name = $2, buying_price = $3, selling_price = $4, updated_at = $5 WHERE id = $1`,
		sub.ID, sub.Name, sub.BuyingPrice, sub.SellingPrice, sub.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update sub category: %w", err)
	}
	return nil
}

// subRow y itemRow son destinos de scan anulables: con LEFT JOIN las columnas
// de la rama ausente llegan como NULL.
type subRow struct {
	ID           *string
	Name         *string
	BuyingPrice  *decimal.Decimal
	SellingPrice *decimal.Decimal
}

type itemRow struct {
	ID         *string
	ItemNumber *int
	Status     *string
	SoldDate   *string
}

// GetTreeByOwner carga el árbol completo del jefe en una sola consulta con
// LEFT JOINs, para que categorías y sub-categorías vacías también aparezcan.
// Orden: categorías y sub-categorías por nombre, ítems por número.
func (r *CategoryRepo) GetTreeByOwner(ownerID string) (inventory.Tree, error) {
	query := `
		SELECT mc.id, mc.name,
		       sc.id, sc.name, sc.buying_price, sc.selling_price,
		       i.id, i.item_number, i.status, to_char(i.sold_date, 'YYYY-MM-DD')
		FROM main_categories mc
		LEFT JOIN sub_categories sc ON sc.main_category_id = mc.id
		LEFT JOIN items i ON i.sub_category_id = sc.id
		WHERE mc.owner_id = $1
		ORDER BY mc.name, mc.id, sc.name, sc.id, i.item_number`
	rows, err := r.q.Query(context.Background(), query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("get tree: %w", err)
	}
	defer rows.Close()

	tree := inventory.Tree{}
	catIdx := map[string]int{}
	subIdx := map[string]int{}
	for rows.Next() {
		var (
			catID, catName string
			sub            subRow
			item           itemRow
		)
		if err := rows.Scan(
			&catID, &catName,
			&sub.ID, &sub.Name, &sub.BuyingPrice, &sub.SellingPrice,
			&item.ID, &item.ItemNumber, &item.Status, &item.SoldDate,
		); err != nil {
			return nil, fmt.Errorf("scan tree row: %w", err)
		}

		ci, ok := catIdx[catID]
		if !ok {
			ci = len(tree)
			catIdx[catID] = ci
			tree = append(tree, inventory.Category{ID: catID, Name: catName})
		}
		if sub.ID == nil {
			continue // categoría sin sub-categorías
		}
		si, ok := subIdx[*sub.ID]
		if !ok {
			si = len(tree[ci].SubCategories)
			subIdx[*sub.ID] = si
			tree[ci].SubCategories = append(tree[ci].SubCategories, inventory.SubCategory{
				ID:           *sub.ID,
				Name:         *sub.Name,
				BuyingPrice:  *sub.BuyingPrice,
				SellingPrice: *sub.SellingPrice,
			})
		}
		if item.ID == nil {
			continue // sub-categoría sin ítems
		}
		soldDate := ""
		if item.SoldDate != nil {
			soldDate = *item.SoldDate
		}
		tree[ci].SubCategories[si].Items = append(tree[ci].SubCategories[si].Items, inventory.Item{
			ID:         *item.ID,
			ItemNumber: *item.ItemNumber,
			Status:     *item.Status,
			SoldDate:   soldDate,
		})
	}
	return tree, rows.Err()
}
