// Package inventory contiene el núcleo de agregación del inventario: el árbol
// en memoria (categoría → sub-categoría → ítems) y las vistas derivadas
// (búsqueda, proyección por rol, reporte financiero, stock bajo, ventas por
// fecha). Todas las funciones son puras; la persistencia vive en los adaptadores.
package inventory

import (
	"github.com/shopspring/decimal"

	"github.com/dukastock/duka-stock-api/internal/domain/entity"
)

// Item es una unidad serializada dentro del árbol. SoldDate es la fecha
// calendario "2006-01-02"; vacía si el ítem está disponible.
type Item struct {
	ID         string
	ItemNumber int
	Status     string // entity.ItemStatusAvailable | entity.ItemStatusSold
	SoldDate   string
}

// SubCategory agrupa ítems bajo un nombre y un par de precios.
type SubCategory struct {
	ID           string
	Name         string
	BuyingPrice  decimal.Decimal
	SellingPrice decimal.Decimal
	Items        []Item
}

// Category es una categoría principal con sus sub-categorías.
type Category struct {
	ID            string
	Name          string
	SubCategories []SubCategory
}

// Tree es el inventario completo de un jefe, en el orden de lectura
// (categorías por nombre, ítems por número).
type Tree []Category

// Sold indica si el ítem está vendido.
func (i Item) Sold() bool { return i.Status == entity.ItemStatusSold }

// AvailableCount cuenta los ítems disponibles de la sub-categoría.
func (s SubCategory) AvailableCount() int {
	n := 0
	for _, it := range s.Items {
		if !it.Sold() {
			n++
		}
	}
	return n
}

// ProjectForRole devuelve la vista del árbol permitida para el rol: los
// workers observan BuyingPrice=0 en todas las sub-categorías, sin importar el
// valor almacenado. Es una proyección de lectura, no muta el árbol recibido.
func ProjectForRole(tree Tree, role string) Tree {
	if role != entity.RoleWorker {
		return tree
	}
	out := make(Tree, len(tree))
	for ci, cat := range tree {
		projected := cat
		projected.SubCategories = make([]SubCategory, len(cat.SubCategories))
		for si, sub := range cat.SubCategories {
			sub.BuyingPrice = decimal.Zero
			projected.SubCategories[si] = sub
		}
		out[ci] = projected
	}
	return out
}
