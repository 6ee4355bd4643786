package inventory

import "sort"

// RestockThreshold umbral fijo de stock bajo: sub-categorías con cantidad
// disponible menor o igual a este valor disparan la alerta de reposición.
const RestockThreshold = 10

// LowStockEntry es una sub-categoría marcada para reposición.
type LowStockEntry struct {
	SubCategoryID string
	Name          string
	CategoryName  string
	Available     int
}

// LowStock detecta las sub-categorías con stock disponible <= RestockThreshold
// y las devuelve ordenadas ascendente por disponibilidad (la más urgente primero).
// El orden entre empates es el de recorrido del árbol (sort estable).
func LowStock(tree Tree) []LowStockEntry {
	var entries []LowStockEntry
	for _, cat := range tree {
		for _, sub := range cat.SubCategories {
			available := sub.AvailableCount()
			if available <= RestockThreshold {
				entries = append(entries, LowStockEntry{
					SubCategoryID: sub.ID,
					Name:          sub.Name,
					CategoryName:  cat.Name,
					Available:     available,
				})
			}
		}
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Available < entries[j].Available
	})
	return entries
}
