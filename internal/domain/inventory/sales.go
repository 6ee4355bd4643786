package inventory

import (
	"sort"

	"github.com/shopspring/decimal"
)

// SalesGroup agrupa las ventas de una fecha calendario exacta.
type SalesGroup struct {
	Date     string // "2006-01-02"
	Items    []SoldItem
	Subtotal decimal.Decimal // Σ SellingPrice de los miembros
}

// SalesRecord es el registro de ventas agrupado por fecha, ordenado
// descendente por fecha para presentación.
type SalesRecord struct {
	Groups     []SalesGroup
	GrandTotal decimal.Decimal // Σ de los subtotales
}

// SalesByDate agrupa los ítems vendidos por su fecha de venta (coincidencia
// exacta del string de fecha, sin normalización de zona horaria). Dentro de
// cada grupo los ítems conservan el orden de recorrido del árbol.
func SalesByDate(tree Tree) SalesRecord {
	sold := CollectSold(tree)

	byDate := make(map[string][]SoldItem)
	var dates []string
	for _, s := range sold {
		if s.SoldDate == "" {
			continue
		}
		if _, seen := byDate[s.SoldDate]; !seen {
			dates = append(dates, s.SoldDate)
		}
		byDate[s.SoldDate] = append(byDate[s.SoldDate], s)
	}

	// El formato "2006-01-02" ordena lexicográficamente igual que cronológicamente.
	sort.Sort(sort.Reverse(sort.StringSlice(dates)))

	record := SalesRecord{Groups: make([]SalesGroup, 0, len(dates))}
	for _, date := range dates {
		items := byDate[date]
		subtotal := decimal.Zero
		for _, it := range items {
			subtotal = subtotal.Add(it.SellingPrice)
		}
		record.Groups = append(record.Groups, SalesGroup{Date: date, Items: items, Subtotal: subtotal})
		record.GrandTotal = record.GrandTotal.Add(subtotal)
	}
	return record
}
