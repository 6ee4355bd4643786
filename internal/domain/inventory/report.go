package inventory

import (
	"sort"

	"github.com/shopspring/decimal"
)

// TopSellersCount número de ítems en el ranking de más vendidos del reporte.
const TopSellersCount = 5

// SoldItem es un ítem vendido enriquecido con los datos de su sub-categoría,
// tal como lo consumen el reporte financiero y el registro de ventas.
type SoldItem struct {
	ItemID       string
	ItemNumber   int
	Name         string // nombre de la sub-categoría
	SoldDate     string
	BuyingPrice  decimal.Decimal
	SellingPrice decimal.Decimal
}

// Report es el agregado financiero sobre los ítems vendidos del árbol visible.
// Para un worker el árbol ya viene proyectado (BuyingPrice=0), así que Cost=0
// y Profit=Revenue.
type Report struct {
	Revenue    decimal.Decimal
	Cost       decimal.Decimal
	Profit     decimal.Decimal
	SoldCount  int
	SoldItems  []SoldItem
	TopSellers []SoldItem
}

// CollectSold aplana el árbol a la lista de ítems vendidos, en orden de
// recorrido (categorías, sub-categorías e ítems en su orden original).
func CollectSold(tree Tree) []SoldItem {
	var sold []SoldItem
	for _, cat := range tree {
		for _, sub := range cat.SubCategories {
			for _, it := range sub.Items {
				if !it.Sold() {
					continue
				}
				sold = append(sold, SoldItem{
					ItemID:       it.ID,
					ItemNumber:   it.ItemNumber,
					Name:         sub.Name,
					SoldDate:     it.SoldDate,
					BuyingPrice:  sub.BuyingPrice,
					SellingPrice: sub.SellingPrice,
				})
			}
		}
	}
	return sold
}

// BuildReport calcula ingresos, costos y utilidad sobre los ítems vendidos:
// Revenue = Σ SellingPrice, Cost = Σ BuyingPrice, Profit = Revenue − Cost.
// TopSellers son los vendidos ordenados por SellingPrice descendente (orden
// estable: los empates conservan el orden de recorrido), primeros 5.
func BuildReport(tree Tree) Report {
	sold := CollectSold(tree)

	revenue := decimal.Zero
	cost := decimal.Zero
	for _, s := range sold {
		revenue = revenue.Add(s.SellingPrice)
		cost = cost.Add(s.BuyingPrice)
	}

	top := make([]SoldItem, len(sold))
	copy(top, sold)
	sort.SliceStable(top, func(i, j int) bool {
		return top[i].SellingPrice.GreaterThan(top[j].SellingPrice)
	})
	if len(top) > TopSellersCount {
		top = top[:TopSellersCount]
	}

	return Report{
		Revenue:    revenue,
		Cost:       cost,
		Profit:     revenue.Sub(cost),
		SoldCount:  len(sold),
		SoldItems:  sold,
		TopSellers: top,
	}
}
