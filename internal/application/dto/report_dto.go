package dto

import "github.com/shopspring/decimal"

// SoldItemDTO ítem vendido enriquecido con los datos de su sub-categoría.
type SoldItemDTO struct {
	ItemID       string          `json:"item_id"`
	ItemNumber   int             `json:"item_number"`
	Name         string          `json:"name"`
	SoldDate     string          `json:"sold_date"`
	SellingPrice decimal.Decimal `json:"selling_price"`
	Profit       decimal.Decimal `json:"profit"` // venta − compra (0 de compra para workers)
}

// FinancialReportDTO agregado financiero del inventario visible.
type FinancialReportDTO struct {
	Revenue    decimal.Decimal `json:"revenue"`
	Cost       decimal.Decimal `json:"cost"`
	Profit     decimal.Decimal `json:"profit"`
	SoldCount  int             `json:"sold_count"`
	TopSellers []SoldItemDTO   `json:"top_sellers"`
	Currency   string          `json:"currency"`
}

// SalesGroupDTO ventas de una fecha con su subtotal.
type SalesGroupDTO struct {
	Date     string          `json:"date"`
	Items    []SoldItemDTO   `json:"items"`
	Subtotal decimal.Decimal `json:"subtotal"`
}

// SalesRecordDTO registro de ventas agrupado por fecha (descendente).
type SalesRecordDTO struct {
	Groups     []SalesGroupDTO `json:"groups"`
	GrandTotal decimal.Decimal `json:"grand_total"`
	Currency   string          `json:"currency"`
}

// LowStockEntryDTO sub-categoría marcada para reposición.
type LowStockEntryDTO struct {
	SubCategoryID string `json:"sub_category_id"`
	Name          string `json:"name"`
	CategoryName  string `json:"category_name"`
	Available     int    `json:"available"`
}

// LowStockResponse alertas de reposición, la más urgente primero.
type LowStockResponse struct {
	Threshold int                `json:"threshold"`
	Entries   []LowStockEntryDTO `json:"entries"`
}

// InsightResponse resumen de desempeño generado por IA.
type InsightResponse struct {
	Summary string `json:"summary"`
}
