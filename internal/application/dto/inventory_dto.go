package dto

import "github.com/shopspring/decimal"

// CreateCategoryRequest body para POST /api/categories.
type CreateCategoryRequest struct {
	Name string `json:"name" validate:"required,min=1"`
}

// UpdateCategoryRequest body para PUT /api/categories/{id}.
type UpdateCategoryRequest struct {
	Name string `json:"name" validate:"required,min=1"`
}

// CreateSubCategoryRequest body para POST /api/categories/{id}/subcategories.
type CreateSubCategoryRequest struct {
	Name         string          `json:"name" validate:"required,min=1"`
	BuyingPrice  decimal.Decimal `json:"buying_price"`
	SellingPrice decimal.Decimal `json:"selling_price"`
}

// UpdateSubCategoryRequest body para PUT /api/subcategories/{id}.
// Punteros: solo los campos presentes se reemplazan.
type UpdateSubCategoryRequest struct {
	Name         *string          `json:"name,omitempty"`
	BuyingPrice  *decimal.Decimal `json:"buying_price,omitempty"`
	SellingPrice *decimal.Decimal `json:"selling_price,omitempty"`
}

// AddStockRequest body para POST /api/subcategories/{id}/stock.
type AddStockRequest struct {
	Quantity int `json:"quantity" validate:"required,min=1"`
}

// SellItemRequest body para POST /api/items/{id}/sell. SoldDate en formato
// "2006-01-02", restringida a [ayer, hoy].
type SellItemRequest struct {
	SoldDate string `json:"sold_date" validate:"required"`
}

// ItemDTO representación de un ítem en el árbol.
type ItemDTO struct {
	ID         string `json:"id"`
	ItemNumber int    `json:"item_number"`
	Status     string `json:"status"`
	SoldDate   string `json:"sold_date,omitempty"`
}

// SubCategoryDTO sub-categoría con sus ítems. BuyingPrice llega en 0 para workers.
type SubCategoryDTO struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	BuyingPrice  decimal.Decimal `json:"buying_price"`
	SellingPrice decimal.Decimal `json:"selling_price"`
	Items        []ItemDTO       `json:"items"`
}

// CategoryDTO categoría principal con sus sub-categorías.
type CategoryDTO struct {
	ID            string           `json:"id"`
	Name          string           `json:"name"`
	SubCategories []SubCategoryDTO `json:"sub_categories"`
}

// TreeResponse el inventario completo visible para el solicitante.
type TreeResponse struct {
	Categories []CategoryDTO `json:"categories"`
}
