package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// MainCategory representa una categoría principal del inventario de un jefe.
// El nombre es texto libre y no se exige único.
type MainCategory struct {
	ID        string
	OwnerID   string // boss que la creó
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// SubCategory representa una sub-categoría con precios. BuyingPrice solo es
// visible para el rol boss; los workers siempre lo observan como 0.
type SubCategory struct {
	ID             string
	MainCategoryID string
	Name           string
	BuyingPrice    decimal.Decimal // precio de compra, >= 0
	SellingPrice   decimal.Decimal // precio de venta, >= 0
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
