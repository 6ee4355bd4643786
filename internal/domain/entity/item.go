package entity

import "time"

// Estados válidos para Item.
const (
	ItemStatusAvailable = "available"
	ItemStatusSold      = "sold"
)

// SoldDateLayout formato de la fecha de venta (solo fecha calendario, sin hora).
const SoldDateLayout = "2006-01-02"

// Item es una unidad serializada de stock. ItemNumber forma una secuencia
// densa 1..N dentro de su sub-categoría (se renumera al borrar).
// SoldDate está presente si y solo si Status=sold.
type Item struct {
	ID            string
	SubCategoryID string
	ItemNumber    int
	Status        string     // available, sold
	SoldDate      *time.Time // fecha calendario; nil si available
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// SoldDateString devuelve la fecha de venta como "2006-01-02", o vacío si no aplica.
func (i *Item) SoldDateString() string {
	if i.SoldDate == nil {
		return ""
	}
	return i.SoldDate.Format(SoldDateLayout)
}
