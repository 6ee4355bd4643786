package inventory_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dukastock/duka-stock-api/internal/domain/inventory"
)

// subWithAvailable construye una sub-categoría con n ítems disponibles y m vendidos.
func subWithAvailable(id, name string, available, sold int) inventory.SubCategory {
	sub := inventory.SubCategory{ID: id, Name: name, BuyingPrice: price(10), SellingPrice: price(20)}
	num := 1
	for i := 0; i < available; i++ {
		sub.Items = append(sub.Items, availableItem(fmt.Sprintf("%s-a%d", id, i), num))
		num++
	}
	for i := 0; i < sold; i++ {
		sub.Items = append(sub.Items, soldItem(fmt.Sprintf("%s-s%d", id, i), num, "2024-01-01"))
		num++
	}
	return sub
}

// Entran exactamente las sub-categorías con disponibles <= 10, ascendente por disponibilidad.
func TestLowStock_UmbralYOrden(t *testing.T) {
	tree := inventory.Tree{{
		ID: "c1", Name: "Electrónica",
		SubCategories: []inventory.SubCategory{
			subWithAvailable("s1", "Radios", 11, 0),    // por encima del umbral: fuera
			subWithAvailable("s2", "Linternas", 10, 5), // justo en el umbral: dentro
			subWithAvailable("s3", "Pilas", 2, 0),
			subWithAvailable("s4", "Cables", 7, 3),
		},
	}}

	got := inventory.LowStock(tree)

	require.Len(t, got, 3)
	assert.Equal(t, []string{"Pilas", "Cables", "Linternas"},
		[]string{got[0].Name, got[1].Name, got[2].Name},
		"orden ascendente por disponibilidad: la más urgente primero")
	assert.Equal(t, 2, got[0].Available)
	assert.Equal(t, "Electrónica", got[0].CategoryName)
}

// Los ítems vendidos no cuentan como disponibles.
func TestLowStock_VendidosNoCuentan(t *testing.T) {
	tree := inventory.Tree{{
		ID: "c1", Name: "Ropa",
		SubCategories: []inventory.SubCategory{
			subWithAvailable("s1", "Camisas", 0, 25), // 25 ítems pero todos vendidos
		},
	}}

	got := inventory.LowStock(tree)

	require.Len(t, got, 1)
	assert.Zero(t, got[0].Available)
}

// Revertir una venta devuelve el ítem al conteo de disponibles.
func TestLowStock_RevertirVentaRecuperaDisponibilidad(t *testing.T) {
	sub := subWithAvailable("s1", "Gorras", 1, 1)
	tree := inventory.Tree{{ID: "c1", Name: "Ropa", SubCategories: []inventory.SubCategory{sub}}}

	before := inventory.LowStock(tree)
	require.Len(t, before, 1)
	assert.Equal(t, 1, before[0].Available)

	// Revertir: el ítem vendido vuelve a available y pierde su fecha
	tree[0].SubCategories[0].Items[1].Status = "available"
	tree[0].SubCategories[0].Items[1].SoldDate = ""

	after := inventory.LowStock(tree)
	require.Len(t, after, 1)
	assert.Equal(t, 2, after[0].Available)
}
