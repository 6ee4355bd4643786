package inventory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dukastock/duka-stock-api/internal/domain/inventory"
)

// Dos ventas en la misma fecha forman un solo grupo con subtotal sumado.
func TestSalesByDate_AgrupaPorFechaExacta(t *testing.T) {
	tree := inventory.Tree{{
		ID: "c", Name: "Electrónica",
		SubCategories: []inventory.SubCategory{
			{ID: "s1", Name: "Radios", BuyingPrice: price(50), SellingPrice: price(100),
				Items: []inventory.Item{soldItem("i1", 1, "2024-01-05")}},
			{ID: "s2", Name: "Linternas", BuyingPrice: price(20), SellingPrice: price(50),
				Items: []inventory.Item{soldItem("i2", 1, "2024-01-05")}},
		},
	}}

	record := inventory.SalesByDate(tree)

	require.Len(t, record.Groups, 1)
	assert.Equal(t, "2024-01-05", record.Groups[0].Date)
	assert.Len(t, record.Groups[0].Items, 2)
	assert.True(t, record.Groups[0].Subtotal.Equal(price(150)), "subtotal 100+50")
	assert.True(t, record.GrandTotal.Equal(price(150)))
}

// Los grupos se ordenan descendente por fecha y el gran total suma los subtotales.
func TestSalesByDate_OrdenDescendenteYGranTotal(t *testing.T) {
	tree := inventory.Tree{{
		ID: "c", Name: "Ropa",
		SubCategories: []inventory.SubCategory{
			{ID: "s", Name: "Camisas", BuyingPrice: price(30), SellingPrice: price(60),
				Items: []inventory.Item{
					soldItem("i1", 1, "2024-01-03"),
					soldItem("i2", 2, "2024-01-10"),
					soldItem("i3", 3, "2024-01-03"),
					soldItem("i4", 4, "2023-12-28"),
				}},
		},
	}}

	record := inventory.SalesByDate(tree)

	require.Len(t, record.Groups, 3)
	assert.Equal(t, []string{"2024-01-10", "2024-01-03", "2023-12-28"},
		[]string{record.Groups[0].Date, record.Groups[1].Date, record.Groups[2].Date})
	assert.True(t, record.Groups[1].Subtotal.Equal(price(120)))
	assert.True(t, record.GrandTotal.Equal(price(240)))
}

// Ítems disponibles no aparecen en el registro de ventas.
func TestSalesByDate_IgnoraDisponibles(t *testing.T) {
	tree := sampleTree() // solo i4 está vendido

	record := inventory.SalesByDate(tree)

	require.Len(t, record.Groups, 1)
	require.Len(t, record.Groups[0].Items, 1)
	assert.Equal(t, "i4", record.Groups[0].Items[0].ItemID)
	assert.True(t, record.GrandTotal.Equal(price(60)))
}

// Árbol sin ventas: registro vacío con total cero.
func TestSalesByDate_SinVentas(t *testing.T) {
	record := inventory.SalesByDate(sampleTree()[:1])

	assert.Empty(t, record.Groups)
	assert.True(t, record.GrandTotal.IsZero())
}
