package report_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dukastock/duka-stock-api/internal/application/report"
	"github.com/dukastock/duka-stock-api/internal/domain/entity"
	"github.com/dukastock/duka-stock-api/internal/domain/inventory"
)

// fakeTreeRepo implementa solo GetTreeByOwner; el resto no se usa en reportes.
type fakeTreeRepo struct {
	tree inventory.Tree
}

func (r *fakeTreeRepo) CreateMain(*entity.MainCategory) error                { return nil }
func (r *fakeTreeRepo) GetMainByID(string) (*entity.MainCategory, error)    { return nil, nil }
func (r *fakeTreeRepo) UpdateMain(*entity.MainCategory) error               { return nil }
func (r *fakeTreeRepo) CreateSub(*entity.SubCategory) error                 { return nil }
func (r *fakeTreeRepo) GetSubByID(string) (*entity.SubCategory, error)      { return nil, nil }
func (r *fakeTreeRepo) UpdateSub(*entity.SubCategory) error                 { return nil }
func (r *fakeTreeRepo) GetTreeByOwner(string) (inventory.Tree, error)       { return r.tree, nil }

func price(n int64) decimal.Decimal { return decimal.NewFromInt(n) }

func salesTree() inventory.Tree {
	return inventory.Tree{
		{
			ID: "c1", Name: "Electrónica",
			SubCategories: []inventory.SubCategory{
				{
					ID: "s1", Name: "Radios", BuyingPrice: price(50), SellingPrice: price(80),
					Items: []inventory.Item{
						{ID: "i1", ItemNumber: 1, Status: entity.ItemStatusSold, SoldDate: "2024-01-05"},
						{ID: "i2", ItemNumber: 2, Status: entity.ItemStatusSold, SoldDate: "2024-01-06"},
						{ID: "i3", ItemNumber: 3, Status: entity.ItemStatusAvailable},
					},
				},
			},
		},
	}
}

func TestFinancialReport_TotalesYMoneda(t *testing.T) {
	uc := report.NewReportUseCase(&fakeTreeRepo{tree: salesTree()}, "KSH")

	out, err := uc.FinancialReport("boss-1", entity.RoleBoss)

	require.NoError(t, err)
	assert.Equal(t, "KSH", out.Currency)
	assert.Equal(t, 2, out.SoldCount)
	assert.True(t, out.Revenue.Equal(price(160)), "revenue: %s", out.Revenue)
	assert.True(t, out.Cost.Equal(price(100)), "cost: %s", out.Cost)
	assert.True(t, out.Profit.Equal(price(60)), "profit: %s", out.Profit)
}

func TestFinancialReport_WorkerVeCostoCero(t *testing.T) {
	uc := report.NewReportUseCase(&fakeTreeRepo{tree: salesTree()}, "KSH")

	out, err := uc.FinancialReport("boss-1", entity.RoleWorker)

	require.NoError(t, err)
	assert.True(t, out.Cost.IsZero(), "el worker no debe ver costos")
	assert.True(t, out.Profit.Equal(out.Revenue), "para el worker utilidad = ingreso")
	for _, top := range out.TopSellers {
		assert.True(t, top.Profit.Equal(top.SellingPrice))
	}
}

func TestSalesRecord_AgrupaPorFechaDescendente(t *testing.T) {
	uc := report.NewReportUseCase(&fakeTreeRepo{tree: salesTree()}, "KSH")

	out, err := uc.SalesRecord("boss-1", entity.RoleBoss)

	require.NoError(t, err)
	require.Len(t, out.Groups, 2)
	assert.Equal(t, "2024-01-06", out.Groups[0].Date, "la fecha más reciente va primero")
	assert.Equal(t, "2024-01-05", out.Groups[1].Date)
	assert.True(t, out.GrandTotal.Equal(price(160)))
}

func TestLowStock_IncluyeUmbral(t *testing.T) {
	uc := report.NewReportUseCase(&fakeTreeRepo{tree: salesTree()}, "KSH")

	out, err := uc.LowStock("boss-1")

	require.NoError(t, err)
	assert.Equal(t, inventory.RestockThreshold, out.Threshold)
	require.Len(t, out.Entries, 1)
	assert.Equal(t, "Radios", out.Entries[0].Name)
	assert.Equal(t, 1, out.Entries[0].Available, "solo cuenta los disponibles")
}
