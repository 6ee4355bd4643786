package inventory_test

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dukastock/duka-stock-api/internal/application/dto"
	appinv "github.com/dukastock/duka-stock-api/internal/application/inventory"
	"github.com/dukastock/duka-stock-api/internal/domain"
	"github.com/dukastock/duka-stock-api/internal/domain/entity"
	"github.com/dukastock/duka-stock-api/internal/domain/inventory"
	"github.com/dukastock/duka-stock-api/internal/domain/repository"
)

// fakeItemRepo implementa repository.ItemRepository en memoria.
type fakeItemRepo struct {
	items map[string]*entity.Item
}

func newFakeItemRepo() *fakeItemRepo {
	return &fakeItemRepo{items: map[string]*entity.Item{}}
}

func (r *fakeItemRepo) GetByID(id string) (*entity.Item, error) {
	it, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	clone := *it
	return &clone, nil
}

func (r *fakeItemRepo) CountBySubCategory(subCategoryID string) (int, error) {
	count := 0
	for _, it := range r.items {
		if it.SubCategoryID == subCategoryID {
			count++
		}
	}
	return count, nil
}

func (r *fakeItemRepo) CreateBatch(items []*entity.Item) error {
	for _, it := range items {
		clone := *it
		r.items[it.ID] = &clone
	}
	return nil
}

func (r *fakeItemRepo) MarkSold(id string, soldDate time.Time) error {
	it, ok := r.items[id]
	if !ok {
		return domain.ErrNotFound
	}
	it.Status = entity.ItemStatusSold
	it.SoldDate = &soldDate
	return nil
}

func (r *fakeItemRepo) MarkAvailable(id string) error {
	it, ok := r.items[id]
	if !ok {
		return domain.ErrNotFound
	}
	it.Status = entity.ItemStatusAvailable
	it.SoldDate = nil
	return nil
}

func (r *fakeItemRepo) Delete(id string) error {
	delete(r.items, id)
	return nil
}

func (r *fakeItemRepo) Renumber(subCategoryID string) error {
	var siblings []*entity.Item
	for _, it := range r.items {
		if it.SubCategoryID == subCategoryID {
			siblings = append(siblings, it)
		}
	}
	sort.Slice(siblings, func(i, j int) bool { return siblings[i].ItemNumber < siblings[j].ItemNumber })
	for idx, it := range siblings {
		it.ItemNumber = idx + 1
	}
	return nil
}

// fakeCategoryRepo implementa repository.CategoryRepository en memoria.
type fakeCategoryRepo struct {
	mains map[string]*entity.MainCategory
	subs  map[string]*entity.SubCategory
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{
		mains: map[string]*entity.MainCategory{},
		subs:  map[string]*entity.SubCategory{},
	}
}

func (r *fakeCategoryRepo) CreateMain(c *entity.MainCategory) error { r.mains[c.ID] = c; return nil }

func (r *fakeCategoryRepo) GetMainByID(id string) (*entity.MainCategory, error) {
	c, ok := r.mains[id]
	if !ok {
		return nil, nil
	}
	return c, nil
}

func (r *fakeCategoryRepo) UpdateMain(c *entity.MainCategory) error { r.mains[c.ID] = c; return nil }

func (r *fakeCategoryRepo) CreateSub(s *entity.SubCategory) error { r.subs[s.ID] = s; return nil }

func (r *fakeCategoryRepo) GetSubByID(id string) (*entity.SubCategory, error) {
	s, ok := r.subs[id]
	if !ok {
		return nil, nil
	}
	return s, nil
}

func (r *fakeCategoryRepo) UpdateSub(s *entity.SubCategory) error { r.subs[s.ID] = s; return nil }

func (r *fakeCategoryRepo) GetTreeByOwner(ownerID string) (inventory.Tree, error) {
	return inventory.Tree{}, nil
}

// fakeTxRunner ejecuta el callback directamente contra el repo en memoria.
type fakeTxRunner struct {
	itemRepo repository.ItemRepository
}

func (t *fakeTxRunner) Run(_ context.Context, fn func(repository.ItemRepository) error) error {
	return fn(t.itemRepo)
}

func newStockFixture(t *testing.T) (*appinv.StockUseCase, *fakeItemRepo, *fakeCategoryRepo) {
	t.Helper()
	itemRepo := newFakeItemRepo()
	categoryRepo := newFakeCategoryRepo()
	categoryRepo.mains["cat-1"] = &entity.MainCategory{ID: "cat-1", OwnerID: "boss-1", Name: "Electrónica"}
	categoryRepo.subs["sub-1"] = &entity.SubCategory{
		ID:             "sub-1",
		MainCategoryID: "cat-1",
		Name:           "Radios",
		BuyingPrice:    decimal.NewFromInt(50),
		SellingPrice:   decimal.NewFromInt(80),
	}
	uc := appinv.NewStockUseCase(itemRepo, categoryRepo, &fakeTxRunner{itemRepo: itemRepo})
	return uc, itemRepo, categoryRepo
}

func seedItems(repo *fakeItemRepo, subCategoryID string, numbers ...int) {
	for _, n := range numbers {
		id := subCategoryID + "-item-" + string(rune('0'+n))
		repo.items[id] = &entity.Item{
			ID:            id,
			SubCategoryID: subCategoryID,
			ItemNumber:    n,
			Status:        entity.ItemStatusAvailable,
		}
	}
}

func TestAddStock_NumeraAContinuacionDeLosExistentes(t *testing.T) {
	uc, itemRepo, _ := newStockFixture(t)
	seedItems(itemRepo, "sub-1", 1, 2, 3)

	created, err := uc.AddStock("boss-1", "sub-1", dto.AddStockRequest{Quantity: 2})

	require.NoError(t, err)
	require.Len(t, created, 2)
	numbers := []int{created[0].ItemNumber, created[1].ItemNumber}
	sort.Ints(numbers)
	assert.Equal(t, []int{4, 5}, numbers)
}

func TestAddStock_CantidadNoPositivaEsInvalida(t *testing.T) {
	uc, _, _ := newStockFixture(t)

	_, err := uc.AddStock("boss-1", "sub-1", dto.AddStockRequest{Quantity: 0})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.AddStock("boss-1", "sub-1", dto.AddStockRequest{Quantity: -3})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestAddStock_OtroDuenoEsProhibido(t *testing.T) {
	uc, _, _ := newStockFixture(t)

	_, err := uc.AddStock("otro-jefe", "sub-1", dto.AddStockRequest{Quantity: 1})

	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestSell_MarcaVendidoConFechaDeHoy(t *testing.T) {
	uc, itemRepo, _ := newStockFixture(t)
	seedItems(itemRepo, "sub-1", 1)
	today := time.Now().Format(entity.SoldDateLayout)

	sold, err := uc.Sell("boss-1", "sub-1-item-1", dto.SellItemRequest{SoldDate: today})

	require.NoError(t, err)
	assert.Equal(t, entity.ItemStatusSold, sold.Status)
	assert.Equal(t, today, sold.SoldDate)
	stored := itemRepo.items["sub-1-item-1"]
	assert.Equal(t, entity.ItemStatusSold, stored.Status)
}

func TestSell_AceptaAyerRechazaAntesDeAyer(t *testing.T) {
	uc, itemRepo, _ := newStockFixture(t)
	seedItems(itemRepo, "sub-1", 1, 2)
	yesterday := time.Now().AddDate(0, 0, -1).Format(entity.SoldDateLayout)
	twoDaysAgo := time.Now().AddDate(0, 0, -2).Format(entity.SoldDateLayout)

	_, err := uc.Sell("boss-1", "sub-1-item-1", dto.SellItemRequest{SoldDate: yesterday})
	require.NoError(t, err)

	_, err = uc.Sell("boss-1", "sub-1-item-2", dto.SellItemRequest{SoldDate: twoDaysAgo})
	assert.ErrorIs(t, err, domain.ErrInvalidSoldDate)
}

func TestSell_RechazaFechaFuturaYFormatoInvalido(t *testing.T) {
	uc, itemRepo, _ := newStockFixture(t)
	seedItems(itemRepo, "sub-1", 1)
	tomorrow := time.Now().AddDate(0, 0, 1).Format(entity.SoldDateLayout)

	_, err := uc.Sell("boss-1", "sub-1-item-1", dto.SellItemRequest{SoldDate: tomorrow})
	assert.ErrorIs(t, err, domain.ErrInvalidSoldDate)

	_, err = uc.Sell("boss-1", "sub-1-item-1", dto.SellItemRequest{SoldDate: "05/01/2024"})
	assert.ErrorIs(t, err, domain.ErrInvalidSoldDate)
}

func TestSell_ItemYaVendidoEsConflicto(t *testing.T) {
	uc, itemRepo, _ := newStockFixture(t)
	seedItems(itemRepo, "sub-1", 1)
	today := time.Now().Format(entity.SoldDateLayout)

	_, err := uc.Sell("boss-1", "sub-1-item-1", dto.SellItemRequest{SoldDate: today})
	require.NoError(t, err)

	_, err = uc.Sell("boss-1", "sub-1-item-1", dto.SellItemRequest{SoldDate: today})
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestRevert_RestauraDisponibleYLimpiaFecha(t *testing.T) {
	uc, itemRepo, _ := newStockFixture(t)
	seedItems(itemRepo, "sub-1", 1)
	today := time.Now().Format(entity.SoldDateLayout)
	_, err := uc.Sell("boss-1", "sub-1-item-1", dto.SellItemRequest{SoldDate: today})
	require.NoError(t, err)

	reverted, err := uc.Revert("boss-1", "sub-1-item-1")

	require.NoError(t, err)
	assert.Equal(t, entity.ItemStatusAvailable, reverted.Status)
	assert.Empty(t, reverted.SoldDate)
	assert.Nil(t, itemRepo.items["sub-1-item-1"].SoldDate)
}

func TestRevert_ItemDisponibleEsConflicto(t *testing.T) {
	uc, itemRepo, _ := newStockFixture(t)
	seedItems(itemRepo, "sub-1", 1)

	_, err := uc.Revert("boss-1", "sub-1-item-1")

	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestDeleteItem_RenumeraSinHuecos(t *testing.T) {
	uc, itemRepo, _ := newStockFixture(t)
	seedItems(itemRepo, "sub-1", 1, 2, 3)

	err := uc.DeleteItem(context.Background(), "boss-1", "sub-1-item-2")

	require.NoError(t, err)
	var numbers []int
	for _, it := range itemRepo.items {
		numbers = append(numbers, it.ItemNumber)
	}
	sort.Ints(numbers)
	assert.Equal(t, []int{1, 2}, numbers)
}

func TestDeleteItem_ItemInexistenteEsNotFound(t *testing.T) {
	uc, _, _ := newStockFixture(t)

	err := uc.DeleteItem(context.Background(), "boss-1", "no-existe")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}
