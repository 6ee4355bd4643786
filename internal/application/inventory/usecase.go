package inventory

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dukastock/duka-stock-api/internal/application/dto"
	"github.com/dukastock/duka-stock-api/internal/domain"
	"github.com/dukastock/duka-stock-api/internal/domain/entity"
	inv "github.com/dukastock/duka-stock-api/internal/domain/inventory"
	"github.com/dukastock/duka-stock-api/internal/domain/repository"
)

// InventoryUseCase lectura del árbol y CRUD de categorías/sub-categorías.
//
// Modelo de consistencia: cada mutación persiste y termina; el caller vuelve
// a pedir el árbol completo (lectura-tras-escritura por refetch explícito,
// no por garantía transaccional de esta capa).
type InventoryUseCase struct {
	categoryRepo repository.CategoryRepository
}

// NewInventoryUseCase construye el caso de uso.
func NewInventoryUseCase(categoryRepo repository.CategoryRepository) *InventoryUseCase {
	return &InventoryUseCase{categoryRepo: categoryRepo}
}

// GetTree carga el inventario del jefe dueño (ownerID), aplica la proyección
// por rol (workers ven buying_price=0) y el filtro de búsqueda opcional.
func (uc *InventoryUseCase) GetTree(ownerID, role, query string) (*dto.TreeResponse, error) {
	tree, err := uc.categoryRepo.GetTreeByOwner(ownerID)
	if err != nil {
		return nil, err
	}
	tree = inv.ProjectForRole(tree, role)
	tree = inv.Filter(tree, query)
	return toTreeResponse(tree), nil
}

// CreateCategory crea una categoría principal para el jefe. Nombre no vacío.
func (uc *InventoryUseCase) CreateCategory(ownerID string, in dto.CreateCategoryRequest) (*dto.CategoryDTO, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	category := &entity.MainCategory{
		ID:        uuid.New().String(),
		OwnerID:   ownerID,
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.categoryRepo.CreateMain(category); err != nil {
		return nil, err
	}
	return &dto.CategoryDTO{ID: category.ID, Name: category.Name, SubCategories: []dto.SubCategoryDTO{}}, nil
}

// UpdateCategory renombra una categoría (reemplazo directo del campo).
func (uc *InventoryUseCase) UpdateCategory(ownerID, categoryID string, in dto.UpdateCategoryRequest) (*dto.CategoryDTO, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	category, err := uc.ownedCategory(ownerID, categoryID)
	if err != nil {
		return nil, err
	}
	category.Name = name
	category.UpdatedAt = time.Now()
	if err := uc.categoryRepo.UpdateMain(category); err != nil {
		return nil, err
	}
	return &dto.CategoryDTO{ID: category.ID, Name: category.Name}, nil
}

// CreateSubCategory crea una sub-categoría bajo una categoría del jefe.
// Nombre no vacío, precios >= 0.
func (uc *InventoryUseCase) CreateSubCategory(ownerID, categoryID string, in dto.CreateSubCategoryRequest) (*dto.SubCategoryDTO, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" || in.BuyingPrice.IsNegative() || in.SellingPrice.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	if _, err := uc.ownedCategory(ownerID, categoryID); err != nil {
		return nil, err
	}
	now := time.Now()
	sub := &entity.SubCategory{
		ID:             uuid.New().String(),
		MainCategoryID: categoryID,
		Name:           name,
		BuyingPrice:    in.BuyingPrice,
		SellingPrice:   in.SellingPrice,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.categoryRepo.CreateSub(sub); err != nil {
		return nil, err
	}
	return toSubCategoryDTO(sub), nil
}

// UpdateSubCategory reemplaza nombre y/o precios de una sub-categoría.
func (uc *InventoryUseCase) UpdateSubCategory(ownerID, subCategoryID string, in dto.UpdateSubCategoryRequest) (*dto.SubCategoryDTO, error) {
	sub, err := uc.categoryRepo.GetSubByID(subCategoryID)
	if err != nil {
		return nil, err
	}
	if sub == nil {
		return nil, domain.ErrNotFound
	}
	if _, err := uc.ownedCategory(ownerID, sub.MainCategoryID); err != nil {
		return nil, err
	}
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, domain.ErrInvalidInput
		}
		sub.Name = name
	}
	if in.BuyingPrice != nil {
		if in.BuyingPrice.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		sub.BuyingPrice = *in.BuyingPrice
	}
	if in.SellingPrice != nil {
		if in.SellingPrice.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		sub.SellingPrice = *in.SellingPrice
	}
	sub.UpdatedAt = time.Now()
	if err := uc.categoryRepo.UpdateSub(sub); err != nil {
		return nil, err
	}
	return toSubCategoryDTO(sub), nil
}

// ownedCategory carga la categoría y verifica que pertenezca al jefe.
func (uc *InventoryUseCase) ownedCategory(ownerID, categoryID string) (*entity.MainCategory, error) {
	category, err := uc.categoryRepo.GetMainByID(categoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrNotFound
	}
	if category.OwnerID != ownerID {
		return nil, domain.ErrForbidden
	}
	return category, nil
}

func toSubCategoryDTO(s *entity.SubCategory) *dto.SubCategoryDTO {
	return &dto.SubCategoryDTO{
		ID:           s.ID,
		Name:         s.Name,
		BuyingPrice:  s.BuyingPrice,
		SellingPrice: s.SellingPrice,
		Items:        []dto.ItemDTO{},
	}
}

func toTreeResponse(tree inv.Tree) *dto.TreeResponse {
	out := &dto.TreeResponse{Categories: make([]dto.CategoryDTO, 0, len(tree))}
	for _, cat := range tree {
		catDTO := dto.CategoryDTO{
			ID:            cat.ID,
			Name:          cat.Name,
			SubCategories: make([]dto.SubCategoryDTO, 0, len(cat.SubCategories)),
		}
		for _, sub := range cat.SubCategories {
			subDTO := dto.SubCategoryDTO{
				ID:           sub.ID,
				Name:         sub.Name,
				BuyingPrice:  sub.BuyingPrice,
				SellingPrice: sub.SellingPrice,
				Items:        make([]dto.ItemDTO, 0, len(sub.Items)),
			}
			for _, it := range sub.Items {
				subDTO.Items = append(subDTO.Items, dto.ItemDTO{
					ID:         it.ID,
					ItemNumber: it.ItemNumber,
					Status:     it.Status,
					SoldDate:   it.SoldDate,
				})
			}
			catDTO.SubCategories = append(catDTO.SubCategories, subDTO)
		}
		out.Categories = append(out.Categories, catDTO)
	}
	return out
}
