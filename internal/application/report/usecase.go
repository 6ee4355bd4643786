package report

import (
	"github.com/dukastock/duka-stock-api/internal/application/dto"
	"github.com/dukastock/duka-stock-api/internal/domain/inventory"
	"github.com/dukastock/duka-stock-api/internal/domain/repository"
)

// ReportUseCase calcula el reporte financiero, el registro de ventas por
// fecha y las alertas de stock bajo sobre el inventario visible del caller.
//
// Toda la aritmética vive en el paquete de dominio; este caso de uso solo
// carga el árbol, aplica la proyección por rol y adapta a DTOs.
type ReportUseCase struct {
	categoryRepo repository.CategoryRepository
	currency     string
}

// NewReportUseCase construye el caso de uso. currency es la etiqueta de
// moneda con la que se presentan los montos (p. ej. "KSH").
func NewReportUseCase(categoryRepo repository.CategoryRepository, currency string) *ReportUseCase {
	return &ReportUseCase{categoryRepo: categoryRepo, currency: currency}
}

// FinancialReport agrega ingresos, costos y utilidad de los ítems vendidos.
// Para un worker el árbol se proyecta antes (costo 0, utilidad = ingreso).
func (uc *ReportUseCase) FinancialReport(ownerID, role string) (*dto.FinancialReportDTO, error) {
	tree, err := uc.visibleTree(ownerID, role)
	if err != nil {
		return nil, err
	}
	rep := inventory.BuildReport(tree)
	return &dto.FinancialReportDTO{
		Revenue:    rep.Revenue,
		Cost:       rep.Cost,
		Profit:     rep.Profit,
		SoldCount:  rep.SoldCount,
		TopSellers: toSoldItemDTOs(rep.TopSellers),
		Currency:   uc.currency,
	}, nil
}

// SalesRecord agrupa las ventas por fecha calendario, la más reciente primero.
func (uc *ReportUseCase) SalesRecord(ownerID, role string) (*dto.SalesRecordDTO, error) {
	record, err := uc.salesRecord(ownerID, role)
	if err != nil {
		return nil, err
	}
	out := &dto.SalesRecordDTO{
		Groups:     make([]dto.SalesGroupDTO, 0, len(record.Groups)),
		GrandTotal: record.GrandTotal,
		Currency:   uc.currency,
	}
	for _, g := range record.Groups {
		out.Groups = append(out.Groups, dto.SalesGroupDTO{
			Date:     g.Date,
			Items:    toSoldItemDTOs(g.Items),
			Subtotal: g.Subtotal,
		})
	}
	return out, nil
}

// LowStock lista las sub-categorías con disponibilidad bajo el umbral de
// reposición, la más urgente primero.
func (uc *ReportUseCase) LowStock(ownerID string) (*dto.LowStockResponse, error) {
	tree, err := uc.categoryRepo.GetTreeByOwner(ownerID)
	if err != nil {
		return nil, err
	}
	entries := inventory.LowStock(tree)
	out := &dto.LowStockResponse{
		Threshold: inventory.RestockThreshold,
		Entries:   make([]dto.LowStockEntryDTO, 0, len(entries)),
	}
	for _, e := range entries {
		out.Entries = append(out.Entries, dto.LowStockEntryDTO{
			SubCategoryID: e.SubCategoryID,
			Name:          e.Name,
			CategoryName:  e.CategoryName,
			Available:     e.Available,
		})
	}
	return out, nil
}

func (uc *ReportUseCase) visibleTree(ownerID, role string) (inventory.Tree, error) {
	tree, err := uc.categoryRepo.GetTreeByOwner(ownerID)
	if err != nil {
		return nil, err
	}
	return inventory.ProjectForRole(tree, role), nil
}

func (uc *ReportUseCase) salesRecord(ownerID, role string) (inventory.SalesRecord, error) {
	tree, err := uc.visibleTree(ownerID, role)
	if err != nil {
		return inventory.SalesRecord{}, err
	}
	return inventory.SalesByDate(tree), nil
}

func toSoldItemDTOs(items []inventory.SoldItem) []dto.SoldItemDTO {
	out := make([]dto.SoldItemDTO, 0, len(items))
	for _, s := range items {
		out = append(out, dto.SoldItemDTO{
			ItemID:       s.ItemID,
			ItemNumber:   s.ItemNumber,
			Name:         s.Name,
			SoldDate:     s.SoldDate,
			SellingPrice: s.SellingPrice,
			Profit:       s.SellingPrice.Sub(s.BuyingPrice),
		})
	}
	return out
}
