package report

import (
	"context"
	"fmt"
	"time"

	"github.com/dukastock/duka-stock-api/internal/domain/repository"
)

// PDFUseCase genera la representación descargable (PDF) del registro de
// ventas agrupado por fecha.
type PDFUseCase struct {
	categoryRepo repository.CategoryRepository
	generator    SalesPDFGenerator
	currency     string
}

// NewPDFUseCase construye el caso de uso inyectando el generador concreto.
func NewPDFUseCase(categoryRepo repository.CategoryRepository, generator SalesPDFGenerator, currency string) *PDFUseCase {
	return &PDFUseCase{categoryRepo: categoryRepo, generator: generator, currency: currency}
}

// DownloadSalesPDF arma el registro de ventas del inventario visible y lo
// renderiza a PDF.
//
// Retorna:
//   - (pdfBytes, filename, nil) si todo sale bien.
//   - el error de persistencia o de generación en caso contrario.
func (uc *PDFUseCase) DownloadSalesPDF(ctx context.Context, ownerID, role string) (pdfBytes []byte, filename string, err error) {
	reports := &ReportUseCase{categoryRepo: uc.categoryRepo, currency: uc.currency}
	record, err := reports.salesRecord(ownerID, role)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: cargar registro de ventas: %w", err)
	}

	pdfBytes, err = uc.generator.GenerateSalesPDF(ctx, record, uc.currency)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: generación fallida: %w", err)
	}

	filename = fmt.Sprintf("ventas_%s.pdf", time.Now().Format("2006-01-02"))
	return pdfBytes, filename, nil
}
