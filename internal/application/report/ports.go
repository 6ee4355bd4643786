package report

import (
	"context"

	"github.com/dukastock/duka-stock-api/internal/domain/inventory"
)

// SalesPDFGenerator define el puerto de salida hacia el generador de PDF.
// El adaptador concreto (maroto) vive en infraestructura; esta capa solo
// conoce el contrato.
type SalesPDFGenerator interface {
	GenerateSalesPDF(ctx context.Context, record inventory.SalesRecord, currency string) ([]byte, error)
}
