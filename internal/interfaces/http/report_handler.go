package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/dukastock/duka-stock-api/internal/application/report"
)

// ReportHandler maneja reportes financieros, registro de ventas, alertas de
// stock bajo, resumen con IA y descarga en PDF (protegido).
type ReportHandler struct {
	reportUC *report.ReportUseCase
	aiUC     *report.AIUseCase
	pdfUC    *report.PDFUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(reportUC *report.ReportUseCase, aiUC *report.AIUseCase, pdfUC *report.PDFUseCase) *ReportHandler {
	return &ReportHandler{reportUC: reportUC, aiUC: aiUC, pdfUC: pdfUC}
}

// Financial godoc
// @Summary      Reporte financiero
// @Description  Ingresos, costos, utilidad y top 5 de ventas. Workers ven costo 0.
// @Tags         reports
// @Produce      json
// @Success      200  {object}  dto.FinancialReportDTO
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/reports/financial [get]
func (h *ReportHandler) Financial(c *fiber.Ctx) error {
	out, err := h.reportUC.FinancialReport(GetOwnerID(c), GetRole(c))
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(out)
}

// Sales devuelve el registro de ventas agrupado por fecha, descendente.
// GET /api/reports/sales
func (h *ReportHandler) Sales(c *fiber.Ctx) error {
	out, err := h.reportUC.SalesRecord(GetOwnerID(c), GetRole(c))
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(out)
}

// LowStock devuelve las sub-categorías bajo el umbral de reposición.
// GET /api/reports/low-stock
func (h *ReportHandler) LowStock(c *fiber.Ctx) error {
	out, err := h.reportUC.LowStock(GetOwnerID(c))
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(out)
}

// Insight genera el resumen de desempeño con IA (solo boss).
// GET /api/reports/insight
func (h *ReportHandler) Insight(c *fiber.Ctx) error {
	out, err := h.aiUC.GenerateInsight(c.Context(), GetOwnerID(c))
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(out)
}

// SalesPDF genera y descarga el registro de ventas en PDF.
// GET /api/reports/sales/pdf
func (h *ReportHandler) SalesPDF(c *fiber.Ctx) error {
	pdfBytes, filename, err := h.pdfUC.DownloadSalesPDF(c.Context(), GetOwnerID(c), GetRole(c))
	if err != nil {
		return mapError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdfBytes)
}
