package report

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dukastock/duka-stock-api/internal/application/dto"
	"github.com/dukastock/duka-stock-api/internal/application/ports"
	"github.com/dukastock/duka-stock-api/internal/domain/inventory"
	"github.com/dukastock/duka-stock-api/internal/domain/repository"
)

// AIUseCase genera un resumen de desempeño del negocio a partir del reporte
// financiero, usando el puerto LLMService. Aplica un timeout de 10 segundos
// en cada llamada para evitar que las latencias externas bloqueen los
// goroutines del servidor.
type AIUseCase struct {
	categoryRepo repository.CategoryRepository
	llm          ports.LLMService
	currency     string
}

// NewAIUseCase construye el caso de uso inyectando el puerto LLMService.
func NewAIUseCase(categoryRepo repository.CategoryRepository, llm ports.LLMService, currency string) *AIUseCase {
	return &AIUseCase{categoryRepo: categoryRepo, llm: llm, currency: currency}
}

// GenerateInsight arma el prompt con los totales y el detalle de ventas y
// delega al LLM. Envuelve el contexto con un timeout de 10 s.
func (uc *AIUseCase) GenerateInsight(ctx context.Context, ownerID string) (*dto.InsightResponse, error) {
	tree, err := uc.categoryRepo.GetTreeByOwner(ownerID)
	if err != nil {
		return nil, err
	}
	rep := inventory.BuildReport(tree)

	// Timeout de 10 s: las llamadas a LLMs pueden demorar varios segundos.
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	summary, err := uc.llm.GenerateInsight(ctx, buildInsightPrompt(rep, uc.currency))
	if err != nil {
		return nil, fmt.Errorf("resumen IA: %w", err)
	}
	return &dto.InsightResponse{Summary: summary}, nil
}

// buildInsightPrompt serializa el reporte a texto plano: totales primero,
// luego una línea por ítem vendido con su utilidad individual.
func buildInsightPrompt(rep inventory.Report, currency string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Resumen financiero del negocio (moneda %s):\n", currency)
	fmt.Fprintf(&b, "- Ingresos totales: %s\n", rep.Revenue.StringFixed(2))
	fmt.Fprintf(&b, "- Costos totales: %s\n", rep.Cost.StringFixed(2))
	fmt.Fprintf(&b, "- Utilidad total: %s\n", rep.Profit.StringFixed(2))
	fmt.Fprintf(&b, "- Unidades vendidas: %d\n", rep.SoldCount)
	if len(rep.SoldItems) > 0 {
		b.WriteString("\nDetalle de ventas:\n")
		for _, s := range rep.SoldItems {
			fmt.Fprintf(&b, "- %s #%d vendido el %s a %s (utilidad %s)\n",
				s.Name, s.ItemNumber, s.SoldDate,
				s.SellingPrice.StringFixed(2),
				s.SellingPrice.Sub(s.BuyingPrice).StringFixed(2))
		}
	}
	b.WriteString("\nAnaliza el desempeño del negocio en un máximo de 150 palabras: ")
	b.WriteString("qué productos dejan más utilidad, qué tendencias se ven en las ventas ")
	b.WriteString("y una recomendación concreta para mejorar los resultados.")
	return b.String()
}
