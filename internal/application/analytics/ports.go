package analytics

import (
	"context"

	"github.com/jhoicas/inventory-control-api/internal/domain/repository"
)

// ReportPDFGenerator puerto para renderizar el reporte de valorización como PDF.
// La implementación vive en infraestructura (Maroto).
type ReportPDFGenerator interface {
	GenerateInventoryValuePDF(ctx context.Context, rows []repository.WarehouseValue) ([]byte, error)
}
