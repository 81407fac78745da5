package inventory

import (
	"context"
	"time"

	"github.com/jhoicas/erp-inventario/internal/domain/entity"
	"github.com/jhoicas/erp-inventario/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una unidad de trabajo, pasando repositorios atados a ella.
// Garantiza que la actualización de la posición y la inserción en el libro se confirman juntas.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		invRepo repository.InventoryRepository,
		movRepo repository.InventoryMovementRepository,
	) error) error
}

// StockReportPDFGenerator renderiza el reporte combinado de stock de una bodega.
type StockReportPDFGenerator interface {
	GenerateStockReportPDF(
		ctx context.Context,
		storage *entity.Storage,
		rows []entity.OverallStock,
		generatedAt time.Time,
	) ([]byte, error)
}
