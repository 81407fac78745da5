package inventory

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/erp-inventario/internal/application/dto"
	"github.com/jhoicas/erp-inventario/internal/domain"
	"github.com/jhoicas/erp-inventario/internal/domain/entity"
	"github.com/jhoicas/erp-inventario/internal/domain/inventory"
	"github.com/jhoicas/erp-inventario/internal/domain/repository"
	"github.com/jhoicas/erp-inventario/pkg/logger"
)

// StockFilter filtros del reporte de stock. Keyword se busca como texto literal
// (sin distinguir mayúsculas) en código, nombre y orden de realización del artículo.
type StockFilter struct {
	Keyword string `query:"keyword"`
}

// StockReportUseCase arma el reporte combinado de stock de una bodega:
// cantidad actual por artículo + días desde la última entrada.
type StockReportUseCase struct {
	invRepo  repository.InventoryRepository
	movRepo  repository.InventoryMovementRepository
	storages repository.StorageLookup
	pdfGen   StockReportPDFGenerator
	log      *logger.Logger
	now      func() time.Time
}

// NewStockReportUseCase construye el caso de uso. pdfGen puede ser nil si no se exporta PDF.
func NewStockReportUseCase(
	invRepo repository.InventoryRepository,
	movRepo repository.InventoryMovementRepository,
	storages repository.StorageLookup,
	pdfGen StockReportPDFGenerator,
	log *logger.Logger,
) *StockReportUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &StockReportUseCase{
		invRepo:  invRepo,
		movRepo:  movRepo,
		storages: storages,
		pdfGen:   pdfGen,
		log:      log,
		now:      time.Now,
	}
}

// WithClock reemplaza el reloj usado para calcular la antigüedad (tests).
func (uc *StockReportUseCase) WithClock(now func() time.Time) *StockReportUseCase {
	uc.now = now
	return uc
}

// GetOverallStock devuelve el reporte combinado de la bodega.
func (uc *StockReportUseCase) GetOverallStock(ctx context.Context, storageID string, filter StockFilter) ([]dto.OverallStockResponse, error) {
	rows, err := uc.overallStock(ctx, storageID, filter)
	if err != nil {
		return nil, err
	}
	out := make([]dto.OverallStockResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, toOverallStockResponse(r))
	}
	return out, nil
}

// ExportOverallStockPDF renderiza el reporte combinado y devuelve el PDF con su nombre de archivo.
func (uc *StockReportUseCase) ExportOverallStockPDF(ctx context.Context, storageID string, filter StockFilter) ([]byte, string, error) {
	if uc.pdfGen == nil {
		return nil, "", fmt.Errorf("exportación PDF no configurada")
	}
	storage, err := uc.storages.GetByID(ctx, storageID)
	if err != nil {
		return nil, "", err
	}
	if storage == nil {
		return nil, "", domain.ErrNotFound
	}
	rows, err := uc.overallStock(ctx, storageID, filter)
	if err != nil {
		return nil, "", err
	}

	generatedAt := uc.now()
	pdf, err := uc.pdfGen.GenerateStockReportPDF(ctx, storage, rows, generatedAt)
	if err != nil {
		return nil, "", fmt.Errorf("generar PDF de stock: %w", err)
	}
	uc.log.Info().
		Str("storage", storage.Code).
		Int("rows", len(rows)).
		Int("bytes", len(pdf)).
		Msg("reporte de stock exportado")

	filename := fmt.Sprintf("stock-%s-%s.pdf", storage.Code, generatedAt.Format("20060102"))
	return pdf, filename, nil
}

func (uc *StockReportUseCase) overallStock(ctx context.Context, storageID string, filter StockFilter) ([]entity.OverallStock, error) {
	var (
		quantities []entity.StockQuantityRow
		ages       []entity.StockAgeRow
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		quantities, err = uc.invRepo.CurrentQuantities(gctx, storageID, filter.Keyword)
		return err
	})
	g.Go(func() (err error) {
		ages, err = uc.movRepo.LastInbound(gctx, storageID, filter.Keyword)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return CombineStocks(quantities, ages, uc.now()), nil
}

// CombineStocks une ambas vistas: para cada fila de cantidad toma la primera fila de
// antigüedad con el mismo código de artículo. No es un join estricto: si el código se
// repite en la bodega se usa la primera coincidencia.
func CombineStocks(quantities []entity.StockQuantityRow, ages []entity.StockAgeRow, now time.Time) []entity.OverallStock {
	out := make([]entity.OverallStock, 0, len(quantities))
	for _, q := range quantities {
		row := entity.OverallStock{
			StorageName: q.StorageName,
			ItemCode:    q.ItemCode,
			ItemName:    q.ItemName,
			Quantity:    q.Quantity,
		}
		for _, a := range ages {
			if a.ItemCode != q.ItemCode {
				continue
			}
			code := a.StorageCode
			days := inventory.StockAgeDays(now, a.LastInboundAt)
			row.StorageCode = &code
			row.DaysSinceLastInbound = &days
			break
		}
		out = append(out, row)
	}
	return out
}
