package usecase

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/ecolvin/tracelink-api/internal/application/dto"
	"github.com/ecolvin/tracelink-api/internal/domain"
	"github.com/ecolvin/tracelink-api/internal/domain/entity"
	"github.com/ecolvin/tracelink-api/internal/domain/importing"
	"github.com/ecolvin/tracelink-api/internal/domain/repository"
	"github.com/ecolvin/tracelink-api/pkg/logger"
)

// Tipos de importación aceptados.
const (
	ImportTypeProducts = "products"
	ImportTypePackages = "packages"
)

// maxAPIErrors filas con error expuestas en la respuesta HTTP; el historial guarda todas.
const maxAPIErrors = 10

// WorkbookParser puerto de lectura del archivo Excel.
type WorkbookParser interface {
	Parse(data []byte) ([]importing.Row, error)
}

// Notifier puerto de notificaciones salientes (mejor esfuerzo, nunca devuelve error).
type Notifier interface {
	NotifyLowStock(alert *entity.Alert)
	NotifyImportSummary(log *entity.ImportLog)
}

// ImportUseCase orquesta la importación masiva desde Excel: parseo, normalización
// de headers, validación por fila, deduplicado dentro del archivo, upsert por lotes,
// sincronización de alertas de stock y registro en el historial.
//
// Las filas inválidas no frenan el resto: se acumulan como errores y las válidas
// se persisten igual.
type ImportUseCase struct {
	parser   WorkbookParser
	products repository.ProductRepository
	packages repository.PackageRepository
	alerts   repository.AlertRepository
	imports  repository.ImportRepository
	notifier Notifier
	log      *logger.Logger
}

// NewImportUseCase construye el orquestador de importaciones.
func NewImportUseCase(
	parser WorkbookParser,
	products repository.ProductRepository,
	packages repository.PackageRepository,
	alerts repository.AlertRepository,
	imports repository.ImportRepository,
	notifier Notifier,
	log *logger.Logger,
) *ImportUseCase {
	return &ImportUseCase{
		parser:   parser,
		products: products,
		packages: packages,
		alerts:   alerts,
		imports:  imports,
		notifier: notifier,
		log:      log,
	}
}

// Import procesa el archivo y devuelve el resumen. userID puede ser vacío (carga anónima).
// importType vacío equivale a products.
func (uc *ImportUseCase) Import(fileName, importType string, data []byte, userID string) (*dto.ImportResponse, error) {
	if importType == "" {
		importType = ImportTypeProducts
	}
	if importType != ImportTypeProducts && importType != ImportTypePackages {
		return nil, fmt.Errorf("%w: tipo de importación %q", domain.ErrInvalidInput, importType)
	}

	rows, err := uc.parser.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrEmptyWorkbook, err)
	}
	if len(rows) == 0 {
		return nil, domain.ErrEmptyWorkbook
	}

	log := &entity.ImportLog{
		ID:        uuid.New().String(),
		FileName:  fileName,
		RowsTotal: len(rows),
		UserID:    userID,
	}

	switch importType {
	case ImportTypeProducts:
		err = uc.importProducts(rows, userID, log)
	case ImportTypePackages:
		err = uc.importPackages(rows, log)
	}
	if err != nil {
		return nil, err
	}

	errorRows := make(map[int]bool, len(log.Errors))
	for _, e := range log.Errors {
		errorRows[e.Row] = true
	}
	log.RowsError = len(errorRows)
	log.RowsOk = log.RowsTotal - log.RowsError

	if err := uc.imports.Create(log); err != nil {
		return nil, err
	}
	uc.notifier.NotifyImportSummary(log)

	uc.log.Info().
		Str("import_id", log.ID).
		Str("file", fileName).
		Str("type", importType).
		Int("rows_ok", log.RowsOk).
		Int("rows_error", log.RowsError).
		Msg("importación procesada")

	return toImportResponse(log), nil
}

func (uc *ImportUseCase) importProducts(rows []importing.Row, userID string, log *entity.ImportLog) error {
	normalized := make([]importing.ProductRow, len(rows))
	keys := make([]string, len(rows))
	for i, row := range rows {
		normalized[i] = importing.NormalizeProductRow(row.Data)
		keys[i] = normalized[i].SKU
	}
	dups := importing.DetectDuplicates(keys)

	var valid []*entity.Product
	for i, row := range rows {
		if dups[i] {
			log.Errors = append(log.Errors, entity.ImportRowError{
				Row: row.Number, Field: "sku", Message: "SKU duplicado en el archivo",
			})
			continue
		}
		product, errs := importing.ValidateProduct(normalized[i], row.Number)
		if len(errs) > 0 {
			log.Errors = append(log.Errors, errs...)
			continue
		}
		product.ID = uuid.New().String()
		product.UpdatedBy = userID
		valid = append(valid, product)
	}

	created, updated, err := uc.products.BulkUpsert(valid)
	if err != nil {
		return err
	}
	log.ProductsCreated = created
	log.ProductsUpdated = updated

	uc.syncAlerts(valid)
	return nil
}

func (uc *ImportUseCase) importPackages(rows []importing.Row, log *entity.ImportLog) error {
	normalized := make([]importing.PackageRow, len(rows))
	keys := make([]string, len(rows))
	for i, row := range rows {
		normalized[i] = importing.NormalizePackageRow(row.Data)
		keys[i] = normalized[i].Code
	}
	dups := importing.DetectDuplicates(keys)

	var valid []*entity.Package
	for i, row := range rows {
		if dups[i] {
			log.Errors = append(log.Errors, entity.ImportRowError{
				Row: row.Number, Field: "code", Message: "Código duplicado en el archivo",
			})
			continue
		}
		pkg, errs := importing.ValidatePackage(normalized[i], row.Number)
		if len(errs) > 0 {
			log.Errors = append(log.Errors, errs...)
			continue
		}
		pkg.ID = uuid.New().String()
		valid = append(valid, pkg)
	}

	created, updated, err := uc.packages.BulkUpsert(valid)
	if err != nil {
		return err
	}
	log.PackagesCreated = created
	log.PackagesUpdated = updated
	return nil
}

// syncAlerts crea o refresca la alerta activa de cada producto importado que quedó
// en o por debajo de su mínimo. Fallos de alerta no frenan la importación.
func (uc *ImportUseCase) syncAlerts(products []*entity.Product) {
	for _, p := range products {
		if !p.LowStock() {
			continue
		}
		alert := &entity.Alert{
			ID:         uuid.New().String(),
			ProductSKU: p.SKU,
			Producto:   p.Nombre,
			Stock:      p.Stock,
			MinStock:   p.MinStock,
			Status:     entity.AlertStatusActive,
			Mensaje:    LowStockMessage(p),
		}
		if err := uc.alerts.UpsertActive(alert); err != nil {
			uc.log.Error().Err(err).Str("sku", p.SKU).Msg("no se pudo sincronizar la alerta de stock")
			continue
		}
		uc.notifier.NotifyLowStock(alert)
	}
}

// GetByID devuelve un registro del historial de importaciones.
func (uc *ImportUseCase) GetByID(id string) (*dto.ImportLogResponse, error) {
	log, err := uc.imports.GetByID(id)
	if err != nil {
		return nil, err
	}
	return toImportLogResponse(log), nil
}

// List devuelve el historial paginado, más reciente primero.
func (uc *ImportUseCase) List(page dto.PageRequest) (*dto.ImportListResponse, error) {
	page.DefaultPage()
	list, total, err := uc.imports.List(page.Limit, page.Offset())
	if err != nil {
		return nil, err
	}
	items := make([]dto.ImportLogResponse, 0, len(list))
	for _, l := range list {
		items = append(items, *toImportLogResponse(l))
	}
	return &dto.ImportListResponse{
		Items: items,
		Page:  dto.NewPageResponse(page.Page, page.Limit, total),
	}, nil
}

// LowStockMessage arma el mensaje humano de una alerta de stock bajo.
func LowStockMessage(p *entity.Product) string {
	return fmt.Sprintf("Stock bajo: %s (%d/%d)", p.Nombre, p.Stock, p.MinStock)
}

func toImportResponse(log *entity.ImportLog) *dto.ImportResponse {
	apiErrors := log.Errors
	if len(apiErrors) > maxAPIErrors {
		apiErrors = apiErrors[:maxAPIErrors]
	}
	return &dto.ImportResponse{
		OK:       true,
		ImportID: log.ID,
		Summary:  toImportSummary(log),
		Errors:   apiErrors,
	}
}

func toImportLogResponse(log *entity.ImportLog) *dto.ImportLogResponse {
	return &dto.ImportLogResponse{
		ID:        log.ID,
		FileName:  log.FileName,
		Summary:   toImportSummary(log),
		Errors:    log.Errors,
		UserID:    log.UserID,
		CreatedAt: log.CreatedAt,
	}
}

func toImportSummary(log *entity.ImportLog) dto.ImportSummary {
	return dto.ImportSummary{
		RowsTotal:       log.RowsTotal,
		RowsOk:          log.RowsOk,
		RowsError:       log.RowsError,
		ProductsCreated: log.ProductsCreated,
		ProductsUpdated: log.ProductsUpdated,
		PackagesCreated: log.PackagesCreated,
		PackagesUpdated: log.PackagesUpdated,
	}
}
