package usecase

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ecolvin/tracelink-api/internal/application/dto"
	"github.com/ecolvin/tracelink-api/internal/domain"
	"github.com/ecolvin/tracelink-api/internal/domain/entity"
	"github.com/ecolvin/tracelink-api/internal/domain/importing"
	"github.com/ecolvin/tracelink-api/internal/domain/repository"
	"github.com/ecolvin/tracelink-api/pkg/logger"
)

// maxManualBatch tope de productos por petición de alta manual.
const maxManualBatch = 5

// ProductUseCase casos de uso de productos: alta manual por lote, listado con
// filtros y edición por SKU con sincronización de alertas.
type ProductUseCase struct {
	repo     repository.ProductRepository
	alerts   repository.AlertRepository
	notifier Notifier
	log      *logger.Logger
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, alerts repository.AlertRepository, notifier Notifier, log *logger.Logger) *ProductUseCase {
	return &ProductUseCase{repo: repo, alerts: alerts, notifier: notifier, log: log}
}

// Create da de alta hasta 5 productos. Los elementos inválidos no frenan el
// resto del lote: se acumulan como detalle de error y los válidos se persisten.
// Los SKU faltantes se generan; los provistos se llevan a mayúsculas y hacen
// upsert si ya existen.
func (uc *ProductUseCase) Create(in dto.CreateProductsRequest, userID string) (*dto.CreateProductsResponse, error) {
	if len(in.Productos) == 0 {
		return nil, fmt.Errorf("%w: la lista de productos está vacía", domain.ErrInvalidInput)
	}
	if len(in.Productos) > maxManualBatch {
		return nil, fmt.Errorf("%w: máximo %d productos por petición", domain.ErrInvalidInput, maxManualBatch)
	}

	out := &dto.CreateProductsResponse{OK: true}
	for i, item := range in.Productos {
		if item.Nombre == "" || item.Categoria == "" {
			out.ErrorDetails = append(out.ErrorDetails, fmt.Sprintf("producto %d: nombre y categoría son obligatorios", i+1))
			continue
		}
		if item.Stock < 0 || item.PrecioUnitario.IsNegative() {
			out.ErrorDetails = append(out.ErrorDetails, fmt.Sprintf("producto %d: stock y precio deben ser ≥ 0", i+1))
			continue
		}
		sku := normalizeSKU(item.SKU)
		if sku == "" {
			sku = generateSKU()
		}
		minStock := item.MinStock
		if minStock <= 0 {
			minStock = importing.DefaultMinStock
		}
		product := &entity.Product{
			ID:             uuid.New().String(),
			SKU:            sku,
			Nombre:         item.Nombre,
			Categoria:      item.Categoria,
			Stock:          item.Stock,
			MinStock:       minStock,
			PrecioUnitario: item.PrecioUnitario,
			UpdatedBy:      userID,
		}
		saved, err := uc.repo.Upsert(product)
		if err != nil {
			return nil, err
		}
		uc.syncProductAlert(saved)
		out.Products = append(out.Products, *toProductResponse(saved))
	}
	out.Created = len(out.Products)
	out.Errors = len(out.ErrorDetails)
	return out, nil
}

// GetBySKU obtiene un producto por SKU.
func (uc *ProductUseCase) GetBySKU(sku string) (*dto.ProductResponse, error) {
	product, err := uc.repo.FindBySKU(normalizeSKU(sku))
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return toProductResponse(product), nil
}

// List lista productos con búsqueda por SKU/nombre y filtro por categoría.
func (uc *ProductUseCase) List(search, categoria string, page dto.PageRequest) (*dto.ProductListResponse, error) {
	page.DefaultPage()
	list, total, err := uc.repo.List(repository.ProductQuery{
		Search:    search,
		Categoria: categoria,
		Limit:     page.Limit,
		Offset:    page.Offset(),
	})
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.NewPageResponse(page.Page, page.Limit, total),
	}, nil
}

// Update edita un producto por SKU (solo campos presentes) y sincroniza su alerta:
// stock en o bajo el mínimo crea/refresca la alerta activa; por encima la resuelve.
func (uc *ProductUseCase) Update(sku string, in dto.UpdateProductRequest, userID string) (*dto.ProductResponse, error) {
	product, err := uc.repo.FindBySKU(normalizeSKU(sku))
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}

	if in.Nombre != nil {
		if *in.Nombre == "" {
			return nil, fmt.Errorf("%w: nombre no puede ser vacío", domain.ErrInvalidInput)
		}
		product.Nombre = *in.Nombre
	}
	if in.Categoria != nil {
		product.Categoria = *in.Categoria
	}
	if in.Stock != nil {
		if *in.Stock < 0 {
			return nil, fmt.Errorf("%w: stock debe ser ≥ 0", domain.ErrInvalidInput)
		}
		product.Stock = *in.Stock
	}
	if in.MinStock != nil {
		if *in.MinStock <= 0 {
			return nil, fmt.Errorf("%w: minStock debe ser > 0", domain.ErrInvalidInput)
		}
		product.MinStock = *in.MinStock
	}
	if in.PrecioUnitario != nil {
		if in.PrecioUnitario.IsNegative() {
			return nil, fmt.Errorf("%w: precio debe ser ≥ 0", domain.ErrInvalidInput)
		}
		product.PrecioUnitario = *in.PrecioUnitario
	}
	product.UpdatedBy = userID

	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	uc.resolveOrRaiseAlert(product)
	product.UpdatedAt = time.Now()
	return toProductResponse(product), nil
}

// syncProductAlert crea/refresca la alerta si el producto quedó bajo el mínimo.
// Usado en altas: sin stock bajo no toca alertas existentes.
func (uc *ProductUseCase) syncProductAlert(p *entity.Product) {
	if !p.LowStock() {
		return
	}
	alert := uc.buildAlert(p)
	if err := uc.alerts.UpsertActive(alert); err != nil {
		uc.log.Error().Err(err).Str("sku", p.SKU).Msg("no se pudo sincronizar la alerta de stock")
		return
	}
	uc.notifier.NotifyLowStock(alert)
}

// resolveOrRaiseAlert es la variante de la edición: además de crear/refrescar,
// resuelve la alerta activa cuando el stock vuelve a estar por encima del mínimo.
func (uc *ProductUseCase) resolveOrRaiseAlert(p *entity.Product) {
	if p.LowStock() {
		uc.syncProductAlert(p)
		return
	}
	if err := uc.alerts.ResolveActiveBySKU(p.SKU); err != nil {
		uc.log.Error().Err(err).Str("sku", p.SKU).Msg("no se pudo resolver la alerta de stock")
	}
}

func (uc *ProductUseCase) buildAlert(p *entity.Product) *entity.Alert {
	return &entity.Alert{
		ID:         uuid.New().String(),
		ProductSKU: p.SKU,
		Producto:   p.Nombre,
		Stock:      p.Stock,
		MinStock:   p.MinStock,
		Status:     entity.AlertStatusActive,
		Mensaje:    LowStockMessage(p),
	}
}

func normalizeSKU(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

const skuRandChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// generateSKU genera un SKU único legible: SKU-<millis>-<6 alfanuméricos>.
func generateSKU() string {
	suffix := make([]byte, 6)
	for i := range suffix {
		suffix[i] = skuRandChars[rand.Intn(len(skuRandChars))]
	}
	return fmt.Sprintf("SKU-%d-%s", time.Now().UnixMilli(), suffix)
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:             p.ID,
		SKU:            p.SKU,
		Nombre:         p.Nombre,
		Categoria:      p.Categoria,
		Stock:          p.Stock,
		MinStock:       p.MinStock,
		PrecioUnitario: p.PrecioUnitario,
		UpdatedBy:      p.UpdatedBy,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}
