package usecase

import (
	"fmt"
	"sort"

	"github.com/ecolvin/tracelink-api/internal/application/alerting"
	"github.com/ecolvin/tracelink-api/internal/application/dto"
	"github.com/ecolvin/tracelink-api/internal/domain/entity"
	"github.com/ecolvin/tracelink-api/internal/domain/repository"
)

// feedLimit tope de elementos de cada fuente del feed unificado.
const feedLimit = 25

// AlertUseCase casos de uso de alertas: listado, resolución manual, configuración
// y el feed unificado de notificaciones (alertas de stock + entregas notificables).
type AlertUseCase struct {
	alerts     repository.AlertRepository
	deliveries repository.DeliveryRepository
	config     *alerting.ConfigService
}

// NewAlertUseCase construye el caso de uso.
func NewAlertUseCase(alerts repository.AlertRepository, deliveries repository.DeliveryRepository, config *alerting.ConfigService) *AlertUseCase {
	return &AlertUseCase{alerts: alerts, deliveries: deliveries, config: config}
}

// List lista alertas filtrando opcionalmente por status.
func (uc *AlertUseCase) List(status string, page dto.PageRequest) (*dto.AlertListResponse, error) {
	page.DefaultPage()
	list, total, err := uc.alerts.List(status, page.Limit, page.Offset())
	if err != nil {
		return nil, err
	}
	items := make([]dto.AlertResponse, 0, len(list))
	for _, a := range list {
		items = append(items, *toAlertResponse(a))
	}
	return &dto.AlertListResponse{
		Items: items,
		Page:  dto.NewPageResponse(page.Page, page.Limit, total),
	}, nil
}

// Resolve marca una alerta como resuelta por el usuario indicado.
func (uc *AlertUseCase) Resolve(id, resolvedBy string) (*dto.AlertResponse, error) {
	alert, err := uc.alerts.ResolveByID(id, resolvedBy)
	if err != nil {
		return nil, err
	}
	return toAlertResponse(alert), nil
}

// GetConfig devuelve la configuración vigente (se crea si no existe).
func (uc *AlertUseCase) GetConfig() (*dto.AlertConfigResponse, error) {
	cfg, err := uc.config.Ensure()
	if err != nil {
		return nil, err
	}
	return toAlertConfigResponse(cfg), nil
}

// UpdateConfig aplica cambios parciales a la configuración.
func (uc *AlertUseCase) UpdateConfig(in dto.UpdateAlertConfigRequest) (*dto.AlertConfigResponse, error) {
	cfg, err := uc.config.Update(in)
	if err != nil {
		return nil, err
	}
	return toAlertConfigResponse(cfg), nil
}

// Feed arma el feed unificado: alertas de stock activas más entregas cuyos
// estados figuran en la configuración, ordenado del más reciente al más antiguo.
func (uc *AlertUseCase) Feed() (*dto.FeedResponse, error) {
	cfg, err := uc.config.Ensure()
	if err != nil {
		return nil, err
	}

	alerts, err := uc.alerts.ListActive(feedLimit)
	if err != nil {
		return nil, err
	}
	items := make([]dto.FeedItem, 0, len(alerts))
	for _, a := range alerts {
		items = append(items, dto.FeedItem{
			Type:      "stock",
			RefID:     a.ID,
			Mensaje:   a.Mensaje,
			CreatedAt: a.CreatedAt,
		})
	}

	deliveries, err := uc.deliveries.ListByStatuses(cfg.NotifyStatuses, feedLimit)
	if err != nil {
		return nil, err
	}
	for _, d := range deliveries {
		items = append(items, dto.FeedItem{
			Type:      "delivery",
			RefID:     d.ID,
			Mensaje:   fmt.Sprintf("Entrega %s esta %s", d.NombrePersona, d.Status),
			CreatedAt: d.CreatedAt,
		})
	}

	sort.Slice(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
	return &dto.FeedResponse{Items: items}, nil
}

func toAlertResponse(a *entity.Alert) *dto.AlertResponse {
	if a == nil {
		return nil
	}
	return &dto.AlertResponse{
		ID:         a.ID,
		ProductSKU: a.ProductSKU,
		Producto:   a.Producto,
		Stock:      a.Stock,
		MinStock:   a.MinStock,
		Status:     a.Status,
		Mensaje:    a.Mensaje,
		ResolvedAt: a.ResolvedAt,
		ResolvedBy: a.ResolvedBy,
		CreatedAt:  a.CreatedAt,
		UpdatedAt:  a.UpdatedAt,
	}
}

func toAlertConfigResponse(c *entity.AlertConfig) *dto.AlertConfigResponse {
	return &dto.AlertConfigResponse{
		ID:              c.ID,
		StockThreshold:  c.StockThreshold,
		NotifyStatuses:  c.NotifyStatuses,
		EmailRecipients: c.EmailRecipients,
		UpdatedAt:       c.UpdatedAt,
	}
}
