package repository

import "github.com/ecolvin/tracelink-api/internal/domain/entity"

// AlertRepository puerto de persistencia para alertas de stock.
//
// UpsertActive mantiene el invariante de a lo sumo una alerta activa por SKU:
// crea la alerta si no hay activa para ese producto, o refresca los números y
// el mensaje de la existente.
type AlertRepository interface {
	UpsertActive(alert *entity.Alert) error
	GetByID(id string) (*entity.Alert, error)
	List(status string, limit, offset int) ([]*entity.Alert, int, error)
	ListActive(limit int) ([]*entity.Alert, error)
	ResolveByID(id, resolvedBy string) (*entity.Alert, error)
	ResolveActiveBySKU(sku string) error
}
