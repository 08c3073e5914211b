package repository

import "github.com/ecolvin/tracelink-api/internal/domain/entity"

// DeliveryRepository puerto de persistencia para entregas.
// Find acepta el code generado (DEL-...) o el ID interno.
type DeliveryRepository interface {
	Create(delivery *entity.Delivery) error
	Find(identifier string) (*entity.Delivery, error)
	Update(delivery *entity.Delivery) error
	Delete(identifier string) (bool, error)
	List(status string, limit, offset int) ([]*entity.Delivery, int, error)
	ListByStatuses(statuses []string, limit int) ([]*entity.Delivery, error)
}
