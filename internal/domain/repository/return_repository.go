package repository

import "github.com/ecolvin/tracelink-api/internal/domain/entity"

// ReturnRepository puerto de persistencia para devoluciones de marketplace.
type ReturnRepository interface {
	Create(ret *entity.Return) error
	GetByID(id string) (*entity.Return, error)
	Update(ret *entity.Return) error
	List(limit, offset int) ([]*entity.Return, int, error)
}
