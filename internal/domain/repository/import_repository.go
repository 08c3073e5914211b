package repository

import "github.com/ecolvin/tracelink-api/internal/domain/entity"

// ImportRepository puerto de persistencia del historial de importaciones (append-only).
type ImportRepository interface {
	Create(log *entity.ImportLog) error
	GetByID(id string) (*entity.ImportLog, error)
	List(limit, offset int) ([]*entity.ImportLog, int, error)
}
