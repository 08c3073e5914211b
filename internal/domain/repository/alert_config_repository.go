package repository

import "github.com/ecolvin/tracelink-api/internal/domain/entity"

// AlertConfigRepository puerto de persistencia del documento único de configuración.
// Get devuelve nil (sin error) si todavía no existe; Save hace upsert.
type AlertConfigRepository interface {
	Get() (*entity.AlertConfig, error)
	Save(cfg *entity.AlertConfig) error
}
