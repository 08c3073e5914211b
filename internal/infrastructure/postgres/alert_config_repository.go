package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/ecolvin/tracelink-api/internal/domain/entity"
	"github.com/ecolvin/tracelink-api/internal/domain/repository"
)

var _ repository.AlertConfigRepository = (*AlertConfigRepo)(nil)

// AlertConfigRepo persistencia del documento único de configuración de alertas.
type AlertConfigRepo struct {
	q Querier
}

// NewAlertConfigRepository construye el adaptador de configuración de alertas.
func NewAlertConfigRepository(q Querier) *AlertConfigRepo {
	return &AlertConfigRepo{q: q}
}

// Get devuelve la configuración, o nil (sin error) si todavía no se creó.
func (r *AlertConfigRepo) Get() (*entity.AlertConfig, error) {
	query := `
		SELECT id, stock_threshold, notify_statuses, email_recipients, created_at, updated_at
		FROM alert_config ORDER BY created_at LIMIT 1`
	var c entity.AlertConfig
	err := r.q.QueryRow(context.Background(), query).Scan(
		&c.ID, &c.StockThreshold, &c.NotifyStatuses, &c.EmailRecipients, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get alert config: %w", err)
	}
	return &c, nil
}

// Save hace upsert de la configuración por ID.
func (r *AlertConfigRepo) Save(cfg *entity.AlertConfig) error {
	query := `
		INSERT INTO alert_config (id, stock_threshold, notify_statuses, email_recipients, created_at, updated_at)
		VALUES ($1, $2, $3, $4, now(), now())
		ON CONFLICT (id) DO UPDATE SET
			stock_threshold = EXCLUDED.stock_threshold,
			notify_statuses = EXCLUDED.notify_statuses,
			email_recipients = EXCLUDED.email_recipients,
			updated_at = now()`
	_, err := r.q.Exec(context.Background(), query,
		cfg.ID, cfg.StockThreshold, cfg.NotifyStatuses, cfg.EmailRecipients,
	)
	if err != nil {
		return fmt.Errorf("save alert config: %w", err)
	}
	return nil
}
