package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/ecolvin/tracelink-api/internal/domain"
	"github.com/ecolvin/tracelink-api/internal/domain/entity"
	"github.com/ecolvin/tracelink-api/internal/domain/repository"
)

var _ repository.AlertRepository = (*AlertRepo)(nil)

const alertColumns = `id, product_sku, producto, stock, min_stock, status, mensaje,
	resolved_at, COALESCE(resolved_by, ''), created_at, updated_at`

// AlertRepo implementación del puerto AlertRepository sobre PostgreSQL.
// El invariante "una activa por SKU" lo garantiza el índice único parcial
// uq_alerts_active_sku (WHERE status = 'active').
type AlertRepo struct {
	q Querier
}

// NewAlertRepository construye el adaptador de persistencia para alertas.
func NewAlertRepository(q Querier) *AlertRepo {
	return &AlertRepo{q: q}
}

// UpsertActive crea la alerta activa del SKU o refresca los snapshots de la existente.
func (r *AlertRepo) UpsertActive(alert *entity.Alert) error {
	query := `
		INSERT INTO alerts (id, product_sku, producto, stock, min_stock, status, mensaje, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, 'active', $6, now(), now())
		ON CONFLICT (product_sku) WHERE status = 'active' DO UPDATE SET
			producto = EXCLUDED.producto,
			stock = EXCLUDED.stock,
			min_stock = EXCLUDED.min_stock,
			mensaje = EXCLUDED.mensaje,
			updated_at = now()`
	_, err := r.q.Exec(context.Background(), query,
		alert.ID, alert.ProductSKU, alert.Producto, alert.Stock, alert.MinStock, alert.Mensaje,
	)
	if err != nil {
		return fmt.Errorf("upsert active alert: %w", err)
	}
	return nil
}

// GetByID obtiene una alerta por ID. Devuelve domain.ErrNotFound si no existe.
func (r *AlertRepo) GetByID(id string) (*entity.Alert, error) {
	query := `SELECT ` + alertColumns + ` FROM alerts WHERE id = $1`
	a, err := scanAlert(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get alert: %w", err)
	}
	return a, nil
}

// List lista alertas filtrando opcionalmente por status, más recientes primero.
func (r *AlertRepo) List(status string, limit, offset int) ([]*entity.Alert, int, error) {
	where := `WHERE ($1 = '' OR status = $1)`

	var total int
	err := r.q.QueryRow(context.Background(), `SELECT count(*) FROM alerts `+where, status).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("count alerts: %w", err)
	}

	query := `SELECT ` + alertColumns + ` FROM alerts ` + where + `
		ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, status, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list alerts: %w", err)
	}
	defer rows.Close()

	var list []*entity.Alert
	for rows.Next() {
		a, err := scanAlert(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan alert: %w", err)
		}
		list = append(list, a)
	}
	return list, total, rows.Err()
}

// ListActive lista las alertas activas más recientes (para el feed).
func (r *AlertRepo) ListActive(limit int) ([]*entity.Alert, error) {
	query := `SELECT ` + alertColumns + ` FROM alerts WHERE status = 'active'
		ORDER BY created_at DESC LIMIT $1`
	rows, err := r.q.Query(context.Background(), query, limit)
	if err != nil {
		return nil, fmt.Errorf("list active alerts: %w", err)
	}
	defer rows.Close()

	var list []*entity.Alert
	for rows.Next() {
		a, err := scanAlert(rows)
		if err != nil {
			return nil, fmt.Errorf("scan alert: %w", err)
		}
		list = append(list, a)
	}
	return list, rows.Err()
}

// ResolveByID marca la alerta como resuelta y devuelve el registro actualizado.
func (r *AlertRepo) ResolveByID(id, resolvedBy string) (*entity.Alert, error) {
	query := `
		UPDATE alerts SET status = 'resolved', resolved_at = now(),
			resolved_by = NULLIF($2, ''), updated_at = now()
		WHERE id = $1
		RETURNING ` + alertColumns
	a, err := scanAlert(r.q.QueryRow(context.Background(), query, id, resolvedBy))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("resolve alert: %w", err)
	}
	return a, nil
}

// ResolveActiveBySKU resuelve la alerta activa del SKU si existe; sin alerta activa es no-op.
func (r *AlertRepo) ResolveActiveBySKU(sku string) error {
	query := `
		UPDATE alerts SET status = 'resolved', resolved_at = now(), updated_at = now()
		WHERE product_sku = $1 AND status = 'active'`
	if _, err := r.q.Exec(context.Background(), query, sku); err != nil {
		return fmt.Errorf("resolve alert by sku: %w", err)
	}
	return nil
}

func scanAlert(row pgx.Row) (*entity.Alert, error) {
	var a entity.Alert
	err := row.Scan(&a.ID, &a.ProductSKU, &a.Producto, &a.Stock, &a.MinStock, &a.Status,
		&a.Mensaje, &a.ResolvedAt, &a.ResolvedBy, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &a, nil
}
