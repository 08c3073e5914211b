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

var _ repository.DeliveryRepository = (*DeliveryRepo)(nil)

const deliveryColumns = `id, code, nombre_persona, nombre_productos, cantidad, status,
	direccion, fecha_entrega_estimada, notas, plataforma, COALESCE(user_id, ''), created_at, updated_at`

// DeliveryRepo implementación del puerto DeliveryRepository sobre PostgreSQL.
type DeliveryRepo struct {
	q Querier
}

// NewDeliveryRepository construye el adaptador de persistencia para entregas.
func NewDeliveryRepository(q Querier) *DeliveryRepo {
	return &DeliveryRepo{q: q}
}

// Create persiste una nueva entrega.
func (r *DeliveryRepo) Create(d *entity.Delivery) error {
	query := `
		INSERT INTO deliveries (id, code, nombre_persona, nombre_productos, cantidad, status,
			direccion, fecha_entrega_estimada, notas, plataforma, user_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NULLIF($11, ''), now(), now())`
	_, err := r.q.Exec(context.Background(), query,
		d.ID, d.Code, d.NombrePersona, d.NombreProductos, d.Cantidad, d.Status,
		d.Direccion, d.FechaEntregaEstimada, d.Notas, d.Plataforma, d.UserID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert delivery: %w", err)
	}
	return nil
}

// Find obtiene una entrega por code (DEL-...) o por ID interno.
// Devuelve domain.ErrNotFound si no existe.
func (r *DeliveryRepo) Find(identifier string) (*entity.Delivery, error) {
	query := `SELECT ` + deliveryColumns + ` FROM deliveries WHERE code = $1 OR id::text = $1`
	d, err := scanDelivery(r.q.QueryRow(context.Background(), query, identifier))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get delivery: %w", err)
	}
	return d, nil
}

// Update actualiza una entrega existente por ID.
func (r *DeliveryRepo) Update(d *entity.Delivery) error {
	query := `
		UPDATE deliveries SET nombre_persona = $2, nombre_productos = $3, cantidad = $4,
			status = $5, direccion = $6, fecha_entrega_estimada = $7, notas = $8,
			plataforma = $9, updated_at = now()
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		d.ID, d.NombrePersona, d.NombreProductos, d.Cantidad, d.Status,
		d.Direccion, d.FechaEntregaEstimada, d.Notas, d.Plataforma,
	)
	if err != nil {
		return fmt.Errorf("update delivery: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina una entrega por code o ID. Devuelve si algo se borró.
func (r *DeliveryRepo) Delete(identifier string) (bool, error) {
	cmd, err := r.q.Exec(context.Background(),
		`DELETE FROM deliveries WHERE code = $1 OR id::text = $1`, identifier)
	if err != nil {
		return false, fmt.Errorf("delete delivery: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// List lista entregas filtrando opcionalmente por status, más recientes primero.
func (r *DeliveryRepo) List(status string, limit, offset int) ([]*entity.Delivery, int, error) {
	where := `WHERE ($1 = '' OR status = $1)`

	var total int
	err := r.q.QueryRow(context.Background(), `SELECT count(*) FROM deliveries `+where, status).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("count deliveries: %w", err)
	}

	query := `SELECT ` + deliveryColumns + ` FROM deliveries ` + where + `
		ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, status, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list deliveries: %w", err)
	}
	defer rows.Close()

	var list []*entity.Delivery
	for rows.Next() {
		d, err := scanDelivery(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan delivery: %w", err)
		}
		list = append(list, d)
	}
	return list, total, rows.Err()
}

// ListByStatuses lista las entregas cuyos estados alimentan el feed de alertas.
func (r *DeliveryRepo) ListByStatuses(statuses []string, limit int) ([]*entity.Delivery, error) {
	if len(statuses) == 0 {
		return nil, nil
	}
	query := `SELECT ` + deliveryColumns + ` FROM deliveries WHERE status = ANY($1)
		ORDER BY created_at DESC LIMIT $2`
	rows, err := r.q.Query(context.Background(), query, statuses, limit)
	if err != nil {
		return nil, fmt.Errorf("list deliveries by status: %w", err)
	}
	defer rows.Close()

	var list []*entity.Delivery
	for rows.Next() {
		d, err := scanDelivery(rows)
		if err != nil {
			return nil, fmt.Errorf("scan delivery: %w", err)
		}
		list = append(list, d)
	}
	return list, rows.Err()
}

func scanDelivery(row pgx.Row) (*entity.Delivery, error) {
	var d entity.Delivery
	err := row.Scan(&d.ID, &d.Code, &d.NombrePersona, &d.NombreProductos, &d.Cantidad, &d.Status,
		&d.Direccion, &d.FechaEntregaEstimada, &d.Notas, &d.Plataforma, &d.UserID,
		&d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &d, nil
}
