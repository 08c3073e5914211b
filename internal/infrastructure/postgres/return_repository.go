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

var _ repository.ReturnRepository = (*ReturnRepo)(nil)

const returnColumns = `id, marketplace_order_id, producto, sku, cantidad, motivo,
	estado_producto, resultado, comentarios, customer_email, fecha_recoleccion,
	COALESCE(recibido_por, ''), created_at, updated_at`

// ReturnRepo implementación del puerto ReturnRepository sobre PostgreSQL.
type ReturnRepo struct {
	q Querier
}

// NewReturnRepository construye el adaptador de persistencia para devoluciones.
func NewReturnRepository(q Querier) *ReturnRepo {
	return &ReturnRepo{q: q}
}

// Create persiste una nueva devolución.
func (r *ReturnRepo) Create(ret *entity.Return) error {
	query := `
		INSERT INTO returns (id, marketplace_order_id, producto, sku, cantidad, motivo,
			estado_producto, resultado, comentarios, customer_email, fecha_recoleccion,
			recibido_por, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, NULLIF($12, ''), now(), now())`
	_, err := r.q.Exec(context.Background(), query,
		ret.ID, ret.MarketplaceOrderID, ret.Producto, ret.SKU, ret.Cantidad, ret.Motivo,
		ret.EstadoProducto, ret.Resultado, ret.Comentarios, ret.CustomerEmail,
		ret.FechaRecoleccion, ret.RecibidoPor,
	)
	if err != nil {
		return fmt.Errorf("insert return: %w", err)
	}
	return nil
}

// GetByID obtiene una devolución. Devuelve domain.ErrNotFound si no existe.
func (r *ReturnRepo) GetByID(id string) (*entity.Return, error) {
	query := `SELECT ` + returnColumns + ` FROM returns WHERE id = $1`
	ret, err := scanReturn(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get return: %w", err)
	}
	return ret, nil
}

// Update actualiza una devolución existente.
func (r *ReturnRepo) Update(ret *entity.Return) error {
	query := `
		UPDATE returns SET marketplace_order_id = $2, producto = $3, sku = $4, cantidad = $5,
			motivo = $6, estado_producto = $7, resultado = $8, comentarios = $9,
			customer_email = $10, fecha_recoleccion = $11, recibido_por = NULLIF($12, ''),
			updated_at = now()
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		ret.ID, ret.MarketplaceOrderID, ret.Producto, ret.SKU, ret.Cantidad, ret.Motivo,
		ret.EstadoProducto, ret.Resultado, ret.Comentarios, ret.CustomerEmail,
		ret.FechaRecoleccion, ret.RecibidoPor,
	)
	if err != nil {
		return fmt.Errorf("update return: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List lista devoluciones, más recientes primero, con paginación.
func (r *ReturnRepo) List(limit, offset int) ([]*entity.Return, int, error) {
	var total int
	if err := r.q.QueryRow(context.Background(), `SELECT count(*) FROM returns`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count returns: %w", err)
	}

	query := `SELECT ` + returnColumns + ` FROM returns ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list returns: %w", err)
	}
	defer rows.Close()

	var list []*entity.Return
	for rows.Next() {
		ret, err := scanReturn(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan return: %w", err)
		}
		list = append(list, ret)
	}
	return list, total, rows.Err()
}

func scanReturn(row pgx.Row) (*entity.Return, error) {
	var ret entity.Return
	err := row.Scan(&ret.ID, &ret.MarketplaceOrderID, &ret.Producto, &ret.SKU, &ret.Cantidad,
		&ret.Motivo, &ret.EstadoProducto, &ret.Resultado, &ret.Comentarios, &ret.CustomerEmail,
		&ret.FechaRecoleccion, &ret.RecibidoPor, &ret.CreatedAt, &ret.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &ret, nil
}
