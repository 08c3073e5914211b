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

var _ repository.ImportRepository = (*ImportRepo)(nil)

const importColumns = `id, file_name, rows_total, rows_ok, rows_error, errors,
	products_created, products_updated, packages_created, packages_updated,
	COALESCE(user_id, ''), created_at`

// ImportRepo persistencia del historial de importaciones. Los errores por fila
// se guardan como JSONB.
type ImportRepo struct {
	q Querier
}

// NewImportRepository construye el adaptador de persistencia del historial.
func NewImportRepository(q Querier) *ImportRepo {
	return &ImportRepo{q: q}
}

// Create registra una importación terminada.
func (r *ImportRepo) Create(log *entity.ImportLog) error {
	query := `
		INSERT INTO imports (id, file_name, rows_total, rows_ok, rows_error, errors,
			products_created, products_updated, packages_created, packages_updated, user_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NULLIF($11, ''), now())`
	_, err := r.q.Exec(context.Background(), query,
		log.ID, log.FileName, log.RowsTotal, log.RowsOk, log.RowsError, log.Errors,
		log.ProductsCreated, log.ProductsUpdated, log.PackagesCreated, log.PackagesUpdated, log.UserID,
	)
	if err != nil {
		return fmt.Errorf("insert import log: %w", err)
	}
	return nil
}

// GetByID obtiene un registro de importación. Devuelve domain.ErrNotFound si no existe.
func (r *ImportRepo) GetByID(id string) (*entity.ImportLog, error) {
	query := `SELECT ` + importColumns + ` FROM imports WHERE id = $1`
	l, err := scanImportLog(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get import log: %w", err)
	}
	return l, nil
}

// List lista importaciones, más recientes primero, con paginación.
func (r *ImportRepo) List(limit, offset int) ([]*entity.ImportLog, int, error) {
	var total int
	if err := r.q.QueryRow(context.Background(), `SELECT count(*) FROM imports`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count imports: %w", err)
	}

	query := `SELECT ` + importColumns + ` FROM imports ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list imports: %w", err)
	}
	defer rows.Close()

	var list []*entity.ImportLog
	for rows.Next() {
		l, err := scanImportLog(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan import log: %w", err)
		}
		list = append(list, l)
	}
	return list, total, rows.Err()
}

func scanImportLog(row pgx.Row) (*entity.ImportLog, error) {
	var l entity.ImportLog
	err := row.Scan(&l.ID, &l.FileName, &l.RowsTotal, &l.RowsOk, &l.RowsError, &l.Errors,
		&l.ProductsCreated, &l.ProductsUpdated, &l.PackagesCreated, &l.PackagesUpdated,
		&l.UserID, &l.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &l, nil
}
