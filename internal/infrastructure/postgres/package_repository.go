package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/ecolvin/tracelink-api/internal/domain/entity"
	"github.com/ecolvin/tracelink-api/internal/domain/repository"
)

var _ repository.PackageRepository = (*PackageRepo)(nil)

const packageColumns = `id, code, product_sku, state, location, notes, created_at, updated_at`

// PackageRepo implementación del puerto PackageRepository sobre PostgreSQL.
type PackageRepo struct {
	q Querier
}

// NewPackageRepository construye el adaptador de persistencia para paquetes.
func NewPackageRepository(q Querier) *PackageRepo {
	return &PackageRepo{q: q}
}

// FindByCode obtiene un paquete por su código. Devuelve nil (sin error) si no existe.
func (r *PackageRepo) FindByCode(code string) (*entity.Package, error) {
	query := `SELECT ` + packageColumns + ` FROM packages WHERE code = $1`
	p, err := scanPackage(r.q.QueryRow(context.Background(), query, code))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get package by code: %w", err)
	}
	return p, nil
}

// BulkUpsert persiste el lote por código en una sola ronda (pgx.Batch), contando
// creados vs actualizados igual que el lote de productos.
func (r *PackageRepo) BulkUpsert(packages []*entity.Package) (int, int, error) {
	if len(packages) == 0 {
		return 0, 0, nil
	}
	query := `
		INSERT INTO packages (id, code, product_sku, state, location, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, now(), now())
		ON CONFLICT (code) DO UPDATE SET
			product_sku = EXCLUDED.product_sku,
			state = EXCLUDED.state,
			location = EXCLUDED.location,
			notes = EXCLUDED.notes,
			updated_at = now()
		RETURNING (xmax = 0)`

	batch := &pgx.Batch{}
	for _, p := range packages {
		batch.Queue(query, p.ID, p.Code, p.ProductSKU, p.State, p.Location, p.Notes)
	}
	results := r.q.SendBatch(context.Background(), batch)
	defer results.Close()

	var created, updated int
	for range packages {
		var inserted bool
		if err := results.QueryRow().Scan(&inserted); err != nil {
			return 0, 0, fmt.Errorf("bulk upsert packages: %w", err)
		}
		if inserted {
			created++
		} else {
			updated++
		}
	}
	return created, updated, nil
}

// List lista paquetes con búsqueda por code/productSku, filtros y paginación.
func (r *PackageRepo) List(q repository.PackageQuery) ([]*entity.Package, int, error) {
	where := `WHERE ($1 = '' OR code ILIKE '%' || $1 || '%' OR product_sku ILIKE '%' || $1 || '%')
		AND ($2 = '' OR state = $2)
		AND ($3 = '' OR location ILIKE '%' || $3 || '%')`

	var total int
	err := r.q.QueryRow(context.Background(),
		`SELECT count(*) FROM packages `+where, q.Search, q.State, q.Location,
	).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("count packages: %w", err)
	}

	query := `SELECT ` + packageColumns + ` FROM packages ` + where + `
		ORDER BY updated_at DESC LIMIT $4 OFFSET $5`
	rows, err := r.q.Query(context.Background(), query, q.Search, q.State, q.Location, q.Limit, q.Offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list packages: %w", err)
	}
	defer rows.Close()

	var list []*entity.Package
	for rows.Next() {
		p, err := scanPackage(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan package: %w", err)
		}
		list = append(list, p)
	}
	return list, total, rows.Err()
}

func scanPackage(row pgx.Row) (*entity.Package, error) {
	var p entity.Package
	err := row.Scan(&p.ID, &p.Code, &p.ProductSKU, &p.State, &p.Location, &p.Notes, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
