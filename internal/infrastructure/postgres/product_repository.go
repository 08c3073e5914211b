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

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productColumns = `id, sku, nombre, categoria, stock, min_stock, precio_unitario, COALESCE(updated_by, ''), created_at, updated_at`

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos.
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// FindBySKU obtiene un producto por SKU. Devuelve nil (sin error) si no existe.
func (r *ProductRepo) FindBySKU(sku string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE sku = $1`
	p, err := scanProduct(r.q.QueryRow(context.Background(), query, sku))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product by sku: %w", err)
	}
	return p, nil
}

// Upsert inserta el producto o actualiza el existente con el mismo SKU, y devuelve
// el registro persistido con sus timestamps.
func (r *ProductRepo) Upsert(product *entity.Product) (*entity.Product, error) {
	query := `
		INSERT INTO products (id, sku, nombre, categoria, stock, min_stock, precio_unitario, updated_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NULLIF($8, ''), now(), now())
		ON CONFLICT (sku) DO UPDATE SET
			nombre = EXCLUDED.nombre,
			categoria = EXCLUDED.categoria,
			stock = EXCLUDED.stock,
			min_stock = EXCLUDED.min_stock,
			precio_unitario = EXCLUDED.precio_unitario,
			updated_by = EXCLUDED.updated_by,
			updated_at = now()
		RETURNING ` + productColumns
	p, err := scanProduct(r.q.QueryRow(context.Background(), query,
		product.ID, product.SKU, product.Nombre, product.Categoria,
		product.Stock, product.MinStock, product.PrecioUnitario, product.UpdatedBy,
	))
	if err != nil {
		return nil, fmt.Errorf("upsert product: %w", err)
	}
	return p, nil
}

// BulkUpsert persiste el lote en una sola ronda de red (pgx.Batch) y cuenta creados
// vs actualizados con RETURNING (xmax = 0): xmax cero significa fila recién insertada.
// Lote vacío es no-op con conteos en cero.
func (r *ProductRepo) BulkUpsert(products []*entity.Product) (int, int, error) {
	if len(products) == 0 {
		return 0, 0, nil
	}
	query := `
		INSERT INTO products (id, sku, nombre, categoria, stock, min_stock, precio_unitario, updated_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NULLIF($8, ''), now(), now())
		ON CONFLICT (sku) DO UPDATE SET
			nombre = EXCLUDED.nombre,
			categoria = EXCLUDED.categoria,
			stock = EXCLUDED.stock,
			min_stock = EXCLUDED.min_stock,
			precio_unitario = EXCLUDED.precio_unitario,
			updated_by = EXCLUDED.updated_by,
			updated_at = now()
		RETURNING (xmax = 0)`

	batch := &pgx.Batch{}
	for _, p := range products {
		batch.Queue(query, p.ID, p.SKU, p.Nombre, p.Categoria, p.Stock, p.MinStock, p.PrecioUnitario, p.UpdatedBy)
	}
	results := r.q.SendBatch(context.Background(), batch)
	defer results.Close()

	var created, updated int
	for range products {
		var inserted bool
		if err := results.QueryRow().Scan(&inserted); err != nil {
			return 0, 0, fmt.Errorf("bulk upsert products: %w", err)
		}
		if inserted {
			created++
		} else {
			updated++
		}
	}
	return created, updated, nil
}

// Update actualiza un producto existente por SKU.
func (r *ProductRepo) Update(product *entity.Product) error {
	query := `
		UPDATE products SET nombre = $2, categoria = $3, stock = $4, min_stock = $5,
			precio_unitario = $6, updated_by = NULLIF($7, ''), updated_at = now()
		WHERE sku = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		product.SKU, product.Nombre, product.Categoria, product.Stock,
		product.MinStock, product.PrecioUnitario, product.UpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List lista productos con búsqueda por SKU/nombre, filtro por categoría y paginación.
// Devuelve además el total sin paginar.
func (r *ProductRepo) List(q repository.ProductQuery) ([]*entity.Product, int, error) {
	where := `WHERE ($1 = '' OR sku ILIKE '%' || $1 || '%' OR nombre ILIKE '%' || $1 || '%')
		AND ($2 = '' OR categoria = $2)`

	var total int
	err := r.q.QueryRow(context.Background(),
		`SELECT count(*) FROM products `+where, q.Search, q.Categoria,
	).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("count products: %w", err)
	}

	query := `SELECT ` + productColumns + ` FROM products ` + where + `
		ORDER BY updated_at DESC LIMIT $3 OFFSET $4`
	rows, err := r.q.Query(context.Background(), query, q.Search, q.Categoria, q.Limit, q.Offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	var list []*entity.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, p)
	}
	return list, total, rows.Err()
}

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	err := row.Scan(&p.ID, &p.SKU, &p.Nombre, &p.Categoria, &p.Stock, &p.MinStock,
		&p.PrecioUnitario, &p.UpdatedBy, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
