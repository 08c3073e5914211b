package repository

import "github.com/ecolvin/tracelink-api/internal/domain/entity"

// ProductQuery filtros de listado de productos.
type ProductQuery struct {
	Search    string // sobre SKU y nombre, case-insensitive
	Categoria string
	Limit     int
	Offset    int
}

// ProductRepository define el puerto de persistencia para Product, con clave natural SKU.
// BulkUpsert es una única escritura por lotes; lista vacía = no-op con conteos en cero.
type ProductRepository interface {
	FindBySKU(sku string) (*entity.Product, error)
	Upsert(product *entity.Product) (*entity.Product, error)
	BulkUpsert(products []*entity.Product) (created, updated int, err error)
	Update(product *entity.Product) error
	List(q ProductQuery) ([]*entity.Product, int, error)
}
