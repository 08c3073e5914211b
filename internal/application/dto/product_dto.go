package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductItem un producto del lote de alta manual. SKU es opcional: si falta
// se genera uno con prefijo SKU-.
type CreateProductItem struct {
	SKU            string          `json:"sku"`
	Nombre         string          `json:"nombre"`
	Categoria      string          `json:"categoria"`
	Stock          int             `json:"stock"`
	MinStock       int             `json:"minStock"`
	PrecioUnitario decimal.Decimal `json:"precioUnitario"`
}

// CreateProductsRequest entrada del alta manual (hasta 5 productos por petición).
type CreateProductsRequest struct {
	Productos []CreateProductItem `json:"productos"`
}

// UpdateProductRequest entrada del PATCH por SKU; solo los campos presentes se tocan.
type UpdateProductRequest struct {
	Nombre         *string          `json:"nombre"`
	Categoria      *string          `json:"categoria"`
	Stock          *int             `json:"stock"`
	MinStock       *int             `json:"minStock"`
	PrecioUnitario *decimal.Decimal `json:"precioUnitario"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID             string          `json:"id"`
	SKU            string          `json:"sku"`
	Nombre         string          `json:"nombre"`
	Categoria      string          `json:"categoria"`
	Stock          int             `json:"stock"`
	MinStock       int             `json:"minStock"`
	PrecioUnitario decimal.Decimal `json:"precioUnitario"`
	UpdatedBy      string          `json:"updatedBy,omitempty"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}

// CreateProductsResponse resultado del alta por lote: los válidos se crean
// aunque otros elementos del lote tengan errores.
type CreateProductsResponse struct {
	OK           bool              `json:"ok"`
	Created      int               `json:"created"`
	Errors       int               `json:"errors"`
	Products     []ProductResponse `json:"products"`
	ErrorDetails []string          `json:"errorDetails,omitempty"`
}

// ProductListResponse lista paginada de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
