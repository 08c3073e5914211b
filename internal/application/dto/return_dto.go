package dto

import "time"

// CreateReturnRequest entrada para registrar una devolución de marketplace.
type CreateReturnRequest struct {
	MarketplaceOrderID string     `json:"marketplaceOrderId"`
	Producto           string     `json:"producto"`
	SKU                string     `json:"sku"`
	Cantidad           int        `json:"cantidad"`
	Motivo             string     `json:"motivo"`
	EstadoProducto     string     `json:"estadoProducto"`
	Resultado          string     `json:"resultado"`
	Comentarios        string     `json:"comentarios"`
	CustomerEmail      string     `json:"customerEmail"`
	FechaRecoleccion   *time.Time `json:"fechaRecoleccion"`
}

// UpdateReturnRequest entrada del PATCH de devolución; solo los campos presentes se tocan.
type UpdateReturnRequest struct {
	Cantidad         *int       `json:"cantidad"`
	Motivo           *string    `json:"motivo"`
	EstadoProducto   *string    `json:"estadoProducto"`
	Resultado        *string    `json:"resultado"`
	Comentarios      *string    `json:"comentarios"`
	CustomerEmail    *string    `json:"customerEmail"`
	FechaRecoleccion *time.Time `json:"fechaRecoleccion"`
}

// ReturnResponse salida de una devolución.
type ReturnResponse struct {
	ID                 string     `json:"id"`
	MarketplaceOrderID string     `json:"marketplaceOrderId"`
	Producto           string     `json:"producto"`
	SKU                string     `json:"sku"`
	Cantidad           int        `json:"cantidad"`
	Motivo             string     `json:"motivo"`
	EstadoProducto     string     `json:"estadoProducto"`
	Resultado          string     `json:"resultado"`
	Comentarios        string     `json:"comentarios"`
	CustomerEmail      string     `json:"customerEmail"`
	FechaRecoleccion   *time.Time `json:"fechaRecoleccion,omitempty"`
	RecibidoPor        string     `json:"recibidoPor,omitempty"`
	CreatedAt          time.Time  `json:"createdAt"`
	UpdatedAt          time.Time  `json:"updatedAt"`
}

// ReturnListResponse lista paginada de devoluciones.
type ReturnListResponse struct {
	Items []ReturnResponse `json:"items"`
	Page  PageResponse     `json:"page"`
}
