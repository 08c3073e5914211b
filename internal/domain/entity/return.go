package entity

import "time"

// Estados físicos del producto devuelto.
var ReturnProductStates = []string{"sin_abrir", "sellado", "usado", "danado"}

// Resultados del proceso de devolución.
var ReturnOutcomes = []string{"reingresado", "para_revision", "descartado"}

// Return es una devolución de marketplace (p.ej. MercadoLibre).
type Return struct {
	ID                 string
	MarketplaceOrderID string
	Producto           string
	SKU                string
	Cantidad           int
	Motivo             string
	EstadoProducto     string
	Resultado          string
	Comentarios        string
	CustomerEmail      string
	FechaRecoleccion   *time.Time
	RecibidoPor        string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}
