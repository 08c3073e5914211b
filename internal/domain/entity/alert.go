package entity

import "time"

// Estados de una alerta de stock.
const (
	AlertStatusActive    = "active"
	AlertStatusResolved  = "resolved"
	AlertStatusDismissed = "dismissed"
)

// Alert es una alerta de stock bajo derivada de un producto.
// Invariante: a lo sumo una alerta activa por ProductSKU (upsert por clave).
// Producto, Stock y MinStock son snapshots del momento de la alerta.
type Alert struct {
	ID         string
	ProductSKU string
	Producto   string // nombre del producto al momento de la alerta
	Stock      int
	MinStock   int
	Status     string
	Mensaje    string
	ResolvedAt *time.Time
	ResolvedBy string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
