package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del inventario, identificado por SKU (clave natural, mayúsculas).
// Stock y MinStock son enteros ≥ 0; PrecioUnitario es decimal ≥ 0.
type Product struct {
	ID             string
	SKU            string
	Nombre         string
	Categoria      string
	Stock          int
	MinStock       int // mínimo antes de generar alerta; por defecto 10
	PrecioUnitario decimal.Decimal
	UpdatedBy      string // ID del usuario que hizo el último cambio (vacío en cargas anónimas)
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// LowStock indica si el producto está en o por debajo de su mínimo.
func (p *Product) LowStock() bool {
	return p.Stock <= p.MinStock
}
