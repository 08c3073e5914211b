package entity

import "time"

// Estados válidos de un paquete.
const (
	PackageStateCreated   = "created"
	PackageStateInTransit = "in_transit"
	PackageStateDelivered = "delivered"
	PackageStateRejected  = "rejected"
)

// PackageStates lista los estados aceptados, en el orden del ciclo de vida.
var PackageStates = []string{
	PackageStateCreated,
	PackageStateInTransit,
	PackageStateDelivered,
	PackageStateRejected,
}

// ValidPackageState verifica si s es un estado de paquete aceptado.
func ValidPackageState(s string) bool {
	for _, v := range PackageStates {
		if s == v {
			return true
		}
	}
	return false
}

// Package es una unidad logística individual asociada a un producto.
// Code es la clave natural (mayúsculas); ProductSKU referencia al producto sin FK estricta.
type Package struct {
	ID         string
	Code       string
	ProductSKU string
	State      string
	Location   string
	Notes      string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
