package entity

import "time"

// Estados de una entrega.
const (
	DeliveryStatusPendiente     = "pendiente"
	DeliveryStatusEnPreparacion = "en_preparacion"
	DeliveryStatusEnCamino      = "en_camino"
	DeliveryStatusEntregado     = "entregado"
	DeliveryStatusCancelado     = "cancelado"
)

// DeliveryStatuses estados aceptados para una entrega.
var DeliveryStatuses = []string{
	DeliveryStatusPendiente,
	DeliveryStatusEnPreparacion,
	DeliveryStatusEnCamino,
	DeliveryStatusEntregado,
	DeliveryStatusCancelado,
}

// ValidDeliveryStatus verifica si s es un estado de entrega aceptado.
func ValidDeliveryStatus(s string) bool {
	for _, v := range DeliveryStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// Plataformas de origen de una entrega.
var DeliveryPlatforms = []string{"delivery", "mercadolibre", "otro"}

// Delivery es una entrega/envío para trazabilidad. Code es el identificador
// legible generado (DEL-...); su status alimenta el feed de alertas.
type Delivery struct {
	ID                   string
	Code                 string
	NombrePersona        string
	NombreProductos      string
	Cantidad             int
	Status               string
	Direccion            string
	FechaEntregaEstimada time.Time
	Notas                string
	Plataforma           string
	UserID               string
	CreatedAt            time.Time
	UpdatedAt            time.Time
}
