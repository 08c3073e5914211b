package dto

import "time"

// CreateDeliveryRequest entrada para crear una entrega. El code se genera (DEL-...).
type CreateDeliveryRequest struct {
	NombrePersona        string    `json:"nombrePersona"`
	NombreProductos      string    `json:"nombreProductos"`
	Cantidad             int       `json:"cantidad"`
	Status               string    `json:"status"`
	Direccion            string    `json:"direccion"`
	FechaEntregaEstimada time.Time `json:"fechaEntregaEstimada"`
	Notas                string    `json:"notas"`
	Plataforma           string    `json:"plataforma"`
}

// UpdateDeliveryRequest entrada del PATCH de entrega; solo los campos presentes se tocan.
type UpdateDeliveryRequest struct {
	NombrePersona        *string    `json:"nombrePersona"`
	NombreProductos      *string    `json:"nombreProductos"`
	Cantidad             *int       `json:"cantidad"`
	Status               *string    `json:"status"`
	Direccion            *string    `json:"direccion"`
	FechaEntregaEstimada *time.Time `json:"fechaEntregaEstimada"`
	Notas                *string    `json:"notas"`
	Plataforma           *string    `json:"plataforma"`
}

// DeliveryResponse salida de una entrega.
type DeliveryResponse struct {
	ID                   string    `json:"id"`
	Code                 string    `json:"code"`
	NombrePersona        string    `json:"nombrePersona"`
	NombreProductos      string    `json:"nombreProductos"`
	Cantidad             int       `json:"cantidad"`
	Status               string    `json:"status"`
	Direccion            string    `json:"direccion"`
	FechaEntregaEstimada time.Time `json:"fechaEntregaEstimada"`
	Notas                string    `json:"notas"`
	Plataforma           string    `json:"plataforma"`
	UserID               string    `json:"userId,omitempty"`
	CreatedAt            time.Time `json:"createdAt"`
	UpdatedAt            time.Time `json:"updatedAt"`
}

// DeliveryListResponse lista paginada de entregas.
type DeliveryListResponse struct {
	Items []DeliveryResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
