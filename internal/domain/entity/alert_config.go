package entity

import "time"

// AlertConfig es la configuración global del subsistema de alertas (documento único).
// Se crea de forma perezosa en la primera lectura si no existe.
type AlertConfig struct {
	ID              string
	StockThreshold  int      // umbral informativo por defecto
	NotifyStatuses  []string // estados de entrega que alimentan el feed de alertas
	EmailRecipients []string // deduplicados y en minúsculas; siempre incluye el destinatario por defecto
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// DefaultNotifyStatuses estados de entrega notificados cuando no hay configuración previa.
var DefaultNotifyStatuses = []string{"pendiente", "en_preparacion", "cancelado"}
