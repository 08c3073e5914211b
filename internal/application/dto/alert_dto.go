package dto

import "time"

// AlertResponse salida de una alerta de stock.
type AlertResponse struct {
	ID         string     `json:"id"`
	ProductSKU string     `json:"productSku"`
	Producto   string     `json:"producto"`
	Stock      int        `json:"stock"`
	MinStock   int        `json:"minStock"`
	Status     string     `json:"status"`
	Mensaje    string     `json:"mensaje"`
	ResolvedAt *time.Time `json:"resolvedAt,omitempty"`
	ResolvedBy string     `json:"resolvedBy,omitempty"`
	CreatedAt  time.Time  `json:"createdAt"`
	UpdatedAt  time.Time  `json:"updatedAt"`
}

// AlertListResponse lista paginada de alertas.
type AlertListResponse struct {
	Items []AlertResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}

// AlertConfigResponse configuración global de alertas.
type AlertConfigResponse struct {
	ID              string    `json:"id"`
	StockThreshold  int       `json:"stockThreshold"`
	NotifyStatuses  []string  `json:"notifyStatuses"`
	EmailRecipients []string  `json:"emailRecipients"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// UpdateAlertConfigRequest entrada del PUT de configuración; campos ausentes no se tocan.
type UpdateAlertConfigRequest struct {
	StockThreshold  *int     `json:"stockThreshold"`
	NotifyStatuses  []string `json:"notifyStatuses"`
	EmailRecipients []string `json:"emailRecipients"`
}

// FeedItem elemento del feed unificado de notificaciones: alertas de stock
// activas más entregas en estados notificables.
type FeedItem struct {
	Type      string    `json:"type"` // stock | delivery
	RefID     string    `json:"refId"`
	Mensaje   string    `json:"mensaje"`
	CreatedAt time.Time `json:"createdAt"`
}

// FeedResponse feed ordenado del más reciente al más antiguo.
type FeedResponse struct {
	Items []FeedItem `json:"items"`
}
