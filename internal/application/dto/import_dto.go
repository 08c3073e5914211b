package dto

import (
	"time"

	"github.com/ecolvin/tracelink-api/internal/domain/entity"
)

// ImportSummary conteos de una importación de Excel.
type ImportSummary struct {
	RowsTotal       int `json:"rowsTotal"`
	RowsOk          int `json:"rowsOk"`
	RowsError       int `json:"rowsError"`
	ProductsCreated int `json:"productsCreated"`
	ProductsUpdated int `json:"productsUpdated"`
	PackagesCreated int `json:"packagesCreated"`
	PackagesUpdated int `json:"packagesUpdated"`
}

// ImportResponse respuesta del POST de importación. Errors trae a lo sumo las
// primeras 10 filas con error; el registro completo queda en el historial.
type ImportResponse struct {
	OK       bool                    `json:"ok"`
	ImportID string                  `json:"importId"`
	Summary  ImportSummary           `json:"summary"`
	Errors   []entity.ImportRowError `json:"errors"`
}

// ImportLogResponse un registro del historial de importaciones.
type ImportLogResponse struct {
	ID        string                  `json:"id"`
	FileName  string                  `json:"fileName"`
	Summary   ImportSummary           `json:"summary"`
	Errors    []entity.ImportRowError `json:"errors"`
	UserID    string                  `json:"userId,omitempty"`
	CreatedAt time.Time               `json:"createdAt"`
}

// ImportListResponse historial paginado de importaciones.
type ImportListResponse struct {
	Items []ImportLogResponse `json:"items"`
	Page  PageResponse        `json:"page"`
}
