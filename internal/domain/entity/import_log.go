package entity

import "time"

// ImportRowError es un error de validación atribuido a una fila del archivo.
type ImportRowError struct {
	Row     int    `json:"row"`
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ImportLog es el registro de auditoría de una importación: conteos, errores y autor.
// Solo se agrega, nunca se modifica (append-only).
type ImportLog struct {
	ID              string
	FileName        string
	RowsTotal       int
	RowsOk          int
	RowsError       int
	Errors          []ImportRowError // lista completa; la API solo expone los primeros 10
	ProductsCreated int
	ProductsUpdated int
	PackagesCreated int
	PackagesUpdated int
	UserID          string // vacío si la carga fue anónima
	CreatedAt       time.Time
}
