package repository

import "github.com/ecolvin/tracelink-api/internal/domain/entity"

// PackageQuery filtros de listado de paquetes.
type PackageQuery struct {
	Search   string // sobre code y productSku
	State    string
	Location string
	Limit    int
	Offset   int
}

// PackageRepository puerto de persistencia para Package, con clave natural Code.
type PackageRepository interface {
	FindByCode(code string) (*entity.Package, error)
	BulkUpsert(packages []*entity.Package) (created, updated int, err error)
	List(q PackageQuery) ([]*entity.Package, int, error)
}
