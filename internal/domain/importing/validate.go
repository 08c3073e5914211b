package importing

import (
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/ecolvin/tracelink-api/internal/domain/entity"
)

// DefaultMinStock mínimo aplicado cuando la columna falta o no es numérica.
const DefaultMinStock = 10

// ValidateProduct valida una fila de producto y devuelve el registro normalizado
// listo para persistir, o la lista de errores de campo. Nunca ambos: una fila
// con cualquier error no aporta registros.
func ValidateProduct(row ProductRow, rowNumber int) (*entity.Product, []entity.ImportRowError) {
	var errs []entity.ImportRowError

	if row.SKU == "" {
		errs = append(errs, entity.ImportRowError{Row: rowNumber, Field: "sku", Message: "SKU es obligatorio"})
	}
	if row.Nombre == "" {
		errs = append(errs, entity.ImportRowError{Row: rowNumber, Field: "nombre", Message: "Nombre es obligatorio"})
	}
	if row.Categoria == "" {
		errs = append(errs, entity.ImportRowError{Row: rowNumber, Field: "categoria", Message: "Categoría es obligatoria"})
	}

	stock, err := parseStock(row.Stock)
	if err != nil || stock < 0 {
		errs = append(errs, entity.ImportRowError{Row: rowNumber, Field: "stock", Message: "Stock debe ser número ≥ 0"})
	}

	precio, err := decimal.NewFromString(row.PrecioUnitario)
	if row.PrecioUnitario == "" || err != nil || precio.IsNegative() {
		errs = append(errs, entity.ImportRowError{Row: rowNumber, Field: "precioUnitario", Message: "Precio debe ser número ≥ 0"})
	}

	if len(errs) > 0 {
		return nil, errs
	}

	return &entity.Product{
		SKU:            row.SKU,
		Nombre:         row.Nombre,
		Categoria:      row.Categoria,
		Stock:          stock,
		MinStock:       parseMinStock(row.MinStock),
		PrecioUnitario: precio,
	}, nil
}

// ValidatePackage valida una fila de paquete. El estado por defecto es "created";
// si viene informado debe ser uno de los aceptados.
func ValidatePackage(row PackageRow, rowNumber int) (*entity.Package, []entity.ImportRowError) {
	var errs []entity.ImportRowError

	if row.Code == "" {
		errs = append(errs, entity.ImportRowError{Row: rowNumber, Field: "code", Message: "Código es obligatorio"})
	}
	if row.ProductSKU == "" {
		errs = append(errs, entity.ImportRowError{Row: rowNumber, Field: "productSku", Message: "Product SKU es obligatorio"})
	}
	if row.State != "" && !entity.ValidPackageState(row.State) {
		errs = append(errs, entity.ImportRowError{
			Row:     rowNumber,
			Field:   "state",
			Message: "Estado debe ser: " + strings.Join(entity.PackageStates, ", "),
		})
	}

	if len(errs) > 0 {
		return nil, errs
	}

	state := row.State
	if state == "" {
		state = entity.PackageStateCreated
	}
	return &entity.Package{
		Code:       row.Code,
		ProductSKU: row.ProductSKU,
		State:      state,
		Location:   row.Location,
		Notes:      row.Notes,
	}, nil
}

// parseStock interpreta el stock como número; acepta "25" o "25.0" y trunca decimales.
// Cadena vacía o no numérica es error, no cero silencioso.
func parseStock(s string) (int, error) {
	if s == "" {
		return 0, strconv.ErrSyntax
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	return int(math.Trunc(f)), nil
}

// parseMinStock es tolerante: ausente, no numérico o ≤ 0 cae al valor por defecto.
func parseMinStock(s string) int {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f <= 0 {
		return DefaultMinStock
	}
	return int(math.Trunc(f))
}
