package importing

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Row es una fila de datos de la hoja de cálculo: número de fila 1-based
// (la fila 1 es el header y no aparece aquí) y celdas indexadas por header normalizado.
type Row struct {
	Sheet  string
	Number int
	Data   map[string]string
}

// Tablas de alias por campo canónico. El primer alias presente con valor no vacío gana.
var productHeaderMap = map[string][]string{
	"sku":            {"sku", "codigo", "codigosku", "productsku", "product_sku", "id", "codigo_producto", "item", "itemcode"},
	"nombre":         {"nombre", "nombre_producto", "producto", "descripcion", "descripcion_producto", "product_name"},
	"categoria":      {"categoria", "categoria_producto", "segmento", "familia", "linea", "category"},
	"stock":          {"stock", "cantidad", "inventario", "qty", "stock_actual", "existencias"},
	"minStock":       {"min_stock", "stock_minimo", "stock_limit", "stock_min", "punto_reorden", "reorder_point"},
	"precioUnitario": {"precio_unitario", "precio", "precio_venta", "precio_unit", "costo", "costounitario", "valor_unitario"},
}

var packageHeaderMap = map[string][]string{
	"code":       {"code", "codigo", "identificador", "paquete", "package", "package_code"},
	"productSku": {"productsku", "product_sku", "sku_producto", "sku", "producto_sku"},
	"state":      {"state", "estado", "estatus"},
	"location":   {"location", "ubicacion", "city"},
	"notes":      {"notes", "notas", "detalle", "comentarios"},
}

var (
	stripMarks  = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	nonAlnumRun = regexp.MustCompile(`[^a-z0-9]+`)
)

// NormalizeKey convierte un header arbitrario a su clave canónica: minúsculas,
// sin diacríticos, con corridas no alfanuméricas colapsadas a "_".
// "Categoría" -> "categoria", "Precio Unitario" -> "precio_unitario".
func NormalizeKey(k string) string {
	s, _, err := transform.String(stripMarks, k)
	if err != nil {
		s = k
	}
	s = strings.ToLower(strings.TrimSpace(s))
	s = nonAlnumRun.ReplaceAllString(s, "_")
	return strings.Trim(s, "_")
}

// NormalizeDecimal acepta decimales escritos con coma ("12,5") y los lleva a
// punto antes de la validación numérica. Valores ya con punto quedan intactos.
func NormalizeDecimal(s string) string {
	if strings.Contains(s, ".") {
		return s
	}
	return strings.ReplaceAll(s, ",", ".")
}

// pickValue recorre los alias en orden y devuelve el primer valor no vacío (trim aplicado).
func pickValue(data map[string]string, aliases []string) string {
	for _, key := range aliases {
		v, ok := data[key]
		if !ok {
			continue
		}
		if trimmed := strings.TrimSpace(v); trimmed != "" {
			return trimmed
		}
	}
	return ""
}

// ProductRow campos crudos de producto ya resueltos por alias, antes de validar.
type ProductRow struct {
	SKU            string
	Nombre         string
	Categoria      string
	Stock          string
	MinStock       string
	PrecioUnitario string
}

// PackageRow campos crudos de paquete ya resueltos por alias, antes de validar.
type PackageRow struct {
	Code       string
	ProductSKU string
	State      string
	Location   string
	Notes      string
}

// NormalizeProductRow resuelve los campos canónicos de producto desde una fila.
// El SKU se lleva a mayúsculas; los numéricos pasan por NormalizeDecimal.
func NormalizeProductRow(data map[string]string) ProductRow {
	return ProductRow{
		SKU:            strings.ToUpper(pickValue(data, productHeaderMap["sku"])),
		Nombre:         pickValue(data, productHeaderMap["nombre"]),
		Categoria:      pickValue(data, productHeaderMap["categoria"]),
		Stock:          NormalizeDecimal(pickValue(data, productHeaderMap["stock"])),
		MinStock:       NormalizeDecimal(pickValue(data, productHeaderMap["minStock"])),
		PrecioUnitario: NormalizeDecimal(pickValue(data, productHeaderMap["precioUnitario"])),
	}
}

// NormalizePackageRow resuelve los campos canónicos de paquete desde una fila.
// El code se lleva a mayúsculas y el estado a minúsculas.
func NormalizePackageRow(data map[string]string) PackageRow {
	return PackageRow{
		Code:       strings.ToUpper(pickValue(data, packageHeaderMap["code"])),
		ProductSKU: strings.ToUpper(pickValue(data, packageHeaderMap["productSku"])),
		State:      strings.ToLower(pickValue(data, packageHeaderMap["state"])),
		Location:   pickValue(data, packageHeaderMap["location"]),
		Notes:      pickValue(data, packageHeaderMap["notes"]),
	}
}
