package importing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ecolvin/tracelink-api/internal/domain/importing"
)

func TestNormalizeKey_QuitaDiacriticosYSimbolos(t *testing.T) {
	cases := map[string]string{
		"Categoría":        "categoria",
		"Precio Unitario":  "precio_unitario",
		"  SKU  ":          "sku",
		"Stock Mínimo":     "stock_minimo",
		"precio-unitario":  "precio_unitario",
		"PRECIO__UNITARIO": "precio_unitario",
		"Ubicación":        "ubicacion",
		"¿Notas?":          "notas",
	}
	for in, want := range cases {
		assert.Equal(t, want, importing.NormalizeKey(in), "header %q", in)
	}
}

func TestNormalizeDecimal_ComaComoSeparador(t *testing.T) {
	assert.Equal(t, "12.5", importing.NormalizeDecimal("12,5"))
	assert.Equal(t, "12.5", importing.NormalizeDecimal("12.5"))
	// Con punto presente la coma se asume separador de miles y no se toca.
	assert.Equal(t, "1,200.50", importing.NormalizeDecimal("1,200.50"))
	assert.Equal(t, "", importing.NormalizeDecimal(""))
}

func TestNormalizeProductRow_ResuelveAliasYMayusculas(t *testing.T) {
	row := importing.NormalizeProductRow(map[string]string{
		"codigo":       "abc-001",
		"producto":     "Café Molido",
		"familia":      "Alimentos",
		"existencias":  "25",
		"stock_minimo": "5",
		"precio":       "12,50",
	})

	assert.Equal(t, "ABC-001", row.SKU)
	assert.Equal(t, "Café Molido", row.Nombre)
	assert.Equal(t, "Alimentos", row.Categoria)
	assert.Equal(t, "25", row.Stock)
	assert.Equal(t, "5", row.MinStock)
	assert.Equal(t, "12.50", row.PrecioUnitario)
}

func TestNormalizeProductRow_PrimerAliasNoVacioGana(t *testing.T) {
	row := importing.NormalizeProductRow(map[string]string{
		"sku":    "   ",
		"codigo": "x1",
	})
	// "sku" está antes en la tabla pero su valor es blanco, gana "codigo".
	assert.Equal(t, "X1", row.SKU)
}

func TestNormalizeProductRow_CamposAusentes(t *testing.T) {
	row := importing.NormalizeProductRow(map[string]string{"col1": "basura"})
	assert.Empty(t, row.SKU)
	assert.Empty(t, row.Nombre)
	assert.Empty(t, row.Stock)
}

func TestNormalizePackageRow_CodeMayusculaEstadoMinuscula(t *testing.T) {
	row := importing.NormalizePackageRow(map[string]string{
		"codigo":      "pkg-9",
		"sku":         "abc-1",
		"estado":      "In_Transit",
		"ubicacion":   "Santiago",
		"comentarios": "frágil",
	})

	assert.Equal(t, "PKG-9", row.Code)
	assert.Equal(t, "ABC-1", row.ProductSKU)
	assert.Equal(t, "in_transit", row.State)
	assert.Equal(t, "Santiago", row.Location)
	assert.Equal(t, "frágil", row.Notes)
}
