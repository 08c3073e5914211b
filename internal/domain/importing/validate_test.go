package importing_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecolvin/tracelink-api/internal/domain/importing"
)

func TestValidateProduct_FilaValida(t *testing.T) {
	product, errs := importing.ValidateProduct(importing.ProductRow{
		SKU:            "ABC-001",
		Nombre:         "Café Molido",
		Categoria:      "Alimentos",
		Stock:          "25",
		MinStock:       "5",
		PrecioUnitario: "12.50",
	}, 2)

	require.Empty(t, errs)
	require.NotNil(t, product)
	assert.Equal(t, "ABC-001", product.SKU)
	assert.Equal(t, 25, product.Stock)
	assert.Equal(t, 5, product.MinStock)
	assert.True(t, product.PrecioUnitario.Equal(decimal.RequireFromString("12.50")))
}

func TestValidateProduct_CamposObligatorios(t *testing.T) {
	product, errs := importing.ValidateProduct(importing.ProductRow{}, 3)

	require.Nil(t, product)
	fields := make(map[string]string, len(errs))
	for _, e := range errs {
		assert.Equal(t, 3, e.Row)
		fields[e.Field] = e.Message
	}
	assert.Equal(t, "SKU es obligatorio", fields["sku"])
	assert.Equal(t, "Nombre es obligatorio", fields["nombre"])
	assert.Equal(t, "Categoría es obligatoria", fields["categoria"])
	assert.Equal(t, "Stock debe ser número ≥ 0", fields["stock"])
	assert.Equal(t, "Precio debe ser número ≥ 0", fields["precioUnitario"])
}

func TestValidateProduct_StockInvalido(t *testing.T) {
	for _, stock := range []string{"", "abc", "-1"} {
		product, errs := importing.ValidateProduct(importing.ProductRow{
			SKU: "A", Nombre: "n", Categoria: "c", Stock: stock, PrecioUnitario: "1",
		}, 2)
		require.Nil(t, product, "stock %q", stock)
		require.Len(t, errs, 1)
		assert.Equal(t, "stock", errs[0].Field)
	}
}

func TestValidateProduct_PrecioNegativo(t *testing.T) {
	product, errs := importing.ValidateProduct(importing.ProductRow{
		SKU: "A", Nombre: "n", Categoria: "c", Stock: "1", PrecioUnitario: "-0.01",
	}, 2)
	require.Nil(t, product)
	require.Len(t, errs, 1)
	assert.Equal(t, "precioUnitario", errs[0].Field)
}

func TestValidateProduct_MinStockCaeAlDefault(t *testing.T) {
	for _, minStock := range []string{"", "abc", "0", "-3"} {
		product, errs := importing.ValidateProduct(importing.ProductRow{
			SKU: "A", Nombre: "n", Categoria: "c", Stock: "1", MinStock: minStock, PrecioUnitario: "1",
		}, 2)
		require.Empty(t, errs, "minStock %q", minStock)
		assert.Equal(t, importing.DefaultMinStock, product.MinStock, "minStock %q", minStock)
	}
}

func TestValidateProduct_StockDecimalSeTrunca(t *testing.T) {
	product, errs := importing.ValidateProduct(importing.ProductRow{
		SKU: "A", Nombre: "n", Categoria: "c", Stock: "25.9", PrecioUnitario: "1",
	}, 2)
	require.Empty(t, errs)
	assert.Equal(t, 25, product.Stock)
}

func TestValidatePackage_EstadoPorDefecto(t *testing.T) {
	pkg, errs := importing.ValidatePackage(importing.PackageRow{
		Code: "PKG-1", ProductSKU: "ABC-001",
	}, 2)
	require.Empty(t, errs)
	assert.Equal(t, "created", pkg.State)
}

func TestValidatePackage_EstadoDesconocido(t *testing.T) {
	pkg, errs := importing.ValidatePackage(importing.PackageRow{
		Code: "PKG-1", ProductSKU: "ABC-001", State: "volando",
	}, 4)
	require.Nil(t, pkg)
	require.Len(t, errs, 1)
	assert.Equal(t, "state", errs[0].Field)
	assert.Equal(t, "Estado debe ser: created, in_transit, delivered, rejected", errs[0].Message)
}

func TestValidatePackage_CamposObligatorios(t *testing.T) {
	pkg, errs := importing.ValidatePackage(importing.PackageRow{}, 2)
	require.Nil(t, pkg)
	require.Len(t, errs, 2)
}
