package excel_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/ecolvin/tracelink-api/internal/infrastructure/excel"
)

func workbookBytes(t *testing.T, sheets map[string][][]string) []byte {
	t.Helper()
	f := excelize.NewFile()
	first := true
	for name, rows := range sheets {
		if first {
			require.NoError(t, f.SetSheetName("Sheet1", name))
			first = false
		} else {
			_, err := f.NewSheet(name)
			require.NoError(t, err)
		}
		for i, row := range rows {
			cell, err := excelize.CoordinatesToCellName(1, i+1)
			require.NoError(t, err)
			require.NoError(t, f.SetSheetRow(name, cell, &row))
		}
	}
	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))
	return buf.Bytes()
}

func TestParse_HeadersNormalizados(t *testing.T) {
	data := workbookBytes(t, map[string][][]string{
		"Inventario": {
			{"SKU", "Nombre", "Categoría", "Stock", "Stock Mínimo", "Precio Unitario"},
			{"ABC-001", "Café", "Alimentos", "25", "5", "12,50"},
		},
	})

	rows, err := excel.NewParser().Parse(data)
	require.NoError(t, err)
	require.Len(t, rows, 1)

	row := rows[0]
	assert.Equal(t, "Inventario", row.Sheet)
	assert.Equal(t, 2, row.Number)
	assert.Equal(t, "ABC-001", row.Data["sku"])
	assert.Equal(t, "Alimentos", row.Data["categoria"])
	assert.Equal(t, "5", row.Data["stock_minimo"])
	assert.Equal(t, "12,50", row.Data["precio_unitario"])
}

func TestParse_FilasVaciasSeSaltan(t *testing.T) {
	data := workbookBytes(t, map[string][][]string{
		"Hoja1": {
			{"sku", "nombre"},
			{"A-1", "Uno"},
			{"", ""},
			{"A-2", "Dos"},
		},
	})

	rows, err := excel.NewParser().Parse(data)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	// El número de fila es el del archivo, no el del resultado.
	assert.Equal(t, 2, rows[0].Number)
	assert.Equal(t, 4, rows[1].Number)
}

func TestParse_HeaderVacioCaeAColN(t *testing.T) {
	data := workbookBytes(t, map[string][][]string{
		"Hoja1": {
			{"sku", ""},
			{"A-1", "dato"},
		},
	})

	rows, err := excel.NewParser().Parse(data)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "dato", rows[0].Data["col2"])
}

func TestParse_TodasLasHojas(t *testing.T) {
	data := workbookBytes(t, map[string][][]string{
		"Uno": {{"sku"}, {"A-1"}},
		"Dos": {{"sku"}, {"B-1"}},
	})

	rows, err := excel.NewParser().Parse(data)
	require.NoError(t, err)
	assert.Len(t, rows, 2)
}

func TestParse_SoloHeadersEsListaVacia(t *testing.T) {
	data := workbookBytes(t, map[string][][]string{
		"Hoja1": {{"sku", "nombre"}},
	})

	rows, err := excel.NewParser().Parse(data)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestParse_BytesIlegibles(t *testing.T) {
	_, err := excel.NewParser().Parse([]byte("esto no es un xlsx"))
	assert.Error(t, err)
}
