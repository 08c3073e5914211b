package excel

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/ecolvin/tracelink-api/internal/domain/importing"
)

// Parser lee libros xlsx/xls en memoria y los convierte en filas con celdas
// indexadas por header canónico (fila 1 = headers, consumida aparte).
type Parser struct{}

// NewParser construye el adaptador de lectura de hojas de cálculo.
func NewParser() *Parser {
	return &Parser{}
}

// Parse convierte los bytes del archivo en filas de datos de todas las hojas.
// Bytes ilegibles devuelven error (fatal para la importación). Un libro legible
// sin filas de datos devuelve una lista vacía; decidir si eso es error es
// responsabilidad del orquestador.
func (p *Parser) Parse(data []byte) ([]importing.Row, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("abrir libro excel: %w", err)
	}
	defer f.Close()

	var result []importing.Row
	for _, sheet := range f.GetSheetList() {
		rows, err := f.GetRows(sheet)
		if err != nil {
			return nil, fmt.Errorf("leer hoja %q: %w", sheet, err)
		}
		if len(rows) == 0 {
			continue
		}

		headers := make([]string, len(rows[0]))
		for col, cell := range rows[0] {
			key := importing.NormalizeKey(cell)
			if key == "" {
				key = fmt.Sprintf("col%d", col+1)
			}
			headers[col] = key
		}

		for i := 1; i < len(rows); i++ {
			cells := rows[i]
			if emptyRow(cells) {
				continue
			}
			data := make(map[string]string, len(cells))
			for col, cell := range cells {
				key := fmt.Sprintf("col%d", col+1)
				if col < len(headers) {
					key = headers[col]
				}
				data[key] = cell
			}
			result = append(result, importing.Row{Sheet: sheet, Number: i + 1, Data: data})
		}
	}

	return result, nil
}

func emptyRow(cells []string) bool {
	for _, c := range cells {
		if c != "" {
			return false
		}
	}
	return true
}
