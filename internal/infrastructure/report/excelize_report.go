package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/Inventario-hospitalario/internal/application/dto"
	appinv "github.com/jhoicas/Inventario-hospitalario/internal/application/inventory"
)

var _ appinv.ReportGenerator = (*ExcelGenerator)(nil)

const sheetName = "Inventory"

// ExcelGenerator renderiza el inventario proyectado como libro XLSX con una
// hoja: fila de cabeceras en negrita y una fila por ítem, con las mismas
// celdas formateadas que la tabla.
type ExcelGenerator struct{}

// NewExcelGenerator construye el generador.
func NewExcelGenerator() *ExcelGenerator { return &ExcelGenerator{} }

// ContentType del documento generado.
func (g *ExcelGenerator) ContentType() string {
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

// FileExtension del documento generado.
func (g *ExcelGenerator) FileExtension() string { return "xlsx" }

// Render genera el XLSX y devuelve sus bytes.
func (g *ExcelGenerator) Render(hospitalName string, table *dto.TableResponse) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, fmt.Errorf("xlsx: crear hoja: %w", err)
	}
	f.SetActiveSheet(index)
	_ = f.DeleteSheet("Sheet1")

	// Título con el hospital en la primera fila.
	_ = f.SetCellValue(sheetName, "A1", "Inventory — "+hospitalName)
	titleStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 14},
	})
	_ = f.SetCellStyle(sheetName, "A1", "A1", titleStyle)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#DDEBF7"}, Pattern: 1},
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})

	// Cabeceras proyectadas en la fila 2.
	for i, h := range table.Headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 2)
		_ = f.SetCellValue(sheetName, cell, h.Title)
		_ = f.SetCellStyle(sheetName, cell, cell, headerStyle)

		name, _ := excelize.ColumnNumberToName(i + 1)
		_ = f.SetColWidth(sheetName, name, name, 20)
	}

	// Una fila por ítem, en el orden ya aplicado por la tabla.
	for r, item := range table.Items {
		for c, h := range table.Headers {
			cell, _ := excelize.CoordinatesToCellName(c+1, r+3)
			_ = f.SetCellValue(sheetName, cell, cellValue(item, h.Key))
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx: escribir libro: %w", err)
	}
	return buf.Bytes(), nil
}
