package report

import (
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/Inventario-hospitalario/internal/application/dto"
	appinv "github.com/jhoicas/Inventario-hospitalario/internal/application/inventory"
	"github.com/jhoicas/Inventario-hospitalario/internal/domain/headers"
)

var _ appinv.ReportGenerator = (*MarotoPDFGenerator)(nil)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
)

// MarotoPDFGenerator renderiza el inventario proyectado como PDF A4 usando
// Maroto v2: título con el hospital y fecha, fila de cabeceras y una fila
// por ítem, respetando la alineación de cada columna.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// ContentType del documento generado.
func (g *MarotoPDFGenerator) ContentType() string { return "application/pdf" }

// FileExtension del documento generado.
func (g *MarotoPDFGenerator) FileExtension() string { return "pdf" }

// Render genera el PDF y devuelve sus bytes.
func (g *MarotoPDFGenerator) Render(hospitalName string, table *dto.TableResponse) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Inventario "+hospitalName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(titleRow(hospitalName))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	widths := columnWidths(table.Headers)
	m.AddRows(headerRow(table.Headers, widths))
	for _, item := range table.Items {
		m.AddRows(itemRow(item, table.Headers, widths))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// titleRow: hospital (izq) y fecha de generación (der).
func titleRow(hospitalName string) core.Row {
	return row.New(14).Add(
		col.New(8).Add(
			text.New("Inventory — "+hospitalName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 2,
			}),
		),
		col.New(4).Add(
			text.New(time.Now().Format("02/01/2006"), props.Text{
				Size: 9, Top: 5, Color: colorGray, Align: align.Right,
			}),
		),
	)
}

// headerRow fila de cabeceras proyectadas sobre fondo primario.
func headerRow(cols []headers.Column, widths []int) core.Row {
	r := row.New(8).WithStyle(&props.Cell{BackgroundColor: colorPrimary})
	for i, h := range cols {
		r.Add(col.New(widths[i]).Add(
			text.New(h.Title, props.Text{
				Style: fontstyle.Bold, Size: 9, Color: colorWhite,
				Top: 1.5, Align: textAlign(h),
			}),
		))
	}
	return r
}

// itemRow una fila de la tabla, celda por columna proyectada.
func itemRow(item dto.ItemResponse, cols []headers.Column, widths []int) core.Row {
	r := row.New(7)
	for i, h := range cols {
		r.Add(col.New(widths[i]).Add(
			text.New(cellValue(item, h.Key), props.Text{
				Size: 9, Top: 1, Align: textAlign(h),
			}),
		))
	}
	return r
}

// columnWidths reparte la grilla de 12 de Maroto entre las columnas
// proyectadas; el sobrante se lo lleva la primera.
func columnWidths(cols []headers.Column) []int {
	n := len(cols)
	if n == 0 {
		return nil
	}
	widths := make([]int, n)
	base := 12 / n
	rest := 12 % n
	for i := range widths {
		widths[i] = base
	}
	widths[0] += rest
	return widths
}

func textAlign(h headers.Column) align.Type {
	if h.Align == headers.AlignEnd {
		return align.Right
	}
	return align.Left
}
