package inventory

import "github.com/jhoicas/Inventario-hospitalario/internal/application/dto"

// ReportGenerator renderiza la tabla proyectada de un hospital como documento
// descargable (PDF, XLSX). Recibe exactamente lo que la UI pinta: cabeceras
// proyectadas y filas ya ordenadas y formateadas.
type ReportGenerator interface {
	ContentType() string
	FileExtension() string
	Render(hospitalName string, table *dto.TableResponse) ([]byte, error)
}
