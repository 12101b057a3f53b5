// Package report implementa los generadores de reportes descargables del
// inventario (PDF con Maroto, XLSX con Excelize). Ambos renderizan
// exactamente las columnas proyectadas del tenant, con las mismas celdas
// formateadas que pinta la tabla.
package report

import (
	"github.com/jhoicas/Inventario-hospitalario/internal/application/dto"
	"github.com/jhoicas/Inventario-hospitalario/internal/domain/headers"
)

// cellValue devuelve la celda de un ítem para una columna del catálogo.
// Las columnas con formato de presentación usan la celda ya formateada.
func cellValue(item dto.ItemResponse, key string) string {
	switch key {
	case headers.KeyProductName:
		return item.ProductName
	case headers.KeyManufacturer:
		return item.Manufacturer
	case headers.KeyCategory:
		return item.Category
	case headers.KeyQuantity:
		return item.Display.Quantity
	case headers.KeyExpiryDate:
		return item.Display.ExpiryDate
	case headers.KeyUnitPrice:
		return item.Display.UnitPrice
	}
	return ""
}
