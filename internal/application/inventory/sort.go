package inventory

import (
	"sort"
	"strings"

	"github.com/jhoicas/Inventario-hospitalario/internal/domain/entity"
	"github.com/jhoicas/Inventario-hospitalario/internal/domain/headers"
)

// SortItems ordena los registros por la columna indicada, de forma estable:
// los empates conservan el orden de inserción. Clave vacía o desconocida deja
// el slice intacto (orden de inserción). Los valores ausentes (precio nil,
// fecha vacía) van primero en ascendente y al final en descendente.
func SortItems(items []entity.InventoryItem, key string, descending bool) {
	cmp := comparatorFor(key)
	if cmp == nil {
		return
	}
	sort.SliceStable(items, func(i, j int) bool {
		c := cmp(items[i], items[j])
		if descending {
			return c > 0
		}
		return c < 0
	})
}

// comparatorFor devuelve el comparador de la columna: numérico para cantidad,
// decimal para precio, cronológico para vencimiento, alfabético sin distinguir
// mayúsculas para el resto de columnas del catálogo.
func comparatorFor(key string) func(a, b entity.InventoryItem) int {
	switch key {
	case headers.KeyProductName:
		return func(a, b entity.InventoryItem) int { return compareFold(a.ProductName, b.ProductName) }
	case headers.KeyManufacturer:
		return func(a, b entity.InventoryItem) int { return compareFold(a.Manufacturer, b.Manufacturer) }
	case headers.KeyCategory:
		return func(a, b entity.InventoryItem) int { return compareFold(a.Category, b.Category) }
	case headers.KeyQuantity:
		return func(a, b entity.InventoryItem) int {
			switch {
			case a.Quantity < b.Quantity:
				return -1
			case a.Quantity > b.Quantity:
				return 1
			}
			return 0
		}
	case headers.KeyUnitPrice:
		return func(a, b entity.InventoryItem) int {
			switch {
			case a.UnitPrice == nil && b.UnitPrice == nil:
				return 0
			case a.UnitPrice == nil:
				return -1
			case b.UnitPrice == nil:
				return 1
			}
			return a.UnitPrice.Cmp(*b.UnitPrice)
		}
	case headers.KeyExpiryDate:
		// Las fechas ISO (yyyy-mm-dd) ordenan cronológicamente como texto.
		return func(a, b entity.InventoryItem) int {
			switch {
			case a.ExpiryDate == "" && b.ExpiryDate == "":
				return 0
			case a.ExpiryDate == "":
				return -1
			case b.ExpiryDate == "":
				return 1
			}
			return strings.Compare(a.ExpiryDate, b.ExpiryDate)
		}
	}
	return nil
}

func compareFold(a, b string) int {
	return strings.Compare(strings.ToLower(a), strings.ToLower(b))
}
