// Package headers implementa el catálogo de columnas de inventario y el motor
// de proyección por tenant: catálogo × configuración -> lista de columnas
// visible, en el orden declarado por el hospital.
package headers

// Alineación de celda soportada por la capa de presentación.
const (
	AlignStart = ""
	AlignEnd   = "end"
)

// Column describe una columna de inventario desplegable: clave estable,
// título visible, si admite ordenamiento y su alineación.
type Column struct {
	Key      string `json:"key"`
	Title    string `json:"title"`
	Sortable bool   `json:"sortable"`
	Align    string `json:"align,omitempty"`
}

// Claves del catálogo. Coinciden con los campos JSON de entity.InventoryItem.
const (
	KeyProductName  = "productName"
	KeyManufacturer = "manufacturer"
	KeyCategory     = "category"
	KeyQuantity     = "quantity"
	KeyExpiryDate   = "expiryDate"
	KeyUnitPrice    = "unitPrice"
)

// Catalog devuelve el catálogo completo de columnas, en su orden de
// declaración. Es estático por despliegue; se devuelve una copia fresca para
// que ningún llamador pueda mutarlo.
func Catalog() []Column {
	return []Column{
		{Key: KeyProductName, Title: "Product Name", Sortable: true},
		{Key: KeyManufacturer, Title: "Manufacturer", Sortable: true},
		{Key: KeyCategory, Title: "Category", Sortable: true},
		{Key: KeyQuantity, Title: "Quantity", Sortable: true, Align: AlignEnd},
		{Key: KeyExpiryDate, Title: "Expiry Date", Sortable: true},
		{Key: KeyUnitPrice, Title: "Unit Price", Sortable: true, Align: AlignEnd},
	}
}
