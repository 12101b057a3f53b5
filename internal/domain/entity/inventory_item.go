package entity

import "github.com/shopspring/decimal"

// InventoryItem representa un registro de inventario de un hospital.
// La identidad (ID) es inmutable después de la creación; las actualizaciones
// localizan el registro por ID, nunca por posición.
//
// ExpiryDate viaja como fecha ISO (yyyy-mm-dd); vacía significa ausente.
// UnitPrice nil significa ausente (se renderiza vacío, no cero).
type InventoryItem struct {
	ID           int64            `json:"id"`
	ProductName  string           `json:"productName"`
	Manufacturer string           `json:"manufacturer"`
	Category     string           `json:"category"`
	Quantity     int64            `json:"quantity"`
	ExpiryDate   string           `json:"expiryDate,omitempty"`
	UnitPrice    *decimal.Decimal `json:"unitPrice,omitempty"`
}
