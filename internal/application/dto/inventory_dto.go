package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Inventario-hospitalario/internal/domain"
	"github.com/jhoicas/Inventario-hospitalario/internal/domain/entity"
	"github.com/jhoicas/Inventario-hospitalario/internal/domain/headers"
	"github.com/jhoicas/Inventario-hospitalario/pkg/format"
)

// ItemRequest entrada para crear o actualizar un ítem de inventario.
// En creación, ID 0 deja que la sesión asigne el siguiente disponible.
type ItemRequest struct {
	ID           int64            `json:"id"`
	ProductName  string           `json:"productName"`
	Manufacturer string           `json:"manufacturer"`
	Category     string           `json:"category"`
	Quantity     int64            `json:"quantity"`
	ExpiryDate   string           `json:"expiryDate"`
	UnitPrice    *decimal.Decimal `json:"unitPrice"`
}

// Validate aplica las reglas del modelo: cantidad no negativa, precio no
// negativo y fecha de vencimiento ISO (yyyy-mm-dd) cuando está presente.
func (r ItemRequest) Validate() error {
	if r.ProductName == "" || r.Manufacturer == "" || r.Category == "" {
		return domain.ErrInvalidInput
	}
	if r.Quantity < 0 {
		return domain.ErrInvalidInput
	}
	if r.UnitPrice != nil && r.UnitPrice.IsNegative() {
		return domain.ErrInvalidInput
	}
	if r.ExpiryDate != "" {
		if _, err := time.Parse(format.ISODate, r.ExpiryDate); err != nil {
			return domain.ErrInvalidInput
		}
	}
	return nil
}

// ToEntity convierte la petición en un ítem de dominio.
func (r ItemRequest) ToEntity() entity.InventoryItem {
	return entity.InventoryItem{
		ID:           r.ID,
		ProductName:  r.ProductName,
		Manufacturer: r.Manufacturer,
		Category:     r.Category,
		Quantity:     r.Quantity,
		ExpiryDate:   r.ExpiryDate,
		UnitPrice:    r.UnitPrice,
	}
}

// ItemDisplay celdas ya formateadas para pintar la fila sin lógica en el cliente.
type ItemDisplay struct {
	Quantity   string `json:"quantity"`   // "3,500"
	UnitPrice  string `json:"unitPrice"`  // "£5,000.00", vacío si ausente
	ExpiryDate string `json:"expiryDate"` // "14/09/2035", vacío si ausente
}

// ItemResponse salida de un ítem: valores crudos + celdas formateadas.
type ItemResponse struct {
	ID           int64            `json:"id"`
	ProductName  string           `json:"productName"`
	Manufacturer string           `json:"manufacturer"`
	Category     string           `json:"category"`
	Quantity     int64            `json:"quantity"`
	ExpiryDate   string           `json:"expiryDate,omitempty"`
	UnitPrice    *decimal.Decimal `json:"unitPrice,omitempty"`
	Display      ItemDisplay      `json:"display"`
}

// ToItemResponse construye la salida de un ítem con sus celdas formateadas.
func ToItemResponse(it entity.InventoryItem) ItemResponse {
	return ItemResponse{
		ID:           it.ID,
		ProductName:  it.ProductName,
		Manufacturer: it.Manufacturer,
		Category:     it.Category,
		Quantity:     it.Quantity,
		ExpiryDate:   it.ExpiryDate,
		UnitPrice:    it.UnitPrice,
		Display: ItemDisplay{
			Quantity:   format.Quantity(it.Quantity),
			UnitPrice:  format.UnitPrice(it.UnitPrice),
			ExpiryDate: format.ExpiryDate(it.ExpiryDate),
		},
	}
}

// SortResponse ordenamiento efectivo aplicado a la tabla.
type SortResponse struct {
	Key   string `json:"key"`
	Order string `json:"order"` // asc | desc
}

// TableResponse tabla lista para pintar: cabeceras proyectadas, ordenamiento
// efectivo y filas ya ordenadas y formateadas.
type TableResponse struct {
	Headers []headers.Column `json:"headers"`
	Sort    SortResponse     `json:"sort"`
	Items   []ItemResponse   `json:"items"`
}
