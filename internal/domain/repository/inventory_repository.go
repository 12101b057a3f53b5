package repository

import (
	"context"

	"github.com/jhoicas/Inventario-hospitalario/internal/domain/entity"
)

// InventoryRepository es el puerto del proveedor externo de inventario.
// El núcleo solo lo consulta para la carga inicial de la sesión; las
// mutaciones posteriores viven en la copia de trabajo en memoria.
type InventoryRepository interface {
	// ListByHospital devuelve los registros del hospital en orden estable.
	// Devuelve domain.ErrNoInventory si el hospital no tiene inventario.
	ListByHospital(ctx context.Context, hospitalID int64) ([]entity.InventoryItem, error)
	// ReplaceForHospital reemplaza el inventario persistido del hospital.
	// Lo usa el comando de seed; la sesión nunca escribe de vuelta.
	ReplaceForHospital(ctx context.Context, hospitalID int64, items []entity.InventoryItem) error
}
