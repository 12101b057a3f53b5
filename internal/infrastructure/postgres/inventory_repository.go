package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/Inventario-hospitalario/internal/domain"
	"github.com/jhoicas/Inventario-hospitalario/internal/domain/entity"
	"github.com/jhoicas/Inventario-hospitalario/internal/domain/repository"
	"github.com/jhoicas/Inventario-hospitalario/pkg/format"
)

var _ repository.InventoryRepository = (*InventoryRepo)(nil)

// InventoryRepo implementación del puerto InventoryRepository sobre PostgreSQL.
// Es el proveedor externo de inventario: la sesión lo lee una vez por carga y
// trabaja después sobre su copia en memoria.
type InventoryRepo struct {
	pool *pgxpool.Pool
}

// NewInventoryRepository construye el adaptador del proveedor de inventario.
func NewInventoryRepository(pool *pgxpool.Pool) *InventoryRepo {
	return &InventoryRepo{pool: pool}
}

// ListByHospital devuelve los registros del hospital en orden de posición.
// Devuelve domain.ErrNoInventory si el hospital no tiene ningún registro.
func (r *InventoryRepo) ListByHospital(ctx context.Context, hospitalID int64) ([]entity.InventoryItem, error) {
	query := `
		SELECT id, product_name, manufacturer, category, quantity, expiry_date, unit_price
		FROM inventory_items
		WHERE hospital_id = $1
		ORDER BY position, id`
	rows, err := r.pool.Query(ctx, query, hospitalID)
	if err != nil {
		return nil, fmt.Errorf("list inventory: %w", err)
	}
	defer rows.Close()

	var items []entity.InventoryItem
	for rows.Next() {
		var (
			it     entity.InventoryItem
			expiry *time.Time
		)
		if err := rows.Scan(&it.ID, &it.ProductName, &it.Manufacturer, &it.Category,
			&it.Quantity, &expiry, &it.UnitPrice); err != nil {
			return nil, fmt.Errorf("scan inventory item: %w", err)
		}
		if expiry != nil {
			it.ExpiryDate = expiry.Format(format.ISODate)
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list inventory: %w", err)
	}
	if len(items) == 0 {
		return nil, domain.ErrNoInventory
	}
	return items, nil
}

// ReplaceForHospital reemplaza el inventario persistido del hospital dentro
// de una transacción. Lo usa el comando de seed.
func (r *InventoryRepo) ReplaceForHospital(ctx context.Context, hospitalID int64, items []entity.InventoryItem) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM inventory_items WHERE hospital_id = $1`, hospitalID); err != nil {
		return fmt.Errorf("delete inventory: %w", err)
	}
	insert := `
		INSERT INTO inventory_items (hospital_id, id, product_name, manufacturer, category, quantity, expiry_date, unit_price, position)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	for i, it := range items {
		var expiry *time.Time
		if it.ExpiryDate != "" {
			t, err := time.Parse(format.ISODate, it.ExpiryDate)
			if err != nil {
				return fmt.Errorf("ítem %d: fecha de vencimiento inválida %q", it.ID, it.ExpiryDate)
			}
			expiry = &t
		}
		if _, err := tx.Exec(ctx, insert,
			hospitalID, it.ID, it.ProductName, it.Manufacturer, it.Category,
			it.Quantity, expiry, it.UnitPrice, i,
		); err != nil {
			return fmt.Errorf("insert inventory item %d: %w", it.ID, err)
		}
	}
	return tx.Commit(ctx)
}
