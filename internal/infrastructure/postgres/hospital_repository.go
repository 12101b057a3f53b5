package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/Inventario-hospitalario/internal/domain"
	"github.com/jhoicas/Inventario-hospitalario/internal/domain/entity"
	"github.com/jhoicas/Inventario-hospitalario/internal/domain/repository"
)

var _ repository.HospitalRepository = (*HospitalRepo)(nil)

// HospitalRepo implementación del puerto HospitalRepository sobre PostgreSQL.
// La configuración de cabeceras se persiste como JSONB (columna headers_config),
// con la misma forma que viaja al cliente: {fields, defaultSort}.
type HospitalRepo struct {
	pool *pgxpool.Pool
}

// NewHospitalRepository construye el adaptador de persistencia para hospitales.
func NewHospitalRepository(pool *pgxpool.Pool) *HospitalRepo {
	return &HospitalRepo{pool: pool}
}

// Create persiste un nuevo hospital con su configuración de cabeceras.
func (r *HospitalRepo) Create(hospital *entity.Hospital) error {
	cfg, err := json.Marshal(hospital.Config.InventoryHeaders)
	if err != nil {
		return fmt.Errorf("marshal headers config: %w", err)
	}
	query := `
		INSERT INTO hospitals (id, name, headers_config)
		VALUES ($1, $2, $3)
		ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name, headers_config = EXCLUDED.headers_config`
	if _, err := r.pool.Exec(context.Background(), query, hospital.ID, hospital.Name, cfg); err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert hospital: %w", err)
	}
	return nil
}

// GetByID obtiene un hospital por ID. Devuelve (nil, nil) si no existe.
func (r *HospitalRepo) GetByID(id int64) (*entity.Hospital, error) {
	query := `SELECT id, name, headers_config FROM hospitals WHERE id = $1`
	var (
		h   entity.Hospital
		cfg []byte
	)
	err := r.pool.QueryRow(context.Background(), query, id).Scan(&h.ID, &h.Name, &cfg)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get hospital: %w", err)
	}
	if len(cfg) > 0 {
		if err := json.Unmarshal(cfg, &h.Config.InventoryHeaders); err != nil {
			return nil, fmt.Errorf("unmarshal headers config: %w", err)
		}
	}
	return &h, nil
}

// List devuelve todos los hospitales en orden de ID.
func (r *HospitalRepo) List() ([]*entity.Hospital, error) {
	query := `SELECT id, name, headers_config FROM hospitals ORDER BY id`
	rows, err := r.pool.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list hospitals: %w", err)
	}
	defer rows.Close()

	var out []*entity.Hospital
	for rows.Next() {
		var (
			h   entity.Hospital
			cfg []byte
		)
		if err := rows.Scan(&h.ID, &h.Name, &cfg); err != nil {
			return nil, fmt.Errorf("scan hospital: %w", err)
		}
		if len(cfg) > 0 {
			if err := json.Unmarshal(cfg, &h.Config.InventoryHeaders); err != nil {
				return nil, fmt.Errorf("unmarshal headers config: %w", err)
			}
		}
		out = append(out, &h)
	}
	return out, rows.Err()
}
