package repository

import "github.com/jhoicas/Inventario-hospitalario/internal/domain/entity"

// HospitalRepository define el puerto de persistencia para Hospital (DIP).
type HospitalRepository interface {
	Create(hospital *entity.Hospital) error
	GetByID(id int64) (*entity.Hospital, error)
	List() ([]*entity.Hospital, error)
}
