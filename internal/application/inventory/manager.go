package inventory

import (
	"context"
	"sync"

	"github.com/jhoicas/Inventario-hospitalario/internal/domain"
	"github.com/jhoicas/Inventario-hospitalario/internal/domain/repository"
	"github.com/jhoicas/Inventario-hospitalario/pkg/logger"
)

// Manager mantiene la copia de trabajo de inventario de cada sesión de
// usuario. Una sesión pasa de Unloaded a Loaded en el primer acceso, con una
// única lectura al proveedor; todas las mutaciones posteriores son locales.
type Manager struct {
	provider repository.InventoryRepository
	log      *logger.Logger

	mu       sync.Mutex
	sessions map[int64]*viewSession // por usuario
}

// viewSession estado de la vista de un usuario: el hospital vigente y su
// copia de trabajo. col nil = Unloaded (carga en curso o aún no pedida).
type viewSession struct {
	hospitalID int64
	col        *Collection
}

// NewManager construye el manager de sesiones de inventario.
func NewManager(provider repository.InventoryRepository, log *logger.Logger) *Manager {
	return &Manager{
		provider: provider,
		log:      log,
		sessions: make(map[int64]*viewSession),
	}
}

// Collection devuelve la copia de trabajo del usuario para el hospital dado,
// cargándola del proveedor si la sesión está Unloaded o si el hospital
// cambió desde la última carga.
//
// Guardia anti-stale: antes de leer al proveedor se registra el hospital
// vigente de la sesión; si al terminar la lectura el hospital vigente ya no
// es el mismo (el tenant cambió durante la carga), el resultado se descarta
// con domain.ErrStaleSnapshot en vez de aplicarse.
func (m *Manager) Collection(ctx context.Context, userID, hospitalID int64) (*Collection, error) {
	m.mu.Lock()
	if s, ok := m.sessions[userID]; ok && s.hospitalID == hospitalID && s.col != nil {
		m.mu.Unlock()
		return s.col, nil
	}
	// Marcar el hospital vigente; cualquier carga anterior en vuelo queda stale.
	m.sessions[userID] = &viewSession{hospitalID: hospitalID}
	m.mu.Unlock()

	items, err := m.provider.ListByHospital(ctx, hospitalID)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[userID]
	if !ok || s.hospitalID != hospitalID {
		m.log.Warn().
			Int64("user_id", userID).
			Int64("hospital_id", hospitalID).
			Msg("carga de inventario descartada: el hospital activo cambió")
		return nil, domain.ErrStaleSnapshot
	}
	if s.col == nil {
		s.col = NewCollection(items)
		m.log.Info().
			Int64("user_id", userID).
			Int64("hospital_id", hospitalID).
			Int("items", s.col.Len()).
			Msg("inventario cargado en sesión")
	}
	return s.col, nil
}

// Loaded devuelve la copia de trabajo si la sesión ya está cargada para ese
// hospital, sin tocar el proveedor.
func (m *Manager) Loaded(userID, hospitalID int64) (*Collection, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[userID]
	if !ok || s.hospitalID != hospitalID || s.col == nil {
		return nil, false
	}
	return s.col, true
}

// Reset descarta la copia de trabajo del usuario. El siguiente acceso vuelve
// a leer del proveedor.
func (m *Manager) Reset(userID int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, userID)
}
