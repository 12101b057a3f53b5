package inventory

import (
	"sync"

	"github.com/jhoicas/Inventario-hospitalario/internal/domain"
	"github.com/jhoicas/Inventario-hospitalario/internal/domain/entity"
)

// Collection es la copia de trabajo en memoria del inventario de un hospital
// durante una sesión de vista. Las mutaciones (Add/Update/Remove) son
// atómicas sobre el estado interno y no tocan el proveedor externo.
//
// El orden de inserción se conserva; List nunca reordena.
type Collection struct {
	mu    sync.RWMutex
	items []entity.InventoryItem
}

// NewCollection crea la copia de trabajo a partir de los registros cargados
// del proveedor. El slice de entrada se copia: el llamador puede reusarlo.
func NewCollection(items []entity.InventoryItem) *Collection {
	c := &Collection{items: make([]entity.InventoryItem, len(items))}
	copy(c.items, items)
	return c
}

// Add agrega un registro al final. Con ID 0 la colección asigna el siguiente
// ID libre (máximo actual + 1); con ID explícito, un duplicado devuelve
// domain.ErrDuplicate sin tocar el estado. Devuelve el ítem como quedó.
func (c *Collection) Add(item entity.InventoryItem) (entity.InventoryItem, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if item.ID == 0 {
		item.ID = c.nextID()
	} else if c.indexOf(item.ID) >= 0 {
		return entity.InventoryItem{}, domain.ErrDuplicate
	}
	c.items = append(c.items, item)
	return item, nil
}

// Update reemplaza todos los campos mutables del registro cuyo ID coincide.
// La identidad es inmutable y la búsqueda es siempre por ID, nunca por
// posición. Un ID inexistente es un bug del llamador: domain.ErrItemNotFound,
// estado intacto.
func (c *Collection) Update(item entity.InventoryItem) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.indexOf(item.ID)
	if i < 0 {
		return domain.ErrItemNotFound
	}
	c.items[i] = item
	return nil
}

// Remove elimina el registro con ese ID. Eliminar un ID inexistente es un
// no-op (semántica de "borrado confirmado" de la UI), nunca un error.
func (c *Collection) Remove(id int64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.indexOf(id)
	if i < 0 {
		return
	}
	c.items = append(c.items[:i], c.items[i+1:]...)
}

// Get devuelve el registro con ese ID, si existe.
func (c *Collection) Get(id int64) (entity.InventoryItem, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	i := c.indexOf(id)
	if i < 0 {
		return entity.InventoryItem{}, false
	}
	return c.items[i], true
}

// List devuelve una copia de los registros actuales en orden de inserción.
func (c *Collection) List() []entity.InventoryItem {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]entity.InventoryItem, len(c.items))
	copy(out, c.items)
	return out
}

// Len cantidad de registros actuales.
func (c *Collection) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// indexOf busca por ID. Se llama con el lock tomado.
func (c *Collection) indexOf(id int64) int {
	for i := range c.items {
		if c.items[i].ID == id {
			return i
		}
	}
	return -1
}

// nextID devuelve el máximo ID actual + 1. Se llama con el lock tomado.
func (c *Collection) nextID() int64 {
	var max int64
	for i := range c.items {
		if c.items[i].ID > max {
			max = c.items[i].ID
		}
	}
	return max + 1
}
