package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound      = errors.New("recurso no encontrado")
	ErrUserNotFound  = errors.New("usuario no encontrado")
	ErrNoInventory   = errors.New("no hay inventario para el hospital indicado")
	ErrInvalidInput  = errors.New("entrada inválida")
	ErrDuplicate     = errors.New("recurso duplicado")
	ErrUnauthorized  = errors.New("no autorizado")
	ErrItemNotFound  = errors.New("ítem de inventario no encontrado")
	ErrStaleSnapshot = errors.New("el hospital activo cambió durante la carga")
)
