package dto

import "github.com/jhoicas/Inventario-hospitalario/internal/domain/entity"

// LoginRequest entrada para iniciar sesión.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// HospitalResponse hospital del usuario con su configuración de cabeceras.
type HospitalResponse struct {
	ID               int64                `json:"id"`
	Name             string               `json:"name"`
	InventoryHeaders entity.HeadersConfig `json:"inventoryHeaders"`
}

// UserResponse salida de un usuario autenticado. Incluye la configuración de
// cabeceras ya resuelta (la del hospital, o el default si está malformada).
type UserResponse struct {
	ID       int64            `json:"id"`
	Name     string           `json:"name"`
	Email    string           `json:"email"`
	Hospital HospitalResponse `json:"hospital"`
}

// LoginResponse token + usuario.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
