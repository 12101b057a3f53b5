package entity

// User representa un usuario del sistema (pertenece a un Hospital).
type User struct {
	ID           int64    `json:"id"`
	Name         string   `json:"name"`
	Email        string   `json:"email"`
	PasswordHash string   `json:"-"` // bcrypt hash, nunca plano en dominio después de persistir
	Hospital     Hospital `json:"hospital"`
}
