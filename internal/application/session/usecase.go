// Package session resuelve la sesión activa: autenticación de usuarios y
// resolución de la configuración de inventario del tenant vigente.
package session

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Inventario-hospitalario/internal/application/dto"
	"github.com/jhoicas/Inventario-hospitalario/internal/domain"
	"github.com/jhoicas/Inventario-hospitalario/internal/domain/entity"
	"github.com/jhoicas/Inventario-hospitalario/internal/domain/repository"
	"github.com/jhoicas/Inventario-hospitalario/pkg/jwt"
)

// DefaultHeadersConfig devuelve la configuración de cabeceras que aplica
// cuando no hay sesión activa o la configuración del hospital está malformada.
func DefaultHeadersConfig() entity.HeadersConfig {
	return entity.HeadersConfig{
		Fields: []string{"productName", "category", "manufacturer", "quantity"},
		DefaultSort: entity.SortSpec{
			Key:   "productName",
			Order: entity.SortAsc,
		},
	}
}

// ResolveHeadersConfig resuelve la configuración de cabeceras del tenant
// activo. Sin usuario, o con configuración incompleta, cae al default del
// sistema en vez de fallar la vista. Pura: el llamador decide cuándo
// recomputar (login, logout).
func ResolveHeadersConfig(user *entity.User) entity.HeadersConfig {
	if user == nil {
		return DefaultHeadersConfig()
	}
	cfg := user.Hospital.Config.InventoryHeaders
	if !cfg.Valid() {
		return DefaultHeadersConfig()
	}
	return cfg
}

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// UseCase casos de uso de sesión: login y carga del usuario activo.
type UseCase struct {
	users  repository.UserRepository
	jwtCfg JWTConfig
}

// NewUseCase construye el caso de uso de sesión.
func NewUseCase(users repository.UserRepository, jwtCfg JWTConfig) *UseCase {
	return &UseCase{users: users, jwtCfg: jwtCfg}
}

// Login verifica email/password contra bcrypt, genera JWT con user_id y
// hospital_id, y devuelve token + usuario con su configuración resuelta.
func (uc *UseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.users.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Hospital.ID, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User:  ToUserResponse(user),
	}, nil
}

// UserByID carga el usuario activo a partir del claim del token.
func (uc *UseCase) UserByID(id int64) (*entity.User, error) {
	user, err := uc.users.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return user, nil
}

// ToUserResponse arma la salida del usuario con la configuración de
// cabeceras ya resuelta (la del hospital o el default).
func ToUserResponse(u *entity.User) dto.UserResponse {
	return dto.UserResponse{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Hospital: dto.HospitalResponse{
			ID:               u.Hospital.ID,
			Name:             u.Hospital.Name,
			InventoryHeaders: ResolveHeadersConfig(u),
		},
	}
}
