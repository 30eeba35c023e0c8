package auth

import (
	"context"

	"github.com/monraspgit/ines-stock-api/internal/application/dto"
	"github.com/monraspgit/ines-stock-api/internal/domain"
	"github.com/monraspgit/ines-stock-api/internal/domain/repository"
)

// UseCase verificación de credenciales contra la tabla users. No emite tokens
// ni mantiene sesiones: solo valida y devuelve la proyección pública.
// La comparación es igualdad en texto plano contra la columna password.
type UseCase struct {
	users repository.UserRepository
}

// NewUseCase construye el caso de uso de autenticación.
func NewUseCase(users repository.UserRepository) *UseCase {
	return &UseCase{users: users}
}

// Authenticate valida nombre+password. Ambos son obligatorios. Sin
// coincidencia devuelve ErrInvalidCredentials; con coincidencia devuelve solo
// {id, nombre, rol}.
func (uc *UseCase) Authenticate(ctx context.Context, in dto.LoginRequest) (*dto.UserResponse, error) {
	if in.Nombre == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	user, err := uc.users.FindByCredentials(ctx, in.Nombre, in.Password)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrInvalidCredentials
	}
	return &dto.UserResponse{
		ID:     user.ID,
		Nombre: user.Nombre,
		Rol:    user.Rol,
	}, nil
}
