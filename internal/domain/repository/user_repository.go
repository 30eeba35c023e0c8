package repository

import (
	"context"

	"github.com/monraspgit/ines-stock-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	// FindByCredentials busca un usuario por nombre y password exactos.
	// Devuelve (nil, nil) si no hay coincidencia.
	FindByCredentials(ctx context.Context, nombre, password string) (*entity.User, error)
}
