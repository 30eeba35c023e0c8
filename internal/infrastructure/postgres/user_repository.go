package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/monraspgit/ines-stock-api/internal/domain/entity"
	"github.com/monraspgit/ines-stock-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación del puerto UserRepository sobre PostgreSQL.
type UserRepo struct {
	q Querier
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

// FindByCredentials busca un usuario por nombre y password exactos (igualdad
// en texto plano, tal como almacena la tabla). Devuelve (nil, nil) sin
// coincidencia; con varias coincidencias devuelve la primera.
func (r *UserRepo) FindByCredentials(ctx context.Context, nombre, password string) (*entity.User, error) {
	query := `
		SELECT id, nombre, password, rol
		FROM users WHERE nombre = $1 AND password = $2 LIMIT 1`
	var u entity.User
	err := r.q.QueryRow(ctx, query, nombre, password).Scan(&u.ID, &u.Nombre, &u.Password, &u.Rol)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find user by credentials: %w", err)
	}
	return &u, nil
}
