package repository

import "github.com/ventasve/pedidos-api/internal/domain/entity"

// UserRepository puerto de persistencia para usuarios.
// GetByUsername devuelve (nil, nil) cuando el usuario no existe.
type UserRepository interface {
	Create(user *entity.User) error
	GetByUsername(username string) (*entity.User, error)
}
