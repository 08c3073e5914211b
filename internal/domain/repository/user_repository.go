package repository

import "github.com/ecolvin/tracelink-api/internal/domain/entity"

// UserRepository puerto de persistencia para usuarios.
type UserRepository interface {
	Create(user *entity.User) error
	FindByEmail(email string) (*entity.User, error)
	FindByID(id string) (*entity.User, error)
	List() ([]*entity.User, error)
	Update(user *entity.User) error
	CountByRole(role string) (int, error)
}
