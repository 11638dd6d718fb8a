package repository

import (
	"commerce-core/internal/domain"
)

type UserRepository interface {
	Save(user *domain.User) error
	FindByID(id uint64) (*domain.User, error)
	FindByUsername(username string) (*domain.User, error)
	FindByEmail(email string) (*domain.User, error)
}
