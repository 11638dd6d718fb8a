package repository

import (
	"commerce-core/internal/domain"
)

type TraderRepository interface {
	Save(trader *domain.Trader) error
	Delete(id uint64) error
	FindByID(id uint64) (*domain.Trader, error)
	FindByUsername(username string) (*domain.Trader, error)
	FindByEmail(email string) (*domain.Trader, error)
}
