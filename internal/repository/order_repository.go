package repository

import (
	"commerce-core/internal/domain"
)

type OrderRepository interface {
	Save(order *domain.Order) error
	Update(order *domain.Order) error
	// FindByID returns (nil, nil) when no order exists with the id.
	FindByID(id uint64) (*domain.Order, error)
	FindByUserID(userID uint64) ([]domain.Order, error)
	FindAll() ([]domain.Order, error)
}
