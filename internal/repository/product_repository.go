package repository

import (
	"commerce-core/internal/domain"
)

type ProductRepository interface {
	Save(product *domain.Product) error
	Update(product *domain.Product) error
	Delete(id uint64) error
	FindByID(id uint64) (*domain.Product, error)
	FindByName(name string) (*domain.Product, error)
	FindAll() ([]domain.Product, error)
	// DecrementStock subtracts quantity from the product's stock in a single
	// conditional update. It returns false when the product is missing or the
	// remaining stock is insufficient; the row is never driven negative.
	DecrementStock(id uint64, quantity int) (bool, error)
}
