package services

import (
	"context"
	"fmt"

	"commerce-core/internal/domain"
	"commerce-core/internal/repository"

	"go.uber.org/zap"
)

type ProductService struct {
	repo   repository.ProductRepository
	logger *zap.Logger
}

func NewProductService(repo repository.ProductRepository, logger *zap.Logger) *ProductService {
	return &ProductService{repo: repo, logger: logger}
}

func (s *ProductService) CreateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	existing, err := s.repo.FindByName(product.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("product with name %q already exists", product.Name)
	}
	if err := s.repo.Save(product); err != nil {
		return nil, err
	}
	return product, nil
}

// GetProductByID returns (nil, nil) when the product does not exist.
func (s *ProductService) GetProductByID(ctx context.Context, id uint64) (*domain.Product, error) {
	return s.repo.FindByID(id)
}

func (s *ProductService) GetAllProducts(ctx context.Context) ([]domain.Product, error) {
	return s.repo.FindAll()
}

func (s *ProductService) UpdateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	existing, err := s.repo.FindByID(product.ID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, fmt.Errorf("%w: product %d", ErrProductNotFound, product.ID)
	}
	if err := s.repo.Update(product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *ProductService) DeleteProduct(ctx context.Context, id uint64) error {
	existing, err := s.repo.FindByID(id)
	if err != nil {
		return err
	}
	if existing == nil {
		return fmt.Errorf("%w: product %d", ErrProductNotFound, id)
	}
	return s.repo.Delete(id)
}

// HasInStock answers the advisory stock check. It can say yes and a later
// decrement still lose the race; only DecrementStock is authoritative.
func (s *ProductService) HasInStock(ctx context.Context, id uint64, quantity int) (bool, error) {
	product, err := s.repo.FindByID(id)
	if err != nil {
		return false, err
	}
	return product != nil && product.Stock >= quantity, nil
}

// DecrementStock reduces stock by quantity, returning false when the product
// is missing or stock is insufficient at the moment of the update.
func (s *ProductService) DecrementStock(ctx context.Context, id uint64, quantity int) (bool, error) {
	if quantity <= 0 {
		return false, fmt.Errorf("quantity must be positive")
	}
	updated, err := s.repo.DecrementStock(id, quantity)
	if err != nil {
		return false, err
	}
	if updated {
		s.logger.Info("stock decremented", zap.Uint64("product_id", id), zap.Int("quantity", quantity))
	}
	return updated, nil
}
