package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"commerce-core/internal/domain"
	"commerce-core/internal/infra"
	rabbit "commerce-core/internal/infra/rabbitmq"
	"commerce-core/internal/repository"

	"github.com/go-redis/redis/v8"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var (
	ErrOrderNotFound     = errors.New("order not found")
	ErrUserNotFound      = errors.New("user not found")
	ErrProductNotFound   = errors.New("product not found")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrStockUpdateFailed = errors.New("failed to update product stock")
	ErrInvalidTransition = errors.New("invalid order status transition")
)

const productCacheTTL = time.Minute

type OrderService struct {
	repo         repository.OrderRepository
	userClient   infra.UserClientInterface
	traderClient infra.TraderClientInterface
	publisher    rabbit.PublisherInterface
	redisClient  *redis.Client
	logger       *zap.Logger
}

func NewOrderService(
	repo repository.OrderRepository,
	userClient infra.UserClientInterface,
	traderClient infra.TraderClientInterface,
	publisher rabbit.PublisherInterface,
	logger *zap.Logger,
) *OrderService {
	return &OrderService{
		repo:         repo,
		userClient:   userClient,
		traderClient: traderClient,
		publisher:    publisher,
		logger:       logger,
	}
}

func (s *OrderService) SetRedisClient(client *redis.Client) {
	s.redisClient = client
}

// CreateOrder runs the purchase workflow: validate the buyer, resolve the
// product, check stock, price, persist as PENDING, decrement stock, confirm.
// The steps run strictly in this order; a rejected stock decrement leaves the
// already-persisted order in PENDING rather than rolling it back, so the
// inconsistency stays visible and recoverable.
func (s *OrderService) CreateOrder(ctx context.Context, userID, productID uint64, quantity int) (*domain.Order, error) {
	if quantity <= 0 {
		return nil, errors.New("quantity must be positive")
	}

	valid, err := s.userClient.ValidateUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !valid {
		return nil, fmt.Errorf("%w: user %d", ErrUserNotFound, userID)
	}

	product, err := s.getProductWithCache(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, fmt.Errorf("%w: product %d", ErrProductNotFound, productID)
	}

	hasStock, err := s.traderClient.CheckStock(ctx, productID, quantity)
	if err != nil {
		return nil, err
	}
	if !hasStock {
		// The cached product can be up to a minute stale; report the
		// availability the rejection was actually based on.
		if fresh, ferr := s.traderClient.GetProduct(ctx, productID); ferr == nil && fresh != nil {
			product = fresh
		}
		return nil, fmt.Errorf("%w for product %s. Requested: %d, Available: %d",
			ErrInsufficientStock, product.Name, quantity, product.Stock)
	}

	totalPrice := product.Price.Mul(decimal.NewFromInt(int64(quantity)))

	order := &domain.Order{
		UserID:     userID,
		ProductID:  productID,
		Quantity:   quantity,
		TotalPrice: totalPrice,
		Status:     domain.OrderPending,
		OrderDate:  time.Now(),
	}
	if err := s.repo.Save(order); err != nil {
		return nil, err
	}

	updated, err := s.traderClient.UpdateStock(ctx, productID, quantity)
	if err != nil || !updated {
		s.logger.Warn("stock decrement rejected, order left pending",
			zap.Uint64("order_id", order.ID),
			zap.Uint64("product_id", productID),
			zap.Error(err))
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrStockUpdateFailed, err)
		}
		return nil, ErrStockUpdateFailed
	}

	order.Status = domain.OrderConfirmed
	if err := s.repo.Update(order); err != nil {
		return nil, err
	}

	s.logger.Info("order created",
		zap.Uint64("order_id", order.ID),
		zap.Uint64("user_id", userID),
		zap.Uint64("product_id", productID),
		zap.Int("quantity", quantity),
		zap.String("total_price", totalPrice.String()))

	go s.publishOrderCreated(context.Background(), order)

	return order, nil
}

func (s *OrderService) getProductWithCache(ctx context.Context, productID uint64) (*infra.ProductInfo, error) {
	cacheKey := fmt.Sprintf("product:%d", productID)

	if s.redisClient != nil {
		cached, err := s.redisClient.Get(ctx, cacheKey).Result()
		if err == nil {
			var product infra.ProductInfo
			if err := json.Unmarshal([]byte(cached), &product); err == nil {
				return &product, nil
			}
		}
	}

	product, err := s.traderClient.GetProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	if s.redisClient != nil && product != nil {
		if data, err := json.Marshal(product); err == nil {
			s.redisClient.Set(ctx, cacheKey, data, productCacheTTL)
		}
	}

	return product, nil
}

func (s *OrderService) publishOrderCreated(ctx context.Context, order *domain.Order) {
	event := domain.OrderCreatedEvent{
		OrderID:    order.ID,
		UserID:     order.UserID,
		ProductID:  order.ProductID,
		Quantity:   order.Quantity,
		TotalPrice: order.TotalPrice,
		CreatedAt:  order.OrderDate,
	}

	if err := s.publisher.Publish(ctx, "order.created", event); err != nil {
		s.logger.Warn("failed to publish order.created", zap.Uint64("order_id", order.ID), zap.Error(err))
	}
}

func (s *OrderService) GetOrdersByUserID(ctx context.Context, userID uint64) ([]domain.Order, error) {
	return s.repo.FindByUserID(userID)
}

// GetOrderByID returns (nil, nil) when the order does not exist; absence is
// an observable result here, not a failure.
func (s *OrderService) GetOrderByID(ctx context.Context, id uint64) (*domain.Order, error) {
	return s.repo.FindByID(id)
}

func (s *OrderService) GetAllOrders(ctx context.Context) ([]domain.Order, error) {
	return s.repo.FindAll()
}

// CancelOrder guards the transition: CANCELLED and DELIVERED are absorbing.
// Stock is not restored; cancellation is a status change only.
func (s *OrderService) CancelOrder(ctx context.Context, id uint64) (*domain.Order, error) {
	order, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, fmt.Errorf("%w: order %d", ErrOrderNotFound, id)
	}
	if order.Status.Terminal() {
		return nil, fmt.Errorf("%w: cannot cancel order with status %s", ErrInvalidTransition, order.Status)
	}

	order.Status = domain.OrderCancelled
	if err := s.repo.Update(order); err != nil {
		return nil, err
	}

	s.logger.Info("order cancelled", zap.Uint64("order_id", id))
	return order, nil
}

// UpdateOrderStatus overwrites the status without transition validation; the
// payment service uses it to mark PAID and REFUNDED, and those payment-driven
// transitions are authoritative.
func (s *OrderService) UpdateOrderStatus(ctx context.Context, id uint64, status domain.OrderStatus) (*domain.Order, error) {
	order, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, fmt.Errorf("%w: order %d", ErrOrderNotFound, id)
	}

	order.Status = status
	if err := s.repo.Update(order); err != nil {
		return nil, err
	}

	s.logger.Info("order status updated", zap.Uint64("order_id", id), zap.String("status", string(status)))
	return order, nil
}

func (s *OrderService) GetOrderStatus(ctx context.Context, id uint64) (domain.OrderStatus, error) {
	order, err := s.repo.FindByID(id)
	if err != nil {
		return "", err
	}
	if order == nil {
		return "", fmt.Errorf("%w: order %d", ErrOrderNotFound, id)
	}
	return order.Status, nil
}

// WarmupProductCache primes the redis product cache for the given ids.
func (s *OrderService) WarmupProductCache(ctx context.Context, productIDs []uint64) error {
	if s.redisClient == nil {
		return nil
	}

	g, ctx := errgroup.WithContext(ctx)
	for _, id := range productIDs {
		id := id // per-iteration copy; required under go < 1.22 to keep each goroutine's id distinct
		g.Go(func() error {
			product, err := s.traderClient.GetProduct(ctx, id)
			if err != nil {
				s.logger.Warn("cache warmup failed for product", zap.Uint64("product_id", id), zap.Error(err))
				return nil
			}
			if product != nil {
				cacheKey := fmt.Sprintf("product:%d", id)
				if data, err := json.Marshal(product); err == nil {
					s.redisClient.Set(ctx, cacheKey, data, 5*time.Minute)
				}
			}
			return nil
		})
	}
	return g.Wait()
}
