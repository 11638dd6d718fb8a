package mocks

import (
	"context"

	"commerce-core/internal/domain"
	"commerce-core/internal/gateway"
	"commerce-core/internal/infra"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) Save(order *domain.Order) error {
	args := m.Called(order)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(order *domain.Order) error {
	args := m.Called(order)
	return args.Error(0)
}

func (m *MockOrderRepository) FindByID(id uint64) (*domain.Order, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

func (m *MockOrderRepository) FindByUserID(userID uint64) ([]domain.Order, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Order), args.Error(1)
}

func (m *MockOrderRepository) FindAll() ([]domain.Order, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Order), args.Error(1)
}

type MockPaymentRepository struct {
	mock.Mock
}

func (m *MockPaymentRepository) Save(payment *domain.Payment) error {
	args := m.Called(payment)
	return args.Error(0)
}

func (m *MockPaymentRepository) Update(payment *domain.Payment) error {
	args := m.Called(payment)
	return args.Error(0)
}

func (m *MockPaymentRepository) FindByID(id uint64) (*domain.Payment, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}

func (m *MockPaymentRepository) FindByOrderID(orderID uint64) (*domain.Payment, error) {
	args := m.Called(orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}

func (m *MockPaymentRepository) FindByOrderIDAndStatus(orderID uint64, status domain.PaymentStatus) (*domain.Payment, error) {
	args := m.Called(orderID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}

func (m *MockPaymentRepository) FindByOrderIDAndStatuses(orderID uint64, statuses ...domain.PaymentStatus) (*domain.Payment, error) {
	args := m.Called(orderID, statuses)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}

func (m *MockPaymentRepository) FindByTransactionID(transactionID string) (*domain.Payment, error) {
	args := m.Called(transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}

func (m *MockPaymentRepository) FindByUserID(userID uint64) ([]domain.Payment, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Payment), args.Error(1)
}

func (m *MockPaymentRepository) FindByUserIDAndStatus(userID uint64, status domain.PaymentStatus) ([]domain.Payment, error) {
	args := m.Called(userID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Payment), args.Error(1)
}

type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) Save(product *domain.Product) error {
	args := m.Called(product)
	return args.Error(0)
}

func (m *MockProductRepository) Update(product *domain.Product) error {
	args := m.Called(product)
	return args.Error(0)
}

func (m *MockProductRepository) Delete(id uint64) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockProductRepository) FindByID(id uint64) (*domain.Product, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func (m *MockProductRepository) FindByName(name string) (*domain.Product, error) {
	args := m.Called(name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func (m *MockProductRepository) FindAll() ([]domain.Product, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Product), args.Error(1)
}

func (m *MockProductRepository) DecrementStock(id uint64, quantity int) (bool, error) {
	args := m.Called(id, quantity)
	return args.Bool(0), args.Error(1)
}

type MockTraderRepository struct {
	mock.Mock
}

func (m *MockTraderRepository) Save(trader *domain.Trader) error {
	args := m.Called(trader)
	return args.Error(0)
}

func (m *MockTraderRepository) Delete(id uint64) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockTraderRepository) FindByID(id uint64) (*domain.Trader, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Trader), args.Error(1)
}

func (m *MockTraderRepository) FindByUsername(username string) (*domain.Trader, error) {
	args := m.Called(username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Trader), args.Error(1)
}

func (m *MockTraderRepository) FindByEmail(email string) (*domain.Trader, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Trader), args.Error(1)
}

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Save(user *domain.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(id uint64) (*domain.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindByUsername(username string) (*domain.User, error) {
	args := m.Called(username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(email string) (*domain.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

type MockUserClient struct {
	mock.Mock
}

func (m *MockUserClient) ValidateUser(ctx context.Context, userID uint64) (bool, error) {
	args := m.Called(ctx, userID)
	return args.Bool(0), args.Error(1)
}

type MockTraderClient struct {
	mock.Mock
}

func (m *MockTraderClient) GetProduct(ctx context.Context, productID uint64) (*infra.ProductInfo, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*infra.ProductInfo), args.Error(1)
}

func (m *MockTraderClient) CheckStock(ctx context.Context, productID uint64, quantity int) (bool, error) {
	args := m.Called(ctx, productID, quantity)
	return args.Bool(0), args.Error(1)
}

func (m *MockTraderClient) UpdateStock(ctx context.Context, productID uint64, quantity int) (bool, error) {
	args := m.Called(ctx, productID, quantity)
	return args.Bool(0), args.Error(1)
}

type MockOrderClient struct {
	mock.Mock
}

func (m *MockOrderClient) GetOrder(ctx context.Context, orderID uint64) (*infra.OrderInfo, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*infra.OrderInfo), args.Error(1)
}

func (m *MockOrderClient) UpdateOrderStatus(ctx context.Context, orderID uint64, status string) error {
	args := m.Called(ctx, orderID, status)
	return args.Error(0)
}

type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Publish(ctx context.Context, routingKey string, data any) error {
	args := m.Called(ctx, routingKey, data)
	return args.Error(0)
}

type MockGateway struct {
	mock.Mock
}

func (m *MockGateway) ProcessCreditCard(ctx context.Context, card gateway.CardDetails, amount decimal.Decimal, currency string) (gateway.Result, error) {
	args := m.Called(ctx, card, amount, currency)
	return args.Get(0).(gateway.Result), args.Error(1)
}

func (m *MockGateway) ProcessDebitCard(ctx context.Context, cardNumber, pin string, amount decimal.Decimal, currency string) (gateway.Result, error) {
	args := m.Called(ctx, cardNumber, pin, amount, currency)
	return args.Get(0).(gateway.Result), args.Error(1)
}

func (m *MockGateway) ProcessPayPal(ctx context.Context, email string, amount decimal.Decimal, currency string) (gateway.Result, error) {
	args := m.Called(ctx, email, amount, currency)
	return args.Get(0).(gateway.Result), args.Error(1)
}

func (m *MockGateway) ProcessBankTransfer(ctx context.Context, accountNumber, routingNumber string, amount decimal.Decimal, currency string) (gateway.Result, error) {
	args := m.Called(ctx, accountNumber, routingNumber, amount, currency)
	return args.Get(0).(gateway.Result), args.Error(1)
}

func (m *MockGateway) ProcessRefund(ctx context.Context, originalTransactionID string, amount decimal.Decimal) (gateway.Result, error) {
	args := m.Called(ctx, originalTransactionID, amount)
	return args.Get(0).(gateway.Result), args.Error(1)
}
