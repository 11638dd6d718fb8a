package services

import (
	"time"

	"commerce-core/internal/domain"
	"commerce-core/internal/infra"

	"github.com/shopspring/decimal"
)

func CreateMockOrder(id, userID, productID uint64, quantity int, totalPrice string, status domain.OrderStatus) *domain.Order {
	return &domain.Order{
		ID:         id,
		UserID:     userID,
		ProductID:  productID,
		Quantity:   quantity,
		TotalPrice: decimal.RequireFromString(totalPrice),
		Status:     status,
		OrderDate:  time.Now(),
	}
}

func CreateMockProduct(id uint64, name string, price string, stock int) *infra.ProductInfo {
	return &infra.ProductInfo{
		ID:    id,
		Name:  name,
		Price: decimal.RequireFromString(price),
		Stock: stock,
	}
}

func CreateMockPayment(id, orderID, userID uint64, amount string, status domain.PaymentStatus) *domain.Payment {
	p := &domain.Payment{
		ID:       id,
		OrderID:  orderID,
		UserID:   userID,
		Amount:   decimal.RequireFromString(amount),
		Currency: domain.DefaultCurrency,
		Method:   domain.MethodCreditCard,
		Status:   status,
	}
	if status == domain.PaymentCompleted {
		now := time.Now()
		p.TransactionID = "CC_1700000000000_42"
		p.CompletedAt = &now
	}
	return p
}

const (
	TestUserID      = uint64(7)
	TestProductID   = uint64(1)
	TestOrderID     = uint64(1)
	TestPaymentID   = uint64(1)
	TestProductName = "Test Product"
)
