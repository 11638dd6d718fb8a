package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderPending        OrderStatus = "PENDING"
	OrderPendingPayment OrderStatus = "PENDING_PAYMENT"
	OrderConfirmed      OrderStatus = "CONFIRMED"
	OrderCancelled      OrderStatus = "CANCELLED"
	OrderPaid           OrderStatus = "PAID"
	OrderRefunded       OrderStatus = "REFUNDED"
	OrderDelivered      OrderStatus = "DELIVERED"
)

// ParseOrderStatus maps a raw status string onto the known order statuses.
func ParseOrderStatus(s string) (OrderStatus, bool) {
	switch OrderStatus(s) {
	case OrderPending, OrderPendingPayment, OrderConfirmed, OrderCancelled, OrderPaid, OrderRefunded, OrderDelivered:
		return OrderStatus(s), true
	}
	return "", false
}

// Terminal reports whether no further transition is allowed from the status.
func (s OrderStatus) Terminal() bool {
	return s == OrderCancelled || s == OrderDelivered
}

type Order struct {
	ID         uint64          `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID     uint64          `json:"userId" gorm:"not null;index"`
	ProductID  uint64          `json:"productId" gorm:"not null;index"`
	Quantity   int             `json:"quantity" gorm:"not null"`
	TotalPrice decimal.Decimal `json:"totalPrice" gorm:"type:decimal(19,4);not null"`
	Status     OrderStatus     `json:"status" gorm:"size:50;not null;default:'PENDING'"`
	OrderDate  time.Time       `json:"orderDate" gorm:"autoCreateTime"`
	UpdatedAt  time.Time       `json:"updatedAt" gorm:"autoUpdateTime"`
}
