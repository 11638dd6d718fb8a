package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderCreatedEvent struct {
	OrderID    uint64          `json:"orderId"`
	UserID     uint64          `json:"userId"`
	ProductID  uint64          `json:"productId"`
	Quantity   int             `json:"quantity"`
	TotalPrice decimal.Decimal `json:"totalPrice"`
	CreatedAt  time.Time       `json:"createdAt"`
}

type PaymentCompletedEvent struct {
	PaymentID     uint64          `json:"paymentId"`
	OrderID       uint64          `json:"orderId"`
	UserID        uint64          `json:"userId"`
	Amount        decimal.Decimal `json:"amount"`
	Currency      string          `json:"currency"`
	Method        PaymentMethod   `json:"paymentMethod"`
	TransactionID string          `json:"transactionId"`
	CompletedAt   time.Time       `json:"completedAt"`
}

type PaymentRefundedEvent struct {
	RefundID          uint64          `json:"refundId"`
	OriginalPaymentID uint64          `json:"originalPaymentId"`
	OrderID           uint64          `json:"orderId"`
	Amount            decimal.Decimal `json:"amount"`
	Reason            string          `json:"reason"`
	FullRefund        bool            `json:"fullRefund"`
	RefundedAt        time.Time       `json:"refundedAt"`
}
