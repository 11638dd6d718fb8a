package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

const DefaultCurrency = "USD"

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "PENDING"
	PaymentCompleted PaymentStatus = "COMPLETED"
	PaymentFailed    PaymentStatus = "FAILED"
	PaymentRefunded  PaymentStatus = "REFUNDED"
)

func ParsePaymentStatus(s string) (PaymentStatus, bool) {
	switch PaymentStatus(s) {
	case PaymentPending, PaymentCompleted, PaymentFailed, PaymentRefunded:
		return PaymentStatus(s), true
	}
	return "", false
}

type PaymentMethod string

const (
	MethodCreditCard   PaymentMethod = "CREDIT_CARD"
	MethodDebitCard    PaymentMethod = "DEBIT_CARD"
	MethodPayPal       PaymentMethod = "PAYPAL"
	MethodBankTransfer PaymentMethod = "BANK_TRANSFER"
)

func ParsePaymentMethod(s string) (PaymentMethod, bool) {
	switch PaymentMethod(s) {
	case MethodCreditCard, MethodDebitCard, MethodPayPal, MethodBankTransfer:
		return PaymentMethod(s), true
	}
	return "", false
}

// Payment records a single charge attempt or refund. A refund is a separate
// row with a negated amount and status REFUNDED; the original completed
// payment is never mutated by a refund. FailureReason doubles as the
// human-supplied refund reason on REFUNDED rows.
type Payment struct {
	ID            uint64          `json:"id" gorm:"primaryKey;autoIncrement"`
	OrderID       uint64          `json:"orderId" gorm:"not null;index"`
	UserID        uint64          `json:"userId" gorm:"not null;index"`
	Amount        decimal.Decimal `json:"amount" gorm:"type:decimal(19,4);not null"`
	Currency      string          `json:"currency" gorm:"size:3;not null;default:'USD'"`
	Method        PaymentMethod   `json:"paymentMethod" gorm:"size:50;not null"`
	Status        PaymentStatus   `json:"status" gorm:"size:50;not null"`
	TransactionID string          `json:"transactionId" gorm:"size:100;index"`
	FailureReason string          `json:"failureReason,omitempty" gorm:"size:500"`
	CreatedAt     time.Time       `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt     time.Time       `json:"updatedAt" gorm:"autoUpdateTime"`
	CompletedAt   *time.Time      `json:"completedAt,omitempty"`
}
