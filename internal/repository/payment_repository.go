package repository

import (
	"commerce-core/internal/domain"
)

type PaymentRepository interface {
	Save(payment *domain.Payment) error
	Update(payment *domain.Payment) error
	// Find methods return (nil, nil) when no matching payment exists; the
	// service layer decides whether absence is an error.
	FindByID(id uint64) (*domain.Payment, error)
	FindByOrderID(orderID uint64) (*domain.Payment, error)
	FindByOrderIDAndStatus(orderID uint64, status domain.PaymentStatus) (*domain.Payment, error)
	// FindByOrderIDAndStatuses returns a payment for the order whose status is
	// any of the given ones. An order holds at most one PENDING or COMPLETED
	// row, so callers guarding that invariant query those statuses directly
	// instead of scanning the attempt history.
	FindByOrderIDAndStatuses(orderID uint64, statuses ...domain.PaymentStatus) (*domain.Payment, error)
	FindByTransactionID(transactionID string) (*domain.Payment, error)
	FindByUserID(userID uint64) ([]domain.Payment, error)
	FindByUserIDAndStatus(userID uint64, status domain.PaymentStatus) ([]domain.Payment, error)
}
