package mysql

import (
	"errors"

	"commerce-core/internal/domain"
	"commerce-core/internal/repository"

	"gorm.io/gorm"
)

type paymentRepo struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) repository.PaymentRepository {
	return &paymentRepo{db: db}
}

func (r *paymentRepo) Save(payment *domain.Payment) error {
	if err := r.db.Create(payment).Error; err != nil {
		return err
	}
	if payment.ID == 0 {
		return errors.New("failed to assign payment ID")
	}
	return nil
}

func (r *paymentRepo) Update(payment *domain.Payment) error {
	return r.db.Save(payment).Error
}

func (r *paymentRepo) FindByID(id uint64) (*domain.Payment, error) {
	var p domain.Payment
	return firstPayment(r.db.First(&p, id), &p)
}

// FindByOrderID prefers the active charge (PENDING or COMPLETED); failed
// attempts only surface when no active charge exists, and then the most
// recent one wins. Refund rows share the order id and are never returned.
func (r *paymentRepo) FindByOrderID(orderID uint64) (*domain.Payment, error) {
	active, err := r.FindByOrderIDAndStatuses(orderID, domain.PaymentPending, domain.PaymentCompleted)
	if err != nil || active != nil {
		return active, err
	}
	var p domain.Payment
	return firstPayment(r.db.Where("order_id = ? AND status <> ?", orderID, domain.PaymentRefunded).
		Order("created_at DESC").First(&p), &p)
}

func (r *paymentRepo) FindByOrderIDAndStatus(orderID uint64, status domain.PaymentStatus) (*domain.Payment, error) {
	var p domain.Payment
	return firstPayment(r.db.Where("order_id = ? AND status = ?", orderID, status).First(&p), &p)
}

func (r *paymentRepo) FindByOrderIDAndStatuses(orderID uint64, statuses ...domain.PaymentStatus) (*domain.Payment, error) {
	var p domain.Payment
	return firstPayment(r.db.Where("order_id = ? AND status IN ?", orderID, statuses).First(&p), &p)
}

func (r *paymentRepo) FindByTransactionID(transactionID string) (*domain.Payment, error) {
	var p domain.Payment
	return firstPayment(r.db.Where("transaction_id = ?", transactionID).First(&p), &p)
}

func (r *paymentRepo) FindByUserID(userID uint64) ([]domain.Payment, error) {
	var out []domain.Payment
	if err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *paymentRepo) FindByUserIDAndStatus(userID uint64, status domain.PaymentStatus) ([]domain.Payment, error) {
	var out []domain.Payment
	if err := r.db.Where("user_id = ? AND status = ?", userID, status).
		Order("created_at DESC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func firstPayment(tx *gorm.DB, p *domain.Payment) (*domain.Payment, error) {
	if err := tx.Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return p, nil
}
