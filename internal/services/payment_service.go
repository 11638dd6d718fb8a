package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"commerce-core/internal/domain"
	"commerce-core/internal/gateway"
	"commerce-core/internal/infra"
	rabbit "commerce-core/internal/infra/rabbitmq"
	"commerce-core/internal/repository"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var (
	ErrPaymentNotFound      = errors.New("payment not found")
	ErrOrderValidation      = errors.New("order validation failed")
	ErrDuplicatePayment     = errors.New("payment already exists for order")
	ErrInvalidPaymentMethod = errors.New("invalid payment method")
	ErrPaymentProcessing    = errors.New("payment processing failed")
)

// PaymentRequest carries the charge request plus the method-specific
// credential fields; only the fields for the chosen method are read, and
// their structural validation happens inside the gateway.
type PaymentRequest struct {
	OrderID  uint64
	UserID   uint64
	Amount   decimal.Decimal
	Currency string
	Method   string

	CardNumber     string
	CardholderName string
	ExpiryMonth    string
	ExpiryYear     string
	CVV            string
	PIN            string
	PayPalEmail    string
	AccountNumber  string
	RoutingNumber  string
}

type PaymentService struct {
	repo        repository.PaymentRepository
	gateway     gateway.GatewayInterface
	orderClient infra.OrderClientInterface
	userClient  infra.UserClientInterface
	publisher   rabbit.PublisherInterface
	logger      *zap.Logger

	// Serializes the duplicate-payment and duplicate-refund check-then-act
	// windows per order within this process.
	orderLocks keyedMutex
}

func NewPaymentService(
	repo repository.PaymentRepository,
	gw gateway.GatewayInterface,
	orderClient infra.OrderClientInterface,
	userClient infra.UserClientInterface,
	publisher rabbit.PublisherInterface,
	logger *zap.Logger,
) *PaymentService {
	return &PaymentService{
		repo:        repo,
		gateway:     gw,
		orderClient: orderClient,
		userClient:  userClient,
		publisher:   publisher,
		logger:      logger,
	}
}

// ProcessPayment charges an eligible order. Whatever happens after the
// PENDING row is persisted, the row ends terminal: COMPLETED on gateway
// approval, FAILED on decline, gateway error, cancellation, or a failed
// order-status callback.
func (s *PaymentService) ProcessPayment(ctx context.Context, req PaymentRequest) (*domain.Payment, error) {
	method, ok := domain.ParsePaymentMethod(req.Method)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrInvalidPaymentMethod, req.Method)
	}

	if err := s.validateOrder(ctx, req.OrderID); err != nil {
		return nil, err
	}

	valid, err := s.userClient.ValidateUser(ctx, req.UserID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOrderValidation, err)
	}
	if !valid {
		return nil, fmt.Errorf("%w: user %d", ErrUserNotFound, req.UserID)
	}

	s.orderLocks.lock(req.OrderID)
	defer s.orderLocks.unlock(req.OrderID)

	// A FAILED attempt may precede the active charge, so the guard queries
	// the blocking statuses directly rather than the order's attempt history.
	active, err := s.repo.FindByOrderIDAndStatuses(req.OrderID, domain.PaymentPending, domain.PaymentCompleted)
	if err != nil {
		return nil, err
	}
	if active != nil {
		return nil, fmt.Errorf("%w: order %d", ErrDuplicatePayment, req.OrderID)
	}

	currency := req.Currency
	if currency == "" {
		currency = domain.DefaultCurrency
	}

	payment := &domain.Payment{
		OrderID:  req.OrderID,
		UserID:   req.UserID,
		Amount:   req.Amount,
		Currency: currency,
		Method:   method,
		Status:   domain.PaymentPending,
	}
	if err := s.repo.Save(payment); err != nil {
		return nil, err
	}

	s.logger.Info("processing payment",
		zap.Uint64("payment_id", payment.ID),
		zap.Uint64("order_id", req.OrderID),
		zap.String("method", string(method)))

	result, err := s.dispatch(ctx, method, req)
	if err != nil {
		return nil, s.failPayment(payment, fmt.Sprintf("Unexpected error during payment processing: %v", err))
	}
	if !result.Success {
		return nil, s.failPayment(payment, result.Message)
	}

	now := time.Now()
	payment.Status = domain.PaymentCompleted
	payment.TransactionID = result.TransactionID
	payment.CompletedAt = &now
	if err := s.repo.Update(payment); err != nil {
		return nil, s.failPayment(payment, fmt.Sprintf("Unexpected error during payment processing: %v", err))
	}

	if err := s.orderClient.UpdateOrderStatus(ctx, req.OrderID, string(domain.OrderPaid)); err != nil {
		return nil, s.failPayment(payment, fmt.Sprintf("Unexpected error during payment processing: %v", err))
	}

	s.logger.Info("payment completed",
		zap.Uint64("payment_id", payment.ID),
		zap.Uint64("order_id", req.OrderID),
		zap.String("transaction_id", result.TransactionID))

	go s.publishPaymentCompleted(context.Background(), payment)

	return payment, nil
}

// validateOrder checks the order exists and is in a payable status.
func (s *PaymentService) validateOrder(ctx context.Context, orderID uint64) error {
	order, err := s.orderClient.GetOrder(ctx, orderID)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrOrderValidation, err)
	}
	if order == nil {
		return fmt.Errorf("%w: order %d not found", ErrOrderValidation, orderID)
	}
	if order.Status != string(domain.OrderPendingPayment) && order.Status != string(domain.OrderConfirmed) {
		return fmt.Errorf("%w: order is not in a state that allows payment, current status: %s",
			ErrOrderValidation, order.Status)
	}
	return nil
}

func (s *PaymentService) dispatch(ctx context.Context, method domain.PaymentMethod, req PaymentRequest) (gateway.Result, error) {
	switch method {
	case domain.MethodCreditCard:
		return s.gateway.ProcessCreditCard(ctx, gateway.CardDetails{
			Number:      req.CardNumber,
			HolderName:  req.CardholderName,
			ExpiryMonth: req.ExpiryMonth,
			ExpiryYear:  req.ExpiryYear,
			CVV:         req.CVV,
		}, req.Amount, req.Currency)
	case domain.MethodDebitCard:
		return s.gateway.ProcessDebitCard(ctx, req.CardNumber, req.PIN, req.Amount, req.Currency)
	case domain.MethodPayPal:
		return s.gateway.ProcessPayPal(ctx, req.PayPalEmail, req.Amount, req.Currency)
	case domain.MethodBankTransfer:
		return s.gateway.ProcessBankTransfer(ctx, req.AccountNumber, req.RoutingNumber, req.Amount, req.Currency)
	default:
		return gateway.Result{}, fmt.Errorf("%w: %s", ErrInvalidPaymentMethod, method)
	}
}

// failPayment drives the payment to FAILED, records the reason, and returns
// the processing error the caller surfaces.
func (s *PaymentService) failPayment(payment *domain.Payment, reason string) error {
	payment.Status = domain.PaymentFailed
	payment.FailureReason = reason
	if err := s.repo.Update(payment); err != nil {
		s.logger.Error("failed to persist payment failure",
			zap.Uint64("payment_id", payment.ID),
			zap.Error(err))
	}

	s.logger.Warn("payment failed",
		zap.Uint64("payment_id", payment.ID),
		zap.Uint64("order_id", payment.OrderID),
		zap.String("reason", reason))

	return fmt.Errorf("%w: %s", ErrPaymentProcessing, reason)
}

// ProcessRefund refunds a completed payment by recording a new REFUNDED row
// with a negated amount; the original payment is left untouched. An exact
// full refund also flips the order to REFUNDED.
func (s *PaymentService) ProcessRefund(ctx context.Context, paymentID uint64, refundAmount decimal.Decimal, reason string) (*domain.Payment, error) {
	original, err := s.GetPaymentByID(ctx, paymentID)
	if err != nil {
		return nil, err
	}

	if original.Status != domain.PaymentCompleted {
		return nil, fmt.Errorf("%w: can only refund completed payments", ErrPaymentProcessing)
	}
	if refundAmount.GreaterThan(original.Amount) {
		return nil, fmt.Errorf("%w: refund amount cannot exceed original payment amount", ErrPaymentProcessing)
	}

	s.orderLocks.lock(original.OrderID)
	defer s.orderLocks.unlock(original.OrderID)

	// Existence of any REFUNDED row blocks further refunds on the order,
	// regardless of the amounts involved.
	refunded, err := s.repo.FindByOrderIDAndStatus(original.OrderID, domain.PaymentRefunded)
	if err != nil {
		return nil, err
	}
	if refunded != nil {
		return nil, fmt.Errorf("%w: payment has already been refunded", ErrPaymentProcessing)
	}

	result, err := s.gateway.ProcessRefund(ctx, original.TransactionID, refundAmount)
	if err != nil {
		return nil, fmt.Errorf("%w: unexpected error during refund processing: %v", ErrPaymentProcessing, err)
	}
	if !result.Success {
		return nil, fmt.Errorf("%w: %s", ErrPaymentProcessing, result.Message)
	}

	now := time.Now()
	refund := &domain.Payment{
		OrderID:       original.OrderID,
		UserID:        original.UserID,
		Amount:        refundAmount.Neg(),
		Currency:      original.Currency,
		Method:        original.Method,
		Status:        domain.PaymentRefunded,
		TransactionID: result.TransactionID,
		FailureReason: reason,
		CompletedAt:   &now,
	}
	if err := s.repo.Save(refund); err != nil {
		return nil, err
	}

	fullRefund := refundAmount.Equal(original.Amount)
	if fullRefund {
		if err := s.orderClient.UpdateOrderStatus(ctx, original.OrderID, string(domain.OrderRefunded)); err != nil {
			return nil, fmt.Errorf("%w: unexpected error during refund processing: %v", ErrPaymentProcessing, err)
		}
	}

	s.logger.Info("refund completed",
		zap.Uint64("payment_id", paymentID),
		zap.Uint64("refund_id", refund.ID),
		zap.String("transaction_id", result.TransactionID),
		zap.Bool("full_refund", fullRefund))

	go s.publishPaymentRefunded(context.Background(), refund, original, reason, fullRefund)

	return refund, nil
}

// GetPaymentByID and the other request-bound reads treat absence as an
// error, unlike the order service's nil-on-absent convention.
func (s *PaymentService) GetPaymentByID(ctx context.Context, id uint64) (*domain.Payment, error) {
	payment, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if payment == nil {
		return nil, fmt.Errorf("%w: payment %d", ErrPaymentNotFound, id)
	}
	return payment, nil
}

func (s *PaymentService) GetPaymentByOrderID(ctx context.Context, orderID uint64) (*domain.Payment, error) {
	payment, err := s.repo.FindByOrderID(orderID)
	if err != nil {
		return nil, err
	}
	if payment == nil {
		return nil, fmt.Errorf("%w: no payment for order %d", ErrPaymentNotFound, orderID)
	}
	return payment, nil
}

func (s *PaymentService) GetPaymentByTransactionID(ctx context.Context, transactionID string) (*domain.Payment, error) {
	payment, err := s.repo.FindByTransactionID(transactionID)
	if err != nil {
		return nil, err
	}
	if payment == nil {
		return nil, fmt.Errorf("%w: no payment with transaction id %s", ErrPaymentNotFound, transactionID)
	}
	return payment, nil
}

func (s *PaymentService) GetPaymentsByUserID(ctx context.Context, userID uint64) ([]domain.Payment, error) {
	return s.repo.FindByUserID(userID)
}

func (s *PaymentService) GetPaymentsByUserIDAndStatus(ctx context.Context, userID uint64, status domain.PaymentStatus) ([]domain.Payment, error) {
	return s.repo.FindByUserIDAndStatus(userID, status)
}

func (s *PaymentService) publishPaymentCompleted(ctx context.Context, payment *domain.Payment) {
	event := domain.PaymentCompletedEvent{
		PaymentID:     payment.ID,
		OrderID:       payment.OrderID,
		UserID:        payment.UserID,
		Amount:        payment.Amount,
		Currency:      payment.Currency,
		Method:        payment.Method,
		TransactionID: payment.TransactionID,
		CompletedAt:   *payment.CompletedAt,
	}
	if err := s.publisher.Publish(ctx, "payment.completed", event); err != nil {
		s.logger.Warn("failed to publish payment.completed", zap.Uint64("payment_id", payment.ID), zap.Error(err))
	}
}

func (s *PaymentService) publishPaymentRefunded(ctx context.Context, refund, original *domain.Payment, reason string, fullRefund bool) {
	event := domain.PaymentRefundedEvent{
		RefundID:          refund.ID,
		OriginalPaymentID: original.ID,
		OrderID:           refund.OrderID,
		Amount:            refund.Amount,
		Reason:            reason,
		FullRefund:        fullRefund,
		RefundedAt:        *refund.CompletedAt,
	}
	if err := s.publisher.Publish(ctx, "payment.refunded", event); err != nil {
		s.logger.Warn("failed to publish payment.refunded", zap.Uint64("refund_id", refund.ID), zap.Error(err))
	}
}

// keyedMutex hands out one mutex per key, dropping entries once the last
// holder releases.
type keyedMutex struct {
	mu    sync.Mutex
	locks map[uint64]*keyedLock
}

type keyedLock struct {
	sync.Mutex
	refs int
}

func (k *keyedMutex) lock(key uint64) {
	k.mu.Lock()
	if k.locks == nil {
		k.locks = make(map[uint64]*keyedLock)
	}
	entry := k.locks[key]
	if entry == nil {
		entry = &keyedLock{}
		k.locks[key] = entry
	}
	entry.refs++
	k.mu.Unlock()
	entry.Lock()
}

func (k *keyedMutex) unlock(key uint64) {
	k.mu.Lock()
	entry := k.locks[key]
	entry.refs--
	if entry.refs == 0 {
		delete(k.locks, key)
	}
	k.mu.Unlock()
	entry.Unlock()
}
