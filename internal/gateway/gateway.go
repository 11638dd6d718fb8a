package gateway

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"
)

// Per-method approval rates, in percent.
const (
	creditCardSuccessRate   = 90
	debitCardSuccessRate    = 85
	payPalSuccessRate       = 95
	bankTransferSuccessRate = 80
	refundSuccessRate       = 95
)

const (
	defaultMinDelay = 1 * time.Second
	defaultMaxDelay = 3 * time.Second
)

// Result is the gateway's answer to a charge or refund attempt. Success=false
// with a message is a business decline, not an error; errors are reserved for
// cancelled contexts.
type Result struct {
	Success       bool   `json:"success"`
	Message       string `json:"message"`
	TransactionID string `json:"transactionId,omitempty"`
}

type CardDetails struct {
	Number      string
	HolderName  string
	ExpiryMonth string
	ExpiryYear  string
	CVV         string
}

// Gateway simulates a payment network: structural validation, a processing
// delay, then a probabilistic approve/decline. Transaction ids are untrusted
// correlation tokens, unique only probabilistically.
type Gateway struct {
	mu       sync.Mutex
	rng      *rand.Rand
	minDelay time.Duration
	maxDelay time.Duration
}

type Option func(*Gateway)

// WithRand injects the pseudo-random source so tests can seed outcomes.
func WithRand(rng *rand.Rand) Option {
	return func(g *Gateway) { g.rng = rng }
}

// WithDelayRange overrides the simulated processing delay; a zero range
// disables it.
func WithDelayRange(min, max time.Duration) Option {
	return func(g *Gateway) {
		g.minDelay = min
		g.maxDelay = max
	}
}

func New(opts ...Option) *Gateway {
	g := &Gateway{
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
		minDelay: defaultMinDelay,
		maxDelay: defaultMaxDelay,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

func (g *Gateway) ProcessCreditCard(ctx context.Context, card CardDetails, amount decimal.Decimal, currency string) (Result, error) {
	if err := g.wait(ctx); err != nil {
		return Result{}, err
	}

	if len(card.Number) < 13 || len(card.Number) > 19 {
		return decline("Invalid card number"), nil
	}
	if !amount.IsPositive() {
		return decline("Invalid amount"), nil
	}

	if g.roll(creditCardSuccessRate) {
		return g.approve("CC", "Payment processed successfully"), nil
	}
	return decline("Payment declined by bank"), nil
}

func (g *Gateway) ProcessDebitCard(ctx context.Context, cardNumber, pin string, amount decimal.Decimal, currency string) (Result, error) {
	if err := g.wait(ctx); err != nil {
		return Result{}, err
	}

	if len(cardNumber) < 13 || len(cardNumber) > 19 {
		return decline("Invalid card number"), nil
	}
	if len(pin) != 4 {
		return decline("Invalid PIN"), nil
	}
	if !amount.IsPositive() {
		return decline("Invalid amount"), nil
	}

	if g.roll(debitCardSuccessRate) {
		return g.approve("DC", "Payment processed successfully"), nil
	}
	return decline("Insufficient funds or payment declined"), nil
}

func (g *Gateway) ProcessPayPal(ctx context.Context, email string, amount decimal.Decimal, currency string) (Result, error) {
	if err := g.wait(ctx); err != nil {
		return Result{}, err
	}

	if !strings.Contains(email, "@") {
		return decline("Invalid PayPal email"), nil
	}
	if !amount.IsPositive() {
		return decline("Invalid amount"), nil
	}

	if g.roll(payPalSuccessRate) {
		return g.approve("PP", "PayPal payment processed successfully"), nil
	}
	return decline("PayPal payment failed"), nil
}

func (g *Gateway) ProcessBankTransfer(ctx context.Context, accountNumber, routingNumber string, amount decimal.Decimal, currency string) (Result, error) {
	if err := g.wait(ctx); err != nil {
		return Result{}, err
	}

	if len(accountNumber) < 10 {
		return decline("Invalid account number"), nil
	}
	if len(routingNumber) != 9 {
		return decline("Invalid routing number"), nil
	}
	if !amount.IsPositive() {
		return decline("Invalid amount"), nil
	}

	if g.roll(bankTransferSuccessRate) {
		return g.approve("BT", "Bank transfer initiated successfully"), nil
	}
	return decline("Bank transfer failed"), nil
}

func (g *Gateway) ProcessRefund(ctx context.Context, originalTransactionID string, amount decimal.Decimal) (Result, error) {
	if err := g.wait(ctx); err != nil {
		return Result{}, err
	}

	if originalTransactionID == "" {
		return decline("Invalid transaction ID"), nil
	}
	if !amount.IsPositive() {
		return decline("Invalid refund amount"), nil
	}

	if g.roll(refundSuccessRate) {
		return g.approve("RF", "Refund processed successfully"), nil
	}
	return decline("Refund processing failed"), nil
}

// wait blocks for a random delay within the configured range, honoring
// context cancellation so callers are never stuck behind a sleeping gateway.
func (g *Gateway) wait(ctx context.Context) error {
	span := g.maxDelay - g.minDelay
	d := g.minDelay
	if span > 0 {
		g.mu.Lock()
		d += time.Duration(g.rng.Int63n(int64(span)))
		g.mu.Unlock()
	}
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func (g *Gateway) roll(successRate int) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.rng.Intn(100) < successRate
}

func (g *Gateway) approve(prefix, message string) Result {
	g.mu.Lock()
	suffix := g.rng.Intn(10000)
	g.mu.Unlock()
	return Result{
		Success:       true,
		Message:       message,
		TransactionID: fmt.Sprintf("%s_%d_%d", prefix, time.Now().UnixMilli(), suffix),
	}
}

func decline(message string) Result {
	return Result{Success: false, Message: message}
}
