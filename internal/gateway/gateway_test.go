package gateway

import (
	"context"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGateway(seed int64) *Gateway {
	return New(WithRand(rand.New(rand.NewSource(seed))), WithDelayRange(0, 0))
}

func validCard() CardDetails {
	return CardDetails{
		Number:      "4111111111111111",
		HolderName:  "Test Buyer",
		ExpiryMonth: "12",
		ExpiryYear:  "2030",
		CVV:         "123",
	}
}

var testAmount = decimal.RequireFromString("39.98")

func TestGateway_CreditCardValidation(t *testing.T) {
	g := newTestGateway(1)

	tests := []struct {
		name    string
		card    CardDetails
		amount  decimal.Decimal
		message string
	}{
		{name: "card number too short", card: CardDetails{Number: "411111111111"}, amount: testAmount, message: "Invalid card number"},
		{name: "card number too long", card: CardDetails{Number: strings.Repeat("4", 20)}, amount: testAmount, message: "Invalid card number"},
		{name: "zero amount", card: validCard(), amount: decimal.Zero, message: "Invalid amount"},
		{name: "negative amount", card: validCard(), amount: testAmount.Neg(), message: "Invalid amount"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := g.ProcessCreditCard(context.Background(), tt.card, tt.amount, "USD")
			require.NoError(t, err)
			assert.False(t, result.Success)
			assert.Equal(t, tt.message, result.Message)
			assert.Empty(t, result.TransactionID)
		})
	}
}

func TestGateway_DebitCardValidation(t *testing.T) {
	g := newTestGateway(1)

	result, err := g.ProcessDebitCard(context.Background(), "4111111111111111", "123", testAmount, "USD")
	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Equal(t, "Invalid PIN", result.Message)

	result, err = g.ProcessDebitCard(context.Background(), "411", "1234", testAmount, "USD")
	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Equal(t, "Invalid card number", result.Message)
}

func TestGateway_PayPalValidation(t *testing.T) {
	g := newTestGateway(1)

	result, err := g.ProcessPayPal(context.Background(), "not-an-email", testAmount, "USD")
	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Equal(t, "Invalid PayPal email", result.Message)
}

func TestGateway_BankTransferValidation(t *testing.T) {
	g := newTestGateway(1)

	result, err := g.ProcessBankTransfer(context.Background(), "123", "987654321", testAmount, "USD")
	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Equal(t, "Invalid account number", result.Message)

	result, err = g.ProcessBankTransfer(context.Background(), "1234567890", "12345", testAmount, "USD")
	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Equal(t, "Invalid routing number", result.Message)
}

func TestGateway_RefundValidation(t *testing.T) {
	g := newTestGateway(1)

	result, err := g.ProcessRefund(context.Background(), "", testAmount)
	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Equal(t, "Invalid transaction ID", result.Message)

	result, err = g.ProcessRefund(context.Background(), "CC_1700000000000_1", decimal.Zero)
	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Equal(t, "Invalid refund amount", result.Message)
}

func TestGateway_TransactionIDShape(t *testing.T) {
	g := newTestGateway(1)

	for {
		result, err := g.ProcessCreditCard(context.Background(), validCard(), testAmount, "USD")
		require.NoError(t, err)
		if !result.Success {
			continue
		}
		parts := strings.Split(result.TransactionID, "_")
		require.Len(t, parts, 3)
		assert.Equal(t, "CC", parts[0])
		assert.NotEmpty(t, parts[1])
		assert.NotEmpty(t, parts[2])
		return
	}
}

func TestGateway_SeededOutcomesAreDeterministic(t *testing.T) {
	a := newTestGateway(42)
	b := newTestGateway(42)

	for i := 0; i < 50; i++ {
		ra, err := a.ProcessCreditCard(context.Background(), validCard(), testAmount, "USD")
		require.NoError(t, err)
		rb, err := b.ProcessCreditCard(context.Background(), validCard(), testAmount, "USD")
		require.NoError(t, err)
		assert.Equal(t, ra.Success, rb.Success)
		assert.Equal(t, ra.Message, rb.Message)
	}
}

func TestGateway_ApprovalRatesConverge(t *testing.T) {
	g := newTestGateway(7)

	const trials = 2000
	approved := 0
	for i := 0; i < trials; i++ {
		result, err := g.ProcessPayPal(context.Background(), "buyer@example.com", testAmount, "USD")
		require.NoError(t, err)
		if result.Success {
			approved++
		}
	}

	rate := float64(approved) / trials
	assert.InDelta(t, 0.95, rate, 0.03)
}

func TestGateway_CancelledContext(t *testing.T) {
	g := New(WithRand(rand.New(rand.NewSource(1))), WithDelayRange(time.Second, 2*time.Second))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := g.ProcessCreditCard(ctx, validCard(), testAmount, "USD")
	assert.ErrorIs(t, err, context.Canceled)
}
