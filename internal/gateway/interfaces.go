package gateway

import (
	"context"

	"github.com/shopspring/decimal"
)

type GatewayInterface interface {
	ProcessCreditCard(ctx context.Context, card CardDetails, amount decimal.Decimal, currency string) (Result, error)
	ProcessDebitCard(ctx context.Context, cardNumber, pin string, amount decimal.Decimal, currency string) (Result, error)
	ProcessPayPal(ctx context.Context, email string, amount decimal.Decimal, currency string) (Result, error)
	ProcessBankTransfer(ctx context.Context, accountNumber, routingNumber string, amount decimal.Decimal, currency string) (Result, error)
	ProcessRefund(ctx context.Context, originalTransactionID string, amount decimal.Decimal) (Result, error)
}

var _ GatewayInterface = (*Gateway)(nil)
