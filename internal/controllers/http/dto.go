package http

import "github.com/shopspring/decimal"

type CreateOrderRequest struct {
	UserID    uint64 `json:"userId" binding:"required"`
	ProductID uint64 `json:"productId" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,min=1"`
}

type ProcessPaymentRequest struct {
	OrderID       uint64          `json:"orderId" binding:"required"`
	UserID        uint64          `json:"userId" binding:"required"`
	Amount        decimal.Decimal `json:"amount" binding:"required"`
	Currency      string          `json:"currency"`
	PaymentMethod string          `json:"paymentMethod" binding:"required"`

	CardNumber     string `json:"cardNumber"`
	CardholderName string `json:"cardholderName"`
	ExpiryMonth    string `json:"expiryMonth"`
	ExpiryYear     string `json:"expiryYear"`
	CVV            string `json:"cvv"`
	PIN            string `json:"pin"`
	PayPalEmail    string `json:"paypalEmail"`
	AccountNumber  string `json:"accountNumber"`
	RoutingNumber  string `json:"routingNumber"`
}

type RefundRequest struct {
	Amount decimal.Decimal `json:"amount" binding:"required"`
	Reason string          `json:"reason"`
}

type CreateProductRequest struct {
	Name        string          `json:"name" binding:"required"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price" binding:"required"`
	Stock       int             `json:"stock" binding:"min=0"`
}

type RegisterTraderRequest struct {
	Username    string `json:"username" binding:"required,min=3,max=50"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=6,max=100"`
	Name        string `json:"name" binding:"required,min=2,max=100"`
	PhoneNumber string `json:"phoneNumber" binding:"required"`
	Company     string `json:"company" binding:"required"`
}

type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Phone    string `json:"phone"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}
