package http

import (
	"net/http"

	"commerce-core/internal/domain"
	"commerce-core/internal/services"

	"github.com/gin-gonic/gin"
)

type PaymentHandler struct {
	service *services.PaymentService
}

func NewPaymentHandler(s *services.PaymentService) *PaymentHandler {
	return &PaymentHandler{service: s}
}

func (h *PaymentHandler) RegisterRoutes(r *gin.Engine) {
	r.POST("/payments", h.ProcessPayment)
	r.GET("/payments/:paymentId", h.GetPaymentByID)
	r.GET("/payments/order/:orderId", h.GetPaymentByOrderID)
	r.GET("/payments/transaction/:transactionId", h.GetPaymentByTransactionID)
	r.GET("/payments/user/:userId", h.GetPaymentsByUser)
	r.GET("/payments/user/:userId/status/:status", h.GetPaymentsByUserAndStatus)
	r.POST("/payments/:paymentId/refund", h.ProcessRefund)
}

func (h *PaymentHandler) ProcessPayment(c *gin.Context) {
	var req ProcessPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !req.Amount.IsPositive() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "amount must be greater than 0"})
		return
	}

	payment, err := h.service.ProcessPayment(c.Request.Context(), services.PaymentRequest{
		OrderID:        req.OrderID,
		UserID:         req.UserID,
		Amount:         req.Amount,
		Currency:       req.Currency,
		Method:         req.PaymentMethod,
		CardNumber:     req.CardNumber,
		CardholderName: req.CardholderName,
		ExpiryMonth:    req.ExpiryMonth,
		ExpiryYear:     req.ExpiryYear,
		CVV:            req.CVV,
		PIN:            req.PIN,
		PayPalEmail:    req.PayPalEmail,
		AccountNumber:  req.AccountNumber,
		RoutingNumber:  req.RoutingNumber,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, payment)
}

func (h *PaymentHandler) GetPaymentByID(c *gin.Context) {
	id, ok := parseID(c, "paymentId")
	if !ok {
		return
	}

	payment, err := h.service.GetPaymentByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, payment)
}

func (h *PaymentHandler) GetPaymentByOrderID(c *gin.Context) {
	orderID, ok := parseID(c, "orderId")
	if !ok {
		return
	}

	payment, err := h.service.GetPaymentByOrderID(c.Request.Context(), orderID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, payment)
}

func (h *PaymentHandler) GetPaymentByTransactionID(c *gin.Context) {
	payment, err := h.service.GetPaymentByTransactionID(c.Request.Context(), c.Param("transactionId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, payment)
}

func (h *PaymentHandler) GetPaymentsByUser(c *gin.Context) {
	userID, ok := parseID(c, "userId")
	if !ok {
		return
	}

	payments, err := h.service.GetPaymentsByUserID(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, payments)
}

func (h *PaymentHandler) GetPaymentsByUserAndStatus(c *gin.Context) {
	userID, ok := parseID(c, "userId")
	if !ok {
		return
	}

	status, ok := domain.ParsePaymentStatus(c.Param("status"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown payment status"})
		return
	}

	payments, err := h.service.GetPaymentsByUserIDAndStatus(c.Request.Context(), userID, status)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, payments)
}

func (h *PaymentHandler) ProcessRefund(c *gin.Context) {
	id, ok := parseID(c, "paymentId")
	if !ok {
		return
	}

	var req RefundRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !req.Amount.IsPositive() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "amount must be greater than 0"})
		return
	}

	refund, err := h.service.ProcessRefund(c.Request.Context(), id, req.Amount, req.Reason)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, refund)
}
