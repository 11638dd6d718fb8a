package http

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"commerce-core/internal/domain"
	"commerce-core/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

const userOrdersCacheTTL = 10 * time.Second

type OrderHandler struct {
	service *services.OrderService
	rdb     *redis.Client
}

func NewOrderHandler(s *services.OrderService, rdb *redis.Client) *OrderHandler {
	return &OrderHandler{service: s, rdb: rdb}
}

func (h *OrderHandler) RegisterRoutes(r *gin.Engine) {
	r.POST("/orders", h.CreateOrder)
	r.GET("/orders", h.GetAllOrders)
	r.GET("/orders/:orderId", h.GetOrderByID)
	r.GET("/orders/:orderId/status", h.GetOrderStatus)
	r.GET("/orders/user/:userId", h.GetOrdersByUser)
	r.PUT("/orders/:orderId/cancel", h.CancelOrder)
	r.PUT("/orders/:orderId/status", h.UpdateOrderStatus)
}

func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order, err := h.service.CreateOrder(c.Request.Context(), req.UserID, req.ProductID, req.Quantity)
	if err != nil {
		respondError(c, err)
		return
	}

	h.invalidateUserOrders(req.UserID)

	c.JSON(http.StatusCreated, order)
}

func (h *OrderHandler) GetOrderByID(c *gin.Context) {
	id, ok := parseID(c, "orderId")
	if !ok {
		return
	}

	order, err := h.service.GetOrderByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	if order == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *OrderHandler) GetOrderStatus(c *gin.Context) {
	id, ok := parseID(c, "orderId")
	if !ok {
		return
	}

	status, err := h.service.GetOrderStatus(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"orderId": id, "status": status})
}

func (h *OrderHandler) GetOrdersByUser(c *gin.Context) {
	userID, ok := parseID(c, "userId")
	if !ok {
		return
	}

	cacheKey := "orders:user:" + strconv.FormatUint(userID, 10)
	ctx := c.Request.Context()

	if h.rdb != nil {
		if b, err := h.rdb.Get(ctx, cacheKey).Result(); err == nil {
			var orders []domain.Order
			if json.Unmarshal([]byte(b), &orders) == nil {
				c.JSON(http.StatusOK, orders)
				return
			}
		}
	}

	orders, err := h.service.GetOrdersByUserID(ctx, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	if h.rdb != nil {
		if data, err := json.Marshal(orders); err == nil {
			h.rdb.Set(ctx, cacheKey, data, userOrdersCacheTTL)
		}
	}

	c.JSON(http.StatusOK, orders)
}

func (h *OrderHandler) GetAllOrders(c *gin.Context) {
	orders, err := h.service.GetAllOrders(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (h *OrderHandler) CancelOrder(c *gin.Context) {
	id, ok := parseID(c, "orderId")
	if !ok {
		return
	}

	order, err := h.service.CancelOrder(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	h.invalidateUserOrders(order.UserID)

	c.JSON(http.StatusOK, order)
}

func (h *OrderHandler) UpdateOrderStatus(c *gin.Context) {
	id, ok := parseID(c, "orderId")
	if !ok {
		return
	}

	status, ok := domain.ParseOrderStatus(c.Query("status"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown order status"})
		return
	}

	order, err := h.service.UpdateOrderStatus(c.Request.Context(), id, status)
	if err != nil {
		respondError(c, err)
		return
	}

	h.invalidateUserOrders(order.UserID)

	c.JSON(http.StatusOK, order)
}

func (h *OrderHandler) invalidateUserOrders(userID uint64) {
	if h.rdb == nil {
		return
	}
	h.rdb.Del(context.Background(), "orders:user:"+strconv.FormatUint(userID, 10))
}

func parseID(c *gin.Context, param string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(param), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": param + " must be a positive integer"})
		return 0, false
	}
	return id, true
}
