package http

import (
	"net/http"

	"commerce-core/internal/domain"
	"commerce-core/internal/services"

	"github.com/gin-gonic/gin"
)

type TraderHandler struct {
	service *services.TraderService
}

func NewTraderHandler(s *services.TraderService) *TraderHandler {
	return &TraderHandler{service: s}
}

func (h *TraderHandler) RegisterRoutes(r *gin.Engine) {
	r.POST("/register", h.Register)
	r.POST("/login", h.Login)
	r.GET("/traders/:traderId", h.GetTraderByID)
	r.DELETE("/traders/:traderId", h.DeleteTrader)
}

func (h *TraderHandler) Register(c *gin.Context) {
	var req RegisterTraderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	trader, err := h.service.Register(c.Request.Context(), &domain.Trader{
		Username:    req.Username,
		Email:       req.Email,
		Password:    req.Password,
		Name:        req.Name,
		PhoneNumber: req.PhoneNumber,
		Company:     req.Company,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, trader)
}

func (h *TraderHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	trader, token, err := h.service.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"trader": trader, "token": token})
}

func (h *TraderHandler) GetTraderByID(c *gin.Context) {
	id, ok := parseID(c, "traderId")
	if !ok {
		return
	}

	trader, err := h.service.GetTraderByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	if trader == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "trader not found"})
		return
	}
	c.JSON(http.StatusOK, trader)
}

func (h *TraderHandler) DeleteTrader(c *gin.Context) {
	id, ok := parseID(c, "traderId")
	if !ok {
		return
	}

	if err := h.service.DeleteTrader(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
