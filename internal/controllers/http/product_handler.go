package http

import (
	"net/http"
	"strconv"

	"commerce-core/internal/domain"
	"commerce-core/internal/services"

	"github.com/gin-gonic/gin"
)

type ProductHandler struct {
	service *services.ProductService
}

func NewProductHandler(s *services.ProductService) *ProductHandler {
	return &ProductHandler{service: s}
}

func (h *ProductHandler) RegisterRoutes(r *gin.Engine) {
	r.POST("/products", h.CreateProduct)
	r.GET("/products", h.GetAllProducts)
	r.GET("/products/:productId", h.GetProductByID)
	r.PUT("/products/:productId", h.UpdateProduct)
	r.DELETE("/products/:productId", h.DeleteProduct)
	r.GET("/products/:productId/stock", h.CheckStock)
	r.PUT("/products/:productId/stock", h.UpdateStock)
}

func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var req CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	product, err := h.service.CreateProduct(c.Request.Context(), &domain.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Stock:       req.Stock,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, product)
}

func (h *ProductHandler) GetAllProducts(c *gin.Context) {
	products, err := h.service.GetAllProducts(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

func (h *ProductHandler) GetProductByID(c *gin.Context) {
	id, ok := parseID(c, "productId")
	if !ok {
		return
	}

	product, err := h.service.GetProductByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	if product == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		return
	}
	c.JSON(http.StatusOK, product)
}

func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	id, ok := parseID(c, "productId")
	if !ok {
		return
	}

	var req CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	product, err := h.service.UpdateProduct(c.Request.Context(), &domain.Product{
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Stock:       req.Stock,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	id, ok := parseID(c, "productId")
	if !ok {
		return
	}

	if err := h.service.DeleteProduct(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ProductHandler) CheckStock(c *gin.Context) {
	id, ok := parseID(c, "productId")
	if !ok {
		return
	}
	quantity, ok := parseQuantity(c)
	if !ok {
		return
	}

	hasStock, err := h.service.HasInStock(c.Request.Context(), id, quantity)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, hasStock)
}

// UpdateStock answers 400 on a rejected decrement so callers can tell
// "insufficient or missing" apart from transport failures.
func (h *ProductHandler) UpdateStock(c *gin.Context) {
	id, ok := parseID(c, "productId")
	if !ok {
		return
	}
	quantity, ok := parseQuantity(c)
	if !ok {
		return
	}

	updated, err := h.service.DecrementStock(c.Request.Context(), id, quantity)
	if err != nil {
		respondError(c, err)
		return
	}
	if !updated {
		c.JSON(http.StatusBadRequest, gin.H{"error": "insufficient stock or product not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "stock updated successfully"})
}

func parseQuantity(c *gin.Context) (int, bool) {
	quantity, err := strconv.Atoi(c.Query("quantity"))
	if err != nil || quantity <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "quantity must be a positive integer"})
		return 0, false
	}
	return quantity, true
}
