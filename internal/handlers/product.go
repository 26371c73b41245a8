package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"example.com/shop-backend/internal/models"
	"example.com/shop-backend/internal/services"
)

// ProductHandler serves the catalog CRUD endpoints.
type ProductHandler struct {
	products services.ProductService
}

func NewProductHandler(products services.ProductService) *ProductHandler {
	return &ProductHandler{products: products}
}

type createProductRequest struct {
	Name     string         `json:"name"`
	NickName string         `json:"nickName"`
	Price    float64        `json:"price"`
	Currency string         `json:"currency"`
	Image    []string       `json:"image"`
	Dis      string         `json:"dis"`
	Category string         `json:"category"`
	Rate     float64        `json:"rate"`
	Details  float64        `json:"details"`
	Quantity string         `json:"quantity"`
	Color    []models.Color `json:"color"`
	InStock  *bool          `json:"inStock"`
}

// Create handles POST /products.
func (h *ProductHandler) Create(c *gin.Context) {
	var req createProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Please enter all fields"})
		return
	}

	// inStock defaults to true when the field is absent.
	inStock := true
	if req.InStock != nil {
		inStock = *req.InStock
	}

	product, err := h.products.Create(c.Request.Context(), models.Product{
		Name:     req.Name,
		NickName: req.NickName,
		Price:    req.Price,
		Currency: req.Currency,
		Image:    req.Image,
		Dis:      req.Dis,
		Category: req.Category,
		Rate:     req.Rate,
		Details:  req.Details,
		Quantity: req.Quantity,
		Color:    req.Color,
		InStock:  inStock,
	})
	var ve *services.ValidationError
	switch {
	case errors.As(err, &ve):
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Please enter all fields"})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to save product"})
	default:
		c.JSON(http.StatusCreated, gin.H{"success": true, "data": product})
	}
}

// List handles GET /api/products.
func (h *ProductHandler) List(c *gin.Context) {
	products, err := h.products.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Cannot fetch data"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Fetched", "data": products})
}

// Update handles PUT /api/products/:id with partial fields.
func (h *ProductHandler) Update(c *gin.Context) {
	var fields map[string]any
	if err := c.ShouldBindJSON(&fields); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Can't update"})
		return
	}

	product, err := h.products.Update(c.Request.Context(), c.Param("id"), fields)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Can't update"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Updated", "data": product})
}

// Delete handles DELETE /api/products/:id.
func (h *ProductHandler) Delete(c *gin.Context) {
	if err := h.products.Delete(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Cannot delete"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Deleted successfully"})
}
