package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"example.com/shop-backend/internal/services"
)

// CartHandler serves the cart and saved-products endpoints. The
// original contract leaves these unauthenticated; the caller names the
// user explicitly.
type CartHandler struct {
	cart services.CartService
}

func NewCartHandler(cart services.CartService) *CartHandler {
	return &CartHandler{cart: cart}
}

type cartRequest struct {
	UserID    string `json:"userId"`
	ProductID string `json:"productId"`
}

// cartError writes the shared failure mapping for cart mutations.
func cartError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "User not found"})
	case errors.Is(err, services.ErrProductNotInCart):
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Product not in cart"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error"})
	}
}

// Add handles POST /addCart.
func (h *CartHandler) Add(c *gin.Context) {
	var req cartRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.UserID == "" || req.ProductID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Missing userId or productId"})
		return
	}

	cart, err := h.cart.Add(c.Request.Context(), req.UserID, req.ProductID)
	if err != nil {
		cartError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Product added to cart", "cart": cart})
}

// Get handles GET /getCart/:userId with products populated.
func (h *CartHandler) Get(c *gin.Context) {
	cart, err := h.cart.Get(c.Request.Context(), c.Param("userId"))
	if err != nil {
		cartError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "cart": cart})
}

// Remove handles DELETE /removeCart.
func (h *CartHandler) Remove(c *gin.Context) {
	var req cartRequest
	_ = c.ShouldBindJSON(&req)

	cart, err := h.cart.Remove(c.Request.Context(), req.UserID, req.ProductID)
	if err != nil {
		cartError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Product removed from cart", "cart": cart})
}

// UpdateQuantity handles PUT /updateCart. The quantity is stored
// verbatim, zero and negative included.
func (h *CartHandler) UpdateQuantity(c *gin.Context) {
	var req struct {
		UserID    string `json:"userId"`
		ProductID string `json:"productId"`
		Quantity  int    `json:"quantity"`
	}
	_ = c.ShouldBindJSON(&req)

	cart, err := h.cart.UpdateQuantity(c.Request.Context(), req.UserID, req.ProductID, req.Quantity)
	if err != nil {
		cartError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Cart updated", "cart": cart})
}

// Clear handles DELETE /clearCart/:userId.
func (h *CartHandler) Clear(c *gin.Context) {
	cart, err := h.cart.Clear(c.Request.Context(), c.Param("userId"))
	if err != nil {
		cartError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Cart cleared successfully", "cart": cart})
}

// Save handles POST /saveProduct, the saved-products mirror of Add.
func (h *CartHandler) Save(c *gin.Context) {
	var req cartRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.UserID == "" || req.ProductID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Missing userId or productId"})
		return
	}

	saved, err := h.cart.Save(c.Request.Context(), req.UserID, req.ProductID)
	if err != nil {
		cartError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Product saved", "savedProducts": saved})
}

// Unsave handles DELETE /unsaveProduct.
func (h *CartHandler) Unsave(c *gin.Context) {
	var req cartRequest
	_ = c.ShouldBindJSON(&req)

	saved, err := h.cart.Unsave(c.Request.Context(), req.UserID, req.ProductID)
	if err != nil {
		cartError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Product removed from saved", "savedProducts": saved})
}

// GetSaved handles GET /getSaved/:userId with products populated.
func (h *CartHandler) GetSaved(c *gin.Context) {
	saved, err := h.cart.GetSaved(c.Request.Context(), c.Param("userId"))
	if err != nil {
		cartError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "savedProducts": saved})
}
