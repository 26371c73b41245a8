package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"example.com/shop-backend/internal/services"
	"example.com/shop-backend/internal/token"
)

// UserHandler serves registration, login and account endpoints.
type UserHandler struct {
	users         services.UserService
	tokens        *token.Service
	secureCookies bool
}

// NewUserHandler creates a UserHandler. secureCookies turns on the
// Secure flag of the session cookie (production only).
func NewUserHandler(users services.UserService, tokens *token.Service, secureCookies bool) *UserHandler {
	return &UserHandler{users: users, tokens: tokens, secureCookies: secureCookies}
}

func (h *UserHandler) setSessionCookie(c *gin.Context, value string, maxAge int) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(sessionCookie, value, maxAge, "/", "", h.secureCookies, true)
}

// Register handles POST /register.
func (h *UserHandler) Register(c *gin.Context) {
	var req struct {
		UserName    string `json:"userName"`
		Email       string `json:"email"`
		Password    string `json:"password"`
		PhoneNumber string `json:"PhoneNumber"`
		Address     string `json:"Address"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Error : Please Enter All Fields"})
		return
	}

	user, err := h.users.Register(c.Request.Context(), services.RegisterInput{
		UserName:    req.UserName,
		Email:       req.Email,
		Password:    req.Password,
		PhoneNumber: req.PhoneNumber,
		Address:     req.Address,
	})
	var ve *services.ValidationError
	switch {
	case errors.As(err, &ve):
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Error : Please Enter All Fields"})
	case errors.Is(err, services.ErrEmailExists):
		c.JSON(http.StatusUnauthorized, gin.H{"message": "This Email Already Exist"})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error : cant save this register"})
	default:
		c.JSON(http.StatusCreated, gin.H{"success": true, "data": user})
	}
}

// Login handles POST /login. Success sets the session cookie.
func (h *UserHandler) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Error: Please Enter All Fields"})
		return
	}

	user, err := h.users.Login(c.Request.Context(), req.Email, req.Password)
	switch {
	case errors.Is(err, services.ErrUserNotFound):
		c.JSON(http.StatusUnauthorized, gin.H{"message": "this email does not exist"})
		return
	case errors.Is(err, services.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"message": "invalid password"})
		return
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Internal Server Error"})
		return
	}

	signed, err := h.tokens.Issue(user.ID.Hex(), user.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Internal Server Error"})
		return
	}

	h.setSessionCookie(c, signed, int(token.TTL.Seconds()))
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Logged in successfully"})
}

// Logout handles POST /logout by expiring the cookie. The token itself
// stays cryptographically valid until its natural expiry.
func (h *UserHandler) Logout(c *gin.Context) {
	h.setSessionCookie(c, "", -1)
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Logged out successfully"})
}

// Me handles GET /user for the authenticated user.
func (h *UserHandler) Me(c *gin.Context) {
	claims := authClaims(c)

	user, err := h.users.GetByID(c.Request.Context(), claims.UserID)
	switch {
	case errors.Is(err, services.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "User not found"})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Internal Server Error"})
	default:
		c.JSON(http.StatusOK, gin.H{"success": true, "user": user})
	}
}

// Update handles PUT /user/update with partial profile fields.
func (h *UserHandler) Update(c *gin.Context) {
	claims := authClaims(c)

	var fields map[string]any
	if err := c.ShouldBindJSON(&fields); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid inputs"})
		return
	}

	user, err := h.users.UpdateProfile(c.Request.Context(), claims.UserID, fields)
	switch {
	case errors.Is(err, services.ErrUserNotFound):
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid inputs"})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "cant update this account"})
	default:
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Account updated successfully", "user": user})
	}
}

// Delete handles DELETE /delete_account after password re-verification.
func (h *UserHandler) Delete(c *gin.Context) {
	claims := authClaims(c)

	var req struct {
		Password string `json:"password"`
	}
	_ = c.ShouldBindJSON(&req)

	err := h.users.DeleteAccount(c.Request.Context(), claims.UserID, req.Password)
	switch {
	case errors.Is(err, services.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "User not found"})
	case errors.Is(err, services.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "wrong password"})
	case errors.Is(err, services.ErrAdminAccount):
		c.JSON(http.StatusForbidden, gin.H{"message": "cant delete the admin account"})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "failed to delete this account"})
	default:
		h.setSessionCookie(c, "", -1)
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Account deleted successfully"})
	}
}
