package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"example.com/shop-backend/internal/services"
	"example.com/shop-backend/internal/storage"
)

// UploadHandler serves avatar and banner uploads and their byte
// responses. Files land on local disk; the user document stores only
// the generated file name.
type UploadHandler struct {
	users services.UserService
	store *storage.LocalStore
}

func NewUploadHandler(users services.UserService, store *storage.LocalStore) *UploadHandler {
	return &UploadHandler{users: users, store: store}
}

// UploadImage handles POST /uploadImage (multipart image + userId).
func (h *UploadHandler) UploadImage(c *gin.Context) {
	fh, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "No file uploaded"})
		return
	}

	name, err := h.store.Save(fh)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Cannot upload image"})
		return
	}

	user, err := h.users.SetImage(c.Request.Context(), c.PostForm("userId"), name)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Cannot upload image"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Image uploaded", "user": user})
}

// GetImage handles GET /user/image/:id, responding with the file bytes.
func (h *UploadHandler) GetImage(c *gin.Context) {
	user, err := h.users.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil || user.Image == "" || !h.store.Exists(user.Image) {
		c.String(http.StatusNotFound, "No image found")
		return
	}
	c.File(h.store.Path(user.Image))
}

// UploadBanner handles POST /uploadBanner (multipart image + userId).
func (h *UploadHandler) UploadBanner(c *gin.Context) {
	fh, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "No file uploaded"})
		return
	}

	name, err := h.store.Save(fh)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Cannot upload banner"})
		return
	}

	user, err := h.users.SetBanner(c.Request.Context(), c.PostForm("userId"), name)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Cannot upload banner"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "banner uploaded", "user": user})
}

// GetBanner handles GET /user/banner/:id behind the session cookie.
func (h *UploadHandler) GetBanner(c *gin.Context) {
	user, err := h.users.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil || user.Banner == "" || !h.store.Exists(user.Banner) {
		c.String(http.StatusNotFound, "No banner found")
		return
	}
	c.File(h.store.Path(user.Banner))
}
