package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"example.com/shop-backend/internal/config"
	"example.com/shop-backend/internal/logger"
	"example.com/shop-backend/internal/services"
	"example.com/shop-backend/internal/storage"
	"example.com/shop-backend/internal/token"
)

// NewRouter wires every endpoint of the gateway. Route paths and their
// status codes are part of the external contract and stay as-is.
func NewRouter(
	cfg *config.Config,
	log *logger.Logger,
	users services.UserService,
	products services.ProductService,
	cart services.CartService,
	tokens *token.Service,
	uploads *storage.LocalStore,
) *gin.Engine {
	if cfg.Production() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery(), RequestLogger(log), CORS(cfg.AllowedOrigins))

	userH := NewUserHandler(users, tokens, cfg.Production())
	productH := NewProductHandler(products)
	cartH := NewCartHandler(cart)
	uploadH := NewUploadHandler(users, uploads)
	auth := requireAuth(tokens)

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Server is working")
	})

	// products
	r.POST("/products", productH.Create)
	r.GET("/api/products", productH.List)
	r.PUT("/api/products/:id", productH.Update)
	r.DELETE("/api/products/:id", productH.Delete)

	// users
	r.POST("/register", userH.Register)
	r.POST("/login", userH.Login)
	r.POST("/logout", userH.Logout)
	r.GET("/user", auth, userH.Me)
	r.PUT("/user/update", auth, userH.Update)
	r.DELETE("/delete_account", auth, userH.Delete)

	// profile images
	r.POST("/uploadImage", uploadH.UploadImage)
	r.GET("/user/image/:id", uploadH.GetImage)
	r.POST("/uploadBanner", uploadH.UploadBanner)
	r.GET("/user/banner/:id", auth, uploadH.GetBanner)

	// cart
	r.POST("/addCart", cartH.Add)
	r.GET("/getCart/:userId", cartH.Get)
	r.DELETE("/removeCart", cartH.Remove)
	r.PUT("/updateCart", cartH.UpdateQuantity)
	r.DELETE("/clearCart/:userId", cartH.Clear)

	// saved products
	r.POST("/saveProduct", cartH.Save)
	r.DELETE("/unsaveProduct", cartH.Unsave)
	r.GET("/getSaved/:userId", cartH.GetSaved)

	return r
}
