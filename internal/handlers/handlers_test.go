package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"example.com/shop-backend/internal/config"
	"example.com/shop-backend/internal/logger"
	"example.com/shop-backend/internal/models"
	"example.com/shop-backend/internal/services"
	"example.com/shop-backend/internal/storage"
	"example.com/shop-backend/internal/token"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// stubUserService implements services.UserService with overridable
// functions. Unset functions report not-found.
type stubUserService struct {
	registerFn  func(in services.RegisterInput) (*models.User, error)
	loginFn     func(email, password string) (*models.User, error)
	getByIDFn   func(id string) (*models.User, error)
	updateFn    func(id string, fields map[string]any) (*models.User, error)
	deleteFn    func(id, password string) error
	setImageFn  func(id, fileName string) (*models.User, error)
	setBannerFn func(id, fileName string) (*models.User, error)
}

func (s *stubUserService) Register(_ context.Context, in services.RegisterInput) (*models.User, error) {
	if s.registerFn == nil {
		return nil, services.ErrUserNotFound
	}
	return s.registerFn(in)
}

func (s *stubUserService) Login(_ context.Context, email, password string) (*models.User, error) {
	if s.loginFn == nil {
		return nil, services.ErrUserNotFound
	}
	return s.loginFn(email, password)
}

func (s *stubUserService) GetByID(_ context.Context, id string) (*models.User, error) {
	if s.getByIDFn == nil {
		return nil, services.ErrUserNotFound
	}
	return s.getByIDFn(id)
}

func (s *stubUserService) UpdateProfile(_ context.Context, id string, fields map[string]any) (*models.User, error) {
	if s.updateFn == nil {
		return nil, services.ErrUserNotFound
	}
	return s.updateFn(id, fields)
}

func (s *stubUserService) DeleteAccount(_ context.Context, id, password string) error {
	if s.deleteFn == nil {
		return services.ErrUserNotFound
	}
	return s.deleteFn(id, password)
}

func (s *stubUserService) SetImage(_ context.Context, id, fileName string) (*models.User, error) {
	if s.setImageFn == nil {
		return nil, services.ErrUserNotFound
	}
	return s.setImageFn(id, fileName)
}

func (s *stubUserService) SetBanner(_ context.Context, id, fileName string) (*models.User, error) {
	if s.setBannerFn == nil {
		return nil, services.ErrUserNotFound
	}
	return s.setBannerFn(id, fileName)
}

// stubProductService implements services.ProductService.
type stubProductService struct {
	createFn func(p models.Product) (*models.Product, error)
	listFn   func() ([]models.Product, error)
	updateFn func(id string, fields map[string]any) (*models.Product, error)
	deleteFn func(id string) error
}

func (s *stubProductService) Create(_ context.Context, p models.Product) (*models.Product, error) {
	return s.createFn(p)
}

func (s *stubProductService) List(_ context.Context) ([]models.Product, error) {
	return s.listFn()
}

func (s *stubProductService) Update(_ context.Context, id string, fields map[string]any) (*models.Product, error) {
	return s.updateFn(id, fields)
}

func (s *stubProductService) Delete(_ context.Context, id string) error {
	return s.deleteFn(id)
}

// stubCartService implements services.CartService.
type stubCartService struct {
	addFn      func(userID, productID string) ([]models.CartLine, error)
	updateFn   func(userID, productID string, quantity int) ([]models.CartLine, error)
	removeFn   func(userID, productID string) ([]models.CartLine, error)
	clearFn    func(userID string) ([]models.CartLine, error)
	getFn      func(userID string) ([]models.PopulatedCartLine, error)
	saveFn     func(userID, productID string) ([]models.CartLine, error)
	unsaveFn   func(userID, productID string) ([]models.CartLine, error)
	getSavedFn func(userID string) ([]models.PopulatedCartLine, error)
}

func (s *stubCartService) Add(_ context.Context, userID, productID string) ([]models.CartLine, error) {
	return s.addFn(userID, productID)
}

func (s *stubCartService) UpdateQuantity(_ context.Context, userID, productID string, quantity int) ([]models.CartLine, error) {
	return s.updateFn(userID, productID, quantity)
}

func (s *stubCartService) Remove(_ context.Context, userID, productID string) ([]models.CartLine, error) {
	return s.removeFn(userID, productID)
}

func (s *stubCartService) Clear(_ context.Context, userID string) ([]models.CartLine, error) {
	return s.clearFn(userID)
}

func (s *stubCartService) Get(_ context.Context, userID string) ([]models.PopulatedCartLine, error) {
	return s.getFn(userID)
}

func (s *stubCartService) Save(_ context.Context, userID, productID string) ([]models.CartLine, error) {
	return s.saveFn(userID, productID)
}

func (s *stubCartService) Unsave(_ context.Context, userID, productID string) ([]models.CartLine, error) {
	return s.unsaveFn(userID, productID)
}

func (s *stubCartService) GetSaved(_ context.Context, userID string) ([]models.PopulatedCartLine, error) {
	return s.getSavedFn(userID)
}

type testEnv struct {
	router *gin.Engine
	tokens *token.Service
}

func newTestEnv(t *testing.T, users services.UserService, products services.ProductService, cart services.CartService) *testEnv {
	t.Helper()

	cfg := &config.Config{
		Env:            "test",
		JWTSecret:      "test-secret",
		AllowedOrigins: []string{"http://localhost:5173"},
	}
	uploads, err := storage.NewLocalStore(t.TempDir())
	require.NoError(t, err)

	tokens := token.NewService(cfg.JWTSecret)
	router := NewRouter(cfg, logger.NewWithWriter(io.Discard, 0), users, products, cart, tokens, uploads)

	return &testEnv{router: router, tokens: tokens}
}

func (e *testEnv) do(t *testing.T, method, path string, body any, cookie string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: sessionCookie, Value: cookie})
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}
