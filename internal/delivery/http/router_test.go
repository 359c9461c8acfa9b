package http

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"expediente-admin/config"
	"expediente-admin/internal/delivery/dto"
	"expediente-admin/internal/delivery/http/handler"
	"expediente-admin/internal/delivery/http/middleware"
	"expediente-admin/pkg/jwt"
	"expediente-admin/pkg/validator"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubProducts struct {
	bulkCalls int
	getCalls  int
}

func (s *stubProducts) Create(ctx context.Context, req *dto.ProductRequest) (*dto.ProductResponse, error) {
	return &dto.ProductResponse{ID: uuid.New()}, nil
}

func (s *stubProducts) GetAll(ctx context.Context, page, limit int) ([]dto.ProductResponse, int64, error) {
	return []dto.ProductResponse{}, 0, nil
}

func (s *stubProducts) GetByID(ctx context.Context, id uuid.UUID) (*dto.ProductResponse, error) {
	s.getCalls++
	return &dto.ProductResponse{ID: id}, nil
}

func (s *stubProducts) Update(ctx context.Context, id uuid.UUID, req *dto.ProductRequest) (*dto.ProductResponse, error) {
	return &dto.ProductResponse{ID: id}, nil
}

func (s *stubProducts) Delete(ctx context.Context, id uuid.UUID) error {
	return nil
}

func (s *stubProducts) BulkDelete(ctx context.Context, ids []uuid.UUID) (int, error) {
	s.bulkCalls++
	return len(ids), nil
}

type stubBrands struct{}

func (stubBrands) GetAll(ctx context.Context) ([]dto.BrandResponse, error) {
	return []dto.BrandResponse{}, nil
}

type stubMedia struct{}

func (stubMedia) UploadImage(ctx context.Context, body io.Reader) (*dto.ImageUploadResponse, error) {
	return &dto.ImageUploadResponse{}, nil
}

func setupRouter(t *testing.T, media MediaMount, origins ...string) (http.Handler, *stubProducts, string) {
	t.Helper()
	svc := jwt.NewJWTService(config.JWTConfig{Secret: "secret", AccessExpiry: time.Minute})
	token, _, err := svc.GenerateAccessToken(uuid.New(), "admin@example.com", jwt.RoleAdmin)
	require.NoError(t, err)

	products := &stubProducts{}
	r := NewRouter(
		handler.NewProductHandler(products, validator.NewValidator()),
		handler.NewBrandHandler(stubBrands{}),
		handler.NewUploadHandler(stubMedia{}, 1<<20),
		middleware.NewAuthMiddleware(svc),
		middleware.NewCORSMiddleware(origins...),
		media,
	)
	return r.Setup(), products, token
}

func TestRouter_Health(t *testing.T) {
	h, _, _ := setupRouter(t, MediaMount{})

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestRouter_AdminRequiresToken(t *testing.T) {
	h, _, _ := setupRouter(t, MediaMount{})

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/admin/products", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRouter_BulkDeleteNotShadowedByID(t *testing.T) {
	h, products, token := setupRouter(t, MediaMount{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/products/bulk-delete",
		bytes.NewBufferString(`{"ids":["`+uuid.NewString()+`"]}`))
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, products.bulkCalls)
	assert.Zero(t, products.getCalls)
}

func TestRouter_ProductByID(t *testing.T) {
	h, products, token := setupRouter(t, MediaMount{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/products/"+uuid.NewString(), nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, products.getCalls)
}

func TestRouter_ServesLocalMedia(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "products"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "products", "a.txt"), []byte("hello"), 0o644))

	h, _, _ := setupRouter(t, MediaMount{Prefix: "/storage/products", Dir: dir})

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/storage/products/products/a.txt", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "hello", rec.Body.String())
}

func TestRouter_LocalMediaDoesNotListDirectories(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "products"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "products", "a.txt"), []byte("hello"), 0o644))

	h, _, _ := setupRouter(t, MediaMount{Prefix: "/storage/products", Dir: dir})

	for _, path := range []string{"/storage/products/", "/storage/products/products/"} {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))

		assert.Equal(t, http.StatusNotFound, rec.Code, path)
		assert.NotContains(t, rec.Body.String(), "a.txt", path)
	}
}

func TestRouter_PreflightOnAdminRoute(t *testing.T) {
	h, products, _ := setupRouter(t, MediaMount{}, "https://admin.example.com")

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/admin/products", nil)
	req.Header.Set("Origin", "https://admin.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	req.Header.Set("Access-Control-Request-Headers", "Authorization, Content-Type")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "https://admin.example.com", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), http.MethodPost)
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Headers"), "Authorization")
	assert.Zero(t, products.bulkCalls)
}

func TestRouter_CORSHeadersOnUnauthorized(t *testing.T) {
	h, _, _ := setupRouter(t, MediaMount{}, "https://admin.example.com")

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/products", nil)
	req.Header.Set("Origin", "https://admin.example.com")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "https://admin.example.com", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestRouter_MetricsEndpoint(t *testing.T) {
	h, _, _ := setupRouter(t, MediaMount{})

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/v1/health", nil))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `path="/api/v1/health"`)
}
