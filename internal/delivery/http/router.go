package http

import (
	"io/fs"
	"net/http"
	"strings"

	"expediente-admin/internal/delivery/http/handler"
	"expediente-admin/internal/delivery/http/middleware"
	"expediente-admin/internal/infrastructure/metrics"

	"github.com/gorilla/mux"
)

// MediaMount serves locally stored images. Leave Dir empty when images live
// in object storage.
type MediaMount struct {
	Prefix string
	Dir    string
}

type Router struct {
	router         *mux.Router
	productHandler *handler.ProductHandler
	brandHandler   *handler.BrandHandler
	uploadHandler  *handler.UploadHandler
	authMiddleware *middleware.AuthMiddleware
	corsMiddleware *middleware.CORSMiddleware
	media          MediaMount
}

func NewRouter(
	productHandler *handler.ProductHandler,
	brandHandler *handler.BrandHandler,
	uploadHandler *handler.UploadHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
	media MediaMount,
) *Router {
	return &Router{
		router:         mux.NewRouter(),
		productHandler: productHandler,
		brandHandler:   brandHandler,
		uploadHandler:  uploadHandler,
		authMiddleware: authMiddleware,
		corsMiddleware: corsMiddleware,
		media:          media,
	}
}

// Setup registers every route and returns the root handler. CORS wraps the
// whole router so preflight requests are answered before route matching.
func (r *Router) Setup() http.Handler {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Prometheus scrape endpoint
	r.router.Handle("/metrics", metrics.Handler()).Methods(http.MethodGet)

	// Admin routes (protected - admin only)
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(r.authMiddleware.Authenticate)
	admin.Use(middleware.RequireAdmin)

	// Product management (admin)
	admin.HandleFunc("/products", r.productHandler.Create).Methods(http.MethodPost)
	admin.HandleFunc("/products", r.productHandler.GetAll).Methods(http.MethodGet)
	admin.HandleFunc("/products/bulk-delete", r.productHandler.BulkDelete).Methods(http.MethodPost)
	admin.HandleFunc("/products/{id}", r.productHandler.GetByID).Methods(http.MethodGet)
	admin.HandleFunc("/products/{id}", r.productHandler.Update).Methods(http.MethodPut)
	admin.HandleFunc("/products/{id}", r.productHandler.Delete).Methods(http.MethodDelete)

	// Product form support (admin)
	admin.HandleFunc("/brands", r.brandHandler.GetAll).Methods(http.MethodGet)
	admin.HandleFunc("/uploads/images", r.uploadHandler.UploadImage).Methods(http.MethodPost)

	// Locally stored images
	if r.media.Dir != "" && strings.HasPrefix(r.media.Prefix, "/") {
		prefix := strings.TrimSuffix(r.media.Prefix, "/") + "/"
		r.router.PathPrefix(prefix).Handler(http.StripPrefix(prefix, http.FileServer(noListingFS{http.Dir(r.media.Dir)}))).Methods(http.MethodGet)
	}

	r.router.Use(middleware.Metrics)

	return r.corsMiddleware.Handle(r.router)
}

// noListingFS hides directories so the media mount never renders an index.
type noListingFS struct {
	root http.FileSystem
}

func (n noListingFS) Open(name string) (http.File, error) {
	f, err := n.root.Open(name)
	if err != nil {
		return nil, err
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}
	if info.IsDir() {
		f.Close()
		return nil, fs.ErrNotExist
	}
	return f, nil
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
