package mockapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

// Server is the mock admin backend. It serves the same route table the
// production collaborator exposes.
type Server struct {
	store  *Store
	secret string
	logger *zap.Logger
}

// NewServer wires the mock routes onto a chi router and returns it with
// the server. secret signs the session JWT.
func NewServer(store *Store, secret string, logger *zap.Logger) (*Server, http.Handler) {
	s := &Server{store: store, secret: secret, logger: logger}

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Recoverer)
	router.Use(requestLogger(logger))

	// The admin UI runs on its own origin during development and sends
	// the session cookie, so credentialed CORS is required.
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000", "http://localhost:5173"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		respondWithJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	router.Route("/api/v1", func(r chi.Router) {
		r.Post("/admin-auth/login", s.handleLogin)
		r.Post("/admin-auth/logout", s.handleLogout)

		// Everything else requires an admin session.
		r.Group(func(r chi.Router) {
			r.Use(s.requireAdmin)

			r.Get("/admin-auth/me", s.handleMe)

			r.Route("/category", func(r chi.Router) {
				r.Get("/", s.handleCategoryList)
				r.Get("/tree", s.handleCategoryTree)
				r.Get("/parent-categories", s.handleParentCategories)
				r.Post("/", s.handleCategoryCreate)
				r.Put("/{id}", s.handleCategoryUpdate)
				r.Delete("/{id}", s.handleCategoryDelete)
			})

			r.Route("/products", func(r chi.Router) {
				r.Get("/", s.handleProductList)
				r.Post("/", s.handleProductCreate)
				r.Put("/{id}", s.handleProductUpdate)
				r.Delete("/{id}", s.handleProductDelete)
			})

			r.Route("/order", func(r chi.Router) {
				r.Get("/", s.handleOrderList)
				r.Put("/{id}/status", s.handleOrderStatus)
				r.Delete("/{id}", s.handleOrderDelete)
			})

			r.Route("/users", func(r chi.Router) {
				r.Get("/", s.handleUserList)
				r.Put("/{id}/status", s.handleUserStatus)
				r.Delete("/{id}", s.handleUserDelete)
			})
		})
	})

	return s, router
}

// requestLogger logs one line per completed request.
func requestLogger(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			requestID := middleware.GetReqID(r.Context())
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			logger.Info("Request completed",
				zap.String("request_id", requestID),
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Duration("duration", time.Since(start)),
			)
		})
	}
}
