package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"pharmacy_store/internal/api/handler"
	"pharmacy_store/internal/api/middleware"
	"pharmacy_store/internal/app/service"
)

func NewRouter(
	logger *slog.Logger,
	allowedOrigins []string,
	authService *service.AuthService,
	productService *service.ProductService,
	orderService *service.OrderService,
) http.Handler {
	r := chi.NewRouter()

	// Base Middlewares
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(middleware.RequestLogger(logger))
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Timeout(60 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"*"},
		MaxAge:         300,
	}))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	authHandler := handler.NewAuthHandler(authService)
	r.Group(authHandler.RegisterRoutes)

	productHandler := handler.NewProductHandler(productService)
	r.Route("/products", productHandler.RegisterRoutes)

	orderHandler := handler.NewOrderHandler(orderService)
	r.Route("/orders", orderHandler.RegisterRoutes)

	return r
}
