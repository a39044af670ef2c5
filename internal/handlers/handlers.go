package handlers

import (
	"net/http"

	_ "github.com/atlanticleather/storefront/docs"
	authhandlers "github.com/atlanticleather/storefront/internal/handlers/auth"
	balancehandlers "github.com/atlanticleather/storefront/internal/handlers/balance"
	notificationhandlers "github.com/atlanticleather/storefront/internal/handlers/notifications"
	ordershandlers "github.com/atlanticleather/storefront/internal/handlers/orders"
	producthandlers "github.com/atlanticleather/storefront/internal/handlers/products"
	reporthandlers "github.com/atlanticleather/storefront/internal/handlers/reports"
	"github.com/atlanticleather/storefront/internal/service"
	"github.com/atlanticleather/storefront/pkg/auth"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
	Refresh(w http.ResponseWriter, r *http.Request)
	ChangePassword(w http.ResponseWriter, r *http.Request)
}

type OrderHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Confirm(w http.ResponseWriter, r *http.Request)
	MarkSold(w http.ResponseWriter, r *http.Request)
	Cancel(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
}

type ProductHandler interface {
	CreateProduct(w http.ResponseWriter, r *http.Request)
	UpdateProduct(w http.ResponseWriter, r *http.Request)
	GetProduct(w http.ResponseWriter, r *http.Request)
	ListProducts(w http.ResponseWriter, r *http.Request)
	DeleteProduct(w http.ResponseWriter, r *http.Request)
	CreateCategory(w http.ResponseWriter, r *http.Request)
	UpdateCategory(w http.ResponseWriter, r *http.Request)
	ListCategories(w http.ResponseWriter, r *http.Request)
	DeleteCategory(w http.ResponseWriter, r *http.Request)
}

type BalanceHandler interface {
	GetBalance(w http.ResponseWriter, r *http.Request)
	Withdraw(w http.ResponseWriter, r *http.Request)
	ListTransactions(w http.ResponseWriter, r *http.Request)
}

type ReportHandler interface {
	Get(w http.ResponseWriter, r *http.Request)
}

type NotificationHandler interface {
	GetSettings(w http.ResponseWriter, r *http.Request)
	UpdateSettings(w http.ResponseWriter, r *http.Request)
	ListLogs(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler         AuthHandler
	OrderHandler        OrderHandler
	ProductHandler      ProductHandler
	BalanceHandler      BalanceHandler
	ReportHandler       ReportHandler
	NotificationHandler NotificationHandler

	mw *auth.Middleware
}

func New(s *service.Services, mw *auth.Middleware) *Handlers {
	return &Handlers{
		AuthHandler:         authhandlers.New(s.AuthService),
		OrderHandler:        ordershandlers.New(s.OrderService),
		ProductHandler:      producthandlers.New(s.ProductService),
		BalanceHandler:      balancehandlers.New(s.BalanceService),
		ReportHandler:       reporthandlers.New(s.ReportService),
		NotificationHandler: notificationhandlers.New(s.NotificationService),
		mw:                  mw,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", h.AuthHandler.Register)
			r.Post("/login", h.AuthHandler.Login)
			r.Post("/refresh", h.AuthHandler.Refresh)
		})

		// Storefront-facing surface, guarded by the shared API key.
		r.Route("/public", func(r chi.Router) {
			r.Use(h.mw.RequireAPIKey)
			r.Post("/orders", h.OrderHandler.Create)
			r.Get("/products", h.ProductHandler.ListProducts)
			r.Get("/products/{id}", h.ProductHandler.GetProduct)
			r.Get("/categories", h.ProductHandler.ListCategories)
		})

		r.Group(func(r chi.Router) {
			r.Use(h.mw.Authenticate, h.mw.RequireAdmin)

			r.Put("/admin/change-password", h.AuthHandler.ChangePassword)

			r.Route("/orders", func(r chi.Router) {
				r.Get("/", h.OrderHandler.List)
				r.Get("/{id}", h.OrderHandler.Get)
				r.Put("/{id}", h.OrderHandler.Update)
				r.Post("/{id}/confirm", h.OrderHandler.Confirm)
				r.Post("/{id}/mark-sold", h.OrderHandler.MarkSold)
				r.Post("/{id}/cancel", h.OrderHandler.Cancel)
			})
			r.Route("/products", func(r chi.Router) {
				r.Get("/", h.ProductHandler.ListProducts)
				r.Post("/", h.ProductHandler.CreateProduct)
				r.Get("/{id}", h.ProductHandler.GetProduct)
				r.Put("/{id}", h.ProductHandler.UpdateProduct)
				r.Delete("/{id}", h.ProductHandler.DeleteProduct)
			})
			r.Route("/categories", func(r chi.Router) {
				r.Get("/", h.ProductHandler.ListCategories)
				r.Post("/", h.ProductHandler.CreateCategory)
				r.Put("/{id}", h.ProductHandler.UpdateCategory)
				r.Delete("/{id}", h.ProductHandler.DeleteCategory)
			})
			r.Route("/balance", func(r chi.Router) {
				r.Get("/", h.BalanceHandler.GetBalance)
				r.Post("/withdraw", h.BalanceHandler.Withdraw)
			})
			r.Get("/transactions", h.BalanceHandler.ListTransactions)
			r.Get("/reports", h.ReportHandler.Get)
			r.Route("/notifications", func(r chi.Router) {
				r.Get("/settings", h.NotificationHandler.GetSettings)
				r.Put("/settings", h.NotificationHandler.UpdateSettings)
				r.Get("/logs", h.NotificationHandler.ListLogs)
			})
		})
	})

	return r
}
