package service

import (
	"github.com/atlanticleather/storefront/internal/handlers/auth"
	"github.com/atlanticleather/storefront/internal/handlers/balance"
	"github.com/atlanticleather/storefront/internal/handlers/notifications"
	"github.com/atlanticleather/storefront/internal/handlers/orders"
	"github.com/atlanticleather/storefront/internal/handlers/products"
	"github.com/atlanticleather/storefront/internal/handlers/reports"

	pkgauth "github.com/atlanticleather/storefront/pkg/auth"

	"github.com/atlanticleather/storefront/internal/cache"
	"github.com/atlanticleather/storefront/internal/pg"
	"github.com/atlanticleather/storefront/internal/repo"
	authservice "github.com/atlanticleather/storefront/internal/service/authservice"
	balanceservice "github.com/atlanticleather/storefront/internal/service/balanceservice"
	notificationservice "github.com/atlanticleather/storefront/internal/service/notificationservice"
	orderservice "github.com/atlanticleather/storefront/internal/service/orderservice"
	productservice "github.com/atlanticleather/storefront/internal/service/productservice"
	reportservice "github.com/atlanticleather/storefront/internal/service/reportservice"
)

type Services struct {
	AuthService         auth.Service
	OrderService        orders.Service
	ProductService      products.Service
	BalanceService      balance.Service
	ReportService       reports.Service
	NotificationService notifications.Service
}

func New(
	repo *repo.Repositories,
	txManager pg.TXManager,
	notifier orderservice.Notifier,
	c cache.Cache,
	jwtService pkgauth.JWTServiceInterface,
) *Services {
	authService := authservice.New(repo.UserRepo, &pkgauth.HashService{}, jwtService)
	orderService := orderservice.New(
		repo.OrderRepo,
		repo.ProductRepo,
		repo.CategoryRepo,
		repo.BalanceRepo,
		repo.TransactionRepo,
		txManager,
		notifier,
	)
	productService := productservice.New(repo.ProductRepo, repo.CategoryRepo)
	balanceService := balanceservice.New(repo.BalanceRepo, repo.TransactionRepo, txManager)
	reportService := reportservice.New(repo.OrderRepo, repo.ProductRepo, repo.NotificationRepo, c)
	notificationService := notificationservice.New(repo.NotificationRepo)

	return &Services{
		AuthService:         authService,
		OrderService:        orderService,
		ProductService:      productService,
		BalanceService:      balanceService,
		ReportService:       reportService,
		NotificationService: notificationService,
	}
}
