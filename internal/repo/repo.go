package repo

import (
	"github.com/atlanticleather/storefront/internal/pg"
	balancerepo "github.com/atlanticleather/storefront/internal/repo/balance-repo"
	categoryrepo "github.com/atlanticleather/storefront/internal/repo/category-repo"
	notificationrepo "github.com/atlanticleather/storefront/internal/repo/notification-repo"
	orderrepo "github.com/atlanticleather/storefront/internal/repo/order-repo"
	productrepo "github.com/atlanticleather/storefront/internal/repo/product-repo"
	transactionrepo "github.com/atlanticleather/storefront/internal/repo/transaction-repo"
	userrepo "github.com/atlanticleather/storefront/internal/repo/user-repo"
)

type Repositories struct {
	UserRepo         *userrepo.Repository
	OrderRepo        *orderrepo.Repository
	ProductRepo      *productrepo.Repository
	CategoryRepo     *categoryrepo.Repository
	BalanceRepo      *balancerepo.Repository
	TransactionRepo  *transactionrepo.Repository
	NotificationRepo *notificationrepo.Repository
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	return &Repositories{
		UserRepo:         userrepo.New(conn),
		OrderRepo:        orderrepo.New(conn, txManager),
		ProductRepo:      productrepo.New(conn, txManager),
		CategoryRepo:     categoryrepo.New(conn),
		BalanceRepo:      balancerepo.New(conn),
		TransactionRepo:  transactionrepo.New(conn),
		NotificationRepo: notificationrepo.New(conn),
	}
}
