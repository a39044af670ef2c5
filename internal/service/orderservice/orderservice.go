package orderservice

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/atlanticleather/storefront/internal/domain"
	"github.com/atlanticleather/storefront/internal/dto"
	"github.com/atlanticleather/storefront/internal/pg"
)

type OrderRepo interface {
	Save(ctx context.Context, order *domain.Order) error
	FindByID(ctx context.Context, id int) (*domain.Order, error)
	List(ctx context.Context, status domain.OrderStatus, limit, offset int) ([]domain.Order, error)
	UpdateStatus(ctx context.Context, id int, status domain.OrderStatus) error
	UpdateAdminFields(ctx context.Context, id int, adminNotes, paymentStatus *string) error
}

type ProductRepo interface {
	GetByID(ctx context.Context, id int) (*domain.Product, error)
	DecrementStock(ctx context.Context, productID, quantity int) (bool, error)
}

type CategoryRepo interface {
	GetByID(ctx context.Context, id int) (*domain.Category, error)
}

type BalanceRepo interface {
	GetBalance(ctx context.Context, adminID int) (*domain.Balance, error)
	CreateBalance(ctx context.Context, adminID int) (*domain.Balance, error)
	Credit(ctx context.Context, adminID int, amount float64) (*domain.Balance, error)
}

type TransactionRepo interface {
	Create(ctx context.Context, transaction *domain.Transaction) (*domain.Transaction, error)
}

// Notifier enqueues events for out-of-band delivery. Calls never block and
// never fail the request that triggered them.
type Notifier interface {
	OrderCreated(order *domain.Order)
	OrderConfirmed(order *domain.Order)
}

type Service struct {
	orderRepo       OrderRepo
	productRepo     ProductRepo
	categoryRepo    CategoryRepo
	balanceRepo     BalanceRepo
	transactionRepo TransactionRepo
	txManager       pg.TXManager
	notifier        Notifier
}

func New(
	orderRepo OrderRepo,
	productRepo ProductRepo,
	categoryRepo CategoryRepo,
	balanceRepo BalanceRepo,
	transactionRepo TransactionRepo,
	txManager pg.TXManager,
	notifier Notifier,
) *Service {
	return &Service{
		orderRepo:       orderRepo,
		productRepo:     productRepo,
		categoryRepo:    categoryRepo,
		balanceRepo:     balanceRepo,
		transactionRepo: transactionRepo,
		txManager:       txManager,
		notifier:        notifier,
	}
}

var (
	ErrOrderNotFound     = errors.New("order not found")
	ErrInvalidTransition = errors.New("order is not in a valid state for this operation")
	ErrProductNotFound   = errors.New("product not found")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrUnknownStatus     = errors.New("unknown order status")
)

const defaultPaymentStatus = "unpaid"

// CreateOrder persists the order and all its line items atomically. Item
// rows snapshot the product's name, image and category so later catalog
// edits never rewrite order history. Unit prices come from the payload;
// only the total is derived server-side. Stock is untouched here — it is
// reserved at confirmation.
func (s *Service) CreateOrder(ctx context.Context, req *dto.CreateOrderRequestDTO) (*domain.Order, error) {
	order := &domain.Order{
		OrderNumber:     uuid.NewString(),
		CustomerName:    req.CustomerName,
		CustomerEmail:   req.CustomerEmail,
		CustomerPhone:   req.CustomerPhone,
		ShippingAddress: req.ShippingAddress,
		Status:          domain.OrderPending,
		PaymentStatus:   defaultPaymentStatus,
		Notes:           req.Notes,
	}

	for _, item := range req.Items {
		product, err := s.productRepo.GetByID(ctx, item.ProductID)
		if err != nil {
			return nil, err
		}
		if product == nil || !product.IsActive {
			return nil, fmt.Errorf("%w: id %d", ErrProductNotFound, item.ProductID)
		}

		var image string
		if len(product.Images) > 0 {
			image = product.Images[0]
		}
		var categoryName string
		if product.CategoryID != nil {
			category, err := s.categoryRepo.GetByID(ctx, *product.CategoryID)
			if err != nil {
				return nil, err
			}
			if category != nil {
				categoryName = category.Name
			}
		}

		order.Items = append(order.Items, domain.OrderItem{
			ProductID:       product.ID,
			ProductName:     product.Name,
			ProductImage:    image,
			ProductCategory: categoryName,
			UnitPrice:       item.UnitPrice,
			Quantity:        item.Quantity,
			Size:            item.Size,
			Color:           item.Color,
		})
		order.TotalAmount += item.UnitPrice * float64(item.Quantity)
	}

	if err := s.orderRepo.Save(ctx, order); err != nil {
		zap.L().Error("can't save order", zap.Error(err))
		return nil, err
	}

	s.notifier.OrderCreated(order)

	zap.L().Info("order created",
		zap.String("order_number", order.OrderNumber),
		zap.Float64("total", order.TotalAmount),
	)
	return order, nil
}

func (s *Service) GetOrder(ctx context.Context, id int) (*domain.Order, error) {
	order, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

func (s *Service) ListOrders(ctx context.Context, status string, limit, offset int) ([]domain.Order, error) {
	if status != "" && !domain.OrderStatus(status).Valid() {
		return nil, ErrUnknownStatus
	}
	orders, err := s.orderRepo.List(ctx, domain.OrderStatus(status), limit, offset)
	if err != nil {
		zap.L().Error("failed to get orders", zap.Error(err))
		return nil, err
	}
	return orders, nil
}

// Confirm reserves stock for a pending order. The stock checks and
// decrements run inside one transaction; if any single item cannot be
// covered the whole operation rolls back and no stock changes at all.
func (s *Service) Confirm(ctx context.Context, id int) (*domain.Order, error) {
	var confirmed *domain.Order
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		order, err := s.orderRepo.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if order == nil {
			return ErrOrderNotFound
		}
		if !order.Status.CanTransitionTo(domain.OrderConfirmed) {
			return ErrInvalidTransition
		}

		for _, item := range order.Items {
			ok, err := s.productRepo.DecrementStock(ctx, item.ProductID, item.Quantity)
			if err != nil {
				return err
			}
			if !ok {
				product, err := s.productRepo.GetByID(ctx, item.ProductID)
				if err != nil {
					return err
				}
				if product == nil {
					return fmt.Errorf("%w: id %d", ErrProductNotFound, item.ProductID)
				}
				return fmt.Errorf("%w: %q has %d left, %d requested",
					ErrInsufficientStock, product.Name, product.StockQuantity, item.Quantity)
			}
		}

		if err := s.orderRepo.UpdateStatus(ctx, order.ID, domain.OrderConfirmed); err != nil {
			return err
		}
		order.Status = domain.OrderConfirmed
		confirmed = order
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Email is deliberately outside the transaction; a failed send never
	// rolls back the stock reservation.
	s.notifier.OrderConfirmed(confirmed)

	zap.L().Info("order confirmed", zap.Int("order_id", confirmed.ID))
	return confirmed, nil
}

// MarkSold credits the acting admin's balance with the order total and
// appends the ledger row, all in one transaction with the status flip.
// There is no reversal.
func (s *Service) MarkSold(ctx context.Context, id, adminID int) (*domain.Order, *domain.Transaction, error) {
	var (
		sold   *domain.Order
		ledger *domain.Transaction
	)
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		order, err := s.orderRepo.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if order == nil {
			return ErrOrderNotFound
		}
		if !order.Status.CanTransitionTo(domain.OrderSold) {
			return ErrInvalidTransition
		}

		balance, err := s.balanceRepo.GetBalance(ctx, adminID)
		if err != nil {
			return err
		}
		if balance == nil {
			if _, err := s.balanceRepo.CreateBalance(ctx, adminID); err != nil {
				return err
			}
		}

		updated, err := s.balanceRepo.Credit(ctx, adminID, order.TotalAmount)
		if err != nil {
			return err
		}

		orderID := order.ID
		ledger, err = s.transactionRepo.Create(ctx, &domain.Transaction{
			AdminID:       adminID,
			OrderID:       &orderID,
			Type:          domain.TransactionSale,
			Amount:        order.TotalAmount,
			BalanceBefore: updated.CurrentBalance - order.TotalAmount,
			BalanceAfter:  updated.CurrentBalance,
		})
		if err != nil {
			return err
		}

		if err := s.orderRepo.UpdateStatus(ctx, order.ID, domain.OrderSold); err != nil {
			return err
		}
		order.Status = domain.OrderSold
		sold = order
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	zap.L().Info("order marked sold",
		zap.Int("order_id", sold.ID),
		zap.Float64("amount", sold.TotalAmount),
	)
	return sold, ledger, nil
}

func (s *Service) Cancel(ctx context.Context, id int) (*domain.Order, error) {
	var cancelled *domain.Order
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		order, err := s.orderRepo.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if order == nil {
			return ErrOrderNotFound
		}
		if !order.Status.CanTransitionTo(domain.OrderCancelled) {
			return ErrInvalidTransition
		}
		if err := s.orderRepo.UpdateStatus(ctx, order.ID, domain.OrderCancelled); err != nil {
			return err
		}
		order.Status = domain.OrderCancelled
		cancelled = order
		return nil
	})
	if err != nil {
		return nil, err
	}
	return cancelled, nil
}

func (s *Service) UpdateAdminFields(ctx context.Context, id int, req *dto.UpdateOrderRequestDTO) (*domain.Order, error) {
	order, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	if err := s.orderRepo.UpdateAdminFields(ctx, id, req.AdminNotes, req.PaymentStatus); err != nil {
		return nil, err
	}
	if req.AdminNotes != nil {
		order.AdminNotes = *req.AdminNotes
	}
	if req.PaymentStatus != nil {
		order.PaymentStatus = *req.PaymentStatus
	}
	return order, nil
}
