package orderrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/atlanticleather/storefront/internal/domain"
	"github.com/atlanticleather/storefront/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

// Save inserts the order and all its items atomically. A failed item insert
// rolls back the whole order.
func (r *Repository) Save(ctx context.Context, order *domain.Order) error {
	orderQuery := `
        INSERT INTO orders (order_number, customer_name, customer_email, customer_phone,
                            shipping_address, total_amount, status, payment_status, notes, admin_notes)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
        RETURNING id, created_at, updated_at
    `
	itemQuery := `
        INSERT INTO order_items (order_id, product_id, product_name, product_image,
                                 product_category, unit_price, quantity, size, color)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
    `
	return r.txManager.Begin(ctx, func(ctx context.Context) error {
		row := r.db.QueryRow(ctx, orderQuery,
			order.OrderNumber, order.CustomerName, order.CustomerEmail, order.CustomerPhone,
			order.ShippingAddress, order.TotalAmount, order.Status, order.PaymentStatus,
			order.Notes, order.AdminNotes,
		)
		if err := row.Scan(&order.ID, &order.CreatedAt, &order.UpdatedAt); err != nil {
			zap.L().Error("can't save order", zap.Error(err))
			return err
		}
		for i := range order.Items {
			item := &order.Items[i]
			item.OrderID = order.ID
			_, err := r.db.Exec(ctx, itemQuery,
				item.OrderID, item.ProductID, item.ProductName, item.ProductImage,
				item.ProductCategory, item.UnitPrice, item.Quantity, item.Size, item.Color,
			)
			if err != nil {
				zap.L().Error("can't save order item", zap.Int("product_id", item.ProductID), zap.Error(err))
				return err
			}
		}
		return nil
	})
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.Order, error) {
	query := `
        SELECT id, order_number, customer_name, customer_email, customer_phone,
               shipping_address, total_amount, status, payment_status, notes, admin_notes,
               created_at, updated_at
        FROM orders
        WHERE id = $1
    `
	row := r.db.QueryRow(ctx, query, id)

	var order domain.Order
	err := row.Scan(
		&order.ID, &order.OrderNumber, &order.CustomerName, &order.CustomerEmail,
		&order.CustomerPhone, &order.ShippingAddress, &order.TotalAmount, &order.Status,
		&order.PaymentStatus, &order.Notes, &order.AdminNotes, &order.CreatedAt, &order.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find order", zap.Error(err))
		return nil, err
	}

	items, err := r.findItems(ctx, order.ID)
	if err != nil {
		return nil, err
	}
	order.Items = items
	return &order, nil
}

func (r *Repository) findItems(ctx context.Context, orderID int) ([]domain.OrderItem, error) {
	query := `
        SELECT id, order_id, product_id, product_name, product_image,
               product_category, unit_price, quantity, size, color
        FROM order_items
        WHERE order_id = $1
        ORDER BY id
    `
	rows, err := r.db.Query(ctx, query, orderID)
	if err != nil {
		zap.L().Error("can't get order items", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var items []domain.OrderItem
	for rows.Next() {
		var item domain.OrderItem
		err := rows.Scan(
			&item.ID, &item.OrderID, &item.ProductID, &item.ProductName, &item.ProductImage,
			&item.ProductCategory, &item.UnitPrice, &item.Quantity, &item.Size, &item.Color,
		)
		if err != nil {
			zap.L().Error("can't scan order item row", zap.Error(err))
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

func (r *Repository) List(ctx context.Context, status domain.OrderStatus, limit, offset int) ([]domain.Order, error) {
	query := `
        SELECT id, order_number, customer_name, customer_email, customer_phone,
               shipping_address, total_amount, status, payment_status, notes, admin_notes,
               created_at, updated_at
        FROM orders
        WHERE ($1 = '' OR status = $1)
        ORDER BY created_at DESC
        LIMIT $2 OFFSET $3
    `
	rows, err := r.db.Query(ctx, query, string(status), limit, offset)
	if err != nil {
		zap.L().Error("can't get orders", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		var order domain.Order
		err := rows.Scan(
			&order.ID, &order.OrderNumber, &order.CustomerName, &order.CustomerEmail,
			&order.CustomerPhone, &order.ShippingAddress, &order.TotalAmount, &order.Status,
			&order.PaymentStatus, &order.Notes, &order.AdminNotes, &order.CreatedAt, &order.UpdatedAt,
		)
		if err != nil {
			zap.L().Error("can't scan order row", zap.Error(err))
			return nil, err
		}
		orders = append(orders, order)
	}
	return orders, nil
}

func (r *Repository) UpdateStatus(ctx context.Context, id int, status domain.OrderStatus) error {
	query := `
        UPDATE orders
        SET status = $1, updated_at = now()
        WHERE id = $2
    `
	_, err := r.db.Exec(ctx, query, status, id)
	if err != nil {
		zap.L().Error("failed to update order status", zap.Int("order_id", id), zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) UpdateAdminFields(ctx context.Context, id int, adminNotes, paymentStatus *string) error {
	query := `
        UPDATE orders
        SET admin_notes = COALESCE($1, admin_notes),
            payment_status = COALESCE($2, payment_status),
            updated_at = now()
        WHERE id = $3
    `
	_, err := r.db.Exec(ctx, query, adminNotes, paymentStatus, id)
	if err != nil {
		zap.L().Error("failed to update order", zap.Int("order_id", id), zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) CountByStatus(ctx context.Context) (map[string]int, error) {
	query := `
        SELECT status, COUNT(*)
        FROM orders
        GROUP BY status
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't count orders by status", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var status string
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			zap.L().Error("can't scan status count row", zap.Error(err))
			return nil, err
		}
		counts[status] = count
	}
	return counts, nil
}

func (r *Repository) RevenueTotal(ctx context.Context) (float64, error) {
	query := `
        SELECT COALESCE(SUM(total_amount), 0)
        FROM orders
        WHERE status = 'sold'
    `
	var total float64
	if err := r.db.QueryRow(ctx, query).Scan(&total); err != nil {
		zap.L().Error("can't sum revenue", zap.Error(err))
		return 0, err
	}
	return total, nil
}
