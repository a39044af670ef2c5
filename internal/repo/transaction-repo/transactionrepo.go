package transactionrepo

import (
	"context"

	"github.com/atlanticleather/storefront/internal/domain"
	"github.com/atlanticleather/storefront/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Create(ctx context.Context, transaction *domain.Transaction) (*domain.Transaction, error) {
	query := `
        INSERT INTO transactions (admin_id, order_id, type, amount, balance_before, balance_after)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id, created_at
    `
	err := r.db.QueryRow(ctx, query,
		transaction.AdminID, transaction.OrderID, transaction.Type,
		transaction.Amount, transaction.BalanceBefore, transaction.BalanceAfter,
	).Scan(&transaction.ID, &transaction.CreatedAt)
	if err != nil {
		zap.L().Error("can't save transaction", zap.Error(err))
		return nil, err
	}
	return transaction, nil
}

func (r *Repository) ListByAdmin(ctx context.Context, adminID, limit int) ([]domain.Transaction, error) {
	query := `
        SELECT id, admin_id, order_id, type, amount, balance_before, balance_after, created_at
        FROM transactions
        WHERE admin_id = $1
        ORDER BY created_at DESC
        LIMIT $2
    `
	rows, err := r.db.Query(ctx, query, adminID, limit)
	if err != nil {
		zap.L().Error("failed to fetch transactions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var transactions []domain.Transaction
	for rows.Next() {
		var t domain.Transaction
		err := rows.Scan(&t.ID, &t.AdminID, &t.OrderID, &t.Type, &t.Amount, &t.BalanceBefore, &t.BalanceAfter, &t.CreatedAt)
		if err != nil {
			zap.L().Error("failed to scan transaction row", zap.Error(err))
			return nil, err
		}
		transactions = append(transactions, t)
	}

	return transactions, nil
}
