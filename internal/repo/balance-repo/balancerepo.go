package balancerepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

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

func (r *Repository) GetBalance(ctx context.Context, adminID int) (*domain.Balance, error) {
	query := `
        SELECT id, admin_id, current_balance, total_earned, total_withdrawn
        FROM admin_balances
        WHERE admin_id = $1
    `
	row := r.db.QueryRow(ctx, query, adminID)
	var balance domain.Balance
	err := row.Scan(&balance.ID, &balance.AdminID, &balance.CurrentBalance, &balance.TotalEarned, &balance.TotalWithdrawn)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to get admin balance", zap.Error(err))
		return nil, err
	}
	return &balance, nil
}

func (r *Repository) CreateBalance(ctx context.Context, adminID int) (*domain.Balance, error) {
	query := `
        INSERT INTO admin_balances (admin_id, current_balance, total_earned, total_withdrawn)
        VALUES ($1, 0, 0, 0)
        RETURNING id, admin_id, current_balance, total_earned, total_withdrawn
    `
	row := r.db.QueryRow(ctx, query, adminID)
	var balance domain.Balance
	err := row.Scan(&balance.ID, &balance.AdminID, &balance.CurrentBalance, &balance.TotalEarned, &balance.TotalWithdrawn)
	if err != nil {
		zap.L().Error("failed to create admin balance", zap.Error(err))
		return nil, err
	}
	return &balance, nil
}

// Credit applies the amount in a single statement, so two concurrent credits
// can never lose an update.
func (r *Repository) Credit(ctx context.Context, adminID int, amount float64) (*domain.Balance, error) {
	query := `
        UPDATE admin_balances
        SET current_balance = current_balance + $1, total_earned = total_earned + $1
        WHERE admin_id = $2
        RETURNING id, admin_id, current_balance, total_earned, total_withdrawn
    `
	row := r.db.QueryRow(ctx, query, amount, adminID)
	var balance domain.Balance
	err := row.Scan(&balance.ID, &balance.AdminID, &balance.CurrentBalance, &balance.TotalEarned, &balance.TotalWithdrawn)
	if err != nil {
		zap.L().Error("failed to credit admin balance", zap.Error(err))
		return nil, err
	}
	return &balance, nil
}

// Debit mirrors Credit but refuses to take the balance negative. Returns
// nil without error when the funds are insufficient.
func (r *Repository) Debit(ctx context.Context, adminID int, amount float64) (*domain.Balance, error) {
	query := `
        UPDATE admin_balances
        SET current_balance = current_balance - $1, total_withdrawn = total_withdrawn + $1
        WHERE admin_id = $2 AND current_balance >= $1
        RETURNING id, admin_id, current_balance, total_earned, total_withdrawn
    `
	row := r.db.QueryRow(ctx, query, amount, adminID)
	var balance domain.Balance
	err := row.Scan(&balance.ID, &balance.AdminID, &balance.CurrentBalance, &balance.TotalEarned, &balance.TotalWithdrawn)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to debit admin balance", zap.Error(err))
		return nil, err
	}
	return &balance, nil
}
