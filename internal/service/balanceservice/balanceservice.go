package balanceservice

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/atlanticleather/storefront/internal/domain"
	"github.com/atlanticleather/storefront/internal/pg"
)

type BalanceRepo interface {
	GetBalance(ctx context.Context, adminID int) (*domain.Balance, error)
	CreateBalance(ctx context.Context, adminID int) (*domain.Balance, error)
	Debit(ctx context.Context, adminID int, amount float64) (*domain.Balance, error)
}

type TransactionRepo interface {
	Create(ctx context.Context, transaction *domain.Transaction) (*domain.Transaction, error)
	ListByAdmin(ctx context.Context, adminID, limit int) ([]domain.Transaction, error)
}

type Service struct {
	balanceRepo     BalanceRepo
	transactionRepo TransactionRepo
	txManager       pg.TXManager
}

func New(balanceRepo BalanceRepo, transactionRepo TransactionRepo, txManager pg.TXManager) *Service {
	return &Service{
		balanceRepo:     balanceRepo,
		transactionRepo: transactionRepo,
		txManager:       txManager,
	}
}

var ErrInsufficientBalance = errors.New("insufficient balance")

const defaultTransactionLimit = 100

// GetBalance lazily creates the balance row on first access.
func (s *Service) GetBalance(ctx context.Context, adminID int) (*domain.Balance, error) {
	balance, err := s.balanceRepo.GetBalance(ctx, adminID)
	if err != nil {
		zap.L().Error("failed to get balance", zap.Error(err))
		return nil, err
	}
	if balance == nil {
		balance, err = s.balanceRepo.CreateBalance(ctx, adminID)
		if err != nil {
			zap.L().Error("failed to create balance", zap.Error(err))
			return nil, err
		}
	}
	return balance, nil
}

// Withdraw debits the balance and appends the ledger row atomically. The
// debit is a single conditional statement, so a concurrent withdrawal can
// never overdraw.
func (s *Service) Withdraw(ctx context.Context, adminID int, amount float64) (*domain.Transaction, error) {
	var ledger *domain.Transaction
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		if _, err := s.GetBalance(ctx, adminID); err != nil {
			return err
		}

		updated, err := s.balanceRepo.Debit(ctx, adminID, amount)
		if err != nil {
			return err
		}
		if updated == nil {
			return ErrInsufficientBalance
		}

		ledger, err = s.transactionRepo.Create(ctx, &domain.Transaction{
			AdminID:       adminID,
			Type:          domain.TransactionWithdrawal,
			Amount:        -amount,
			BalanceBefore: updated.CurrentBalance + amount,
			BalanceAfter:  updated.CurrentBalance,
		})
		return err
	})
	if err != nil {
		if !errors.Is(err, ErrInsufficientBalance) {
			zap.L().Error("failed to withdraw", zap.Error(err))
		}
		return nil, err
	}

	zap.L().Info("withdrawal processed", zap.Int("admin_id", adminID), zap.Float64("amount", amount))
	return ledger, nil
}

func (s *Service) ListTransactions(ctx context.Context, adminID, limit int) ([]domain.Transaction, error) {
	if limit <= 0 {
		limit = defaultTransactionLimit
	}
	transactions, err := s.transactionRepo.ListByAdmin(ctx, adminID, limit)
	if err != nil {
		zap.L().Error("failed to fetch transactions", zap.Error(err))
		return nil, err
	}
	return transactions, nil
}
