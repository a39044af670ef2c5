package transactionrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"

	"github.com/atlanticleather/storefront/internal/domain"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)

	query := regexp.QuoteMeta(`
        INSERT INTO transactions (admin_id, order_id, type, amount, balance_before, balance_after)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id, created_at
    `)

	orderID := 12
	now := time.Now()

	t.Run("Persists the ledger row", func(t *testing.T) {
		rows := pgxmock.NewRows([]string{"id", "created_at"}).AddRow(5, now)
		mock.ExpectQuery(query).
			WithArgs(7, &orderID, domain.TransactionSale, 350.0, 100.0, 450.0).
			WillReturnRows(rows)

		created, err := repo.Create(context.Background(), &domain.Transaction{
			AdminID:       7,
			OrderID:       &orderID,
			Type:          domain.TransactionSale,
			Amount:        350,
			BalanceBefore: 100,
			BalanceAfter:  450,
		})
		assert.NoError(t, err)
		assert.Equal(t, 5, created.ID)
		assert.Equal(t, now, created.CreatedAt)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(7, (*int)(nil), domain.TransactionWithdrawal, -40.0, 100.0, 60.0).
			WillReturnError(errors.New("database error"))

		created, err := repo.Create(context.Background(), &domain.Transaction{
			AdminID:       7,
			Type:          domain.TransactionWithdrawal,
			Amount:        -40,
			BalanceBefore: 100,
			BalanceAfter:  60,
		})
		assert.Error(t, err)
		assert.Nil(t, created)
	})
}

func TestRepository_ListByAdmin(t *testing.T) {
	repo, mock := NewMock(t)

	query := regexp.QuoteMeta(`
        SELECT id, admin_id, order_id, type, amount, balance_before, balance_after, created_at
        FROM transactions
        WHERE admin_id = $1
        ORDER BY created_at DESC
        LIMIT $2
    `)

	now := time.Now()
	orderID := 12

	t.Run("Returns rows newest first", func(t *testing.T) {
		rows := pgxmock.NewRows([]string{"id", "admin_id", "order_id", "type", "amount", "balance_before", "balance_after", "created_at"}).
			AddRow(2, 7, (*int)(nil), domain.TransactionWithdrawal, -40.0, 450.0, 410.0, now).
			AddRow(1, 7, &orderID, domain.TransactionSale, 350.0, 100.0, 450.0, now.Add(-time.Hour))
		mock.ExpectQuery(query).WithArgs(7, 100).WillReturnRows(rows)

		transactions, err := repo.ListByAdmin(context.Background(), 7, 100)
		assert.NoError(t, err)
		assert.Len(t, transactions, 2)
		assert.Equal(t, domain.TransactionWithdrawal, transactions[0].Type)
		assert.Equal(t, &orderID, transactions[1].OrderID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(7, 100).WillReturnError(errors.New("database error"))

		transactions, err := repo.ListByAdmin(context.Background(), 7, 100)
		assert.Error(t, err)
		assert.Nil(t, transactions)
	})
}
