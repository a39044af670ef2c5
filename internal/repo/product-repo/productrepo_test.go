package productrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/atlanticleather/storefront/internal/domain"
	"github.com/atlanticleather/storefront/internal/pg"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface, *pg.MockTXManager) {
	ctrl := gomock.NewController(t)
	mockTxManager := pg.NewMockTXManager(ctrl)

	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB, mockTxManager)
	defer mockDB.Close()
	defer ctrl.Finish()

	return repo, mockDB, mockTxManager
}

func inTransaction(txManager *pg.MockTXManager) {
	txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		})
}

var productColumns = []string{
	"id", "category_id", "name", "description", "price",
	"stock_quantity", "is_active", "created_at", "updated_at",
}

func TestRepository_Create(t *testing.T) {
	repo, mock, txManager := NewMock(t)
	// Collection tables are rewritten in map iteration order.
	mock.MatchExpectationsInOrder(false)

	query := regexp.QuoteMeta(`
        INSERT INTO products (category_id, name, description, price, stock_quantity, is_active)
        VALUES ($1, $2, $3, $4, $5, TRUE)
        RETURNING id, created_at, updated_at
    `)

	now := time.Now()
	categoryID := 3

	t.Run("Product and collections created", func(t *testing.T) {
		inTransaction(txManager)
		product := &domain.Product{
			CategoryID:    &categoryID,
			Name:          "Leather Boots",
			Price:         100,
			StockQuantity: 4,
			Images:        []string{"https://cdn.example.com/boots.jpg"},
			Colors:        []string{"brown"},
		}

		mock.ExpectQuery(query).
			WithArgs(&categoryID, "Leather Boots", "", 100.0, 4).
			WillReturnRows(pgxmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(10, now, now))
		for _, table := range []string{"product_images", "product_colors", "product_sizes", "product_features"} {
			mock.ExpectExec(regexp.QuoteMeta("DELETE FROM "+table+" WHERE product_id = $1")).
				WithArgs(10).WillReturnResult(pgxmock.NewResult("DELETE", 0))
		}
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO product_images (product_id, url) VALUES ($1, $2)")).
			WithArgs(10, "https://cdn.example.com/boots.jpg").
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO product_colors (product_id, name) VALUES ($1, $2)")).
			WithArgs(10, "brown").
			WillReturnResult(pgxmock.NewResult("INSERT", 1))

		created, err := repo.Create(context.Background(), product)
		assert.NoError(t, err)
		assert.Equal(t, 10, created.ID)
		assert.True(t, created.IsActive)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Database error", func(t *testing.T) {
		inTransaction(txManager)
		mock.ExpectQuery(query).
			WithArgs((*int)(nil), "Belt", "", 50.0, 0).
			WillReturnError(errors.New("database error"))

		created, err := repo.Create(context.Background(), &domain.Product{Name: "Belt", Price: 50})
		assert.Error(t, err)
		assert.Nil(t, created)
	})
}

func TestRepository_GetByID(t *testing.T) {
	repo, mock, _ := NewMock(t)

	query := regexp.QuoteMeta(`
        SELECT id, category_id, name, description, price, stock_quantity, is_active, created_at, updated_at
        FROM products
        WHERE id = $1
    `)

	now := time.Now()
	categoryID := 3

	t.Run("Product found with collections", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(10).WillReturnRows(
			pgxmock.NewRows(productColumns).
				AddRow(10, &categoryID, "Leather Boots", "", 100.0, 4, true, now, now))
		mock.ExpectQuery(regexp.QuoteMeta("SELECT url FROM product_images WHERE product_id = $1 ORDER BY id")).
			WithArgs(10).
			WillReturnRows(pgxmock.NewRows([]string{"url"}).AddRow("https://cdn.example.com/boots.jpg"))
		mock.ExpectQuery(regexp.QuoteMeta("SELECT name FROM product_colors WHERE product_id = $1 ORDER BY id")).
			WithArgs(10).
			WillReturnRows(pgxmock.NewRows([]string{"name"}).AddRow("brown").AddRow("black"))
		mock.ExpectQuery(regexp.QuoteMeta("SELECT name FROM product_sizes WHERE product_id = $1 ORDER BY id")).
			WithArgs(10).
			WillReturnRows(pgxmock.NewRows([]string{"name"}))
		mock.ExpectQuery(regexp.QuoteMeta("SELECT name FROM product_features WHERE product_id = $1 ORDER BY id")).
			WithArgs(10).
			WillReturnRows(pgxmock.NewRows([]string{"name"}))

		product, err := repo.GetByID(context.Background(), 10)
		assert.NoError(t, err)
		assert.Equal(t, "Leather Boots", product.Name)
		assert.Equal(t, []string{"https://cdn.example.com/boots.jpg"}, product.Images)
		assert.Equal(t, []string{"brown", "black"}, product.Colors)
		assert.Empty(t, product.Sizes)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Missing product returns nil", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(99).WillReturnError(pgx.ErrNoRows)

		product, err := repo.GetByID(context.Background(), 99)
		assert.NoError(t, err)
		assert.Nil(t, product)
	})
}

func TestRepository_List(t *testing.T) {
	repo, mock, _ := NewMock(t)

	query := regexp.QuoteMeta(`
        SELECT id, category_id, name, description, price, stock_quantity, is_active, created_at, updated_at
        FROM products
        WHERE ($1 = 0 OR category_id = $1)
          AND ($2 = '' OR name ILIKE '%' || $2 || '%')
          AND (NOT $3 OR is_active)
        ORDER BY created_at DESC
        LIMIT $4 OFFSET $5
    `)

	now := time.Now()
	categoryID := 3

	t.Run("Filters are forwarded", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(3, "boots", true, 50, 0).WillReturnRows(
			pgxmock.NewRows(productColumns).
				AddRow(10, &categoryID, "Leather Boots", "", 100.0, 4, true, now, now))

		products, err := repo.List(context.Background(), 3, "boots", true, 50, 0)
		assert.NoError(t, err)
		assert.Len(t, products, 1)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(0, "", false, 50, 0).WillReturnError(errors.New("database error"))

		products, err := repo.List(context.Background(), 0, "", false, 50, 0)
		assert.Error(t, err)
		assert.Nil(t, products)
	})
}

func TestRepository_SoftDelete(t *testing.T) {
	repo, mock, _ := NewMock(t)

	query := regexp.QuoteMeta(`
        UPDATE products
        SET is_active = FALSE, updated_at = now()
        WHERE id = $1
    `)

	mock.ExpectExec(query).WithArgs(10).WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	assert.NoError(t, repo.SoftDelete(context.Background(), 10))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_DecrementStock(t *testing.T) {
	repo, mock, _ := NewMock(t)

	query := regexp.QuoteMeta(`
        UPDATE products
        SET stock_quantity = stock_quantity - $1, updated_at = now()
        WHERE id = $2 AND stock_quantity >= $1
    `)

	t.Run("Enough stock", func(t *testing.T) {
		mock.ExpectExec(query).WithArgs(3, 10).WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		ok, err := repo.DecrementStock(context.Background(), 10, 3)
		assert.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("Not enough stock leaves the row untouched", func(t *testing.T) {
		mock.ExpectExec(query).WithArgs(10, 10).WillReturnResult(pgxmock.NewResult("UPDATE", 0))

		ok, err := repo.DecrementStock(context.Background(), 10, 10)
		assert.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectExec(query).WithArgs(3, 10).WillReturnError(errors.New("database error"))

		ok, err := repo.DecrementStock(context.Background(), 10, 3)
		assert.Error(t, err)
		assert.False(t, ok)
	})
}

func TestRepository_ListBelowStock(t *testing.T) {
	repo, mock, _ := NewMock(t)

	query := regexp.QuoteMeta(`
        SELECT id, category_id, name, description, price, stock_quantity, is_active, created_at, updated_at
        FROM products
        WHERE is_active AND stock_quantity < $1
        ORDER BY stock_quantity ASC
    `)

	now := time.Now()

	mock.ExpectQuery(query).WithArgs(5).WillReturnRows(
		pgxmock.NewRows(productColumns).
			AddRow(10, (*int)(nil), "Leather Boots", "", 100.0, 2, true, now, now).
			AddRow(11, (*int)(nil), "Belt", "", 50.0, 4, true, now, now))

	products, err := repo.ListBelowStock(context.Background(), 5)
	assert.NoError(t, err)
	assert.Len(t, products, 2)
	assert.Equal(t, 2, products[0].StockQuantity)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Counts(t *testing.T) {
	repo, mock, _ := NewMock(t)

	t.Run("CountActive", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM products WHERE is_active`)).
			WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(12))

		count, err := repo.CountActive(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, 12, count)
	})

	t.Run("CountBelowStock", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM products WHERE is_active AND stock_quantity < $1`)).
			WithArgs(5).
			WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(2))

		count, err := repo.CountBelowStock(context.Background(), 5)
		assert.NoError(t, err)
		assert.Equal(t, 2, count)
	})
}
