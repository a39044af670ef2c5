package categoryrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/jackc/pgx/v5"
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
        INSERT INTO categories (name, slug, description)
        VALUES ($1, $2, $3)
        RETURNING id
    `)

	t.Run("Category created", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs("Footwear", "footwear", "").
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(3))

		category, err := repo.Create(context.Background(), &domain.Category{Name: "Footwear", Slug: "footwear"})
		assert.NoError(t, err)
		assert.Equal(t, 3, category.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Duplicate slug", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs("Footwear", "footwear", "").
			WillReturnError(errors.New("duplicate key value violates unique constraint"))

		category, err := repo.Create(context.Background(), &domain.Category{Name: "Footwear", Slug: "footwear"})
		assert.Error(t, err)
		assert.Nil(t, category)
	})
}

func TestRepository_GetByID(t *testing.T) {
	repo, mock := NewMock(t)

	query := regexp.QuoteMeta(`
        SELECT id, name, slug, description
        FROM categories
        WHERE id = $1
    `)

	t.Run("Category found", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(3).WillReturnRows(
			pgxmock.NewRows([]string{"id", "name", "slug", "description"}).
				AddRow(3, "Footwear", "footwear", ""))

		category, err := repo.GetByID(context.Background(), 3)
		assert.NoError(t, err)
		assert.Equal(t, "Footwear", category.Name)
	})

	t.Run("Missing category returns nil", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(99).WillReturnError(pgx.ErrNoRows)

		category, err := repo.GetByID(context.Background(), 99)
		assert.NoError(t, err)
		assert.Nil(t, category)
	})
}

func TestRepository_List(t *testing.T) {
	repo, mock := NewMock(t)

	query := regexp.QuoteMeta(`
        SELECT id, name, slug, description
        FROM categories
        ORDER BY name
    `)

	mock.ExpectQuery(query).WillReturnRows(
		pgxmock.NewRows([]string{"id", "name", "slug", "description"}).
			AddRow(4, "Accessories", "accessories", "").
			AddRow(3, "Footwear", "footwear", ""))

	categories, err := repo.List(context.Background())
	assert.NoError(t, err)
	assert.Len(t, categories, 2)
	assert.Equal(t, "Accessories", categories[0].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Delete(t *testing.T) {
	repo, mock := NewMock(t)

	query := regexp.QuoteMeta(`DELETE FROM categories WHERE id = $1`)

	t.Run("Category deleted", func(t *testing.T) {
		mock.ExpectExec(query).WithArgs(3).WillReturnResult(pgxmock.NewResult("DELETE", 1))
		assert.NoError(t, repo.Delete(context.Background(), 3))
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectExec(query).WithArgs(3).WillReturnError(errors.New("database error"))
		assert.Error(t, repo.Delete(context.Background(), 3))
	})
}
