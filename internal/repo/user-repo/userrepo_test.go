package userrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

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

func TestRepository_FindByLogin(t *testing.T) {
	repo, mock := NewMock(t)

	query := regexp.QuoteMeta(`
        SELECT id, login, password_hash, role, created_at
        FROM users
        WHERE login = $1
    `)

	now := time.Now()

	t.Run("Existing login", func(t *testing.T) {
		rows := pgxmock.NewRows([]string{"id", "login", "password_hash", "role", "created_at"}).
			AddRow(1, "owner", "hashed", "admin", now)
		mock.ExpectQuery(query).WithArgs("owner").WillReturnRows(rows)

		user, err := repo.FindByLogin(context.Background(), "owner")
		assert.NoError(t, err)
		assert.Equal(t, 1, user.ID)
		assert.Equal(t, "admin", user.Role)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Unknown login returns nil", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs("ghost").WillReturnError(pgx.ErrNoRows)

		user, err := repo.FindByLogin(context.Background(), "ghost")
		assert.NoError(t, err)
		assert.Nil(t, user)
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs("owner").WillReturnError(errors.New("database error"))

		user, err := repo.FindByLogin(context.Background(), "owner")
		assert.Error(t, err)
		assert.Nil(t, user)
	})
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)

	query := regexp.QuoteMeta(`
        INSERT INTO users (login, password_hash, role)
        VALUES ($1, $2, $3)
        RETURNING id, created_at
    `)

	now := time.Now()

	t.Run("User created", func(t *testing.T) {
		rows := pgxmock.NewRows([]string{"id", "created_at"}).AddRow(1, now)
		mock.ExpectQuery(query).WithArgs("owner", "hashed", "admin").WillReturnRows(rows)

		user, err := repo.Create(context.Background(), &domain.User{
			Login:        "owner",
			PasswordHash: "hashed",
			Role:         "admin",
		})
		assert.NoError(t, err)
		assert.Equal(t, 1, user.ID)
		assert.Equal(t, now, user.CreatedAt)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Duplicate login", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs("owner", "hashed", "admin").
			WillReturnError(errors.New("duplicate key value violates unique constraint"))

		user, err := repo.Create(context.Background(), &domain.User{
			Login:        "owner",
			PasswordHash: "hashed",
			Role:         "admin",
		})
		assert.Error(t, err)
		assert.Nil(t, user)
	})
}

func TestRepository_UpdatePassword(t *testing.T) {
	repo, mock := NewMock(t)

	query := regexp.QuoteMeta(`
        UPDATE users
        SET password_hash = $1
        WHERE id = $2
    `)

	t.Run("Password updated", func(t *testing.T) {
		mock.ExpectExec(query).WithArgs("new-hash", 1).WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		assert.NoError(t, repo.UpdatePassword(context.Background(), 1, "new-hash"))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectExec(query).WithArgs("new-hash", 1).WillReturnError(errors.New("database error"))
		assert.Error(t, repo.UpdatePassword(context.Background(), 1, "new-hash"))
	})
}
