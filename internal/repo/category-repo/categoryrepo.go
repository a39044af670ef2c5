package categoryrepo

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

func (r *Repository) Create(ctx context.Context, category *domain.Category) (*domain.Category, error) {
	query := `
        INSERT INTO categories (name, slug, description)
        VALUES ($1, $2, $3)
        RETURNING id
    `
	err := r.db.QueryRow(ctx, query, category.Name, category.Slug, category.Description).Scan(&category.ID)
	if err != nil {
		zap.L().Error("can't create category", zap.Error(err))
		return nil, err
	}
	return category, nil
}

func (r *Repository) Update(ctx context.Context, category *domain.Category) error {
	query := `
        UPDATE categories
        SET name = $1, slug = $2, description = $3
        WHERE id = $4
    `
	_, err := r.db.Exec(ctx, query, category.Name, category.Slug, category.Description, category.ID)
	if err != nil {
		zap.L().Error("can't update category", zap.Int("category_id", category.ID), zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) GetByID(ctx context.Context, id int) (*domain.Category, error) {
	query := `
        SELECT id, name, slug, description
        FROM categories
        WHERE id = $1
    `
	var category domain.Category
	err := r.db.QueryRow(ctx, query, id).Scan(&category.ID, &category.Name, &category.Slug, &category.Description)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find category", zap.Error(err))
		return nil, err
	}
	return &category, nil
}

func (r *Repository) List(ctx context.Context) ([]domain.Category, error) {
	query := `
        SELECT id, name, slug, description
        FROM categories
        ORDER BY name
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't list categories", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var categories []domain.Category
	for rows.Next() {
		var category domain.Category
		if err := rows.Scan(&category.ID, &category.Name, &category.Slug, &category.Description); err != nil {
			zap.L().Error("can't scan category row", zap.Error(err))
			return nil, err
		}
		categories = append(categories, category)
	}
	return categories, nil
}

func (r *Repository) Delete(ctx context.Context, id int) error {
	_, err := r.db.Exec(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		zap.L().Error("can't delete category", zap.Int("category_id", id), zap.Error(err))
		return err
	}
	return nil
}
