package productrepo

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

var collectionTables = map[string]string{
	"images":   "product_images",
	"colors":   "product_colors",
	"sizes":    "product_sizes",
	"features": "product_features",
}

func (r *Repository) Create(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	query := `
        INSERT INTO products (category_id, name, description, price, stock_quantity, is_active)
        VALUES ($1, $2, $3, $4, $5, TRUE)
        RETURNING id, created_at, updated_at
    `
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		row := r.db.QueryRow(ctx, query,
			product.CategoryID, product.Name, product.Description, product.Price, product.StockQuantity,
		)
		if err := row.Scan(&product.ID, &product.CreatedAt, &product.UpdatedAt); err != nil {
			zap.L().Error("can't create product", zap.Error(err))
			return err
		}
		product.IsActive = true
		return r.replaceCollections(ctx, product)
	})
	if err != nil {
		return nil, err
	}
	return product, nil
}

func (r *Repository) Update(ctx context.Context, product *domain.Product) error {
	query := `
        UPDATE products
        SET category_id = $1, name = $2, description = $3, price = $4,
            stock_quantity = $5, is_active = $6, updated_at = now()
        WHERE id = $7
    `
	return r.txManager.Begin(ctx, func(ctx context.Context) error {
		_, err := r.db.Exec(ctx, query,
			product.CategoryID, product.Name, product.Description, product.Price,
			product.StockQuantity, product.IsActive, product.ID,
		)
		if err != nil {
			zap.L().Error("can't update product", zap.Int("product_id", product.ID), zap.Error(err))
			return err
		}
		return r.replaceCollections(ctx, product)
	})
}

func (r *Repository) replaceCollections(ctx context.Context, product *domain.Product) error {
	collections := map[string][]string{
		"images":   product.Images,
		"colors":   product.Colors,
		"sizes":    product.Sizes,
		"features": product.Features,
	}
	for name, values := range collections {
		table := collectionTables[name]
		if _, err := r.db.Exec(ctx, "DELETE FROM "+table+" WHERE product_id = $1", product.ID); err != nil {
			zap.L().Error("can't clear product collection", zap.String("table", table), zap.Error(err))
			return err
		}
		column := "name"
		if name == "images" {
			column = "url"
		}
		for _, v := range values {
			if _, err := r.db.Exec(ctx, "INSERT INTO "+table+" (product_id, "+column+") VALUES ($1, $2)", product.ID, v); err != nil {
				zap.L().Error("can't insert product collection row", zap.String("table", table), zap.Error(err))
				return err
			}
		}
	}
	return nil
}

func (r *Repository) GetByID(ctx context.Context, id int) (*domain.Product, error) {
	query := `
        SELECT id, category_id, name, description, price, stock_quantity, is_active, created_at, updated_at
        FROM products
        WHERE id = $1
    `
	row := r.db.QueryRow(ctx, query, id)

	var product domain.Product
	err := row.Scan(
		&product.ID, &product.CategoryID, &product.Name, &product.Description,
		&product.Price, &product.StockQuantity, &product.IsActive, &product.CreatedAt, &product.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find product", zap.Error(err))
		return nil, err
	}

	if err := r.loadCollections(ctx, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *Repository) loadCollections(ctx context.Context, product *domain.Product) error {
	load := func(table, column string) ([]string, error) {
		rows, err := r.db.Query(ctx, "SELECT "+column+" FROM "+table+" WHERE product_id = $1 ORDER BY id", product.ID)
		if err != nil {
			return nil, err
		}
		defer rows.Close()
		var values []string
		for rows.Next() {
			var v string
			if err := rows.Scan(&v); err != nil {
				return nil, err
			}
			values = append(values, v)
		}
		return values, nil
	}

	var err error
	if product.Images, err = load("product_images", "url"); err != nil {
		zap.L().Error("can't load product images", zap.Error(err))
		return err
	}
	if product.Colors, err = load("product_colors", "name"); err != nil {
		zap.L().Error("can't load product colors", zap.Error(err))
		return err
	}
	if product.Sizes, err = load("product_sizes", "name"); err != nil {
		zap.L().Error("can't load product sizes", zap.Error(err))
		return err
	}
	if product.Features, err = load("product_features", "name"); err != nil {
		zap.L().Error("can't load product features", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) List(ctx context.Context, categoryID int, search string, activeOnly bool, limit, offset int) ([]domain.Product, error) {
	query := `
        SELECT id, category_id, name, description, price, stock_quantity, is_active, created_at, updated_at
        FROM products
        WHERE ($1 = 0 OR category_id = $1)
          AND ($2 = '' OR name ILIKE '%' || $2 || '%')
          AND (NOT $3 OR is_active)
        ORDER BY created_at DESC
        LIMIT $4 OFFSET $5
    `
	rows, err := r.db.Query(ctx, query, categoryID, search, activeOnly, limit, offset)
	if err != nil {
		zap.L().Error("can't list products", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var products []domain.Product
	for rows.Next() {
		var product domain.Product
		err := rows.Scan(
			&product.ID, &product.CategoryID, &product.Name, &product.Description,
			&product.Price, &product.StockQuantity, &product.IsActive, &product.CreatedAt, &product.UpdatedAt,
		)
		if err != nil {
			zap.L().Error("can't scan product row", zap.Error(err))
			return nil, err
		}
		products = append(products, product)
	}
	return products, nil
}

func (r *Repository) SoftDelete(ctx context.Context, id int) error {
	query := `
        UPDATE products
        SET is_active = FALSE, updated_at = now()
        WHERE id = $1
    `
	_, err := r.db.Exec(ctx, query, id)
	if err != nil {
		zap.L().Error("can't deactivate product", zap.Int("product_id", id), zap.Error(err))
		return err
	}
	return nil
}

// DecrementStock applies the decrement only when enough stock remains.
// Returns false without error when the condition fails or the product is
// missing, so a losing racer aborts cleanly.
func (r *Repository) DecrementStock(ctx context.Context, productID, quantity int) (bool, error) {
	query := `
        UPDATE products
        SET stock_quantity = stock_quantity - $1, updated_at = now()
        WHERE id = $2 AND stock_quantity >= $1
    `
	tag, err := r.db.Exec(ctx, query, quantity, productID)
	if err != nil {
		zap.L().Error("can't decrement stock", zap.Int("product_id", productID), zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *Repository) ListBelowStock(ctx context.Context, threshold int) ([]domain.Product, error) {
	query := `
        SELECT id, category_id, name, description, price, stock_quantity, is_active, created_at, updated_at
        FROM products
        WHERE is_active AND stock_quantity < $1
        ORDER BY stock_quantity ASC
    `
	rows, err := r.db.Query(ctx, query, threshold)
	if err != nil {
		zap.L().Error("can't list low stock products", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var products []domain.Product
	for rows.Next() {
		var product domain.Product
		err := rows.Scan(
			&product.ID, &product.CategoryID, &product.Name, &product.Description,
			&product.Price, &product.StockQuantity, &product.IsActive, &product.CreatedAt, &product.UpdatedAt,
		)
		if err != nil {
			zap.L().Error("can't scan low stock row", zap.Error(err))
			return nil, err
		}
		products = append(products, product)
	}
	return products, nil
}

func (r *Repository) CountActive(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM products WHERE is_active`).Scan(&count)
	if err != nil {
		zap.L().Error("can't count products", zap.Error(err))
		return 0, err
	}
	return count, nil
}

func (r *Repository) CountBelowStock(ctx context.Context, threshold int) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM products WHERE is_active AND stock_quantity < $1`, threshold).Scan(&count)
	if err != nil {
		zap.L().Error("can't count low stock products", zap.Error(err))
		return 0, err
	}
	return count, nil
}
