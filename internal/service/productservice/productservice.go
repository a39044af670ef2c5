package productservice

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/atlanticleather/storefront/internal/domain"
	"github.com/atlanticleather/storefront/internal/dto"
)

type ProductRepo interface {
	Create(ctx context.Context, product *domain.Product) (*domain.Product, error)
	Update(ctx context.Context, product *domain.Product) error
	GetByID(ctx context.Context, id int) (*domain.Product, error)
	List(ctx context.Context, categoryID int, search string, activeOnly bool, limit, offset int) ([]domain.Product, error)
	SoftDelete(ctx context.Context, id int) error
	ListBelowStock(ctx context.Context, threshold int) ([]domain.Product, error)
}

type CategoryRepo interface {
	Create(ctx context.Context, category *domain.Category) (*domain.Category, error)
	Update(ctx context.Context, category *domain.Category) error
	GetByID(ctx context.Context, id int) (*domain.Category, error)
	List(ctx context.Context) ([]domain.Category, error)
	Delete(ctx context.Context, id int) error
}

type Service struct {
	productRepo  ProductRepo
	categoryRepo CategoryRepo
}

func New(productRepo ProductRepo, categoryRepo CategoryRepo) *Service {
	return &Service{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
	}
}

var (
	ErrProductNotFound  = errors.New("product not found")
	ErrCategoryNotFound = errors.New("category not found")
)

const (
	defaultPageSize = 50
	maxPageSize     = 200
)

func (s *Service) CreateProduct(ctx context.Context, req *dto.CreateProductRequestDTO) (*domain.Product, error) {
	if req.CategoryID != nil {
		category, err := s.categoryRepo.GetByID(ctx, *req.CategoryID)
		if err != nil {
			return nil, err
		}
		if category == nil {
			return nil, ErrCategoryNotFound
		}
	}

	product := &domain.Product{
		CategoryID:    req.CategoryID,
		Name:          req.Name,
		Description:   req.Description,
		Price:         req.Price,
		StockQuantity: req.StockQuantity,
		Images:        req.Images,
		Colors:        req.Colors,
		Sizes:         req.Sizes,
		Features:      req.Features,
	}
	created, err := s.productRepo.Create(ctx, product)
	if err != nil {
		zap.L().Error("can't create product", zap.Error(err))
		return nil, err
	}
	zap.L().Info("product created", zap.Int("product_id", created.ID), zap.String("name", created.Name))
	return created, nil
}

func (s *Service) UpdateProduct(ctx context.Context, id int, req *dto.UpdateProductRequestDTO) (*domain.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}

	if req.CategoryID != nil {
		category, err := s.categoryRepo.GetByID(ctx, *req.CategoryID)
		if err != nil {
			return nil, err
		}
		if category == nil {
			return nil, ErrCategoryNotFound
		}
		product.CategoryID = req.CategoryID
	}
	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.Price != nil {
		product.Price = *req.Price
	}
	if req.StockQuantity != nil {
		product.StockQuantity = *req.StockQuantity
	}
	if req.IsActive != nil {
		product.IsActive = *req.IsActive
	}
	if req.Images != nil {
		product.Images = *req.Images
	}
	if req.Colors != nil {
		product.Colors = *req.Colors
	}
	if req.Sizes != nil {
		product.Sizes = *req.Sizes
	}
	if req.Features != nil {
		product.Features = *req.Features
	}

	if err := s.productRepo.Update(ctx, product); err != nil {
		zap.L().Error("can't update product", zap.Int("product_id", id), zap.Error(err))
		return nil, err
	}
	return product, nil
}

func (s *Service) GetProduct(ctx context.Context, id int) (*domain.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	return product, nil
}

func (s *Service) ListProducts(ctx context.Context, query *dto.ProductListQueryDTO) ([]domain.Product, error) {
	pageSize := query.PageSize
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	page := query.Page
	if page < 1 {
		page = 1
	}
	return s.productRepo.List(ctx, query.CategoryID, query.Search, query.ActiveOnly, pageSize, (page-1)*pageSize)
}

func (s *Service) DeleteProduct(ctx context.Context, id int) error {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if product == nil {
		return ErrProductNotFound
	}
	return s.productRepo.SoftDelete(ctx, id)
}

func (s *Service) CreateCategory(ctx context.Context, req *dto.CategoryRequestDTO) (*domain.Category, error) {
	return s.categoryRepo.Create(ctx, &domain.Category{
		Name:        req.Name,
		Slug:        req.Slug,
		Description: req.Description,
	})
}

func (s *Service) UpdateCategory(ctx context.Context, id int, req *dto.CategoryRequestDTO) (*domain.Category, error) {
	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, ErrCategoryNotFound
	}
	category.Name = req.Name
	category.Slug = req.Slug
	category.Description = req.Description
	if err := s.categoryRepo.Update(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *Service) ListCategories(ctx context.Context) ([]domain.Category, error) {
	return s.categoryRepo.List(ctx)
}

func (s *Service) DeleteCategory(ctx context.Context, id int) error {
	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if category == nil {
		return ErrCategoryNotFound
	}
	return s.categoryRepo.Delete(ctx, id)
}
