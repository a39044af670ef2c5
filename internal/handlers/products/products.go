package products

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/atlanticleather/storefront/internal/domain"
	"github.com/atlanticleather/storefront/internal/dto"
	productservice "github.com/atlanticleather/storefront/internal/service/productservice"
	"github.com/atlanticleather/storefront/pkg/utils"
)

type Service interface {
	CreateProduct(ctx context.Context, req *dto.CreateProductRequestDTO) (*domain.Product, error)
	UpdateProduct(ctx context.Context, id int, req *dto.UpdateProductRequestDTO) (*domain.Product, error)
	GetProduct(ctx context.Context, id int) (*domain.Product, error)
	ListProducts(ctx context.Context, query *dto.ProductListQueryDTO) ([]domain.Product, error)
	DeleteProduct(ctx context.Context, id int) error
	CreateCategory(ctx context.Context, req *dto.CategoryRequestDTO) (*domain.Category, error)
	UpdateCategory(ctx context.Context, id int, req *dto.CategoryRequestDTO) (*domain.Category, error)
	ListCategories(ctx context.Context) ([]domain.Category, error)
	DeleteCategory(ctx context.Context, id int) error
}

type ProductHandler struct {
	productService Service
}

func New(productService Service) *ProductHandler {
	return &ProductHandler{
		productService: productService,
	}
}

// CreateProduct godoc
//
//	@Summary	Create a product
//	@Tags		Products
//	@Accept		json
//	@Produce	json
//	@Param		product	body	dto.CreateProductRequestDTO	true	"Product payload"
//	@Security	BearerAuth
//	@Success	201	{object}	dto.ProductResponseDTO
//	@Failure	400	{object}	utils.Response	"Invalid payload or unknown category"
//	@Router		/api/products [post]
func (h *ProductHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateProductRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := dto.Validate(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	product, err := h.productService.CreateProduct(r.Context(), &req)
	if err != nil {
		respondProductError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, toProductDTO(product))
}

func (h *ProductHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid product id")
		return
	}

	var req dto.UpdateProductRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := dto.Validate(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	product, err := h.productService.UpdateProduct(r.Context(), id, &req)
	if err != nil {
		respondProductError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toProductDTO(product))
}

func (h *ProductHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid product id")
		return
	}

	product, err := h.productService.GetProduct(r.Context(), id)
	if err != nil {
		respondProductError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toProductDTO(product))
}

// ListProducts godoc
//
//	@Summary	List products
//	@Tags		Products
//	@Produce	json
//	@Param		category	query	int		false	"Category ID"
//	@Param		search		query	string	false	"Name search"
//	@Param		active		query	bool	false	"Active products only"
//	@Success	200	{array}	dto.ProductResponseDTO
//	@Router		/api/public/products [get]
func (h *ProductHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	categoryID, _ := strconv.Atoi(r.URL.Query().Get("category"))
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	pageSize, _ := strconv.Atoi(r.URL.Query().Get("page_size"))
	activeOnly, _ := strconv.ParseBool(r.URL.Query().Get("active"))

	query := &dto.ProductListQueryDTO{
		CategoryID: categoryID,
		Search:     r.URL.Query().Get("search"),
		ActiveOnly: activeOnly,
		Page:       page,
		PageSize:   pageSize,
	}
	if err := dto.Validate(query); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	products, err := h.productService.ListProducts(r.Context(), query)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make([]dto.ProductResponseDTO, 0, len(products))
	for _, product := range products {
		response = append(response, toProductDTO(&product))
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

func (h *ProductHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid product id")
		return
	}

	if err := h.productService.DeleteProduct(r.Context(), id); err != nil {
		respondProductError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "product deactivated"})
}

func (h *ProductHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req dto.CategoryRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := dto.Validate(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	category, err := h.productService.CreateCategory(r.Context(), &req)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, toCategoryDTO(category))
}

func (h *ProductHandler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid category id")
		return
	}

	var req dto.CategoryRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := dto.Validate(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	category, err := h.productService.UpdateCategory(r.Context(), id, &req)
	if err != nil {
		respondProductError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toCategoryDTO(category))
}

func (h *ProductHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.productService.ListCategories(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make([]dto.CategoryResponseDTO, 0, len(categories))
	for _, category := range categories {
		response = append(response, toCategoryDTO(&category))
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

func (h *ProductHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid category id")
		return
	}

	if err := h.productService.DeleteCategory(r.Context(), id); err != nil {
		respondProductError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "category deleted"})
}

func pathID(r *http.Request) (int, error) {
	return strconv.Atoi(chi.URLParam(r, "id"))
}

func respondProductError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, productservice.ErrProductNotFound),
		errors.Is(err, productservice.ErrCategoryNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func toProductDTO(product *domain.Product) dto.ProductResponseDTO {
	return dto.ProductResponseDTO{
		ID:            product.ID,
		Name:          product.Name,
		Description:   product.Description,
		Price:         product.Price,
		StockQuantity: product.StockQuantity,
		CategoryID:    product.CategoryID,
		IsActive:      product.IsActive,
		Images:        product.Images,
		Colors:        product.Colors,
		Sizes:         product.Sizes,
		Features:      product.Features,
	}
}

func toCategoryDTO(category *domain.Category) dto.CategoryResponseDTO {
	return dto.CategoryResponseDTO{
		ID:          category.ID,
		Name:        category.Name,
		Slug:        category.Slug,
		Description: category.Description,
	}
}
