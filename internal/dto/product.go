package dto

type CreateProductRequestDTO struct {
	Name          string   `json:"name" validate:"required,max=200"`
	Description   string   `json:"description" validate:"max=5000"`
	Price         float64  `json:"price" validate:"gte=0"`
	StockQuantity int      `json:"stock_quantity" validate:"gte=0"`
	CategoryID    *int     `json:"category_id" validate:"omitempty,gt=0"`
	Images        []string `json:"images" validate:"dive,max=500"`
	Colors        []string `json:"colors" validate:"dive,max=50"`
	Sizes         []string `json:"sizes" validate:"dive,max=50"`
	Features      []string `json:"features" validate:"dive,max=200"`
}

type UpdateProductRequestDTO struct {
	Name          *string   `json:"name" validate:"omitempty,max=200"`
	Description   *string   `json:"description" validate:"omitempty,max=5000"`
	Price         *float64  `json:"price" validate:"omitempty,gte=0"`
	StockQuantity *int      `json:"stock_quantity" validate:"omitempty,gte=0"`
	CategoryID    *int      `json:"category_id" validate:"omitempty,gt=0"`
	IsActive      *bool     `json:"is_active"`
	Images        *[]string `json:"images" validate:"omitempty,dive,max=500"`
	Colors        *[]string `json:"colors" validate:"omitempty,dive,max=50"`
	Sizes         *[]string `json:"sizes" validate:"omitempty,dive,max=50"`
	Features      *[]string `json:"features" validate:"omitempty,dive,max=200"`
}

type ProductResponseDTO struct {
	ID            int      `json:"id"`
	Name          string   `json:"name"`
	Description   string   `json:"description,omitempty"`
	Price         float64  `json:"price"`
	StockQuantity int      `json:"stock_quantity"`
	CategoryID    *int     `json:"category_id,omitempty"`
	IsActive      bool     `json:"is_active"`
	Images        []string `json:"images,omitempty"`
	Colors        []string `json:"colors,omitempty"`
	Sizes         []string `json:"sizes,omitempty"`
	Features      []string `json:"features,omitempty"`
}

type ProductListQueryDTO struct {
	CategoryID int    `validate:"gte=0"`
	Search     string `validate:"max=200"`
	ActiveOnly bool
	Page       int `validate:"gte=0"`
	PageSize   int `validate:"gte=0,lte=200"`
}

type CategoryRequestDTO struct {
	Name        string `json:"name" validate:"required,max=100"`
	Slug        string `json:"slug" validate:"required,max=120"`
	Description string `json:"description" validate:"max=2000"`
}

type CategoryResponseDTO struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description,omitempty"`
}
