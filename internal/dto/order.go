package dto

import "time"

type CreateOrderItemDTO struct {
	ProductID int     `json:"product_id" validate:"required,gt=0"`
	Quantity  int     `json:"quantity" validate:"required,gte=1"`
	UnitPrice float64 `json:"unit_price" validate:"gte=0"`
	Size      string  `json:"size" validate:"max=50"`
	Color     string  `json:"color" validate:"max=50"`
}

type CreateOrderRequestDTO struct {
	CustomerName    string               `json:"customer_name" validate:"required,max=100"`
	CustomerEmail   string               `json:"customer_email" validate:"required,email"`
	CustomerPhone   string               `json:"customer_phone" validate:"required,max=30"`
	ShippingAddress string               `json:"shipping_address" validate:"max=500"`
	Notes           string               `json:"notes" validate:"max=2000"`
	Items           []CreateOrderItemDTO `json:"items" validate:"required,min=1,dive"`
}

type CreateOrderResponseDTO struct {
	OrderNumber string  `json:"order_number" example:"8b2e6f14-4e0a-4f83-9c2f-0f0b3a1c9d42"`
	TotalAmount float64 `json:"total_amount" example:"350"`
	Status      string  `json:"status" example:"pending"`
}

type OrderItemResponseDTO struct {
	ProductID       int     `json:"product_id"`
	ProductName     string  `json:"product_name"`
	ProductImage    string  `json:"product_image,omitempty"`
	ProductCategory string  `json:"product_category,omitempty"`
	UnitPrice       float64 `json:"unit_price"`
	Quantity        int     `json:"quantity"`
	Size            string  `json:"size,omitempty"`
	Color           string  `json:"color,omitempty"`
}

type OrderResponseDTO struct {
	ID              int                    `json:"id"`
	OrderNumber     string                 `json:"order_number"`
	CustomerName    string                 `json:"customer_name"`
	CustomerEmail   string                 `json:"customer_email"`
	CustomerPhone   string                 `json:"customer_phone"`
	ShippingAddress string                 `json:"shipping_address,omitempty"`
	TotalAmount     float64                `json:"total_amount"`
	Status          string                 `json:"status"`
	PaymentStatus   string                 `json:"payment_status"`
	Notes           string                 `json:"notes,omitempty"`
	AdminNotes      string                 `json:"admin_notes,omitempty"`
	CreatedAt       time.Time              `json:"created_at"`
	Items           []OrderItemResponseDTO `json:"items,omitempty"`
}

type UpdateOrderRequestDTO struct {
	AdminNotes    *string `json:"admin_notes" validate:"omitempty,max=2000"`
	PaymentStatus *string `json:"payment_status" validate:"omitempty,oneof=unpaid paid refunded"`
}
