package orders

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/atlanticleather/storefront/internal/domain"
	"github.com/atlanticleather/storefront/internal/dto"
	orderservice "github.com/atlanticleather/storefront/internal/service/orderservice"
	"github.com/atlanticleather/storefront/pkg/auth"
	"github.com/atlanticleather/storefront/pkg/utils"
)

type Service interface {
	CreateOrder(ctx context.Context, req *dto.CreateOrderRequestDTO) (*domain.Order, error)
	GetOrder(ctx context.Context, id int) (*domain.Order, error)
	ListOrders(ctx context.Context, status string, limit, offset int) ([]domain.Order, error)
	Confirm(ctx context.Context, id int) (*domain.Order, error)
	MarkSold(ctx context.Context, id, adminID int) (*domain.Order, *domain.Transaction, error)
	Cancel(ctx context.Context, id int) (*domain.Order, error)
	UpdateAdminFields(ctx context.Context, id int, req *dto.UpdateOrderRequestDTO) (*domain.Order, error)
}

type OrderHandler struct {
	orderService Service
}

func New(orderService Service) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
	}
}

const defaultPageSize = 50

// Create godoc
//
//	@Summary		Create an order inquiry
//	@Description	Accept a cart payload from the storefront and persist it as a pending order.
//	@Tags			Orders
//	@Accept			json
//	@Produce		json
//	@Param			order	body		dto.CreateOrderRequestDTO	true	"Order payload"
//	@Success		201		{object}	dto.CreateOrderResponseDTO
//	@Failure		400		{object}	utils.Response	"Malformed or invalid payload"
//	@Failure		401		{object}	utils.Response	"Missing or wrong API key"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/public/orders [post]
func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateOrderRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := dto.Validate(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	order, err := h.orderService.CreateOrder(r.Context(), &req)
	if err != nil {
		if errors.Is(err, orderservice.ErrProductNotFound) {
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, dto.CreateOrderResponseDTO{
		OrderNumber: order.OrderNumber,
		TotalAmount: order.TotalAmount,
		Status:      string(order.Status),
	})
}

// List godoc
//
//	@Summary	List orders
//	@Tags		Orders
//	@Produce	json
//	@Param		status	query	string	false	"Filter by status"
//	@Security	BearerAuth
//	@Success	200	{array}		dto.OrderResponseDTO
//	@Failure	400	{object}	utils.Response	"Unknown status"
//	@Failure	401	{object}	utils.Response	"User not authorized"
//	@Router		/api/orders [get]
func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	status := r.URL.Query().Get("status")
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))
	if limit <= 0 {
		limit = defaultPageSize
	}
	if offset < 0 {
		offset = 0
	}

	orders, err := h.orderService.ListOrders(r.Context(), status, limit, offset)
	if err != nil {
		if errors.Is(err, orderservice.ErrUnknownStatus) {
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make([]dto.OrderResponseDTO, 0, len(orders))
	for _, order := range orders {
		response = append(response, toOrderDTO(&order))
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

func (h *OrderHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := orderID(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid order id")
		return
	}

	order, err := h.orderService.GetOrder(r.Context(), id)
	if err != nil {
		respondOrderError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toOrderDTO(order))
}

// Confirm godoc
//
//	@Summary		Confirm a pending order
//	@Description	Validate and reserve stock for every line item, then flip the order to confirmed. Rolls back entirely if any item cannot be covered.
//	@Tags			Orders
//	@Produce		json
//	@Param			id	path	int	true	"Order ID"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.OrderResponseDTO
//	@Failure		400	{object}	utils.Response	"Product missing or insufficient stock"
//	@Failure		404	{object}	utils.Response	"Order not found or not pending"
//	@Router			/api/orders/{id}/confirm [post]
func (h *OrderHandler) Confirm(w http.ResponseWriter, r *http.Request) {
	id, err := orderID(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid order id")
		return
	}

	order, err := h.orderService.Confirm(r.Context(), id)
	if err != nil {
		respondOrderError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toOrderDTO(order))
}

// MarkSold godoc
//
//	@Summary		Finalize a confirmed order as sold
//	@Description	Credit the acting admin's balance with the order total and append the ledger row. Irreversible.
//	@Tags			Orders
//	@Produce		json
//	@Param			id	path	int	true	"Order ID"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.OrderResponseDTO
//	@Failure		404	{object}	utils.Response	"Order not found or not confirmed"
//	@Router			/api/orders/{id}/mark-sold [post]
func (h *OrderHandler) MarkSold(w http.ResponseWriter, r *http.Request) {
	adminID := r.Context().Value(auth.UserIDKey).(int)

	id, err := orderID(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid order id")
		return
	}

	order, _, err := h.orderService.MarkSold(r.Context(), id, adminID)
	if err != nil {
		respondOrderError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toOrderDTO(order))
}

func (h *OrderHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	id, err := orderID(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid order id")
		return
	}

	order, err := h.orderService.Cancel(r.Context(), id)
	if err != nil {
		respondOrderError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toOrderDTO(order))
}

func (h *OrderHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := orderID(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid order id")
		return
	}

	var req dto.UpdateOrderRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := dto.Validate(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	order, err := h.orderService.UpdateAdminFields(r.Context(), id, &req)
	if err != nil {
		respondOrderError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toOrderDTO(order))
}

func orderID(r *http.Request) (int, error) {
	return strconv.Atoi(chi.URLParam(r, "id"))
}

func respondOrderError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, orderservice.ErrOrderNotFound),
		errors.Is(err, orderservice.ErrInvalidTransition):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, orderservice.ErrProductNotFound),
		errors.Is(err, orderservice.ErrInsufficientStock):
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func toOrderDTO(order *domain.Order) dto.OrderResponseDTO {
	response := dto.OrderResponseDTO{
		ID:              order.ID,
		OrderNumber:     order.OrderNumber,
		CustomerName:    order.CustomerName,
		CustomerEmail:   order.CustomerEmail,
		CustomerPhone:   order.CustomerPhone,
		ShippingAddress: order.ShippingAddress,
		TotalAmount:     order.TotalAmount,
		Status:          string(order.Status),
		PaymentStatus:   order.PaymentStatus,
		Notes:           order.Notes,
		AdminNotes:      order.AdminNotes,
		CreatedAt:       order.CreatedAt,
	}
	for _, item := range order.Items {
		response.Items = append(response.Items, dto.OrderItemResponseDTO{
			ProductID:       item.ProductID,
			ProductName:     item.ProductName,
			ProductImage:    item.ProductImage,
			ProductCategory: item.ProductCategory,
			UnitPrice:       item.UnitPrice,
			Quantity:        item.Quantity,
			Size:            item.Size,
			Color:           item.Color,
		})
	}
	return response
}
