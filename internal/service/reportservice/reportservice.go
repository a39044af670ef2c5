package reportservice

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/atlanticleather/storefront/internal/cache"
	"github.com/atlanticleather/storefront/internal/domain"
	"github.com/atlanticleather/storefront/internal/dto"
)

type OrderRepo interface {
	CountByStatus(ctx context.Context) (map[string]int, error)
	RevenueTotal(ctx context.Context) (float64, error)
	List(ctx context.Context, status domain.OrderStatus, limit, offset int) ([]domain.Order, error)
}

type ProductRepo interface {
	CountActive(ctx context.Context) (int, error)
	CountBelowStock(ctx context.Context, threshold int) (int, error)
}

type SettingsRepo interface {
	GetSettings(ctx context.Context) (*domain.NotificationSettings, error)
}

type Service struct {
	orderRepo    OrderRepo
	productRepo  ProductRepo
	settingsRepo SettingsRepo
	cache        cache.Cache
}

func New(orderRepo OrderRepo, productRepo ProductRepo, settingsRepo SettingsRepo, c cache.Cache) *Service {
	return &Service{
		orderRepo:    orderRepo,
		productRepo:  productRepo,
		settingsRepo: settingsRepo,
		cache:        c,
	}
}

const (
	cacheKey         = "report:dashboard"
	cacheTTL         = time.Minute
	recentOrderLimit = 10
)

func (s *Service) GetReport(ctx context.Context) (*dto.ReportResponseDTO, error) {
	if cached, err := s.cache.Get(ctx, cacheKey); err == nil {
		var report dto.ReportResponseDTO
		if err := json.Unmarshal([]byte(cached), &report); err == nil {
			return &report, nil
		}
	} else if !errors.Is(err, cache.ErrCacheMiss) {
		zap.L().Warn("report cache read failed", zap.Error(err))
	}

	report, err := s.buildReport(ctx)
	if err != nil {
		return nil, err
	}

	if encoded, err := json.Marshal(report); err == nil {
		if err := s.cache.Set(ctx, cacheKey, string(encoded), cacheTTL); err != nil {
			zap.L().Warn("report cache write failed", zap.Error(err))
		}
	}
	return report, nil
}

func (s *Service) buildReport(ctx context.Context) (*dto.ReportResponseDTO, error) {
	counts, err := s.orderRepo.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}
	revenue, err := s.orderRepo.RevenueTotal(ctx)
	if err != nil {
		return nil, err
	}
	productCount, err := s.productRepo.CountActive(ctx)
	if err != nil {
		return nil, err
	}

	settings, err := s.settingsRepo.GetSettings(ctx)
	if err != nil {
		return nil, err
	}
	lowStock, err := s.productRepo.CountBelowStock(ctx, settings.LowStockThreshold)
	if err != nil {
		return nil, err
	}

	recent, err := s.orderRepo.List(ctx, "", recentOrderLimit, 0)
	if err != nil {
		return nil, err
	}
	recentDTOs := make([]dto.OrderResponseDTO, 0, len(recent))
	for _, order := range recent {
		recentDTOs = append(recentDTOs, dto.OrderResponseDTO{
			ID:            order.ID,
			OrderNumber:   order.OrderNumber,
			CustomerName:  order.CustomerName,
			CustomerEmail: order.CustomerEmail,
			CustomerPhone: order.CustomerPhone,
			TotalAmount:   order.TotalAmount,
			Status:        string(order.Status),
			PaymentStatus: order.PaymentStatus,
			CreatedAt:     order.CreatedAt,
		})
	}

	return &dto.ReportResponseDTO{
		OrdersByStatus: counts,
		TotalRevenue:   revenue,
		ProductCount:   productCount,
		LowStockCount:  lowStock,
		RecentOrders:   recentDTOs,
	}, nil
}
