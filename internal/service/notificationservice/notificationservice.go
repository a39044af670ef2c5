package notificationservice

import (
	"context"

	"go.uber.org/zap"

	"github.com/atlanticleather/storefront/internal/domain"
	"github.com/atlanticleather/storefront/internal/dto"
)

type Repo interface {
	GetSettings(ctx context.Context) (*domain.NotificationSettings, error)
	UpdateSettings(ctx context.Context, settings *domain.NotificationSettings) error
	ListLogs(ctx context.Context, limit int) ([]domain.NotificationLog, error)
}

type Service struct {
	repo Repo
}

func New(repo Repo) *Service {
	return &Service{repo: repo}
}

const defaultLogLimit = 100

func (s *Service) GetSettings(ctx context.Context) (*domain.NotificationSettings, error) {
	return s.repo.GetSettings(ctx)
}

func (s *Service) UpdateSettings(ctx context.Context, req *dto.NotificationSettingsDTO) (*domain.NotificationSettings, error) {
	settings, err := s.repo.GetSettings(ctx)
	if err != nil {
		return nil, err
	}
	settings.EmailEnabled = req.EmailEnabled
	settings.AdminEmail = req.AdminEmail
	settings.WebhookURL = req.WebhookURL
	settings.SlackWebhookURL = req.SlackWebhookURL
	settings.DiscordWebhookURL = req.DiscordWebhookURL
	settings.LowStockThreshold = req.LowStockThreshold

	if err := s.repo.UpdateSettings(ctx, settings); err != nil {
		zap.L().Error("failed to update notification settings", zap.Error(err))
		return nil, err
	}
	return settings, nil
}

func (s *Service) ListLogs(ctx context.Context, limit int) ([]domain.NotificationLog, error) {
	if limit <= 0 {
		limit = defaultLogLimit
	}
	return s.repo.ListLogs(ctx, limit)
}
