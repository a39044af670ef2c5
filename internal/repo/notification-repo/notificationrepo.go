package notificationrepo

import (
	"context"

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

// GetSettings returns the single settings row seeded by the migrations.
func (r *Repository) GetSettings(ctx context.Context) (*domain.NotificationSettings, error) {
	query := `
        SELECT id, email_enabled, admin_email, webhook_url, slack_webhook_url,
               discord_webhook_url, low_stock_threshold, updated_at
        FROM notification_settings
        ORDER BY id
        LIMIT 1
    `
	var s domain.NotificationSettings
	err := r.db.QueryRow(ctx, query).Scan(
		&s.ID, &s.EmailEnabled, &s.AdminEmail, &s.WebhookURL, &s.SlackWebhookURL,
		&s.DiscordWebhookURL, &s.LowStockThreshold, &s.UpdatedAt,
	)
	if err != nil {
		zap.L().Error("can't get notification settings", zap.Error(err))
		return nil, err
	}
	return &s, nil
}

func (r *Repository) UpdateSettings(ctx context.Context, s *domain.NotificationSettings) error {
	query := `
        UPDATE notification_settings
        SET email_enabled = $1, admin_email = $2, webhook_url = $3, slack_webhook_url = $4,
            discord_webhook_url = $5, low_stock_threshold = $6, updated_at = now()
        WHERE id = $7
    `
	_, err := r.db.Exec(ctx, query,
		s.EmailEnabled, s.AdminEmail, s.WebhookURL, s.SlackWebhookURL,
		s.DiscordWebhookURL, s.LowStockThreshold, s.ID,
	)
	if err != nil {
		zap.L().Error("can't update notification settings", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) CreateLog(ctx context.Context, log *domain.NotificationLog) error {
	query := `
        INSERT INTO notification_logs (channel, recipient, subject, status, error)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, created_at
    `
	err := r.db.QueryRow(ctx, query, log.Channel, log.Recipient, log.Subject, log.Status, log.Error).
		Scan(&log.ID, &log.CreatedAt)
	if err != nil {
		zap.L().Error("can't save notification log", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) ListLogs(ctx context.Context, limit int) ([]domain.NotificationLog, error) {
	query := `
        SELECT id, channel, recipient, subject, status, error, created_at
        FROM notification_logs
        ORDER BY created_at DESC
        LIMIT $1
    `
	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		zap.L().Error("can't list notification logs", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var logs []domain.NotificationLog
	for rows.Next() {
		var log domain.NotificationLog
		err := rows.Scan(&log.ID, &log.Channel, &log.Recipient, &log.Subject, &log.Status, &log.Error, &log.CreatedAt)
		if err != nil {
			zap.L().Error("can't scan notification log row", zap.Error(err))
			return nil, err
		}
		logs = append(logs, log)
	}
	return logs, nil
}
