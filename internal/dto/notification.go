package dto

import "time"

type NotificationSettingsDTO struct {
	EmailEnabled      bool   `json:"email_enabled"`
	AdminEmail        string `json:"admin_email" validate:"omitempty,email"`
	WebhookURL        string `json:"webhook_url" validate:"omitempty,url"`
	SlackWebhookURL   string `json:"slack_webhook_url" validate:"omitempty,url"`
	DiscordWebhookURL string `json:"discord_webhook_url" validate:"omitempty,url"`
	LowStockThreshold int    `json:"low_stock_threshold" validate:"gte=0"`
}

type NotificationLogResponseDTO struct {
	ID        int       `json:"id"`
	Channel   string    `json:"channel"`
	Recipient string    `json:"recipient"`
	Subject   string    `json:"subject,omitempty"`
	Status    string    `json:"status"`
	Error     string    `json:"error,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
