package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/atlanticleather/storefront/internal/cache"
	"github.com/atlanticleather/storefront/internal/config"
	"github.com/atlanticleather/storefront/internal/domain"
	"github.com/atlanticleather/storefront/pkg/clients"
)

const (
	ChannelEmail   = "email"
	ChannelWebhook = "webhook"
	ChannelSlack   = "slack"
	ChannelDiscord = "discord"

	statusSent   = "sent"
	statusFailed = "failed"

	maxRetries    = 3
	retryInterval = time.Second * 2

	queueSize    = 256
	workerCount  = 4
	scanInterval = time.Hour
	dedupTTL     = 6 * time.Hour
)

const (
	EventOrderCreated   = "order_created"
	EventOrderConfirmed = "order_confirmed"
	EventLowStock       = "low_stock"
)

type Event struct {
	Kind     string
	Order    *domain.Order
	Products []domain.Product
}

type SettingsRepo interface {
	GetSettings(ctx context.Context) (*domain.NotificationSettings, error)
}

type LogRepo interface {
	CreateLog(ctx context.Context, log *domain.NotificationLog) error
}

type ProductRepo interface {
	ListBelowStock(ctx context.Context, threshold int) ([]domain.Product, error)
}

// Service delivers notifications out-of-band: producers enqueue events and
// a worker pool fans each one out to the configured channels with retries.
// Delivery failures are logged, never surfaced to the producer.
type Service struct {
	cfg          *config.Config
	settingsRepo SettingsRepo
	logRepo      LogRepo
	productRepo  ProductRepo
	client       clients.HTTPClientI
	mailer       MailSender
	dedup        cache.Cache

	queue        chan Event
	workerPool   WorkerPoolI
	scanInterval time.Duration
}

func New(
	cfg *config.Config,
	settingsRepo SettingsRepo,
	logRepo LogRepo,
	productRepo ProductRepo,
	client clients.HTTPClientI,
	mailer MailSender,
	dedup cache.Cache,
) *Service {
	return &Service{
		cfg:          cfg,
		settingsRepo: settingsRepo,
		logRepo:      logRepo,
		productRepo:  productRepo,
		client:       client,
		mailer:       mailer,
		dedup:        dedup,
		queue:        make(chan Event, queueSize),
		workerPool:   NewWorkerPool(workerCount),
		scanInterval: scanInterval,
	}
}

func (s *Service) Start(ctx context.Context) {
	zap.L().Info("notification service started")
	go s.run(ctx)
}

func (s *Service) run(ctx context.Context) {
	ticker := time.NewTicker(s.scanInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("context canceled, stopping notification service")
			s.workerPool.Close()
			return
		case event := <-s.queue:
			if err := s.workerPool.AddTask(ctx, func() error {
				return s.dispatch(ctx, event)
			}); err != nil {
				zap.L().Error("can't schedule notification", zap.Error(err))
			}
		case <-ticker.C:
			s.scanLowStock(ctx)
		}
	}
}

func (s *Service) OrderCreated(order *domain.Order) {
	s.enqueue(Event{Kind: EventOrderCreated, Order: order})
}

func (s *Service) OrderConfirmed(order *domain.Order) {
	s.enqueue(Event{Kind: EventOrderConfirmed, Order: order})
}

// enqueue drops the event when the queue is full rather than blocking a
// request handler.
func (s *Service) enqueue(event Event) {
	select {
	case s.queue <- event:
	default:
		zap.L().Warn("notification queue full, dropping event", zap.String("kind", event.Kind))
	}
}

func (s *Service) scanLowStock(ctx context.Context) {
	settings, err := s.settingsRepo.GetSettings(ctx)
	if err != nil {
		zap.L().Error("low stock scan: can't load settings", zap.Error(err))
		return
	}

	products, err := s.productRepo.ListBelowStock(ctx, settings.LowStockThreshold)
	if err != nil {
		zap.L().Error("low stock scan failed", zap.Error(err))
		return
	}

	var alertable []domain.Product
	for _, product := range products {
		fresh, err := s.dedup.SetNX(ctx, "lowstock:"+strconv.Itoa(product.ID), "1", dedupTTL)
		if err != nil {
			zap.L().Warn("low stock dedup check failed", zap.Error(err))
			fresh = true
		}
		if fresh {
			alertable = append(alertable, product)
		}
	}
	if len(alertable) == 0 {
		return
	}

	s.enqueue(Event{Kind: EventLowStock, Products: alertable})
}

// dispatch fans one event out to every configured channel. Channels are
// independent; a failing one does not block the others.
func (s *Service) dispatch(ctx context.Context, event Event) error {
	settings, err := s.settingsRepo.GetSettings(ctx)
	if err != nil {
		return fmt.Errorf("can't load notification settings: %w", err)
	}

	subject, text := s.formatText(event)

	var g errgroup.Group
	if s.mailer != nil && settings.EmailEnabled {
		for _, recipient := range s.emailRecipients(event, settings) {
			recipient := recipient
			g.Go(func() error {
				return s.sendWithRetry(ctx, ChannelEmail, recipient, subject, func(context.Context) error {
					return s.mailer.Send(recipient, subject, text)
				})
			})
		}
	}
	if settings.WebhookURL != "" {
		payload, err := json.Marshal(s.webhookPayload(event))
		if err != nil {
			return err
		}
		g.Go(func() error {
			return s.postWithRetry(ctx, ChannelWebhook, settings.WebhookURL, subject, payload)
		})
	}
	if settings.SlackWebhookURL != "" {
		payload, _ := json.Marshal(map[string]string{"text": subject + "\n" + text})
		g.Go(func() error {
			return s.postWithRetry(ctx, ChannelSlack, settings.SlackWebhookURL, subject, payload)
		})
	}
	if settings.DiscordWebhookURL != "" {
		payload, _ := json.Marshal(map[string]string{"content": subject + "\n" + text})
		g.Go(func() error {
			return s.postWithRetry(ctx, ChannelDiscord, settings.DiscordWebhookURL, subject, payload)
		})
	}

	return g.Wait()
}

func (s *Service) emailRecipients(event Event, settings *domain.NotificationSettings) []string {
	var recipients []string
	switch event.Kind {
	case EventOrderCreated:
		recipients = append(recipients, event.Order.CustomerEmail)
		if settings.AdminEmail != "" {
			recipients = append(recipients, settings.AdminEmail)
		}
	case EventOrderConfirmed:
		recipients = append(recipients, event.Order.CustomerEmail)
	case EventLowStock:
		if settings.AdminEmail != "" {
			recipients = append(recipients, settings.AdminEmail)
		}
	}
	return recipients
}

func (s *Service) formatText(event Event) (subject, text string) {
	switch event.Kind {
	case EventOrderCreated:
		subject = fmt.Sprintf("Order %s received", event.Order.OrderNumber)
		text = fmt.Sprintf("%s placed an order for %.2f (%d items).",
			event.Order.CustomerName, event.Order.TotalAmount, len(event.Order.Items))
	case EventOrderConfirmed:
		subject = fmt.Sprintf("Order %s confirmed", event.Order.OrderNumber)
		text = fmt.Sprintf("Your order for %.2f has been confirmed and stock reserved.",
			event.Order.TotalAmount)
	case EventLowStock:
		subject = "Low stock alert"
		for _, product := range event.Products {
			text += fmt.Sprintf("%s: %d left\n", product.Name, product.StockQuantity)
		}
	default:
		subject = event.Kind
	}
	return subject, text
}

func (s *Service) webhookPayload(event Event) any {
	type orderPayload struct {
		OrderNumber  string  `json:"order_number"`
		CustomerName string  `json:"customer_name"`
		TotalAmount  float64 `json:"total_amount"`
		Status       string  `json:"status"`
		ItemCount    int     `json:"item_count"`
	}
	type productPayload struct {
		ID            int    `json:"id"`
		Name          string `json:"name"`
		StockQuantity int    `json:"stock_quantity"`
	}

	payload := map[string]any{"event": event.Kind}
	if event.Order != nil {
		payload["order"] = orderPayload{
			OrderNumber:  event.Order.OrderNumber,
			CustomerName: event.Order.CustomerName,
			TotalAmount:  event.Order.TotalAmount,
			Status:       string(event.Order.Status),
			ItemCount:    len(event.Order.Items),
		}
	}
	if len(event.Products) > 0 {
		products := make([]productPayload, 0, len(event.Products))
		for _, product := range event.Products {
			products = append(products, productPayload{
				ID:            product.ID,
				Name:          product.Name,
				StockQuantity: product.StockQuantity,
			})
		}
		payload["products"] = products
	}
	return payload
}

func (s *Service) postWithRetry(ctx context.Context, channel, url, subject string, payload []byte) error {
	return s.sendWithRetry(ctx, channel, url, subject, func(ctx context.Context) error {
		statusCode, _, err := s.client.Post(ctx, url, nil, payload)
		if err != nil {
			return err
		}
		if statusCode >= http.StatusMultipleChoices {
			return fmt.Errorf("unexpected status code %d", statusCode)
		}
		return nil
	})
}

// sendWithRetry attempts delivery up to maxRetries times with linear
// backoff, recording every attempt in the notification log.
func (s *Service) sendWithRetry(ctx context.Context, channel, recipient, subject string, send func(ctx context.Context) error) error {
	var lastErr error
	for attempt := 1; attempt <= maxRetries; attempt++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		lastErr = send(ctx)
		s.logAttempt(ctx, channel, recipient, subject, lastErr)
		if lastErr == nil {
			return nil
		}
		if attempt < maxRetries {
			time.Sleep(retryInterval * time.Duration(attempt))
		}
	}
	return fmt.Errorf("failed to deliver %s notification after %d retries: %w", channel, maxRetries, lastErr)
}

func (s *Service) logAttempt(ctx context.Context, channel, recipient, subject string, sendErr error) {
	log := &domain.NotificationLog{
		Channel:   channel,
		Recipient: recipient,
		Subject:   subject,
		Status:    statusSent,
	}
	if sendErr != nil {
		log.Status = statusFailed
		log.Error = sendErr.Error()
	}
	if err := s.logRepo.CreateLog(ctx, log); err != nil {
		zap.L().Error("can't record notification attempt", zap.Error(err))
	}
}
