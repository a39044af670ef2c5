package notify

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/atlanticleather/storefront/internal/cache"
	"github.com/atlanticleather/storefront/internal/config"
	"github.com/atlanticleather/storefront/internal/domain"
	"github.com/atlanticleather/storefront/pkg/clients"
)

type mocks struct {
	settingsRepo *MockSettingsRepo
	logRepo      *MockLogRepo
	productRepo  *MockProductRepo
	client       *clients.MockHTTPClientI
	mailer       *MockMailSender
}

func NewMock(t *testing.T) (*Service, *mocks) {
	ctrl := gomock.NewController(t)
	m := &mocks{
		settingsRepo: NewMockSettingsRepo(ctrl),
		logRepo:      NewMockLogRepo(ctrl),
		productRepo:  NewMockProductRepo(ctrl),
		client:       clients.NewMockHTTPClientI(ctrl),
		mailer:       NewMockMailSender(ctrl),
	}
	service := New(&config.Config{}, m.settingsRepo, m.logRepo, m.productRepo, m.client, m.mailer, cache.Noop{})
	defer ctrl.Finish()
	return service, m
}

func expectSentLog(t *testing.T, m *mocks, channel string) {
	m.logRepo.EXPECT().CreateLog(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, log *domain.NotificationLog) error {
			assert.Equal(t, channel, log.Channel)
			assert.Equal(t, "sent", log.Status)
			assert.Empty(t, log.Error)
			return nil
		})
}

func TestDispatch(t *testing.T) {
	order := &domain.Order{
		OrderNumber:   "ord-1",
		CustomerName:  "Jane Doe",
		CustomerEmail: "jane@example.com",
		TotalAmount:   350,
		Status:        domain.OrderPending,
		Items:         []domain.OrderItem{{ProductID: 10}, {ProductID: 11}},
	}

	t.Run("Slack message carries subject and body", func(t *testing.T) {
		service, m := NewMock(t)
		m.settingsRepo.EXPECT().GetSettings(gomock.Any()).Return(&domain.NotificationSettings{
			SlackWebhookURL: "https://hooks.slack.example/T1",
		}, nil)
		m.client.EXPECT().
			Post(gomock.Any(), "https://hooks.slack.example/T1", nil, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, _ http.Header, body []byte) (int, []byte, error) {
				var payload map[string]string
				assert.NoError(t, json.Unmarshal(body, &payload))
				assert.Contains(t, payload["text"], "Order ord-1 received")
				assert.Contains(t, payload["text"], "Jane Doe placed an order for 350.00 (2 items).")
				return http.StatusOK, nil, nil
			})
		expectSentLog(t, m, ChannelSlack)

		err := service.dispatch(context.Background(), Event{Kind: EventOrderCreated, Order: order})
		assert.NoError(t, err)
	})

	t.Run("Webhook payload describes the order", func(t *testing.T) {
		service, m := NewMock(t)
		m.settingsRepo.EXPECT().GetSettings(gomock.Any()).Return(&domain.NotificationSettings{
			WebhookURL: "https://erp.example.com/hook",
		}, nil)
		m.client.EXPECT().
			Post(gomock.Any(), "https://erp.example.com/hook", nil, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, _ http.Header, body []byte) (int, []byte, error) {
				var payload struct {
					Event string `json:"event"`
					Order struct {
						OrderNumber string  `json:"order_number"`
						TotalAmount float64 `json:"total_amount"`
						ItemCount   int     `json:"item_count"`
					} `json:"order"`
				}
				assert.NoError(t, json.Unmarshal(body, &payload))
				assert.Equal(t, EventOrderCreated, payload.Event)
				assert.Equal(t, "ord-1", payload.Order.OrderNumber)
				assert.Equal(t, 350.0, payload.Order.TotalAmount)
				assert.Equal(t, 2, payload.Order.ItemCount)
				return http.StatusNoContent, nil, nil
			})
		expectSentLog(t, m, ChannelWebhook)

		err := service.dispatch(context.Background(), Event{Kind: EventOrderCreated, Order: order})
		assert.NoError(t, err)
	})

	t.Run("Order created mails customer and admin", func(t *testing.T) {
		service, m := NewMock(t)
		m.settingsRepo.EXPECT().GetSettings(gomock.Any()).Return(&domain.NotificationSettings{
			EmailEnabled: true,
			AdminEmail:   "owner@example.com",
		}, nil)
		m.mailer.EXPECT().Send("jane@example.com", "Order ord-1 received", gomock.Any()).Return(nil)
		m.mailer.EXPECT().Send("owner@example.com", "Order ord-1 received", gomock.Any()).Return(nil)
		expectSentLog(t, m, ChannelEmail)
		expectSentLog(t, m, ChannelEmail)

		err := service.dispatch(context.Background(), Event{Kind: EventOrderCreated, Order: order})
		assert.NoError(t, err)
	})

	t.Run("Confirmed order mails customer only", func(t *testing.T) {
		service, m := NewMock(t)
		m.settingsRepo.EXPECT().GetSettings(gomock.Any()).Return(&domain.NotificationSettings{
			EmailEnabled: true,
			AdminEmail:   "owner@example.com",
		}, nil)
		m.mailer.EXPECT().Send("jane@example.com", "Order ord-1 confirmed", gomock.Any()).Return(nil)
		expectSentLog(t, m, ChannelEmail)

		err := service.dispatch(context.Background(), Event{Kind: EventOrderConfirmed, Order: order})
		assert.NoError(t, err)
	})

	t.Run("Email disabled sends nothing", func(t *testing.T) {
		service, m := NewMock(t)
		m.settingsRepo.EXPECT().GetSettings(gomock.Any()).Return(&domain.NotificationSettings{}, nil)

		err := service.dispatch(context.Background(), Event{Kind: EventOrderCreated, Order: order})
		assert.NoError(t, err)
	})

	t.Run("Settings lookup failure", func(t *testing.T) {
		service, m := NewMock(t)
		m.settingsRepo.EXPECT().GetSettings(gomock.Any()).Return(nil, errors.New("database error"))

		err := service.dispatch(context.Background(), Event{Kind: EventOrderCreated, Order: order})
		assert.Error(t, err)
	})
}

func TestSendWithRetry_ContextCanceled(t *testing.T) {
	service, _ := NewMock(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := service.sendWithRetry(ctx, ChannelSlack, "url", "subject", func(context.Context) error {
		t.Fatal("send must not run after cancellation")
		return nil
	})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSendWithRetry_FailureLogged(t *testing.T) {
	service, m := NewMock(t)

	m.logRepo.EXPECT().CreateLog(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, log *domain.NotificationLog) error {
			assert.Equal(t, "failed", log.Status)
			assert.Equal(t, "connection refused", log.Error)
			return nil
		})
	m.logRepo.EXPECT().CreateLog(gomock.Any(), gomock.Any()).Return(nil)

	calls := 0
	err := service.sendWithRetry(context.Background(), ChannelWebhook, "url", "subject", func(context.Context) error {
		calls++
		if calls == 1 {
			return errors.New("connection refused")
		}
		return nil
	})
	assert.NoError(t, err)
	assert.Equal(t, 2, calls)
}

type rememberingDedup struct {
	cache.Noop
	seen map[string]bool
}

func (d *rememberingDedup) SetNX(ctx context.Context, key, value string, ttl time.Duration) (bool, error) {
	if d.seen[key] {
		return false, nil
	}
	d.seen[key] = true
	return true, nil
}

func TestScanLowStock(t *testing.T) {
	service, m := NewMock(t)
	service.dedup = &rememberingDedup{seen: map[string]bool{}}

	settings := &domain.NotificationSettings{LowStockThreshold: 5}
	products := []domain.Product{
		{ID: 10, Name: "Leather Boots", StockQuantity: 2},
		{ID: 11, Name: "Belt", StockQuantity: 4},
	}

	m.settingsRepo.EXPECT().GetSettings(gomock.Any()).Return(settings, nil).Times(2)
	m.productRepo.EXPECT().ListBelowStock(gomock.Any(), 5).Return(products, nil).Times(2)

	service.scanLowStock(context.Background())

	event := <-service.queue
	assert.Equal(t, EventLowStock, event.Kind)
	assert.Len(t, event.Products, 2)

	// A second pass within the dedup window raises no new alert.
	service.scanLowStock(context.Background())
	assert.Empty(t, service.queue)
}

func TestFormatText(t *testing.T) {
	service, _ := NewMock(t)

	tests := []struct {
		name            string
		event           Event
		expectedSubject string
		expectedText    string
	}{
		{
			name: "Order created",
			event: Event{Kind: EventOrderCreated, Order: &domain.Order{
				OrderNumber: "ord-1", CustomerName: "Jane Doe", TotalAmount: 350,
				Items: []domain.OrderItem{{}, {}},
			}},
			expectedSubject: "Order ord-1 received",
			expectedText:    "Jane Doe placed an order for 350.00 (2 items).",
		},
		{
			name: "Low stock",
			event: Event{Kind: EventLowStock, Products: []domain.Product{
				{Name: "Leather Boots", StockQuantity: 2},
			}},
			expectedSubject: "Low stock alert",
			expectedText:    "Leather Boots: 2 left\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			subject, text := service.formatText(tt.event)
			assert.Equal(t, tt.expectedSubject, subject)
			assert.Equal(t, tt.expectedText, text)
		})
	}
}

func TestEnqueue_DropsWhenFull(t *testing.T) {
	service, _ := NewMock(t)
	service.queue = make(chan Event, 1)

	service.OrderCreated(&domain.Order{OrderNumber: "ord-1"})
	service.OrderCreated(&domain.Order{OrderNumber: "ord-2"})

	assert.Len(t, service.queue, 1)
	event := <-service.queue
	assert.Equal(t, "ord-1", event.Order.OrderNumber)
}
