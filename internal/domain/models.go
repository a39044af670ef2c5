package domain

import "time"

type User struct {
	ID           int       `db:"id"`
	Login        string    `db:"login"`
	PasswordHash string    `db:"password_hash"`
	Role         string    `db:"role"`
	CreatedAt    time.Time `db:"created_at"`
}

type Category struct {
	ID          int    `db:"id"`
	Name        string `db:"name"`
	Slug        string `db:"slug"`
	Description string `db:"description"`
}

type Product struct {
	ID            int       `db:"id"`
	CategoryID    *int      `db:"category_id"`
	Name          string    `db:"name"`
	Description   string    `db:"description"`
	Price         float64   `db:"price"`
	StockQuantity int       `db:"stock_quantity"`
	IsActive      bool      `db:"is_active"`
	CreatedAt     time.Time `db:"created_at"`
	UpdatedAt     time.Time `db:"updated_at"`

	// Owned collections, loaded separately.
	Images   []string `db:"-"`
	Colors   []string `db:"-"`
	Sizes    []string `db:"-"`
	Features []string `db:"-"`
}

type Order struct {
	ID              int         `db:"id"`
	OrderNumber     string      `db:"order_number"`
	CustomerName    string      `db:"customer_name"`
	CustomerEmail   string      `db:"customer_email"`
	CustomerPhone   string      `db:"customer_phone"`
	ShippingAddress string      `db:"shipping_address"`
	TotalAmount     float64     `db:"total_amount"`
	Status          OrderStatus `db:"status"`
	PaymentStatus   string      `db:"payment_status"`
	Notes           string      `db:"notes"`
	AdminNotes      string      `db:"admin_notes"`
	CreatedAt       time.Time   `db:"created_at"`
	UpdatedAt       time.Time   `db:"updated_at"`

	Items []OrderItem `db:"-"`
}

// OrderItem snapshots the product at order time so later catalog edits do
// not alter historical orders. ProductID is kept only for stock adjustment.
type OrderItem struct {
	ID              int     `db:"id"`
	OrderID         int     `db:"order_id"`
	ProductID       int     `db:"product_id"`
	ProductName     string  `db:"product_name"`
	ProductImage    string  `db:"product_image"`
	ProductCategory string  `db:"product_category"`
	UnitPrice       float64 `db:"unit_price"`
	Quantity        int     `db:"quantity"`
	Size            string  `db:"size"`
	Color           string  `db:"color"`
}

type Balance struct {
	ID             int     `db:"id"`
	AdminID        int     `db:"admin_id"`
	CurrentBalance float64 `db:"current_balance"`
	TotalEarned    float64 `db:"total_earned"`
	TotalWithdrawn float64 `db:"total_withdrawn"`
}

const (
	TransactionSale       = "sale"
	TransactionWithdrawal = "withdrawal"
)

// Transaction is an append-only ledger row. BalanceAfter must always equal
// BalanceBefore plus the signed amount.
type Transaction struct {
	ID            int       `db:"id"`
	AdminID       int       `db:"admin_id"`
	OrderID       *int      `db:"order_id"`
	Type          string    `db:"type"`
	Amount        float64   `db:"amount"`
	BalanceBefore float64   `db:"balance_before"`
	BalanceAfter  float64   `db:"balance_after"`
	CreatedAt     time.Time `db:"created_at"`
}

type NotificationSettings struct {
	ID                int       `db:"id"`
	EmailEnabled      bool      `db:"email_enabled"`
	AdminEmail        string    `db:"admin_email"`
	WebhookURL        string    `db:"webhook_url"`
	SlackWebhookURL   string    `db:"slack_webhook_url"`
	DiscordWebhookURL string    `db:"discord_webhook_url"`
	LowStockThreshold int       `db:"low_stock_threshold"`
	UpdatedAt         time.Time `db:"updated_at"`
}

type NotificationLog struct {
	ID        int       `db:"id"`
	Channel   string    `db:"channel"`
	Recipient string    `db:"recipient"`
	Subject   string    `db:"subject"`
	Status    string    `db:"status"`
	Error     string    `db:"error"`
	CreatedAt time.Time `db:"created_at"`
}
