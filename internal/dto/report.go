package dto

type ReportResponseDTO struct {
	OrdersByStatus map[string]int     `json:"orders_by_status"`
	TotalRevenue   float64            `json:"total_revenue"`
	ProductCount   int                `json:"product_count"`
	LowStockCount  int                `json:"low_stock_count"`
	RecentOrders   []OrderResponseDTO `json:"recent_orders"`
}
