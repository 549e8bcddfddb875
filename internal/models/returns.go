package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReturnMetrics is the single row of mv_returns_metrics.
type ReturnMetrics struct {
	TotalReturns    int64
	TotalAmount     decimal.Decimal
	AverageAmount   decimal.Decimal
	TotalQuantity   int64
	UniqueCustomers int64
	UniqueProducts  int64
	LastReturnAt    *time.Time
}

// ReasonBreakdown is one row of mv_returns_by_reason.
type ReasonBreakdown struct {
	Motive      string
	Count       int64
	TotalAmount decimal.Decimal
}

// ReturnedProduct is one row of mv_returns_top_products.
type ReturnedProduct struct {
	ProductID     int64
	ProductName   string
	ReturnCount   int64
	TotalQuantity int64
	TotalAmount   decimal.Decimal
}

// DailyReturns is one day of the enriched returns view.
type DailyReturns struct {
	Day         time.Time
	Count       int64
	TotalAmount decimal.Decimal
}
