package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// CashPaymentMethod is the payment method literal stored for cash sales.
const CashPaymentMethod = "efectivo"

// Transaction is one row of the transactions table.
type Transaction struct {
	ID            BigInt          `json:"id"`
	CustomerID    *BigInt         `json:"customerId,omitempty"`
	PaymentMethod string          `json:"paymentMethod"`
	Total         decimal.Decimal `json:"total"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// HourlyCount is the raw per-hour aggregate produced by the query layer.
type HourlyCount struct {
	Hour             int
	TransactionCount int64
	TotalAmount      decimal.Decimal
}

// WeekdayCount is the raw per-day-of-week aggregate. Day follows
// Postgres EXTRACT(DOW): 0 is Sunday.
type WeekdayCount struct {
	Day              int
	TransactionCount int64
	TotalAmount      decimal.Decimal
}

// PaymentMethodStats is the raw per-method aggregate.
type PaymentMethodStats struct {
	Method      string
	Count       int64
	TotalAmount decimal.Decimal
	AvgTicket   decimal.Decimal
	Min         decimal.Decimal
	Max         decimal.Decimal
}

// TableCounts backs the connectivity probe.
type TableCounts struct {
	Transactions BigInt `json:"transactions"`
	Returns      BigInt `json:"returns"`
	Products     BigInt `json:"products"`
}
