package models

import "time"

// ProductMovement aggregates stock movements of one product over a window.
type ProductMovement struct {
	ProductID     int64
	ProductName   string
	Inbound       int64
	Outbound      int64
	MovementCount int64
	// AllMovements counts the movements of every product in the window,
	// including the products cut off by a limit.
	AllMovements int64
}

// Movement is one stock change of a product. Positive deltas are inbound.
type Movement struct {
	ID        BigInt    `json:"id"`
	ProductID BigInt    `json:"productId"`
	Delta     int64     `json:"delta"`
	CreatedAt time.Time `json:"createdAt"`
}
