package analytics

import (
	"cmp"
	"slices"

	"github.com/rogerio-castellano/sales-analytics/internal/models"
)

const (
	MovementRestock   = "Restock"
	MovementDepletion = "Depletion"
	MovementBalanced  = "Balanced"
)

type MovementSummary struct {
	ProductID     models.BigInt `json:"productId"`
	ProductName   string        `json:"productName"`
	Inbound       int64         `json:"inbound"`
	Outbound      int64         `json:"outbound"`
	Net           int64         `json:"net"`
	MovementCount int64         `json:"movementCount"`
	Share         float64       `json:"share"`
	Direction     string        `json:"direction"`
}

// SummarizeMovements labels each product by the sign of its net stock change
// and computes its share of all movements in the window, busiest product
// first. Rows without AllMovements are shared over the rows given.
func SummarizeMovements(rows []models.ProductMovement) []MovementSummary {
	var total, all int64
	for _, r := range rows {
		total += r.MovementCount
		all = max(all, r.AllMovements)
	}
	total = max(total, all)

	out := make([]MovementSummary, 0, len(rows))
	for _, r := range rows {
		net := r.Inbound - r.Outbound
		direction := MovementBalanced
		switch {
		case net > 0:
			direction = MovementRestock
		case net < 0:
			direction = MovementDepletion
		}
		out = append(out, MovementSummary{
			ProductID:     models.BigInt(r.ProductID),
			ProductName:   r.ProductName,
			Inbound:       r.Inbound,
			Outbound:      r.Outbound,
			Net:           net,
			MovementCount: r.MovementCount,
			Share:         Percentage(r.MovementCount, total),
			Direction:     direction,
		})
	}
	slices.SortStableFunc(out, func(a, b MovementSummary) int {
		if c := cmp.Compare(b.MovementCount, a.MovementCount); c != 0 {
			return c
		}
		return cmp.Compare(a.ProductID, b.ProductID)
	})
	return out
}
