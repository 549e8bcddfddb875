package models

import (
	"math"
	"time"
)

// MaterializedViewFreshness compares a base table with the materialized view
// built from it. It is diagnostic only and never persisted.
type MaterializedViewFreshness struct {
	View              string     `json:"view"`
	BaseTable         string     `json:"baseTable"`
	BaseRowCount      BigInt     `json:"baseRowCount"`
	ViewRowCount      BigInt     `json:"viewRowCount"`
	LastBaseTimestamp *time.Time `json:"lastBaseTimestamp"`
	LastViewTimestamp *time.Time `json:"lastViewTimestamp"`
	StaleHours        float64    `json:"staleHours"`
	Stale             bool       `json:"stale"`
	CheckedAt         time.Time  `json:"checkedAt"`
}

// NewFreshness derives staleness from raw counts and timestamps. StaleHours
// is how far the newest view row lags behind the newest base row; a view
// with no rows lags from the newest base row until checkedAt.
func NewFreshness(view, baseTable string, baseCount, viewCount int64, lastBase, lastView *time.Time, checkedAt time.Time) MaterializedViewFreshness {
	f := MaterializedViewFreshness{
		View:              view,
		BaseTable:         baseTable,
		BaseRowCount:      BigInt(baseCount),
		ViewRowCount:      BigInt(viewCount),
		LastBaseTimestamp: lastBase,
		LastViewTimestamp: lastView,
		CheckedAt:         checkedAt,
	}

	var lag time.Duration
	switch {
	case lastBase != nil && lastView != nil:
		lag = lastBase.Sub(*lastView)
	case lastBase != nil:
		lag = checkedAt.Sub(*lastBase)
	}
	if lag > 0 {
		f.StaleHours = math.Round(lag.Hours()*100) / 100
	}

	f.Stale = baseCount != viewCount || f.StaleHours > 0
	return f
}
