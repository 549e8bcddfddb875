package analytics

import (
	"cmp"
	"slices"
	"time"

	"github.com/rogerio-castellano/sales-analytics/internal/models"
)

type WeekdayStat struct {
	Day              int     `json:"day"`
	Name             string  `json:"name"`
	TransactionCount int64   `json:"transactionCount"`
	TotalAmount      float64 `json:"totalAmount"`
	Percentage       float64 `json:"percentage"`
}

type WeekdayReport struct {
	Days              []WeekdayStat `json:"days"`
	Busiest           WeekdayStat   `json:"busiest"`
	Quietest          WeekdayStat   `json:"quietest"`
	TotalTransactions int64         `json:"totalTransactions"`
}

// WeekdayPattern reports volume per day of week, Sunday first. Busiest and
// quietest days follow the same first-wins rule as the hourly analysis.
func WeekdayPattern(rows []models.WeekdayCount) (WeekdayReport, error) {
	valid := make([]models.WeekdayCount, 0, len(rows))
	var total int64
	for _, r := range rows {
		if r.Day < 0 || r.Day > 6 {
			continue
		}
		valid = append(valid, r)
		total += r.TransactionCount
	}
	if total == 0 {
		return WeekdayReport{}, ErrEmptyDataset
	}
	slices.SortStableFunc(valid, func(a, b models.WeekdayCount) int { return cmp.Compare(a.Day, b.Day) })

	report := WeekdayReport{TotalTransactions: total, Days: make([]WeekdayStat, 0, len(valid))}
	for i, r := range valid {
		stat := WeekdayStat{
			Day:              r.Day,
			Name:             time.Weekday(r.Day).String(),
			TransactionCount: r.TransactionCount,
			TotalAmount:      Money(r.TotalAmount),
			Percentage:       Percentage(r.TransactionCount, total),
		}
		report.Days = append(report.Days, stat)
		if i == 0 || stat.TransactionCount > report.Busiest.TransactionCount {
			report.Busiest = stat
		}
		if i == 0 || stat.TransactionCount < report.Quietest.TransactionCount {
			report.Quietest = stat
		}
	}
	return report, nil
}
