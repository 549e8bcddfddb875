package handlers

import (
	"github.com/rogerio-castellano/sales-analytics/internal/analytics"
	"github.com/rogerio-castellano/sales-analytics/internal/models"
	"github.com/rogerio-castellano/sales-analytics/internal/refresh"
)

type CredentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResult struct {
	Token     string `json:"token"`
	ExpiresIn int64  `json:"expiresIn"`
}

type HealthResult struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

type HighRiskResult struct {
	MinAmount    float64                     `json:"minAmount"`
	Count        int                         `json:"count"`
	Transactions []analytics.RiskTransaction `json:"transactions"`
}

type SuspiciousResult struct {
	MaxMinutes  float64                       `json:"maxMinutes"`
	WindowHours float64                       `json:"windowHours"`
	Count       int                           `json:"count"`
	Patterns    []analytics.SuspiciousPattern `json:"patterns"`
}

type ReturnsAnalysis struct {
	Metrics     analytics.ReturnMetricsView     `json:"metrics"`
	Reasons     []analytics.ReasonShare         `json:"reasons"`
	TopProducts []analytics.ReturnedProductView `json:"topProducts"`
}

type ConnectivityResult struct {
	Database string             `json:"database"`
	Counts   models.TableCounts `json:"counts"`
}

type TopProductsResult struct {
	Limit    int                             `json:"limit"`
	Products []analytics.ReturnedProductView `json:"products"`
}

type MovementsResult struct {
	Days     int                         `json:"days"`
	Limit    int                         `json:"limit"`
	Products []analytics.MovementSummary `json:"products"`
}

type RefreshHistoryResult struct {
	Runs []refresh.Run `json:"runs"`
}
