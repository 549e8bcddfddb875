package main

import "github.com/rogerio-castellano/sales-analytics/internal/cli"

// @title Sales Analytics API
// @version 1.0
// @description Hourly patterns, payment risk, suspicious timing and returns analytics over the sales database.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cli.Execute()
}
