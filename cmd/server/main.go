package main

import (
	"os"

	"chartgen/internal/app"
)

// @title        chartgen API
// @version      1.0
// @description  Generates schema-validated ECharts options from natural-language requests.
// @BasePath     /api
func main() {
	os.Exit(app.Run())
}
