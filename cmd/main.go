package main

import (
	"log/slog"
	"os"

	"github.com/kevinreyes061304-ops/meal-planner/config"
	"github.com/kevinreyes061304-ops/meal-planner/routes"
	"github.com/kevinreyes061304-ops/meal-planner/utils"
)

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func main() {
	utils.SetupLogging()
	config.InitDB()

	r := routes.SetupRouter()

	addr := ":" + getEnv("PORT", "8080")
	slog.Info("Meal planner server starting", "address", addr)
	if err := r.Run(addr); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}
