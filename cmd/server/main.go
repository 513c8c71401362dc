package main

import (
	"log"
	"net/http"

	"little_lemon/internal/config"
	"little_lemon/internal/logger"
	"little_lemon/internal/middleware"
	"little_lemon/internal/routes"
)

func main() {
	// Structured logging to file
	logger.Setup()

	// Connect to the database
	config.InitDB()

	// Router with request logging and recovery
	r := routes.SetupRouter()

	// Wrap with CORS
	handler := middleware.EnableCORS(r)

	addr := "0.0.0.0:" + config.GetEnv("PORT", "8080")
	log.Printf("🚀 Server running at %s", addr)
	log.Fatal(http.ListenAndServe(addr, handler))
}
