package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/focusbridge/focusbridge-backend/internal/app"
)

func main() {
	_ = godotenv.Load()

	a, err := app.New()
	if err != nil {
		fmt.Printf("failed to start: %v\n", err)
		os.Exit(1)
	}
	defer a.Close()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	a.Log.Info("Starting server", "port", port)
	if err := a.Run(":" + port); err != nil {
		a.Log.Fatal("server exited", "error", err)
	}
}
