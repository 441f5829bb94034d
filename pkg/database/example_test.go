package database_test

import (
	"context"
	"fmt"
	"time"

	"github.com/propstack/rentquant/backend/pkg/config"
	"github.com/propstack/rentquant/backend/pkg/database"
)

// Example demonstrates how to connect to the database
func Example() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		return
	}

	db, err := database.New(cfg)
	if err != nil {
		fmt.Printf("Failed to connect: %v\n", err)
		return
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.Ping(ctx); err != nil {
		fmt.Printf("Ping failed: %v\n", err)
		return
	}

	fmt.Println("Connected to database")
}
