package main

import (
	"os"

	"github.com/propstack/rentquant/backend/cmd/rentquant/commands"
)

// main is the entry point for the RentQuant CLI
// ⭐ 통합 CLI 진입점: go run ./cmd/rentquant [command]
func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
