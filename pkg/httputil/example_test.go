package httputil_test

import (
	"context"
	"fmt"
	"io"

	"github.com/propstack/rentquant/backend/pkg/config"
	"github.com/propstack/rentquant/backend/pkg/httputil"
	"github.com/propstack/rentquant/backend/pkg/logger"
)

// Example demonstrates a rate-limited GET request
func Example() {
	cfg := &config.Config{Env: "development", LogLevel: "info", LogFormat: "json"}
	log := logger.New(cfg)

	client := httputil.New(cfg, log).WithRateLimit(2, 1)

	resp, err := client.Get(context.Background(), "https://example.com/listings?page=1")
	if err != nil {
		fmt.Printf("request failed: %v\n", err)
		return
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	fmt.Printf("fetched %d bytes\n", len(body))
}
