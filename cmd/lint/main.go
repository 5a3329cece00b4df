// cmd/lint/main.go
package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/joho/godotenv"

	"pressroom/pkg/container"
	"pressroom/pkg/logger"
)

// lint scans the content tree, prints the aggregate validation report, and
// exits nonzero when the report contains a rule the policy treats as fatal.
// The scan itself never aborts early: CI always sees the full error set.
func main() {
	format := flag.String("format", "", "report format: text or json (overrides LINT_FORMAT)")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("[Config] No .env file found, using system environment variables")
	}

	logger.Init(os.Getenv("APP_ENV"))
	if *verbose {
		logger.SetLevel("debug")
	}

	c, err := container.NewContainer()
	if err != nil {
		log.Fatalf("[Container] Failed to initialize: %v", err)
	}

	report, err := c.PostService.Load(context.Background())
	if err != nil {
		log.Fatalf("[Scan] %v", err)
	}

	outFormat := c.Config.Lint.Format
	if *format != "" {
		outFormat = *format
	}

	if err := printReport(os.Stdout, report, outFormat); err != nil {
		log.Fatalf("[Report] %v", err)
	}

	if shouldFail(report.Errors, c.Config.Lint.FailOn) {
		os.Exit(1)
	}
}
