package config

import (
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"pressroom/internal/shared/utils"
)

// Config holds the whole application configuration.
// Populated from environment variables (a .env file is loaded by main).
type Config struct {
	App     AppConfig
	Content ContentConfig
	Lint    LintConfig
}

type AppConfig struct {
	Name        string
	Environment string // development, staging, production
	Port        string
	Version     string
}

// ContentConfig pins the on-disk layout the external site generator reads:
// post files under Dir (one subdirectory per section), author records
// under AuthorsDir.
type ContentConfig struct {
	Dir             string
	AuthorsDir      string
	ScanWorkers     int
	DefaultTemplate string // applied when a post carries no template field
}

// LintConfig is the pass/fail policy for cmd/lint. The scan itself never
// fails; FailOn decides which reported rules make the exit code nonzero.
type LintConfig struct {
	FailOn []string // rule names, or ["all"]
	Format string   // text, json
}

// Load reads config from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Name:        utils.GetEnvVariable("APP_NAME", "Pressroom API"),
			Environment: utils.GetEnvVariable("APP_ENV", "development"),
			Port:        utils.GetEnvVariable("APP_PORT", "8080"),
			Version:     utils.GetEnvVariable("APP_VERSION", "1.0.0"),
		},
		Content: ContentConfig{
			Dir:             utils.GetEnvVariable("CONTENT_DIR", "content"),
			AuthorsDir:      utils.GetEnvVariable("AUTHORS_DIR", "data/authors"),
			ScanWorkers:     utils.GetEnvInt("SCAN_WORKERS", 4),
			DefaultTemplate: utils.GetEnvVariable("DEFAULT_TEMPLATE", "page.html"),
		},
		Lint: LintConfig{
			FailOn: utils.SplitCSV(utils.GetEnvVariable("LINT_FAIL_ON", "all")),
			Format: utils.GetEnvVariable("LINT_FORMAT", "text"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks the loaded config is usable.
func (c *Config) Validate() error {
	if err := validation.ValidateStruct(&c.App,
		validation.Field(&c.App.Environment,
			validation.Required,
			validation.In("development", "staging", "production"),
		),
		validation.Field(&c.App.Port, validation.Required),
	); err != nil {
		return err
	}

	if err := validation.ValidateStruct(&c.Content,
		validation.Field(&c.Content.Dir, validation.Required),
		validation.Field(&c.Content.AuthorsDir, validation.Required),
		validation.Field(&c.Content.ScanWorkers, validation.Min(1), validation.Max(64)),
	); err != nil {
		return err
	}

	return validation.ValidateStruct(&c.Lint,
		validation.Field(&c.Lint.Format, validation.In("text", "json")),
	)
}
