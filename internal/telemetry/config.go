package telemetry

import (
	"fmt"
	"os"
)

const honeycombHost = "api.honeycomb.io"

// Config carries the Honeycomb credentials and the reported build.
type Config struct {
	APIKey  string
	Dataset string
	Version string // Reported as service.version
}

// ConfigFromEnv reads HONEYCOMB_PIXELCRAWLER_API_KEY and
// HONEYCOMB_PIXELCRAWLER_DATASET.
func ConfigFromEnv() Config {
	cfg := Config{
		APIKey:  os.Getenv("HONEYCOMB_PIXELCRAWLER_API_KEY"),
		Dataset: os.Getenv("HONEYCOMB_PIXELCRAWLER_DATASET"),
	}
	if cfg.Dataset == "" {
		cfg.Dataset = serviceName
	}
	return cfg
}

// Enabled reports whether traces should be exported.
func (c Config) Enabled() bool {
	return c.APIKey != ""
}

// headers returns the OTLP request headers Honeycomb expects.
func (c Config) headers() map[string]string {
	return map[string]string{
		"x-honeycomb-team":    c.APIKey,
		"x-honeycomb-dataset": c.Dataset,
	}
}

func (c Config) String() string {
	if !c.Enabled() {
		return "telemetry disabled"
	}
	return fmt.Sprintf("exporting to %s, dataset %s", honeycombHost, c.Dataset)
}
