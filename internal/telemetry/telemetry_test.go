package telemetry

import (
	"context"
	"testing"
)

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("HONEYCOMB_PIXELCRAWLER_API_KEY", "")
	t.Setenv("HONEYCOMB_PIXELCRAWLER_DATASET", "")

	cfg := ConfigFromEnv()
	if cfg.Enabled() {
		t.Error("Enabled() = true without an API key")
	}
	if cfg.Dataset != serviceName {
		t.Errorf("Dataset = %q, want %q", cfg.Dataset, serviceName)
	}

	t.Setenv("HONEYCOMB_PIXELCRAWLER_API_KEY", "abc")
	t.Setenv("HONEYCOMB_PIXELCRAWLER_DATASET", "dev")
	cfg = ConfigFromEnv()
	if !cfg.Enabled() || cfg.Dataset != "dev" {
		t.Errorf("ConfigFromEnv() = %+v, want enabled with dataset dev", cfg)
	}
}

func TestSetupDisabledIsNoop(t *testing.T) {
	ctx := context.Background()
	shutdown, err := Setup(ctx, Config{})
	if err != nil {
		t.Fatalf("Setup() error = %v", err)
	}
	if err := shutdown(ctx); err != nil {
		t.Errorf("shutdown() error = %v", err)
	}

	_, span := Tracer("test").Start(ctx, "noop")
	if span.SpanContext().IsValid() {
		t.Error("disabled telemetry produced a recording span")
	}
	span.End()
}

func TestConfigHeaders(t *testing.T) {
	h := Config{APIKey: "abc", Dataset: "dev"}.headers()
	want := map[string]string{"x-honeycomb-team": "abc", "x-honeycomb-dataset": "dev"}
	for k, v := range want {
		if h[k] != v {
			t.Errorf("headers()[%q] = %q, want %q", k, h[k], v)
		}
	}
	if len(h) != len(want) {
		t.Errorf("len(headers()) = %d, want %d", len(h), len(want))
	}
}

func TestConfigString(t *testing.T) {
	tests := []struct {
		cfg  Config
		want string
	}{
		{Config{}, "telemetry disabled"},
		{Config{APIKey: "abc", Dataset: "dev"}, "exporting to api.honeycomb.io, dataset dev"},
	}
	for _, tt := range tests {
		if got := tt.cfg.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestNewResource(t *testing.T) {
	tests := []struct {
		version string
		want    string
	}{
		{"v1.2.3", "v1.2.3"},
		{"", "dev"},
	}
	for _, tt := range tests {
		res, err := newResource(context.Background(), Config{Version: tt.version})
		if err != nil {
			t.Fatalf("newResource() error = %v", err)
		}
		got := map[string]string{}
		for _, kv := range res.Attributes() {
			got[string(kv.Key)] = kv.Value.Emit()
		}
		if got["service.name"] != serviceName {
			t.Errorf("service.name = %q, want %q", got["service.name"], serviceName)
		}
		if got["service.version"] != tt.want {
			t.Errorf("service.version = %q, want %q", got["service.version"], tt.want)
		}
	}
}
