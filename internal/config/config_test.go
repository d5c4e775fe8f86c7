package config

import "testing"

func TestAddr(t *testing.T) {
	t.Setenv("PREPSCORE_ADDR", "")
	t.Setenv("PORT", "")
	if got := Addr(); got != ":8080" {
		t.Fatalf("expected default :8080, got %q", got)
	}

	t.Setenv("PORT", "9000")
	if got := Addr(); got != ":9000" {
		t.Fatalf("expected :9000, got %q", got)
	}

	t.Setenv("PORT", ":9001")
	if got := Addr(); got != ":9001" {
		t.Fatalf("expected :9001, got %q", got)
	}

	t.Setenv("PREPSCORE_ADDR", "127.0.0.1:7000")
	if got := Addr(); got != "127.0.0.1:7000" {
		t.Fatalf("expected PREPSCORE_ADDR to win, got %q", got)
	}
}

func TestMaxBodyBytes(t *testing.T) {
	t.Setenv("PREPSCORE_MAX_BODY_BYTES", "")
	if got := MaxBodyBytes(); got != DefaultMaxBodyBytes {
		t.Fatalf("expected default %d, got %d", DefaultMaxBodyBytes, got)
	}

	t.Setenv("PREPSCORE_MAX_BODY_BYTES", "2048")
	if got := MaxBodyBytes(); got != 2048 {
		t.Fatalf("expected 2048, got %d", got)
	}

	t.Setenv("PREPSCORE_MAX_BODY_BYTES", "0")
	if got := MaxBodyBytes(); got != DefaultMaxBodyBytes {
		t.Fatalf("expected default for 0, got %d", got)
	}

	t.Setenv("PREPSCORE_MAX_BODY_BYTES", "-5")
	if got := MaxBodyBytes(); got != DefaultMaxBodyBytes {
		t.Fatalf("expected default for negative, got %d", got)
	}

	t.Setenv("PREPSCORE_MAX_BODY_BYTES", "nope")
	if got := MaxBodyBytes(); got != DefaultMaxBodyBytes {
		t.Fatalf("expected default for invalid, got %d", got)
	}
}

func TestLogSettings(t *testing.T) {
	t.Setenv("PREPSCORE_LOG_LEVEL", "DEBUG")
	t.Setenv("PREPSCORE_LOG_FORMAT", "json")
	if got := LogLevel(); got != "debug" {
		t.Fatalf("expected debug, got %q", got)
	}
	if got := LogFormat(); got != "json" {
		t.Fatalf("expected json, got %q", got)
	}
}

func TestMetricsEnabled(t *testing.T) {
	t.Setenv("PREPSCORE_METRICS", "false")
	if MetricsEnabled() {
		t.Fatalf("expected metrics disabled")
	}
	t.Setenv("PREPSCORE_METRICS", "true")
	if !MetricsEnabled() {
		t.Fatalf("expected metrics enabled")
	}
}
