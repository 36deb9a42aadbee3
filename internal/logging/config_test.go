package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]zerolog.Level{
		"trace":   zerolog.TraceLevel,
		" DEBUG ": zerolog.DebugLevel,
		"warning": zerolog.WarnLevel,
		"off":     zerolog.Disabled,
	}
	for raw, want := range cases {
		got, ok := parseLevel(raw)
		if !ok || got != want {
			t.Fatalf("parseLevel(%q) = %v,%v want %v", raw, got, ok, want)
		}
	}
	if _, ok := parseLevel("loud"); ok {
		t.Fatalf("expected unknown level to be rejected")
	}
	if _, ok := parseLevel(""); ok {
		t.Fatalf("expected empty level to be ignored")
	}
}

func TestApplyEnvOverrides(t *testing.T) {
	t.Setenv(EnvLogLevel, "error")
	t.Setenv(EnvLogTimestamp, "false")
	t.Setenv(EnvLogJSON, "true")
	t.Setenv(EnvLogNoColor, "nope")

	cfg := DefaultConfig(ProfileRuntime)
	applyEnvOverrides(&cfg)
	if cfg.Level != zerolog.ErrorLevel {
		t.Fatalf("unexpected level: %v", cfg.Level)
	}
	if cfg.Timestamp {
		t.Fatalf("expected timestamp disabled")
	}
	if !cfg.JSON {
		t.Fatalf("expected json output")
	}
	if cfg.NoColor {
		t.Fatalf("invalid bool must not override nocolor")
	}
}

func TestApplyJSONWritesFields(t *testing.T) {
	prevLevel := zerolog.GlobalLevel()
	t.Cleanup(func() { zerolog.SetGlobalLevel(prevLevel) })

	var buf bytes.Buffer
	logger := Apply(Config{Level: zerolog.InfoLevel, JSON: true, Out: &buf})
	logger.Info().Str("tag", "se").Msg("registered")
	logger.Debug().Msg("hidden")

	out := buf.String()
	if !strings.Contains(out, `"tag":"se"`) || !strings.Contains(out, `"app":"spellctl"`) {
		t.Fatalf("unexpected output: %s", out)
	}
	if strings.Contains(out, "hidden") {
		t.Fatalf("debug line leaked at info level: %s", out)
	}
}
