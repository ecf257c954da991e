package logger

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestParseLevel(t *testing.T) {
	cases := []struct {
		in   string
		want zerolog.Level
	}{
		{"trace", zerolog.TraceLevel},
		{"debug", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"warning", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"  Debug ", zerolog.DebugLevel},
		{"", zerolog.InfoLevel},
		{"verbose", zerolog.InfoLevel},
	}

	for _, tc := range cases {
		if got := parseLevel(tc.in); got != tc.want {
			t.Fatalf("parseLevel(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestInit_WritesJSONToOutput(t *testing.T) {
	var buf bytes.Buffer
	log := Init(Options{Level: "debug", Output: &buf})

	log.Info().Str("component", "catalog").Msg("started")

	out := buf.String()
	if !strings.Contains(out, `"level":"info"`) {
		t.Fatalf("expected level field, got %q", out)
	}
	if !strings.Contains(out, `"message":"started"`) {
		t.Fatalf("expected message field, got %q", out)
	}
	if !strings.Contains(out, `"component":"catalog"`) {
		t.Fatalf("expected contextual field, got %q", out)
	}
}

func TestInit_FiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	log := Init(Options{Level: "warn", Output: &buf})

	log.Debug().Msg("noise")
	if buf.Len() != 0 {
		t.Fatalf("expected debug to be filtered, got %q", buf.String())
	}

	log.Error().Msg("real problem")
	if !strings.Contains(buf.String(), "real problem") {
		t.Fatalf("expected error to pass, got %q", buf.String())
	}
}
