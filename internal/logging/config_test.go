package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func TestParseLevel(t *testing.T) {
	cases := []struct {
		raw  string
		want zerolog.Level
		ok   bool
	}{
		{raw: "", want: zerolog.InfoLevel, ok: false},
		{raw: " Debug ", want: zerolog.DebugLevel, ok: true},
		{raw: "diagnostics", want: zerolog.TraceLevel, ok: true},
		{raw: "warning", want: zerolog.WarnLevel, ok: true},
		{raw: "off", want: zerolog.Disabled, ok: true},
		{raw: "loud", want: zerolog.InfoLevel, ok: false},
	}
	for _, tc := range cases {
		got, ok := ParseLevel(tc.raw)
		if got != tc.want || ok != tc.ok {
			t.Fatalf("ParseLevel(%q)=%v,%v want %v,%v", tc.raw, got, ok, tc.want, tc.ok)
		}
	}
}

func TestApplyJSONWritesStructuredEvents(t *testing.T) {
	prevLogger, prevLevel := log.Logger, zerolog.GlobalLevel()
	t.Cleanup(func() {
		log.Logger = prevLogger
		zerolog.SetGlobalLevel(prevLevel)
	})

	var buf bytes.Buffer
	Apply(Config{Level: zerolog.InfoLevel, JSON: true, Out: &buf})
	log.Debug().Msg("hidden")
	log.Info().Int("packets", 3).Msg("bits decoded")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("debug event written at info level: %s", out)
	}
	if !strings.Contains(out, `"packets":3`) || !strings.Contains(out, `"message":"bits decoded"`) {
		t.Fatalf("unexpected log output: %s", out)
	}

	if err := SetLevel("error"); err != nil {
		t.Fatalf("set level: %v", err)
	}
	if zerolog.GlobalLevel() != zerolog.ErrorLevel {
		t.Fatalf("level not applied: %v", zerolog.GlobalLevel())
	}
	if err := SetLevel("shout"); err == nil {
		t.Fatalf("expected error for unknown level")
	}
}
