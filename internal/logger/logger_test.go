package logger

import (
	"bytes"
	"strings"
	"testing"
)

func TestNew_Levels(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		level      string
		debugShown bool
		infoShown  bool
	}{
		{name: "debug level shows debug", level: "debug", debugShown: true, infoShown: true},
		{name: "info level hides debug", level: "info", debugShown: false, infoShown: true},
		{name: "warn level hides info", level: "warn", debugShown: false, infoShown: false},
		{name: "unknown level falls back to info", level: "bogus", debugShown: false, infoShown: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			log := New(Config{Level: tt.level, Output: &buf})
			log.Debug().Msg("debug line")
			log.Info().Msg("info line")

			gotDebug := strings.Contains(buf.String(), "debug line")
			if gotDebug != tt.debugShown {
				t.Errorf("debug visible = %v, want %v", gotDebug, tt.debugShown)
			}
			gotInfo := strings.Contains(buf.String(), "info line")
			if gotInfo != tt.infoShown {
				t.Errorf("info visible = %v, want %v", gotInfo, tt.infoShown)
			}
		})
	}
}

func TestNew_ServiceField(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := New(Config{Level: "info", Output: &buf})
	log.Info().Msg("hello")

	if !strings.Contains(buf.String(), `"service":"guidepress"`) {
		t.Errorf("log line missing service field: %q", buf.String())
	}
}
