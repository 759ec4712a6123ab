package shared

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestParseLogLevel(t *testing.T) {
	cases := map[string]zerolog.Level{
		"debug":   zerolog.DebugLevel,
		" WARN ":  zerolog.WarnLevel,
		"trace":   zerolog.TraceLevel,
		"":        zerolog.InfoLevel,
		"verbose": zerolog.InfoLevel,
	}
	for in, want := range cases {
		if got := ParseLogLevel(in); got != want {
			t.Fatalf("ParseLogLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestCreateFileLogger(t *testing.T) {
	logpath := filepath.Join(t.TempDir(), "logs", "tpinlock.log")

	logger, closer, err := CreateFileLogger(logpath, zerolog.DebugLevel)
	if err != nil {
		t.Fatal(err)
	}
	defer closer.Close()

	logger.Info().Str("key", "K").Msg("pin saved")
	named := NamedLogger("unlock")
	named.Debug().Msg("page opened")

	raw, err := os.ReadFile(logpath)
	if err != nil {
		t.Fatal(err)
	}
	out := string(raw)
	if !strings.Contains(out, "pin saved") || !strings.Contains(out, "key=K") {
		t.Fatalf("log line missing, got %q", out)
	}
	if !strings.Contains(out, "component=unlock") {
		t.Fatalf("named logger must tag the component, got %q", out)
	}
}
