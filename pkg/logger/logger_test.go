package logger

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

func TestIsTruthy(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"", false},
		{"0", false},
		{"false", false},
		{"FALSE", false},
		{" ", false},
		{"1", true},
		{"true", true},
		{"yes", true},
	}

	for _, tc := range cases {
		if got := IsTruthy(tc.in); got != tc.want {
			t.Errorf("IsTruthy(%q) = %v; want %v", tc.in, got, tc.want)
		}
	}
}

func TestConfigureLevel(t *testing.T) {
	defer Configure(false, os.Stderr)

	var buf bytes.Buffer
	Configure(false, &buf)
	Debug("hidden message")
	Info("visible message", "operation", "sum")

	out := buf.String()
	if strings.Contains(out, "hidden message") {
		t.Errorf("debug message logged with debug disabled: %s", out)
	}
	if !strings.Contains(out, "visible message") || !strings.Contains(out, "operation=sum") {
		t.Errorf("info message missing from output: %s", out)
	}

	buf.Reset()
	Configure(true, &buf)
	Debug("now visible")
	if !strings.Contains(buf.String(), "now visible") {
		t.Errorf("debug message missing with debug enabled: %s", buf.String())
	}
}
