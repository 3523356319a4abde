package log

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

// TestSecureHandlerMasksSensitiveKeys tests key-based masking.
func TestSecureHandlerMasksSensitiveKeys(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		key   string
		value string
	}{
		{"cookie_value", "GA1.2.1234567890.1700000000"},
		{"authorization", "Bearer abc"},
		{"password", "hunter2"},
		{"session_id", "abc123"},
		{"x-api-key", "key-123"},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.key, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			logger := slog.New(NewSecureHandler(slog.NewTextHandler(&buf, nil)))
			logger.Info("test", tc.key, tc.value)

			out := buf.String()
			if strings.Contains(out, tc.value) {
				t.Errorf("output contains raw value for key %q: %s", tc.key, out)
			}
			if !strings.Contains(out, MaskValue) {
				t.Errorf("output does not contain mask for key %q: %s", tc.key, out)
			}
		})
	}
}

// TestSecureHandlerMasksSensitiveValues tests value-pattern masking under
// harmless keys.
func TestSecureHandlerMasksSensitiveValues(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name  string
		value string
	}{
		{"jwt", "eyJhbGciOiJIUzI1NiJ9.eyJzdWIiOiIxIn0.sig"},
		{"tcf_consent_string", "CPc8aZAPc8aZAAfR3BENB-CoAP_AAH_AAAqIJNNd_H__bW9r-f5_aft0eY1P9_r37uQzDhfNk-4F3L_W_LwX52E7NF36tq4KmR4ku1bBIQNtHMnUDUmxaolVrzHsak2cpyNKJ7BkknsZe2dYGF9vm5tj-QKY7_5_9_bx2D-t_9v239z3z81Xn3d5_-_02PCdU5-9Dfn9fR_bc9KPt_58v8v8_____3_e__3_7997BIiAaADgAJYBnwEJgSeAp8CJgIqgT6AsEBkgdAgAA"},
		{"ga_client_id", "GA1.2.9999999999.1699999999"},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			logger := slog.New(NewSecureHandler(slog.NewTextHandler(&buf, nil)))
			logger.Info("test", "observed", tc.value)

			if strings.Contains(buf.String(), tc.value) {
				t.Errorf("output contains raw %s value", tc.name)
			}
		})
	}
}

// TestSecureHandlerKeepsHarmlessAttrs tests that ordinary attributes pass
// through untouched.
func TestSecureHandlerKeepsHarmlessAttrs(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(NewSecureHandler(slog.NewTextHandler(&buf, nil)))
	logger.Info("cookie observed", "name", "_ga", "domain", ".example.com", "category", "analytics")

	out := buf.String()
	for _, want := range []string{"_ga", ".example.com", "analytics"} {
		if !strings.Contains(out, want) {
			t.Errorf("output should contain %q: %s", want, out)
		}
	}
	if strings.Contains(out, MaskValue) {
		t.Errorf("harmless attributes were masked: %s", out)
	}
}

// TestSecureHandlerMasksGroups tests recursion into attribute groups.
func TestSecureHandlerMasksGroups(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(NewSecureHandler(slog.NewTextHandler(&buf, nil)))
	logger.Info("request", slog.Group("headers",
		slog.String("authorization", "Bearer tok"),
		slog.String("accept", "text/html"),
	))

	out := buf.String()
	if strings.Contains(out, "Bearer tok") {
		t.Errorf("grouped sensitive value not masked: %s", out)
	}
	if !strings.Contains(out, "text/html") {
		t.Errorf("grouped harmless value missing: %s", out)
	}
}

// TestNewSecureLoggerLevels tests the verbose flag's level mapping.
func TestNewSecureLoggerLevels(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	quiet := NewSecureLogger(&buf, false)
	quiet.Info("should be suppressed")
	if buf.Len() != 0 {
		t.Errorf("non-verbose logger emitted info output: %s", buf.String())
	}

	buf.Reset()
	verbose := NewSecureLogger(&buf, true)
	verbose.Debug("should appear")
	if buf.Len() == 0 {
		t.Error("verbose logger suppressed debug output")
	}
}
