package browser

import (
	"log/slog"
	"testing"
	"time"

	"github.com/leroux1606/compliancekit/internal/config"
)

func TestOptionsNormalize(t *testing.T) {
	t.Parallel()

	t.Run("fills defaults for zero values", func(t *testing.T) {
		t.Parallel()
		got := Options{}.normalize()
		if got.UserAgent != config.DefaultUserAgent {
			t.Errorf("UserAgent = %q, want default", got.UserAgent)
		}
		if got.SettleDelay != config.DefaultSettleDelay {
			t.Errorf("SettleDelay = %v, want %v", got.SettleDelay, config.DefaultSettleDelay)
		}
		if got.NetworkIdleDelay != config.DefaultNetworkIdleDelay {
			t.Errorf("NetworkIdleDelay = %v, want %v", got.NetworkIdleDelay, config.DefaultNetworkIdleDelay)
		}
		if got.ViewportWidth != config.DefaultViewportWidth {
			t.Errorf("ViewportWidth = %d, want %d", got.ViewportWidth, config.DefaultViewportWidth)
		}
		if got.ViewportHeight != config.DefaultViewportHeight {
			t.Errorf("ViewportHeight = %d, want %d", got.ViewportHeight, config.DefaultViewportHeight)
		}
		if got.Logger == nil {
			t.Error("Logger is nil, want slog.Default()")
		}
	})

	t.Run("keeps explicit values", func(t *testing.T) {
		t.Parallel()
		logger := slog.Default()
		in := Options{
			UserAgent:        "testbot/1.0",
			SettleDelay:      500 * time.Millisecond,
			NetworkIdleDelay: time.Second,
			ViewportWidth:    800,
			ViewportHeight:   600,
			Logger:           logger,
		}
		got := in.normalize()
		if got.UserAgent != in.UserAgent {
			t.Errorf("UserAgent = %q, want %q", got.UserAgent, in.UserAgent)
		}
		if got.SettleDelay != in.SettleDelay {
			t.Errorf("SettleDelay = %v, want %v", got.SettleDelay, in.SettleDelay)
		}
		if got.ViewportWidth != 800 || got.ViewportHeight != 600 {
			t.Errorf("viewport = %dx%d, want 800x600", got.ViewportWidth, got.ViewportHeight)
		}
	})
}
