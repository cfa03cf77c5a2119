package rod

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/bnema/webclicker/internal/ports"
	"github.com/go-rod/rod/lib/launcher/flags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewChromeLauncherHeadlessFlag(t *testing.T) {
	headless := newChromeLauncher(ports.LaunchOptions{Headless: true, BrowserBin: "/opt/chrome"})
	visible := newChromeLauncher(ports.LaunchOptions{Headless: false, BrowserBin: "/opt/chrome"})

	assert.True(t, headless.Has(flags.Headless))
	assert.False(t, visible.Has(flags.Headless))
}

func TestNewChromeLauncherSetsWindowAndQuietFlags(t *testing.T) {
	l := newChromeLauncher(ports.LaunchOptions{BrowserBin: "/opt/chrome"})

	assert.Equal(t, "1920,1080", l.Get("window-size"))
	assert.True(t, l.Has("disable-gpu"))
	assert.True(t, l.Has("disable-extensions"))
	assert.True(t, l.Has("disable-notifications"))
	assert.True(t, l.Has("disable-popup-blocking"))
}

func TestNewChromeLauncherNoSandbox(t *testing.T) {
	l := newChromeLauncher(ports.LaunchOptions{NoSandbox: true, BrowserBin: "/opt/chrome"})

	assert.True(t, l.Has(flags.NoSandbox))
}

func TestResolveBrowserBinPrefersExplicitPath(t *testing.T) {
	assert.Equal(t, "/opt/chrome", resolveBrowserBin("/opt/chrome"))
}

func TestLaunchStopsWaitingWhenContextIsCancelled(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("fake browser binary is a shell script")
	}

	// A browser that never prints its DevTools address.
	bin := filepath.Join(t.TempDir(), "chrome")
	require.NoError(t, os.WriteFile(bin, []byte("#!/bin/sh\nsleep 30\n"), 0o755))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() {
		_, err := NewLauncher(nil).Launch(ctx, ports.LaunchOptions{Headless: true, BrowserBin: bin})
		done <- err
	}()

	time.Sleep(200 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		require.ErrorIs(t, err, context.Canceled)
	case <-time.After(10 * time.Second):
		t.Fatal("Launch kept waiting after the context was cancelled")
	}
}

func TestLaunchRejectsCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewLauncher(nil).Launch(ctx, ports.LaunchOptions{BrowserBin: "/nonexistent/chrome"})
	require.ErrorIs(t, err, context.Canceled)
}
