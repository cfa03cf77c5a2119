// Package rod drives a Chrome instance over the DevTools protocol using Rod.
package rod

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/bnema/webclicker/internal/domain"
	"github.com/bnema/webclicker/internal/ports"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

type Launcher struct {
	logger *slog.Logger
}

var _ ports.Launcher = (*Launcher)(nil)

func NewLauncher(logger *slog.Logger) *Launcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Launcher{logger: logger}
}

func (l *Launcher) Launch(ctx context.Context, opts ports.LaunchOptions) (ports.Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	chrome := newChromeLauncher(opts).Context(ctx)
	controlURL, err := chrome.Launch()
	if err != nil {
		return nil, fmt.Errorf("launch chrome: %w", err)
	}
	l.logger.Debug("chrome launched", "control_url", controlURL, "headless", opts.Headless)

	browser := rod.New().ControlURL(controlURL)
	if err := connect(ctx, browser, chrome); err != nil {
		return nil, err
	}

	page, err := browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		_ = browser.Close()
		chrome.Cleanup()
		return nil, fmt.Errorf("open page: %w", err)
	}

	timeout := opts.PageTimeout
	if timeout <= 0 {
		timeout = domain.DefaultPageTimeout
	}

	return &Session{
		browser:   browser,
		chrome:    chrome,
		page:      page,
		timeout:   timeout,
		selectors: opts.Selectors.WithDefaults(),
		logger:    l.logger,
	}, nil
}

// connect keeps the browser itself detached from ctx so the session outlives
// startup, but gives up on a slow connect as soon as ctx is done.
func connect(ctx context.Context, browser *rod.Browser, chrome *launcher.Launcher) error {
	connected := make(chan error, 1)
	go func() {
		connected <- browser.Connect()
	}()

	select {
	case err := <-connected:
		if err != nil {
			chrome.Kill()
			return fmt.Errorf("connect to chrome: %w", err)
		}
		return nil
	case <-ctx.Done():
		chrome.Kill()
		<-connected
		return fmt.Errorf("connect to chrome: %w", ctx.Err())
	}
}

func newChromeLauncher(opts ports.LaunchOptions) *launcher.Launcher {
	l := launcher.New().
		Headless(opts.Headless).
		Set("disable-gpu").
		Set("window-size", "1920,1080").
		Set("disable-extensions").
		Set("disable-notifications").
		Set("disable-popup-blocking")

	if opts.NoSandbox {
		l = l.NoSandbox(true)
	}
	if bin := resolveBrowserBin(opts.BrowserBin); bin != "" {
		l = l.Bin(bin)
	}

	return l
}

// resolveBrowserBin prefers an explicit path, then a system Chrome. An empty
// result lets Rod download its own Chromium.
func resolveBrowserBin(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if path, ok := launcher.LookPath(); ok {
		return path
	}
	return ""
}
