package application

import (
	"context"
	"log/slog"

	"github.com/bnema/webclicker/internal/domain"
	"github.com/bnema/webclicker/internal/ports"
)

type Initializer struct {
	launcher ports.Launcher
	checker  ports.ReachabilityChecker
	logger   *slog.Logger
}

// NewInitializer accepts a nil checker, in which case the preflight is skipped.
func NewInitializer(launcher ports.Launcher, checker ports.ReachabilityChecker, logger *slog.Logger) *Initializer {
	if logger == nil {
		logger = slog.Default()
	}

	return &Initializer{launcher: launcher, checker: checker, logger: logger}
}

// Start opens a browser on the configured page and logs in when the page asks
// for it. Every error is a *domain.StartupError, and no session is left open
// when one is returned.
func (i *Initializer) Start(ctx context.Context, cfg domain.SessionConfig) (ports.Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, startupError(domain.StageConfig, err)
	}
	cfg, err := cfg.Normalized()
	if err != nil {
		return nil, startupError(domain.StageConfig, err)
	}

	if cfg.Preflight && i.checker != nil {
		if err := i.checker.Check(ctx, cfg.URL); err != nil {
			return nil, startupError(domain.StagePreflight, err)
		}
	}

	session, err := i.launcher.Launch(ctx, ports.LaunchOptions{
		Headless:    cfg.Headless,
		BrowserBin:  cfg.BrowserBin,
		NoSandbox:   cfg.NoSandbox,
		PageTimeout: cfg.PageTimeout,
		Selectors:   cfg.Selectors,
	})
	if err != nil {
		return nil, startupError(domain.StageLaunch, err)
	}

	if err := i.prepare(ctx, session, cfg); err != nil {
		if closeErr := session.Close(); closeErr != nil {
			i.logger.Warn("close browser after failed startup", "error", closeErr)
		}
		return nil, err
	}

	return session, nil
}

func (i *Initializer) prepare(ctx context.Context, session ports.Session, cfg domain.SessionConfig) error {
	i.logger.Info("opening polling page", "url", cfg.URL, "headless", cfg.Headless)
	if err := session.Navigate(ctx, cfg.URL); err != nil {
		return startupError(domain.StageNavigate, err)
	}

	return i.login(ctx, session, cfg.Credentials)
}

func (i *Initializer) login(ctx context.Context, session ports.Session, creds domain.Credentials) error {
	hasForm, err := session.HasLoginForm(ctx)
	if err != nil {
		return startupError(domain.StageLogin, err)
	}

	if !hasForm {
		if creds.Present() {
			i.logger.Warn("credentials given but the page shows no login form, continuing")
		}
		return nil
	}

	if !creds.Present() {
		return startupError(domain.StageLogin, domain.ErrCredentialsRequired)
	}

	i.logger.Info("logging in", "username", creds.Username)
	if err := session.SubmitLogin(ctx, creds); err != nil {
		return startupError(domain.StageLogin, err)
	}

	stillShown, err := session.HasLoginForm(ctx)
	if err != nil {
		return startupError(domain.StageLogin, err)
	}
	if stillShown {
		return startupError(domain.StageLogin, domain.ErrLoginRejected)
	}

	i.logger.Info("logged in")
	return nil
}

func startupError(stage domain.StartupStage, err error) error {
	return &domain.StartupError{Stage: stage, Err: err}
}
