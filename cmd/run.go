package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bnema/webclicker/internal/adapters/render/summary"
	"github.com/bnema/webclicker/internal/application"
	"github.com/bnema/webclicker/internal/domain"
	"github.com/bnema/webclicker/internal/ports"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const preflightTimeout = 15 * time.Second

var runFlagKeys = map[string]string{
	"url":           keyURL,
	"interval":      keyInterval,
	"headless":      keyHeadless,
	"username":      keyUsername,
	"password":      keyPassword,
	"once-per-poll": keyOncePerPoll,
	"page-timeout":  keyPageTimeout,
	"browser-bin":   keyBrowserBin,
	"no-sandbox":    keyNoSandbox,
	"verbose":       keyVerbose,
}

func newRunCmd(app *app) *cobra.Command {
	var profileName string

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Watch a polling page and answer active polls",
		Example: "  webclicker run --url https://polls.example.com/live\n" +
			"  webclicker run --url polls.example.com --interval 3 --headless --username alice --password secret\n" +
			"  webclicker run --profile lecture --once-per-poll",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := bindFlags(app.config, cmd.Flags(), runFlagKeys); err != nil {
				return err
			}

			logger := newLogger(cmd.ErrOrStderr(), logLevel(app.config.GetBool(keyVerbose)))

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			cfg, err := resolveSessionConfig(ctx, app, cmd.Flags(), profileName)
			if err != nil {
				return &domain.StartupError{Stage: domain.StageConfig, Err: err}
			}

			session, err := startSession(ctx, cmd, app, cfg, logger)
			if err != nil {
				if ctx.Err() != nil {
					logger.Info("interrupted before the session started")
					return nil
				}
				return err
			}
			defer func() {
				if err := session.Close(); err != nil {
					logger.Warn("close browser", "error", err)
				}
			}()

			responder := application.NewResponder(
				app.clock,
				application.NewSelector(app.randSource),
				logger,
				application.ResponderOptions{Interval: cfg.Interval, OncePerPoll: cfg.OncePerPoll},
			)

			stats, runErr := responder.Run(ctx, session)
			logger.Info("stopped", "answers", stats.Answers, "polls_seen", stats.PollsSeen, "polls_answered", stats.PollsAnswered)

			rendered, err := app.runRenderer(summary.Run{URL: cfg.URL, Stats: stats, Err: runErr})
			if err != nil {
				return errors.Join(runErr, fmt.Errorf("render summary: %w", err))
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), rendered)

			return runErr
		},
	}

	flags := cmd.Flags()
	flags.String("url", "", "Polling page URL (https:// is assumed when no scheme is given)")
	flags.Float64("interval", domain.DefaultInterval.Seconds(), "Seconds between checks")
	flags.Bool("headless", false, "Run the browser without a window")
	flags.String("username", "", "Login username")
	flags.String("password", "", "Login password")
	flags.StringVar(&profileName, "profile", "", "Load URL, interval, and credentials from a saved profile")
	flags.Bool("once-per-poll", false, "Answer each poll once and wait for it to close")
	flags.String("browser-bin", "", "Chrome or Chromium binary (default: auto-detect or download)")
	flags.Bool("no-sandbox", false, "Disable the Chrome sandbox (containers, root)")
	flags.Duration("page-timeout", domain.DefaultPageTimeout, "Timeout for each page operation")
	flags.Bool("no-preflight", false, "Skip the HTTP reachability check before launching the browser")
	flags.BoolP("verbose", "v", false, "Log debug details")

	return cmd
}

func startSession(ctx context.Context, cmd *cobra.Command, app *app, cfg domain.SessionConfig, logger *slog.Logger) (ports.Session, error) {
	var checker ports.ReachabilityChecker
	if cfg.Preflight {
		checker = app.newChecker(preflightTimeout)
	}

	startupLogger := logger
	if app.spinner {
		startupLogger = newLogger(cmd.ErrOrStderr(), slog.LevelWarn)
	}
	initializer := application.NewInitializer(app.newLauncher(logger), checker, startupLogger)

	var session ports.Session
	start := func(ctx context.Context) error {
		var err error
		session, err = initializer.Start(ctx, cfg)
		return err
	}

	if !app.spinner {
		err := start(ctx)
		return session, err
	}

	if err := runStartupSpinner(ctx, cmd.ErrOrStderr(), "Opening "+cfg.URL+"...", start); err != nil {
		if session != nil {
			_ = session.Close()
		}
		return nil, err
	}
	logger.Info("session ready", "url", cfg.URL)
	return session, nil
}

// resolveSessionConfig layers, from lowest to highest precedence: defaults,
// config file, environment, the named profile, explicit flags.
func resolveSessionConfig(ctx context.Context, app *app, flags *pflag.FlagSet, profileName string) (domain.SessionConfig, error) {
	cfg := app.config

	interval, err := parseInterval(cfg.GetString(keyInterval))
	if err != nil {
		return domain.SessionConfig{}, err
	}

	sc := domain.SessionConfig{
		URL:      cfg.GetString(keyURL),
		Interval: interval,
		Headless: cfg.GetBool(keyHeadless),
		Credentials: domain.Credentials{
			Username: cfg.GetString(keyUsername),
			Password: cfg.GetString(keyPassword),
		},
		BrowserBin:  cfg.GetString(keyBrowserBin),
		NoSandbox:   cfg.GetBool(keyNoSandbox),
		PageTimeout: cfg.GetDuration(keyPageTimeout),
		OncePerPoll: cfg.GetBool(keyOncePerPoll),
		Preflight:   cfg.GetBool(keyPreflight),
		Selectors:   selectorsFromConfig(cfg),
	}

	if noPreflight, _ := flags.GetBool("no-preflight"); noPreflight {
		sc.Preflight = false
	}

	if profileName != "" {
		profile, creds, err := app.profiles.Resolve(ctx, domain.ProfileName(profileName))
		if err != nil {
			return domain.SessionConfig{}, err
		}
		applyProfile(&sc, flags, profile, creds)
	}

	if err := sc.Validate(); err != nil {
		return domain.SessionConfig{}, err
	}
	return sc.Normalized()
}

func applyProfile(sc *domain.SessionConfig, flags *pflag.FlagSet, profile domain.Profile, creds domain.Credentials) {
	changed := func(name string) bool {
		f := flags.Lookup(name)
		return f != nil && f.Changed
	}

	if !changed("url") && profile.URL != "" {
		sc.URL = profile.URL
	}
	if !changed("interval") && profile.Interval > 0 {
		sc.Interval = profile.Interval
	}
	if !changed("headless") && profile.Headless {
		sc.Headless = true
	}
	if !changed("username") && creds.Username != "" {
		sc.Credentials.Username = creds.Username
	}
	if !changed("password") && creds.Password != "" {
		sc.Credentials.Password = creds.Password
	}
}

func bindFlags(cfg *viper.Viper, flags *pflag.FlagSet, keys map[string]string) error {
	for flagName, key := range keys {
		flag := flags.Lookup(flagName)
		if flag == nil {
			continue
		}
		if err := cfg.BindPFlag(key, flag); err != nil {
			return fmt.Errorf("bind flag --%s: %w", flagName, err)
		}
	}
	return nil
}
