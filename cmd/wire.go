package cmd

import (
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"
	"time"

	rodbrowser "github.com/bnema/webclicker/internal/adapters/browser/rod"
	"github.com/bnema/webclicker/internal/adapters/preflight"
	"github.com/bnema/webclicker/internal/adapters/render/summary"
	tomlrepo "github.com/bnema/webclicker/internal/adapters/repo/toml"
	chainstore "github.com/bnema/webclicker/internal/adapters/secrets/chain"
	filestore "github.com/bnema/webclicker/internal/adapters/secrets/file"
	"github.com/bnema/webclicker/internal/application"
	"github.com/bnema/webclicker/internal/domain"
	"github.com/bnema/webclicker/internal/ports"
	"github.com/spf13/viper"
)

type app struct {
	config          *viper.Viper
	profiles        *application.ProfileService
	newLauncher     func(*slog.Logger) ports.Launcher
	newChecker      func(time.Duration) ports.ReachabilityChecker
	clock           ports.Clock
	randSource      rand.Source
	runRenderer     func(summary.Run) (string, error)
	profileRenderer func([]domain.Profile) (string, error)
	spinner         bool
}

func wireApp() (*app, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	repo, err := tomlrepo.NewRepository(cfg)
	if err != nil {
		return nil, fmt.Errorf("wire profile repository: %w", err)
	}

	secretStore, err := wireSecretStore()
	if err != nil {
		return nil, err
	}

	return &app{
		config:   cfg,
		profiles: application.NewProfileService(repo, secretStore),
		newLauncher: func(logger *slog.Logger) ports.Launcher {
			return rodbrowser.NewLauncher(logger)
		},
		newChecker: func(timeout time.Duration) ports.ReachabilityChecker {
			return preflight.NewChecker(timeout)
		},
		clock:           ports.SystemClock{},
		runRenderer:     summary.RenderRun,
		profileRenderer: summary.RenderProfiles,
		spinner:         isTerminal(os.Stderr),
	}, nil
}

// wireSecretStore uses pass with a file fallback. WEBCLICKER_SECRETS_BACKEND=file
// skips pass entirely.
func wireSecretStore() (ports.SecretStore, error) {
	root := envOrDefault(envPrefix+"_SECRETS_DIR", "")
	if root == "" {
		defaultRoot, err := filestore.DefaultRoot()
		if err != nil {
			return nil, err
		}
		root = defaultRoot
	}

	switch backend := envOrDefault(envPrefix+"_SECRETS_BACKEND", "pass"); backend {
	case "file":
		return filestore.NewStore(root), nil
	case "pass":
		store, err := chainstore.NewPassFirstWithFileFallback(root)
		if err != nil {
			return nil, fmt.Errorf("wire secret store chain: %w", err)
		}
		return store, nil
	default:
		return nil, fmt.Errorf("unknown secrets backend %q (want pass or file)", backend)
	}
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
