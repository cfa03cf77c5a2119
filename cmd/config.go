package cmd

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	tomlrepo "github.com/bnema/webclicker/internal/adapters/repo/toml"
	"github.com/bnema/webclicker/internal/domain"
	"github.com/spf13/viper"
)

const (
	envPrefix  = "WEBCLICKER"
	configName = "config"
	configType = "toml"

	keyURL         = "url"
	keyInterval    = "interval"
	keyHeadless    = "headless"
	keyUsername    = "username"
	keyPassword    = "password"
	keyOncePerPoll = "once_per_poll"
	keyPreflight   = "preflight"
	keyPageTimeout = "page_timeout"
	keyVerbose     = "verbose"
	keyBrowserBin  = "browser.bin"
	keyNoSandbox   = "browser.no_sandbox"

	keyNoPollText    = "selectors.no_poll_text"
	keyChoiceCSS     = "selectors.choice_css"
	keyChoiceAttr    = "selectors.choice_attr"
	keyChoiceLabels  = "selectors.choice_labels"
	keySubmitWords   = "selectors.submit_words"
	keyUsernameHints = "selectors.username_hints"
)

// loadConfig reads ~/.webclicker/config.toml when present (or the file named by
// WEBCLICKER_CONFIG) and layers WEBCLICKER_* environment variables over it.
func loadConfig() (*viper.Viper, error) {
	cfg := viper.New()
	cfg.SetEnvPrefix(envPrefix)
	cfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	cfg.AutomaticEnv()

	cfg.SetDefault(keyInterval, domain.DefaultInterval.Seconds())
	cfg.SetDefault(keyPageTimeout, domain.DefaultPageTimeout)
	cfg.SetDefault(keyPreflight, true)

	if explicit := envOrDefault(envPrefix+"_CONFIG", ""); explicit != "" {
		cfg.SetConfigFile(explicit)
		if err := cfg.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config file %s: %w", explicit, err)
		}
		return cfg, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}

	cfg.SetConfigName(configName)
	cfg.SetConfigType(configType)
	cfg.AddConfigPath(filepath.Join(homeDir, tomlrepo.ConfigDir))

	if err := cfg.ReadInConfig(); err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	return cfg, nil
}

const maxIntervalSeconds = float64(math.MaxInt64 / int64(time.Second))

// parseInterval accepts plain seconds ("5", "2.5") or a Go duration ("1500ms").
func parseInterval(raw string) (time.Duration, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return domain.DefaultInterval, nil
	}

	if seconds, err := strconv.ParseFloat(raw, 64); err == nil {
		if math.IsNaN(seconds) || math.Abs(seconds) > maxIntervalSeconds {
			return 0, fmt.Errorf("%w: %q", domain.ErrInvalidInterval, raw)
		}
		return time.Duration(seconds * float64(time.Second)), nil
	}

	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", domain.ErrInvalidInterval, raw)
	}
	return d, nil
}

func selectorsFromConfig(cfg *viper.Viper) domain.Selectors {
	return domain.Selectors{
		NoPollText:    cfg.GetString(keyNoPollText),
		ChoiceCSS:     cfg.GetStringSlice(keyChoiceCSS),
		ChoiceAttr:    cfg.GetString(keyChoiceAttr),
		ChoiceLabels:  cfg.GetStringSlice(keyChoiceLabels),
		SubmitWords:   cfg.GetStringSlice(keySubmitWords),
		UsernameHints: cfg.GetStringSlice(keyUsernameHints),
	}
}
