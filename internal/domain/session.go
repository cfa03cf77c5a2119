package domain

import (
	"fmt"
	"net/url"
	"strings"
	"time"
)

const (
	DefaultInterval    = 5 * time.Second
	DefaultPageTimeout = 10 * time.Second
)

type Credentials struct {
	Username string
	Password string
}

func (c Credentials) Present() bool {
	return c.Username != "" && c.Password != ""
}

func (c Credentials) partial() bool {
	return (c.Username == "") != (c.Password == "")
}

// SessionConfig is built once at startup and only read afterwards.
type SessionConfig struct {
	URL         string
	Interval    time.Duration
	Headless    bool
	Credentials Credentials
	BrowserBin  string
	NoSandbox   bool
	PageTimeout time.Duration
	OncePerPoll bool
	Preflight   bool
	Selectors   Selectors
}

func (c SessionConfig) Validate() error {
	if strings.TrimSpace(c.URL) == "" {
		return ErrURLRequired
	}
	if _, err := NormalizeURL(c.URL); err != nil {
		return err
	}
	if c.Interval <= 0 {
		return fmt.Errorf("%w: %s", ErrInvalidInterval, c.Interval)
	}
	if c.Credentials.partial() {
		return ErrIncompleteCredentials
	}
	if c.PageTimeout <= 0 {
		return fmt.Errorf("page timeout must be positive, got %s", c.PageTimeout)
	}

	return nil
}

// Normalized returns a copy with the URL normalized and empty selectors
// replaced by defaults.
func (c SessionConfig) Normalized() (SessionConfig, error) {
	u, err := NormalizeURL(c.URL)
	if err != nil {
		return SessionConfig{}, err
	}

	c.URL = u.String()
	c.Selectors = c.Selectors.WithDefaults()
	return c, nil
}

func NormalizeURL(raw string) (*url.URL, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, ErrURLRequired
	}
	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("%w: unsupported scheme %q", ErrInvalidURL, u.Scheme)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("%w: missing host", ErrInvalidURL)
	}

	return u, nil
}
