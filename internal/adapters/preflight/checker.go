package preflight

import (
	"context"
	"fmt"
	"time"

	"github.com/bnema/webclicker/internal/ports"
	"github.com/go-resty/resty/v2"
)

const (
	defaultTimeout = 15 * time.Second
	maxRedirects   = 10
	userAgent      = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/123.0.0.0 Safari/537.36"
)

// Checker confirms the polling site answers over HTTP before a browser is
// launched for it. Transport errors and 5xx answers fail the check. Any other
// status counts as reachable; the site may well answer 401 or 403 until the
// browser logs in.
type Checker struct {
	client *resty.Client
}

var _ ports.ReachabilityChecker = (*Checker)(nil)

func NewChecker(timeout time.Duration) *Checker {
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	client := resty.New()
	client.SetHeader("user-agent", userAgent)
	client.SetTimeout(timeout)
	client.SetRedirectPolicy(resty.FlexibleRedirectPolicy(maxRedirects))

	return &Checker{client: client}
}

func (c *Checker) Check(ctx context.Context, url string) error {
	res, err := c.client.R().
		SetContext(ctx).
		Get(url)
	if err != nil {
		return fmt.Errorf("reach %s: %w", url, err)
	}
	if res.StatusCode() >= 500 {
		return fmt.Errorf("reach %s: server answered %s", url, res.Status())
	}

	return nil
}
