package ports

import (
	"context"
	"time"

	"github.com/bnema/webclicker/internal/domain"
)

type LaunchOptions struct {
	Headless    bool
	BrowserBin  string
	NoSandbox   bool
	PageTimeout time.Duration
	Selectors   domain.Selectors
}

// Launcher opens a browser session. The returned Session owns the browser
// process and must be closed by the caller.
type Launcher interface {
	Launch(ctx context.Context, opts LaunchOptions) (Session, error)
}

type Session interface {
	Navigate(ctx context.Context, url string) error
	HasLoginForm(ctx context.Context) (bool, error)
	SubmitLogin(ctx context.Context, creds domain.Credentials) error
	PollActive(ctx context.Context) (bool, error)
	Choices(ctx context.Context) ([]ChoiceHandle, error)
	Close() error
}

// ChoiceHandle is valid only for the iteration that enumerated it.
type ChoiceHandle interface {
	Choice() domain.Choice
	Click(ctx context.Context) error
}

type ReachabilityChecker interface {
	Check(ctx context.Context, url string) error
}
