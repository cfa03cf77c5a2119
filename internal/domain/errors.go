package domain

import (
	"errors"
	"fmt"
)

var (
	ErrURLRequired           = errors.New("url is required")
	ErrInvalidURL            = errors.New("invalid url")
	ErrInvalidInterval       = errors.New("poll interval must be positive")
	ErrIncompleteCredentials = errors.New("username and password must be given together")
	ErrCredentialsRequired   = errors.New("page requires login but no credentials were given")
	ErrLoginRejected         = errors.New("login form still shown after submitting credentials")
	ErrLoginFormNotFound     = errors.New("could not identify login form elements")
	ErrNoChoices             = errors.New("no answer choices to select from")
	ErrProfileNotFound       = errors.New("profile not found")
	ErrSecretNotFound        = errors.New("secret not found")
)

type StartupStage string

const (
	StageConfig    StartupStage = "config"
	StagePreflight StartupStage = "preflight"
	StageLaunch    StartupStage = "launch"
	StageNavigate  StartupStage = "navigate"
	StageLogin     StartupStage = "login"
)

// StartupError is fatal: the session never reached the polling loop.
type StartupError struct {
	Stage StartupStage
	Err   error
}

func (e *StartupError) Error() string {
	return fmt.Sprintf("startup failed at %s: %v", e.Stage, e.Err)
}

func (e *StartupError) Unwrap() error {
	return e.Err
}

// TransientQueryError is a failed page read. The loop treats it as
// "no poll this iteration".
type TransientQueryError struct {
	Op  string
	Err error
}

func (e *TransientQueryError) Error() string {
	return fmt.Sprintf("transient page query %s: %v", e.Op, e.Err)
}

func (e *TransientQueryError) Unwrap() error {
	return e.Err
}

// InteractionError is a click that did not register.
type InteractionError struct {
	Choice Choice
	Err    error
}

func (e *InteractionError) Error() string {
	return fmt.Sprintf("click answer %s: %v", e.Choice, e.Err)
}

func (e *InteractionError) Unwrap() error {
	return e.Err
}

func IsStartupError(err error) bool {
	var startupErr *StartupError
	return errors.As(err, &startupErr)
}
