package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeURL(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr error
	}{
		{name: "adds https", raw: "polls.example.com/live", want: "https://polls.example.com/live"},
		{name: "keeps http", raw: "http://localhost:8080/poll", want: "http://localhost:8080/poll"},
		{name: "trims spaces", raw: "  https://polls.example.com  ", want: "https://polls.example.com"},
		{name: "empty", raw: " ", wantErr: ErrURLRequired},
		{name: "unsupported scheme", raw: "ftp://polls.example.com", wantErr: ErrInvalidURL},
		{name: "missing host", raw: "https://", wantErr: ErrInvalidURL},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeURL(tt.raw)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func validSessionConfig() SessionConfig {
	return SessionConfig{
		URL:         "polls.example.com",
		Interval:    DefaultInterval,
		PageTimeout: DefaultPageTimeout,
	}
}

func TestSessionConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*SessionConfig)
		wantErr error
	}{
		{name: "valid", mutate: func(*SessionConfig) {}},
		{name: "missing url", mutate: func(c *SessionConfig) { c.URL = "" }, wantErr: ErrURLRequired},
		{name: "zero interval", mutate: func(c *SessionConfig) { c.Interval = 0 }, wantErr: ErrInvalidInterval},
		{name: "negative interval", mutate: func(c *SessionConfig) { c.Interval = -time.Second }, wantErr: ErrInvalidInterval},
		{name: "username only", mutate: func(c *SessionConfig) { c.Credentials.Username = "alice" }, wantErr: ErrIncompleteCredentials},
		{name: "password only", mutate: func(c *SessionConfig) { c.Credentials.Password = "secret" }, wantErr: ErrIncompleteCredentials},
		{name: "full credentials", mutate: func(c *SessionConfig) {
			c.Credentials = Credentials{Username: "alice", Password: "secret"}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validSessionConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestSessionConfigNormalizedFillsSelectorDefaults(t *testing.T) {
	cfg := validSessionConfig()
	cfg.Selectors = Selectors{ChoiceCSS: []string{"li.option"}}

	normalized, err := cfg.Normalized()
	require.NoError(t, err)

	assert.Equal(t, "https://polls.example.com", normalized.URL)
	assert.Equal(t, []string{"li.option"}, normalized.Selectors.ChoiceCSS)
	assert.Equal(t, DefaultSelectors().NoPollText, normalized.Selectors.NoPollText)
	assert.Equal(t, "polls.example.com", cfg.URL)
}

func TestSelectorsIsChoiceLabel(t *testing.T) {
	s := DefaultSelectors()

	assert.True(t, s.IsChoiceLabel("A"))
	assert.True(t, s.IsChoiceLabel("E"))
	assert.False(t, s.IsChoiceLabel("F"))
	assert.False(t, s.IsChoiceLabel("a"))
}

func TestRunStatsRecord(t *testing.T) {
	var stats RunStats
	for _, outcome := range []Outcome{
		OutcomeIdle,
		OutcomeAnswered,
		OutcomeAlreadyAnswered,
		OutcomeClickFailed,
		OutcomeNoChoices,
		OutcomeIdle,
	} {
		stats.Record(outcome)
	}

	assert.Equal(t, 6, stats.Iterations)
	assert.Equal(t, 4, stats.ActiveChecks)
	assert.Equal(t, 1, stats.PollsSeen)
	assert.Equal(t, 1, stats.PollsAnswered)
	assert.Equal(t, 1, stats.Answers)
	assert.Equal(t, 1, stats.ClickFailures)
}

func TestRunStatsCountsEachPollOnce(t *testing.T) {
	var stats RunStats
	for _, outcome := range []Outcome{
		OutcomeAnswered,
		OutcomeAlreadyAnswered,
		OutcomeAlreadyAnswered,
		OutcomeAlreadyAnswered,
		OutcomeIdle,
		OutcomeNoChoices,
		OutcomeClickFailed,
		OutcomeIdle,
		OutcomeAnswered,
		OutcomeAnswered,
	} {
		stats.Record(outcome)
	}

	assert.Equal(t, 8, stats.ActiveChecks)
	assert.Equal(t, 3, stats.PollsSeen)
	assert.Equal(t, 2, stats.PollsAnswered)
	assert.Equal(t, 3, stats.Answers)
	assert.Equal(t, 1, stats.ClickFailures)
}

func TestRunStatsDuration(t *testing.T) {
	start := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, 90*time.Second, RunStats{StartedAt: start, StoppedAt: start.Add(90 * time.Second)}.Duration())
	assert.Zero(t, RunStats{StoppedAt: start}.Duration())
	assert.Zero(t, RunStats{StartedAt: start, StoppedAt: start.Add(-time.Second)}.Duration())
}

func TestOutcomeState(t *testing.T) {
	assert.Equal(t, StateIdle, OutcomeIdle.State())
	assert.Equal(t, StateIdle, OutcomeNoChoices.State())
	assert.Equal(t, StateAnswering, OutcomeAnswered.State())
	assert.Equal(t, StateAnswering, OutcomeClickFailed.State())
	assert.Equal(t, StateAnswering, OutcomeAlreadyAnswered.State())
}

func TestChoiceString(t *testing.T) {
	assert.Equal(t, "B", Choice{Index: 1, Label: "B"}.String())
	assert.Equal(t, "#2", Choice{Index: 2}.String())
}

func TestProfileValidate(t *testing.T) {
	valid := Profile{Name: "lecture-1", URL: "polls.example.com", Interval: 3 * time.Second}
	require.NoError(t, valid.Validate())

	badName := valid
	badName.Name = "-lecture"
	assert.Error(t, badName.Validate())

	badURL := valid
	badURL.URL = "ftp://polls.example.com"
	assert.ErrorIs(t, badURL.Validate(), ErrInvalidURL)

	badInterval := valid
	badInterval.Interval = -time.Second
	assert.ErrorIs(t, badInterval.Validate(), ErrInvalidInterval)
}

func TestPasswordSecretKey(t *testing.T) {
	assert.Equal(t, "webclicker/lecture/password", PasswordSecretKey("lecture"))
}

func TestStartupErrorUnwraps(t *testing.T) {
	err := error(&StartupError{Stage: StageLogin, Err: ErrLoginRejected})

	assert.True(t, IsStartupError(err))
	assert.ErrorIs(t, err, ErrLoginRejected)
	assert.Contains(t, err.Error(), "login")
	assert.False(t, IsStartupError(errors.New("plain")))
}
