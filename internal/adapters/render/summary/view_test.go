package summary

import (
	"errors"
	"testing"
	"time"

	"github.com/bnema/webclicker/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderRunSummary(t *testing.T) {
	start := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	output, err := RenderRun(Run{
		URL: "https://polls.example.com/live",
		Stats: domain.RunStats{
			Iterations:    120,
			ActiveChecks:  40,
			PollsSeen:     4,
			PollsAnswered: 3,
			Answers:       12,
			ClickFailures: 1,
			LastChoice:    "C",
			StartedAt:     start,
			StoppedAt:     start.Add(10*time.Minute + 2*time.Second),
		},
	})

	require.NoError(t, err)
	assert.Contains(t, output, "Poll Session Summary")
	assert.Contains(t, output, "https://polls.example.com/live")
	assert.Contains(t, output, "10m2s")
	assert.Contains(t, output, "120")
	assert.Contains(t, output, "last choice:")
	assert.Contains(t, output, "active checks:")
	assert.Contains(t, output, "polls answered:")
	assert.Contains(t, output, "75%")
	assert.Contains(t, output, "1 click(s) did not register")
	assert.Contains(t, output, "stopped cleanly")
	assert.NotContains(t, output, "page check")
}

func TestRenderRunWithoutPollsOmitsRate(t *testing.T) {
	output, err := RenderRun(Run{URL: "https://polls.example.com", Stats: domain.RunStats{Iterations: 3, QueryFailures: 2}})

	require.NoError(t, err)
	assert.NotContains(t, output, "answer rate")
	assert.NotContains(t, output, "last choice")
	assert.Contains(t, output, "2 page check(s) failed")
}

func TestRenderRunRateIsPerPollNotPerCheck(t *testing.T) {
	output, err := RenderRun(Run{
		URL: "https://polls.example.com",
		Stats: domain.RunStats{
			Iterations:    10,
			ActiveChecks:  10,
			PollsSeen:     1,
			PollsAnswered: 1,
			Answers:       1,
		},
	})

	require.NoError(t, err)
	assert.Contains(t, output, "100%")
	assert.NotContains(t, output, " 10%")
}

func TestRenderRunShowsStopError(t *testing.T) {
	output, err := RenderRun(Run{URL: "https://polls.example.com", Err: errors.New("clock broken")})

	require.NoError(t, err)
	assert.Contains(t, output, "stopped: clock broken")
}

func TestRenderProfiles(t *testing.T) {
	output, err := RenderProfiles([]domain.Profile{
		{
			Name:        "lecture",
			URL:         "https://polls.example.com/live",
			Interval:    3 * time.Second,
			Headless:    true,
			Username:    "alice",
			PasswordRef: "webclicker/lecture/password",
		},
		{Name: "seminar", URL: "https://seminar.example.org", Username: "bob"},
	})

	require.NoError(t, err)
	assert.Contains(t, output, "profiles: 2")
	assert.Contains(t, output, "lecture")
	assert.Contains(t, output, "3s")
	assert.Contains(t, output, "alice")
	assert.Contains(t, output, "bob (no password stored)")
	assert.Contains(t, output, "default")
	assert.NotContains(t, output, "hunter2")
}

func TestRenderProfilesEmpty(t *testing.T) {
	output, err := RenderProfiles(nil)

	require.NoError(t, err)
	assert.Contains(t, output, "No profiles saved.")
}

func TestRenderBarBounds(t *testing.T) {
	s := newStyles()

	assert.Contains(t, renderBar(1.5, 4, s), "====")
	assert.Contains(t, renderBar(-1, 4, s), "----")
	assert.Empty(t, renderBar(0.5, 0, s))
}
