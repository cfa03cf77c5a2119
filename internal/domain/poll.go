package domain

import (
	"fmt"
	"time"
)

// Choice describes one answer element. It is only meaningful within the
// iteration that enumerated it.
type Choice struct {
	Index int
	Label string
}

func (c Choice) String() string {
	if c.Label == "" {
		return fmt.Sprintf("#%d", c.Index)
	}
	return c.Label
}

type LoopState string

const (
	StateIdle      LoopState = "idle"
	StateAnswering LoopState = "answering"
)

type Outcome string

const (
	OutcomeIdle            Outcome = "idle"
	OutcomeNoChoices       Outcome = "no_choices"
	OutcomeAnswered        Outcome = "answered"
	OutcomeClickFailed     Outcome = "click_failed"
	OutcomeAlreadyAnswered Outcome = "already_answered"
)

func (o Outcome) State() LoopState {
	switch o {
	case OutcomeAnswered, OutcomeClickFailed, OutcomeAlreadyAnswered:
		return StateAnswering
	default:
		return StateIdle
	}
}

// RunStats summarizes one run. A poll is counted once from the first check
// that sees it active until a check finds no poll again.
type RunStats struct {
	Iterations    int
	ActiveChecks  int
	PollsSeen     int
	PollsAnswered int
	Answers       int
	ClickFailures int
	QueryFailures int
	LastChoice    string
	StartedAt     time.Time
	StoppedAt     time.Time

	pollOpen     bool
	pollAnswered bool
}

func (s *RunStats) Record(outcome Outcome) {
	s.Iterations++
	if outcome == OutcomeIdle {
		s.pollOpen = false
		return
	}

	s.ActiveChecks++
	if !s.pollOpen {
		s.pollOpen = true
		s.pollAnswered = false
		s.PollsSeen++
	}

	switch outcome {
	case OutcomeAnswered:
		s.Answers++
		if !s.pollAnswered {
			s.pollAnswered = true
			s.PollsAnswered++
		}
	case OutcomeClickFailed:
		s.ClickFailures++
	}
}

func (s RunStats) Duration() time.Duration {
	if s.StartedAt.IsZero() || s.StoppedAt.Before(s.StartedAt) {
		return 0
	}
	return s.StoppedAt.Sub(s.StartedAt)
}
