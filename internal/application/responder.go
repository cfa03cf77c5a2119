package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/bnema/webclicker/internal/domain"
	"github.com/bnema/webclicker/internal/ports"
)

type ResponderOptions struct {
	Interval time.Duration
	// OncePerPoll answers a poll once and then waits for it to close.
	OncePerPoll bool
}

type Iteration struct {
	Outcome domain.Outcome
	Choice  domain.Choice
	Err     error
}

// Responder is the polling loop. It runs strictly sequentially on one session.
type Responder struct {
	clock    ports.Clock
	selector *Selector
	logger   *slog.Logger
	opts     ResponderOptions

	state    domain.LoopState
	answered bool
}

func NewResponder(clock ports.Clock, selector *Selector, logger *slog.Logger, opts ResponderOptions) *Responder {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	if selector == nil {
		selector = NewSelector(nil)
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Responder{
		clock:    clock,
		selector: selector,
		logger:   logger,
		opts:     opts,
		state:    domain.StateIdle,
	}
}

// Run loops until ctx is cancelled. Cancellation is a clean stop and yields a
// nil error; an iteration cut short by it is not recorded.
func (r *Responder) Run(ctx context.Context, session ports.Session) (domain.RunStats, error) {
	if r.opts.Interval <= 0 {
		return domain.RunStats{}, fmt.Errorf("%w: %s", domain.ErrInvalidInterval, r.opts.Interval)
	}

	stats := domain.RunStats{StartedAt: r.clock.Now()}
	r.logger.Info("watching for polls", "interval", r.opts.Interval, "once_per_poll", r.opts.OncePerPoll)

	for {
		if ctx.Err() != nil {
			stats.StoppedAt = r.clock.Now()
			return stats, nil
		}

		it := r.Step(ctx, session)
		if it.Err != nil && ctx.Err() != nil {
			stats.StoppedAt = r.clock.Now()
			return stats, nil
		}
		stats.Record(it.Outcome)
		if it.Outcome == domain.OutcomeAnswered {
			stats.LastChoice = it.Choice.String()
		}
		var queryErr *domain.TransientQueryError
		if errors.As(it.Err, &queryErr) {
			stats.QueryFailures++
		}

		if err := r.clock.Sleep(ctx, r.opts.Interval); err != nil {
			stats.StoppedAt = r.clock.Now()
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return stats, nil
			}
			return stats, fmt.Errorf("sleep between polls: %w", err)
		}
	}
}

// Step runs one iteration: detect, enumerate, select and click.
func (r *Responder) Step(ctx context.Context, session ports.Session) Iteration {
	it := r.step(ctx, session)
	r.setState(it.Outcome.State())
	return it
}

func (r *Responder) step(ctx context.Context, session ports.Session) Iteration {
	active, err := session.PollActive(ctx)
	if err != nil {
		queryErr := &domain.TransientQueryError{Op: "poll_active", Err: err}
		if ctx.Err() == nil {
			r.logger.Debug("poll check failed, treating as no poll", "error", queryErr)
		}
		return Iteration{Outcome: domain.OutcomeIdle, Err: queryErr}
	}

	if !active {
		if r.answered {
			r.logger.Info("poll closed, waiting for the next one")
		}
		r.answered = false
		return Iteration{Outcome: domain.OutcomeIdle}
	}

	if r.opts.OncePerPoll && r.answered {
		return Iteration{Outcome: domain.OutcomeAlreadyAnswered}
	}

	handles, err := session.Choices(ctx)
	if err != nil {
		queryErr := &domain.TransientQueryError{Op: "choices", Err: err}
		if ctx.Err() == nil {
			r.logger.Debug("choice lookup failed, skipping", "error", queryErr)
		}
		return Iteration{Outcome: domain.OutcomeNoChoices, Err: queryErr}
	}
	if len(handles) == 0 {
		r.logger.Warn("poll is active but no answer choices were found")
		return Iteration{Outcome: domain.OutcomeNoChoices}
	}

	choice, err := r.selector.SelectAndClick(ctx, handles)
	if err != nil {
		if ctx.Err() == nil {
			r.logger.Warn("answer click did not register", "choice", choice.String(), "error", err)
		}
		return Iteration{Outcome: domain.OutcomeClickFailed, Choice: choice, Err: err}
	}

	r.answered = true
	r.logger.Info("answered poll", "choice", choice.String(), "choices", len(handles))
	return Iteration{Outcome: domain.OutcomeAnswered, Choice: choice}
}

func (r *Responder) setState(next domain.LoopState) {
	if next == r.state {
		return
	}
	if next == domain.StateAnswering {
		r.logger.Info("active poll detected")
	}
	r.logger.Debug("loop state changed", "from", r.state, "to", next)
	r.state = next
}

func (r *Responder) State() domain.LoopState {
	return r.state
}
