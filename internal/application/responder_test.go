package application

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/bnema/webclicker/internal/domain"
	"github.com/bnema/webclicker/internal/ports"
	"github.com/bnema/webclicker/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testStart = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func mockAnyContext() interface{} {
	return mock.Anything
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestResponder(clock ports.Clock, opts ResponderOptions) *Responder {
	return NewResponder(clock, NewSelector(rand.NewPCG(1, 2)), discardLogger(), opts)
}

func choiceHandles(t *testing.T, labels ...string) ([]ports.ChoiceHandle, []*mocks.MockChoiceHandle) {
	t.Helper()

	handles := make([]ports.ChoiceHandle, 0, len(labels))
	typed := make([]*mocks.MockChoiceHandle, 0, len(labels))
	for i, label := range labels {
		h := mocks.NewMockChoiceHandle(t)
		h.EXPECT().Choice().Return(domain.Choice{Index: i, Label: label}).Maybe()
		handles = append(handles, h)
		typed = append(typed, h)
	}
	return handles, typed
}

func TestResponderSleepsConfiguredIntervalBetweenIterations(t *testing.T) {
	clock := mocks.NewMockClock(t)
	session := mocks.NewMockSession(t)
	responder := newTestResponder(clock, ResponderOptions{Interval: 5 * time.Second})

	clock.EXPECT().Now().Return(testStart)
	session.EXPECT().PollActive(mockAnyContext()).Return(false, nil).Times(3)
	clock.EXPECT().Sleep(mockAnyContext(), 5*time.Second).Return(nil).Twice()
	clock.EXPECT().Sleep(mockAnyContext(), 5*time.Second).Return(context.Canceled).Once()

	stats, err := responder.Run(context.Background(), session)
	require.NoError(t, err)
	assert.Equal(t, 3, stats.Iterations)
	assert.Zero(t, stats.PollsSeen)
	assert.Equal(t, domain.StateIdle, responder.State())
}

func TestResponderNoPollNeverEnumeratesOrClicks(t *testing.T) {
	clock := mocks.NewMockClock(t)
	session := mocks.NewMockSession(t)
	responder := newTestResponder(clock, ResponderOptions{Interval: time.Second})

	clock.EXPECT().Now().Return(testStart)
	session.EXPECT().PollActive(mockAnyContext()).Return(false, nil).Once()
	clock.EXPECT().Sleep(mockAnyContext(), time.Second).Return(context.Canceled).Once()

	stats, err := responder.Run(context.Background(), session)
	require.NoError(t, err)
	assert.Zero(t, stats.Answers)
	session.AssertNotCalled(t, "Choices", mock.Anything)
}

func TestResponderClicksExactlyOneChoicePerIteration(t *testing.T) {
	clock := mocks.NewMockClock(t)
	session := mocks.NewMockSession(t)
	responder := newTestResponder(clock, ResponderOptions{Interval: time.Second})

	handles, typed := choiceHandles(t, "A", "B", "C")
	clicks := 0
	for _, h := range typed {
		h.EXPECT().Click(mockAnyContext()).RunAndReturn(func(context.Context) error {
			clicks++
			return nil
		}).Maybe()
	}

	clock.EXPECT().Now().Return(testStart)
	session.EXPECT().PollActive(mockAnyContext()).Return(true, nil).Once()
	session.EXPECT().Choices(mockAnyContext()).Return(handles, nil).Once()
	clock.EXPECT().Sleep(mockAnyContext(), time.Second).Return(context.Canceled).Once()

	stats, err := responder.Run(context.Background(), session)
	require.NoError(t, err)
	assert.Equal(t, 1, clicks)
	assert.Equal(t, 1, stats.Answers)
	assert.Equal(t, 1, stats.PollsSeen)
	assert.Contains(t, []string{"A", "B", "C"}, stats.LastChoice)
	assert.Equal(t, domain.StateAnswering, responder.State())
}

func TestResponderEmptyChoicesSkipsIteration(t *testing.T) {
	clock := mocks.NewMockClock(t)
	session := mocks.NewMockSession(t)
	responder := newTestResponder(clock, ResponderOptions{Interval: time.Second})

	clock.EXPECT().Now().Return(testStart)
	session.EXPECT().PollActive(mockAnyContext()).Return(true, nil).Twice()
	session.EXPECT().Choices(mockAnyContext()).Return([]ports.ChoiceHandle{}, nil).Twice()
	clock.EXPECT().Sleep(mockAnyContext(), time.Second).Return(nil).Once()
	clock.EXPECT().Sleep(mockAnyContext(), time.Second).Return(context.Canceled).Once()

	stats, err := responder.Run(context.Background(), session)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Iterations)
	assert.Equal(t, 2, stats.ActiveChecks)
	assert.Equal(t, 1, stats.PollsSeen)
	assert.Zero(t, stats.Answers)
	assert.Equal(t, domain.StateIdle, responder.State())
}

func TestResponderTreatsQueryErrorsAsTransient(t *testing.T) {
	clock := mocks.NewMockClock(t)
	session := mocks.NewMockSession(t)
	responder := newTestResponder(clock, ResponderOptions{Interval: time.Second})

	clock.EXPECT().Now().Return(testStart)
	session.EXPECT().PollActive(mockAnyContext()).Return(false, errors.New("target closed")).Once()
	session.EXPECT().PollActive(mockAnyContext()).Return(true, nil).Once()
	session.EXPECT().Choices(mockAnyContext()).Return(nil, errors.New("stale node")).Once()
	clock.EXPECT().Sleep(mockAnyContext(), time.Second).Return(nil).Once()
	clock.EXPECT().Sleep(mockAnyContext(), time.Second).Return(context.Canceled).Once()

	stats, err := responder.Run(context.Background(), session)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Iterations)
	assert.Equal(t, 2, stats.QueryFailures)
}

func TestResponderContinuesAfterClickFailure(t *testing.T) {
	clock := mocks.NewMockClock(t)
	session := mocks.NewMockSession(t)
	responder := newTestResponder(clock, ResponderOptions{Interval: time.Second})

	handles, typed := choiceHandles(t, "A")
	typed[0].EXPECT().Click(mockAnyContext()).Return(errors.New("not clickable")).Once()
	typed[0].EXPECT().Click(mockAnyContext()).Return(nil).Once()

	clock.EXPECT().Now().Return(testStart)
	session.EXPECT().PollActive(mockAnyContext()).Return(true, nil).Twice()
	session.EXPECT().Choices(mockAnyContext()).Return(handles, nil).Twice()
	clock.EXPECT().Sleep(mockAnyContext(), time.Second).Return(nil).Once()
	clock.EXPECT().Sleep(mockAnyContext(), time.Second).Return(context.Canceled).Once()

	stats, err := responder.Run(context.Background(), session)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.ClickFailures)
	assert.Equal(t, 1, stats.Answers)
	assert.Equal(t, "A", stats.LastChoice)
}

func TestResponderOncePerPollWaitsForPollToClose(t *testing.T) {
	session := mocks.NewMockSession(t)
	responder := newTestResponder(mocks.NewMockClock(t), ResponderOptions{Interval: time.Second, OncePerPoll: true})

	handles, typed := choiceHandles(t, "A")
	typed[0].EXPECT().Click(mockAnyContext()).Return(nil).Twice()

	session.EXPECT().PollActive(mockAnyContext()).Return(true, nil).Twice()
	session.EXPECT().PollActive(mockAnyContext()).Return(false, nil).Once()
	session.EXPECT().PollActive(mockAnyContext()).Return(true, nil).Once()
	session.EXPECT().Choices(mockAnyContext()).Return(handles, nil).Twice()

	ctx := context.Background()
	assert.Equal(t, domain.OutcomeAnswered, responder.Step(ctx, session).Outcome)
	assert.Equal(t, domain.OutcomeAlreadyAnswered, responder.Step(ctx, session).Outcome)
	assert.Equal(t, domain.OutcomeIdle, responder.Step(ctx, session).Outcome)
	assert.Equal(t, domain.OutcomeAnswered, responder.Step(ctx, session).Outcome)
}

func TestResponderWithoutOncePerPollAnswersEveryIteration(t *testing.T) {
	session := mocks.NewMockSession(t)
	responder := newTestResponder(mocks.NewMockClock(t), ResponderOptions{Interval: time.Second})

	handles, typed := choiceHandles(t, "A")
	typed[0].EXPECT().Click(mockAnyContext()).Return(nil).Times(3)

	session.EXPECT().PollActive(mockAnyContext()).Return(true, nil).Times(3)
	session.EXPECT().Choices(mockAnyContext()).Return(handles, nil).Times(3)

	for range 3 {
		assert.Equal(t, domain.OutcomeAnswered, responder.Step(context.Background(), session).Outcome)
	}
}

func TestResponderStopsImmediatelyWhenContextAlreadyCancelled(t *testing.T) {
	clock := mocks.NewMockClock(t)
	session := mocks.NewMockSession(t)
	responder := newTestResponder(clock, ResponderOptions{Interval: time.Second})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	clock.EXPECT().Now().Return(testStart)

	stats, err := responder.Run(ctx, session)
	require.NoError(t, err)
	assert.Zero(t, stats.Iterations)
}

func TestResponderInterruptedQueryIsNotCountedAsFailure(t *testing.T) {
	clock := mocks.NewMockClock(t)
	session := mocks.NewMockSession(t)
	responder := newTestResponder(clock, ResponderOptions{Interval: time.Second})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	clock.EXPECT().Now().Return(testStart)
	session.EXPECT().PollActive(mockAnyContext()).RunAndReturn(func(context.Context) (bool, error) {
		cancel()
		return false, context.Canceled
	}).Once()

	stats, err := responder.Run(ctx, session)
	require.NoError(t, err)
	assert.Zero(t, stats.Iterations)
	assert.Zero(t, stats.QueryFailures)
	clock.AssertNotCalled(t, "Sleep", mock.Anything, mock.Anything)
}

func TestResponderInterruptedClickIsNotCountedAsFailure(t *testing.T) {
	clock := mocks.NewMockClock(t)
	session := mocks.NewMockSession(t)
	responder := newTestResponder(clock, ResponderOptions{Interval: time.Second})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	handles, typed := choiceHandles(t, "A")
	typed[0].EXPECT().Click(mockAnyContext()).RunAndReturn(func(context.Context) error {
		cancel()
		return context.Canceled
	}).Once()

	clock.EXPECT().Now().Return(testStart)
	session.EXPECT().PollActive(mockAnyContext()).Return(true, nil).Once()
	session.EXPECT().Choices(mockAnyContext()).Return(handles, nil).Once()

	stats, err := responder.Run(ctx, session)
	require.NoError(t, err)
	assert.Zero(t, stats.ClickFailures)
	assert.Zero(t, stats.PollsSeen)
}

func TestResponderRejectsNonPositiveInterval(t *testing.T) {
	responder := newTestResponder(mocks.NewMockClock(t), ResponderOptions{})

	_, err := responder.Run(context.Background(), mocks.NewMockSession(t))
	require.ErrorIs(t, err, domain.ErrInvalidInterval)
}

func TestResponderReturnsUnexpectedSleepError(t *testing.T) {
	clock := mocks.NewMockClock(t)
	session := mocks.NewMockSession(t)
	responder := newTestResponder(clock, ResponderOptions{Interval: time.Second})

	clock.EXPECT().Now().Return(testStart)
	session.EXPECT().PollActive(mockAnyContext()).Return(false, nil).Once()
	clock.EXPECT().Sleep(mockAnyContext(), time.Second).Return(errors.New("clock broken")).Once()

	_, err := responder.Run(context.Background(), session)
	require.ErrorContains(t, err, "clock broken")
}
