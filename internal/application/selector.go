package application

import (
	"context"
	"math/rand/v2"

	"github.com/bnema/webclicker/internal/domain"
	"github.com/bnema/webclicker/internal/ports"
)

// Selector picks answers uniformly at random. It is not safe for concurrent use.
type Selector struct {
	rng *rand.Rand
}

func NewSelector(src rand.Source) *Selector {
	if src == nil {
		src = rand.NewPCG(rand.Uint64(), rand.Uint64())
	}
	return &Selector{rng: rand.New(src)}
}

// Pick returns an index in [0, n). n must be positive.
func (s *Selector) Pick(n int) int {
	return s.rng.IntN(n)
}

// SelectAndClick clicks exactly one of handles.
func (s *Selector) SelectAndClick(ctx context.Context, handles []ports.ChoiceHandle) (domain.Choice, error) {
	if len(handles) == 0 {
		return domain.Choice{}, domain.ErrNoChoices
	}

	handle := handles[s.Pick(len(handles))]
	choice := handle.Choice()
	if err := handle.Click(ctx); err != nil {
		return choice, &domain.InteractionError{Choice: choice, Err: err}
	}

	return choice, nil
}
