package application

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/bnema/webclicker/internal/domain"
	"github.com/bnema/webclicker/internal/ports"
	"github.com/bnema/webclicker/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Upper chi-square bounds at p = 0.001 indexed by degrees of freedom.
var chiSquareCritical = map[int]float64{
	1: 10.828,
	2: 13.816,
	3: 16.266,
	4: 18.467,
}

func TestSelectorPickIsUniform(t *testing.T) {
	const trials = 10000

	for n := 1; n <= 5; n++ {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			selector := NewSelector(rand.NewPCG(42, uint64(n)))
			counts := make([]int, n)
			for range trials {
				idx := selector.Pick(n)
				require.GreaterOrEqual(t, idx, 0)
				require.Less(t, idx, n)
				counts[idx]++
			}

			if n == 1 {
				assert.Equal(t, trials, counts[0])
				return
			}

			expected := float64(trials) / float64(n)
			var chi2 float64
			for _, observed := range counts {
				diff := float64(observed) - expected
				chi2 += diff * diff / expected
			}
			assert.Less(t, chi2, chiSquareCritical[n-1], "counts=%v", counts)
		})
	}
}

type countingHandle struct {
	choice domain.Choice
	clicks int
	err    error
}

func (h *countingHandle) Choice() domain.Choice { return h.choice }

func (h *countingHandle) Click(context.Context) error {
	h.clicks++
	return h.err
}

func TestSelectAndClickClicksExactlyOneChoice(t *testing.T) {
	selector := NewSelector(rand.NewPCG(7, 7))
	a := &countingHandle{choice: domain.Choice{Index: 0, Label: "A"}}
	b := &countingHandle{choice: domain.Choice{Index: 1, Label: "B"}}
	c := &countingHandle{choice: domain.Choice{Index: 2, Label: "C"}}

	for range 50 {
		a.clicks, b.clicks, c.clicks = 0, 0, 0

		choice, err := selector.SelectAndClick(context.Background(), []ports.ChoiceHandle{a, b, c})
		require.NoError(t, err)
		assert.Equal(t, 1, a.clicks+b.clicks+c.clicks)
		assert.Contains(t, []string{"A", "B", "C"}, choice.Label)

		clicked := map[string]int{"A": a.clicks, "B": b.clicks, "C": c.clicks}
		assert.Equal(t, 1, clicked[choice.Label])
	}
}

func TestSelectAndClickEmptyChoices(t *testing.T) {
	selector := NewSelector(nil)

	_, err := selector.SelectAndClick(context.Background(), nil)
	require.ErrorIs(t, err, domain.ErrNoChoices)
}

func TestSelectAndClickWrapsClickFailure(t *testing.T) {
	selector := NewSelector(nil)
	handle := mocks.NewMockChoiceHandle(t)
	clickErr := errors.New("element detached")

	handle.EXPECT().Choice().Return(domain.Choice{Index: 0, Label: "A"})
	handle.EXPECT().Click(mockAnyContext()).Return(clickErr)

	choice, err := selector.SelectAndClick(context.Background(), []ports.ChoiceHandle{handle})
	require.ErrorIs(t, err, clickErr)
	assert.Equal(t, "A", choice.Label)

	var interactionErr *domain.InteractionError
	require.ErrorAs(t, err, &interactionErr)
	assert.Equal(t, domain.Choice{Index: 0, Label: "A"}, interactionErr.Choice)
}
