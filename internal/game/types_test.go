package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandPhaseCycle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		phase    HandPhase
		newCards int
		next     HandPhase
	}{
		{Prehand, 0, Preflop},
		{Preflop, 0, Flop},
		{Flop, 3, Turn},
		{Turn, 1, River},
		{River, 1, Settle},
		{Settle, 0, Prehand},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.newCards, tt.phase.NewCards(), tt.phase.String())
		assert.Equal(t, tt.next, tt.phase.Next(), tt.phase.String())

		parsed, err := ParseHandPhase(tt.phase.String())
		require.NoError(t, err)
		assert.Equal(t, tt.phase, parsed)
	}

	_, err := ParseHandPhase("SHOWDOWN")
	assert.Error(t, err)
}

func TestParseActionType(t *testing.T) {
	t.Parallel()

	for _, a := range []ActionType{Fold, Check, Call, Raise, AllIn} {
		got, err := ParseActionType(a.String())
		require.NoError(t, err)
		assert.Equal(t, a, got)
	}
	got, err := ParseActionType("all_in")
	require.NoError(t, err)
	assert.Equal(t, AllIn, got)

	_, err = ParseActionType("BET")
	assert.Error(t, err)
}

func TestRaiseTranslation(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 50, RaiseByToTotal(30, 20))
	assert.Equal(t, 20, TotalToRaiseBy(30, 50))
	assert.Equal(t, 75, RaiseByToTotal(40, TotalToRaiseBy(40, 75)))
}
