package dice_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/gametable/internal/game/dice"
)

// seqSource returns pre-seeded values (the raw Intn outputs, so die faces
// are value+1) and is handy for deterministic roll tests.
type seqSource struct {
	values []int
	idx    int
}

func (s *seqSource) Intn(n int) int {
	v := s.values[s.idx%len(s.values)]
	s.idx++
	return v % n
}

func TestParse_Forms(t *testing.T) {
	cases := map[string]dice.Expression{
		"d20":       {Raw: "d20", Count: 1, Sides: 20},
		"2d6":       {Raw: "2d6", Count: 2, Sides: 6},
		"2d6+3":     {Raw: "2d6+3", Count: 2, Sides: 6, Modifier: 3},
		"4d8-2":     {Raw: "4d8-2", Count: 4, Sides: 8, Modifier: -2},
		"2d20kh1":   {Raw: "2d20kh1", Count: 2, Sides: 20, KeepHighest: 1},
		"2d20kl1+5": {Raw: "2d20kl1+5", Count: 2, Sides: 20, KeepLowest: 1, Modifier: 5},
	}
	for in, want := range cases {
		got, err := dice.Parse(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
}

func TestParse_Errors(t *testing.T) {
	for _, in := range []string{"", "20", "0d6", "2d1", "2d6kh2", "2d6kx1", "2dsix"} {
		_, err := dice.Parse(in)
		assert.Error(t, err, "expression %q must not parse", in)
	}
}

func TestRoll_KeepHighest(t *testing.T) {
	src := &seqSource{values: []int{2, 17}} // faces 3 and 18
	r := dice.Roll(dice.Advantage, src)
	assert.Equal(t, []int{18}, r.Dice)
	assert.Equal(t, 18, r.Total())
}

func TestRoll_KeepLowest(t *testing.T) {
	src := &seqSource{values: []int{2, 17}}
	r := dice.Roll(dice.Disadvantage, src)
	assert.Equal(t, []int{3}, r.Dice)
	assert.Equal(t, 3, r.Total())
}

func TestRollResult_Total(t *testing.T) {
	r := dice.RollResult{Expression: "2d6+3", Dice: []int{4, 5}, Modifier: 3}
	assert.Equal(t, 12, r.Total())
	assert.Equal(t, "2d6+3 → [4 5] +3 = 12", r.String())
}

func TestCryptoSource_Intn_InRange(t *testing.T) {
	src := dice.NewCryptoSource()
	for i := 0; i < 1000; i++ {
		v := src.Intn(6)
		assert.GreaterOrEqual(t, v, 0)
		assert.Less(t, v, 6)
	}
}

func TestCryptoSource_Intn_PanicsOnZero(t *testing.T) {
	src := dice.NewCryptoSource()
	assert.Panics(t, func() { src.Intn(0) })
}

func TestPropertyRoll_TotalMatchesKeptDice(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		count := rapid.IntRange(1, 10).Draw(rt, "count")
		sides := rapid.IntRange(2, 20).Draw(rt, "sides")
		mod := rapid.IntRange(-10, 10).Draw(rt, "mod")
		expr := dice.Expression{Raw: "x", Count: count, Sides: sides, Modifier: mod}

		r := dice.Roll(expr, dice.NewCryptoSource())
		require.Len(rt, r.Dice, count)
		want := mod
		for _, d := range r.Dice {
			assert.GreaterOrEqual(rt, d, 1)
			assert.LessOrEqual(rt, d, sides)
			want += d
		}
		assert.Equal(rt, want, r.Total())
	})
}
