package dice_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"pgregory.net/rapid"

	"github.com/caosrpg/tabuleiro/internal/game/dice"
)

func customOutcome(total int) dice.Result {
	return dice.CustomOutcome(dice.CustomResult{
		Values:  []int{total},
		Sides:   20,
		Total:   total,
		Formula: "1d20",
	})
}

func TestHistory_NewestFirstEviction(t *testing.T) {
	h := dice.NewHistory(3)
	for i := 1; i <= 5; i++ {
		h.Record(fmt.Sprintf("roll %d", i), customOutcome(i))
	}

	entries := h.Entries()
	require.Len(t, entries, 3)
	assert.Equal(t, "roll 5", entries[0].Label)
	assert.Equal(t, "roll 4", entries[1].Label)
	assert.Equal(t, "roll 3", entries[2].Label)
}

func TestHistory_DefaultCapacity(t *testing.T) {
	assert.Equal(t, dice.DefaultHistoryCapacity, dice.NewHistory(0).Capacity())
	assert.Equal(t, dice.DefaultHistoryCapacity, dice.NewHistory(-5).Capacity())
	assert.Equal(t, 10, dice.NewHistory(10).Capacity())
}

func TestHistory_RecordReturnsNewestEntry(t *testing.T) {
	h := dice.NewHistory(2)
	e := h.Record("attack", customOutcome(7))
	assert.Equal(t, e.ID, h.Entries()[0].ID)
	assert.NotZero(t, e.At)
}

func TestHistory_EntriesReturnsCopy(t *testing.T) {
	h := dice.NewHistory(2)
	h.Record("a", customOutcome(1))
	entries := h.Entries()
	entries[0].Label = "mutated"
	assert.Equal(t, "a", h.Entries()[0].Label)
}

// TestHistory_LenNeverExceedsCapacity exercises the bound for arbitrary
// record counts and capacities.
func TestHistory_LenNeverExceedsCapacity(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		capacity := rapid.IntRange(1, 10).Draw(rt, "capacity")
		records := rapid.IntRange(0, 30).Draw(rt, "records")

		h := dice.NewHistory(capacity)
		for i := 0; i < records; i++ {
			h.Record("r", customOutcome(i))
		}

		assert.LessOrEqual(rt, h.Len(), capacity)
		if records >= capacity {
			assert.Equal(rt, capacity, h.Len())
		} else {
			assert.Equal(rt, records, h.Len())
		}
	})
}

func TestRoller_RecordsIntoHistory(t *testing.T) {
	h := dice.NewHistory(10)
	r := dice.NewRoller(dice.NewCryptoSource(), zap.NewNop(), h)

	r.SkillTest("furtividade", 3, dice.D8, 0)
	r.Damage("espada", 2, 6, 1, false)
	r.Custom("iniciativa", 1, 20)

	entries := h.Entries()
	require.Len(t, entries, 3)
	assert.Equal(t, dice.KindCustom, entries[0].Result.Kind)
	assert.Equal(t, dice.KindDamage, entries[1].Result.Kind)
	assert.Equal(t, dice.KindPool, entries[2].Result.Kind)
}

func TestRoller_NilHistoryDoesNotPanic(t *testing.T) {
	r := dice.NewRoller(dice.NewCryptoSource(), zap.NewNop(), nil)
	assert.NotPanics(t, func() {
		r.Pool("raw", 4, dice.D6)
	})
}

func TestResult_Summary(t *testing.T) {
	pool := dice.PoolOutcome(dice.PoolResult{
		Values:        []int{6, 1, 8},
		Size:          dice.D10,
		DiceCount:     3,
		Successes:     2,
		Cancellations: 1,
		NetSuccesses:  1,
		Formula:       "3d10",
	})
	s := pool.Summary()
	assert.Contains(t, s, "3d10")
	assert.Contains(t, s, "1 successes")

	dmg := dice.DamageOutcome(dice.DamageResult{
		Values: []int{6, 6}, DiceCount: 2, Sides: 6, Modifier: 2, Total: 14,
		Formula: "2d6+2",
	})
	assert.Contains(t, dmg.Summary(), "14 damage")
}

func TestResult_Summary_PanicsOnMalformed(t *testing.T) {
	assert.Panics(t, func() {
		_ = dice.Result{Kind: dice.Kind("bogus")}.Summary()
	})
}
