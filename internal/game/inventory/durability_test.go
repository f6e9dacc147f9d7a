package inventory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"

	"github.com/caosrpg/tabuleiro/internal/game/inventory"
)

func TestNewDurability_StartsIntact(t *testing.T) {
	d := inventory.NewDurability(inventory.Die8)
	assert.Equal(t, inventory.Die8, d.Current)
	assert.Equal(t, inventory.Die8, d.Max)
	assert.Equal(t, inventory.StateIntacto, d.State)
}

func TestApplyRoll_OneStepsDown(t *testing.T) {
	d := inventory.NewDurability(inventory.Die8)

	d = d.ApplyRoll(1)
	assert.Equal(t, inventory.Die6, d.Current)
	assert.Equal(t, inventory.StateDanificado, d.State)

	d = d.ApplyRoll(1)
	assert.Equal(t, inventory.Die4, d.Current)
	assert.Equal(t, inventory.StateDanificado, d.State)
}

func TestApplyRoll_HighRollChangesNothing(t *testing.T) {
	d := inventory.NewDurability(inventory.Die10)
	for roll := 2; roll <= 10; roll++ {
		assert.Equal(t, d, d.ApplyRoll(roll), "roll %d must not degrade", roll)
	}
}

func TestApplyRoll_BreakingIsIdempotent(t *testing.T) {
	d := inventory.Durability{Current: inventory.Die2, Max: inventory.Die8, State: inventory.StateDanificado}

	d = d.ApplyRoll(1)
	assert.Equal(t, inventory.StateQuebrado, d.State)
	assert.Equal(t, inventory.Die2, d.Current, "the die stays at the terminal rung")

	again := d.ApplyRoll(1)
	assert.Equal(t, d, again, "further 1s leave a broken item unchanged")
}

func TestApplyRoll_FullLadderWalk(t *testing.T) {
	d := inventory.NewDurability(inventory.Die100)
	want := []inventory.DurabilityDie{
		inventory.Die20, inventory.Die12, inventory.Die10, inventory.Die8,
		inventory.Die6, inventory.Die4, inventory.Die2,
	}
	for _, rung := range want {
		d = d.ApplyRoll(1)
		assert.Equal(t, rung, d.Current)
		assert.Equal(t, inventory.StateDanificado, d.State)
	}
	d = d.ApplyRoll(1)
	assert.Equal(t, inventory.StateQuebrado, d.State)
}

func TestRepair_RestoresMax(t *testing.T) {
	d := inventory.NewDurability(inventory.Die12)
	d = d.ApplyRoll(1).ApplyRoll(1).ApplyRoll(1)

	repaired := d.Repair()
	assert.Equal(t, inventory.Die12, repaired.Current)
	assert.Equal(t, inventory.StateIntacto, repaired.State)
}

// TestDurability_BreaksExactlyOnce drives an arbitrary sequence of rolls
// and verifies the item transitions into quebrado at most once and never
// leaves it without a repair.
func TestDurability_BreaksExactlyOnce(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		d := inventory.NewDurability(inventory.Die8)
		rolls := rapid.SliceOfN(rapid.IntRange(1, 8), 1, 30).Draw(rt, "rolls")

		broken := false
		for _, roll := range rolls {
			next := d.ApplyRoll(roll)
			if broken {
				assert.Equal(rt, d, next, "broken items never change")
			}
			if next.State == inventory.StateQuebrado {
				broken = true
				assert.Equal(rt, inventory.Die2, next.Current)
			}
			d = next
		}

		repaired := d.Repair()
		assert.Equal(rt, repaired.Current, repaired.Max)
		assert.Equal(rt, inventory.StateIntacto, repaired.State)
	})
}
