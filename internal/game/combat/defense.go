// Package combat computes the combat-facing derived values: the defense
// total and the per-save dice penalties that accumulate across a round.
package combat

import (
	"github.com/caosrpg/tabuleiro/internal/game/modifier"
	"github.com/caosrpg/tabuleiro/internal/game/ruleset"
)

// DefenseBase is the flat starting value every defense total builds on.
const DefenseBase = 15

// DefenseInput gathers everything the defense formula reads.
type DefenseInput struct {
	Agility int
	// AgilityCap is the armor-imposed ceiling on the agility contribution;
	// nil means uncapped, so agility counts in full even above the normal
	// 0-5 attribute range.
	AgilityCap  *int
	Size        ruleset.CreatureSize
	ArmorBonus  int
	ShieldBonus int
	// Modifiers contribute their flat (non-dice) sum.
	Modifiers []modifier.Modifier
}

// Defense returns 15 + capped agility + size bonus + armor + shield +
// flat modifiers. There is no error path: an empty input yields the base
// defense of 15.
func Defense(in DefenseInput) int {
	agility := in.Agility
	if in.AgilityCap != nil && agility > *in.AgilityCap {
		agility = *in.AgilityCap
	}

	return DefenseBase +
		agility +
		in.Size.DefenseBonus() +
		in.ArmorBonus +
		in.ShieldBonus +
		modifier.SumFlat(in.Modifiers)
}
