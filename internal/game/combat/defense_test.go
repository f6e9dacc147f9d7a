package combat_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"

	"github.com/caosrpg/tabuleiro/internal/game/combat"
	"github.com/caosrpg/tabuleiro/internal/game/modifier"
	"github.com/caosrpg/tabuleiro/internal/game/ruleset"
)

func intPtr(v int) *int { return &v }

func TestDefense_EmptyInputIsBase(t *testing.T) {
	assert.Equal(t, 15, combat.Defense(combat.DefenseInput{Size: ruleset.SizeMedio}))
}

func TestDefense_SumsAllContributions(t *testing.T) {
	in := combat.DefenseInput{
		Agility:     3,
		Size:        ruleset.SizePequeno,
		ArmorBonus:  2,
		ShieldBonus: 1,
		Modifiers: []modifier.Modifier{
			{Name: "cobertura", Value: 2, Type: modifier.Bonus},
			{Name: "atordoado", Value: 1, Type: modifier.Penalidade},
		},
	}
	// 15 + 3 agility + 1 size + 2 armor + 1 shield + (2 - 1) mods
	assert.Equal(t, 23, combat.Defense(in))
}

func TestDefense_ArmorCapsAgility(t *testing.T) {
	in := combat.DefenseInput{
		Agility:    5,
		AgilityCap: intPtr(2),
		Size:       ruleset.SizeMedio,
		ArmorBonus: 4,
	}
	assert.Equal(t, 15+2+4, combat.Defense(in))
}

func TestDefense_UncappedAgilityAboveNormalRange(t *testing.T) {
	in := combat.DefenseInput{Agility: 7, Size: ruleset.SizeMedio}
	assert.Equal(t, 22, combat.Defense(in), "agility counts in full without an armor cap")
}

func TestDefense_CapAboveAgilityHasNoEffect(t *testing.T) {
	in := combat.DefenseInput{Agility: 2, AgilityCap: intPtr(4), Size: ruleset.SizeMedio}
	assert.Equal(t, 17, combat.Defense(in))
}

func TestDefense_DiceModifiersDoNotCount(t *testing.T) {
	in := combat.DefenseInput{
		Size: ruleset.SizeMedio,
		Modifiers: []modifier.Modifier{
			{Name: "pool bonus", Value: 3, Type: modifier.Bonus, AffectsDice: true},
		},
	}
	assert.Equal(t, 15, combat.Defense(in))
}

// TestDefense_CappedNeverExceedsUncapped verifies the agility cap only
// ever lowers the total.
func TestDefense_CappedNeverExceedsUncapped(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		agility := rapid.IntRange(-2, 10).Draw(rt, "agility")
		cap := rapid.IntRange(0, 5).Draw(rt, "cap")

		uncapped := combat.Defense(combat.DefenseInput{Agility: agility, Size: ruleset.SizeMedio})
		capped := combat.Defense(combat.DefenseInput{Agility: agility, AgilityCap: &cap, Size: ruleset.SizeMedio})

		assert.LessOrEqual(rt, capped, uncapped)
	})
}
