// Package skill turns character state into the inputs the dice-pool
// engine needs: die size from proficiency, signature-skill bonus from
// level, and the aggregated dice modifiers of a skill and its uses.
package skill

import (
	"github.com/caosrpg/tabuleiro/internal/game/dice"
	"github.com/caosrpg/tabuleiro/internal/game/modifier"
)

// Proficiency enumerates the four training tiers of the ruleset.
type Proficiency string

const (
	Leigo   Proficiency = "leigo"
	Adepto  Proficiency = "adepto"
	Versado Proficiency = "versado"
	Mestre  Proficiency = "mestre"
)

// proficiencyDie is the fixed, order-preserving Proficiency → Size table.
var proficiencyDie = map[Proficiency]dice.Size{
	Leigo:   dice.D6,
	Adepto:  dice.D8,
	Versado: dice.D10,
	Mestre:  dice.D12,
}

// Die returns the die size rolled at proficiency p. Unknown tiers fall
// back to the untrained d6.
func (p Proficiency) Die() dice.Size {
	if d, ok := proficiencyDie[p]; ok {
		return d
	}
	return dice.D6
}

// SignatureBonusCap is the maximum dice a signature skill can add.
const SignatureBonusCap = 3

// SignatureBonus returns the extra dice granted by a signature skill:
// min(3, ceil(level/5)) when signature is set, else 0.
//
// Postcondition: 0 <= result <= SignatureBonusCap.
func SignatureBonus(level int, signature bool) int {
	if !signature || level <= 0 {
		return 0
	}
	bonus := (level + 4) / 5
	if bonus > SignatureBonusCap {
		bonus = SignatureBonusCap
	}
	return bonus
}

// Skill describes one skill entry on a character sheet.
type Skill struct {
	Name        string      `yaml:"name" json:"name"`
	Attribute   string      `yaml:"attribute" json:"attribute"`
	Proficiency Proficiency `yaml:"proficiency" json:"proficiency"`
	Signature   bool        `yaml:"signature" json:"signature"`
	// Modifiers apply to every use of the skill.
	Modifiers []modifier.Modifier `yaml:"modifiers,omitempty" json:"modifiers,omitempty"`
	// Uses holds per-use modifier lists ("Resistir", "Resistir Mentalmente");
	// a use's modifiers are concatenated with, never replace, Modifiers.
	Uses map[string][]modifier.Modifier `yaml:"uses,omitempty" json:"uses,omitempty"`
}

// ModifiersFor returns the skill's base modifiers followed by the
// modifiers of the named use, if any.
func (s Skill) ModifiersFor(use string) []modifier.Modifier {
	mods := make([]modifier.Modifier, 0, len(s.Modifiers))
	mods = append(mods, s.Modifiers...)
	if use != "" {
		mods = append(mods, s.Uses[use]...)
	}
	return mods
}
