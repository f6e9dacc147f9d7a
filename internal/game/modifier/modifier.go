// Package modifier defines the bonus/penalty record attached to skills,
// defense, and the other character totals, plus the aggregation helpers
// the formula packages share.
package modifier

// Type tags a modifier as a bonus or a penalty.
type Type string

const (
	Bonus      Type = "bonus"
	Penalidade Type = "penalidade"
)

// Modifier is one named adjustment on a character total. Dice-affecting
// modifiers change the size of a skill pool; flat modifiers adjust
// numeric totals such as defense.
//
// Value is a magnitude: the sign comes from Type.
type Modifier struct {
	Name        string `yaml:"name" json:"name"`
	Value       int    `yaml:"value" json:"value"`
	Type        Type   `yaml:"type" json:"type"`
	AffectsDice bool   `yaml:"affects_dice" json:"affectsDice"`
}

// Signed returns the modifier's contribution with its sign applied:
// positive for a bonus, negative for a penalty.
//
// Precondition: Value >= 0.
func (m Modifier) Signed() int {
	if m.Type == Penalidade {
		return -m.Value
	}
	return m.Value
}

// SumDice returns the signed sum of the dice-affecting modifiers in mods.
func SumDice(mods []Modifier) int {
	total := 0
	for _, m := range mods {
		if m.AffectsDice {
			total += m.Signed()
		}
	}
	return total
}

// SumFlat returns the signed sum of the non-dice modifiers in mods.
func SumFlat(mods []Modifier) int {
	total := 0
	for _, m := range mods {
		if !m.AffectsDice {
			total += m.Signed()
		}
	}
	return total
}
