// Package ruleset holds the fixed rule tables shared by the formula
// packages: creature size categories and their defense and carrying
// adjustments.
package ruleset

// CreatureSize enumerates the size categories of the ruleset.
type CreatureSize string

const (
	SizeMinusculo CreatureSize = "minusculo"
	SizePequeno   CreatureSize = "pequeno"
	SizeMedio     CreatureSize = "medio"
	SizeGrande    CreatureSize = "grande"
	SizeEnorme    CreatureSize = "enorme"
	SizeColossal  CreatureSize = "colossal"
)

// defenseBonus maps each size to its defense adjustment. Smaller creatures
// are harder to hit.
var defenseBonus = map[CreatureSize]int{
	SizeMinusculo: 2,
	SizePequeno:   1,
	SizeMedio:     0,
	SizeGrande:    -1,
	SizeEnorme:    -2,
	SizeColossal:  -4,
}

// carryFactor maps each size to the multiplier applied to carrying
// capacity.
var carryFactor = map[CreatureSize]float64{
	SizeMinusculo: 0.5,
	SizePequeno:   1,
	SizeMedio:     1,
	SizeGrande:    2,
	SizeEnorme:    4,
	SizeColossal:  8,
}

// DefenseBonus returns the defense adjustment for s. Unknown sizes behave
// as medio.
func (s CreatureSize) DefenseBonus() int {
	return defenseBonus[s]
}

// CarryFactor returns the carrying-capacity multiplier for s. Unknown
// sizes behave as medio.
func (s CreatureSize) CarryFactor() float64 {
	if f, ok := carryFactor[s]; ok {
		return f
	}
	return 1
}
