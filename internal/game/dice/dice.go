// Package dice implements the dice-pool resolution mechanic of the
// Tabuleiro do Caos ruleset: pools of d6-d12 where every die showing 6 or
// more counts one success and every 1 cancels one, plus the damage and
// free-form rolls built on the same randomness source.
package dice

// Size enumerates the die sizes a skill pool may use. The proficiency
// tiers of the ruleset map one-to-one onto these four sizes.
type Size string

const (
	D6  Size = "d6"
	D8  Size = "d8"
	D10 Size = "d10"
	D12 Size = "d12"
)

// sideCounts is the fixed Size → face-count table.
var sideCounts = map[Size]int{
	D6:  6,
	D8:  8,
	D10: 10,
	D12: 12,
}

// Sides returns the face count for s.
//
// Precondition: s is one of the four supported sizes. Any other value is
// outside the contract and yields 0.
func (s Size) Sides() int { return sideCounts[s] }

const (
	// successValue is the minimum face value that counts as a success.
	successValue = 6
	// cancelValue is the face value that cancels one success. It can never
	// coincide with a success because the thresholds do not overlap.
	cancelValue = 1
	// SkillPoolCap is the ceiling applied to skill-test pools by
	// RollSkillTest. Raw pool rolls are deliberately uncapped.
	SkillPoolCap = 8
)

// Die is a single rolled die together with its classification.
//
// Invariant: IsSuccess and IsCancellation are never both true.
type Die struct {
	Value          int
	Size           Size
	IsSuccess      bool // Value >= 6
	IsCancellation bool // Value == 1
}

// classify builds a Die for a raw face value.
func classify(value int, size Size) Die {
	return Die{
		Value:          value,
		Size:           size,
		IsSuccess:      value >= successValue,
		IsCancellation: value == cancelValue,
	}
}

// PoolResult is the outcome of one dice-pool roll.
//
// Invariants: NetSuccesses == max(0, Successes - Cancellations);
// Successes <= DiceCount; Cancellations <= DiceCount;
// len(Dice) == len(Values) == DiceCount.
type PoolResult struct {
	Dice          []Die
	Values        []int
	Size          Size
	DiceCount     int
	Successes     int
	Cancellations int
	NetSuccesses  int
	Formula       string
	IsPenaltyRoll bool
	DiceModifier  int // dice modifier applied before rolling
}
