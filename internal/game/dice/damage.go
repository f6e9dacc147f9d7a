package dice

import "fmt"

// DamageResult is the outcome of a damage roll.
//
// Invariant: Total == max(0, sum(Values) + Modifier).
type DamageResult struct {
	Values     []int
	DiceCount  int
	Sides      int
	Modifier   int
	Total      int
	IsCritical bool
	Formula    string
}

// RollDamage sums diceCount draws of a sides-faced die plus a flat
// modifier, flooring the final total at 0. On a critical hit every die is
// maximized to sides instead of rolled — the dice are not doubled — and
// the modifier is added once.
//
// Precondition: sides >= 2; src is non-nil. Negative diceCount is clamped
// to 0, which yields a flat-modifier roll.
// Postcondition: len(result.Values) == max(0, diceCount); Total >= 0.
func RollDamage(diceCount, sides, modifier int, critical bool, src Source) DamageResult {
	if diceCount < 0 {
		diceCount = 0
	}

	values := make([]int, diceCount)
	sum := 0
	for i := range values {
		if critical {
			values[i] = sides
		} else {
			values[i] = src.Intn(sides) + 1
		}
		sum += values[i]
	}

	total := sum + modifier
	if total < 0 {
		total = 0
	}

	formula := fmt.Sprintf("%dd%d%+d", diceCount, sides, modifier)
	if modifier == 0 {
		formula = fmt.Sprintf("%dd%d", diceCount, sides)
	}
	if critical {
		formula += " (crit)"
	}

	return DamageResult{
		Values:     values,
		DiceCount:  diceCount,
		Sides:      sides,
		Modifier:   modifier,
		Total:      total,
		IsCritical: critical,
		Formula:    formula,
	}
}

// CustomResult is the outcome of a free-form NdX roll. Unlike skill tests
// these rolls have no pool cap and no success counting; only the sum
// matters.
type CustomResult struct {
	Values  []int
	Sides   int
	Total   int
	Formula string
}

// RollCustom rolls diceCount dice of an arbitrary side count and sums
// them. Quantities below 1 are clamped to 1; there is no upper cap.
//
// Precondition: sides >= 2; src is non-nil.
// Postcondition: Total == sum(Values); every value is in [1, sides].
func RollCustom(diceCount, sides int, src Source) CustomResult {
	if diceCount < 1 {
		diceCount = 1
	}

	values := make([]int, diceCount)
	total := 0
	for i := range values {
		values[i] = src.Intn(sides) + 1
		total += values[i]
	}

	return CustomResult{
		Values:  values,
		Sides:   sides,
		Total:   total,
		Formula: fmt.Sprintf("%dd%d", diceCount, sides),
	}
}
