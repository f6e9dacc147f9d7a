package dice

import "fmt"

// RollPool rolls quantity dice of the given size and classifies each one.
// Quantities below 1 are clamped to 1. The 8-dice skill cap is NOT applied
// here: RollSkillTest owns it, and free-form rolls have no cap at all.
//
// Precondition: size is a supported Size; src is non-nil.
// Postcondition: len(result.Dice) == max(1, quantity); every value is in
// [1, size.Sides()]; NetSuccesses == max(0, Successes - Cancellations).
func RollPool(quantity int, size Size, src Source) PoolResult {
	if quantity < 1 {
		quantity = 1
	}

	sides := size.Sides()
	rolled := make([]Die, quantity)
	values := make([]int, quantity)
	successes, cancellations := 0, 0
	for i := range rolled {
		d := classify(src.Intn(sides)+1, size)
		rolled[i] = d
		values[i] = d.Value
		if d.IsSuccess {
			successes++
		}
		if d.IsCancellation {
			cancellations++
		}
	}

	net := successes - cancellations
	if net < 0 {
		net = 0
	}

	return PoolResult{
		Dice:          rolled,
		Values:        values,
		Size:          size,
		DiceCount:     quantity,
		Successes:     successes,
		Cancellations: cancellations,
		NetSuccesses:  net,
		Formula:       fmt.Sprintf("%d%s", quantity, size),
	}
}

// RollWithPenalty performs the degenerate roll used when a skill pool
// drops to zero or fewer dice: exactly two dice are rolled and only the
// lower value is classified. The higher die is recorded in the result but
// contributes nothing.
//
// Precondition: size is a supported Size; src is non-nil.
// Postcondition: DiceCount == 2; IsPenaltyRoll == true;
// Successes + Cancellations <= 1.
func RollWithPenalty(size Size, src Source) PoolResult {
	sides := size.Sides()
	first := src.Intn(sides) + 1
	second := src.Intn(sides) + 1

	lowest := first
	if second < lowest {
		lowest = second
	}

	// Only the lowest die keeps its classification flags.
	counted := classify(lowest, size)
	rolled := []Die{{Value: first, Size: size}, {Value: second, Size: size}}
	if first <= second {
		rolled[0] = counted
	} else {
		rolled[1] = counted
	}

	successes, cancellations := 0, 0
	if counted.IsSuccess {
		successes = 1
	}
	if counted.IsCancellation {
		cancellations = 1
	}

	return PoolResult{
		Dice:          rolled,
		Values:        []int{first, second},
		Size:          size,
		DiceCount:     2,
		Successes:     successes,
		Cancellations: cancellations,
		NetSuccesses:  successes,
		Formula:       fmt.Sprintf("2%s (lowest)", size),
		IsPenaltyRoll: true,
	}
}

// RollSkillTest resolves a skill check pool of attributeValue +
// diceModifier dice. Pools of zero or fewer dice route to RollWithPenalty
// (how far below zero the pool fell is irrelevant); positive pools are
// capped at SkillPoolCap before rolling.
//
// Precondition: size is a supported Size; src is non-nil.
// Postcondition: result.DiceCount <= SkillPoolCap unless IsPenaltyRoll;
// result.DiceModifier == diceModifier.
func RollSkillTest(attributeValue int, size Size, diceModifier int, src Source) PoolResult {
	total := attributeValue + diceModifier

	var result PoolResult
	if total <= 0 {
		result = RollWithPenalty(size, src)
	} else {
		if total > SkillPoolCap {
			total = SkillPoolCap
		}
		result = RollPool(total, size, src)
	}
	result.DiceModifier = diceModifier
	return result
}
