package character

import "github.com/caosrpg/tabuleiro/internal/game/modifier"

// PPPerRound returns how many power points a character may spend in one
// round: level + presença + flat modifiers, floored at 0.
//
// Postcondition: result >= 0.
func PPPerRound(level, presenca int, mods []modifier.Modifier) int {
	total := level + presenca + modifier.SumFlat(mods)
	if total < 0 {
		total = 0
	}
	return total
}
