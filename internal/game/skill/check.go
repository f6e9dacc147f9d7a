package skill

import (
	"github.com/caosrpg/tabuleiro/internal/game/dice"
	"github.com/caosrpg/tabuleiro/internal/game/modifier"
)

// Check is a fully resolved skill test ready for the dice engine. The
// component dice counts are kept separate so callers can display where
// the pool came from.
type Check struct {
	Skill         string
	Use           string
	Size          dice.Size
	AttributeDice int
	SignatureDice int
	ModifierDice  int
	PenaltyDice   int // non-positive, from accumulated combat penalties
}

// TotalDice returns the pool size before the zero/negative routing and
// 8-dice cap applied by the dice engine.
func (c Check) TotalDice() int {
	return c.AttributeDice + c.SignatureDice + c.ModifierDice + c.PenaltyDice
}

// DiceModifier returns every non-attribute dice adjustment, the value the
// dice engine records on the result.
func (c Check) DiceModifier() int {
	return c.SignatureDice + c.ModifierDice + c.PenaltyDice
}

// Resolve builds the check plan for rolling s: die size from proficiency,
// signature bonus from level, dice modifiers from the skill plus the
// named use, and an externally supplied combat penalty as negative dice.
//
// Precondition: combatPenalty <= 0.
func Resolve(s Skill, attributeValue, level int, use string, combatPenalty int) Check {
	return Check{
		Skill:         s.Name,
		Use:           use,
		Size:          s.Proficiency.Die(),
		AttributeDice: attributeValue,
		SignatureDice: SignatureBonus(level, s.Signature),
		ModifierDice:  modifier.SumDice(s.ModifiersFor(use)),
		PenaltyDice:   combatPenalty,
	}
}

// Roll executes the check against src, routing through the dice engine's
// penalty and cap handling.
func Roll(c Check, src dice.Source) dice.PoolResult {
	return dice.RollSkillTest(c.AttributeDice, c.Size, c.DiceModifier(), src)
}
