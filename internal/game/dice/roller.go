package dice

import "go.uber.org/zap"

// Roller bundles a Source, a logger, and an optional History so every
// roll is logged at debug level and retained for later display.
type Roller struct {
	src     Source
	logger  *zap.Logger
	history *History
}

// NewRoller creates a Roller rolling with src, logging to logger, and
// recording into history.
//
// Precondition: src and logger must be non-nil; history may be nil to
// disable retention.
func NewRoller(src Source, logger *zap.Logger, history *History) *Roller {
	return &Roller{src: src, logger: logger, history: history}
}

// SkillTest rolls a skill check (zero-pool penalty routing and 8-dice cap
// included) and records the outcome under label.
func (r *Roller) SkillTest(label string, attributeValue int, size Size, diceModifier int) PoolResult {
	result := RollSkillTest(attributeValue, size, diceModifier, r.src)
	r.logger.Debug("skill test",
		zap.String("label", label),
		zap.String("formula", result.Formula),
		zap.Ints("values", result.Values),
		zap.Int("successes", result.Successes),
		zap.Int("cancellations", result.Cancellations),
		zap.Int("net_successes", result.NetSuccesses),
		zap.Bool("penalty_roll", result.IsPenaltyRoll),
		zap.Int("dice_modifier", result.DiceModifier),
	)
	r.record(label, PoolOutcome(result))
	return result
}

// Pool rolls an uncapped raw pool and records the outcome under label.
func (r *Roller) Pool(label string, quantity int, size Size) PoolResult {
	result := RollPool(quantity, size, r.src)
	r.logger.Debug("pool roll",
		zap.String("label", label),
		zap.String("formula", result.Formula),
		zap.Ints("values", result.Values),
		zap.Int("net_successes", result.NetSuccesses),
	)
	r.record(label, PoolOutcome(result))
	return result
}

// Damage rolls damage dice and records the outcome under label.
func (r *Roller) Damage(label string, diceCount, sides, modifier int, critical bool) DamageResult {
	result := RollDamage(diceCount, sides, modifier, critical, r.src)
	r.logger.Debug("damage roll",
		zap.String("label", label),
		zap.String("formula", result.Formula),
		zap.Ints("values", result.Values),
		zap.Int("total", result.Total),
		zap.Bool("critical", result.IsCritical),
	)
	r.record(label, DamageOutcome(result))
	return result
}

// Custom rolls a free-form NdX pool and records the outcome under label.
func (r *Roller) Custom(label string, diceCount, sides int) CustomResult {
	result := RollCustom(diceCount, sides, r.src)
	r.logger.Debug("custom roll",
		zap.String("label", label),
		zap.String("formula", result.Formula),
		zap.Ints("values", result.Values),
		zap.Int("total", result.Total),
	)
	r.record(label, CustomOutcome(result))
	return result
}

func (r *Roller) record(label string, result Result) {
	if r.history != nil {
		r.history.Record(label, result)
	}
}
