package character

import (
	"math"

	"github.com/caosrpg/tabuleiro/internal/game/modifier"
)

// RestQuality enumerates the lodging tiers that scale rest recovery.
type RestQuality string

const (
	QualityPrecario    RestQuality = "precario"
	QualityNormal      RestQuality = "normal"
	QualityConfortavel RestQuality = "confortavel"
	QualityLuxuoso     RestQuality = "luxuoso"
	QualityAbastado    RestQuality = "abastado"
	QualityAbastado2   RestQuality = "abastado2"
	QualityAbastado3   RestQuality = "abastado3"
	QualityAbastado4   RestQuality = "abastado4"
	QualityAbastado5   RestQuality = "abastado5"
)

// qualityFactor is the fixed recovery multiplier ladder, one half step
// per tier from precario up to abastado5.
var qualityFactor = map[RestQuality]float64{
	QualityPrecario:    0.5,
	QualityNormal:      1.0,
	QualityConfortavel: 1.5,
	QualityLuxuoso:     2.0,
	QualityAbastado:    2.5,
	QualityAbastado2:   3.0,
	QualityAbastado3:   3.5,
	QualityAbastado4:   4.0,
	QualityAbastado5:   4.5,
}

// Factor returns the recovery multiplier for q. Unknown qualities behave
// as normal.
func (q RestQuality) Factor() float64 {
	if f, ok := qualityFactor[q]; ok {
		return f
	}
	return 1.0
}

// RestPlan describes how a character spends a rest.
type RestPlan struct {
	Quality  RestQuality
	Sleep    bool // recover PV from level x constituição
	Meditate bool // recover PP from level x presença
	// PVModifiers and PPModifiers contribute their flat sums to the
	// respective base before the quality factor applies.
	PVModifiers []modifier.Modifier
	PPModifiers []modifier.Modifier
}

// RestRecovery is the outcome of one rest.
type RestRecovery struct {
	PV int
	PP int
}

// Rest computes recovery for one rest: sleeping recovers
// floor((level x constituição + mods) x factor) PV, meditating recovers
// floor((level x presença + mods) x factor) PP. The two tracks are
// floored independently and each clamps at 0.
//
// Postcondition: result.PV >= 0 and result.PP >= 0.
func Rest(level, constituicao, presenca int, plan RestPlan) RestRecovery {
	factor := plan.Quality.Factor()
	var out RestRecovery

	if plan.Sleep {
		base := level*constituicao + modifier.SumFlat(plan.PVModifiers)
		out.PV = scaleRecovery(base, factor)
	}
	if plan.Meditate {
		base := level*presenca + modifier.SumFlat(plan.PPModifiers)
		out.PP = scaleRecovery(base, factor)
	}
	return out
}

func scaleRecovery(base int, factor float64) int {
	scaled := int(math.Floor(float64(base) * factor))
	if scaled < 0 {
		return 0
	}
	return scaled
}
