package inventory

import (
	"github.com/caosrpg/tabuleiro/internal/game/modifier"
	"github.com/caosrpg/tabuleiro/internal/game/ruleset"
)

// Encumbrance enumerates the load states a character can be in.
type Encumbrance string

const (
	EncumbranceNormal         Encumbrance = "normal"
	EncumbranceSobrecarregado Encumbrance = "sobrecarregado"
	EncumbranceImobilizado    Encumbrance = "imobilizado"
)

// Capacity is the full carrying-capacity report for a character.
//
// Invariants: PushLimit == 2 * Total; LiftLimit == 0.5 * Total;
// Total >= 0.
type Capacity struct {
	Base      float64
	Total     float64
	PushLimit float64
	LiftLimit float64
	Load      float64
	State     Encumbrance
}

// capacityBase is the strength-independent floor of the base capacity.
const capacityBase = 10

// CarryingCapacity computes the capacity report for a character:
// base = 10 + 5 x strength, total = base x size factor + flat modifiers,
// push = 2x, lift = 0.5x. The encumbrance state compares carried load
// against the total: at or under 100% normal, at or under 200%
// sobrecarregado, above that imobilizado.
//
// There is no error path: degenerate inputs bottom out at a total of 0,
// which is imobilizado under any positive load.
func CarryingCapacity(strength int, size ruleset.CreatureSize, items []Item, currency int, mods []modifier.Modifier) Capacity {
	base := float64(capacityBase + 5*strength)
	if base < 0 {
		base = 0
	}

	total := base*size.CarryFactor() + float64(modifier.SumFlat(mods))
	if total < 0 {
		total = 0
	}

	load := TotalLoad(items, currency)

	return Capacity{
		Base:      base,
		Total:     total,
		PushLimit: total * 2,
		LiftLimit: total * 0.5,
		Load:      load,
		State:     encumbranceState(load, total),
	}
}

func encumbranceState(load, total float64) Encumbrance {
	if load <= 0 {
		return EncumbranceNormal
	}
	if total <= 0 {
		return EncumbranceImobilizado
	}
	switch ratio := load / total; {
	case ratio <= 1:
		return EncumbranceNormal
	case ratio <= 2:
		return EncumbranceSobrecarregado
	default:
		return EncumbranceImobilizado
	}
}
