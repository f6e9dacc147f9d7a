package dice

import "fmt"

// Kind discriminates the roll result variants so consumers can
// exhaustively switch on what was rolled.
type Kind string

const (
	KindPool   Kind = "pool"
	KindDamage Kind = "damage"
	KindCustom Kind = "custom"
)

// Result is the tagged union over the three roll outcome shapes. Exactly
// one of Pool, Damage, or Custom is non-nil, matching Kind.
type Result struct {
	Kind   Kind
	Pool   *PoolResult
	Damage *DamageResult
	Custom *CustomResult
}

// PoolOutcome wraps a PoolResult as a tagged Result.
func PoolOutcome(p PoolResult) Result {
	return Result{Kind: KindPool, Pool: &p}
}

// DamageOutcome wraps a DamageResult as a tagged Result.
func DamageOutcome(d DamageResult) Result {
	return Result{Kind: KindDamage, Damage: &d}
}

// CustomOutcome wraps a CustomResult as a tagged Result.
func CustomOutcome(c CustomResult) Result {
	return Result{Kind: KindCustom, Custom: &c}
}

// Summary returns a one-line human-readable rendering of the result.
//
// Precondition: the variant matching Kind is non-nil. Panics on a
// malformed Result whose variant pointer is missing.
func (r Result) Summary() string {
	switch r.Kind {
	case KindPool:
		return fmt.Sprintf("%s → %v = %d successes (%d - %d)",
			r.Pool.Formula, r.Pool.Values, r.Pool.NetSuccesses,
			r.Pool.Successes, r.Pool.Cancellations)
	case KindDamage:
		return fmt.Sprintf("%s → %v %+d = %d damage",
			r.Damage.Formula, r.Damage.Values, r.Damage.Modifier, r.Damage.Total)
	case KindCustom:
		return fmt.Sprintf("%s → %v = %d",
			r.Custom.Formula, r.Custom.Values, r.Custom.Total)
	}
	panic(fmt.Sprintf("dice: Summary called on malformed Result kind %q", r.Kind))
}
