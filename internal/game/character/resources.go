package character

// Points tracks a spendable resource such as hit points or power points.
//
// Soft invariant, maintained by the update methods: all fields are
// non-negative and Current <= Max.
type Points struct {
	Current   int `yaml:"current" json:"current"`
	Max       int `yaml:"max" json:"max"`
	Temporary int `yaml:"temporary,omitempty" json:"temporary,omitempty"`
}

// ApplyDamage returns the points after taking amount damage. Temporary
// points absorb first; the remainder comes out of Current, floored at 0.
// Negative amounts are treated as 0.
func (p Points) ApplyDamage(amount int) Points {
	if amount <= 0 {
		return p
	}

	if p.Temporary > 0 {
		absorbed := amount
		if absorbed > p.Temporary {
			absorbed = p.Temporary
		}
		p.Temporary -= absorbed
		amount -= absorbed
	}

	p.Current -= amount
	if p.Current < 0 {
		p.Current = 0
	}
	return p
}

// Heal returns the points after recovering amount, added to Current and
// clamped to Max. Healing never touches Temporary. Negative amounts are
// treated as 0.
func (p Points) Heal(amount int) Points {
	if amount <= 0 {
		return p
	}
	p.Current += amount
	if p.Current > p.Max {
		p.Current = p.Max
	}
	return p
}

// AddTemporary returns the points with amount extra temporary points.
// Negative amounts are treated as 0.
func (p Points) AddTemporary(amount int) Points {
	if amount > 0 {
		p.Temporary += amount
	}
	return p
}
