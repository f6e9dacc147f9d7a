// Package inventory models carried gear: item stacks and their weight,
// the carrying-capacity formula with its encumbrance states, and the
// durability ladder items degrade through.
package inventory

// Item is one stack of carried gear.
type Item struct {
	Name     string  `yaml:"name" json:"name"`
	Weight   float64 `yaml:"weight" json:"weight"` // per unit; 0 triggers the aggregation rule
	Quantity int     `yaml:"quantity" json:"quantity"`
	// Durability is nil for items that do not degrade.
	Durability *Durability `yaml:"durability,omitempty" json:"durability,omitempty"`
}

// zeroWeightBatch is how many zero-weight items together count as one
// unit of effective weight. Each stack contributes its pro-rata share
// (quantity / 5), so four trinkets weigh 0.8 units. Kept exactly as the
// published sheets compute it.
const zeroWeightBatch = 5

// coinsPerWeightUnit is how many coins count as one unit of weight.
const coinsPerWeightUnit = 100

// EffectiveWeight returns the stack's contribution to carried load,
// including the zero-weight aggregation rule. Non-positive quantities
// contribute nothing.
func (i Item) EffectiveWeight() float64 {
	if i.Quantity <= 0 {
		return 0
	}
	if i.Weight == 0 {
		return float64(i.Quantity) / zeroWeightBatch
	}
	return i.Weight * float64(i.Quantity)
}

// TotalLoad sums the effective weight of every stack plus the weight of
// carried currency.
func TotalLoad(items []Item, currency int) float64 {
	load := 0.0
	for _, it := range items {
		load += it.EffectiveWeight()
	}
	if currency > 0 {
		load += float64(currency) / coinsPerWeightUnit
	}
	return load
}
