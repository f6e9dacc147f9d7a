package inventory

// DurabilityDie is one rung on the durability ladder. The ladder is
// wider than the skill-pool sizes: items can sit anywhere on
// d2 < d4 < d6 < d8 < d10 < d12 < d20 < d100.
type DurabilityDie string

const (
	Die2   DurabilityDie = "d2"
	Die4   DurabilityDie = "d4"
	Die6   DurabilityDie = "d6"
	Die8   DurabilityDie = "d8"
	Die10  DurabilityDie = "d10"
	Die12  DurabilityDie = "d12"
	Die20  DurabilityDie = "d20"
	Die100 DurabilityDie = "d100"
)

// ladder orders the durability dice lowest to highest.
var ladder = []DurabilityDie{Die2, Die4, Die6, Die8, Die10, Die12, Die20, Die100}

// ladderIndex returns d's rung, or -1 for an unknown die.
func ladderIndex(d DurabilityDie) int {
	for i, rung := range ladder {
		if rung == d {
			return i
		}
	}
	return -1
}

// DurabilityState enumerates an item's wear states.
type DurabilityState string

const (
	StateIntacto    DurabilityState = "intacto"
	StateDanificado DurabilityState = "danificado"
	StateQuebrado   DurabilityState = "quebrado"
)

// Durability tracks an item's wear: the die it currently rolls, the die
// it rolls when whole, and its state.
//
// Invariant: State == intacto iff Current == Max and the item has not
// broken; State == quebrado implies Current == Die2, the terminal rung.
type Durability struct {
	Current DurabilityDie   `yaml:"current" json:"currentDie"`
	Max     DurabilityDie   `yaml:"max" json:"maxDie"`
	State   DurabilityState `yaml:"state" json:"state"`
}

// NewDurability returns an intact Durability rolling max.
func NewDurability(max DurabilityDie) Durability {
	return Durability{Current: max, Max: max, State: StateIntacto}
}

// ApplyRoll returns the durability after the item's die showed roll. A 1
// steps the die down one rung; stepping down from d2 breaks the item
// (the die stays d2). Any other roll, and any roll against an already
// broken item, leaves everything untouched.
//
// Postcondition: breaking is idempotent — once quebrado, further 1s
// change nothing.
func (d Durability) ApplyRoll(roll int) Durability {
	if d.State == StateQuebrado || roll != 1 {
		return d
	}

	idx := ladderIndex(d.Current)
	if idx <= 0 {
		// At d2 (or off the ladder entirely): the die has nowhere to go.
		d.State = StateQuebrado
		return d
	}

	d.Current = ladder[idx-1]
	d.State = StateDanificado
	return d
}

// Repair restores the item to its whole die and intact state.
//
// Postcondition: Current == Max; State == intacto.
func (d Durability) Repair() Durability {
	d.Current = d.Max
	d.State = StateIntacto
	return d
}
