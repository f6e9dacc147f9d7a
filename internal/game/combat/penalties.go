package combat

// SaveType enumerates the resistance test categories that accumulate
// dice penalties.
type SaveType string

const (
	SaveFisico     SaveType = "fisico"
	SaveMental     SaveType = "mental"
	SaveEspiritual SaveType = "espiritual"
)

// Penalties tracks, per save type, how many dice later resistance tests
// of that type lose. A failed save clears its own type; a new round
// clears everything.
//
// Penalties is not synchronized; callers sharing one across goroutines
// must serialize access.
type Penalties struct {
	byType map[SaveType]int
}

// NewPenalties returns an empty penalty tracker.
func NewPenalties() *Penalties {
	return &Penalties{byType: make(map[SaveType]int)}
}

// Add accumulates n penalty points against save type t. Non-positive n
// is ignored.
func (p *Penalties) Add(t SaveType, n int) {
	if n <= 0 {
		return
	}
	p.byType[t] += n
}

// DicePenalty returns the accumulated penalty for t as a non-positive
// dice count, ready to feed a skill check's penalty input.
//
// Postcondition: result <= 0.
func (p *Penalties) DicePenalty(t SaveType) int {
	return -p.byType[t]
}

// ResetType clears the penalty for t, as happens when a save of that
// type fails.
func (p *Penalties) ResetType(t SaveType) {
	delete(p.byType, t)
}

// Reset clears every accumulated penalty, as happens on a new round.
func (p *Penalties) Reset() {
	p.byType = make(map[SaveType]int)
}
