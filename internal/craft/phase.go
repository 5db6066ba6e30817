package craft

// Phase is the lifecycle of the crafting slot.
type Phase int

const (
	// PhaseIdle: slot empty, no preview.
	PhaseIdle Phase = iota
	// PhaseAssembling: slot has items but no recipe matched yet.
	PhaseAssembling
	// PhaseMatched: a recipe matched, the commit is pending.
	PhaseMatched
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseAssembling:
		return "assembling"
	case PhaseMatched:
		return "matched"
	default:
		return "unknown"
	}
}
