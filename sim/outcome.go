package sim

// Outcome is the state of a session. It only ever leaves Ongoing once.
type Outcome uint8

const (
	Ongoing Outcome = iota
	Won
	Lost
)

func (o Outcome) String() string {
	switch o {
	case Ongoing:
		return "ongoing"
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "unknown"
	}
}

// Terminal reports whether the session has ended.
func (o Outcome) Terminal() bool { return o == Won || o == Lost }

// Message is the text shown to the player for a terminal outcome.
func (o Outcome) Message() string {
	switch o {
	case Won:
		return "You Win!"
	case Lost:
		return "Game Over!"
	default:
		return ""
	}
}
