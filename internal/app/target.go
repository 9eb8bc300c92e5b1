package app

// TargetKind is the kind of the current target.
//
// The numeric values are persisted and must not change.
type TargetKind int

const (
	TargetBookmark TargetKind = iota
	TargetNotedSystem
	TargetNone
)

func (tk TargetKind) String() string {
	switch tk {
	case TargetBookmark:
		return "bookmark"
	case TargetNotedSystem:
		return "noted system"
	case TargetNone:
		return "none"
	}
	return "?"
}

// Target is the location the user is currently heading for.
// ID, Name and Position are only meaningful when Kind is not [TargetNone].
type Target struct {
	Kind     TargetKind
	ID       int64
	Name     string
	Position Position
}

// IsSet reports whether a target is active.
func (t Target) IsSet() bool {
	return t.Kind != TargetNone
}
