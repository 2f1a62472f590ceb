package unit

// Commitment is the derived match state of a weighed unit. It is computed
// from the orders referencing the unit, never stored.
type Commitment int

const (
	// Uncommitted means no order references the unit.
	Uncommitted Commitment = iota

	// HalfCommitted means exactly one half order references the unit. The
	// unit can still pair with one more half order, and only a half order.
	HalfCommitted

	// FullyCommitted means the unit is spoken for: either a whole order
	// references it, or two half orders do. It must never be offered as a
	// match candidate again.
	FullyCommitted
)

// String returns a human-readable name for logging and test output.
func (c Commitment) String() string {
	switch c {
	case Uncommitted:
		return "uncommitted"
	case HalfCommitted:
		return "half-committed"
	case FullyCommitted:
		return "fully committed"
	}
	return "unknown"
}
