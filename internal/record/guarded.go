package record

import "math"

const (
	// ReasonInsufficient is the default rejection reason for Decrease.
	ReasonInsufficient = "insufficient value"

	// ReasonOverflow is returned when Increase would pass math.MaxInt64.
	ReasonOverflow = "value would overflow"
)

// State is the coarse position of a Guarded value on the integer line.
type State int

const (
	Zero State = iota
	Positive
)

func (s State) String() string {
	if s == Zero {
		return "zero"
	}
	return "positive"
}

// Guarded is a labeled counter that never decreases below zero.
//
// The zero value is not usable; build one with NewGuarded. A Guarded is
// not safe for concurrent use; callers that share one must serialise
// access themselves (the SQLite store does this with a transaction).
type Guarded struct {
	label        string
	value        int64
	rejectReason string
}

// NewGuarded returns a Guarded holding initial. It never fails.
func NewGuarded(label string, initial int64) *Guarded {
	return &Guarded{label: label, value: initial, rejectReason: ReasonInsufficient}
}

func (g *Guarded) withReason(reason string) *Guarded {
	g.rejectReason = reason
	return g
}

// Label returns the identity the record was created with.
func (g *Guarded) Label() string { return g.label }

// Value returns the current state.
func (g *Guarded) Value() int64 { return g.value }

// State reports whether the value is Zero or Positive.
func (g *Guarded) State() State {
	if g.value == 0 {
		return Zero
	}
	return Positive
}

func (g *Guarded) applied(before int64) Result {
	return Result{Label: g.label, Status: StatusApplied, Before: before, After: g.value}
}

func (g *Guarded) rejected(reason string) Result {
	return Result{Label: g.label, Status: StatusRejected, Reason: reason, Before: g.value, After: g.value}
}

// Increase adds amount. Amounts are expected to be non-negative; that is
// the caller's contract and is not checked here. An increase that would
// wrap past math.MaxInt64 is rejected with ReasonOverflow.
func (g *Guarded) Increase(amount int64) Result {
	if amount > 0 && g.value > math.MaxInt64-amount {
		return g.rejected(ReasonOverflow)
	}
	before := g.value
	g.value += amount
	return g.applied(before)
}

// Decrease subtracts amount unless the current value is smaller than
// amount, in which case the value is left as is and a rejection is
// returned.
func (g *Guarded) Decrease(amount int64) Result {
	if g.value < amount {
		return g.rejected(g.rejectReason)
	}
	before := g.value
	g.value -= amount
	return g.applied(before)
}
