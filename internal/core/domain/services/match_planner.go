package services

import (
	"math"
	"sort"

	"farmsale/internal/core/domain/model/kernel"
	"farmsale/internal/core/domain/model/order"
	"farmsale/internal/core/domain/model/unit"
)

// GroupKind labels a candidate group. Groups are returned in presentation
// order; callers render the label, the planner decides the grouping.
type GroupKind int

const (
	// GroupClosest holds weight-mode candidates sorted by distance to the
	// target weight, best fit first. Rendered without a label.
	GroupClosest GroupKind = iota

	// GroupAvailable holds uncommitted units when no size preference
	// applies. Rendered without a label.
	GroupAvailable

	// GroupFitting holds uncommitted units whose tier matches the order's
	// size preference.
	GroupFitting

	// GroupOther holds uncommitted units whose tier does not match.
	GroupOther

	// GroupHalfOpen holds half-committed units when no size preference
	// applies. Precedes the uncommitted groups.
	GroupHalfOpen

	// GroupHalfOpenFitting holds half-committed units whose tier matches the
	// order's size preference.
	GroupHalfOpenFitting

	// GroupHalfOpenOther holds half-committed units whose tier does not match.
	GroupHalfOpenOther
)

// Candidate is one selectable unit. For a half-committed unit the candidate
// carries the customer already holding the other half, so the caller can
// label the pairing.
type Candidate struct {
	Unit             *unit.WeighedUnit
	PairedCustomerID kernel.ID // zero unless the unit is half-committed
}

// CandidateGroup is an ordered, labeled set of candidates.
type CandidateGroup struct {
	Kind       GroupKind
	Candidates []Candidate
}

// Action tells the caller which single interaction the order allows.
type Action int

const (
	// ActionSelect means the order is pending: present the candidate groups,
	// or the no-units-available state when all groups are empty.
	ActionSelect Action = iota

	// ActionUnmatch means the order is matched: the only possible action is
	// clearing the assignment.
	ActionUnmatch
)

// Plan is the outcome of the candidate decision function.
type Plan struct {
	Action Action
	Groups []CandidateGroup
}

// HasCandidates reports whether any group contains at least one candidate.
// A pending order without candidates is a valid empty state, not an error.
func (p Plan) HasCandidates() bool {
	for _, g := range p.Groups {
		if len(g.Candidates) > 0 {
			return true
		}
	}
	return false
}

// MatchPlanner is the pure decision function behind the matching workflow.
// Given an order and the session's units and orders it computes what the
// caller may do and which units may be offered, without touching storage.
// The transactional assignment itself lives in the match command handler.
type MatchPlanner struct {
	classifier SizeClassifier
}

// NewMatchPlanner creates a new MatchPlanner instance.
func NewMatchPlanner() MatchPlanner {
	return MatchPlanner{classifier: NewSizeClassifier()}
}

// Plan computes the candidate plan for the given order.
//
// sessionUnits and sessionOrders must be the complete unit and order sets of
// the order's session; commitments are derived from them. Returns
// order.ErrOrderIsInvoiced for invoiced orders: they are terminal and allow
// no interaction at all.
func (p MatchPlanner) Plan(
	o *order.Order,
	sessionUnits []*unit.WeighedUnit,
	sessionOrders []*order.Order,
) (Plan, error) {
	if err := o.Validate(); err != nil {
		return Plan{}, err
	}

	switch o.Status() {
	case order.Invoiced:
		return Plan{}, order.ErrOrderIsInvoiced
	case order.Matched:
		return Plan{Action: ActionUnmatch}, nil
	}

	holders := holdersByUnit(sessionOrders)
	if o.IsHalf() {
		return Plan{Action: ActionSelect, Groups: p.halfGroups(o, sessionUnits, holders)}, nil
	}
	return Plan{Action: ActionSelect, Groups: p.wholeGroups(o, sessionUnits, holders)}, nil
}

// Commitment derives the commitment level of a unit from the session's
// orders: one whole reference or two half references fully commit the unit,
// a single half reference half-commits it.
func (p MatchPlanner) Commitment(unitID kernel.ID, sessionOrders []*order.Order) unit.Commitment {
	return holdersByUnit(sessionOrders).commitment(unitID)
}

// CanAssign validates that the unit may be assigned to the order right now.
// Used by the match command inside its transaction so a concurrent-looking
// sequence of calls can never overcommit a unit.
func (p MatchPlanner) CanAssign(
	o *order.Order,
	u *unit.WeighedUnit,
	sessionOrders []*order.Order,
) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if err := u.Validate(); err != nil {
		return err
	}
	if o.SessionID() != u.SessionID() {
		return ErrUnitFromOtherSession
	}
	if o.Status() == order.Invoiced {
		return order.ErrOrderIsInvoiced
	}

	switch holdersByUnit(sessionOrders).commitment(u.ID()) {
	case unit.FullyCommitted:
		return ErrUnitFullyCommitted
	case unit.HalfCommitted:
		if !o.IsHalf() {
			return ErrUnitHalfCommitted
		}
	}
	return nil
}

// OddPendingHalfOrders reports whether an odd number of pending half orders
// exist. Purely advisory: it flags that pairing will leave one half order
// unpairable until another half order or unit arrives.
func OddPendingHalfOrders(sessionOrders []*order.Order) bool {
	count := 0
	for _, o := range sessionOrders {
		if o.Status() == order.Pending && o.IsHalf() {
			count++
		}
	}
	return count%2 == 1
}

// wholeGroups builds the candidate groups for a pending whole order
// (weight-mode orders are always whole). Only uncommitted units qualify:
// a whole order cannot take a half-committed unit.
func (p MatchPlanner) wholeGroups(
	o *order.Order,
	sessionUnits []*unit.WeighedUnit,
	holders unitHolders,
) []CandidateGroup {
	open := make([]*unit.WeighedUnit, 0, len(sessionUnits))
	for _, u := range sessionUnits {
		if holders.commitment(u.ID()) == unit.Uncommitted {
			open = append(open, u)
		}
	}

	if ws, ok := o.Spec().(order.WeightSpec); ok {
		return []CandidateGroup{{Kind: GroupClosest, Candidates: sortByClosest(open, ws.Target())}}
	}

	size := order.SizeOf(o.Spec())
	ranges := p.classifier.CalculateRanges(sessionUnits)
	if !size.IsSpecified() || ranges == nil {
		return []CandidateGroup{{Kind: GroupAvailable, Candidates: plainCandidates(open)}}
	}

	fitting, other := p.partitionBySize(open, *ranges, size)
	return []CandidateGroup{
		{Kind: GroupFitting, Candidates: plainCandidates(fitting)},
		{Kind: GroupOther, Candidates: plainCandidates(other)},
	}
}

// halfGroups builds the candidate groups for a pending half order, in
// priority order: half-committed units first (they complete a pair), then
// uncommitted units, each split by size preference when one is computable.
func (p MatchPlanner) halfGroups(
	o *order.Order,
	sessionUnits []*unit.WeighedUnit,
	holders unitHolders,
) []CandidateGroup {
	var halfOpen, open []*unit.WeighedUnit
	for _, u := range sessionUnits {
		switch holders.commitment(u.ID()) {
		case unit.HalfCommitted:
			halfOpen = append(halfOpen, u)
		case unit.Uncommitted:
			open = append(open, u)
		}
	}

	size := order.SizeOf(o.Spec())
	ranges := p.classifier.CalculateRanges(sessionUnits)
	if !size.IsSpecified() || ranges == nil {
		return []CandidateGroup{
			{Kind: GroupHalfOpen, Candidates: pairedCandidates(halfOpen, holders)},
			{Kind: GroupAvailable, Candidates: plainCandidates(open)},
		}
	}

	halfFitting, halfOther := p.partitionBySize(halfOpen, *ranges, size)
	openFitting, openOther := p.partitionBySize(open, *ranges, size)
	return []CandidateGroup{
		{Kind: GroupHalfOpenFitting, Candidates: pairedCandidates(halfFitting, holders)},
		{Kind: GroupHalfOpenOther, Candidates: pairedCandidates(halfOther, holders)},
		{Kind: GroupFitting, Candidates: plainCandidates(openFitting)},
		{Kind: GroupOther, Candidates: plainCandidates(openOther)},
	}
}

func (p MatchPlanner) partitionBySize(
	units []*unit.WeighedUnit, ranges SizeRanges, size order.SizePreference,
) (fitting []*unit.WeighedUnit, other []*unit.WeighedUnit) {
	for _, u := range units {
		if p.classifier.Classify(u.Weight(), ranges) == size {
			fitting = append(fitting, u)
		} else {
			other = append(other, u)
		}
	}
	return fitting, other
}

// unitHolders indexes the matched and invoiced orders by their assigned unit.
type unitHolders map[kernel.ID][]*order.Order

func holdersByUnit(sessionOrders []*order.Order) unitHolders {
	holders := make(unitHolders)
	for _, o := range sessionOrders {
		if id := o.UnitID(); id != nil {
			holders[*id] = append(holders[*id], o)
		}
	}
	return holders
}

func (h unitHolders) commitment(unitID kernel.ID) unit.Commitment {
	halves := 0
	for _, o := range h[unitID] {
		if !o.IsHalf() {
			return unit.FullyCommitted
		}
		halves++
	}
	switch {
	case halves >= 2:
		return unit.FullyCommitted
	case halves == 1:
		return unit.HalfCommitted
	}
	return unit.Uncommitted
}

// pairedCustomer returns the customer holding the single half claim on the unit.
func (h unitHolders) pairedCustomer(unitID kernel.ID) kernel.ID {
	for _, o := range h[unitID] {
		return o.CustomerID()
	}
	return 0
}

func plainCandidates(units []*unit.WeighedUnit) []Candidate {
	candidates := make([]Candidate, 0, len(units))
	for _, u := range units {
		candidates = append(candidates, Candidate{Unit: u})
	}
	return candidates
}

func pairedCandidates(units []*unit.WeighedUnit, holders unitHolders) []Candidate {
	candidates := make([]Candidate, 0, len(units))
	for _, u := range units {
		candidates = append(candidates, Candidate{
			Unit:             u,
			PairedCustomerID: holders.pairedCustomer(u.ID()),
		})
	}
	return candidates
}

// sortByClosest orders candidates by absolute distance to the target weight
// ascending, breaking ties by natural ascending weight.
func sortByClosest(units []*unit.WeighedUnit, target kernel.Weight) []Candidate {
	sorted := make([]*unit.WeighedUnit, len(units))
	copy(sorted, units)
	sort.SliceStable(sorted, func(i, j int) bool {
		di := math.Abs(sorted[i].Weight().Float64() - target.Float64())
		dj := math.Abs(sorted[j].Weight().Float64() - target.Float64())
		if di != dj {
			return di < dj
		}
		return sorted[i].Weight() < sorted[j].Weight()
	})
	return plainCandidates(sorted)
}
