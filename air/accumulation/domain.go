package accumulation

import "github.com/BaoNinh2808/circle-stark/qm31"

// DomainEvaluationAccumulator folds per-constraint evaluation vectors
// (one value per domain point) across a whole evaluation domain, one
// folded column per log-domain-size, using the same alpha-power
// assignment order as PointEvaluationAccumulator (spec.md §4.2, §8
// item 4). Unlike the point accumulator, it needs the total
// contribution count up front — the driver computes this by summing
// every component's n_constraints (spec.md §4.3, "for alpha-power
// accounting") before evaluation begins — so that exponents can be
// assigned in the same descending order the point accumulator derives
// implicitly from Horner's rule.
type DomainEvaluationAccumulator struct {
	alpha      qm31.Element
	total      int
	nextIndex  int
	columns    map[uint32][]qm31.Element
	powerCache map[int]qm31.Element
}

// NewDomainEvaluationAccumulator returns an accumulator for `total`
// contributions (summed across every component's n_constraints, in
// Air.Components() order) under challenge alpha.
func NewDomainEvaluationAccumulator(alpha qm31.Element, total int) *DomainEvaluationAccumulator {
	return &DomainEvaluationAccumulator{
		alpha:      alpha,
		total:      total,
		columns:    make(map[uint32][]qm31.Element),
		powerCache: make(map[int]qm31.Element),
	}
}

// power returns alpha^(total-1-globalIndex), memoized per global index so
// that repeated AccumulateAt calls for the same contribution reuse it.
func (d *DomainEvaluationAccumulator) power(globalIndex int) qm31.Element {
	if p, ok := d.powerCache[globalIndex]; ok {
		return p
	}
	exp := d.total - 1 - globalIndex
	if exp < 0 {
		panic("accumulation: reserved more contributions than the declared total")
	}
	p := d.alpha.Pow(uint64(exp))
	d.powerCache[globalIndex] = p
	return p
}

// SubAccumulator is the handle Reserve returns: it owns a contiguous
// block of `nColumns` global alpha-exponents and a single folded
// column of length 2^logSize for this log-domain-size.
type SubAccumulator struct {
	parent    *DomainEvaluationAccumulator
	logSize   uint32
	baseIndex int
	nColumns  int
}

// Reserve carves out nColumns alpha-exponents (the next contiguous
// slice of the global reservation order) and returns a handle that
// folds contributions into the (lazily created, zero-initialized)
// column for logSize. Reservations must happen in the same order the
// driver enumerates components and, within a component, the same order
// it declares constraints — that order is what the exponents encode.
func (d *DomainEvaluationAccumulator) Reserve(nColumns int, logSize uint32) *SubAccumulator {
	if _, ok := d.columns[logSize]; !ok {
		d.columns[logSize] = make([]qm31.Element, 1<<logSize)
	}
	sub := &SubAccumulator{parent: d, logSize: logSize, baseIndex: d.nextIndex, nColumns: nColumns}
	d.nextIndex += nColumns
	return sub
}

// AccumulateAt adds alpha^(exponent for reservation-local index i) *
// values[k] into the domain column at every point k, for the i-th
// contribution reserved by this handle (0 <= i < nColumns).
func (s *SubAccumulator) AccumulateAt(i int, values []qm31.Element) {
	if i < 0 || i >= s.nColumns {
		panic("accumulation: contribution index out of the reserved range")
	}
	if len(values) != 1<<s.logSize {
		panic("accumulation: contribution length does not match the reserved domain size")
	}
	power := s.parent.power(s.baseIndex + i)
	column := s.parent.columns[s.logSize]
	for k, v := range values {
		column[k] = column[k].Add(power.Mul(v))
	}
}

// Columns returns the folded result, one column per log-domain-size
// that was reserved against. This stands in for "one composite
// polynomial of the appropriate degree bound" (spec.md §4.2): turning
// an evaluation vector back into a CirclePoly is the out-of-scope
// circle-domain interpolation step.
func (d *DomainEvaluationAccumulator) Columns() map[uint32][]qm31.Element {
	return d.columns
}

// TotalReserved reports how many of the declared total contributions
// have been reserved so far.
func (d *DomainEvaluationAccumulator) TotalReserved() int { return d.nextIndex }
