package air

import (
	"fmt"
	"sort"

	"github.com/bits-and-blooms/bitset"
	"golang.org/x/exp/maps"

	"github.com/BaoNinh2808/circle-stark/qm31"
)

// InteractionElements maps a string identifier to a secure-field
// challenge sampled from the transcript after a commitment phase.
// Immutable once constructed (spec.md §3).
type InteractionElements struct {
	values map[string]qm31.Element
}

// NewInteractionElements builds an immutable InteractionElements from a
// fully-populated map; the map is cloned so later mutation by the
// caller cannot leak through.
func NewInteractionElements(values map[string]qm31.Element) InteractionElements {
	return InteractionElements{values: maps.Clone(values)}
}

// Get returns the element bound to id, if any.
func (e InteractionElements) Get(id string) (qm31.Element, bool) {
	v, ok := e.values[id]
	return v, ok
}

// Ids returns every bound identifier, sorted for deterministic
// iteration (snapshotting and test comparisons rely on this).
func (e InteractionElements) Ids() []string {
	ids := maps.Keys(e.values)
	sort.Strings(ids)
	return ids
}

// LookupValues maps a string identifier to a secure-field value the
// prover derived after evaluating lookups (spec.md §3), fed back into
// constraint evaluation of subsequent phases. Like InteractionElements
// it is append-only: LookupValuesBuilder accumulates entries and
// Build produces the immutable view consumers see.
type LookupValues struct {
	values map[string]qm31.Element
}

func (v LookupValues) Get(id string) (qm31.Element, bool) {
	val, ok := v.values[id]
	return val, ok
}

func (v LookupValues) Ids() []string {
	ids := maps.Keys(v.values)
	sort.Strings(ids)
	return ids
}

// EmptyLookupValues is the default ComponentProver.LookupValues result
// (spec.md §4.3: "default is empty").
func EmptyLookupValues() LookupValues {
	return LookupValues{values: map[string]qm31.Element{}}
}

// LookupValuesBuilder accumulates LookupValues entries under the same
// duplicate-id protection InteractionElements registration gets.
type LookupValuesBuilder struct {
	registry *IDRegistry
	values   map[string]qm31.Element
}

func NewLookupValuesBuilder() *LookupValuesBuilder {
	return &LookupValuesBuilder{registry: NewIDRegistry(), values: map[string]qm31.Element{}}
}

// Set registers id (erroring on a duplicate) and records its value.
func (b *LookupValuesBuilder) Set(id string, v qm31.Element) error {
	if err := b.registry.Register(id); err != nil {
		return err
	}
	b.values[id] = v
	return nil
}

// Build freezes the accumulated entries into a LookupValues.
func (b *LookupValuesBuilder) Build() LookupValues {
	return LookupValues{values: maps.Clone(b.values)}
}

// IDRegistry interns string identifiers into small dense indices and
// uses a bitset to detect a second registration of the same id in O(1)
// (spec.md §6: "collisions across components are not allowed; driver
// enforces uniqueness at registration").
type IDRegistry struct {
	index map[string]uint
	seen  *bitset.BitSet
	next  uint
}

func NewIDRegistry() *IDRegistry {
	return &IDRegistry{index: map[string]uint{}, seen: bitset.New(64)}
}

// Register records id as used, returning an error if it was already
// registered by an earlier call.
func (r *IDRegistry) Register(id string) error {
	idx, ok := r.index[id]
	if !ok {
		idx = r.next
		r.index[id] = idx
		r.next++
	}
	if r.seen.Test(idx) {
		return fmt.Errorf("air: duplicate interaction-element/lookup id %q", id)
	}
	r.seen.Set(idx)
	return nil
}

// CheckInteractionElementsClosure verifies spec.md §8 item 6: every id
// in ids is present in elems.
func CheckInteractionElementsClosure(ids []string, elems InteractionElements) error {
	for _, id := range ids {
		if _, ok := elems.Get(id); !ok {
			return fmt.Errorf("air: interaction element %q required but not present in InteractionElements", id)
		}
	}
	return nil
}
