// Package snapshot persists a deterministic debug dump of one proving
// run's InteractionElements and LookupValues (spec.md §8 scenario S5,
// "byte-identical transcripts"), so two runs of the same AIR can be
// compared byte-for-byte without re-running the whole protocol.
package snapshot

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"
	"github.com/ronanh/intcomp"

	"github.com/BaoNinh2808/circle-stark/air"
	"github.com/BaoNinh2808/circle-stark/m31"
	"github.com/BaoNinh2808/circle-stark/qm31"
)

// FeltCoords is a CBOR-friendly rendition of one qm31.Element's four
// base-field coordinates, in FromParts/Parts order.
type FeltCoords [4]uint32

func toCoords(v qm31.Element) FeltCoords {
	a0, a1, b0, b1 := v.Parts()
	return FeltCoords{uint32(a0), uint32(a1), uint32(b0), uint32(b1)}
}

func fromCoords(c FeltCoords) qm31.Element {
	return qm31.FromParts(m31.FromUint32(c[0]), m31.FromUint32(c[1]), m31.FromUint32(c[2]), m31.FromUint32(c[3]))
}

// Entry is one named secure-field value in a snapshot.
type Entry struct {
	ID    string
	Value FeltCoords
}

// Snapshot is a canonical dump of a proving run's interaction elements
// and lookup values, sorted by id so two runs of the same AIR serialize
// identically (spec.md §8 S5).
type Snapshot struct {
	InteractionElements []Entry
	LookupValues        []Entry
}

// FromRun builds a Snapshot from one proving run's bound interaction
// elements and lookup values.
func FromRun(elems air.InteractionElements, lookups air.LookupValues) Snapshot {
	s := Snapshot{}
	for _, id := range elems.Ids() {
		v, _ := elems.Get(id)
		s.InteractionElements = append(s.InteractionElements, Entry{ID: id, Value: toCoords(v)})
	}
	for _, id := range lookups.Ids() {
		v, _ := lookups.Get(id)
		s.LookupValues = append(s.LookupValues, Entry{ID: id, Value: toCoords(v)})
	}
	return s
}

// InteractionElementsMap reconstructs an air.InteractionElements from
// the snapshot's entries.
func (s Snapshot) InteractionElementsMap() air.InteractionElements {
	m := make(map[string]qm31.Element, len(s.InteractionElements))
	for _, e := range s.InteractionElements {
		m[e.ID] = fromCoords(e.Value)
	}
	return air.NewInteractionElements(m)
}

// Encode canonically CBOR-encodes the snapshot: same input always
// produces the same bytes, which is what scenario S5's
// byte-for-byte comparison depends on.
func Encode(s Snapshot) ([]byte, error) {
	mode, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		return nil, fmt.Errorf("snapshot: build canonical encoder: %w", err)
	}
	data, err := mode.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("snapshot: encode: %w", err)
	}
	return data, nil
}

// Decode is the inverse of Encode.
func Decode(data []byte) (Snapshot, error) {
	var s Snapshot
	if err := cbor.Unmarshal(data, &s); err != nil {
		return Snapshot{}, fmt.Errorf("snapshot: decode: %w", err)
	}
	return s, nil
}

// CompressAlphaPowerOrder compresses the integer sequence of α-power
// assignments (the reservation order, spec.md §4.2 invariant (i)): in
// practice a run of small, often-repeating deltas between consecutive
// reservation sizes, the shape intcomp's integer codecs are built for.
func CompressAlphaPowerOrder(order []uint32) []uint32 {
	return intcomp.CompressUint32(order, nil)
}

// DecompressAlphaPowerOrder is the inverse of CompressAlphaPowerOrder;
// n is the original (uncompressed) element count.
func DecompressAlphaPowerOrder(compressed []uint32, n int) []uint32 {
	return intcomp.UncompressUint32(compressed, make([]uint32, 0, n))
}
