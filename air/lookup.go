package air

import (
	"fmt"

	"github.com/BaoNinh2808/circle-stark/gkrtypes"
)

// LookupInstanceConfig is published per lookup a component's
// constraints reference (spec.md §3, §4.5).
type LookupInstanceConfig struct {
	Variant       gkrtypes.GateKind
	IsLookupTable bool
}

// LookupVariant distinguishes which side of a lookup a LookupConfig
// describes: the side defining the multiset, or a side consuming it.
type LookupVariant int

const (
	LookupReference LookupVariant = iota
	LookupTable
)

// ColumnEvaluator is a tagged union over the two capabilities spec.md
// §3 names: a fixed, small set of variants, so it is a tagged union
// rather than an interface (spec.md §9 Design Notes). Exactly one of
// Univariate/Multilinear should be set.
type ColumnEvaluator struct {
	Univariate  TraceExprPolynomial
	Multilinear MultilinearPolynomial
}

func (c ColumnEvaluator) IsUnivariate() bool  { return c.Univariate != nil }
func (c ColumnEvaluator) IsMultilinear() bool { return c.Multilinear != nil }

// LogUpEvaluator is the two-polynomial (numerator, denominator)
// representation spec.md §3 describes for the LogUp variant.
type LogUpEvaluator struct {
	Numerator   ColumnEvaluator
	Denominator ColumnEvaluator
}

// LookupEvaluator is the sum type over the two lookup protocols
// spec.md §3 describes: exactly one of GrandProduct/LogUp is set.
type LookupEvaluator struct {
	GrandProduct *ColumnEvaluator
	LogUp        *LogUpEvaluator
}

// LookupConfig ties a lookup's variant to its evaluator (spec.md §3).
type LookupConfig struct {
	Variant   LookupVariant
	Evaluator LookupEvaluator
}

// LookupBatch groups the LookupInstanceConfigs of one gate kind across
// every component into the table side (defines the multiset) and the
// reference side (consumes it), per spec.md §4.5.
type LookupBatch struct {
	Kind       gkrtypes.GateKind
	Table      []LookupInstanceConfig
	References []LookupInstanceConfig
}

// SplitLookupInstances groups configs by gate kind and validates the
// per-kind arity rule spec.md §4.5 states: a LogUp lookup requires
// exactly one table side and at least one reference side; a
// grand-product lookup requires balanced (equally many) table and
// reference sides.
func SplitLookupInstances(configs []LookupInstanceConfig) (map[gkrtypes.GateKind]*LookupBatch, error) {
	batches := map[gkrtypes.GateKind]*LookupBatch{}
	for _, cfg := range configs {
		b, ok := batches[cfg.Variant]
		if !ok {
			b = &LookupBatch{Kind: cfg.Variant}
			batches[cfg.Variant] = b
		}
		if cfg.IsLookupTable {
			b.Table = append(b.Table, cfg)
		} else {
			b.References = append(b.References, cfg)
		}
	}
	for kind, b := range batches {
		switch kind {
		case gkrtypes.LogUp:
			if len(b.Table) != 1 {
				return nil, fmt.Errorf("air: log_up lookup requires exactly one table side, got %d", len(b.Table))
			}
			if len(b.References) < 1 {
				return nil, fmt.Errorf("air: log_up lookup requires at least one reference side, got 0")
			}
		case gkrtypes.GrandProduct:
			if len(b.Table) != len(b.References) {
				return nil, fmt.Errorf("air: grand_product lookup requires balanced table/reference sides, got %d/%d",
					len(b.Table), len(b.References))
			}
		}
	}
	return batches, nil
}
