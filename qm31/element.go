// Package qm31 implements the secure field E, the degree-4 extension of
// the base field m31.Element used for out-of-domain challenges and all
// accumulator arithmetic. E is built as a tower: CM31 = F[i]/(i^2+1),
// then E = CM31[u]/(u^2-(2+i)).
package qm31

import (
	"fmt"

	"github.com/BaoNinh2808/circle-stark/m31"
)

// CM31 is the degree-2 extension F[i]/(i^2+1).
type CM31 struct {
	A0, A1 m31.Element
}

func CM31Zero() CM31 { return CM31{} }
func CM31One() CM31  { return CM31{A0: m31.One()} }

func (z CM31) IsZero() bool { return z.A0.IsZero() && z.A1.IsZero() }
func (z CM31) Equal(x CM31) bool { return z.A0.Equal(x.A0) && z.A1.Equal(x.A1) }

func (z CM31) Add(x CM31) CM31 { return CM31{z.A0.Add(x.A0), z.A1.Add(x.A1)} }
func (z CM31) Sub(x CM31) CM31 { return CM31{z.A0.Sub(x.A0), z.A1.Sub(x.A1)} }
func (z CM31) Neg() CM31       { return CM31{z.A0.Neg(), z.A1.Neg()} }

func (z CM31) Mul(x CM31) CM31 {
	// (a0+a1 i)(b0+b1 i) = (a0 b0 - a1 b1) + (a0 b1 + a1 b0) i
	return CM31{
		A0: z.A0.Mul(x.A0).Sub(z.A1.Mul(x.A1)),
		A1: z.A0.Mul(x.A1).Add(z.A1.Mul(x.A0)),
	}
}

func (z CM31) MulBase(x m31.Element) CM31 {
	return CM31{z.A0.Mul(x), z.A1.Mul(x)}
}

// norm returns a0^2+a1^2, the field norm down to F.
func (z CM31) norm() m31.Element {
	return z.A0.Square().Add(z.A1.Square())
}

func (z CM31) Inverse() (CM31, error) {
	n := z.norm()
	ninv, err := n.Inverse()
	if err != nil {
		return CM31{}, fmt.Errorf("qm31: cm31 inverse: %w", err)
	}
	return CM31{A0: z.A0.Mul(ninv), A1: z.A1.Neg().Mul(ninv)}, nil
}

// Element is the secure field E = CM31[u]/(u^2-(2+i)).
type Element struct {
	C0, C1 CM31
}

// uSquared is the fixed non-residue 2+i defining the quadratic extension.
var uSquared = CM31{A0: m31.FromUint32(2), A1: m31.One()}

func Zero() Element { return Element{} }
func One() Element  { return Element{C0: CM31One()} }

// FromBase embeds a base-field element into E.
func FromBase(x m31.Element) Element {
	return Element{C0: CM31{A0: x}}
}

// FromParts builds an element directly from its four base-field
// coordinates (a0,a1,b0,b1) such that z = (a0+a1*i) + (b0+b1*i)*u. It is
// the inverse of Parts, used by the channel package to deserialize a
// sampled challenge from raw hash output.
func FromParts(a0, a1, b0, b1 m31.Element) Element {
	return Element{C0: CM31{A0: a0, A1: a1}, C1: CM31{A0: b0, A1: b1}}
}

// Parts returns z's four base-field coordinates in the same order
// FromParts consumes them.
func (z Element) Parts() (a0, a1, b0, b1 m31.Element) {
	return z.C0.A0, z.C0.A1, z.C1.A0, z.C1.A1
}

func (z Element) IsZero() bool  { return z.C0.IsZero() && z.C1.IsZero() }
func (z Element) Equal(x Element) bool {
	return z.C0.Equal(x.C0) && z.C1.Equal(x.C1)
}

func (z Element) Add(x Element) Element {
	return Element{z.C0.Add(x.C0), z.C1.Add(x.C1)}
}

func (z Element) Sub(x Element) Element {
	return Element{z.C0.Sub(x.C0), z.C1.Sub(x.C1)}
}

func (z Element) Neg() Element {
	return Element{z.C0.Neg(), z.C1.Neg()}
}

func (z Element) Mul(x Element) Element {
	// (c0+c1 u)(d0+d1 u) = (c0 d0 + c1 d1 u^2) + (c0 d1 + c1 d0) u
	c1d1u2 := z.C1.Mul(x.C1).Mul(uSquared)
	return Element{
		C0: z.C0.Mul(x.C0).Add(c1d1u2),
		C1: z.C0.Mul(x.C1).Add(z.C1.Mul(x.C0)),
	}
}

func (z Element) MulBase(x m31.Element) Element {
	return Element{z.C0.MulBase(x), z.C1.MulBase(x)}
}

func (z Element) Square() Element { return z.Mul(z) }

// Pow returns z^e via square-and-multiply.
func (z Element) Pow(e uint64) Element {
	result := One()
	base := z
	for e > 0 {
		if e&1 == 1 {
			result = result.Mul(base)
		}
		base = base.Square()
		e >>= 1
	}
	return result
}

// Inverse returns z^-1 using the norm down to CM31:
// N(z) = z*conj(z) = c0^2 - c1^2*u^2 in CM31, then z^-1 = conj(z)*N(z)^-1.
func (z Element) Inverse() (Element, error) {
	norm := z.C0.Mul(z.C0).Sub(z.C1.Mul(z.C1).Mul(uSquared))
	normInv, err := norm.Inverse()
	if err != nil {
		return Element{}, fmt.Errorf("qm31: inverse: %w", err)
	}
	conj := Element{C0: z.C0, C1: z.C1.Neg()}
	return Element{C0: conj.C0.Mul(normInv), C1: conj.C1.Mul(normInv)}, nil
}

func (z Element) Div(x Element) (Element, error) {
	inv, err := x.Inverse()
	if err != nil {
		return Element{}, err
	}
	return z.Mul(inv), nil
}

func (z Element) String() string {
	return fmt.Sprintf("(%s, %s, %s, %s)", z.C0.A0, z.C0.A1, z.C1.A0, z.C1.A1)
}
