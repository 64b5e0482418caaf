package channel

import (
	"fmt"

	"github.com/blang/semver/v4"
)

// ProtocolVersion is the AIR/proof wire format version. Mixing it into a
// channel (MixProtocolVersion) before any sampling makes a proof produced
// by an incompatible version fail fast on a version-string mismatch
// instead of a confusing downstream constraint failure. Channels do not
// mix it on their own: NewBlake2sChannel starts from a zeroed digest.
var ProtocolVersion = semver.MustParse("1.0.0")

// MixProtocolVersion binds ProtocolVersion into c. Provers call it once
// at the start of a transcript; verifiers call it identically before
// replaying the prover's Mix/Draw sequence.
func MixProtocolVersion(c Channel) {
	c.MixBytes([]byte(ProtocolVersion.String()))
}

// CheckProtocolVersion parses a peer-reported version string and
// returns an error if it isn't exactly ProtocolVersion.
func CheckProtocolVersion(reported string) error {
	v, err := semver.Parse(reported)
	if err != nil {
		return fmt.Errorf("channel: malformed protocol version %q: %w", reported, err)
	}
	if !v.EQ(ProtocolVersion) {
		return fmt.Errorf("channel: protocol version mismatch: got %s, want %s", v, ProtocolVersion)
	}
	return nil
}
