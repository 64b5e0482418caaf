package channel

import "golang.org/x/crypto/blake2s"

// Digest hashes an opaque byte string with blake2s-256 directly,
// bypassing the transcript's named-challenge bookkeeping. It is used
// for logging and snapshotting proof artifacts (SPEC_FULL.md §11),
// never for deriving a challenge that must be reproducible by a
// verifier re-running a Channel.
func Digest(data []byte) [32]byte {
	return blake2s.Sum256(data)
}
