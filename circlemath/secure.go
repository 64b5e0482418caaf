package circlemath

import "github.com/BaoNinh2808/circle-stark/qm31"

// SecureEvaluation is CircleEvaluation specialized to the secure field
// E = QM31 (spec.md §3: "SecureEvaluation<B>: analog over E").
type SecureEvaluation = CircleEvaluation[qm31.Element]

// SecurePoly is CirclePoly specialized to the secure field.
type SecurePoly = CirclePoly[qm31.Element]
