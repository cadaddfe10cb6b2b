package segment

import "slipstream/internal/melee"

// JumpThresholds maps a character to the vertical velocity, read off the
// terminal jump-squat frame, that separates a full hop from a short hop.
//
// There are no built-in values. Real thresholds come from empirical
// measurement of each character's jump physics, and an invented default
// would silently misclassify every jump, so the table ships empty and is
// populated from configuration. Jumps by characters without an entry are
// abandoned rather than guessed at, and counted in Report.MissingJumpData.
type JumpThresholds map[melee.Character]float32

// Lookup returns the measured threshold for the character, if one was
// provided.
func (t JumpThresholds) Lookup(c melee.Character) (float32, bool) {
	v, ok := t[c]
	return v, ok
}
