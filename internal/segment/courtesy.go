package segment

import "slipstream/internal/melee"

// A courtesy window tolerates a bounded run of same-category frames before
// the segmenter commits to the category's default interpretation. The
// timeouts are empirically tuned per category and load-bearing: changing one
// shifts where wait actions begin and end.
type courtesy struct {
	timeout int
	state   melee.BroadState
}

var (
	airCourtesy     = courtesy{timeout: 10, state: melee.BroadAir}
	airJumpCourtesy = courtesy{timeout: 10, state: melee.BroadAirJump}
	groundCourtesy  = courtesy{timeout: 5, state: melee.BroadGround}
	walkCourtesy    = courtesy{timeout: 5, state: melee.BroadWalk}
	shieldCourtesy  = courtesy{timeout: 5, state: melee.BroadShield}
	crouchCourtesy  = courtesy{timeout: 5, state: melee.BroadCrouch}
	dashCourtesy    = courtesy{timeout: 3, state: melee.BroadDashRun}
	ledgeCourtesy   = courtesy{timeout: 15, state: melee.BroadLedge}
)

// hitstunGapTolerance bounds the non-hitstun gap absorbed between two
// hitstun runs when collapsing them into one span.
const hitstunGapTolerance = 5

type courtesyResult uint8

const (
	// noSkip: the state had already changed; nothing consumed.
	noSkip courtesyResult = iota
	// skipSome: the state changed inside the window; a more specific action
	// started at the new cursor position.
	skipSome
	// skipMax: the grace period fully elapsed; commit to the default.
	skipMax
)

// skipCourtesy consumes up to w.timeout consecutive frames of w.state and
// classifies how the window ended.
func skipCourtesy(c *Cursor, w courtesy) courtesyResult {
	n := c.SkipWhileAtMost(func(st melee.ActionState) bool {
		return st.BroadState() == w.state
	}, w.timeout)
	switch {
	case n == w.timeout:
		return skipMax
	case n == 0:
		return noSkip
	default:
		return skipSome
	}
}
