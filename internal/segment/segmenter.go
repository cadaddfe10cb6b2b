package segment

import "slipstream/internal/melee"

// wavelandEpsilon is the horizontal-velocity dead zone on the landing frame
// inside which a waveland classifies as straight down.
const wavelandEpsilon = 0.1

// Report counts what a segmentation pass could not classify. Dropped spans
// grow as the upstream format evolves, so callers surface these counts
// rather than treating them as errors.
type Report struct {
	Frames          int
	Actions         int
	DroppedSpans    int
	UnknownStates   int
	MissingJumpData int
}

// Segmenter produces action sequences from frame arrays. It is stateless
// across calls and safe to reuse; each Segment call owns its input slice for
// the duration of the pass.
type Segmenter struct {
	thresholds JumpThresholds
}

// New builds a Segmenter with the given jump-velocity thresholds. A nil map
// is valid and causes every jump classification to be abandoned.
func New(thresholds JumpThresholds) *Segmenter {
	return &Segmenter{thresholds: thresholds}
}

// Segment walks the frame array and returns the ordered, non-overlapping
// action sequence it describes. Deterministic and total: an empty input
// yields an empty sequence.
func (s *Segmenter) Segment(frames []melee.Frame) ([]Action, Report) {
	r := &run{cur: NewCursor(frames), thresholds: s.thresholds}
	r.report.Frames = len(frames)

	var actions []Action
	for !r.cur.Finished() {
		st, _ := r.cur.Peek()
		if _, actionable := st.Actionable(); !actionable {
			if st > melee.MaxKnownState {
				r.report.UnknownStates++
			}
			r.cur.Next()
			continue
		}
		origin, _ := r.cur.StartAction()
		if act, ok := r.parseNext(origin); ok {
			actions = append(actions, act)
		}
	}

	r.report.Actions = len(actions)
	return actions, r.report
}

// run holds the state of one segmentation pass.
type run struct {
	cur        *Cursor
	thresholds JumpThresholds
	report     Report
}

// parseNext classifies the action beginning at the cursor. The loop is the
// re-dispatch point for courtesy windows that ended early: when a window
// closes on a different category, the next iteration dispatches from the new
// position under the same origin. A loop rather than recursion keeps stack
// depth flat on inputs with long chains of brief state blips.
func (r *run) parseNext(origin ActionOrigin) (Action, bool) {
	for {
		st, ok := r.cur.Peek()
		if !ok {
			return r.drop()
		}

		switch st.BroadState() {
		case melee.BroadAttack:
			return r.parseAttack(origin)

		case melee.BroadAir:
			if r.courtesyWait(airCourtesy) {
				return origin.Finish(r.cur, AirWait), true
			}

		case melee.BroadGround:
			if r.courtesyWait(groundCourtesy) {
				return origin.Finish(r.cur, GroundWait), true
			}

		case melee.BroadShield:
			if r.courtesyWait(shieldCourtesy) {
				return origin.Finish(r.cur, Shield), true
			}

		case melee.BroadCrouch:
			if r.courtesyWait(crouchCourtesy) {
				return origin.Finish(r.cur, Crouch), true
			}

		case melee.BroadWalk:
			f, _ := r.cur.NextFrame()
			if r.courtesyWait(walkCourtesy) {
				if f.Direction == melee.Left {
					return origin.Finish(r.cur, WalkLeft), true
				}
				return origin.Finish(r.cur, WalkRight), true
			}

		case melee.BroadDashRun:
			f, _ := r.cur.NextFrame()
			if r.courtesyWait(dashCourtesy) {
				if f.Direction == melee.Left {
					return origin.Finish(r.cur, DashLeft), true
				}
				return origin.Finish(r.cur, DashRight), true
			}

		case melee.BroadJumpSquat:
			return r.parseJumpSquat(origin)

		case melee.BroadAirJump:
			return r.parseAirJump(origin)

		case melee.BroadAirdodge:
			return r.parseAirdodge(origin)

		case melee.BroadLedge:
			act, ok, again := r.parseLedge(origin)
			if again {
				continue
			}
			return act, ok

		case melee.BroadLedgeAction:
			// reached directly only when segmentation begins mid ledge
			// recovery
			return r.parseLedgeAction(origin)

		case melee.BroadHitstun:
			return r.parseHitstun(origin), true

		case melee.BroadRoll:
			return r.parseRoll(origin)

		case melee.BroadSpotdodge:
			return r.simple(origin, melee.BroadSpotdodge, Spotdodge), true

		case melee.BroadGrab:
			return r.simple(origin, melee.BroadGrab, Grab), true

		case melee.BroadSpecialLanding:
			r.cur.SkipBroadState(melee.BroadSpecialLanding)
			return Action{}, false

		default: // BroadGenericInactionable
			r.cur.SkipBroadState(melee.BroadGenericInactionable)
			return Action{}, false
		}
	}
}

// courtesyWait runs the window and, when it fully elapses, consumes the rest
// of the category's run so the wait action spans it entirely. A false return
// means the caller should re-dispatch.
func (r *run) courtesyWait(w courtesy) bool {
	if skipCourtesy(r.cur, w) == skipMax {
		r.cur.SkipBroadState(w.state)
		return true
	}
	return false
}

func (r *run) parseAttack(origin ActionOrigin) (Action, bool) {
	at, ok := r.attackToEnd()
	if !ok {
		return r.drop()
	}
	taken, ok := attackAction(at)
	if !ok {
		return r.drop()
	}
	return origin.Finish(r.cur, taken), true
}

// attackToEnd classifies the move from the first attack frame and consumes
// the whole attack run.
func (r *run) attackToEnd() (melee.Attack, bool) {
	st, ok := r.cur.Peek()
	if !ok {
		return 0, false
	}
	at, ok := st.AttackType()
	if !ok {
		return 0, false
	}
	r.cur.SkipBroadState(melee.BroadAttack)
	return at, true
}

func (r *run) parseJumpSquat(origin ActionOrigin) (Action, bool) {
	full, ok := r.jumpType()
	if !ok {
		return r.drop()
	}
	plain := Shorthop
	if full {
		plain = Fullhop
	}

	if skipCourtesy(r.cur, airCourtesy) == skipMax {
		// nothing done with the jump
		return origin.Finish(r.cur, plain), true
	}

	st, ok := r.cur.Peek()
	if !ok {
		return r.drop()
	}
	switch st.BroadState() {
	case melee.BroadAttack:
		at, ok := r.attackToEnd()
		if !ok {
			return r.drop()
		}
		if at.IsAerial() {
			base := ShorthopAerialNair
			if full {
				base = FullhopAerialNair
			}
			taken, _ := aerialAction(at, base)
			return origin.Finish(r.cur, taken), true
		}
		taken, ok := attackAction(at)
		if !ok {
			return r.drop()
		}
		return origin.Finish(r.cur, taken), true

	case melee.BroadAirJump:
		return r.parseAirJump(origin)

	case melee.BroadAirdodge, melee.BroadSpecialLanding:
		act, ok := r.parseAirdodge(origin)
		if !ok {
			return Action{}, false
		}
		// a waveland out of jump squat is a wavedash
		switch act.Taken {
		case WavelandRight:
			act.Taken = WavedashRight
		case WavelandLeft:
			act.Taken = WavedashLeft
		case WavelandDown:
			act.Taken = WavedashDown
		}
		return act, true

	case melee.BroadGrab:
		return r.simple(origin, melee.BroadGrab, Grab), true

	default:
		return origin.Finish(r.cur, plain), true
	}
}

// jumpType consumes the jump-squat run and classifies the jump height from
// the terminal frame's vertical velocity against the character's measured
// threshold. Characters without a threshold abandon the span; guessing
// would poison every downstream jump statistic.
func (r *run) jumpType() (full bool, ok bool) {
	last, ok := r.cur.NextFrame()
	if !ok {
		return false, false
	}
	for {
		st, more := r.cur.Peek()
		if !more {
			return false, false
		}
		if st.BroadState() != melee.BroadJumpSquat {
			break
		}
		last, _ = r.cur.NextFrame()
	}

	cutoff, ok := r.thresholds.Lookup(last.Character)
	if !ok {
		r.report.MissingJumpData++
		return false, false
	}
	return last.Velocity.Y > cutoff, true
}

func (r *run) parseAirJump(origin ActionOrigin) (Action, bool) {
	r.cur.Next()

	if skipCourtesy(r.cur, airJumpCourtesy) == skipMax {
		// consume trailing jump frames so the next pass cannot read the
		// same air jump twice
		r.cur.SkipBroadState(melee.BroadAirJump)
		return origin.Finish(r.cur, AirJump), true
	}

	st, ok := r.cur.Peek()
	if !ok {
		return r.drop()
	}
	if st.BroadState() == melee.BroadAttack {
		at, ok := r.attackToEnd()
		if !ok {
			return r.drop()
		}
		taken, ok := aerialAction(at, JumpAerialNair)
		if !ok {
			// a grounded move cannot follow an air jump; corrupt span
			return r.drop()
		}
		return origin.Finish(r.cur, taken), true
	}
	return origin.Finish(r.cur, AirJump), true
}

func (r *run) parseAirdodge(origin ActionOrigin) (Action, bool) {
	r.cur.SkipBroadState(melee.BroadAirdodge)

	st, ok := r.cur.Peek()
	if !ok {
		return r.drop()
	}
	if st.BroadState() != melee.BroadSpecialLanding {
		return origin.Finish(r.cur, Airdodge), true
	}

	// resolved into a landing: a waveland, classified by the landing
	// frame's horizontal velocity
	f, _ := r.cur.NextFrame()
	var taken HighLevelAction
	switch {
	case f.Velocity.X < -wavelandEpsilon:
		taken = WavelandLeft
	case f.Velocity.X > wavelandEpsilon:
		taken = WavelandRight
	default:
		taken = WavelandDown
	}
	r.cur.SkipBroadState(melee.BroadSpecialLanding)
	return origin.Finish(r.cur, taken), true
}

// parseLedge handles a ledge hang. The extra return distinguishes "the hang
// ended in something outside the ledge vocabulary" (again=true), which sends
// the caller back through top-level dispatch.
func (r *run) parseLedge(origin ActionOrigin) (act Action, ok bool, again bool) {
	if skipCourtesy(r.cur, ledgeCourtesy) == skipMax {
		return origin.Finish(r.cur, LedgeWait), true, false
	}

	st, more := r.cur.Peek()
	if !more {
		act, ok = r.drop()
		return act, ok, false
	}
	switch st.BroadState() {
	case melee.BroadLedgeAction:
		act, ok = r.parseLedgeAction(origin)
		return act, ok, false
	case melee.BroadHitstun:
		return r.parseHitstun(origin), true, false
	case melee.BroadAir:
		act, ok = r.parseLedgeDrop(origin)
		return act, ok, false
	default:
		return Action{}, false, true
	}
}

// parseLedgeDrop handles leaving the ledge downward: a plain drop, a drop
// into hitstun, or a drop followed by a double jump and whatever that jump
// turned into (the ledgedash path).
func (r *run) parseLedgeDrop(origin ActionOrigin) (Action, bool) {
	if skipCourtesy(r.cur, airCourtesy) == skipMax {
		return origin.Finish(r.cur, LedgeDrop), true
	}

	st, ok := r.cur.Peek()
	if !ok {
		return r.drop()
	}
	switch st.BroadState() {
	case melee.BroadHitstun:
		return r.parseHitstun(origin), true
	case melee.BroadAirJump:
		return r.parseLedgeHop(origin)
	default:
		return origin.Finish(r.cur, LedgeDrop), true
	}
}

func (r *run) parseLedgeHop(origin ActionOrigin) (Action, bool) {
	r.cur.Next()

	if skipCourtesy(r.cur, airJumpCourtesy) == skipMax {
		r.cur.SkipBroadState(melee.BroadAirJump)
		return origin.Finish(r.cur, LedgeHop), true
	}

	st, ok := r.cur.Peek()
	if !ok {
		return r.drop()
	}
	switch st.BroadState() {
	case melee.BroadAirdodge:
		act, ok := r.parseAirdodge(origin)
		if !ok {
			return Action{}, false
		}
		// a waveland back onto the stage from a ledge hang is a ledgedash
		switch act.Taken {
		case WavelandLeft, WavelandDown, WavelandRight:
			act.Taken = LedgeDash
		}
		return act, true

	case melee.BroadAttack:
		at, ok := r.attackToEnd()
		if !ok {
			return r.drop()
		}
		if at.IsAerial() {
			taken, _ := aerialAction(at, LedgeAerialNair)
			return origin.Finish(r.cur, taken), true
		}
		taken, ok := attackAction(at)
		if !ok {
			return r.drop()
		}
		return origin.Finish(r.cur, taken), true

	case melee.BroadSpecialLanding:
		r.cur.SkipBroadState(melee.BroadSpecialLanding)
		return origin.Finish(r.cur, LedgeDash), true

	case melee.BroadHitstun:
		return r.parseHitstun(origin), true

	default:
		return origin.Finish(r.cur, LedgeHop), true
	}
}

func (r *run) parseLedgeAction(origin ActionOrigin) (Action, bool) {
	st, ok := r.cur.Peek()
	if !ok {
		return r.drop()
	}
	la, ok := st.LedgeActionType()
	if !ok {
		return r.drop()
	}
	var taken HighLevelAction
	switch la {
	case melee.LedgeGetUp:
		taken = LedgeGetUp
	case melee.LedgeAttack:
		taken = LedgeAttack
	case melee.LedgeJump:
		taken = LedgeJump
	case melee.LedgeRoll:
		taken = LedgeRoll
	}
	r.cur.SkipBroadState(melee.BroadLedgeAction)
	return origin.Finish(r.cur, taken), true
}

// parseHitstun collapses a hitstun run, absorbing non-hitstun gaps of up to
// hitstunGapTolerance frames whenever hitstun resumes on the far side, into
// one action spanning the whole run.
func (r *run) parseHitstun(origin ActionOrigin) Action {
	for {
		r.cur.SkipBroadState(melee.BroadHitstun)

		gap := -1
		i := 0
		for st := range r.cur.PeekStates(hitstunGapTolerance + 1) {
			if st.BroadState() == melee.BroadHitstun {
				gap = i
				break
			}
			i++
		}
		if gap < 0 {
			break
		}
		for j := 0; j < gap; j++ {
			r.cur.Next()
		}
	}
	return origin.Finish(r.cur, Hitstun)
}

func (r *run) parseRoll(origin ActionOrigin) (Action, bool) {
	st, ok := r.cur.Next()
	if !ok {
		return r.drop()
	}
	var taken HighLevelAction
	switch st {
	case melee.StateEscapeF:
		taken = RollForward
	case melee.StateEscapeB:
		taken = RollBackward
	default:
		return r.drop()
	}
	return r.simple(origin, melee.BroadRoll, taken), true
}

// simple consumes the whole run of one category and finishes with a fixed
// classification. No courtesy, no branching.
func (r *run) simple(origin ActionOrigin, b melee.BroadState, taken HighLevelAction) Action {
	r.cur.SkipBroadState(b)
	return origin.Finish(r.cur, taken)
}

// drop records an unparseable or truncated span. The partial data is
// discarded; nothing half-classified is ever emitted.
func (r *run) drop() (Action, bool) {
	r.report.DroppedSpans++
	return Action{}, false
}
