package melee

// broadTable maps every shared-catalogue id to its coarse category. Entries
// left untouched stay BroadGenericInactionable (the zero value), which also
// covers throws, item handling, downed states, captures, and every other
// animation during which the player cannot start a new action.
var broadTable = buildBroadTable()

func buildBroadTable() [MaxKnownState + 1]BroadState {
	var t [MaxKnownState + 1]BroadState

	span := func(lo, hi ActionState, b BroadState) {
		for s := lo; s <= hi; s++ {
			t[s] = b
		}
	}

	t[StateRebirthWait] = BroadAir
	t[StateWait] = BroadGround
	span(StateWalkSlow, StateWalkFast, BroadWalk)
	t[StateTurn] = BroadGround
	span(StateTurnRun, StateRunBrake, BroadDashRun)
	t[StateKneeBend] = BroadJumpSquat
	span(StateJumpF, StateJumpB, BroadAir)
	span(StateJumpAerialF, StateJumpAerialB, BroadAirJump)
	span(StateFall, 34, BroadAir) // Fall through FallAerialB
	t[StateDamageFall] = BroadAir
	span(StateSquat, StateSquatWait, BroadCrouch)
	t[StateSquatRv] = BroadGround
	t[StateLandingFallSpecial] = BroadSpecialLanding
	span(StateAttack11, StateAttackAirLw, BroadAttack)
	span(StateDamageHi1, 91, BroadHitstun) // DamageHi1 through DamageFlyRoll
	span(StateGuardOn, StateGuard, BroadShield)
	span(StateGuardSetOff, StateGuardReflect, BroadShield)
	span(StateCatch, 222, BroadGrab)  // Catch through ThrowLw
	span(223, 232, BroadHitstun)      // CapturePulledHi through CaptureFoot
	span(StateEscapeF, StateEscapeB, BroadRoll)
	t[StateEscape] = BroadSpotdodge
	t[StateEscapeAir] = BroadAirdodge
	span(239, 243, BroadHitstun) // ThrownF through ThrownLwWomen
	t[StatePass] = BroadAir
	span(245, 246, BroadGround) // Ottotto, OttottoWait
	t[251] = BroadAir           // MissFoot
	span(StateCliffCatch, StateCliffWait, BroadLedge)
	span(StateCliffClimbSlow, StateCliffJumpQuick2, BroadLedgeAction)
	span(266, 274, BroadHitstun) // ShoulderedWait through ThrownFLw

	return t
}

// BroadState returns the coarse category for the state. Total: unrecognized
// ids classify as BroadGenericInactionable rather than erroring, so replays
// from newer game revisions degrade gracefully.
func (s ActionState) BroadState() BroadState {
	if s > MaxKnownState {
		return BroadGenericInactionable
	}
	return broadTable[s]
}

// Actionable reports whether a new action may begin on a frame in this state,
// and if so from which stance. The single-frame ledge-catch transition is the
// one ledge state with no actionable classification.
func (s ActionState) Actionable() (ActionableState, bool) {
	switch s.BroadState() {
	case BroadAir, BroadAirJump:
		return ActionableAir, true
	case BroadGround, BroadWalk, BroadCrouch:
		return ActionableGround, true
	case BroadDashRun:
		if s == StateDash {
			return ActionableDash, true
		}
		return ActionableRun, true
	case BroadShield:
		return ActionableShield, true
	case BroadLedge:
		if s == StateCliffCatch {
			return 0, false
		}
		return ActionableLedge, true
	default:
		return 0, false
	}
}
