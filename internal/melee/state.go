package melee

import "fmt"

// ActionState is a raw animation state id as recorded in a replay's
// post-frame updates. Ids 0 through 340 form the shared (non
// character-specific) catalogue; anything above that is either a
// character-specific state or a state added by a later game revision, and is
// treated as unrecognized.
type ActionState uint16

// MaxKnownState is the highest id in the shared state catalogue.
const MaxKnownState ActionState = 340

// States referenced by name in classification and segmentation logic. The
// full catalogue is addressed through the lookup tables; only ids the code
// branches on get a named constant.
const (
	StateRebirthWait        ActionState = 13
	StateWait               ActionState = 14
	StateWalkSlow           ActionState = 15
	StateWalkMiddle         ActionState = 16
	StateWalkFast           ActionState = 17
	StateTurn               ActionState = 18
	StateTurnRun            ActionState = 19
	StateDash               ActionState = 20
	StateRun                ActionState = 21
	StateRunDirect          ActionState = 22
	StateRunBrake           ActionState = 23
	StateKneeBend           ActionState = 24
	StateJumpF              ActionState = 25
	StateJumpB              ActionState = 26
	StateJumpAerialF        ActionState = 27
	StateJumpAerialB        ActionState = 28
	StateFall               ActionState = 29
	StateDamageFall         ActionState = 38
	StateSquat              ActionState = 39
	StateSquatWait          ActionState = 40
	StateSquatRv            ActionState = 41
	StateLanding            ActionState = 42
	StateLandingFallSpecial ActionState = 43

	StateAttack11       ActionState = 44
	StateAttack12       ActionState = 45
	StateAttack13       ActionState = 46
	StateAttack100Start ActionState = 47
	StateAttack100Loop  ActionState = 48
	StateAttack100End   ActionState = 49
	StateAttackDash     ActionState = 50
	StateAttackS3Hi     ActionState = 51
	StateAttackS3HiS    ActionState = 52
	StateAttackS3S      ActionState = 53
	StateAttackS3LwS    ActionState = 54
	StateAttackS3Lw     ActionState = 55
	StateAttackHi3      ActionState = 56
	StateAttackLw3      ActionState = 57
	StateAttackS4Hi     ActionState = 58
	StateAttackS4HiS    ActionState = 59
	StateAttackS4S      ActionState = 60
	StateAttackS4LwS    ActionState = 61
	StateAttackS4Lw     ActionState = 62
	StateAttackHi4      ActionState = 63
	StateAttackLw4      ActionState = 64
	StateAttackAirN     ActionState = 65
	StateAttackAirF     ActionState = 66
	StateAttackAirB     ActionState = 67
	StateAttackAirHi    ActionState = 68
	StateAttackAirLw    ActionState = 69

	StateDamageHi1 ActionState = 75

	StateGuardOn      ActionState = 178
	StateGuard        ActionState = 179
	StateGuardOff     ActionState = 180
	StateGuardSetOff  ActionState = 181
	StateGuardReflect ActionState = 182

	StateCatch ActionState = 212

	StateEscapeF   ActionState = 233
	StateEscapeB   ActionState = 234
	StateEscape    ActionState = 235
	StateEscapeAir ActionState = 236

	StatePass ActionState = 244

	StateCliffCatch       ActionState = 252
	StateCliffWait        ActionState = 253
	StateCliffClimbSlow   ActionState = 254
	StateCliffClimbQuick  ActionState = 255
	StateCliffAttackSlow  ActionState = 256
	StateCliffAttackQuick ActionState = 257
	StateCliffEscapeSlow  ActionState = 258
	StateCliffEscapeQuick ActionState = 259
	StateCliffJumpSlow1   ActionState = 260
	StateCliffJumpSlow2   ActionState = 261
	StateCliffJumpQuick1  ActionState = 262
	StateCliffJumpQuick2  ActionState = 263
)

// String returns the catalogue name for known ids and a numeric form for
// everything else.
func (s ActionState) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return fmt.Sprintf("ActionState(%d)", uint16(s))
}

// BroadState is the coarse behavioral category an ActionState belongs to.
// Every id maps to exactly one category; unrecognized ids map to
// BroadGenericInactionable.
type BroadState uint8

const (
	// BroadGenericInactionable is the zero value so that table gaps and
	// out-of-range ids land there without special cases.
	BroadGenericInactionable BroadState = iota
	BroadAttack
	BroadAir
	BroadAirdodge
	BroadSpecialLanding
	BroadGround
	BroadWalk
	BroadDashRun
	BroadShield
	BroadLedge
	BroadLedgeAction
	BroadHitstun
	BroadJumpSquat
	BroadAirJump
	BroadCrouch
	BroadGrab
	BroadRoll
	BroadSpotdodge
)

var broadStateNames = [...]string{
	BroadGenericInactionable: "GenericInactionable",
	BroadAttack:              "Attack",
	BroadAir:                 "Air",
	BroadAirdodge:            "Airdodge",
	BroadSpecialLanding:      "SpecialLanding",
	BroadGround:              "Ground",
	BroadWalk:                "Walk",
	BroadDashRun:             "DashRun",
	BroadShield:              "Shield",
	BroadLedge:               "Ledge",
	BroadLedgeAction:         "LedgeAction",
	BroadHitstun:             "Hitstun",
	BroadJumpSquat:           "JumpSquat",
	BroadAirJump:             "AirJump",
	BroadCrouch:              "Crouch",
	BroadGrab:                "Grab",
	BroadRoll:                "Roll",
	BroadSpotdodge:           "Spotdodge",
}

func (b BroadState) String() string {
	if int(b) < len(broadStateNames) {
		return broadStateNames[b]
	}
	return fmt.Sprintf("BroadState(%d)", uint8(b))
}

// ActionableState marks the subset of frames a new action may validly begin
// on. States mid-attack, in hitstun, or in single-frame transitions have no
// actionable classification.
type ActionableState uint8

const (
	ActionableAir ActionableState = iota
	ActionableGround
	ActionableDash
	ActionableRun
	ActionableShield
	ActionableLedge
)

var actionableNames = [...]string{
	ActionableAir:    "Airborne",
	ActionableGround: "Grounded",
	ActionableDash:   "Dashing",
	ActionableRun:    "Running",
	ActionableShield: "Shielding",
	ActionableLedge:  "On ledge",
}

func (a ActionableState) String() string {
	if int(a) < len(actionableNames) {
		return actionableNames[a]
	}
	return fmt.Sprintf("ActionableState(%d)", uint8(a))
}
