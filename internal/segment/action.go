package segment

import (
	"fmt"

	"slipstream/internal/melee"
)

// HighLevelAction is a semantically classified action. The numeric values
// form a stable, dense encoding (0..63) used wherever actions are stored
// compactly; they are written out explicitly rather than derived from
// declaration order, and locked by a test.
type HighLevelAction uint8

const (
	Utilt      HighLevelAction = 0
	Ftilt      HighLevelAction = 1
	Dtilt      HighLevelAction = 2
	Jab        HighLevelAction = 3
	Usmash     HighLevelAction = 4
	Dsmash     HighLevelAction = 5
	Fsmash     HighLevelAction = 6
	DashAttack HighLevelAction = 7

	AerialNair HighLevelAction = 8
	AerialUair HighLevelAction = 9
	AerialFair HighLevelAction = 10
	AerialBair HighLevelAction = 11
	AerialDair HighLevelAction = 12

	JumpAerialNair HighLevelAction = 13
	JumpAerialUair HighLevelAction = 14
	JumpAerialFair HighLevelAction = 15
	JumpAerialBair HighLevelAction = 16
	JumpAerialDair HighLevelAction = 17

	Fullhop HighLevelAction = 18

	FullhopAerialNair HighLevelAction = 19
	FullhopAerialUair HighLevelAction = 20
	FullhopAerialFair HighLevelAction = 21
	FullhopAerialBair HighLevelAction = 22
	FullhopAerialDair HighLevelAction = 23

	Shorthop HighLevelAction = 24

	ShorthopAerialNair HighLevelAction = 25
	ShorthopAerialUair HighLevelAction = 26
	ShorthopAerialFair HighLevelAction = 27
	ShorthopAerialBair HighLevelAction = 28
	ShorthopAerialDair HighLevelAction = 29

	Grab       HighLevelAction = 30
	GroundWait HighLevelAction = 31
	AirWait    HighLevelAction = 32
	AirJump    HighLevelAction = 33
	Airdodge   HighLevelAction = 34
	LedgeWait  HighLevelAction = 35
	LedgeDash  HighLevelAction = 36
	LedgeRoll  HighLevelAction = 37
	LedgeJump  HighLevelAction = 38
	LedgeHop   HighLevelAction = 39

	LedgeAerialNair HighLevelAction = 40
	LedgeAerialUair HighLevelAction = 41
	LedgeAerialFair HighLevelAction = 42
	LedgeAerialBair HighLevelAction = 43
	LedgeAerialDair HighLevelAction = 44

	LedgeGetUp    HighLevelAction = 45
	LedgeAttack   HighLevelAction = 46
	LedgeDrop     HighLevelAction = 47
	WavedashRight HighLevelAction = 48
	WavedashDown  HighLevelAction = 49
	WavedashLeft  HighLevelAction = 50
	WavelandRight HighLevelAction = 51
	WavelandDown  HighLevelAction = 52
	WavelandLeft  HighLevelAction = 53
	DashLeft      HighLevelAction = 54
	DashRight     HighLevelAction = 55
	WalkLeft      HighLevelAction = 56
	WalkRight     HighLevelAction = 57
	Shield        HighLevelAction = 58
	Spotdodge     HighLevelAction = 59
	RollForward   HighLevelAction = 60
	RollBackward  HighLevelAction = 61
	Crouch        HighLevelAction = 62
	Hitstun       HighLevelAction = 63

	// ActionCount is one past the highest encoded value.
	ActionCount = 64
)

var actionNames = [ActionCount]string{
	Utilt:      "Utilt",
	Ftilt:      "Ftilt",
	Dtilt:      "Dtilt",
	Jab:        "Jab",
	Usmash:     "Usmash",
	Dsmash:     "Dsmash",
	Fsmash:     "Fsmash",
	DashAttack: "Dash attack",

	AerialNair: "Nair",
	AerialUair: "Uair",
	AerialFair: "Fair",
	AerialBair: "Bair",
	AerialDair: "Dair",

	JumpAerialNair: "Jump nair",
	JumpAerialUair: "Jump uair",
	JumpAerialFair: "Jump fair",
	JumpAerialBair: "Jump bair",
	JumpAerialDair: "Jump dair",

	Fullhop: "Fullhop",

	FullhopAerialNair: "Fullhop nair",
	FullhopAerialUair: "Fullhop uair",
	FullhopAerialFair: "Fullhop fair",
	FullhopAerialBair: "Fullhop bair",
	FullhopAerialDair: "Fullhop dair",

	Shorthop: "Shorthop",

	ShorthopAerialNair: "Shorthop nair",
	ShorthopAerialUair: "Shorthop uair",
	ShorthopAerialFair: "Shorthop fair",
	ShorthopAerialBair: "Shorthop bair",
	ShorthopAerialDair: "Shorthop dair",

	Grab:       "Grab",
	GroundWait: "Wait on ground",
	AirWait:    "Wait in air",
	AirJump:    "Air jump",
	Airdodge:   "Airdodge",
	LedgeWait:  "Wait on ledge",
	LedgeDash:  "Ledgedash",
	LedgeRoll:  "Ledge roll",
	LedgeJump:  "Ledge jump",
	LedgeHop:   "Ledge hop",

	LedgeAerialNair: "Ledge nair",
	LedgeAerialUair: "Ledge uair",
	LedgeAerialFair: "Ledge fair",
	LedgeAerialBair: "Ledge bair",
	LedgeAerialDair: "Ledge dair",

	LedgeGetUp:    "Ledge getup",
	LedgeAttack:   "Ledge attack",
	LedgeDrop:     "Drop from ledge",
	WavedashRight: "Wavedash right",
	WavedashDown:  "Wavedash down",
	WavedashLeft:  "Wavedash left",
	WavelandRight: "Waveland right",
	WavelandDown:  "Waveland down",
	WavelandLeft:  "Waveland left",
	DashLeft:      "Dash left",
	DashRight:     "Dash right",
	WalkLeft:      "Walk left",
	WalkRight:     "Walk right",
	Shield:        "Shield",
	Spotdodge:     "Spotdodge",
	RollForward:   "Roll forward",
	RollBackward:  "Roll backward",
	Crouch:        "Crouch",
	Hitstun:       "In hit",
}

func (h HighLevelAction) String() string {
	if h < ActionCount {
		return actionNames[h]
	}
	return fmt.Sprintf("HighLevelAction(%d)", uint8(h))
}

// ActionFromCode validates a stored code.
func ActionFromCode(code uint8) (HighLevelAction, bool) {
	h := HighLevelAction(code)
	return h, h < ActionCount
}

// Code returns the stable storage encoding.
func (h HighLevelAction) Code() uint8 { return uint8(h) }

// attackAction maps a classified move onto its plain action: ground moves to
// the ground-attack actions, aerials to the Aerial family.
func attackAction(a melee.Attack) (HighLevelAction, bool) {
	switch a {
	case melee.AttackUtilt:
		return Utilt, true
	case melee.AttackFtilt:
		return Ftilt, true
	case melee.AttackDtilt:
		return Dtilt, true
	case melee.AttackJab:
		return Jab, true
	case melee.AttackUsmash:
		return Usmash, true
	case melee.AttackDsmash:
		return Dsmash, true
	case melee.AttackFsmash:
		return Fsmash, true
	case melee.AttackDashAttack:
		return DashAttack, true
	}
	return aerialAction(a, AerialNair)
}

// aerialAction places an air attack within one of the aerial families
// (Aerial, JumpAerial, FullhopAerial, ShorthopAerial, LedgeAerial), all of
// which encode the five moves in the same nair/uair/fair/bair/dair order.
func aerialAction(a melee.Attack, base HighLevelAction) (HighLevelAction, bool) {
	switch a {
	case melee.AttackNair:
		return base, true
	case melee.AttackUair:
		return base + 1, true
	case melee.AttackFair:
		return base + 2, true
	case melee.AttackBair:
		return base + 3, true
	case melee.AttackDair:
		return base + 4, true
	}
	return 0, false
}

// Action is one segmented span of frames with its classification. FrameStart
// and FrameEnd index into the source frame array; spans from one segmentation
// pass are strictly ordered and non-overlapping.
type Action struct {
	StartState      melee.BroadState
	Stance          melee.ActionableState
	Taken           HighLevelAction
	FrameStart      int
	FrameEnd        int
	InitialPosition melee.Vector
	InitialVelocity melee.Vector
}

func (a Action) String() string {
	return fmt.Sprintf("%-10s: %-15s%d -> %d", a.StartState, a.Taken, a.FrameStart, a.FrameEnd)
}
