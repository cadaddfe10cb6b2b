package melee

import "fmt"

// Attack identifies a specific move. Ground and air moves share one type; use
// IsAerial to distinguish the families. Several raw ids alias to one value
// (jab startup/loop/end, angled tilts and smashes).
type Attack uint8

const (
	AttackJab Attack = iota
	AttackFtilt
	AttackDtilt
	AttackUtilt
	AttackFsmash
	AttackUsmash
	AttackDsmash
	AttackDashAttack
	AttackNair
	AttackFair
	AttackBair
	AttackUair
	AttackDair
)

var attackNames = [...]string{
	AttackJab:        "Jab",
	AttackFtilt:      "Ftilt",
	AttackDtilt:      "Dtilt",
	AttackUtilt:      "Utilt",
	AttackFsmash:     "Fsmash",
	AttackUsmash:     "Usmash",
	AttackDsmash:     "Dsmash",
	AttackDashAttack: "Dash attack",
	AttackNair:       "Nair",
	AttackFair:       "Fair",
	AttackBair:       "Bair",
	AttackUair:       "Uair",
	AttackDair:       "Dair",
}

func (a Attack) String() string {
	if int(a) < len(attackNames) {
		return attackNames[a]
	}
	return fmt.Sprintf("Attack(%d)", uint8(a))
}

// IsAerial reports whether the move is an in-air attack.
func (a Attack) IsAerial() bool {
	return a >= AttackNair
}

var attackTable = map[ActionState]Attack{
	StateAttack11:       AttackJab,
	StateAttack12:       AttackJab,
	StateAttack13:       AttackJab,
	StateAttack100Start: AttackJab,
	StateAttack100Loop:  AttackJab,
	StateAttack100End:   AttackJab,
	StateAttackDash:     AttackDashAttack,
	StateAttackS3Hi:     AttackFtilt,
	StateAttackS3HiS:    AttackFtilt,
	StateAttackS3S:      AttackFtilt,
	StateAttackS3LwS:    AttackFtilt,
	StateAttackS3Lw:     AttackFtilt,
	StateAttackHi3:      AttackUtilt,
	StateAttackLw3:      AttackDtilt,
	StateAttackS4Hi:     AttackFsmash,
	StateAttackS4HiS:    AttackFsmash,
	StateAttackS4S:      AttackFsmash,
	StateAttackS4LwS:    AttackFsmash,
	StateAttackS4Lw:     AttackFsmash,
	StateAttackHi4:      AttackUsmash,
	StateAttackLw4:      AttackDsmash,
	StateAttackAirN:     AttackNair,
	StateAttackAirF:     AttackFair,
	StateAttackAirB:     AttackBair,
	StateAttackAirHi:    AttackUair,
	StateAttackAirLw:    AttackDair,
}

// AttackType classifies an attack-phase state into the specific move being
// performed. States outside the attack catalogue report false.
func (s ActionState) AttackType() (Attack, bool) {
	a, ok := attackTable[s]
	return a, ok
}

// LedgeAction is a ledge-recovery option. Quick and slow animation variants
// of the same option alias to one value.
type LedgeAction uint8

const (
	LedgeGetUp LedgeAction = iota
	LedgeAttack
	LedgeRoll
	LedgeJump
)

var ledgeActionNames = [...]string{
	LedgeGetUp:  "Getup",
	LedgeAttack: "Attack",
	LedgeRoll:   "Roll",
	LedgeJump:   "Jump",
}

func (l LedgeAction) String() string {
	if int(l) < len(ledgeActionNames) {
		return ledgeActionNames[l]
	}
	return fmt.Sprintf("LedgeAction(%d)", uint8(l))
}

// LedgeActionType classifies a ledge-recovery animation. States outside the
// cliff-action catalogue report false.
func (s ActionState) LedgeActionType() (LedgeAction, bool) {
	switch s {
	case StateCliffClimbSlow, StateCliffClimbQuick:
		return LedgeGetUp, true
	case StateCliffAttackSlow, StateCliffAttackQuick:
		return LedgeAttack, true
	case StateCliffEscapeSlow, StateCliffEscapeQuick:
		return LedgeRoll, true
	case StateCliffJumpSlow1, StateCliffJumpSlow2, StateCliffJumpQuick1, StateCliffJumpQuick2:
		return LedgeJump, true
	default:
		return 0, false
	}
}
