package melee_test

import (
	"testing"

	"slipstream/internal/melee"
)

func TestBroadStateTotal(t *testing.T) {
	for s := melee.ActionState(0); s <= melee.MaxKnownState; s++ {
		b := s.BroadState()
		if b.String() == "" {
			t.Fatalf("state %d: no category name for %d", s, b)
		}
	}
}

func TestBroadStateUnrecognizedDegrades(t *testing.T) {
	for _, s := range []melee.ActionState{341, 400, 65535} {
		if got := s.BroadState(); got != melee.BroadGenericInactionable {
			t.Errorf("state %d: got %s, want GenericInactionable", s, got)
		}
	}
}

func TestBroadStateTable(t *testing.T) {
	cases := []struct {
		state melee.ActionState
		want  melee.BroadState
	}{
		{melee.StateWait, melee.BroadGround},
		{melee.StateWalkSlow, melee.BroadWalk},
		{melee.StateDash, melee.BroadDashRun},
		{melee.StateRun, melee.BroadDashRun},
		{melee.StateKneeBend, melee.BroadJumpSquat},
		{melee.StateJumpF, melee.BroadAir},
		{melee.StateJumpAerialB, melee.BroadAirJump},
		{melee.StateFall, melee.BroadAir},
		{melee.StateSquatWait, melee.BroadCrouch},
		{melee.StateLandingFallSpecial, melee.BroadSpecialLanding},
		{melee.StateAttack11, melee.BroadAttack},
		{melee.StateAttackAirLw, melee.BroadAttack},
		{melee.StateDamageHi1, melee.BroadHitstun},
		{melee.StateGuard, melee.BroadShield},
		{melee.StateCatch, melee.BroadGrab},
		{melee.StateEscapeF, melee.BroadRoll},
		{melee.StateEscape, melee.BroadSpotdodge},
		{melee.StateEscapeAir, melee.BroadAirdodge},
		{melee.StateCliffWait, melee.BroadLedge},
		{melee.StateCliffAttackQuick, melee.BroadLedgeAction},
		{melee.StateLanding, melee.BroadGenericInactionable},
	}
	for _, tc := range cases {
		if got := tc.state.BroadState(); got != tc.want {
			t.Errorf("%s: got %s, want %s", tc.state, got, tc.want)
		}
	}
}

func TestActionable(t *testing.T) {
	cases := []struct {
		state  melee.ActionState
		stance melee.ActionableState
		ok     bool
	}{
		{melee.StateWait, melee.ActionableGround, true},
		{melee.StateFall, melee.ActionableAir, true},
		{melee.StateDash, melee.ActionableDash, true},
		{melee.StateRun, melee.ActionableRun, true},
		{melee.StateGuard, melee.ActionableShield, true},
		{melee.StateCliffWait, melee.ActionableLedge, true},
		{melee.StateCliffCatch, 0, false},
		{melee.StateAttack11, 0, false},
		{melee.StateDamageHi1, 0, false},
		{melee.StateLanding, 0, false},
	}
	for _, tc := range cases {
		stance, ok := tc.state.Actionable()
		if ok != tc.ok || (ok && stance != tc.stance) {
			t.Errorf("%s: got (%v, %v), want (%v, %v)", tc.state, stance, ok, tc.stance, tc.ok)
		}
	}
}

func TestAttackTypeAliases(t *testing.T) {
	jabStates := []melee.ActionState{
		melee.StateAttack11, melee.StateAttack12, melee.StateAttack13,
		melee.StateAttack100Start, melee.StateAttack100Loop, melee.StateAttack100End,
	}
	for _, s := range jabStates {
		at, ok := s.AttackType()
		if !ok || at != melee.AttackJab {
			t.Errorf("%s: got (%v, %v), want Jab", s, at, ok)
		}
	}

	ftiltStates := []melee.ActionState{
		melee.StateAttackS3Hi, melee.StateAttackS3S, melee.StateAttackS3Lw,
	}
	for _, s := range ftiltStates {
		at, ok := s.AttackType()
		if !ok || at != melee.AttackFtilt {
			t.Errorf("%s: got (%v, %v), want Ftilt", s, at, ok)
		}
	}

	if at, ok := melee.StateAttackAirN.AttackType(); !ok || at != melee.AttackNair || !at.IsAerial() {
		t.Errorf("AttackAirN: got (%v, %v), want aerial Nair", at, ok)
	}
	if at, _ := melee.StateAttackLw4.AttackType(); at.IsAerial() {
		t.Errorf("Dsmash classified as aerial")
	}
	if _, ok := melee.StateWait.AttackType(); ok {
		t.Error("Wait should not classify as an attack")
	}
}

func TestLedgeActionAliases(t *testing.T) {
	cases := []struct {
		state melee.ActionState
		want  melee.LedgeAction
	}{
		{melee.StateCliffClimbSlow, melee.LedgeGetUp},
		{melee.StateCliffClimbQuick, melee.LedgeGetUp},
		{melee.StateCliffAttackSlow, melee.LedgeAttack},
		{melee.StateCliffAttackQuick, melee.LedgeAttack},
		{melee.StateCliffEscapeSlow, melee.LedgeRoll},
		{melee.StateCliffEscapeQuick, melee.LedgeRoll},
		{melee.StateCliffJumpSlow1, melee.LedgeJump},
		{melee.StateCliffJumpQuick2, melee.LedgeJump},
	}
	for _, tc := range cases {
		la, ok := tc.state.LedgeActionType()
		if !ok || la != tc.want {
			t.Errorf("%s: got (%v, %v), want %v", tc.state, la, ok, tc.want)
		}
	}
	if _, ok := melee.StateCliffWait.LedgeActionType(); ok {
		t.Error("CliffWait is a hang, not a ledge action")
	}
}

func TestCharacterNumbering(t *testing.T) {
	if c, ok := melee.CharacterFromInternal(1); !ok || c != melee.Fox {
		t.Errorf("internal 1: got (%v, %v), want Fox", c, ok)
	}
	if c, ok := melee.CharacterFromExternal(2); !ok || c != melee.Fox {
		t.Errorf("external 2: got (%v, %v), want Fox", c, ok)
	}
	if c, ok := melee.CharacterFromExternal(9); !ok || c != melee.Marth {
		t.Errorf("external 9: got (%v, %v), want Marth", c, ok)
	}
	if c, ok := melee.CharacterFromExternal(20); !ok || c != melee.Falco {
		t.Errorf("external 20: got (%v, %v), want Falco", c, ok)
	}
	if _, ok := melee.CharacterFromInternal(200); ok {
		t.Error("internal 200 should not resolve")
	}
	if _, ok := melee.CharacterFromExternal(200); ok {
		t.Error("external 200 should not resolve")
	}
}

func TestCharacterByName(t *testing.T) {
	if c, ok := melee.CharacterByName("Fox"); !ok || c != melee.Fox {
		t.Errorf("got (%v, %v), want Fox", c, ok)
	}
	if c, ok := melee.CharacterByName("Mr. Game & Watch"); !ok || c != melee.MrGameAndWatch {
		t.Errorf("got (%v, %v), want Mr. Game & Watch", c, ok)
	}
	if _, ok := melee.CharacterByName("Master Hand"); ok {
		t.Error("Master Hand should not resolve")
	}
	// round trip every catalogue name
	for id := uint8(0); ; id++ {
		c, ok := melee.CharacterFromInternal(id)
		if !ok {
			break
		}
		back, ok := melee.CharacterByName(c.String())
		if !ok || back != c {
			t.Errorf("%s: name does not round trip", c)
		}
	}
}

func TestStageLookup(t *testing.T) {
	if s, ok := melee.StageFromID(31); !ok || s != melee.Battlefield {
		t.Errorf("id 31: got (%v, %v), want Battlefield", s, ok)
	}
	if _, ok := melee.StageFromID(21); ok {
		t.Error("id 21 is unused and should not resolve")
	}
	if got := melee.YoshisStory.String(); got != "Yoshi's Story" {
		t.Errorf("YoshisStory name: %q", got)
	}
}

func TestCostumeNames(t *testing.T) {
	fox := melee.CharacterColour{Character: melee.Fox, Costume: 2}
	if got := fox.String(); got != "Fox (Blue)" {
		t.Errorf("fox slot 2: %q", got)
	}
	if !fox.KnownCostume() {
		t.Error("fox slot 2 should be known")
	}
	modded := melee.CharacterColour{Character: melee.Fox, Costume: 9}
	if modded.KnownCostume() {
		t.Error("fox slot 9 is not stock")
	}
	if got := modded.CostumeName(); got != "Costume 9" {
		t.Errorf("fox slot 9 name: %q", got)
	}
}
