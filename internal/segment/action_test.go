package segment_test

import (
	"testing"

	"slipstream/internal/segment"
)

// The numeric action codes are part of the stored-data contract: the library
// index persists them, so renumbering silently corrupts old rows.
func TestActionCodesStable(t *testing.T) {
	for _, tt := range []struct {
		action segment.HighLevelAction
		code   uint8
	}{
		{segment.Utilt, 0},
		{segment.Jab, 3},
		{segment.DashAttack, 7},
		{segment.AerialNair, 8},
		{segment.AerialDair, 12},
		{segment.JumpAerialNair, 13},
		{segment.Fullhop, 18},
		{segment.Shorthop, 24},
		{segment.Grab, 30},
		{segment.AirJump, 33},
		{segment.LedgeWait, 35},
		{segment.LedgeAerialNair, 40},
		{segment.LedgeDrop, 47},
		{segment.WavedashRight, 48},
		{segment.WavelandLeft, 53},
		{segment.DashLeft, 54},
		{segment.Shield, 58},
		{segment.Crouch, 62},
		{segment.Hitstun, 63},
	} {
		if got := tt.action.Code(); got != tt.code {
			t.Errorf("%v: code %d, want %d", tt.action, got, tt.code)
		}
	}
}

func TestActionFromCodeRoundTrip(t *testing.T) {
	for code := 0; code < segment.ActionCount; code++ {
		a, ok := segment.ActionFromCode(uint8(code))
		if !ok {
			t.Fatalf("code %d rejected", code)
		}
		if a.Code() != uint8(code) {
			t.Fatalf("code %d decodes to %v which encodes to %d", code, a, a.Code())
		}
		if a.String() == "" {
			t.Fatalf("code %d has no name", code)
		}
	}
	if _, ok := segment.ActionFromCode(uint8(segment.ActionCount)); ok {
		t.Fatal("out-of-range code accepted")
	}
}
