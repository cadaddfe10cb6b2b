package segment_test

import (
	"testing"

	"slipstream/internal/melee"
	"slipstream/internal/segment"
)

func TestCursorSkipWhileAtMostConsumes(t *testing.T) {
	frames := rep(melee.StateFall, 8)
	c := segment.NewCursor(frames)
	n := c.SkipWhileAtMost(func(st melee.ActionState) bool {
		return st.BroadState() == melee.BroadAir
	}, 5)
	if n != 5 {
		t.Fatalf("consumed %d frames, want 5", n)
	}
	if c.Index() != 5 {
		t.Fatalf("cursor at %d after skip, want 5", c.Index())
	}
}

func TestCursorSkipWhileAtMostStopsEarly(t *testing.T) {
	frames := seq(rep(melee.StateFall, 2), rep(melee.StateWait, 3))
	c := segment.NewCursor(frames)
	n := c.SkipWhileAtMost(func(st melee.ActionState) bool {
		return st.BroadState() == melee.BroadAir
	}, 5)
	if n != 2 {
		t.Fatalf("consumed %d frames, want 2", n)
	}
	st, ok := c.Peek()
	if !ok || st != melee.StateWait {
		t.Fatalf("cursor left at %v, want %v", st, melee.StateWait)
	}
}

func TestCursorPeekStatesBounded(t *testing.T) {
	frames := rep(melee.StateWait, 3)
	c := segment.NewCursor(frames)

	var got []melee.ActionState
	for st := range c.PeekStates(10) {
		got = append(got, st)
	}
	if len(got) != 3 {
		t.Fatalf("peeked %d states, want 3", len(got))
	}
	if c.Index() != 0 {
		t.Fatalf("peek moved the cursor to %d", c.Index())
	}
}

func TestCursorStartActionRequiresActionable(t *testing.T) {
	c := segment.NewCursor(rep(melee.StateAttack11, 2))
	if _, ok := c.StartAction(); ok {
		t.Fatal("started an action on a non-actionable frame")
	}

	c = segment.NewCursor(nil)
	if _, ok := c.StartAction(); ok {
		t.Fatal("started an action at end of stream")
	}
}

func TestCursorStartActionStance(t *testing.T) {
	for _, tt := range []struct {
		state melee.ActionState
		want  melee.ActionableState
	}{
		{melee.StateWait, melee.ActionableGround},
		{melee.StateFall, melee.ActionableAir},
		{melee.StateDash, melee.ActionableDash},
		{melee.StateRun, melee.ActionableRun},
		{melee.StateGuard, melee.ActionableShield},
		{melee.StateCliffWait, melee.ActionableLedge},
	} {
		c := segment.NewCursor(rep(tt.state, 1))
		o, ok := c.StartAction()
		if !ok {
			t.Errorf("%v: not actionable", tt.state)
			continue
		}
		act := o.Finish(c, segment.GroundWait)
		if act.Stance != tt.want {
			t.Errorf("%v: stance %v, want %v", tt.state, act.Stance, tt.want)
		}
	}
}

func TestCursorNextFrameEOF(t *testing.T) {
	c := segment.NewCursor(rep(melee.StateWait, 1))
	if _, ok := c.NextFrame(); !ok {
		t.Fatal("first frame not returned")
	}
	if !c.Finished() {
		t.Fatal("cursor not finished after last frame")
	}
	if _, ok := c.NextFrame(); ok {
		t.Fatal("frame returned past end of stream")
	}
}
