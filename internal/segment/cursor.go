package segment

import (
	"iter"

	"slipstream/internal/melee"
)

// Cursor is a forward-only view over one competitor's frame array. It never
// copies frames and never moves backwards; every operation either inspects
// the next unconsumed frame or consumes a prefix of the remainder.
type Cursor struct {
	frames []melee.Frame
	pos    int
}

// NewCursor wraps a frame array. The cursor borrows the slice; callers must
// not mutate it for the cursor's lifetime.
func NewCursor(frames []melee.Frame) *Cursor {
	return &Cursor{frames: frames}
}

// Finished reports whether every frame has been consumed.
func (c *Cursor) Finished() bool {
	return c.pos >= len(c.frames)
}

// Index is the position of the next unconsumed frame.
func (c *Cursor) Index() int {
	return c.pos
}

// Peek returns the next unconsumed frame's state without consuming it.
func (c *Cursor) Peek() (melee.ActionState, bool) {
	if c.Finished() {
		return 0, false
	}
	return c.frames[c.pos].State, true
}

// PeekFrame returns the next unconsumed frame without consuming it.
func (c *Cursor) PeekFrame() (melee.Frame, bool) {
	if c.Finished() {
		return melee.Frame{}, false
	}
	return c.frames[c.pos], true
}

// PeekStates yields up to n upcoming states without consuming them. Fewer
// are yielded near the end of the stream.
func (c *Cursor) PeekStates(n int) iter.Seq[melee.ActionState] {
	end := min(c.pos+n, len(c.frames))
	window := c.frames[c.pos:end]
	return func(yield func(melee.ActionState) bool) {
		for i := range window {
			if !yield(window[i].State) {
				return
			}
		}
	}
}

// Next consumes one frame and returns its state.
func (c *Cursor) Next() (melee.ActionState, bool) {
	f, ok := c.NextFrame()
	return f.State, ok
}

// NextFrame consumes one frame and returns it.
func (c *Cursor) NextFrame() (melee.Frame, bool) {
	if c.Finished() {
		return melee.Frame{}, false
	}
	f := c.frames[c.pos]
	c.pos++
	return f, true
}

// SkipWhile consumes frames while the next unconsumed frame's state
// satisfies pred, leaving the cursor at the first frame that fails it or at
// the end of the stream.
func (c *Cursor) SkipWhile(pred func(melee.ActionState) bool) {
	for {
		st, ok := c.Peek()
		if !ok || !pred(st) {
			return
		}
		c.pos++
	}
}

// SkipWhileAtMost is SkipWhile capped at max consumed frames. The return
// value is the count actually consumed; a return equal to max means the cap
// was reached, anything less means the state changed (or the stream ended)
// first.
func (c *Cursor) SkipWhileAtMost(pred func(melee.ActionState) bool, max int) int {
	n := 0
	for n < max {
		st, ok := c.Peek()
		if !ok || !pred(st) {
			break
		}
		c.pos++
		n++
	}
	return n
}

// SkipBroadState consumes the run of frames sharing the given coarse
// category.
func (c *Cursor) SkipBroadState(b melee.BroadState) {
	c.SkipWhile(func(st melee.ActionState) bool {
		return st.BroadState() == b
	})
}

// ActionOrigin is the pending snapshot taken at the first frame of an
// action. Building an Action requires one, so an action can never be
// finished without having been started.
type ActionOrigin struct {
	start  int
	broad  melee.BroadState
	stance melee.ActionableState
	pos    melee.Vector
	vel    melee.Vector
}

// StartAction snapshots the current (not yet consumed) frame as the origin
// of a new action. The frame must be actionable; callers check before
// starting, and ok is false when the contract would be violated.
func (c *Cursor) StartAction() (ActionOrigin, bool) {
	f, ok := c.PeekFrame()
	if !ok {
		return ActionOrigin{}, false
	}
	stance, ok := f.State.Actionable()
	if !ok {
		return ActionOrigin{}, false
	}
	return ActionOrigin{
		start:  c.pos,
		broad:  f.State.BroadState(),
		stance: stance,
		pos:    f.Position,
		vel:    f.Velocity,
	}, true
}

// Finish builds the completed Action spanning from the origin to the
// cursor's current position.
func (o ActionOrigin) Finish(c *Cursor, taken HighLevelAction) Action {
	return Action{
		StartState:      o.broad,
		Stance:          o.stance,
		Taken:           taken,
		FrameStart:      o.start,
		FrameEnd:        c.pos,
		InitialPosition: o.pos,
		InitialVelocity: o.vel,
	}
}
