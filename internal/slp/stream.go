package slp

import (
	"encoding/binary"
	"math"
)

// event is one raw event payload, command byte included. Readers assume the
// caller length-checked the slice against the declared payload size once, at
// dispatch, so per-field access stays branch-free.
type event []byte

func (e event) u8At(off int) uint8 {
	return e[off]
}

func (e event) u16At(off int) uint16 {
	return binary.BigEndian.Uint16(e[off:])
}

func (e event) i32At(off int) int32 {
	return int32(binary.BigEndian.Uint32(e[off:]))
}

func (e event) f32At(off int) float32 {
	return math.Float32frombits(binary.BigEndian.Uint32(e[off:]))
}

// has reports whether the payload extends past the given offset plus width.
// Optional fields added by later format revisions are gated on this rather
// than on the recorded version number.
func (e event) has(off, width int) bool {
	return off+width <= len(e)
}
