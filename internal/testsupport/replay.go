package testsupport

import (
	"bytes"
	"encoding/binary"
	"math"
	"os"
	"testing"
)

// Declared event payload sizes used by the synthetic replays. They cover
// every field the decoder reads, with the trailing slack real recorders
// carry.
const (
	GameStartSize = 0x1a0
	PostFrameSize = 0x48
	GameEndSize   = 0x2
	ItemSize      = 0x2c
)

func be16(b []byte, off int, v uint16) { binary.BigEndian.PutUint16(b[off:], v) }
func be32(b []byte, off int, v uint32) { binary.BigEndian.PutUint32(b[off:], v) }
func bef32(b []byte, off int, v float32) {
	binary.BigEndian.PutUint32(b[off:], math.Float32bits(v))
}

// Player occupies one port in a synthetic game-start event. Ext is the
// character-select (external) character id.
type Player struct {
	Port    int
	Ext     byte
	Costume byte
}

// GameStartEvent builds a game-start event for the given stage and players;
// unlisted ports are empty.
func GameStartEvent(stage uint16, players ...Player) []byte {
	ev := make([]byte, 1+GameStartSize)
	ev[0] = 0x36
	ev[1], ev[2], ev[3] = 3, 16, 0
	be16(ev, 0x13, stage)
	for i := 0; i < 4; i++ {
		ev[0x65+i*0x24+0x1] = 3 // empty port
	}
	for _, p := range players {
		block := 0x65 + p.Port*0x24
		ev[block] = p.Ext
		ev[block+0x1] = 0 // human
		ev[block+0x3] = p.Costume
	}
	return ev
}

// Frame describes one synthetic post-frame event. Frame numbers use the
// file's convention and start at -123.
type Frame struct {
	Frame    int32
	Port     byte
	Internal byte
	State    uint16
	Facing   float32
	Airborne bool
	AirX     float32
	GroundX  float32
	SelfY    float32
	KbX, KbY float32
	X, Y     float32
}

// PostFrameEvent builds a post-frame event.
func PostFrameEvent(f Frame) []byte {
	ev := make([]byte, 1+PostFrameSize)
	ev[0] = 0x38
	be32(ev, 0x1, uint32(f.Frame))
	ev[0x5] = f.Port
	ev[0x7] = f.Internal
	be16(ev, 0x8, f.State)
	bef32(ev, 0xa, f.X)
	bef32(ev, 0xe, f.Y)
	bef32(ev, 0x12, f.Facing)
	if f.Airborne {
		ev[0x2f] = 1
	}
	bef32(ev, 0x35, f.AirX)
	bef32(ev, 0x39, f.SelfY)
	bef32(ev, 0x3d, f.KbX)
	bef32(ev, 0x41, f.KbY)
	bef32(ev, 0x45, f.GroundX)
	return ev
}

// ItemEvent builds an item-update event.
func ItemEvent(frame int32, typ uint16, x, y float32) []byte {
	ev := make([]byte, 1+ItemSize)
	ev[0] = 0x3b
	be32(ev, 0x1, uint32(frame))
	be16(ev, 0x5, typ)
	bef32(ev, 0x8, 1.0)
	bef32(ev, 0x14, x)
	bef32(ev, 0x18, y)
	return ev
}

// GameEndEvent builds a game-end event.
func GameEndEvent() []byte {
	return []byte{0x39, 0, 0}
}

// BuildReplay wraps events in the container header and the leading payload
// declarations, the same shape a recorder writes.
func BuildReplay(events ...[]byte) []byte {
	var body bytes.Buffer
	decls := []struct {
		cmd  byte
		size uint16
	}{
		{0x36, GameStartSize},
		{0x38, PostFrameSize},
		{0x39, GameEndSize},
		{0x3b, ItemSize},
	}
	body.WriteByte(0x35)
	body.WriteByte(byte(1 + 3*len(decls)))
	for _, d := range decls {
		body.WriteByte(d.cmd)
		var sz [2]byte
		binary.BigEndian.PutUint16(sz[:], d.size)
		body.Write(sz[:])
	}
	for _, ev := range events {
		body.Write(ev)
	}

	var out bytes.Buffer
	out.Write([]byte{0x7b, 0x55, 0x03, 'r', 'a', 'w', 0x5b, 0x24, 0x55, 0x23, 0x6c})
	var l [4]byte
	binary.BigEndian.PutUint32(l[:], uint32(body.Len()))
	out.Write(l[:])
	out.Write(body.Bytes())
	return out.Bytes()
}

// WriteReplay writes a built replay to path.
func WriteReplay(t testing.TB, path string, events ...[]byte) {
	t.Helper()
	if err := os.WriteFile(path, BuildReplay(events...), 0o644); err != nil {
		t.Fatalf("write replay %s: %v", path, err)
	}
}

// MinimalReplay returns a decodable one-frame Fox vs Marth match on
// Battlefield.
func MinimalReplay() []byte {
	return BuildReplay(
		GameStartEvent(31,
			Player{Port: 0, Ext: 2, Costume: 1},
			Player{Port: 2, Ext: 9},
		),
		PostFrameEvent(Frame{Frame: -123, Port: 0, Internal: 1, State: 14, Facing: 1}),
		PostFrameEvent(Frame{Frame: -123, Port: 2, Internal: 18, State: 14, Facing: -1}),
		GameEndEvent(),
	)
}
