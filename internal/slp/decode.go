package slp

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"sort"

	"slipstream/internal/melee"
)

// Replay files open with a UBJSON "raw" element header followed by the
// element length; the event stream sits inside it.
var rawHeader = []byte{0x7b, 0x55, 0x03, 'r', 'a', 'w', 0x5b, 0x24, 0x55, 0x23, 0x6c}

const rawHeaderLen = 15 // header plus the u32 element length

var (
	// ErrNotSlippi marks files whose leading bytes are not the replay
	// container header.
	ErrNotSlippi = errors.New("not a slippi replay")

	// ErrPortCount marks replays that are not singles matches.
	ErrPortCount = errors.New("replay does not have exactly two occupied ports")
)

// Event commands. Anything else is skipped by declared size.
const (
	cmdEventPayloads = 0x35
	cmdGameStart     = 0x36
	cmdPostFrame     = 0x38
	cmdGameEnd       = 0x39
	cmdItemUpdate    = 0x3b
)

// Frame numbers in the file start at -123 (the pre-"GO" countdown); array
// index 0 is the first recorded frame.
const firstFrame = -123

// Game-start event layout.
const (
	gsVersion     = 0x1
	gsStage       = 0x13
	gsPlayerBlock = 0x65
	gsPlayerSize  = 0x24
	gsPlayerType  = 0x1
	gsCostume     = 0x3

	playerTypeEmpty = 3
)

// Post-frame event layout.
const (
	pfFrame        = 0x1
	pfPlayerIndex  = 0x5
	pfIsFollower   = 0x6
	pfInternalChar = 0x7
	pfActionState  = 0x8
	pfPositionX    = 0xa
	pfPositionY    = 0xe
	pfFacing       = 0x12
	pfAnimCounter  = 0x22
	pfAirborne     = 0x2f
	pfSelfAirX     = 0x35
	pfSelfY        = 0x39
	pfKnockbackX   = 0x3d
	pfKnockbackY   = 0x41
	pfSelfGroundX  = 0x45
)

// Item-update event layout.
const (
	itFrame       = 0x1
	itType        = 0x5
	itState       = 0x7
	itFacing      = 0x8
	itPositionX   = 0x14
	itPositionY   = 0x18
	itMissileType = 0x26
	itTurnipFace  = 0x27
	itLaunched    = 0x28
	itChargePower = 0x29
)

type decoder struct {
	sizes [256]int // declared payload size per command, -1 when undeclared

	game     Game
	started  bool
	lowPort  uint8
	highPort uint8
}

// Decode parses a complete replay byte stream.
func Decode(data []byte) (*Game, error) {
	d, err := newDecoder(data)
	if err != nil {
		return nil, err
	}
	if err := d.run(data, false); err != nil {
		return nil, err
	}
	if !d.started {
		return nil, fmt.Errorf("replay ends before the game-start event")
	}
	d.buildItemRanges()
	return &d.game, nil
}

// DecodeInfo parses only as far as the game-start event. Library scans use
// this to index a directory without touching the frame data.
func DecodeInfo(data []byte) (*GameInfo, error) {
	d, err := newDecoder(data)
	if err != nil {
		return nil, err
	}
	if err := d.run(data, true); err != nil {
		return nil, err
	}
	if !d.started {
		return nil, fmt.Errorf("replay ends before the game-start event")
	}
	info := d.game.Info
	return &info, nil
}

func newDecoder(data []byte) (*decoder, error) {
	if len(data) < rawHeaderLen || !bytes.Equal(data[:len(rawHeader)], rawHeader) {
		return nil, ErrNotSlippi
	}
	d := &decoder{}
	for i := range d.sizes {
		d.sizes[i] = -1
	}
	return d, nil
}

// run walks the event stream. With infoOnly set it returns as soon as the
// game-start event has been decoded.
func (d *decoder) run(data []byte, infoOnly bool) error {
	events := data[rawHeaderLen:]
	rawLen := binary.BigEndian.Uint32(data[len(rawHeader):rawHeaderLen])
	// a zero length means the recorder never finalized the file; take
	// whatever is there
	if rawLen > 0 && int(rawLen) <= len(events) {
		events = events[:rawLen]
	}

	if len(events) == 0 || events[0] != cmdEventPayloads {
		return fmt.Errorf("%w: event stream does not open with payload declarations", ErrNotSlippi)
	}
	n, err := d.readPayloadSizes(events)
	if err != nil {
		return err
	}

	for off := n; off < len(events); {
		cmd := events[off]
		size := d.sizes[cmd]
		if size < 0 {
			return fmt.Errorf("undeclared event 0x%02x at offset %d", cmd, off)
		}
		end := off + 1 + size
		if end > len(events) {
			return fmt.Errorf("truncated event 0x%02x at offset %d", cmd, off)
		}
		ev := event(events[off:end])

		switch cmd {
		case cmdGameStart:
			if err := d.gameStart(ev); err != nil {
				return err
			}
			if infoOnly {
				return nil
			}
		case cmdPostFrame:
			if err := d.postFrame(ev); err != nil {
				return err
			}
		case cmdItemUpdate:
			d.itemUpdate(ev)
		case cmdGameEnd:
			return nil
		}
		off = end
	}
	return nil
}

// readPayloadSizes decodes the leading event-payloads declaration and
// returns its total length.
func (d *decoder) readPayloadSizes(events []byte) (int, error) {
	if len(events) < 2 {
		return 0, fmt.Errorf("truncated payload declarations")
	}
	declLen := int(events[1]) // includes the length byte itself
	end := 1 + declLen
	if declLen < 1 || (declLen-1)%3 != 0 || end > len(events) {
		return 0, fmt.Errorf("malformed payload declarations (length %d)", declLen)
	}
	for off := 2; off < end; off += 3 {
		cmd := events[off]
		d.sizes[cmd] = int(binary.BigEndian.Uint16(events[off+1:]))
	}
	return end, nil
}

func (d *decoder) gameStart(ev event) error {
	minLen := gsPlayerBlock + 4*gsPlayerSize
	if !ev.has(0, minLen) {
		return fmt.Errorf("game-start event too short (%d bytes)", len(ev))
	}

	d.game.Info.Version = Version{
		Major: ev.u8At(gsVersion),
		Minor: ev.u8At(gsVersion + 1),
		Patch: ev.u8At(gsVersion + 2),
	}
	d.game.Info.Stage = melee.Stage(ev.u16At(gsStage))

	var players []PlayerInfo
	var ports []uint8
	for i := 0; i < 4; i++ {
		block := gsPlayerBlock + i*gsPlayerSize
		if ev.u8At(block+gsPlayerType) == playerTypeEmpty {
			continue
		}
		ext := ev.u8At(block)
		c, ok := melee.CharacterFromExternal(ext)
		if !ok {
			return fmt.Errorf("port %d: unrecognized character id %d", i+1, ext)
		}
		players = append(players, PlayerInfo{
			Port: uint8(i),
			Fighter: melee.CharacterColour{
				Character: c,
				Costume:   ev.u8At(block + gsCostume),
			},
		})
		ports = append(ports, uint8(i))
	}
	if len(players) != 2 {
		return fmt.Errorf("%w: %d occupied", ErrPortCount, len(players))
	}

	d.game.Info.Low = players[0]
	d.game.Info.High = players[1]
	d.lowPort = ports[0]
	d.highPort = ports[1]
	d.started = true
	return nil
}

func (d *decoder) postFrame(ev event) error {
	if !d.started {
		return fmt.Errorf("post-frame event before game start")
	}
	if !ev.has(0, pfAirborne+1) {
		return fmt.Errorf("post-frame event too short (%d bytes)", len(ev))
	}
	if ev.u8At(pfIsFollower) != 0 {
		// Nana mirrors Popo's inputs and has no independent timeline
		return nil
	}

	port := ev.u8At(pfPlayerIndex)
	var frames *[]melee.Frame
	switch port {
	case d.lowPort:
		frames = &d.game.LowPortFrames
	case d.highPort:
		frames = &d.game.HighPortFrames
	default:
		return fmt.Errorf("post-frame event for unoccupied port %d", port+1)
	}

	idx := int(ev.i32At(pfFrame)) - firstFrame
	if idx < 0 || idx > len(*frames) {
		return fmt.Errorf("frame %d arrived with only %d recorded", idx, len(*frames))
	}

	char, ok := melee.CharacterFromInternal(ev.u8At(pfInternalChar))
	if !ok {
		return fmt.Errorf("frame %d: unrecognized character id %d", idx, ev.u8At(pfInternalChar))
	}

	dir := melee.Right
	if ev.f32At(pfFacing) < 0 {
		dir = melee.Left
	}

	f := melee.Frame{
		Character: char,
		PortIdx:   port,
		Direction: dir,
		Position: melee.Vector{
			X: ev.f32At(pfPositionX),
			Y: ev.f32At(pfPositionY),
		},
		State:     melee.ActionState(ev.u16At(pfActionState)),
		AnimFrame: ev.f32At(pfAnimCounter),
	}

	// self and knockback speeds were added in revision 3.5; older files
	// leave velocities zero
	if ev.has(pfSelfGroundX, 4) {
		if ev.u8At(pfAirborne) != 0 {
			f.Velocity = melee.Vector{X: ev.f32At(pfSelfAirX), Y: ev.f32At(pfSelfY)}
		} else {
			f.Velocity = melee.Vector{X: ev.f32At(pfSelfGroundX), Y: ev.f32At(pfSelfY)}
		}
		f.HitVelocity = melee.Vector{X: ev.f32At(pfKnockbackX), Y: ev.f32At(pfKnockbackY)}
	}

	// rollbacks re-deliver frames; the latest write wins
	if idx == len(*frames) {
		*frames = append(*frames, f)
	} else {
		(*frames)[idx] = f
	}
	return nil
}

func (d *decoder) itemUpdate(ev event) {
	if !ev.has(0, itChargePower+1) {
		// older revisions carry a shorter item event without the typed
		// extras; those items are not worth a partial record
		return
	}
	dir := melee.Right
	if ev.f32At(itFacing) < 0 {
		dir = melee.Left
	}
	d.game.Items = append(d.game.Items, Item{
		Frame:     int(ev.i32At(itFrame)) - firstFrame,
		Type:      ev.u16At(itType),
		State:     ev.u8At(itState),
		Direction: dir,
		Position: melee.Vector{
			X: ev.f32At(itPositionX),
			Y: ev.f32At(itPositionY),
		},
		MissileType: ev.u8At(itMissileType),
		TurnipFace:  ev.u8At(itTurnipFace),
		Launched:    ev.u8At(itLaunched),
		ChargePower: ev.u8At(itChargePower),
	})
}

// buildItemRanges groups the item timeline into per-frame slices. Rollbacks
// can deliver items slightly out of order, so the grouping sorts first;
// the sort is stable to preserve within-frame spawn order.
func (d *decoder) buildItemRanges() {
	frames := len(d.game.LowPortFrames)
	if n := len(d.game.HighPortFrames); n > frames {
		frames = n
	}
	sort.SliceStable(d.game.Items, func(i, j int) bool {
		return d.game.Items[i].Frame < d.game.Items[j].Frame
	})

	ranges := make([]ItemRange, frames)
	i := 0
	for f := 0; f < frames; f++ {
		start := i
		for i < len(d.game.Items) && d.game.Items[i].Frame == f {
			i++
		}
		ranges[f] = ItemRange{Start: start, End: i}
	}
	d.game.ItemRanges = ranges
}
