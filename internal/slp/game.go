// Package slp decodes Slippi replay files into per-port frame arrays and
// match metadata. Only the events the analysis consumes are interpreted;
// everything else is skipped by its declared payload size, so files written
// by newer recorder versions still decode.
package slp

import (
	"fmt"

	"slipstream/internal/melee"
)

// Version is the replay format revision recorded in the file.
type Version struct {
	Major uint8
	Minor uint8
	Patch uint8
}

// AtLeast reports whether the revision is maj.min or newer.
func (v Version) AtLeast(maj, min uint8) bool {
	return v.Major > maj || (v.Major == maj && v.Minor >= min)
}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// PlayerInfo describes one occupied port at match start.
type PlayerInfo struct {
	Port    uint8
	Fighter melee.CharacterColour
}

// GameInfo is the match metadata decoded from the game-start event.
type GameInfo struct {
	Version Version
	Stage   melee.Stage
	Low     PlayerInfo
	High    PlayerInfo
}

// Item is one snapshot of a projectile or held item. Items keep their own
// timeline; Frame indexes the same frame space as the competitor arrays.
type Item struct {
	Frame       int
	Type        uint16
	State       uint8
	Direction   melee.Direction
	Position    melee.Vector
	MissileType uint8
	TurnipFace  uint8
	Launched    uint8
	ChargePower uint8
}

// ItemRange is the half-open slice [Start, End) of a Game's Items that
// belongs to one frame.
type ItemRange struct {
	Start int
	End   int
}

// Game is a fully decoded replay: one frame array per competitor, ordered
// and rollback-resolved, plus the item timeline grouped by frame.
type Game struct {
	Info           GameInfo
	LowPortFrames  []melee.Frame
	HighPortFrames []melee.Frame
	Items          []Item
	ItemRanges     []ItemRange
}

// FramesFor returns the frame array for one side of the match.
func (g *Game) FramesFor(p melee.Port) []melee.Frame {
	if p == melee.PortLow {
		return g.LowPortFrames
	}
	return g.HighPortFrames
}

// ItemsAt returns the items live on the given frame.
func (g *Game) ItemsAt(frame int) []Item {
	if frame < 0 || frame >= len(g.ItemRanges) {
		return nil
	}
	r := g.ItemRanges[frame]
	return g.Items[r.Start:r.End]
}
