package slp_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"slipstream/internal/melee"
	"slipstream/internal/slp"
	"slipstream/internal/testsupport"
)

func twoPlayerStart() []byte {
	return testsupport.GameStartEvent(uint16(melee.Battlefield),
		testsupport.Player{Port: 0, Ext: 2, Costume: 1}, // Fox
		testsupport.Player{Port: 2, Ext: 9},             // Marth
	)
}

func TestDecodeRejectsNonSlippi(t *testing.T) {
	_, err := slp.Decode([]byte("definitely not a replay file"))
	require.ErrorIs(t, err, slp.ErrNotSlippi)

	_, err = slp.Decode(nil)
	require.ErrorIs(t, err, slp.ErrNotSlippi)
}

func TestDecodeInfo(t *testing.T) {
	info, err := slp.DecodeInfo(testsupport.BuildReplay(twoPlayerStart(), testsupport.GameEndEvent()))
	require.NoError(t, err)

	assert.Equal(t, slp.Version{Major: 3, Minor: 16, Patch: 0}, info.Version)
	assert.Equal(t, melee.Battlefield, info.Stage)
	assert.Equal(t, uint8(0), info.Low.Port)
	assert.Equal(t, melee.Fox, info.Low.Fighter.Character)
	assert.Equal(t, uint8(1), info.Low.Fighter.Costume)
	assert.Equal(t, uint8(2), info.High.Port)
	assert.Equal(t, melee.Marth, info.High.Fighter.Character)
}

func TestDecodePortCount(t *testing.T) {
	solo := testsupport.GameStartEvent(uint16(melee.Battlefield), testsupport.Player{Port: 0, Ext: 2})
	_, err := slp.DecodeInfo(testsupport.BuildReplay(solo, testsupport.GameEndEvent()))
	require.ErrorIs(t, err, slp.ErrPortCount)
}

func TestDecodeFrames(t *testing.T) {
	fox := uint8(melee.Fox)
	marth := uint8(melee.Marth)
	game, err := slp.Decode(testsupport.BuildReplay(
		twoPlayerStart(),
		testsupport.PostFrameEvent(testsupport.Frame{Frame: -123, Port: 0, Internal: fox, State: 14, Facing: 1, GroundX: 0.5}),
		testsupport.PostFrameEvent(testsupport.Frame{Frame: -123, Port: 2, Internal: marth, State: 14, Facing: -1}),
		testsupport.PostFrameEvent(testsupport.Frame{Frame: -122, Port: 0, Internal: fox, State: 29, Facing: 1, Airborne: true, AirX: 2.0, GroundX: 9.0, SelfY: -1.5}),
		testsupport.PostFrameEvent(testsupport.Frame{Frame: -122, Port: 2, Internal: marth, State: 14, Facing: -1}),
		testsupport.GameEndEvent(),
	))
	require.NoError(t, err)

	require.Len(t, game.LowPortFrames, 2)
	require.Len(t, game.HighPortFrames, 2)

	f0 := game.LowPortFrames[0]
	assert.Equal(t, melee.Fox, f0.Character)
	assert.Equal(t, melee.StateWait, f0.State)
	assert.Equal(t, melee.Right, f0.Direction)
	// grounded frames take the ground speed
	assert.Equal(t, float32(0.5), f0.Velocity.X)

	f1 := game.LowPortFrames[1]
	assert.Equal(t, melee.StateFall, f1.State)
	// airborne frames take the air speed
	assert.Equal(t, float32(2.0), f1.Velocity.X)
	assert.Equal(t, float32(-1.5), f1.Velocity.Y)

	assert.Equal(t, melee.Left, game.HighPortFrames[0].Direction)
}

func TestDecodeRollbackOverwrites(t *testing.T) {
	fox := uint8(melee.Fox)
	marth := uint8(melee.Marth)
	game, err := slp.Decode(testsupport.BuildReplay(
		twoPlayerStart(),
		testsupport.PostFrameEvent(testsupport.Frame{Frame: -123, Port: 0, Internal: fox, State: 14, Facing: 1}),
		testsupport.PostFrameEvent(testsupport.Frame{Frame: -123, Port: 2, Internal: marth, State: 14, Facing: 1}),
		// rollback replays the same frame with a corrected state
		testsupport.PostFrameEvent(testsupport.Frame{Frame: -123, Port: 0, Internal: fox, State: 20, Facing: 1}),
		testsupport.GameEndEvent(),
	))
	require.NoError(t, err)
	require.Len(t, game.LowPortFrames, 1)
	assert.Equal(t, melee.StateDash, game.LowPortFrames[0].State)
}

func TestDecodeFrameGap(t *testing.T) {
	fox := uint8(melee.Fox)
	_, err := slp.Decode(testsupport.BuildReplay(
		twoPlayerStart(),
		testsupport.PostFrameEvent(testsupport.Frame{Frame: -120, Port: 0, Internal: fox, State: 14, Facing: 1}),
		testsupport.GameEndEvent(),
	))
	require.Error(t, err)
}

func TestDecodeItems(t *testing.T) {
	fox := uint8(melee.Fox)
	marth := uint8(melee.Marth)
	game, err := slp.Decode(testsupport.BuildReplay(
		twoPlayerStart(),
		testsupport.PostFrameEvent(testsupport.Frame{Frame: -123, Port: 0, Internal: fox, State: 14, Facing: 1}),
		testsupport.PostFrameEvent(testsupport.Frame{Frame: -123, Port: 2, Internal: marth, State: 14, Facing: 1}),
		testsupport.ItemEvent(-123, 99, 10, 20),
		testsupport.ItemEvent(-123, 99, 11, 20),
		testsupport.PostFrameEvent(testsupport.Frame{Frame: -122, Port: 0, Internal: fox, State: 14, Facing: 1}),
		testsupport.PostFrameEvent(testsupport.Frame{Frame: -122, Port: 2, Internal: marth, State: 14, Facing: 1}),
		testsupport.ItemEvent(-122, 55, 12, 20),
		testsupport.GameEndEvent(),
	))
	require.NoError(t, err)

	require.Len(t, game.Items, 3)
	require.Len(t, game.ItemRanges, 2)

	frame0 := game.ItemsAt(0)
	require.Len(t, frame0, 2)
	assert.Equal(t, uint16(99), frame0[0].Type)
	assert.Equal(t, float32(10), frame0[0].Position.X)

	frame1 := game.ItemsAt(1)
	require.Len(t, frame1, 1)
	assert.Equal(t, uint16(55), frame1[0].Type)

	assert.Empty(t, game.ItemsAt(2))
	assert.Empty(t, game.ItemsAt(-1))
}

func TestReadGame(t *testing.T) {
	path := filepath.Join(t.TempDir(), "match.slp")
	require.NoError(t, os.WriteFile(path, testsupport.MinimalReplay(), 0o644))

	game, err := slp.ReadGame(path)
	require.NoError(t, err)
	assert.Equal(t, melee.Battlefield, game.Info.Stage)
	assert.Len(t, game.LowPortFrames, 1)

	info, err := slp.ReadInfo(path)
	require.NoError(t, err)
	assert.Equal(t, melee.Fox, info.Low.Fighter.Character)
}

func TestReadGameMissingFile(t *testing.T) {
	_, err := slp.ReadGame(filepath.Join(t.TempDir(), "absent.slp"))
	require.Error(t, err)
}
