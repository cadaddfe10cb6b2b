package slp

import (
	"fmt"
	"io"
	"os"

	"github.com/edsrzf/mmap-go"
)

// ReadGame decodes the replay at path.
func ReadGame(path string) (*Game, error) {
	var game *Game
	err := withFileData(path, func(data []byte) error {
		g, err := Decode(data)
		if err != nil {
			return err
		}
		game = g
		return nil
	})
	return game, err
}

// ReadInfo decodes only the match metadata of the replay at path.
func ReadInfo(path string) (*GameInfo, error) {
	var info *GameInfo
	err := withFileData(path, func(data []byte) error {
		gi, err := DecodeInfo(data)
		if err != nil {
			return err
		}
		info = gi
		return nil
	})
	return info, err
}

// withFileData maps the file and hands the mapping to fn. Replays run tens
// of megabytes and the decoder reads them once front to back, so a mapping
// beats buffering the whole file; empty or unmappable files fall back to a
// plain read. Decoded results own no part of the mapping, so it is released
// before returning.
func withFileData(path string, fn func([]byte) error) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening replay: %w", err)
	}
	defer f.Close()

	m, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		data, rerr := io.ReadAll(f)
		if rerr != nil {
			return fmt.Errorf("reading replay: %w", rerr)
		}
		return fn(data)
	}
	defer m.Unmap()
	return fn(m)
}
