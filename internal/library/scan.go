package library

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofrs/flock"

	"slipstream/internal/logging"
	"slipstream/internal/slp"
)

// ErrLocked indicates another process is scanning the same directory.
var ErrLocked = errors.New("replay directory is locked by another scan")

// ScanResult summarizes one scan pass.
type ScanResult struct {
	Entries []*Entry
	Indexed int
	Cached  int
	Skipped int
	Removed int
}

// ScanDir decodes every replay directly under dir without consulting or
// updating an index. Files that fail to decode are skipped and logged.
func ScanDir(ctx context.Context, dir string, logger *slog.Logger) (*ScanResult, error) {
	if logger == nil {
		logger = logging.NewNop()
	}

	dirents, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read replay directory: %w", err)
	}

	result := &ScanResult{}
	for _, de := range dirents {
		if de.IsDir() || !strings.EqualFold(filepath.Ext(de.Name()), ".slp") {
			continue
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		path := filepath.Join(dir, de.Name())
		fi, err := de.Info()
		if err != nil {
			logger.Warn("stat replay failed",
				logging.String("path", path), logging.Error(err))
			result.Skipped++
			continue
		}

		info, err := slp.ReadInfo(path)
		if err != nil {
			logger.Debug("skipping undecodable replay",
				logging.String("path", path), logging.Error(err))
			result.Skipped++
			continue
		}

		result.Indexed++
		result.Entries = append(result.Entries, &Entry{
			Path:    path,
			Size:    fi.Size(),
			ModTime: fi.ModTime().UTC(),
			Info:    *info,
		})
	}
	return result, nil
}

// Scan indexes every replay directly under dir. Files already indexed with
// an unchanged size and modification time are not re-read; files that fail
// to decode are skipped and logged, never fatal. Index rows whose file has
// disappeared are removed.
//
// The scan holds a file lock next to the index for its duration and returns
// ErrLocked without blocking when another process holds it.
func Scan(ctx context.Context, store *Store, dir string, logger *slog.Logger) (*ScanResult, error) {
	if logger == nil {
		logger = logging.NewNop()
	}

	lock := flock.New(store.path + ".lock")
	locked, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire scan lock: %w", err)
	}
	if !locked {
		return nil, ErrLocked
	}
	defer func() { _ = lock.Unlock() }()

	dirents, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read replay directory: %w", err)
	}

	result := &ScanResult{}
	onDisk := make(map[string]struct{})
	for _, de := range dirents {
		if de.IsDir() || !strings.EqualFold(filepath.Ext(de.Name()), ".slp") {
			continue
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		path := filepath.Join(dir, de.Name())
		onDisk[path] = struct{}{}

		fi, err := de.Info()
		if err != nil {
			logger.Warn("stat replay failed",
				logging.String("path", path), logging.Error(err))
			result.Skipped++
			continue
		}

		cached, err := store.Get(ctx, path)
		if err != nil {
			return nil, err
		}
		if cached != nil && cached.Size == fi.Size() && cached.ModTime.Equal(fi.ModTime().UTC()) {
			result.Cached++
			result.Entries = append(result.Entries, cached)
			continue
		}

		info, err := slp.ReadInfo(path)
		if err != nil {
			logger.Debug("skipping undecodable replay",
				logging.String("path", path), logging.Error(err))
			result.Skipped++
			continue
		}

		entry := &Entry{
			Path:    path,
			Size:    fi.Size(),
			ModTime: fi.ModTime().UTC(),
			Info:    *info,
		}
		if err := store.Upsert(ctx, entry); err != nil {
			return nil, err
		}
		result.Indexed++
		result.Entries = append(result.Entries, entry)
	}

	// drop rows for files deleted since the last scan
	indexed, err := store.All(ctx)
	if err != nil {
		return nil, err
	}
	for _, entry := range indexed {
		if _, ok := onDisk[entry.Path]; ok {
			continue
		}
		if err := store.Remove(ctx, entry.Path); err != nil {
			return nil, err
		}
		result.Removed++
	}

	logger.Debug("scan complete",
		logging.String("dir", dir),
		logging.Int("indexed", result.Indexed),
		logging.Int("cached", result.Cached),
		logging.Int("skipped", result.Skipped),
		logging.Int("removed", result.Removed))
	return result, nil
}
