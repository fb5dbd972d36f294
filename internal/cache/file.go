package cache

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// File is a Store persisted on disk, one JSON document per key. Values must
// be JSON-marshalable; a value read back from disk carries JSON's type
// mapping (numbers become float64, objects become map[string]any).
//
// Reads never fail: a missing, unreadable, or corrupt entry is a miss.
// Writes are best-effort; a failed write is logged and the entry simply
// stays absent.
type File struct {
	dir string
	log *slog.Logger
}

// NewFile creates a file-backed store rooted at dir, creating the directory
// if needed.
func NewFile(dir string, log *slog.Logger) (*File, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	if log == nil {
		log = slog.Default()
	}
	return &File{dir: dir, log: log}, nil
}

// Get returns the value stored under key, or false when the entry is
// absent or unreadable.
func (f *File) Get(key string) (any, bool) {
	data, err := os.ReadFile(f.path(key))
	if err != nil {
		return nil, false
	}
	var value any
	if err := json.Unmarshal(data, &value); err != nil {
		f.log.Warn("Discarding corrupt cache entry.", "key", key, "error", err)
		return nil, false
	}
	return value, true
}

// Set records value under key. Marshal or write failures are logged and
// leave the entry absent.
func (f *File) Set(key string, value any) {
	data, err := json.Marshal(value)
	if err != nil {
		f.log.Warn("Cache value is not JSON-marshalable, skipping.", "key", key, "error", err)
		return
	}
	path := f.path(key)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		f.log.Warn("Failed to write cache entry.", "key", key, "error", err)
		return
	}
	if err := os.Rename(tmp, path); err != nil {
		f.log.Warn("Failed to finalize cache entry.", "key", key, "error", err)
	}
}

// path maps a cache key to a file name. Keys are already slug-safe apart
// from the delimiter, which is not portable in file names.
func (f *File) path(key string) string {
	name := strings.ReplaceAll(key, keyDelimiter, "__")
	return filepath.Join(f.dir, name+".json")
}
