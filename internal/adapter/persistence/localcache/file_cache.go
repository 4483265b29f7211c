package localcache

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"

	"taller_movil/internal/domain/entities"
	"taller_movil/internal/usecase/interfaces"
)

const defaultCacheFileName = "order_draft.json"

// FileDraftCache is the single durable local slot for the in-progress draft.
// It stores the canonical snapshot JSON in one file and replaces it with an
// atomic rename, so a crash mid-write never corrupts the previous draft.

type FileDraftCache struct {
	mu   sync.Mutex
	path string
}

var _ interfaces.ILocalDraftCache = (*FileDraftCache)(nil)

// NewFileDraftCache creates the cache at path; an empty path falls back to
// DRAFT_CACHE_PATH or a file in the working directory.
func NewFileDraftCache(path string) *FileDraftCache {
	if path == "" {
		path = os.Getenv("DRAFT_CACHE_PATH")
	}
	if path == "" {
		path = defaultCacheFileName
	}
	return &FileDraftCache{path: path}
}

func (c *FileDraftCache) Store(snap entities.OrderSnapshot) error {
	raw, err := json.Marshal(snap)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if dir := filepath.Dir(c.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	tmp := c.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, c.path)
}

func (c *FileDraftCache) Load() (entities.OrderSnapshot, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	raw, err := os.ReadFile(c.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return entities.OrderSnapshot{}, false, nil
		}
		return entities.OrderSnapshot{}, false, err
	}

	var snap entities.OrderSnapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return entities.OrderSnapshot{}, false, err
	}
	return snap, true, nil
}

func (c *FileDraftCache) Clear() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := os.Remove(c.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}
