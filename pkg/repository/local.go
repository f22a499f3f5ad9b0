package repository

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/m-mizutani/cortex/pkg/model"
	"github.com/m-mizutani/cortex/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

// Local implements Repository over per-document JSON files in a single
// directory. Writes go to a temporary sibling file which atomically
// replaces the target, so a reader never observes a half-written
// document. A last-write-wins cache avoids re-reading files; this is
// safe because the process is the only writer.
type Local struct {
	dir string

	mu    sync.Mutex
	cache map[model.DocumentName]json.RawMessage
}

// NewLocal creates a Local repository rooted at dir, creating the
// directory if needed. A directory that cannot be created is fatal.
func NewLocal(dir string) (*Local, error) {
	if dir == "" {
		return nil, goerr.Wrap(ErrStorage, "data directory is required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, goerr.Wrap(ErrStorage, "failed to create data directory", goerr.V("dir", dir), goerr.V("cause", err.Error()))
	}

	return &Local{
		dir:   dir,
		cache: make(map[model.DocumentName]json.RawMessage),
	}, nil
}

// Dir returns the data directory path
func (r *Local) Dir() string {
	return r.dir
}

func (r *Local) path(doc model.DocumentName) string {
	return filepath.Join(r.dir, string(doc)+".json")
}

func (r *Local) Save(ctx context.Context, doc model.DocumentName, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return goerr.Wrap(ErrStorage, "failed to marshal document", goerr.V("doc", doc), goerr.V("cause", err.Error()))
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	target := r.path(doc)
	tmp := target + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return goerr.Wrap(ErrStorage, "failed to write temporary file", goerr.V("path", tmp), goerr.V("cause", err.Error()))
	}
	if err := os.Rename(tmp, target); err != nil {
		// Leave no orphan behind; the target is still the last committed state
		_ = os.Remove(tmp)
		return goerr.Wrap(ErrStorage, "failed to replace document file", goerr.V("path", target), goerr.V("cause", err.Error()))
	}

	// Cache only after the replace succeeded
	r.cache[doc] = data

	logging.From(ctx).Debug("saved document", "doc", doc, "bytes", len(data))
	return nil
}

func (r *Local) Load(ctx context.Context, doc model.DocumentName, out any) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if data, ok := r.cache[doc]; ok {
		if err := json.Unmarshal(data, out); err != nil {
			return goerr.Wrap(ErrStorage, "failed to decode cached document", goerr.V("doc", doc), goerr.V("cause", err.Error()))
		}
		return nil
	}

	data, err := os.ReadFile(r.path(doc))
	if os.IsNotExist(err) {
		logging.From(ctx).Debug("document not found, using defaults", "doc", doc)
		return nil
	}
	if err != nil {
		return goerr.Wrap(ErrStorage, "failed to read document file", goerr.V("doc", doc), goerr.V("cause", err.Error()))
	}

	if err := json.Unmarshal(data, out); err != nil {
		// Corrupt persisted state must never break command handling
		logging.From(ctx).Warn("malformed document, using defaults", "doc", doc, "error", err)
		return nil
	}

	r.cache[doc] = data
	return nil
}
