// internal/domain/cart/persistence.go
package cart

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// Persistence is the storage adapter behind the cart store. Load
// returns nil (not an error) when no cart exists for the key. All
// adapters serialize State as a single JSON blob under a fixed
// namespace prefix.
type Persistence interface {
	Load(ctx context.Context, key string) (*State, error)
	Save(ctx context.Context, key string, state State) error
	Delete(ctx context.Context, key string) error
}

// MemoryPersistence keeps carts in process memory. Used in tests and
// as the zero-infrastructure default.
type MemoryPersistence struct {
	mu    sync.RWMutex
	blobs map[string][]byte
}

// NewMemoryPersistence creates an in-memory persistence adapter
func NewMemoryPersistence() *MemoryPersistence {
	return &MemoryPersistence{blobs: make(map[string][]byte)}
}

func (p *MemoryPersistence) Load(_ context.Context, key string) (*State, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	blob, ok := p.blobs[key]
	if !ok {
		return nil, nil
	}

	var state State
	if err := json.Unmarshal(blob, &state); err != nil {
		return nil, err
	}
	return &state, nil
}

func (p *MemoryPersistence) Save(_ context.Context, key string, state State) error {
	blob, err := json.Marshal(state)
	if err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	p.blobs[key] = blob
	return nil
}

func (p *MemoryPersistence) Delete(_ context.Context, key string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.blobs, key)
	return nil
}

// FilePersistence writes each cart as a JSON file under a directory,
// the server-side analogue of a browser's local storage blob.
type FilePersistence struct {
	dir       string
	namespace string
}

// NewFilePersistence creates a file-backed persistence adapter rooted
// at dir
func NewFilePersistence(dir, namespace string) (*FilePersistence, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create cart directory: %w", err)
	}
	return &FilePersistence{dir: dir, namespace: namespace}, nil
}

func (p *FilePersistence) Load(_ context.Context, key string) (*State, error) {
	blob, err := os.ReadFile(p.path(key))
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var state State
	if err := json.Unmarshal(blob, &state); err != nil {
		return nil, err
	}
	return &state, nil
}

func (p *FilePersistence) Save(_ context.Context, key string, state State) error {
	blob, err := json.Marshal(state)
	if err != nil {
		return err
	}

	// Write-then-rename keeps a crash from leaving a torn blob
	tmp := p.path(key) + ".tmp"
	if err := os.WriteFile(tmp, blob, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, p.path(key))
}

func (p *FilePersistence) Delete(_ context.Context, key string) error {
	err := os.Remove(p.path(key))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

func (p *FilePersistence) path(key string) string {
	name := strings.ReplaceAll(p.namespace+":"+key, ":", "_")
	name = strings.ReplaceAll(name, string(os.PathSeparator), "_")
	return filepath.Join(p.dir, name+".json")
}
