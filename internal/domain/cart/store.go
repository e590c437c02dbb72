// internal/domain/cart/store.go
package cart

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// Store is the single source of truth for shopping carts, keyed by
// session. Every mutation is written through the injected Persistence
// adapter, so carts survive restarts with any durable backend.
type Store struct {
	mu          sync.Mutex
	persistence Persistence
	states      map[string]*State
	logger      *logrus.Logger
}

// NewStore creates a cart store backed by the given persistence adapter
func NewStore(persistence Persistence, logger *logrus.Logger) *Store {
	if logger == nil {
		logger = logrus.New()
	}
	return &Store{
		persistence: persistence,
		states:      make(map[string]*State),
		logger:      logger,
	}
}

// Hydrate loads the persisted cart for key into memory. Until Hydrate
// has run for a key, Snapshot serves an empty cart; this mirrors the
// render-before-storage-is-ready gate the store exists to close.
func (s *Store) Hydrate(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hydrateLocked(ctx, key)
}

// Hydrated reports whether the cart for key has been loaded
func (s *Store) Hydrated(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.states[key]
	return ok
}

// Snapshot returns a copy of the cart for key. A key that has not been
// hydrated yet reads as an empty cart; no storage call is made.
func (s *Store) Snapshot(key string) State {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, ok := s.states[key]
	if !ok {
		return State{Items: []Item{}}
	}
	return state.Clone()
}

// AddItem appends item with quantity 1, or increments the quantity of
// an existing line with the same id. It always succeeds barring a
// persistence failure.
func (s *Store) AddItem(ctx context.Context, key string, item NewItem) (State, error) {
	return s.mutate(ctx, key, func(state *State) error {
		for i := range state.Items {
			if state.Items[i].ID == item.ID {
				state.Items[i].Quantity++
				return nil
			}
		}
		state.Items = append(state.Items, Item{
			ID:       item.ID,
			Name:     item.Name,
			Price:    item.Price,
			Image:    item.Image,
			Quantity: 1,
		})
		return nil
	})
}

// RemoveItem removes the line with the given id. Removing an absent id
// is a no-op, not an error.
func (s *Store) RemoveItem(ctx context.Context, key, id string) (State, error) {
	return s.mutate(ctx, key, func(state *State) error {
		for i := range state.Items {
			if state.Items[i].ID == id {
				state.Items = append(state.Items[:i], state.Items[i+1:]...)
				break
			}
		}
		return nil
	})
}

// UpdateQuantity sets the quantity of the line with the given id. The
// caller is responsible for rejecting quantities below 1 before calling;
// the store applies what it is given.
func (s *Store) UpdateQuantity(ctx context.Context, key, id string, quantity int) (State, error) {
	return s.mutate(ctx, key, func(state *State) error {
		for i := range state.Items {
			if state.Items[i].ID == id {
				state.Items[i].Quantity = quantity
				return nil
			}
		}
		return fmt.Errorf("item %q not found in cart", id)
	})
}

// Clear empties the cart for key and deletes its persisted blob
func (s *Store) Clear(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.states[key] = &State{Items: []Item{}, UpdatedAt: time.Now().UTC()}

	if err := s.persistence.Delete(ctx, key); err != nil {
		return fmt.Errorf("failed to clear persisted cart: %w", err)
	}
	return nil
}

// mutate applies fn to the cart for key under the lock and writes the
// result through to persistence. State transitions are atomic: a
// failed save leaves the in-memory state untouched.
func (s *Store) mutate(ctx context.Context, key string, fn func(*State) error) (State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Mutating an unhydrated cart hydrates first so the persisted
	// blob is never overwritten blind.
	if err := s.hydrateLocked(ctx, key); err != nil {
		return State{}, err
	}

	next := s.states[key].Clone()
	if err := fn(&next); err != nil {
		return State{}, err
	}
	next.UpdatedAt = time.Now().UTC()

	if err := s.persistence.Save(ctx, key, next); err != nil {
		s.logger.WithError(err).WithField("cart_key", key).Error("cart save failed")
		return State{}, fmt.Errorf("failed to persist cart: %w", err)
	}

	s.states[key] = &next
	return next.Clone(), nil
}

func (s *Store) hydrateLocked(ctx context.Context, key string) error {
	if _, ok := s.states[key]; ok {
		return nil
	}

	state, err := s.persistence.Load(ctx, key)
	if err != nil {
		return fmt.Errorf("failed to load persisted cart: %w", err)
	}
	if state == nil {
		state = &State{Items: []Item{}}
	}
	if state.Items == nil {
		state.Items = []Item{}
	}

	s.states[key] = state
	return nil
}
