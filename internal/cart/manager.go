package cart

import (
	"context"
	"sync"

	"github.com/go-faster/errors"
)

// ErrNotFound is returned by a Repository when no persisted state exists for
// a cart id. The Manager treats it as an empty cart.
var ErrNotFound = errors.New("cart not found")

// Repository persists cart state between process restarts. Implementations
// are optional: a Manager without one keeps carts in memory only.
type Repository interface {
	Load(ctx context.Context, cartID string) (State, error)
	Save(ctx context.Context, cartID string, s State) error
}

// Manager applies cart operations atomically per process. All mutations run
// under one mutex, giving the single-writer semantics the pure operations
// need in a concurrent server: two simultaneous adds of the same identity
// pair merge into one line instead of racing to append two.
type Manager struct {
	mu    sync.Mutex
	carts map[string]State
	repo  Repository
}

// NewManager creates a Manager. repo may be nil for in-memory-only carts.
func NewManager(repo Repository) *Manager {
	return &Manager{
		carts: make(map[string]State),
		repo:  repo,
	}
}

// Get returns a snapshot of the cart. Unknown ids yield an empty cart.
func (m *Manager) Get(ctx context.Context, cartID string) (State, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.load(ctx, cartID)
}

// AddItem merges one unit of the payload into the cart.
func (m *Manager) AddItem(ctx context.Context, cartID string, p AddPayload) (State, error) {
	return m.apply(ctx, cartID, func(s State) State {
		return Add(s, p)
	})
}

// RemoveItem deletes a line by id; unknown ids are a no-op.
func (m *Manager) RemoveItem(ctx context.Context, cartID, itemID string) (State, error) {
	return m.apply(ctx, cartID, func(s State) State {
		return Remove(s, itemID)
	})
}

// SetQuantity sets a line's quantity; values at or below zero remove it.
func (m *Manager) SetQuantity(ctx context.Context, cartID, itemID string, quantity int) (State, error) {
	return m.apply(ctx, cartID, func(s State) State {
		return SetQuantity(s, itemID, quantity)
	})
}

// Clear empties the cart.
func (m *Manager) Clear(ctx context.Context, cartID string) (State, error) {
	return m.apply(ctx, cartID, Clear)
}

func (m *Manager) apply(ctx context.Context, cartID string, op func(State) State) (State, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	current, err := m.load(ctx, cartID)
	if err != nil {
		return State{}, err
	}

	next := op(current)

	// Persist before publishing so memory never diverges from the database:
	// a failed save leaves the previous state visible.
	if m.repo != nil {
		if err := m.repo.Save(ctx, cartID, next); err != nil {
			return State{}, errors.Wrap(err, "save cart")
		}
	}
	m.carts[cartID] = next
	return next, nil
}

// load must be called with mu held.
func (m *Manager) load(ctx context.Context, cartID string) (State, error) {
	if s, ok := m.carts[cartID]; ok {
		return s, nil
	}

	if m.repo != nil {
		s, err := m.repo.Load(ctx, cartID)
		switch {
		case err == nil:
			m.carts[cartID] = s
			return s, nil
		case !errors.Is(err, ErrNotFound):
			return State{}, errors.Wrap(err, "load cart")
		}
	}
	return State{}, nil
}
