package cart

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sync"

	"github.com/SahakyanGor98/iqos/internal/domain"
)

// StorageNamespace names the durable snapshot, mirroring the fixed storage
// key carts were historically persisted under.
const StorageNamespace = "iqos-cart-storage"

// Store owns one Cart per session token and persists the full snapshot after
// every mutation, so carts survive process restarts. Persistence failures are
// logged, never surfaced: losing durability must not break a mutation.
type Store struct {
	mu     sync.Mutex
	path   string
	logger *log.Logger
	carts  map[string]*Cart
}

// Open loads the snapshot from dir (creating the directory when absent). A
// missing or unreadable snapshot starts the store empty.
func Open(dir string, logger *log.Logger) (*Store, error) {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create cart store dir: %w", err)
	}

	s := &Store{
		path:   filepath.Join(dir, StorageNamespace+".json"),
		logger: logger,
		carts:  make(map[string]*Cart),
	}
	s.load()
	return s, nil
}

func (s *Store) load() {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.logger.Printf("cart store: read snapshot: %v", err)
		}
		return
	}
	var snapshot map[string][]Item
	if err := json.Unmarshal(raw, &snapshot); err != nil {
		s.logger.Printf("cart store: decode snapshot: %v", err)
		return
	}
	for token, items := range snapshot {
		c := &Cart{items: items}
		s.carts[token] = c
	}
}

// flushLocked writes the full snapshot. Callers hold s.mu.
func (s *Store) flushLocked() {
	snapshot := make(map[string][]Item, len(s.carts))
	for token, c := range s.carts {
		if c.Len() == 0 {
			continue
		}
		snapshot[token] = c.items
	}

	raw, err := json.Marshal(snapshot)
	if err != nil {
		s.logger.Printf("cart store: encode snapshot: %v", err)
		return
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		s.logger.Printf("cart store: write snapshot: %v", err)
		return
	}
	if err := os.Rename(tmp, s.path); err != nil {
		s.logger.Printf("cart store: replace snapshot: %v", err)
	}
}

func (s *Store) cartLocked(token string) *Cart {
	c, ok := s.carts[token]
	if !ok {
		c = &Cart{}
		s.carts[token] = c
	}
	return c
}

// Add puts a product snapshot into the token's cart.
func (s *Store) Add(token string, p domain.Product, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cartLocked(token).Add(p, quantity)
	s.flushLocked()
}

// Remove drops a line from the token's cart.
func (s *Store) Remove(token string, productID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cartLocked(token).Remove(productID)
	s.flushLocked()
}

// UpdateQuantity sets a line's quantity, clamped to a minimum of 1.
func (s *Store) UpdateQuantity(token string, productID int64, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cartLocked(token).UpdateQuantity(productID, quantity)
	s.flushLocked()
}

// Clear empties the token's cart.
func (s *Store) Clear(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cartLocked(token).Clear()
	s.flushLocked()
}

// Snapshot returns the token's current lines and derived totals.
func (s *Store) Snapshot(token string) (items []Item, totalPrice int64, totalItems int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := s.cartLocked(token)
	return c.Items(), c.TotalPrice(), c.TotalItems()
}
