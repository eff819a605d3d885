package storefront

import (
	"sync"
	"time"
)

// CartStore is a session-keyed registry of carts.
//
// Each cart belongs to exactly one session; the store only guards the
// registry itself, not the carts it hands out. Carts that have not been
// touched within the TTL are dropped lazily on the next access.
//
// This implementation is suitable for single-instance deployments where
// cart state doesn't need to be shared across processes.
type CartStore struct {
	mu      sync.Mutex
	carts   map[string]*Cart
	expiry  map[string]time.Time
	ttl     time.Duration
	catalog *Catalog
}

// DefaultCartTTL is how long an idle cart survives between accesses.
const DefaultCartTTL = 30 * time.Minute

// NewCartStore creates a cart store backed by the given catalog. A ttl of 0
// uses DefaultCartTTL.
func NewCartStore(catalog *Catalog, ttl time.Duration) *CartStore {
	if ttl == 0 {
		ttl = DefaultCartTTL
	}
	return &CartStore{
		carts:   make(map[string]*Cart),
		expiry:  make(map[string]time.Time),
		ttl:     ttl,
		catalog: catalog,
	}
}

// Get returns the cart for the given session, creating it on first use.
// Every access refreshes the session's expiry deadline.
func (s *CartStore) Get(sessionID string) *Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	if expiry, exists := s.expiry[sessionID]; exists {
		if time.Now().Before(expiry) {
			s.expiry[sessionID] = time.Now().Add(s.ttl)
			return s.carts[sessionID]
		}
		// Expired - clean it up
		delete(s.carts, sessionID)
		delete(s.expiry, sessionID)
	}

	cart := NewCart(s.catalog)
	s.carts[sessionID] = cart
	s.expiry[sessionID] = time.Now().Add(s.ttl)

	// Lazy cleanup of expired entries
	s.cleanupExpiredLocked()

	return cart
}

// Delete drops a session's cart, typically after a successful handoff.
func (s *CartStore) Delete(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.carts, sessionID)
	delete(s.expiry, sessionID)
}

// Len returns the number of live (non-expired) sessions.
func (s *CartStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cleanupExpiredLocked()
	return len(s.carts)
}

// cleanupExpiredLocked removes expired entries. Must be called with lock held.
func (s *CartStore) cleanupExpiredLocked() {
	now := time.Now()
	for key, expiry := range s.expiry {
		if now.After(expiry) {
			delete(s.carts, key)
			delete(s.expiry, key)
		}
	}
}
