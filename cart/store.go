package cart

import (
	"context"
	"errors"
	"sync"

	"github.com/Shahrukh-Ishtiaq/Elegant-Lady-sub000/models"
)

// ErrAuthRequired signals that the caller must sign in before using the
// wishlist. Anonymous sessions have no durable identity to attach entries to.
var ErrAuthRequired = errors.New("you must be signed in to use the wishlist")

// ErrInvalidQuantity rejects cart additions with a non-positive quantity.
var ErrInvalidQuantity = errors.New("quantity must be at least 1")

// Store is the single source of truth for a shopper's in-progress selection.
// It presents the same operations whether the shopper is anonymous (in-memory
// backend) or signed in (remote backend); every mutation is written through to
// the backend and the in-memory view is then refreshed from the authoritative
// read. On any backend failure the previous, last-confirmed view stays intact.
//
// A Store serves one shopper session. Two devices mutating the same signed-in
// cart race at the row level, last write wins; there is no conflict signal.
type Store struct {
	mu sync.Mutex

	remote   Backend
	wishlist WishlistBackend

	backend Backend // active strategy: memory when anonymous, remote after sign-in
	userID  string  // empty while anonymous

	items  []models.CartItem
	wished map[uint]bool
}

// NewStore returns a store in anonymous mode. The remote backends are used
// once SignIn is called; either may be nil for a purely local session.
func NewStore(remote Backend, wishlist WishlistBackend) *Store {
	return &Store{
		remote:   remote,
		wishlist: wishlist,
		backend:  NewMemoryBackend(),
		wished:   map[uint]bool{},
	}
}

// SignIn switches the store to authenticated mode: anonymous local state is
// discarded and the shopper's persisted cart and wishlist are loaded.
func (s *Store) SignIn(ctx context.Context, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.remote == nil {
		return errors.New("no remote cart backend configured")
	}
	items, err := s.remote.Load(ctx, userID)
	if err != nil {
		return err
	}
	wished := map[uint]bool{}
	if s.wishlist != nil {
		ids, err := s.wishlist.Load(ctx, userID)
		if err != nil {
			return err
		}
		for _, id := range ids {
			wished[id] = true
		}
	}
	s.backend = s.remote
	s.userID = userID
	s.items = items
	s.wished = wished
	return nil
}

// SignOut returns the store to a fresh anonymous session.
func (s *Store) SignOut() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.backend = NewMemoryBackend()
	s.userID = ""
	s.items = nil
	s.wished = map[uint]bool{}
}

// Authenticated reports whether the store is in signed-in mode.
func (s *Store) Authenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.userID != ""
}

// UserID returns the signed-in user id, or "" while anonymous.
func (s *Store) UserID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.userID
}

// AddToCart adds a fully-formed cart line. A line matching the same
// (product, size, color) has its quantity increased by item.Quantity instead
// of a duplicate line appearing. The store performs no stock check; callers
// validate availability before adding and checkout re-validates atomically.
func (s *Store) AddToCart(ctx context.Context, item models.CartItem) error {
	if item.Quantity < 1 {
		return ErrInvalidQuantity
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.backend.Upsert(ctx, s.userID, item); err != nil {
		return err
	}
	return s.refresh(ctx)
}

// RemoveFromCart deletes the line matching key exactly. Empty size/color in
// the key match only a line added without that variant.
func (s *Store) RemoveFromCart(ctx context.Context, key LineKey) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.backend.Remove(ctx, s.userID, key); err != nil {
		return err
	}
	return s.refresh(ctx)
}

// UpdateQuantity sets the line's quantity. A non-positive quantity removes
// the line entirely; no line with quantity below 1 ever exists.
func (s *Store) UpdateQuantity(ctx context.Context, key LineKey, quantity int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if quantity <= 0 {
		if err := s.backend.Remove(ctx, s.userID, key); err != nil {
			return err
		}
		return s.refresh(ctx)
	}
	if err := s.backend.SetQuantity(ctx, s.userID, key, quantity); err != nil {
		return err
	}
	return s.refresh(ctx)
}

// ClearCart empties all lines.
func (s *Store) ClearCart(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.backend.Clear(ctx, s.userID); err != nil {
		return err
	}
	return s.refresh(ctx)
}

// refresh replaces the in-memory view with the authoritative backend read.
// Callers hold s.mu.
func (s *Store) refresh(ctx context.Context) error {
	items, err := s.backend.Load(ctx, s.userID)
	if err != nil {
		return err
	}
	s.items = items
	return nil
}

// ToggleWishlist flips the product's wishlist membership and persists it
// immediately. Anonymous sessions get ErrAuthRequired with no persistence call.
func (s *Store) ToggleWishlist(ctx context.Context, productID uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.userID == "" || s.wishlist == nil {
		return ErrAuthRequired
	}
	if s.wished[productID] {
		if err := s.wishlist.Remove(ctx, s.userID, productID); err != nil {
			return err
		}
		delete(s.wished, productID)
		return nil
	}
	if err := s.wishlist.Add(ctx, s.userID, productID); err != nil {
		return err
	}
	s.wished[productID] = true
	return nil
}

// IsInWishlist is a pure membership query against the current in-memory set.
func (s *Store) IsInWishlist(productID uint) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.wished[productID]
}

// Items returns a copy of the current cart lines.
func (s *Store) Items() []models.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.CartItem, len(s.items))
	copy(out, s.items)
	return out
}

// Quantity returns the quantity currently in the cart for the given line,
// zero when absent. Stock checks use this as the already-held amount.
func (s *Store) Quantity(key LineKey) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, it := range s.items {
		if KeyOf(it) == key {
			return it.Quantity
		}
	}
	return 0
}

// Subtotal sums snapshot price times quantity over all lines.
func (s *Store) Subtotal() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	var total float64
	for _, it := range s.items {
		total += it.LineTotal()
	}
	return total
}
