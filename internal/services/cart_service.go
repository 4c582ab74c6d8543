package services

import (
	"context"
	"errors"
	"sync"

	"github.com/olowojude/Food-Flex/external/foodflex"
	"github.com/olowojude/Food-Flex/internal/model"
)

var (
	// ErrQuantityFloor rejects decrements below 1 locally, without a
	// network call. Removal is a distinct operation.
	ErrQuantityFloor = errors.New("quantity must be at least 1")

	// ErrLineBusy means a mutation for the same cart line is still in
	// flight. Finishing it first avoids out-of-order overwrites.
	ErrLineBusy = errors.New("cart line update already in flight")
)

// CartService mirrors the server-side cart. Local state is only ever
// replaced wholesale by a server snapshot, never patched, so a failed
// mutation leaves the previous snapshot intact.
type CartService struct {
	API *foodflex.Client

	mu       sync.Mutex
	snapshot *model.Cart
	busy     map[int64]struct{} // cart line ids with a mutation in flight
}

func NewCartService(api *foodflex.Client) *CartService {
	return &CartService{API: api, busy: make(map[int64]struct{})}
}

// Fetch replaces local state with server truth. Called on activation and
// after any mutation whose response carries no fresh snapshot.
func (s *CartService) Fetch(ctx context.Context) (*model.Cart, error) {
	cart, err := s.API.Cart(ctx)
	if err != nil {
		return nil, err
	}
	return s.replace(cart)
}

// Add puts quantity units of a product in the cart. Stock is validated
// server-side; the server's rejection reason surfaces verbatim.
func (s *CartService) Add(ctx context.Context, productID int64, quantity int) (*model.Cart, error) {
	if quantity < 1 {
		quantity = 1
	}
	cart, err := s.API.AddToCart(ctx, productID, quantity)
	if err != nil {
		return nil, err
	}
	return s.replace(cart)
}

// UpdateQuantity sets a line's quantity. Only the lower bound is enforced
// here; the upper bound belongs to the server at checkout time.
func (s *CartService) UpdateQuantity(ctx context.Context, itemID int64, quantity int) (*model.Cart, error) {
	if quantity < 1 {
		return nil, ErrQuantityFloor
	}
	if err := s.beginLine(itemID); err != nil {
		return nil, err
	}
	defer s.endLine(itemID)

	cart, err := s.API.UpdateCartItem(ctx, itemID, quantity)
	if err != nil {
		return nil, err
	}
	return s.replace(cart)
}

// Remove deletes a line. Removing a line the server no longer has counts
// as success; the snapshot is re-fetched to converge.
func (s *CartService) Remove(ctx context.Context, itemID int64) (*model.Cart, error) {
	if err := s.beginLine(itemID); err != nil {
		return nil, err
	}
	defer s.endLine(itemID)

	cart, err := s.API.RemoveCartItem(ctx, itemID)
	if err != nil {
		if foodflex.IsNotFound(err) {
			return s.Fetch(ctx)
		}
		return nil, err
	}
	return s.replace(cart)
}

// Clear empties the cart. Clearing an already-empty or missing cart counts
// as success.
func (s *CartService) Clear(ctx context.Context) (*model.Cart, error) {
	if err := s.API.ClearCart(ctx); err != nil && !foodflex.IsNotFound(err) {
		return nil, err
	}
	return s.Fetch(ctx)
}

// Snapshot returns the last accepted server snapshot, nil before the first
// fetch or after Reset.
func (s *CartService) Snapshot() *model.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot
}

// Updating reports whether a mutation for the line is in flight; callers
// disable the triggering control while it is.
func (s *CartService) Updating(itemID int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.busy[itemID]
	return ok
}

// CanIncrement is the soft UI bound against last-known stock. Advisory
// only: the authoritative check is server-side.
func (s *CartService) CanIncrement(itemID int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	item := s.snapshot.Item(itemID)
	return item != nil && item.Quantity < item.Product.StockQuantity
}

// Reset drops local state on logout.
func (s *CartService) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot = nil
}

func (s *CartService) replace(cart *model.Cart) (*model.Cart, error) {
	if err := cart.Validate(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	s.snapshot = cart
	s.mu.Unlock()
	return cart, nil
}

func (s *CartService) beginLine(itemID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.busy[itemID]; ok {
		return ErrLineBusy
	}
	s.busy[itemID] = struct{}{}
	return nil
}

func (s *CartService) endLine(itemID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.busy, itemID)
}
