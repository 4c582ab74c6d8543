package services

import (
	"context"
	"encoding/base64"
	"errors"
	"log"
	"strings"
	"sync"

	"github.com/olowojude/Food-Flex/external/foodflex"
	"github.com/olowojude/Food-Flex/internal/model"
)

var (
	// ErrCheckoutInFlight guards against duplicate submission; the backend
	// is not assumed to deduplicate checkout calls.
	ErrCheckoutInFlight = errors.New("checkout already in progress")

	// ErrConfirmationGone means the one-shot confirmation was consumed and
	// the durable order lookup failed too. Callers redirect to order
	// history instead of erroring.
	ErrConfirmationGone = errors.New("order confirmation not available")
)

// Confirmation is the checkout handoff artifact: the created order plus its
// pickup QR code. It lives in a single-use envelope until the confirmation
// view collects it.
type Confirmation struct {
	Order        model.Order
	QRCodeBase64 string
}

// QRCodePNG decodes the QR artifact to raw PNG bytes for download.
func (c *Confirmation) QRCodePNG() ([]byte, error) {
	data := c.QRCodeBase64
	if i := strings.Index(data, ","); i >= 0 && strings.HasPrefix(data, "data:") {
		data = data[i+1:]
	}
	return base64.StdEncoding.DecodeString(data)
}

// CheckoutService orchestrates the reviewing-cart -> submit -> confirmation
// transition. The client-side credit gate is advisory; the backend
// re-validates credit and stock at submission time.
type CheckoutService struct {
	API  *foodflex.Client
	Cart *CartService

	mu       sync.Mutex
	inFlight bool
	envelope *Confirmation
}

func NewCheckoutService(api *foodflex.Client, cart *CartService) *CheckoutService {
	return &CheckoutService{API: api, Cart: cart}
}

// CreditAccount reads the buyer's current credit standing.
func (s *CheckoutService) CreditAccount(ctx context.Context) (*model.CreditAccount, error) {
	return s.API.CreditAccount(ctx)
}

// CanSubmit decides whether the submit control is enabled: cart non-empty
// and available credit covering the subtotal. The reason string is what the
// UI shows next to the disabled control.
func (s *CheckoutService) CanSubmit(cart *model.Cart, acct *model.CreditAccount) (bool, string) {
	if cart.IsEmpty() {
		return false, "cart is empty"
	}
	if !acct.CanCover(cart.Subtotal) {
		return false, "insufficient credit"
	}
	return true, ""
}

// Submit places the order. At most one submission runs at a time; a failure
// leaves the cart snapshot untouched so the user can retry, and the server's
// rejection surfaces verbatim.
func (s *CheckoutService) Submit(ctx context.Context) (*Confirmation, error) {
	s.mu.Lock()
	if s.inFlight {
		s.mu.Unlock()
		return nil, ErrCheckoutInFlight
	}
	s.inFlight = true
	s.mu.Unlock()
	defer func() {
		s.mu.Lock()
		s.inFlight = false
		s.mu.Unlock()
	}()

	resp, err := s.API.Checkout(ctx)
	if err != nil {
		return nil, err
	}

	conf := &Confirmation{Order: resp.Order, QRCodeBase64: resp.QRCodeBase64}
	s.mu.Lock()
	s.envelope = conf
	s.mu.Unlock()

	// The backend cleared the cart during checkout; converge on its truth.
	if _, err := s.Cart.Fetch(ctx); err != nil {
		log.Printf("cart refetch after checkout failed: %v", err)
	}
	return conf, nil
}

// Take pops the parked confirmation exactly once. An orderNumber narrows
// the match so a stale envelope is never handed to the wrong view.
func (s *CheckoutService) Take(orderNumber string) *Confirmation {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.envelope == nil {
		return nil
	}
	if orderNumber != "" && s.envelope.Order.OrderNumber != orderNumber {
		return nil
	}
	conf := s.envelope
	s.envelope = nil
	return conf
}

// Resume rebuilds the confirmation view's data: first from the one-shot
// envelope, then by durable lookup of the already-created order. Checkout
// itself is never replayed.
func (s *CheckoutService) Resume(ctx context.Context, orderNumber string) (*Confirmation, error) {
	if conf := s.Take(orderNumber); conf != nil {
		return conf, nil
	}
	if orderNumber == "" {
		return nil, ErrConfirmationGone
	}

	page, err := s.API.Orders(ctx, foodflex.OrderQuery{})
	if err != nil {
		return nil, err
	}
	for _, sum := range page.Results {
		if sum.OrderNumber != orderNumber {
			continue
		}
		order, err := s.API.Order(ctx, sum.ID)
		if err != nil {
			return nil, err
		}
		return &Confirmation{Order: *order, QRCodeBase64: order.QRCodeImage}, nil
	}
	return nil, ErrConfirmationGone
}
