package usecase

import (
	"fmt"
	"sync"

	"cinema-pos/internal/data/entity"
	"cinema-pos/internal/dto/response"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CartLine is one tentatively held seat with its price at the time of adding.
type CartLine struct {
	SeatNumber string
	Category   entity.PatronCategory
	Price      decimal.Decimal
}

// Cart accumulates a cashier's selections for one transaction. A cart belongs
// to a single session; the first added seat pins it to a screening. Its seat
// holds live in the seat map, so the cart itself needs no locking.
type Cart struct {
	ID          uuid.UUID
	ScreeningID uuid.UUID
	Lines       []CartLine
}

// Total is the exact sum of line prices. Lines are already rounded to the
// smallest currency unit, so the sum never drifts.
func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, line := range c.Lines {
		total = total.Add(line.Price)
	}
	return total
}

func (c *Cart) seatNumbers() []string {
	numbers := make([]string, len(c.Lines))
	for i, line := range c.Lines {
		numbers[i] = line.SeatNumber
	}
	return numbers
}

func (c *Cart) lineIndex(seatNumber string) int {
	for i, line := range c.Lines {
		if line.SeatNumber == seatNumber {
			return i
		}
	}
	return -1
}

func (c *Cart) toResponse() *response.CartResponse {
	lines := make([]response.CartLineResponse, len(c.Lines))
	for i, line := range c.Lines {
		lines[i] = response.CartLineResponse{
			SeatNumber: line.SeatNumber,
			Category:   string(line.Category),
			Price:      line.Price.StringFixed(2),
		}
	}

	resp := &response.CartResponse{
		ID:    c.ID.String(),
		Lines: lines,
		Total: c.Total().StringFixed(2),
	}
	if c.ScreeningID != uuid.Nil {
		resp.ScreeningID = c.ScreeningID.String()
	}
	return resp
}

// CartStore is the registry of live carts. Sessions only ever touch their own
// cart; the mutex guards the map, not the carts.
type CartStore struct {
	mu    sync.Mutex
	carts map[uuid.UUID]*Cart
}

func NewCartStore() *CartStore {
	return &CartStore{carts: make(map[uuid.UUID]*Cart)}
}

func (s *CartStore) Create() *Cart {
	cart := &Cart{ID: uuid.New()}

	s.mu.Lock()
	s.carts[cart.ID] = cart
	s.mu.Unlock()

	return cart
}

func (s *CartStore) Get(id uuid.UUID) (*Cart, bool) {
	s.mu.Lock()
	cart, ok := s.carts[id]
	s.mu.Unlock()
	return cart, ok
}

func (s *CartStore) Delete(id uuid.UUID) {
	s.mu.Lock()
	delete(s.carts, id)
	s.mu.Unlock()
}

// find resolves a client-supplied cart ID to a live cart.
func (s *CartStore) find(cartID string) (*Cart, error) {
	id, err := uuid.Parse(cartID)
	if err != nil {
		return nil, fmt.Errorf("invalid cart ID format %s: %w", cartID, err)
	}

	cart, ok := s.Get(id)
	if !ok {
		return nil, fmt.Errorf("cart %s: %w", cartID, ErrCartNotFound)
	}
	return cart, nil
}
