package usecase

import (
	"context"
	"testing"

	"cinema-pos/internal/data/entity"
	"cinema-pos/internal/data/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type checkoutFixture struct {
	db       *fakeDB
	carts    *CartStore
	cart     CartService
	checkout CheckoutService
	seats    *fakeSeatRepo
	sales    *fakeSaleRepo
	config   *fakeConfigRepo

	screeningID uuid.UUID
}

func newCheckoutFixture(t *testing.T) *checkoutFixture {
	t.Helper()

	seats := newFakeSeatRepo()
	sales := &fakeSaleRepo{}
	config := &fakeConfigRepo{
		pricing: testPricingConfig(),
		taxRate: decimal.RequireFromString("0.08"),
	}
	repo := &repository.Repository{Seat: seats, Sale: sales, Config: config}

	screeningID := uuid.New()
	for _, seatNumber := range []string{"A1", "A2", "A3"} {
		seats.addSeat(screeningID, seatNumber)
	}

	db := &fakeDB{}
	carts := NewCartStore()
	log := testLogger()

	return &checkoutFixture{
		db:          db,
		carts:       carts,
		cart:        NewCartService(carts, repo, 0, log),
		checkout:    NewCheckoutService(db, repo, carts, 0, log),
		seats:       seats,
		sales:       sales,
		config:      config,
		screeningID: screeningID,
	}
}

func (f *checkoutFixture) filledCart(t *testing.T) string {
	t.Helper()
	ctx := context.Background()

	cart := f.cart.Create(ctx)
	_, err := f.cart.AddSeat(ctx, cart.ID, addSeatReq(f.screeningID, "A1", "standard"))
	require.NoError(t, err)
	_, err = f.cart.AddSeat(ctx, cart.ID, addSeatReq(f.screeningID, "A2", "senior"))
	require.NoError(t, err)
	return cart.ID
}

func TestCheckoutService_Checkout(t *testing.T) {
	f := newCheckoutFixture(t)
	ctx := context.Background()
	cartID := f.filledCart(t)

	sale, err := f.checkout.Checkout(ctx, cartID)
	require.NoError(t, err)

	// 100.00 standard + 80.00 senior, taxed at 8%.
	assert.Equal(t, "180.00", sale.TotalAmount)
	assert.Equal(t, "14.40", sale.TaxAmount)
	assert.Equal(t, f.screeningID.String(), sale.ScreeningID)
	assert.ElementsMatch(t, []string{"A1", "A2"}, sale.SeatNumbers)
	assert.NotEmpty(t, sale.SaleNumber)

	assert.True(t, f.db.tx.committed)
	assert.Equal(t, entity.SeatStatusSold, f.seats.status(f.screeningID, "A1"))
	assert.Equal(t, entity.SeatStatusSold, f.seats.status(f.screeningID, "A2"))
	require.Len(t, f.sales.sales, 1)

	// The cart is gone once paid.
	_, err = f.cart.Get(ctx, cartID)
	assert.ErrorIs(t, err, ErrCartNotFound)

	// Sold is terminal: nobody can hold these seats again.
	next := f.cart.Create(ctx)
	_, err = f.cart.AddSeat(ctx, next.ID, addSeatReq(f.screeningID, "A1", "standard"))
	assert.ErrorIs(t, err, repository.ErrSeatAlreadySold)
}

func TestCheckoutService_Checkout_EmptyCart(t *testing.T) {
	f := newCheckoutFixture(t)
	ctx := context.Background()

	cart := f.cart.Create(ctx)
	_, err := f.checkout.Checkout(ctx, cart.ID)
	assert.ErrorIs(t, err, ErrEmptyCart)

	// Still usable afterwards.
	_, err = f.cart.AddSeat(ctx, cart.ID, addSeatReq(f.screeningID, "A1", "standard"))
	assert.NoError(t, err)
}

func TestCheckoutService_Checkout_SaleWriteFailureRollsBack(t *testing.T) {
	f := newCheckoutFixture(t)
	ctx := context.Background()
	cartID := f.filledCart(t)

	f.sales.createErr = assert.AnError

	_, err := f.checkout.Checkout(ctx, cartID)
	require.ErrorIs(t, err, ErrCheckoutFailed)
	assert.True(t, f.db.tx.rolledBack)

	// Holds survive the failed attempt and the cart can retry.
	got, err := f.cart.Get(ctx, cartID)
	require.NoError(t, err)
	assert.Len(t, got.Lines, 2)
	assert.Equal(t, entity.SeatStatusReserved, f.seats.status(f.screeningID, "A1"))

	f.sales.createErr = nil
	sale, err := f.checkout.Checkout(ctx, cartID)
	require.NoError(t, err)
	assert.Equal(t, "180.00", sale.TotalAmount)
}

func TestCheckoutService_Checkout_SeatCommitFailureRollsBack(t *testing.T) {
	f := newCheckoutFixture(t)
	ctx := context.Background()
	cartID := f.filledCart(t)

	f.seats.commitErr = assert.AnError

	_, err := f.checkout.Checkout(ctx, cartID)
	require.ErrorIs(t, err, ErrCheckoutFailed)
	assert.True(t, f.db.tx.rolledBack)
	assert.Empty(t, f.sales.sales)
}

func TestCheckoutService_Checkout_BeginFailure(t *testing.T) {
	f := newCheckoutFixture(t)
	ctx := context.Background()
	cartID := f.filledCart(t)

	f.db.beginErr = assert.AnError

	_, err := f.checkout.Checkout(ctx, cartID)
	require.ErrorIs(t, err, ErrCheckoutFailed)
	assert.Equal(t, 0, f.seats.commitCnt)
}

func TestCheckoutService_RevenueSummary(t *testing.T) {
	f := newCheckoutFixture(t)
	ctx := context.Background()

	summary, err := f.checkout.RevenueSummary(ctx)
	require.NoError(t, err)
	assert.Equal(t, "0.00", summary.TotalRevenue)
	assert.Equal(t, "0.00", summary.TotalTax)

	cartID := f.filledCart(t)
	_, err = f.checkout.Checkout(ctx, cartID)
	require.NoError(t, err)

	summary, err = f.checkout.RevenueSummary(ctx)
	require.NoError(t, err)
	assert.Equal(t, "180.00", summary.TotalRevenue)
	assert.Equal(t, "14.40", summary.TotalTax)
}
