package usecase

import "errors"

// Expected workflow outcomes. These surface to the adaptor as typed values so
// the client can re-prompt; they are never faults.
var (
	ErrCartNotFound   = errors.New("cart not found")
	ErrSeatNotInCart  = errors.New("seat not in cart")
	ErrMixedScreening = errors.New("cart already holds seats for a different screening")
	ErrEmptyCart      = errors.New("cart is empty")

	// ErrCheckoutFailed wraps a storage fault during commit. All seat and
	// sale writes have been rolled back; the cart's holds are intact.
	ErrCheckoutFailed = errors.New("checkout failed")
)
