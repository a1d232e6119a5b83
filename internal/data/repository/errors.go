package repository

import "errors"

// Expected storage outcomes. Callers branch on these with errors.Is; anything
// else coming out of a repository is a storage fault.
var (
	// ErrSeatAlreadySold reports that a seat reservation lost the race: the
	// seat is reserved by another cart or permanently sold.
	ErrSeatAlreadySold = errors.New("seat already sold or held")

	// ErrSeatNotFound reports an unknown screening/seat-number pair.
	ErrSeatNotFound = errors.New("seat not found")

	// ErrConfigKeyMissing reports that a pricing configuration row does not
	// exist, which would make a partial update undetectable.
	ErrConfigKeyMissing = errors.New("config key missing")
)
