package inventory

import "errors"

var (
	// ErrItemNotFound means no row carries the requested item name.
	ErrItemNotFound = errors.New("inventory: item not found")

	// ErrNegativeStock rejects an adjustment that would take stock below zero.
	// The store is left untouched.
	ErrNegativeStock = errors.New("inventory: stock would go negative")

	// ErrTimestampStale means the stock cell was updated but the last-updated
	// cell was not. Stock is correct; only the timestamp is stale.
	ErrTimestampStale = errors.New("inventory: stock updated but timestamp stale")
)
