package interfaces

import (
	"context"

	"mt-bridge/src/models"
)

// -----------------------------------------------------------------------------
// IMarketDataBroker defines the contract the RPC edge depends on: symbol
// subscription round-trips against the terminal plus tick fan-out.
// -----------------------------------------------------------------------------

type IMarketDataBroker interface {

	// -----------------------------------------------------------------------------

	// SubscribeToSymbols performs the TRACK_PRICES round-trip for the full
	// requested set and returns the successful/failed partition. Serialized
	// process-wide: only one command round-trip is in flight at a time.
	SubscribeToSymbols(ctx context.Context, symbols []string) (models.MSubscriptionResult, error)

	// -----------------------------------------------------------------------------

	// UnsubscribeFromSymbols drops interest in the given symbols and re-issues
	// the tracking command with the remaining active set. Fire-and-forget.
	UnsubscribeFromSymbols(symbols []string)

	// -----------------------------------------------------------------------------

	// AddTickListener registers a callback for every parsed tick.
	// Returns a registration id for RemoveTickListener.
	AddTickListener(listener func(models.MTick)) int

	// -----------------------------------------------------------------------------

	// RemoveTickListener removes a previously registered listener.
	RemoveTickListener(id int)

	// -----------------------------------------------------------------------------

	// ActiveSymbols returns the snapshot of symbols currently tracked upstream.
	ActiveSymbols() []string
}
