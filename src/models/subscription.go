package models

// -----------------------------------------------------------------------------
// Subscription Result Structure
// -----------------------------------------------------------------------------

// MSubscriptionResult partitions a requested symbol set after a subscribe
// round-trip. SuccessfulSymbols and FailedSymbols never overlap.
type MSubscriptionResult struct {
	SuccessfulSymbols []string `json:"successful_symbols"`
	FailedSymbols     []string `json:"failed_symbols"`
}

// -----------------------------------------------------------------------------

// AllFailed builds the result used when the whole round-trip failed
// (timeout or unparseable reply).
func AllFailed(requested []string) MSubscriptionResult {
	return MSubscriptionResult{
		SuccessfulSymbols: []string{},
		FailedSymbols:     append([]string{}, requested...),
	}
}
