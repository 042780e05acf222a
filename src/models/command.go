package models

import "encoding/json"

// -----------------------------------------------------------------------------
// Terminal Command Reply Structures
// -----------------------------------------------------------------------------

// MCommandReply is the envelope the terminal sends back on the PULL channel.
// The terminal emits single-quoted pseudo-JSON; the quotes are normalized
// before this is unmarshalled.
type MCommandReply struct {
	Action string          `json:"_action"`
	Data   json.RawMessage `json:"_data"`
}

// -----------------------------------------------------------------------------

// MTrackPricesReply is the _data payload of a TRACK_PRICES reply.
type MTrackPricesReply struct {
	SymbolCount  int      `json:"symbol_count"`
	ErrorSymbols []string `json:"error_symbols"`
}
