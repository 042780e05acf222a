package broker

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"mt-bridge/src/models"
)

// -----------------------------------------------------------------------------
// Terminal Wire Format
// -----------------------------------------------------------------------------

const (
	// TrackPricesAction is the command verb and the reply tag the terminal
	// echoes back on the PULL channel.
	TrackPricesAction = "TRACK_PRICES"

	// mainDelimiter splits a tick message into symbol and payload.
	mainDelimiter = ":|:"

	// dataDelimiter splits the tick payload into bid and ask.
	dataDelimiter = ";"
)

// -----------------------------------------------------------------------------

// BuildTrackPricesCommand renders the tracking command for the given symbol
// list. An empty list yields the bare form, which the terminal interprets as
// "track nothing".
func BuildTrackPricesCommand(symbols []string) string {
	if len(symbols) == 0 {
		return TrackPricesAction
	}
	return TrackPricesAction + ";" + strings.Join(symbols, ";")
}

// -----------------------------------------------------------------------------

// ParseCommandReply interprets a raw PULL message as a TRACK_PRICES reply.
// The terminal emits single-quoted pseudo-JSON, so quotes are normalized
// first. Returns ok=false for messages that are not a TRACK_PRICES reply;
// a non-nil error means the message looked like a reply but its payload was
// unusable.
func ParseCommandReply(raw string) (models.MTrackPricesReply, bool, error) {
	validJSON := strings.ReplaceAll(raw, "'", `"`)

	var envelope models.MCommandReply
	if err := json.Unmarshal([]byte(validJSON), &envelope); err != nil {
		return models.MTrackPricesReply{}, false, nil
	}
	if envelope.Action != TrackPricesAction {
		return models.MTrackPricesReply{}, false, nil
	}

	if len(envelope.Data) == 0 {
		return models.MTrackPricesReply{}, true, fmt.Errorf("%s reply missing _data field", TrackPricesAction)
	}

	var reply models.MTrackPricesReply
	if err := json.Unmarshal(envelope.Data, &reply); err != nil {
		return models.MTrackPricesReply{}, true, fmt.Errorf("failed to parse %s reply data: %w", TrackPricesAction, err)
	}

	return reply, true, nil
}

// -----------------------------------------------------------------------------

// ParseTickMessage parses a raw SUB message of the form
// "<symbol>:|:<bid>;<ask>". Any deviation is an error.
func ParseTickMessage(raw string) (symbol string, bid, ask float64, err error) {
	parts := strings.Split(raw, mainDelimiter)
	if len(parts) != 2 {
		return "", 0, 0, fmt.Errorf("invalid message format: %q", raw)
	}

	symbol = parts[0]
	dataParts := strings.Split(parts[1], dataDelimiter)
	if len(dataParts) != 2 {
		return "", 0, 0, fmt.Errorf("unexpected data format for %s: %q", symbol, parts[1])
	}

	bid, err = strconv.ParseFloat(dataParts[0], 64)
	if err != nil {
		return "", 0, 0, fmt.Errorf("failed to parse bid from %q: %w", raw, err)
	}
	ask, err = strconv.ParseFloat(dataParts[1], 64)
	if err != nil {
		return "", 0, 0, fmt.Errorf("failed to parse ask from %q: %w", raw, err)
	}

	return symbol, bid, ask, nil
}
