package models

import "time"

// MTick represents one bid/ask price update for a symbol.
type MTick struct {
	Symbol    string    `json:"symbol"`
	Bid       float64   `json:"bid"`
	Ask       float64   `json:"ask"`
	Timestamp time.Time `json:"timestamp"`
}
