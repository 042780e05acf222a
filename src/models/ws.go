package models

// MSubscribeCommand is the message a websocket client sends to narrow its
// tick feed to a set of symbols.
type MSubscribeCommand struct {
	Command string   `json:"command"`
	Symbols []string `json:"symbols"`
}
