package interfaces

import "context"

// -----------------------------------------------------------------------------
// ITerminalClient defines the contract for the trading terminal transport
// (PUSH for commands, PULL for command replies, SUB for tick topics).
// -----------------------------------------------------------------------------

type ITerminalClient interface {

	// -----------------------------------------------------------------------------

	// SendCommand pushes a raw command line to the terminal.
	SendCommand(command string) error

	// -----------------------------------------------------------------------------

	// SubscribeTopic starts receiving tick messages for a symbol topic.
	SubscribeTopic(topic string) error

	// -----------------------------------------------------------------------------

	// UnsubscribeTopic stops receiving tick messages for a symbol topic.
	UnsubscribeTopic(topic string) error

	// -----------------------------------------------------------------------------

	// OnReply registers the handler invoked for every message received on the
	// command-reply channel. Must be called before StartListening.
	OnReply(handler func(message string))

	// -----------------------------------------------------------------------------

	// OnTick registers the handler invoked for every raw tick message.
	// Must be called before StartListening.
	OnTick(handler func(message string))

	// -----------------------------------------------------------------------------

	// StartListening begins the receive loops.
	// ctx: controls the lifecycle (cancellation stops the listener)
	StartListening(ctx context.Context) error

	// -----------------------------------------------------------------------------

	// StopListening terminates the receive loops (legacy/manual stop).
	// Ideally, cancelling the context passed to StartListening should be enough.
	StopListening() error

	// -----------------------------------------------------------------------------

	// IsListening reports whether the receive loops are running.
	IsListening() bool

	// -----------------------------------------------------------------------------

	// Close releases the underlying sockets.
	Close() error
}
