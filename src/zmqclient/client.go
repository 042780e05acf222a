package zmqclient

import (
	"context"
	"fmt"
	"sync"
	"time"

	"mt-bridge/src/config"
	"mt-bridge/src/helpers"
	"mt-bridge/src/logger"

	"github.com/go-zeromq/zmq4"
)

const (
	dialRetries   = 3
	dialBaseDelay = 500 * time.Millisecond
)

// -----------------------------------------------------------------------------
// Client
// -----------------------------------------------------------------------------

// Client is the real terminal transport: a PUSH socket for outbound commands,
// a PULL socket for command replies and a SUB socket for tick topics.
type Client struct {
	Logger *logger.Logger

	push zmq4.Socket
	pull zmq4.Socket
	sub  zmq4.Socket

	replyHandler func(string)
	tickHandler  func(string)

	mu          sync.Mutex
	listenerCtx context.Context
	cancel      context.CancelFunc
	wg          sync.WaitGroup
}

// -----------------------------------------------------------------------------

// NewClient connects the three terminal sockets.
func NewClient(cfg *config.Config, log *logger.Logger) (*Client, error) {
	c := &Client{
		Logger: log,
		push:   zmq4.NewPush(context.Background()),
		pull:   zmq4.NewPull(context.Background()),
		sub:    zmq4.NewSub(context.Background()),
	}

	if err := helpers.RetryWithBackoff(log, "PUSH socket connect", dialRetries, dialBaseDelay, func() error {
		return c.push.Dial(cfg.PushEndpoint())
	}); err != nil {
		return nil, fmt.Errorf("failed to connect PUSH socket: %w", err)
	}
	log.Info("Connected to PUSH socket at %s", cfg.PushEndpoint())

	if err := helpers.RetryWithBackoff(log, "PULL socket connect", dialRetries, dialBaseDelay, func() error {
		return c.pull.Dial(cfg.PullEndpoint())
	}); err != nil {
		return nil, fmt.Errorf("failed to connect PULL socket: %w", err)
	}
	log.Info("Connected to PULL socket at %s", cfg.PullEndpoint())

	if err := helpers.RetryWithBackoff(log, "SUB socket connect", dialRetries, dialBaseDelay, func() error {
		return c.sub.Dial(cfg.SubEndpoint())
	}); err != nil {
		return nil, fmt.Errorf("failed to connect SUB socket: %w", err)
	}
	log.Info("Connected to SUB socket at %s", cfg.SubEndpoint())

	return c, nil
}

// -----------------------------------------------------------------------------

func (c *Client) SendCommand(command string) error {
	if err := c.push.Send(zmq4.NewMsgString(command)); err != nil {
		return fmt.Errorf("failed to send command: %w", err)
	}
	c.Logger.Debug("Sent command: %s", command)
	return nil
}

// -----------------------------------------------------------------------------

func (c *Client) SubscribeTopic(topic string) error {
	if err := c.sub.SetOption(zmq4.OptionSubscribe, topic); err != nil {
		return fmt.Errorf("failed to subscribe topic %s: %w", topic, err)
	}
	c.Logger.Info("Subscribed to topic: %s", topic)
	return nil
}

// -----------------------------------------------------------------------------

func (c *Client) UnsubscribeTopic(topic string) error {
	if err := c.sub.SetOption(zmq4.OptionUnsubscribe, topic); err != nil {
		return fmt.Errorf("failed to unsubscribe topic %s: %w", topic, err)
	}
	c.Logger.Info("Unsubscribed from topic: %s", topic)
	return nil
}

// -----------------------------------------------------------------------------

func (c *Client) OnReply(handler func(string)) {
	c.replyHandler = handler
}

func (c *Client) OnTick(handler func(string)) {
	c.tickHandler = handler
}

// -----------------------------------------------------------------------------

// StartListening spawns the PULL and SUB receive loops.
func (c *Client) StartListening(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.listenerCtx != nil {
		c.Logger.Warning("ZMQ listener is already running")
		return nil
	}

	listenerCtx, cancel := context.WithCancel(ctx)
	c.listenerCtx = listenerCtx
	c.cancel = cancel

	c.wg.Add(2)
	go c.receiveLoop(listenerCtx, c.pull, "PULL", func(msg string) {
		if c.replyHandler != nil {
			c.replyHandler(msg)
		}
	})
	go c.receiveLoop(listenerCtx, c.sub, "SUB", func(msg string) {
		if c.tickHandler != nil {
			c.tickHandler(msg)
		}
	})

	c.Logger.Info("Started ZMQ listener")
	return nil
}

// -----------------------------------------------------------------------------

func (c *Client) receiveLoop(ctx context.Context, sock zmq4.Socket, name string, deliver func(string)) {
	defer c.wg.Done()

	for {
		msg, err := sock.Recv()
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			// Recv also fails when the socket is closed during shutdown.
			c.Logger.Warning("%s receive loop stopped: %v", name, err)
			return
		}

		if len(msg.Frames) == 0 {
			continue
		}
		text := string(msg.Frames[0])
		if text == "" {
			continue
		}

		c.Logger.Debug("Received %s message: %s", name, text)
		deliver(text)
	}
}

// -----------------------------------------------------------------------------

func (c *Client) StopListening() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
		c.listenerCtx = nil
	}

	c.Logger.Info("Stopped ZMQ listener")
	return nil
}

// -----------------------------------------------------------------------------

func (c *Client) IsListening() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.listenerCtx != nil && c.listenerCtx.Err() == nil
}

// -----------------------------------------------------------------------------

// Close stops the listener and releases the sockets. Closing the sockets
// unblocks any receive loop still waiting in Recv.
func (c *Client) Close() error {
	c.StopListening()

	var firstErr error
	for _, sock := range []zmq4.Socket{c.push, c.pull, c.sub} {
		if err := sock.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}

	c.wg.Wait()

	c.Logger.Info("ZMQ client closed")
	return firstErr
}
