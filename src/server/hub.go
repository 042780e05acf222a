package server

import (
	"encoding/json"
	"net/http"

	"mt-bridge/src/models"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// -----------------------------------------------------------------------------
// Hub Pattern Implementation
// -----------------------------------------------------------------------------

// runHub is the main Hub loop
func (s *StatusServer) runHub() {
	for {
		select {
		case client := <-s.register:
			s.clients[client] = struct{}{}

		case client := <-s.unregister:
			if _, ok := s.clients[client]; ok {
				delete(s.clients, client)
				close(client.send)
			}

		case tick, ok := <-s.broadcast:
			if !ok {
				// Server shutting down. Closing done releases any pump still
				// waiting on register/unregister.
				for client := range s.clients {
					delete(s.clients, client)
					close(client.send)
				}
				close(s.done)
				return
			}

			for client := range s.clients {
				if !client.wants(tick.Symbol) {
					continue
				}
				select {
				case client.send <- tick:
					// Message sent successfully
				default:
					// Client too slow, disconnect to prevent Hub blocking
					delete(s.clients, client)
					close(client.send)
				}
			}
		}
	}
}

// -----------------------------------------------------------------------------

// Broadcast queues a tick for fan-out to websocket clients. Drops the tick
// when the hub queue is full so the publishing path never blocks here.
func (s *StatusServer) Broadcast(tick models.MTick) {
	select {
	case s.broadcast <- tick:
	default:
	}
}

// -----------------------------------------------------------------------------
// WebSocket Handlers
// -----------------------------------------------------------------------------

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// -----------------------------------------------------------------------------

func (s *StatusServer) handleWebSocket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		s.Logger.Info("Failed to upgrade websocket: %v", err)
		return
	}

	client := &Client{
		hub:  s,
		conn: conn,
		// Buffered channel to prevent blocking the Hub loop
		send: make(chan interface{}, 256),
	}

	select {
	case s.register <- client:
	case <-s.done:
		conn.Close()
		return
	}

	// Start goroutines for reading/writing
	go client.writePump()
	go client.readPump()
}

// -----------------------------------------------------------------------------

// dropClient hands a client back to the hub, or gives up when the hub has
// already shut down (the shutdown path closes every client itself).
func (s *StatusServer) dropClient(client *Client) {
	select {
	case s.unregister <- client:
	case <-s.done:
	}
}

// -----------------------------------------------------------------------------
// Client Message Handling
// -----------------------------------------------------------------------------

// HandleClientMessage applies a client's symbol filter. An empty symbol list
// means the client receives every tick.
func (s *StatusServer) HandleClientMessage(client *Client, message []byte) {
	var cmd models.MSubscribeCommand
	if err := json.Unmarshal(message, &cmd); err != nil {
		s.Logger.Info("Failed to parse client command: %v, disconnecting client", err)
		client.conn.Close()
		return
	}

	if cmd.Command != "subscribe" {
		return
	}

	client.setFilter(cmd.Symbols)
}
