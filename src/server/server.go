package server

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"mt-bridge/src/interfaces"
	"mt-bridge/src/logger"
	"mt-bridge/src/models"
	"mt-bridge/src/utils"

	"github.com/gin-gonic/gin"
)

const tickCacheCapacity = 1000

// -----------------------------------------------------------------------------
// StatusServer
// -----------------------------------------------------------------------------

// StatusServer exposes the bridge over HTTP: a small REST surface for health
// and subscription state, and a websocket feed mirroring the live ticks for
// browser consumers.
type StatusServer struct {
	Config   *models.MConfig
	Logger   *logger.Logger
	Broker   interfaces.IMarketDataBroker
	Sessions SessionCounter
	Cache    *utils.TickCache
	engine   *gin.Engine

	// WebSocket clients
	clients    map[*Client]struct{}
	broadcast  chan models.MTick
	register   chan *Client
	unregister chan *Client
	done       chan struct{}

	listenerID int
}

// SessionCounter reports how many RPC clients are connected.
type SessionCounter interface {
	Count() int
}

// -----------------------------------------------------------------------------
// Constructor
// -----------------------------------------------------------------------------

func NewStatusServer(cfg *models.MConfig, broker interfaces.IMarketDataBroker, sessions SessionCounter, log *logger.Logger) *StatusServer {
	// Set Gin mode
	if cfg.LogLevel != "DEBUG" {
		gin.SetMode(gin.ReleaseMode)
	}

	s := &StatusServer{
		Config:   cfg,
		Logger:   log,
		Broker:   broker,
		Sessions: sessions,
		Cache:    utils.NewTickCache(tickCacheCapacity),
		engine:   gin.Default(),
		clients:  make(map[*Client]struct{}),
		// Buffered channel to prevent lock/blocking
		broadcast:  make(chan models.MTick, 256),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		done:       make(chan struct{}),
	}

	// Add CORS Middleware
	s.engine.Use(func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if strings.HasPrefix(origin, "http://127.0.0.1:") {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		}
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	s.setupRoutes()
	return s
}

// -----------------------------------------------------------------------------
// Route Setup
// -----------------------------------------------------------------------------

func (s *StatusServer) setupRoutes() {
	s.engine.GET("/", s.getRoot)

	// REST API endpoints
	s.engine.GET("/api/health", s.getHealth)
	s.engine.GET("/api/symbols", s.getSymbols)
	s.engine.GET("/api/ticks/:symbol", s.getRecentTicks)
	s.engine.GET("/api/market-status", s.getMarketStatus)
	s.engine.GET("/api/config", s.getConfig)

	// WebSocket endpoint
	s.engine.GET("/ws", s.handleWebSocket)
}

// -----------------------------------------------------------------------------
// Server Lifecycle
// -----------------------------------------------------------------------------

func (s *StatusServer) Start() error {
	addr := fmt.Sprintf("%s:%d", s.Config.Host, s.Config.Port)
	s.Logger.Info("Starting status server on %s", addr)

	s.listenerID = s.Broker.AddTickListener(s.onTick)
	go s.runHub()

	return s.engine.Run(addr)
}

// -----------------------------------------------------------------------------

func (s *StatusServer) Stop() error {
	s.Broker.RemoveTickListener(s.listenerID)
	close(s.broadcast)
	return nil
}

// -----------------------------------------------------------------------------

func (s *StatusServer) onTick(tick models.MTick) {
	s.Cache.Add(tick)
	s.Broadcast(tick)
}

// -----------------------------------------------------------------------------
// Route Handlers
// -----------------------------------------------------------------------------

func (s *StatusServer) getRoot(c *gin.Context) {
	c.String(200, "%s is running", s.Config.Name)
}

// -----------------------------------------------------------------------------

func (s *StatusServer) getHealth(c *gin.Context) {
	c.JSON(200, gin.H{
		"status":         "ok",
		"grpc_clients":   s.Sessions.Count(),
		"ws_connections": len(s.clients),
		"active_symbols": len(s.Broker.ActiveSymbols()),
	})
}

// -----------------------------------------------------------------------------

func (s *StatusServer) getSymbols(c *gin.Context) {
	c.JSON(200, gin.H{
		"symbols": s.Broker.ActiveSymbols(),
	})
}

// -----------------------------------------------------------------------------

func (s *StatusServer) getRecentTicks(c *gin.Context) {
	symbol := c.Param("symbol")

	limit := 100
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			c.JSON(400, gin.H{"error": "limit must be a positive integer"})
			return
		}
		limit = parsed
	}

	ticks := s.Cache.Recent(symbol, limit)
	c.JSON(200, gin.H{
		"symbol": symbol,
		"count":  len(ticks),
		"ticks":  ticks,
	})
}

// -----------------------------------------------------------------------------

func (s *StatusServer) getMarketStatus(c *gin.Context) {
	symbol := c.Query("symbol")
	if symbol == "" {
		c.JSON(400, gin.H{"error": "symbol query parameter is required"})
		return
	}

	cal := utils.GetCalendar(symbol)
	c.JSON(200, gin.H{
		"symbol":   symbol,
		"venue":    cal.Venue,
		"timezone": cal.Timezone.String(),
		"is_open":  cal.IsOpen(time.Now()),
	})
}

// -----------------------------------------------------------------------------

func (s *StatusServer) getConfig(c *gin.Context) {
	c.JSON(200, gin.H{
		"name":      s.Config.Name,
		"grpc_port": s.Config.GrpcPort,
		"zmq": gin.H{
			"protocol":  s.Config.Zmq.Protocol,
			"host":      s.Config.Zmq.Host,
			"push_port": s.Config.Zmq.PushPort,
			"pull_port": s.Config.Zmq.PullPort,
			"sub_port":  s.Config.Zmq.SubPort,
			"use_mock":  s.Config.Zmq.UseMock,
		},
	})
}
