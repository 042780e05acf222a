package main

import (
	"context"
	"flag"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	brokerpkg "mt-bridge/src/broker"
	"mt-bridge/src/config"
	"mt-bridge/src/grpc_market"
	"mt-bridge/src/interfaces"
	"mt-bridge/src/logger"
	"mt-bridge/src/server"
	"mt-bridge/src/storage"
	"mt-bridge/src/subscription"
	"mt-bridge/src/zmqclient"

	"google.golang.org/grpc"
)

// -----------------------------------------------------------------------------

func main() {

	// Parse command line flags
	configPath := flag.String("config", "../../config/default.yaml", "path to config file")
	flag.Parse()

	// Load config from YAML file
	cfg, err := config.NewConfig(*configPath)
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Setup logger
	appLogger := logger.NewLogger(cfg.LogLevel, cfg.Name)

	// 1. Terminal transport (real ZeroMQ sockets, or the in-process mock)
	var client interfaces.ITerminalClient
	if cfg.Zmq.UseMock {
		appLogger.Warning("Running against the mock terminal, no real trading terminal is involved")
		client = zmqclient.NewMockClient(appLogger.Named("MockTerminal"))
	} else {
		client, err = zmqclient.NewClient(cfg, appLogger.Named("ZmqClient"))
		if err != nil {
			appLogger.Critical("Failed to connect to terminal: %v", err)
		}
	}

	// 2. Core components
	symbols := subscription.NewSymbolRegistry(appLogger.Named("Symbols"))
	sessions := subscription.NewSessionRegistry(cfg.Broker.QueueCapacity, appLogger.Named("Sessions"))
	commandTimeout := time.Duration(cfg.Broker.CommandTimeoutSeconds) * time.Second
	broker := brokerpkg.NewMarketDataService(client, symbols, appLogger.Named("Broker"), commandTimeout)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := broker.Start(ctx); err != nil {
		appLogger.Critical("Failed to start broker: %v", err)
	}

	// 3. Optional tick persistence
	var recorder *storage.TickRecorder
	var store interfaces.ITickStore

	if cfg.Storage.Enabled {
		store, err = storage.NewTickStore(cfg.MConfig, appLogger.Named("Storage"))
		if err != nil {
			appLogger.Critical("Failed to init tick store: %v", err)
		}
		if err := store.Initialize(); err != nil {
			appLogger.Critical("Failed to migrate tick store: %v", err)
		}

		recorder = storage.NewTickRecorder(store, broker, appLogger.Named("Recorder"))
		if err := recorder.Start(ctx); err != nil {
			appLogger.Critical("Failed to start tick recorder: %v", err)
		}
	}

	// 4. gRPC server
	grpcAddr := fmt.Sprintf("%s:%d", cfg.GrpcHost, cfg.GrpcPort)
	listener, err := net.Listen("tcp", grpcAddr)
	if err != nil {
		appLogger.Critical("Failed to listen on %s: %v", grpcAddr, err)
	}

	grpcServer := grpc.NewServer()
	grpc_market.RegisterMarketDataServer(grpcServer, grpc_market.NewMarketDataGrpcService(broker, sessions, appLogger.Named("Grpc")))

	go func() {
		appLogger.Info("gRPC server listening on %s", grpcAddr)
		if err := grpcServer.Serve(listener); err != nil {
			appLogger.Error("gRPC server failed: %v", err)
		}
	}()

	// 5. HTTP status server
	statusServer := server.NewStatusServer(cfg.MConfig, broker, sessions, appLogger.Named("Http"))
	go func() {
		if err := statusServer.Start(); err != nil {
			appLogger.Error("Status server failed: %v", err)
		}
	}()

	appLogger.Info("%s started", cfg.Name)

	// 6. Wait for shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down...")

	grpcServer.GracefulStop()
	sessions.DisconnectAll()
	statusServer.Stop()

	if recorder != nil {
		recorder.Stop()
	}

	broker.Stop()
	cancel()

	if store != nil {
		if err := store.Close(); err != nil {
			appLogger.Error("Error closing tick store: %v", err)
		}
	}
	if err := client.Close(); err != nil {
		appLogger.Error("Error closing terminal client: %v", err)
	}

	appLogger.Info("Shutdown complete")
}
