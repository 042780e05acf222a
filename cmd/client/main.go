package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	pb "mt-bridge/src/grpc_market"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// A small terminal client for manual testing: subscribes to a set of symbols
// and prints the status message and every tick until interrupted.
func main() {
	addr := flag.String("addr", "127.0.0.1:50051", "bridge gRPC address")
	symbols := flag.String("symbols", "EURUSD", "comma separated symbols to subscribe")
	flag.Parse()

	requested := strings.Split(*symbols, ",")

	conn, err := grpc.NewClient(*addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		fmt.Printf("Failed to connect to %s: %v\n", *addr, err)
		os.Exit(1)
	}
	defer conn.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Cancel the stream on Ctrl-C
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		fmt.Println("\nShutting down...")
		cancel()
	}()

	client := pb.NewMarketDataClient(conn)
	stream, err := client.SubscribeMarketData(ctx, &pb.SubscribeRequest{Symbols: requested})
	if err != nil {
		fmt.Printf("Subscribe failed: %v\n", err)
		os.Exit(1)
	}

	for {
		resp, err := stream.Recv()
		if err == io.EOF {
			return
		}
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			fmt.Printf("Stream error: %v\n", err)
			os.Exit(1)
		}

		switch payload := resp.GetPayload().(type) {
		case *pb.SubscribeResponse_Status:
			st := payload.Status
			fmt.Printf("[STATUS] %s (successful=%v failed=%v)\n",
				st.GetMessage(), st.GetSuccessfulSymbols(), st.GetFailedSymbols())
		case *pb.SubscribeResponse_Tick:
			tick := payload.Tick
			ts := time.UnixMilli(tick.GetTimestampMs()).UTC().Format("15:04:05.000")
			fmt.Printf("[TICK] %s %s bid=%.5f ask=%.5f\n", ts, tick.GetSymbol(), tick.GetBid(), tick.GetAsk())
		}
	}
}
