package grpc_market

import (
	"context"

	"mt-bridge/src/interfaces"
	"mt-bridge/src/logger"
	"mt-bridge/src/subscription"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/peer"
	"google.golang.org/grpc/status"
)

// MarketDataGrpcService implements the MarketDataServer interface. Each
// SubscribeMarketData call gets its own session whose lifetime is bound to the
// stream; on any exit path the session's symbol interest is released back to
// the broker.
type MarketDataGrpcService struct {
	UnimplementedMarketDataServer
	Broker   interfaces.IMarketDataBroker
	Sessions *subscription.SessionRegistry
	Logger   *logger.Logger
}

// NewMarketDataGrpcService creates a new instance of MarketDataGrpcService
func NewMarketDataGrpcService(
	broker interfaces.IMarketDataBroker,
	sessions *subscription.SessionRegistry,
	log *logger.Logger,
) *MarketDataGrpcService {
	return &MarketDataGrpcService{
		Broker:   broker,
		Sessions: sessions,
		Logger:   log,
	}
}

// -----------------------------------------------------------------------------

func (s *MarketDataGrpcService) SubscribeMarketData(req *SubscribeRequest, stream MarketData_SubscribeMarketDataServer) error {
	symbols := distinctSymbols(req.GetSymbols())
	if len(symbols) == 0 {
		return status.Error(codes.InvalidArgument, "at least one symbol is required")
	}

	session := s.Sessions.CreateSession(peerAddress(stream.Context()), stream.Context())
	defer s.Sessions.RemoveSession(session.ID)

	s.Logger.Info("Client %s connecting for symbols: %v", session.ID, symbols)

	return s.handleStream(session, symbols, stream)
}

// -----------------------------------------------------------------------------

func (s *MarketDataGrpcService) UnsubscribeMarketData(ctx context.Context, req *UnsubscribeRequest) (*UnsubscribeResponse, error) {
	symbols := distinctSymbols(req.GetSymbols())
	if len(symbols) == 0 {
		return nil, status.Error(codes.InvalidArgument, "at least one symbol is required")
	}

	s.Broker.UnsubscribeFromSymbols(symbols)

	return &UnsubscribeResponse{
		Success: true,
		Message: "Unsubscribed",
	}, nil
}

// -----------------------------------------------------------------------------

// distinctSymbols drops empty entries and duplicates, preserving first-seen
// order.
func distinctSymbols(symbols []string) []string {
	seen := make(map[string]struct{}, len(symbols))
	result := make([]string, 0, len(symbols))

	for _, symbol := range symbols {
		if symbol == "" {
			continue
		}
		if _, ok := seen[symbol]; ok {
			continue
		}
		seen[symbol] = struct{}{}
		result = append(result, symbol)
	}
	return result
}

// -----------------------------------------------------------------------------

func peerAddress(ctx context.Context) string {
	if p, ok := peer.FromContext(ctx); ok && p.Addr != nil {
		return p.Addr.String()
	}
	return "unknown"
}
