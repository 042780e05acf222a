package grpc_market

import (
	"context"
	"errors"
	"fmt"

	"mt-bridge/src/models"
	"mt-bridge/src/subscription"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// -----------------------------------------------------------------------------
// Stream handling
// -----------------------------------------------------------------------------

// handleStream drives one SubscribeMarketData call end to end: it subscribes
// the session's symbols at the broker, reports the outcome as the first
// message on the stream and then pumps ticks until the client goes away or a
// send fails. Symbol interest acquired here is always released on exit.
func (s *MarketDataGrpcService) handleStream(session *subscription.ClientSession, symbols []string, stream MarketData_SubscribeMarketDataServer) error {
	// Start feeding the session before the subscribe round-trip so no tick
	// published between the terminal's ack and the pump loop is lost.
	listenerID := s.Broker.AddTickListener(func(tick models.MTick) {
		session.EnqueueTick(tick)
	})
	defer s.Broker.RemoveTickListener(listenerID)

	defer func() {
		owned := session.SubscribedSymbols()
		if len(owned) > 0 {
			s.Broker.UnsubscribeFromSymbols(owned)
		}
	}()

	result, err := s.Broker.SubscribeToSymbols(stream.Context(), symbols)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			s.Logger.Info("Client %s went away during subscription", session.ID)
			return nil
		}
		s.Logger.Error("Subscription for client %s failed: %v", session.ID, err)
		return status.Errorf(codes.Internal, "subscription failed: %v", err)
	}

	session.AddSymbols(result.SuccessfulSymbols)

	// The outcome is always reported to the client first, even when nothing
	// could be subscribed.
	if err := stream.Send(&SubscribeResponse{
		Payload: &SubscribeResponse_Status{
			Status: &SubscriptionStatus{
				Message:           subscriptionMessage(result),
				SuccessfulSymbols: result.SuccessfulSymbols,
				FailedSymbols:     result.FailedSymbols,
			},
		},
	}); err != nil {
		s.Logger.Error("Failed to send subscription status to client %s: %v", session.ID, err)
		return status.Errorf(codes.Internal, "failed to send subscription status: %v", err)
	}

	if len(result.SuccessfulSymbols) == 0 {
		s.Logger.Warning("Client %s: no symbols could be subscribed (requested %v)", session.ID, symbols)
		return status.Error(codes.InvalidArgument, "none of the requested symbols could be subscribed")
	}

	return s.pumpTicks(session, stream)
}

// -----------------------------------------------------------------------------

// pumpTicks forwards queued ticks to the client until the stream context ends
// or the session queue is completed.
func (s *MarketDataGrpcService) pumpTicks(session *subscription.ClientSession, stream MarketData_SubscribeMarketDataServer) error {
	ctx := session.Context()

	for {
		select {
		case <-ctx.Done():
			s.Logger.Info("Client %s disconnected", session.ID)
			return nil

		case tick, ok := <-session.Ticks():
			if !ok {
				s.Logger.Info("Session %s completed, closing stream", session.ID)
				return nil
			}

			err := stream.Send(&SubscribeResponse{
				Payload: &SubscribeResponse_Tick{
					Tick: &MarketTick{
						Symbol:      tick.Symbol,
						Bid:         tick.Bid,
						Ask:         tick.Ask,
						TimestampMs: tick.Timestamp.UnixMilli(),
					},
				},
			})
			if err != nil {
				s.Logger.Error("Failed to send tick to client %s: %v", session.ID, err)
				return status.Errorf(codes.Internal, "failed to send tick: %v", err)
			}
		}
	}
}

// -----------------------------------------------------------------------------

func subscriptionMessage(result models.MSubscriptionResult) string {
	if len(result.FailedSymbols) == 0 {
		return fmt.Sprintf("Subscribed to %d symbol(s)", len(result.SuccessfulSymbols))
	}
	return fmt.Sprintf("Subscribed to %d symbol(s), %d failed", len(result.SuccessfulSymbols), len(result.FailedSymbols))
}
