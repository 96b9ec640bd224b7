package notify

import (
	"context"
	"encoding/json"
	"time"

	"github.com/brokermart/brokermart/internal/domain"
)

const (
	topicTransactions = "wallet.transactions"
	topicClaims       = "promotion.claims"

	sendTimeout = 5 * time.Second
	poolSize    = 4
)

// Service publishes completed state changes for external observers (email,
// push, dashboards). Delivery is fire-and-forget: publishing happens on a
// bounded worker pool and a failure never reaches the caller's state.
type Service struct {
	producer Producer
	pool     WorkerPoolI
}

func New(producer Producer) *Service {
	return &Service{
		producer: producer,
		pool:     NewWorkerPool(poolSize),
	}
}

func (s *Service) TransactionCompleted(ctx context.Context, transaction *domain.Transaction) error {
	payload, err := json.Marshal(map[string]any{
		"event_type":     "transaction_completed",
		"transaction_id": transaction.ID,
		"user_id":        transaction.UserID,
		"amount":         transaction.Amount,
		"type":           transaction.Type,
		"status":         transaction.Status,
		"created_at":     transaction.CreatedAt.UTC().Format(time.RFC3339),
	})
	if err != nil {
		return err
	}
	return s.publish(ctx, topicTransactions, int64(transaction.UserID), payload)
}

func (s *Service) PromotionClaimed(ctx context.Context, claim *domain.PromotionClaim) error {
	payload, err := json.Marshal(map[string]any{
		"event_type":   "promotion_claimed",
		"claim_id":     claim.ID,
		"user_id":      claim.UserID,
		"promotion_id": claim.PromotionID,
		"points":       claim.Points,
		"claimed_at":   claim.ClaimedAt.UTC().Format(time.RFC3339),
	})
	if err != nil {
		return err
	}
	return s.publish(ctx, topicClaims, int64(claim.UserID), payload)
}

// publish hands the event to the pool. Only enqueueing respects the request
// context; the send itself runs detached with its own timeout so a finished
// request cannot cancel delivery.
func (s *Service) publish(ctx context.Context, topic string, key int64, payload []byte) error {
	return s.pool.AddTask(ctx, func() error {
		sendCtx, cancel := context.WithTimeout(context.Background(), sendTimeout)
		defer cancel()
		return s.producer.Send(sendCtx, topic, key, payload)
	})
}

func (s *Service) Close() error {
	s.pool.Close()
	return s.producer.Close()
}

// Noop is used when no broker is configured.
type Noop struct{}

func (Noop) TransactionCompleted(ctx context.Context, transaction *domain.Transaction) error {
	return nil
}

func (Noop) PromotionClaimed(ctx context.Context, claim *domain.PromotionClaim) error {
	return nil
}
