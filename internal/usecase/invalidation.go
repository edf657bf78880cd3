package usecase

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	gonanoid "github.com/matoous/go-nanoid/v2"
	"go.uber.org/zap"

	"github.com/wishbeam/wishbeam/pkg/base62"
	"github.com/wishbeam/wishbeam/pkg/messaging"
)

// invalidationSubjectPrefix namespaces the per-user logical channels.
const invalidationSubjectPrefix = "cache-invalidation."

// InvalidationType names the cached collection a client must refetch.
type InvalidationType string

const (
	// InvalidationWishlists marks the wishlist collection stale.
	InvalidationWishlists InvalidationType = "wishlists"
	// InvalidationWishlistData marks one wishlist's detail view stale.
	InvalidationWishlistData InvalidationType = "wishlist-data"
)

// InvalidationEvent tells a user's connected clients which cache entry
// went stale. It carries no payload of truth; the next fetch is
// authoritative.
type InvalidationEvent struct {
	Type       InvalidationType `json:"type"`
	WishlistID string           `json:"wishlistId,omitempty"`
}

// InvalidationBus publishes change events to the affected users'
// channels and hands out per-user subscriptions. Delivery is at most
// once: an event published while nobody listens is dropped, which is
// fine because clients refetch on navigation anyway.
type InvalidationBus struct {
	client messaging.PubSubClient
	logger *zap.Logger
}

func NewInvalidationBus(client messaging.PubSubClient, logger *zap.Logger) *InvalidationBus {
	return &InvalidationBus{
		client: client,
		logger: logger,
	}
}

// SubjectFor returns the logical channel for one user.
func SubjectFor(userID uuid.UUID) string {
	return invalidationSubjectPrefix + userID.String()
}

// PublishWishlists fans a list-level invalidation out to every given
// user. Publish failures are logged and swallowed; the mutation that
// triggered the event has already committed.
func (b *InvalidationBus) PublishWishlists(ctx context.Context, userIDs []uuid.UUID) {
	event := InvalidationEvent{Type: InvalidationWishlists}
	b.fanOut(ctx, event, userIDs)
}

// PublishWishlistData fans a detail-level invalidation for one
// wishlist out to every given user.
func (b *InvalidationBus) PublishWishlistData(ctx context.Context, wishlistID uuid.UUID, userIDs []uuid.UUID) {
	event := InvalidationEvent{
		Type:       InvalidationWishlistData,
		WishlistID: base62.Encode(wishlistID),
	}
	b.fanOut(ctx, event, userIDs)
}

func (b *InvalidationBus) fanOut(ctx context.Context, event InvalidationEvent, userIDs []uuid.UUID) {
	seen := make(map[uuid.UUID]struct{}, len(userIDs))
	for _, userID := range userIDs {
		if _, ok := seen[userID]; ok {
			continue
		}
		seen[userID] = struct{}{}

		if err := b.client.Publish(ctx, SubjectFor(userID), event); err != nil {
			b.logger.Warn("failed to publish invalidation",
				zap.String("user_id", userID.String()),
				zap.String("type", string(event.Type)),
				zap.Error(err))
		}
	}
}

// Subscribe opens a long-lived subscription on the user's own channel.
// The subscription lives until ctx is cancelled; cancelling tears down
// the underlying pub/sub consumer promptly.
func (b *InvalidationBus) Subscribe(ctx context.Context, userID uuid.UUID) (<-chan InvalidationEvent, error) {
	messages, err := b.client.Subscribe(ctx, SubjectFor(userID))
	if err != nil {
		return nil, err
	}

	subscriberID, err := gonanoid.New()
	if err != nil {
		subscriberID = userID.String()
	}

	b.logger.Info("invalidation subscriber connected",
		zap.String("subscriber_id", subscriberID),
		zap.String("user_id", userID.String()))

	events := make(chan InvalidationEvent)
	go func() {
		defer close(events)
		defer b.logger.Info("invalidation subscriber disconnected",
			zap.String("subscriber_id", subscriberID))

		for msg := range messages {
			var event InvalidationEvent
			if err := json.Unmarshal(msg.Payload, &event); err != nil {
				b.logger.Warn("dropping malformed invalidation payload",
					zap.String("subscriber_id", subscriberID),
					zap.Error(err))
				continue
			}

			select {
			case events <- event:
			case <-ctx.Done():
				return
			}
		}
	}()

	return events, nil
}
