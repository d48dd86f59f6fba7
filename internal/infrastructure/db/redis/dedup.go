package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const dedupTTL = 24 * time.Hour

// WebhookDedup provides replay protection for payment webhook deliveries.
// Key format: webhook:<order_id>:<status>
type WebhookDedup struct {
	client *redis.Client
}

// NewWebhookDedup creates a WebhookDedup wrapping the given Redis client.
func NewWebhookDedup(client *redis.Client) *WebhookDedup {
	return &WebhookDedup{client: client}
}

// Seen reports whether this (order, status) delivery was already handled.
func (d *WebhookDedup) Seen(ctx context.Context, orderID, status string) (bool, error) {
	n, err := d.client.Exists(ctx, d.key(orderID, status)).Result()
	if err != nil {
		return false, fmt.Errorf("webhook dedup check: %w", err)
	}
	return n > 0, nil
}

// Mark records the delivery as handled (expires after dedupTTL).
func (d *WebhookDedup) Mark(ctx context.Context, orderID, status string) error {
	return d.client.Set(ctx, d.key(orderID, status), "1", dedupTTL).Err()
}

func (d *WebhookDedup) key(orderID, status string) string {
	return fmt.Sprintf("webhook:%s:%s", orderID, status)
}
