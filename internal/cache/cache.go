package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"ticketbari/internal/db/models"
)

const (
	approvedKey = "tickets:approved"
	approvedTTL = 30 * time.Second
)

// NewRedisClient creates a Redis client and verifies the connection.
func NewRedisClient(url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		// Fall back to a plain host:port address
		opts = &redis.Options{Addr: url}
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return client, nil
}

// TicketCache keeps the public approved-tickets listing in Redis. Cache
// faults are logged and treated as misses; the database stays the source
// of truth.
type TicketCache struct {
	rdb *redis.Client
}

func NewTicketCache(rdb *redis.Client) *TicketCache {
	return &TicketCache{rdb: rdb}
}

// GetApproved returns the cached listing and whether it was present.
func (c *TicketCache) GetApproved(ctx context.Context) ([]models.Ticket, bool) {
	data, err := c.rdb.Get(ctx, approvedKey).Bytes()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		log.Printf("cache: get approved tickets: %v", err)
		return nil, false
	}

	var tickets []models.Ticket
	if err := json.Unmarshal(data, &tickets); err != nil {
		log.Printf("cache: decode approved tickets: %v", err)
		return nil, false
	}
	return tickets, true
}

// SetApproved stores the listing with a short TTL.
func (c *TicketCache) SetApproved(ctx context.Context, tickets []models.Ticket) {
	data, err := json.Marshal(tickets)
	if err != nil {
		log.Printf("cache: encode approved tickets: %v", err)
		return
	}
	if err := c.rdb.Set(ctx, approvedKey, data, approvedTTL).Err(); err != nil {
		log.Printf("cache: set approved tickets: %v", err)
	}
}

// Invalidate drops the cached listing after any ticket mutation.
func (c *TicketCache) Invalidate(ctx context.Context) {
	if err := c.rdb.Del(ctx, approvedKey).Err(); err != nil && err != redis.Nil {
		log.Printf("cache: invalidate approved tickets: %v", err)
	}
}
