package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/inkwell-cms/inkwell/domain"
)

const KeyCommentCounts = "comments:counts"

// CommentCountCache keeps the dashboard's per-state comment tally in redis
// so the moderation badge does not rescan every post on each request.
type CommentCountCache struct {
	client *redis.Client
	ttl    time.Duration
}

var _ domain.CommentCountCache = (*CommentCountCache)(nil)

func NewCommentCountCache(client *redis.Client, ttl time.Duration) *CommentCountCache {
	return &CommentCountCache{
		client: client,
		ttl:    ttl,
	}
}

func (c *CommentCountCache) Get(ctx context.Context) (domain.CommentCounts, error) {
	data, err := c.client.Get(ctx, KeyCommentCounts).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return domain.CommentCounts{}, domain.ErrCacheMiss
		}
		return domain.CommentCounts{}, err
	}

	var counts domain.CommentCounts
	if err := json.Unmarshal(data, &counts); err != nil {
		return domain.CommentCounts{}, err
	}
	return counts, nil
}

func (c *CommentCountCache) Set(ctx context.Context, counts domain.CommentCounts) error {
	data, err := json.Marshal(counts)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, KeyCommentCounts, data, c.ttl).Err()
}

func (c *CommentCountCache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, KeyCommentCounts).Err()
}
