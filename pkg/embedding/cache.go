package embedding

import (
	"context"
	"crypto/sha256"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const cacheKeyPrefix = "tm:emb:"

// Cached keeps vectors in Redis so identical texts are embedded once per TTL.
// Redis failures never fail the call: the provider is asked instead.
type Cached struct {
	next  Embedder
	rdb   redis.Cmdable
	model string
	dims  int
	ttl   time.Duration
	log   *zap.Logger
}

// NewCached wraps next. dims is the vector size next produces; entries of any
// other size are treated as misses. dims <= 0 means the size is not checked.
func NewCached(next Embedder, rdb redis.Cmdable, model string, dims int, ttl time.Duration, log *zap.Logger) *Cached {
	if log == nil {
		log = zap.NewNop()
	}
	return &Cached{next: next, rdb: rdb, model: model, dims: dims, ttl: ttl, log: log}
}

// CacheKey is deterministic for (model, dims, text).
func CacheKey(model string, dims int, text string) string {
	sum := sha256.Sum256(fmt.Appendf(nil, "%s|%d|%s", model, dims, text))
	return fmt.Sprintf("%s%x", cacheKeyPrefix, sum[:16])
}

func (c *Cached) Embed(ctx context.Context, text string) ([]float32, error) {
	if c.rdb == nil {
		return c.next.Embed(ctx, text)
	}
	key := CacheKey(c.model, c.dims, text)

	data, err := c.rdb.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var vec []float32
		jerr := json.Unmarshal(data, &vec)
		switch {
		case jerr != nil || len(vec) == 0:
			c.log.Debug("embedding cache entry corrupt", zap.String("key", key))
		case c.dims > 0 && len(vec) != c.dims:
			c.log.Debug("embedding cache entry has wrong size",
				zap.String("key", key), zap.Int("got", len(vec)), zap.Int("want", c.dims))
		default:
			c.log.Debug("embedding cache hit", zap.String("key", key))
			return vec, nil
		}
	case !errors.Is(err, redis.Nil):
		c.log.Warn("embedding cache get failed", zap.Error(err))
	}

	vec, err := c.next.Embed(ctx, text)
	if err != nil {
		return nil, err
	}
	if data, err := json.Marshal(vec); err == nil {
		if err := c.rdb.Set(ctx, key, data, c.ttl).Err(); err != nil {
			c.log.Warn("embedding cache set failed", zap.Error(err))
		}
	}
	return vec, nil
}
