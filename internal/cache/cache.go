package cache

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/psastudios/content-ms-go/internal/model"
	"github.com/psastudios/content-ms-go/internal/port"
)

// galleryTTL is a safety net only; the bus-driven invalidation is what keeps
// cached projections fresh.
const galleryTTL = time.Hour

type Cache struct {
	client *redis.Client
}

// compile-time check: *Cache must satisfy port.Cache
var _ port.Cache = (*Cache)(nil)

func NewCache(addr, password string) *Cache {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	})

	return &Cache{client: rdb}
}

func (c *Cache) GetGallery(ctx context.Context, category model.Category) ([]byte, error) {
	val, err := c.client.Get(ctx, getCacheKey(category)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil // cache miss
	}
	if err != nil {
		return nil, fmt.Errorf("redis get failed: %w", err)
	}
	return val, nil
}

func (c *Cache) SetGallery(ctx context.Context, category model.Category, data []byte) {
	if err := c.client.Set(ctx, getCacheKey(category), data, galleryTTL).Err(); err != nil {
		log.Printf("failed caching gallery %q: %v", category, err)
	}
}

func (c *Cache) InvalidateGalleries(ctx context.Context) error {
	keys := make([]string, 0, len(model.Categories()))
	for _, cat := range model.Categories() {
		keys = append(keys, getCacheKey(cat))
	}

	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("redis del failed: %w", err)
	}
	return nil
}

func getCacheKey(category model.Category) string {
	return "gallery:" + string(category)
}
