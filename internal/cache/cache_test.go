package cache

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/psastudios/content-ms-go/internal/model"
)

func makeTestCache(t *testing.T) (*Cache, *miniredis.Miniredis) {
	// spin up in-memory Redis
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("miniredis.Run: %v", err)
	}
	t.Cleanup(mr.Close)

	// point the real client at it
	rdb := redis.NewClient(&redis.Options{
		Addr:     mr.Addr(),
		Password: "",
		DB:       0,
	})
	return &Cache{client: rdb}, mr
}

func TestGetSetGallery(t *testing.T) {
	c, mr := makeTestCache(t)
	ctx := context.Background()

	// 1) cache miss
	got, err := c.GetGallery(ctx, model.CategoryCinematography)
	if err != nil {
		t.Fatalf("GetGallery miss: %v", err)
	}
	if got != nil {
		t.Errorf("GetGallery miss = %q; want nil", got)
	}

	// 2) set + get
	payload := []byte(`[{"id":"1"}]`)
	c.SetGallery(ctx, model.CategoryCinematography, payload)

	if ttl := mr.TTL(getCacheKey(model.CategoryCinematography)); ttl <= 0 || ttl > galleryTTL {
		t.Errorf("TTL = %v; want (0, %v]", ttl, galleryTTL)
	}

	got, err = c.GetGallery(ctx, model.CategoryCinematography)
	if err != nil {
		t.Fatalf("GetGallery hit: %v", err)
	}
	if string(got) != string(payload) {
		t.Errorf("GetGallery = %q; want %q", got, payload)
	}

	// other categories stay cold
	if got, _ := c.GetGallery(ctx, model.CategorySocialMedia); got != nil {
		t.Errorf("unexpected payload for a different category: %q", got)
	}
}

func TestInvalidateGalleries(t *testing.T) {
	c, _ := makeTestCache(t)
	ctx := context.Background()

	for _, cat := range model.Categories() {
		c.SetGallery(ctx, cat, []byte("[]"))
	}

	if err := c.InvalidateGalleries(ctx); err != nil {
		t.Fatalf("InvalidateGalleries: %v", err)
	}

	for _, cat := range model.Categories() {
		if got, _ := c.GetGallery(ctx, cat); got != nil {
			t.Errorf("category %q still cached after invalidation", cat)
		}
	}
}
