package tenant

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

type countingStore struct {
	inner Store
	calls atomic.Int64
}

func (c *countingStore) FindByID(ctx context.Context, id string) (Church, error) {
	c.calls.Add(1)
	return c.inner.FindByID(ctx, id)
}

func testRedis(t *testing.T) *redis.Client {
	t.Helper()
	srv := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return rdb
}

func TestCachedStore_SecondLookupSkipsInnerStore(t *testing.T) {
	ch := Church{ID: "church-1", Name: "First Baptist", Status: StatusActive}
	counting := &countingStore{inner: NewMemoryStore(ch)}
	cached := NewCachedStore(counting, testRedis(t), time.Minute)

	ctx := context.Background()
	for i := 0; i < 3; i++ {
		got, err := cached.FindByID(ctx, "church-1")
		if err != nil {
			t.Fatalf("lookup %d: %v", i, err)
		}
		if got.ID != ch.ID || got.Name != ch.Name || got.Status != ch.Status {
			t.Fatalf("lookup %d: unexpected church %+v", i, got)
		}
	}
	if n := counting.calls.Load(); n != 1 {
		t.Fatalf("expected 1 inner lookup, got %d", n)
	}
}

func TestCachedStore_CachesNotFound(t *testing.T) {
	counting := &countingStore{inner: NewMemoryStore()}
	cached := NewCachedStore(counting, testRedis(t), time.Minute)

	ctx := context.Background()
	for i := 0; i < 2; i++ {
		if _, err := cached.FindByID(ctx, "nope"); !errors.Is(err, ErrNotFound) {
			t.Fatalf("lookup %d: expected ErrNotFound, got %v", i, err)
		}
	}
	if n := counting.calls.Load(); n != 1 {
		t.Fatalf("expected negative result to be cached, inner lookups: %d", n)
	}
}

func TestCachedStore_NilClientFallsThrough(t *testing.T) {
	ch := Church{ID: "church-1", Status: StatusActive}
	cached := NewCachedStore(NewMemoryStore(ch), nil, time.Minute)

	got, err := cached.FindByID(context.Background(), "church-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != "church-1" {
		t.Fatalf("unexpected church: %+v", got)
	}
}
