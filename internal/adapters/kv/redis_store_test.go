package kv

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
)

func newRedisStore(t *testing.T) *RedisStore {
	t.Helper()

	srv := miniredis.RunT(t)
	store := NewRedisStore(srv.Addr(), 0)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestRedisStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := newRedisStore(t)

	if _, ok, err := store.Get(ctx, "missing"); err != nil || ok {
		t.Fatalf("missing key: ok=%v err=%v", ok, err)
	}

	if err := store.Set(ctx, "pn_traffic_time_v1", `"night"`); err != nil {
		t.Fatal(err)
	}

	v, ok, err := store.Get(ctx, "pn_traffic_time_v1")
	if err != nil || !ok || v != `"night"` {
		t.Fatalf("get after set: v=%q ok=%v err=%v", v, ok, err)
	}

	if err := store.Delete(ctx, "pn_traffic_time_v1"); err != nil {
		t.Fatal(err)
	}
	if _, ok, _ := store.Get(ctx, "pn_traffic_time_v1"); ok {
		t.Fatal("key still present after delete")
	}
}

func TestRedisStoreDeleteMissingKey(t *testing.T) {
	ctx := context.Background()
	store := newRedisStore(t)

	if err := store.Delete(ctx, "never-set"); err != nil {
		t.Fatalf("deleting a missing key should not error: %v", err)
	}
}

func TestRedisStoreTTL(t *testing.T) {
	ctx := context.Background()

	srv := miniredis.RunT(t)
	store := NewRedisStore(srv.Addr(), time.Minute)
	t.Cleanup(func() { _ = store.Close() })

	if err := store.Set(ctx, "k", "v"); err != nil {
		t.Fatal(err)
	}

	srv.FastForward(2 * time.Minute)

	if _, ok, _ := store.Get(ctx, "k"); ok {
		t.Fatal("entry should have expired")
	}
}
