package store

import (
	"context"
	"errors"
	"net"
	"os"
	"path/filepath"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newRedisTest(t *testing.T) (*Redis, *miniredis.Miniredis) {
	t.Helper()
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("miniredis start: %v", err)
	}
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() {
		rdb.Close()
		mr.Close()
	})
	return NewRedis(rdb, "test"), mr
}

func newFileTest(t *testing.T) *File {
	t.Helper()
	f, err := NewFile(filepath.Join(t.TempDir(), "data"))
	if err != nil {
		t.Fatalf("file store: %v", err)
	}
	return f
}

func backends(t *testing.T) map[string]KV {
	r, _ := newRedisTest(t)
	return map[string]KV{
		"memory": NewMemory(),
		"file":   newFileTest(t),
		"redis":  r,
	}
}

func TestRoundTrip(t *testing.T) {
	ctx := context.Background()

	for name, kv := range backends(t) {
		t.Run(name, func(t *testing.T) {
			if _, ok, err := kv.Get(ctx, "ns", "missing"); err != nil || ok {
				t.Fatalf("expected missing key, got ok=%v err=%v", ok, err)
			}

			if err := kv.Set(ctx, "ns", "k", "v1"); err != nil {
				t.Fatalf("set: %v", err)
			}
			if err := kv.Set(ctx, "ns", "k", "v2"); err != nil {
				t.Fatalf("overwrite: %v", err)
			}

			v, ok, err := kv.Get(ctx, "ns", "k")
			if err != nil || !ok || v != "v2" {
				t.Fatalf("expected v2, got %q ok=%v err=%v", v, ok, err)
			}

			has, err := kv.Has(ctx, "ns", "k")
			if err != nil || !has {
				t.Fatalf("expected key present, got %v err=%v", has, err)
			}

			if _, ok, _ := kv.Get(ctx, "other", "k"); ok {
				t.Fatal("namespaces must not share keys")
			}

			if err := kv.Delete(ctx, "ns", "k"); err != nil {
				t.Fatalf("delete: %v", err)
			}
			if err := kv.Delete(ctx, "ns", "k"); err != nil {
				t.Fatalf("second delete: %v", err)
			}
			if has, _ := kv.Has(ctx, "ns", "k"); has {
				t.Fatal("expected key removed")
			}
		})
	}
}

func TestInvalidKey(t *testing.T) {
	ctx := context.Background()

	for name, kv := range backends(t) {
		t.Run(name, func(t *testing.T) {
			if err := kv.Set(ctx, "", "k", "v"); !errors.Is(err, ErrInvalidKey) {
				t.Fatalf("expected ErrInvalidKey for empty namespace, got %v", err)
			}
			if _, _, err := kv.Get(ctx, "ns", ""); !errors.Is(err, ErrInvalidKey) {
				t.Fatalf("expected ErrInvalidKey for empty key, got %v", err)
			}
		})
	}
}

func TestFilePersistsAcrossInstances(t *testing.T) {
	ctx := context.Background()
	dir := filepath.Join(t.TempDir(), "data")

	first, err := NewFile(dir)
	if err != nil {
		t.Fatal(err)
	}
	if err := first.Set(ctx, "tpinlock_pin", "K", "digest"); err != nil {
		t.Fatal(err)
	}

	second, err := NewFile(dir)
	if err != nil {
		t.Fatal(err)
	}
	v, ok, err := second.Get(ctx, "tpinlock_pin", "K")
	if err != nil || !ok || v != "digest" {
		t.Fatalf("expected persisted digest, got %q ok=%v err=%v", v, ok, err)
	}

	info, err := os.Stat(filepath.Join(dir, "tpinlock_pin.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if perm := info.Mode().Perm(); perm != 0o600 {
		t.Fatalf("expected 0600 permissions, got %o", perm)
	}
}

func TestFileRejectsCorruptDocument(t *testing.T) {
	ctx := context.Background()
	f := newFileTest(t)

	if err := os.WriteFile(filepath.Join(f.Dir(), "ns.yaml"), []byte("- not\n- a map\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, _, err := f.Get(ctx, "ns", "k"); err == nil {
		t.Fatal("expected decode error")
	}
}

func TestRedisLayout(t *testing.T) {
	ctx := context.Background()
	r, mr := newRedisTest(t)

	if err := r.Set(ctx, "tpinlock", "min_length", "4"); err != nil {
		t.Fatal(err)
	}
	if got := mr.HGet("test:tpinlock", "min_length"); got != "4" {
		t.Fatalf("expected hash field test:tpinlock/min_length=4, got %q", got)
	}
}

func TestRedisUnavailable(t *testing.T) {
	ctx := context.Background()
	r, mr := newRedisTest(t)
	mr.Close()

	err := r.Set(ctx, "ns", "k", "v")
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
	var opErr *net.OpError
	if !errors.As(err, &opErr) {
		t.Fatalf("the network error must stay reachable, got %v", err)
	}
}
