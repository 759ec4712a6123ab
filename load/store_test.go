package load

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/flokiorg/tpinlock/config"
	"github.com/flokiorg/tpinlock/settings"
	"github.com/flokiorg/tpinlock/store"
)

func TestOpenStore(t *testing.T) {
	dir := t.TempDir()

	kv, closer, err := OpenStore(&config.AppConfig{Store: "file", Datadir: dir})
	if err != nil {
		t.Fatal(err)
	}
	defer closer.Close()
	fs, ok := kv.(*store.File)
	if !ok {
		t.Fatalf("expected file store, got %T", kv)
	}
	if fs.Dir() != filepath.Join(dir, "store") {
		t.Fatalf("unexpected store dir %q", fs.Dir())
	}

	if _, _, err := OpenStore(&config.AppConfig{Store: "file"}); err == nil {
		t.Fatal("file store without datadir must fail")
	}
	if _, _, err := OpenStore(&config.AppConfig{Store: "etcd"}); err == nil {
		t.Fatal("unknown store must fail")
	}

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatal(err)
	}
	defer mr.Close()
	kv, closer, err = OpenStore(&config.AppConfig{Store: "redis", RedisAddr: mr.Addr(), RedisPrefix: "p"})
	if err != nil {
		t.Fatal(err)
	}
	defer closer.Close()
	if h := CheckStoreHealth(context.Background(), kv, time.Second); !h.Healthy {
		t.Fatalf("expected healthy redis store, got %q", h.Reason)
	}
}

func TestCheckStoreHealth(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemory()

	if h := CheckStoreHealth(ctx, kv, time.Second); !h.Healthy {
		t.Fatalf("memory store must be healthy: %s", h.Reason)
	}
	if ok, _ := kv.Has(ctx, healthNamespace, "check"); ok {
		t.Fatal("health check value must be removed")
	}

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatal(err)
	}
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer rdb.Close()
	mr.Close()

	if h := CheckStoreHealth(ctx, store.NewRedis(rdb, ""), time.Second); h.Healthy || h.Reason == "" {
		t.Fatalf("unreachable redis must be unhealthy, got %+v", h)
	}
}

func TestResolveSettings(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemory()

	s, err := ResolveSettings(ctx, kv)
	if err != nil {
		t.Fatal(err)
	}
	if s != settings.Default() {
		t.Fatalf("expected defaults, got %+v", s)
	}
	if ok, _ := settings.IsInit(ctx, kv); !ok {
		t.Fatal("defaults must be written on first start")
	}

	if err := settings.SetMaxLength(ctx, kv, 6); err != nil {
		t.Fatal(err)
	}
	s, err = ResolveSettings(ctx, kv)
	if err != nil {
		t.Fatal(err)
	}
	if s.MaxLength != 6 {
		t.Fatalf("stored settings must win over defaults, got %+v", s)
	}
}

func TestNotificationBroadcast(t *testing.T) {
	n := newNotification(zerolog.Nop())
	ch, unsubscribe := n.Subscribe()

	n.Broadcast(StateUnlocked)
	select {
	case s := <-ch:
		if s != StateUnlocked {
			t.Fatalf("expected unlocked, got %s", s)
		}
	case <-time.After(time.Second):
		t.Fatal("no broadcast received")
	}
	if n.LastState() != StateUnlocked {
		t.Fatalf("expected last state unlocked, got %s", n.LastState())
	}

	unsubscribe()
	unsubscribe()
	if _, ok := <-ch; ok {
		t.Fatal("channel must be closed after unsubscribe")
	}
	n.Broadcast(StateLocked)
}

func TestToastDoesNotBlock(t *testing.T) {
	n := newNotification(zerolog.Nop())
	for i := 0; i < 20; i++ {
		n.ShowToast("hello")
	}
	if got := <-n.Toast(); got != "hello" {
		t.Fatalf("expected toast, got %q", got)
	}
}
