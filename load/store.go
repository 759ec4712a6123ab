// Copyright (c) 2024 The Flokicoin developers
// Distributed under the MIT software license, see the accompanying
// file COPYING or http://www.opensource.org/licenses/mit-license.php.

package load

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/flokiorg/tpinlock/config"
	"github.com/flokiorg/tpinlock/settings"
	"github.com/flokiorg/tpinlock/store"
)

const healthNamespace = "tpinlock_health"

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// OpenStore builds the backend selected by cfg.Store.
func OpenStore(cfg *config.AppConfig) (store.KV, io.Closer, error) {
	switch cfg.Store {
	case "memory":
		return store.NewMemory(), nopCloser{}, nil

	case "redis":
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		return store.NewRedis(client, cfg.RedisPrefix), client, nil

	case "file", "":
		if cfg.Datadir == "" {
			return nil, nil, errors.New("datadir not configured")
		}
		fs, err := store.NewFile(filepath.Join(cfg.Datadir, "store"))
		if err != nil {
			return nil, nil, err
		}
		return fs, nopCloser{}, nil

	default:
		return nil, nil, fmt.Errorf("unknown store %q", cfg.Store)
	}
}

// StoreHealth describes whether the backend accepted a write and read back.
type StoreHealth struct {
	Healthy bool
	Reason  string
}

// CheckStoreHealth round-trips a check value through kv within timeout.
func CheckStoreHealth(ctx context.Context, kv store.KV, timeout time.Duration) StoreHealth {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	value := fmt.Sprintf("%d", time.Now().UnixNano())

	if err := kv.Set(ctx, healthNamespace, "check", value); err != nil {
		if ctx.Err() != nil {
			return StoreHealth{Reason: "store did not answer before timeout"}
		}
		return StoreHealth{Reason: err.Error()}
	}
	defer kv.Delete(context.WithoutCancel(ctx), healthNamespace, "check")

	got, ok, err := kv.Get(ctx, healthNamespace, "check")
	switch {
	case err != nil:
		return StoreHealth{Reason: err.Error()}
	case !ok || got != value:
		return StoreHealth{Reason: "store did not return the written value"}
	}
	return StoreHealth{Healthy: true}
}

// ResolveSettings loads the stored settings, writing the defaults first when
// the store was never configured.
func ResolveSettings(ctx context.Context, kv store.KV) (settings.Settings, error) {
	ok, err := settings.IsInit(ctx, kv)
	if err != nil {
		return settings.Settings{}, err
	}
	if !ok {
		s := settings.Default()
		if err := settings.Configure(ctx, kv, s); err != nil {
			return settings.Settings{}, err
		}
		return s, nil
	}
	return settings.Load(ctx, kv)
}
