// Copyright (c) 2024 The Flokicoin developers
// Distributed under the MIT software license, see the accompanying
// file COPYING or http://www.opensource.org/licenses/mit-license.php.

package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const defaultRedisPrefix = "tpl"

// Redis stores each namespace as a hash at <prefix>:<ns>.
type Redis struct {
	redis  redis.UniversalClient
	prefix string
}

func NewRedis(client redis.UniversalClient, prefix string) *Redis {
	if prefix == "" {
		prefix = defaultRedisPrefix
	}
	return &Redis{
		redis:  client,
		prefix: prefix,
	}
}

func (r *Redis) key(ns string) string {
	return r.prefix + ":" + ns
}

func (r *Redis) Get(ctx context.Context, ns, key string) (string, bool, error) {
	if err := validate(ns, key); err != nil {
		return "", false, err
	}
	v, err := r.redis.HGet(ctx, r.key(ns), key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	return v, true, nil
}

func (r *Redis) Set(ctx context.Context, ns, key, value string) error {
	if err := validate(ns, key); err != nil {
		return err
	}
	if err := r.redis.HSet(ctx, r.key(ns), key, value).Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	return nil
}

func (r *Redis) Has(ctx context.Context, ns, key string) (bool, error) {
	if err := validate(ns, key); err != nil {
		return false, err
	}
	ok, err := r.redis.HExists(ctx, r.key(ns), key).Result()
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	return ok, nil
}

func (r *Redis) Delete(ctx context.Context, ns, key string) error {
	if err := validate(ns, key); err != nil {
		return err
	}
	if err := r.redis.HDel(ctx, r.key(ns), key).Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	return nil
}
