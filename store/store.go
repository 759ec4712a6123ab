// Copyright (c) 2024 The Flokicoin developers
// Distributed under the MIT software license, see the accompanying
// file COPYING or http://www.opensource.org/licenses/mit-license.php.

// Package store holds the key-value backends used for settings and pin
// records. Every backend groups keys by namespace.
package store

import (
	"context"
	"errors"
	"strings"
)

var (
	ErrUnavailable = errors.New("store unavailable")
	ErrInvalidKey  = errors.New("invalid store key")
)

// KV is a namespaced string key-value store. Implementations are safe for
// concurrent use.
type KV interface {
	Get(ctx context.Context, ns, key string) (string, bool, error)
	Set(ctx context.Context, ns, key, value string) error
	Has(ctx context.Context, ns, key string) (bool, error)
	Delete(ctx context.Context, ns, key string) error
}

func validate(ns, key string) error {
	if strings.TrimSpace(ns) == "" || key == "" {
		return ErrInvalidKey
	}
	return nil
}
