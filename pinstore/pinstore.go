// Copyright (c) 2024 The Flokicoin developers
// Distributed under the MIT software license, see the accompanying
// file COPYING or http://www.opensource.org/licenses/mit-license.php.

// Package pinstore maps caller supplied keys to hashed pins. Pins are never
// stored in clear.
package pinstore

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/flokiorg/tpinlock/pinhash"
	"github.com/flokiorg/tpinlock/store"
)

const Namespace = "tpinlock_pin"

var ErrNoKey = errors.New("no pin key provided")

type Store struct {
	kv     store.KV
	hasher pinhash.Hasher
}

// New returns a pin store over kv. A nil hasher selects pinhash.SHA1.
func New(kv store.KV, hasher pinhash.Hasher) *Store {
	if hasher == nil {
		hasher = pinhash.SHA1
	}
	return &Store{kv: kv, hasher: hasher}
}

func (s *Store) Hash(pin string) (string, error) {
	return s.hasher.Hash(pin)
}

// Save hashes pin, stores it under key and returns the stored digest.
func (s *Store) Save(ctx context.Context, key, pin string) (string, error) {
	if strings.TrimSpace(key) == "" {
		return "", ErrNoKey
	}
	digest, err := s.hasher.Hash(pin)
	if err != nil {
		return "", err
	}
	if err := s.kv.Set(ctx, Namespace, key, digest); err != nil {
		return "", fmt.Errorf("save pin %q: %w", key, err)
	}
	return digest, nil
}

// Check reports whether pin matches the digest stored under key. A missing
// record never matches.
func (s *Store) Check(ctx context.Context, key, pin string) (bool, error) {
	stored, ok, err := s.Digest(ctx, key)
	if err != nil || !ok {
		return false, err
	}
	digest, err := s.hasher.Hash(pin)
	if err != nil {
		return false, err
	}
	return pinhash.Equal(stored, digest), nil
}

func (s *Store) Digest(ctx context.Context, key string) (string, bool, error) {
	if strings.TrimSpace(key) == "" {
		return "", false, ErrNoKey
	}
	v, ok, err := s.kv.Get(ctx, Namespace, key)
	if err != nil {
		return "", false, fmt.Errorf("load pin %q: %w", key, err)
	}
	return v, ok, nil
}

func (s *Store) Exists(ctx context.Context, key string) (bool, error) {
	_, ok, err := s.Digest(ctx, key)
	return ok, err
}

func (s *Store) Delete(ctx context.Context, key string) error {
	if strings.TrimSpace(key) == "" {
		return ErrNoKey
	}
	return s.kv.Delete(ctx, Namespace, key)
}
