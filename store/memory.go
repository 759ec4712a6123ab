// Copyright (c) 2024 The Flokicoin developers
// Distributed under the MIT software license, see the accompanying
// file COPYING or http://www.opensource.org/licenses/mit-license.php.

package store

import (
	"context"
	"sync"
)

type Memory struct {
	mu   sync.RWMutex
	data map[string]map[string]string
}

func NewMemory() *Memory {
	return &Memory{data: make(map[string]map[string]string)}
}

func (m *Memory) Get(_ context.Context, ns, key string) (string, bool, error) {
	if err := validate(ns, key); err != nil {
		return "", false, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	v, ok := m.data[ns][key]
	return v, ok, nil
}

func (m *Memory) Set(_ context.Context, ns, key, value string) error {
	if err := validate(ns, key); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	bucket, ok := m.data[ns]
	if !ok {
		bucket = make(map[string]string)
		m.data[ns] = bucket
	}
	bucket[key] = value
	return nil
}

func (m *Memory) Has(ctx context.Context, ns, key string) (bool, error) {
	_, ok, err := m.Get(ctx, ns, key)
	return ok, err
}

func (m *Memory) Delete(_ context.Context, ns, key string) error {
	if err := validate(ns, key); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.data[ns], key)
	return nil
}
