// Copyright (c) 2024 The Flokicoin developers
// Distributed under the MIT software license, see the accompanying
// file COPYING or http://www.opensource.org/licenses/mit-license.php.

package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

const fileExt = ".yaml"

// File keeps one YAML document per namespace inside dir.
type File struct {
	dir string
	mu  sync.Mutex
}

func NewFile(dir string) (*File, error) {
	dir = strings.TrimSpace(dir)
	if dir == "" {
		return nil, errors.New("store directory not configured")
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return &File{dir: dir}, nil
}

func (f *File) Dir() string {
	return f.dir
}

func (f *File) path(ns string) string {
	return filepath.Join(f.dir, filepath.Base(ns)+fileExt)
}

func (f *File) read(ns string) (map[string]string, error) {
	raw, err := os.ReadFile(f.path(ns))
	if errors.Is(err, os.ErrNotExist) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	doc := map[string]string{}
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode %s: %w", f.path(ns), err)
	}
	if doc == nil {
		doc = map[string]string{}
	}
	return doc, nil
}

func (f *File) write(ns string, doc map[string]string) error {
	raw, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode %s: %w", ns, err)
	}

	tmp, err := os.CreateTemp(f.dir, "."+filepath.Base(ns)+"-*")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if err := tmp.Chmod(0o600); err != nil {
		tmp.Close()
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if err := os.Rename(tmp.Name(), f.path(ns)); err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return nil
}

func (f *File) Get(_ context.Context, ns, key string) (string, bool, error) {
	if err := validate(ns, key); err != nil {
		return "", false, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	doc, err := f.read(ns)
	if err != nil {
		return "", false, err
	}
	v, ok := doc[key]
	return v, ok, nil
}

func (f *File) Set(_ context.Context, ns, key, value string) error {
	if err := validate(ns, key); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	doc, err := f.read(ns)
	if err != nil {
		return err
	}
	doc[key] = value
	return f.write(ns, doc)
}

func (f *File) Has(ctx context.Context, ns, key string) (bool, error) {
	_, ok, err := f.Get(ctx, ns, key)
	return ok, err
}

func (f *File) Delete(_ context.Context, ns, key string) error {
	if err := validate(ns, key); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	doc, err := f.read(ns)
	if err != nil {
		return err
	}
	if _, ok := doc[key]; !ok {
		return nil
	}
	delete(doc, key)
	return f.write(ns, doc)
}
