// Copyright (c) 2024 The Flokicoin developers
// Distributed under the MIT software license, see the accompanying
// file COPYING or http://www.opensource.org/licenses/mit-license.php.

// Package settings persists the lock screen configuration.
//
// Hosts call Configure once (usually guarded by IsInit) and Load at startup;
// the resulting Settings value is handed to every screen they build.
package settings

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/flokiorg/tpinlock/store"
)

const (
	Namespace = "tpinlock"

	placeholderKey = "placeholder"
	previewKey     = "show_preview"
	minKey         = "min_length"
	maxKey         = "input_length"
	shuffleKey     = "shuffle"
)

var keys = []string{maxKey, placeholderKey, previewKey, minKey, shuffleKey}

var ErrConfiguration = errors.New("invalid lock configuration")

type Settings struct {
	// ShowPlaceholder draws one hint circle per allowed digit.
	ShowPlaceholder bool
	// ShowPreview draws a filled circle for every entered digit.
	ShowPreview bool
	MinLength   int
	MaxLength   int
	// ShuffleButtons randomizes the digit layout of the pad.
	ShuffleButtons bool
}

func Default() Settings {
	return Settings{
		ShowPlaceholder: true,
		ShowPreview:     true,
		MinLength:       1,
		MaxLength:       4,
		ShuffleButtons:  false,
	}
}

func (s Settings) Validate() error {
	if s.MinLength < 1 {
		return fmt.Errorf("%w: minLength must be positive", ErrConfiguration)
	}
	if s.MaxLength < s.MinLength {
		return fmt.Errorf("%w: maxLength must be bigger than minLength", ErrConfiguration)
	}
	return nil
}

// Configure validates s and persists it. Nothing is written when s is invalid.
func Configure(ctx context.Context, kv store.KV, s Settings) error {
	if err := s.Validate(); err != nil {
		return err
	}

	if err := SetShowPlaceholder(ctx, kv, s.ShowPlaceholder); err != nil {
		return err
	}
	if err := SetShowPreview(ctx, kv, s.ShowPreview); err != nil {
		return err
	}
	if err := SetMaxLength(ctx, kv, s.MaxLength); err != nil {
		return err
	}
	if err := SetMinLength(ctx, kv, s.MinLength); err != nil {
		return err
	}
	return SetShuffleButtons(ctx, kv, s.ShuffleButtons)
}

// IsInit reports whether any setting has been stored.
func IsInit(ctx context.Context, kv store.KV) (bool, error) {
	for _, k := range keys {
		ok, err := kv.Has(ctx, Namespace, k)
		if err != nil {
			return false, err
		}
		if ok {
			return true, nil
		}
	}
	return false, nil
}

// Load reads the stored settings, using Default for anything not stored.
func Load(ctx context.Context, kv store.KV) (Settings, error) {
	def := Default()
	s := def

	var err error
	if s.ShowPlaceholder, err = getBool(ctx, kv, placeholderKey, def.ShowPlaceholder); err != nil {
		return def, err
	}
	if s.ShowPreview, err = getBool(ctx, kv, previewKey, def.ShowPreview); err != nil {
		return def, err
	}
	if s.MinLength, err = getInt(ctx, kv, minKey, def.MinLength); err != nil {
		return def, err
	}
	if s.MaxLength, err = getInt(ctx, kv, maxKey, def.MaxLength); err != nil {
		return def, err
	}
	if s.ShuffleButtons, err = getBool(ctx, kv, shuffleKey, def.ShuffleButtons); err != nil {
		return def, err
	}
	return s, nil
}

func SetShowPlaceholder(ctx context.Context, kv store.KV, v bool) error {
	return kv.Set(ctx, Namespace, placeholderKey, strconv.FormatBool(v))
}

func SetShowPreview(ctx context.Context, kv store.KV, v bool) error {
	return kv.Set(ctx, Namespace, previewKey, strconv.FormatBool(v))
}

func SetMinLength(ctx context.Context, kv store.KV, v int) error {
	return kv.Set(ctx, Namespace, minKey, strconv.Itoa(v))
}

func SetMaxLength(ctx context.Context, kv store.KV, v int) error {
	return kv.Set(ctx, Namespace, maxKey, strconv.Itoa(v))
}

func SetShuffleButtons(ctx context.Context, kv store.KV, v bool) error {
	return kv.Set(ctx, Namespace, shuffleKey, strconv.FormatBool(v))
}

func getBool(ctx context.Context, kv store.KV, key string, def bool) (bool, error) {
	raw, ok, err := kv.Get(ctx, Namespace, key)
	if err != nil || !ok {
		return def, err
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return def, fmt.Errorf("setting %s: %w", key, err)
	}
	return v, nil
}

func getInt(ctx context.Context, kv store.KV, key string, def int) (int, error) {
	raw, ok, err := kv.Get(ctx, Namespace, key)
	if err != nil || !ok {
		return def, err
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return def, fmt.Errorf("setting %s: %w", key, err)
	}
	return v, nil
}
