// Copyright (c) 2024 The Flokicoin developers
// Distributed under the MIT software license, see the accompanying
// file COPYING or http://www.opensource.org/licenses/mit-license.php.

package lock

import (
	"context"
	"errors"
	"math/rand/v2"

	"github.com/rs/zerolog"
)

var (
	// ErrCanceled is reported when the creation screen is left before the
	// pin was finalized.
	ErrCanceled = errors.New("pin creation canceled")
	// ErrNoKey is reported when persistence was accepted but the screen has
	// no storage key.
	ErrNoKey = errors.New("no key to save the pin")
)

const (
	PromptEnterPin    = "Enter your PIN"
	PromptNewPin      = "Choose a new PIN"
	PromptRepeatPin   = "Repeat your PIN"
	PromptRepeatError = "PINs do not match, try again"
)

// DefaultRepeat is the number of times a new pin must be entered.
const DefaultRepeat = 1

// PinStore checks and persists hashed pins under caller supplied keys.
type PinStore interface {
	Check(ctx context.Context, key, pin string) (bool, error)
	Save(ctx context.Context, key, pin string) (string, error)
}

type options struct {
	pins   PinStore
	key    string
	rand   *rand.Rand
	logger zerolog.Logger
}

type Option func(*options)

// WithKey lets the controller check (entry) or save (creation) the pin in
// pins under key. Without it the listener owns pin persistence.
func WithKey(pins PinStore, key string) Option {
	return func(o *options) {
		o.pins = pins
		o.key = key
	}
}

// WithRand sets the source used to shuffle the pad.
func WithRand(r *rand.Rand) Option {
	return func(o *options) {
		o.rand = r
	}
}

func WithLogger(logger zerolog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

func buildOptions(opts []Option) options {
	o := options{logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(&o)
	}
	if o.pins == nil {
		o.key = ""
	}
	return o
}

// Shuffle returns a uniformly random pad layout. A nil r uses the global
// source.
func Shuffle(r *rand.Rand) Layout {
	l := DefaultLayout()
	swap := func(i, j int) { l[i], l[j] = l[j], l[i] }
	if r == nil {
		rand.Shuffle(len(l), swap)
	} else {
		r.Shuffle(len(l), swap)
	}
	return l
}
