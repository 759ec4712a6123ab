// Copyright (c) 2024 The Flokicoin developers
// Distributed under the MIT software license, see the accompanying
// file COPYING or http://www.opensource.org/licenses/mit-license.php.

package lock

import (
	"context"
	"crypto/subtle"

	"github.com/rs/zerolog"

	"github.com/flokiorg/tpinlock/settings"
)

// CreationListener receives the callbacks of a Creation.
type CreationListener interface {
	// OnDone is called once the pin was repeated enough times. Returning
	// true asks the creation to persist it; the screen must stay open until
	// OnSaved or OnError follows.
	OnDone(c *Creation, pin string) bool
	// OnError reports ErrCanceled or ErrNoKey.
	OnError(c *Creation, err error)
	// OnSaved receives the stored digest of the new pin.
	OnSaved(c *Creation, digest string)
}

// CreationFuncs implements CreationListener with optional functions.
type CreationFuncs struct {
	Done  func(c *Creation, pin string) bool
	Error func(c *Creation, err error)
	Saved func(c *Creation, digest string)
}

func (f CreationFuncs) OnDone(c *Creation, pin string) bool {
	return f.Done != nil && f.Done(c, pin)
}

func (f CreationFuncs) OnError(c *Creation, err error) {
	if f.Error != nil {
		f.Error(c, err)
	}
}

func (f CreationFuncs) OnSaved(c *Creation, digest string) {
	if f.Saved != nil {
		f.Saved(c, digest)
	}
}

// Creation is the controller of the new pin screen. The pin must be entered
// repeat times in a row before it is finalized.
type Creation struct {
	pad      pad
	listener CreationListener
	pins     PinStore
	key      string
	logger   zerolog.Logger

	repeat        int
	confirmations int
	first         string
	hasFirst      bool
	finished      bool
}

// NewCreation builds a creation controller. repeat below 1 selects
// DefaultRepeat.
func NewCreation(s settings.Settings, listener CreationListener, repeat int, opts ...Option) *Creation {
	o := buildOptions(opts)

	if repeat < 1 {
		repeat = DefaultRepeat
	}

	return &Creation{
		pad: pad{
			min:         s.MinLength,
			max:         s.MaxLength,
			preview:     true,
			layout:      DefaultLayout(),
			description: PromptNewPin,
		},
		listener: listener,
		pins:     o.pins,
		key:      o.key,
		logger:   o.logger,
		repeat:   repeat,
	}
}

func (c *Creation) Key() string {
	return c.key
}

func (c *Creation) Repeat() int {
	return c.repeat
}

// Confirmations is the number of consecutive entries matching the first one.
func (c *Creation) Confirmations() int {
	return c.confirmations
}

func (c *Creation) Finished() bool {
	return c.finished
}

func (c *Creation) SetDescription(description string) {
	c.pad.description = description
}

func (c *Creation) Digit(pos int) bool {
	if c.finished {
		return false
	}
	return c.pad.press(pos)
}

func (c *Creation) Delete() bool {
	if c.finished {
		return false
	}
	return c.pad.del()
}

func (c *Creation) Clear() bool {
	if c.finished {
		return false
	}
	return c.pad.clear()
}

// Restart forgets the first entered pin and starts over.
func (c *Creation) Restart() {
	c.pad.reset()
	c.first = ""
	c.hasFirst = false
	c.confirmations = 0
	c.finished = false
	c.pad.description = PromptNewPin
}

// Confirm accepts the current entry. A returned error means the pin could
// not be hashed or stored; the creation is restarted in that case.
func (c *Creation) Confirm(ctx context.Context) error {
	if c.finished || !c.pad.confirm {
		return nil
	}
	pin := c.pad.value()
	c.pad.reset()

	switch {
	case !c.hasFirst:
		c.first = pin
		c.hasFirst = true
		c.pad.description = PromptRepeatPin

	case subtle.ConstantTimeCompare([]byte(c.first), []byte(pin)) == 1:
		c.confirmations++
		c.pad.description = PromptRepeatPin

	default:
		c.confirmations = 0
		c.pad.description = PromptRepeatError
		c.logger.Debug().Msg("pin confirmation mismatch")
		return nil
	}

	if c.confirmations < c.repeat-1 {
		return nil
	}
	return c.finalize(ctx, pin)
}

func (c *Creation) finalize(ctx context.Context, pin string) error {
	c.finished = true
	c.logger.Debug().Int("length", len(pin)).Int("repeat", c.repeat).Msg("pin finalized")

	if !c.listener.OnDone(c, pin) {
		return nil
	}
	if c.key == "" {
		c.listener.OnError(c, ErrNoKey)
		return nil
	}

	digest, err := c.pins.Save(ctx, c.key, pin)
	if err != nil {
		c.logger.Error().Err(err).Str("key", c.key).Msg("pin save failed")
		c.Restart()
		return err
	}
	c.listener.OnSaved(c, digest)
	return nil
}

// Back reports ErrCanceled unless the pin was already finalized.
func (c *Creation) Back() {
	if c.finished {
		return
	}
	c.finished = true
	c.listener.OnError(c, ErrCanceled)
}

func (c *Creation) View() View {
	v := c.pad.view()
	v.Finished = c.finished
	return v
}
