// Copyright (c) 2024 The Flokicoin developers
// Distributed under the MIT software license, see the accompanying
// file COPYING or http://www.opensource.org/licenses/mit-license.php.

package lock

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/flokiorg/tpinlock/settings"
)

// EntryListener receives the callbacks of an Entry.
type EntryListener interface {
	// OnEnterPin decides whether pin is correct when the entry has no key.
	OnEnterPin(pin string) bool
	OnCorrectPin(e *Entry)
	OnWrongPin(e *Entry)
	// OnBack is called when the user tries to leave. The entry does nothing
	// else; the host decides whether the screen may close.
	OnBack(e *Entry)
}

// EntryFuncs implements EntryListener with optional functions.
type EntryFuncs struct {
	EnterPin func(pin string) bool
	Correct  func(e *Entry)
	Wrong    func(e *Entry)
	Back     func(e *Entry)
}

func (f EntryFuncs) OnEnterPin(pin string) bool {
	return f.EnterPin != nil && f.EnterPin(pin)
}

func (f EntryFuncs) OnCorrectPin(e *Entry) {
	if f.Correct != nil {
		f.Correct(e)
	}
}

func (f EntryFuncs) OnWrongPin(e *Entry) {
	if f.Wrong != nil {
		f.Wrong(e)
	}
}

func (f EntryFuncs) OnBack(e *Entry) {
	if f.Back != nil {
		f.Back(e)
	}
}

// Entry is the controller of the unlock screen.
type Entry struct {
	pad      pad
	listener EntryListener
	pins     PinStore
	key      string
	logger   zerolog.Logger
}

func NewEntry(s settings.Settings, listener EntryListener, opts ...Option) *Entry {
	o := buildOptions(opts)

	layout := DefaultLayout()
	if s.ShuffleButtons {
		layout = Shuffle(o.rand)
	}

	e := &Entry{
		pad: pad{
			min:         s.MinLength,
			max:         s.MaxLength,
			preview:     s.ShowPreview,
			placeholder: s.ShowPlaceholder,
			layout:      layout,
			description: PromptEnterPin,
		},
		listener: listener,
		pins:     o.pins,
		key:      o.key,
		logger:   o.logger,
	}
	return e
}

// Key returns the storage key checked by the entry, empty when the listener
// checks the pin.
func (e *Entry) Key() string {
	return e.key
}

func (e *Entry) SetDescription(description string) {
	e.pad.description = description
}

func (e *Entry) Digit(pos int) bool {
	return e.pad.press(pos)
}

func (e *Entry) Delete() bool {
	return e.pad.del()
}

func (e *Entry) Clear() bool {
	return e.pad.clear()
}

// Confirm checks the entered pin and reports the result to the listener.
// It does nothing while confirmation is disabled. The entry is emptied
// afterwards whatever the outcome; a returned error means the pin could not
// be checked at all and no callback fired.
func (e *Entry) Confirm(ctx context.Context) error {
	if !e.pad.confirm {
		return nil
	}
	pin := e.pad.value()
	defer e.pad.reset()

	var correct bool
	if e.key != "" {
		ok, err := e.pins.Check(ctx, e.key, pin)
		if err != nil {
			e.logger.Error().Err(err).Str("key", e.key).Msg("pin check failed")
			return err
		}
		correct = ok
	} else {
		correct = e.listener.OnEnterPin(pin)
	}

	e.logger.Debug().
		Str("key", e.key).
		Int("length", len(pin)).
		Bool("correct", correct).
		Msg("pin entered")

	if correct {
		e.listener.OnCorrectPin(e)
	} else {
		e.listener.OnWrongPin(e)
	}
	return nil
}

func (e *Entry) Back() {
	e.listener.OnBack(e)
}

func (e *Entry) View() View {
	return e.pad.view()
}
