package create

import (
	"context"
	"testing"

	"github.com/flokiorg/tpinlock/load"
	"github.com/flokiorg/tpinlock/lock"
	"github.com/flokiorg/tpinlock/pages/internal/pagetest"
	"github.com/flokiorg/tpinlock/pinhash"
	"github.com/flokiorg/tpinlock/shared"
)

func TestCreateSavesPin(t *testing.T) {
	cfg := pagetest.Config()
	cfg.Repeat = 2
	l, router := pagetest.NewLoad(t, cfg)
	p := NewPage(l, shared.UNLOCK)

	pagetest.Enter(t, p.pad, "1234")
	if _, ok := router.Last(); ok {
		t.Fatal("a single entry must not finish a repeat of 2")
	}
	pagetest.Enter(t, p.pad, "1234")

	ok, err := l.Pins.Check(context.Background(), shared.DefaultPinKey, "1234")
	if err != nil || !ok {
		t.Fatalf("pin must be stored, ok=%v err=%v", ok, err)
	}
	if page, ok := router.Last(); !ok || page != shared.UNLOCKED {
		t.Fatalf("expected unlocked page, got %v", router.Pages())
	}
	if l.Notif.LastState() != load.StateUnlocked {
		t.Fatalf("expected unlocked state, got %s", l.Notif.LastState())
	}
}

func TestExternalCreateShowsDigest(t *testing.T) {
	cfg := pagetest.Config()
	cfg.External = true
	l, router := pagetest.NewLoad(t, cfg)
	p := NewPage(l, shared.UNLOCK)

	pagetest.Enter(t, p.pad, "1234")

	want, _ := pinhash.Hash("1234")
	if p.digest != want {
		t.Fatalf("expected digest %q, got %q", want, p.digest)
	}
	if !p.creation.Finished() {
		t.Fatal("creation must be finished")
	}
	if _, ok := router.Last(); ok {
		t.Fatal("external creation must stay on the digest dialog")
	}
	if ok, _ := l.Pins.Exists(context.Background(), shared.DefaultPinKey); ok {
		t.Fatal("external creation must not store the pin")
	}
}

func TestCancelReturnsToOrigin(t *testing.T) {
	for _, c := range []struct {
		back  shared.Page
		state load.LockState
	}{
		{shared.UNLOCKED, load.StateUnlocked},
		{shared.UNLOCK, load.StateLocked},
	} {
		l, router := pagetest.NewLoad(t, nil)
		if _, err := l.Pins.Save(context.Background(), shared.DefaultPinKey, "1111"); err != nil {
			t.Fatal(err)
		}
		l.Notif.Broadcast(load.StateCreating)

		p := NewPage(l, c.back)
		p.pad.Dispatch(lock.Event{Kind: lock.EventBack})

		if page, ok := router.Last(); !ok || page != c.back {
			t.Fatalf("expected page %v, got %v", c.back, router.Pages())
		}
		if got := l.Notif.LastState(); got != c.state {
			t.Fatalf("expected state %s, got %s", c.state, got)
		}
	}
}

func TestCancelWithoutPinRestarts(t *testing.T) {
	l, router := pagetest.NewLoad(t, nil)
	p := NewPage(l, shared.UNLOCK)

	p.pad.Dispatch(lock.Event{Kind: lock.EventBack})
	if _, ok := router.Last(); ok {
		t.Fatal("without a stored pin the page must ask instead of navigating")
	}
	if !p.creation.Finished() {
		t.Fatal("back must finish the creation")
	}

	p.closeDialog()
	if p.creation.Finished() || p.creation.View().Description != lock.PromptNewPin {
		t.Fatal("continue must restart the creation")
	}
}
