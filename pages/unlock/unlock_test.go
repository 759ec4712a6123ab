package unlock

import (
	"context"
	"strings"
	"testing"

	"github.com/flokiorg/tpinlock/load"
	"github.com/flokiorg/tpinlock/pages/internal/pagetest"
	"github.com/flokiorg/tpinlock/pinhash"
	"github.com/flokiorg/tpinlock/shared"
)

func TestExternalDigestUnlock(t *testing.T) {
	digest, err := pinhash.Hash("2468")
	if err != nil {
		t.Fatal(err)
	}
	cfg := pagetest.Config()
	cfg.External = true
	// digests written by older hosts end with a newline
	cfg.Digest = digest + "\n"

	l, router := pagetest.NewLoad(t, cfg)
	p := NewPage(l)
	if p.entry.Key() != "" {
		t.Fatal("external mode must not check the store")
	}

	pagetest.Enter(t, p.pad, "1357")
	if _, ok := router.Last(); ok {
		t.Fatal("wrong pin must not navigate")
	}
	if p.failures != 1 || !strings.Contains(p.entry.View().Description, "Wrong PIN") {
		t.Fatalf("wrong pin must be reported, failures=%d description=%q", p.failures, p.entry.View().Description)
	}
	if l.Notif.LastState() != load.StateLocked {
		t.Fatalf("expected locked state, got %s", l.Notif.LastState())
	}

	pagetest.Enter(t, p.pad, "2468")
	if page, ok := router.Last(); !ok || page != shared.UNLOCKED {
		t.Fatalf("expected unlocked page, got %v", router.Pages())
	}
	if l.Notif.LastState() != load.StateUnlocked {
		t.Fatalf("expected unlocked state, got %s", l.Notif.LastState())
	}
	if p.failures != 0 {
		t.Fatal("failures must reset after unlocking")
	}
}

func TestStoredPinUnlock(t *testing.T) {
	l, router := pagetest.NewLoad(t, nil)
	if _, err := l.Pins.Save(context.Background(), shared.DefaultPinKey, "9999"); err != nil {
		t.Fatal(err)
	}

	p := NewPage(l)
	pagetest.Enter(t, p.pad, "0000")
	if _, ok := router.Last(); ok {
		t.Fatal("wrong pin must not navigate")
	}

	pagetest.Enter(t, p.pad, "9999")
	if page, ok := router.Last(); !ok || page != shared.UNLOCKED {
		t.Fatalf("expected unlocked page, got %v", router.Pages())
	}
}
