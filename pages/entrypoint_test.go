package pages

import (
	"context"
	"testing"

	"github.com/flokiorg/tpinlock/load"
	"github.com/flokiorg/tpinlock/pages/internal/pagetest"
	. "github.com/flokiorg/tpinlock/shared"
)

func TestReturnPage(t *testing.T) {
	if ReturnPage(load.StateUnlocked) != UNLOCKED {
		t.Fatal("a change started unlocked must return to the unlocked page")
	}
	if ReturnPage(load.StateLocked) != UNLOCK {
		t.Fatal("a change started locked must return to the unlock page")
	}
	if ReturnPage(load.StateCreating) != UNLOCK {
		t.Fatal("an unknown origin must return to the unlock page")
	}
}

func TestStartPage(t *testing.T) {
	l, _ := pagetest.NewLoad(t, nil)
	if StartPage(l) != CREATE {
		t.Fatal("without a stored pin the lock starts by creating one")
	}

	if _, err := l.Pins.Save(context.Background(), DefaultPinKey, "4321"); err != nil {
		t.Fatal(err)
	}
	if StartPage(l) != UNLOCK {
		t.Fatal("with a stored pin the lock starts locked")
	}

	l.AppConfig.New = true
	if StartPage(l) != CREATE {
		t.Fatal("--new must start by creating a pin")
	}
}

func TestStartPageExternal(t *testing.T) {
	cfg := pagetest.Config()
	cfg.External = true
	l, _ := pagetest.NewLoad(t, cfg)
	if StartPage(l) != CREATE {
		t.Fatal("external mode without a digest must create a pin")
	}

	cfg.Digest = "0123"
	if StartPage(l) != UNLOCK {
		t.Fatal("external mode with a digest must start locked")
	}
}
