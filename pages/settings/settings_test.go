package settings

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rivo/tview"

	"github.com/flokiorg/tpinlock/pages/internal/pagetest"
	pinsettings "github.com/flokiorg/tpinlock/settings"
	"github.com/flokiorg/tpinlock/shared"
)

func setLengths(p *Settings, minText, maxText string) {
	p.form.GetFormItem(0).(*tview.InputField).SetText(minText)
	p.form.GetFormItem(1).(*tview.InputField).SetText(maxText)
}

func TestValuesRejectsNonNumericLength(t *testing.T) {
	l, _ := pagetest.NewLoad(t, nil)
	p := NewPage(l)

	setLengths(p, "abc", "4")
	if _, err := p.Values(); !errors.Is(err, pinsettings.ErrConfiguration) {
		t.Fatalf("expected ErrConfiguration, got %v", err)
	}

	setLengths(p, "2", "9x")
	if _, err := p.Values(); !errors.Is(err, pinsettings.ErrConfiguration) {
		t.Fatalf("expected ErrConfiguration, got %v", err)
	}
}

func TestValuesKeepsLengthsAsTyped(t *testing.T) {
	l, _ := pagetest.NewLoad(t, nil)
	p := NewPage(l)

	setLengths(p, "2", "30")
	s, err := p.Values()
	if err != nil {
		t.Fatal(err)
	}
	if s.MinLength != 2 || s.MaxLength != 30 {
		t.Fatalf("expected 2..30, got %d..%d", s.MinLength, s.MaxLength)
	}
}

func TestSaveRejectsInvalidLengths(t *testing.T) {
	for _, c := range []struct {
		min, max string
	}{
		{"abc", "4"},
		{"2", "9x"},
		{"0", "4"},
		{"", "4"},
		{"5", "3"},
	} {
		l, router := pagetest.NewLoad(t, nil)
		p := NewPage(l)
		setLengths(p, c.min, c.max)

		p.save()
		if _, ok := router.Last(); ok {
			t.Fatalf("min=%q max=%q: invalid settings must not navigate", c.min, c.max)
		}
		if toast := pagetest.Toast(l); !strings.Contains(toast, "Error") {
			t.Fatalf("min=%q max=%q: expected an error toast, got %q", c.min, c.max, toast)
		}
		if l.Settings() != pinsettings.Default() {
			t.Fatalf("min=%q max=%q: settings must not change", c.min, c.max)
		}
		if ok, _ := pinsettings.IsInit(context.Background(), l.KV); ok {
			t.Fatalf("min=%q max=%q: nothing must be stored", c.min, c.max)
		}
	}
}

func TestSaveStoresSettings(t *testing.T) {
	l, router := pagetest.NewLoad(t, nil)
	p := NewPage(l)
	setLengths(p, "3", "12")
	p.shuffle.SetOn(true)

	p.save()
	if page, ok := router.Last(); !ok || page != shared.UNLOCKED {
		t.Fatalf("expected unlocked page, got %v", router.Pages())
	}

	stored, err := pinsettings.Load(context.Background(), l.KV)
	if err != nil {
		t.Fatal(err)
	}
	if stored.MinLength != 3 || stored.MaxLength != 12 || !stored.ShuffleButtons {
		t.Fatalf("unexpected stored settings %+v", stored)
	}
	if l.Settings() != stored {
		t.Fatalf("load settings %+v differ from stored %+v", l.Settings(), stored)
	}
}

func TestBackReturnsToUnlocked(t *testing.T) {
	l, router := pagetest.NewLoad(t, nil)
	p := NewPage(l)
	setLengths(p, "abc", "")

	p.back()
	if page, ok := router.Last(); !ok || page != shared.UNLOCKED {
		t.Fatalf("expected unlocked page, got %v", router.Pages())
	}
	if ok, _ := pinsettings.IsInit(context.Background(), l.KV); ok {
		t.Fatal("back must not store anything")
	}
}
