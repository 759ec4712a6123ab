package pinhash

import (
	"errors"
	"hash"
	"testing"
)

func TestHashKnownVector(t *testing.T) {
	// sha1("1234") = 7110eda4d09e062aa5e4a390b0a572ac0d2c0220
	got, err := Hash("1234")
	if err != nil {
		t.Fatal(err)
	}
	if want := "cRDtpNCeBiql5KOQsKVyrA0sAiA="; got != want {
		t.Fatalf("expected %q got %q", want, got)
	}
}

func TestHashDeterministic(t *testing.T) {
	a, err := Hash("1234")
	if err != nil {
		t.Fatal(err)
	}
	b, err := Hash("1234")
	if err != nil {
		t.Fatal(err)
	}
	if a != b {
		t.Fatalf("expected identical digests, got %q and %q", a, b)
	}

	c, err := Hash("4321")
	if err != nil {
		t.Fatal(err)
	}
	if a == c {
		t.Fatalf("expected distinct digests for distinct pins")
	}
}

func TestEqual(t *testing.T) {
	d, _ := Hash("9999")

	if !Equal(d, d) {
		t.Fatal("digest should equal itself")
	}
	if !Equal(d+"\n", d) {
		t.Fatal("trailing newline should be ignored")
	}
	other, _ := Hash("0000")
	if Equal(d, other) {
		t.Fatal("different digests compared equal")
	}
	if Equal(d, "") {
		t.Fatal("empty digest compared equal")
	}
}

func TestDigestWithoutConstructor(t *testing.T) {
	_, err := Digest{}.Hash("1234")
	if !errors.Is(err, ErrAlgorithmUnavailable) {
		t.Fatalf("expected ErrAlgorithmUnavailable, got %v", err)
	}

	_, err = Digest{New: func() hash.Hash { return nil }}.Hash("1234")
	if !errors.Is(err, ErrAlgorithmUnavailable) {
		t.Fatalf("expected ErrAlgorithmUnavailable, got %v", err)
	}
}
