// Copyright (c) 2024 The Flokicoin developers
// Distributed under the MIT software license, see the accompanying
// file COPYING or http://www.opensource.org/licenses/mit-license.php.

// Package pinhash computes the digest stored for a pin.
//
// The digest is base64(SHA-1(pin)) over the raw pin bytes, with no salt.
// Identical pins therefore produce identical digests across installations.
// This is kept as is so that hosts managing their own storage, and records
// written by earlier versions, keep matching.
package pinhash

import (
	"crypto/sha1"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"hash"
	"strings"
)

// ErrAlgorithmUnavailable is returned when a hasher cannot build its digest.
var ErrAlgorithmUnavailable = errors.New("hash algorithm unavailable")

// Hasher turns a pin into the string persisted for it.
type Hasher interface {
	Hash(pin string) (string, error)
}

// HasherFunc adapts a function to the Hasher interface.
type HasherFunc func(pin string) (string, error)

func (f HasherFunc) Hash(pin string) (string, error) {
	return f(pin)
}

// Digest hashes with a digest constructor and encodes the sum with standard base64.
type Digest struct {
	New func() hash.Hash
}

// SHA1 is the default hasher.
var SHA1 Hasher = Digest{New: sha1.New}

func (d Digest) Hash(pin string) (string, error) {
	if d.New == nil {
		return "", ErrAlgorithmUnavailable
	}
	h := d.New()
	if h == nil {
		return "", ErrAlgorithmUnavailable
	}
	if _, err := h.Write([]byte(pin)); err != nil {
		return "", fmt.Errorf("%w: %v", ErrAlgorithmUnavailable, err)
	}
	return base64.StdEncoding.EncodeToString(h.Sum(nil)), nil
}

// Hash returns the default digest for pin.
func Hash(pin string) (string, error) {
	return SHA1.Hash(pin)
}

// Equal compares two digests in constant time. Trailing whitespace is
// ignored: line-wrapping base64 encoders append a newline to the digest.
func Equal(a, b string) bool {
	a = strings.TrimRight(a, " \r\n\t")
	b = strings.TrimRight(b, " \r\n\t")
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}
