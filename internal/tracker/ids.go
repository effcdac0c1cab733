package tracker

import (
	"crypto/rand"
	"io"
	mrand "math/rand"
	"strings"

	"github.com/google/uuid"
)

// IDSource produces task identifiers.
type IDSource interface {
	NewID() string
}

// IDFunc adapts a function to IDSource.
type IDFunc func() string

func (f IDFunc) NewID() string { return f() }

// FallbackIDSource prefers random UUIDs and drops to "task-" plus seven
// base-36 characters from math/rand when the entropy source fails. The
// fallback is not collision resistant in any cryptographic sense: 36^7 ids
// give well under a one in a million chance of a clash across a few hundred
// tasks, and the store regenerates on a clash anyway.
type FallbackIDSource struct {
	// Entropy feeds uuid generation; nil means crypto/rand.
	Entropy io.Reader
}

func (s FallbackIDSource) NewID() string {
	entropy := s.Entropy
	if entropy == nil {
		entropy = rand.Reader
	}
	if id, err := uuid.NewRandomFromReader(entropy); err == nil {
		return id.String()
	}
	return fallbackID()
}

const base36 = "0123456789abcdefghijklmnopqrstuvwxyz"

func fallbackID() string {
	var b strings.Builder
	b.WriteString("task-")
	for i := 0; i < 7; i++ {
		b.WriteByte(base36[mrand.Intn(len(base36))])
	}
	return b.String()
}
