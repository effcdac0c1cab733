package tracker

import (
	"bytes"
	"errors"
	"regexp"
	"testing"

	"github.com/google/uuid"
)

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("no entropy") }

var fallbackPattern = regexp.MustCompile(`^task-[0-9a-z]{7}$`)

func TestFallbackIDSourceUsesUUID(t *testing.T) {
	id := FallbackIDSource{}.NewID()
	if _, err := uuid.Parse(id); err != nil {
		t.Fatalf("expected a uuid, got %q: %v", id, err)
	}
}

func TestFallbackIDSourceDeterministicEntropy(t *testing.T) {
	src := FallbackIDSource{Entropy: bytes.NewReader(make([]byte, 16))}
	if got := src.NewID(); got != "00000000-0000-4000-8000-000000000000" {
		t.Fatalf("unexpected id %q", got)
	}
}

func TestFallbackIDSourceWithoutEntropy(t *testing.T) {
	src := FallbackIDSource{Entropy: failingReader{}}
	for i := 0; i < 20; i++ {
		if id := src.NewID(); !fallbackPattern.MatchString(id) {
			t.Fatalf("unexpected fallback id %q", id)
		}
	}
}
