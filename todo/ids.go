package todo

import (
	"crypto/rand"
	"errors"
	"strconv"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

// IDSource generates task ids that are unique for the life of the process.
type IDSource interface {
	NewID(now time.Time) string
}

// ULIDSource generates lexically increasing ULIDs.
// Timestamps never move backwards, and ids minted within the same
// millisecond increment the entropy, so two ids are never equal.
type ULIDSource struct {
	mu      sync.Mutex
	entropy *ulid.MonotonicEntropy
	lastMS  uint64
}

// NewULIDSource creates a ULIDSource seeded from crypto/rand.
func NewULIDSource() *ULIDSource {
	return &ULIDSource{entropy: ulid.Monotonic(rand.Reader, 0)}
}

// NewID returns a new ULID string for now.
func (s *ULIDSource) NewID(now time.Time) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	ms := ulid.Timestamp(now)
	if ms < s.lastMS {
		ms = s.lastMS
	}
	for {
		id, err := ulid.New(ms, s.entropy)
		if err == nil {
			s.lastMS = ms
			return id.String()
		}
		if !errors.Is(err, ulid.ErrMonotonicOverflow) {
			panic("todo: generate ulid: " + err.Error())
		}
		// Entropy exhausted within this millisecond; move to the next one.
		ms++
	}
}

// SequenceSource hands out prefix1, prefix2, ... in order.
type SequenceSource struct {
	mu     sync.Mutex
	prefix string
	next   uint64
}

// DefaultSequencePrefix is used when NewSequenceSource gets an empty prefix.
const DefaultSequencePrefix = "task-"

// NewSequenceSource creates a SequenceSource. An empty prefix becomes
// DefaultSequencePrefix so ids never look like bare numbers.
func NewSequenceSource(prefix string) *SequenceSource {
	if prefix == "" {
		prefix = DefaultSequencePrefix
	}
	return &SequenceSource{prefix: prefix}
}

// NewID returns the next id in the sequence. now is ignored.
func (s *SequenceSource) NewID(time.Time) string {
	s.mu.Lock()
	s.next++
	n := s.next
	s.mu.Unlock()
	return s.prefix + strconv.FormatUint(n, 10)
}
