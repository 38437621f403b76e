// Package arena stores values in reusable slots addressed by generational keys.
//
// A Key stays valid until its value is removed. After that the slot may be
// reused for a new value, but the old key never resolves again because the
// slot generation has moved on.
package arena

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Key addresses a value stored in an Arena
type Key struct {
	Index      uint32
	Generation uint32
}

// ErrMalformedKey is returned by ParseKey for text that is not a key
var ErrMalformedKey = errors.New("malformed arena key")

// String renders the key as "<index>v<generation>"
func (k Key) String() string {
	return strconv.FormatUint(uint64(k.Index), 10) + "v" + strconv.FormatUint(uint64(k.Generation), 10)
}

// ParseKey parses the textual form produced by Key.String
func ParseKey(s string) (Key, error) {
	idx, gen, ok := strings.Cut(s, "v")
	if !ok {
		return Key{}, fmt.Errorf("%w: %q", ErrMalformedKey, s)
	}
	i, err := strconv.ParseUint(idx, 10, 32)
	if err != nil {
		return Key{}, fmt.Errorf("%w: %q", ErrMalformedKey, s)
	}
	g, err := strconv.ParseUint(gen, 10, 32)
	if err != nil {
		return Key{}, fmt.Errorf("%w: %q", ErrMalformedKey, s)
	}
	return Key{Index: uint32(i), Generation: uint32(g)}, nil
}

type slot[T any] struct {
	value      T
	generation uint32
	occupied   bool
}

// Arena is not safe for concurrent use.
type Arena[T any] struct {
	slots []slot[T]
	free  []uint32
	count int
}

// New creates an empty arena
func New[T any]() *Arena[T] {
	return &Arena[T]{}
}

// Insert stores v and returns its key
func (a *Arena[T]) Insert(v T) Key {
	a.count++
	if n := len(a.free); n > 0 {
		idx := a.free[n-1]
		a.free = a.free[:n-1]
		s := &a.slots[idx]
		s.value = v
		s.occupied = true
		return Key{Index: idx, Generation: s.generation}
	}
	a.slots = append(a.slots, slot[T]{value: v, occupied: true})
	return Key{Index: uint32(len(a.slots) - 1)}
}

// Get returns the value stored under k
func (a *Arena[T]) Get(k Key) (T, bool) {
	if !a.Contains(k) {
		var zero T
		return zero, false
	}
	return a.slots[k.Index].value, true
}

// Contains reports whether k still addresses a live value
func (a *Arena[T]) Contains(k Key) bool {
	if int(k.Index) >= len(a.slots) {
		return false
	}
	s := a.slots[k.Index]
	return s.occupied && s.generation == k.Generation
}

// Remove deletes the value under k and retires the key
func (a *Arena[T]) Remove(k Key) (T, bool) {
	var zero T
	if !a.Contains(k) {
		return zero, false
	}
	s := &a.slots[k.Index]
	v := s.value
	s.value = zero
	s.occupied = false
	s.generation++
	a.free = append(a.free, k.Index)
	a.count--
	return v, true
}

// Len returns the number of live values
func (a *Arena[T]) Len() int {
	return a.count
}

// Reset removes every value. Keys handed out before the reset stay retired.
func (a *Arena[T]) Reset() {
	var zero T
	a.free = a.free[:0]
	for i := len(a.slots) - 1; i >= 0; i-- {
		s := &a.slots[i]
		if s.occupied {
			s.generation++
		}
		s.value = zero
		s.occupied = false
		a.free = append(a.free, uint32(i))
	}
	a.count = 0
}
