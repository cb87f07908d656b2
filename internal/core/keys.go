package core

import (
	"sync"
	"time"
)

// KeyView is the read-only view of the pressed-key set handed to games.
// The underlying set is mutated by the host's input handling between
// frames; games must not assume stability across two reads.
type KeyView interface {
	// Pressed reports whether the named key is currently held.
	Pressed(key string) bool
	// Any reports whether any of the named keys is currently held.
	Any(keys ...string) bool
}

// KeySet tracks currently-pressed input keys. The host adds keys on
// key-down and removes them on key-up. Terminals deliver no key-up
// events, so the host may instead press keys with a hold deadline and
// prune expired entries once per frame.
type KeySet struct {
	mu   sync.Mutex
	keys map[string]time.Time // zero time means held until released
}

// NewKeySet creates an empty key set.
func NewKeySet() *KeySet {
	return &KeySet{keys: make(map[string]time.Time)}
}

// Press marks a key as held until Release is called.
func (k *KeySet) Press(key string) {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.keys[key] = time.Time{}
}

// PressUntil marks a key as held until the given deadline passes.
// Pressing again extends the deadline.
func (k *KeySet) PressUntil(key string, deadline time.Time) {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.keys[key] = deadline
}

// Release removes a key from the set.
func (k *KeySet) Release(key string) {
	k.mu.Lock()
	defer k.mu.Unlock()
	delete(k.keys, key)
}

// Prune removes keys whose hold deadline is before now.
func (k *KeySet) Prune(now time.Time) {
	k.mu.Lock()
	defer k.mu.Unlock()
	for key, deadline := range k.keys {
		if !deadline.IsZero() && deadline.Before(now) {
			delete(k.keys, key)
		}
	}
}

// Clear releases all keys.
func (k *KeySet) Clear() {
	k.mu.Lock()
	defer k.mu.Unlock()
	for key := range k.keys {
		delete(k.keys, key)
	}
}

// Pressed implements KeyView.
func (k *KeySet) Pressed(key string) bool {
	k.mu.Lock()
	defer k.mu.Unlock()
	_, ok := k.keys[key]
	return ok
}

// Any implements KeyView.
func (k *KeySet) Any(keys ...string) bool {
	k.mu.Lock()
	defer k.mu.Unlock()
	for _, key := range keys {
		if _, ok := k.keys[key]; ok {
			return true
		}
	}
	return false
}

var _ KeyView = (*KeySet)(nil)
