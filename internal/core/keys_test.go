package core

import (
	"testing"
	"time"
)

func TestKeySetPressRelease(t *testing.T) {
	k := NewKeySet()

	if k.Pressed("up") {
		t.Error("fresh set should have no pressed keys")
	}

	k.Press("up")
	if !k.Pressed("up") {
		t.Error("Pressed(up) = false after Press")
	}
	if !k.Any("down", "up") {
		t.Error("Any should report the pressed key")
	}
	if k.Any("down", "left") {
		t.Error("Any reported keys that were never pressed")
	}

	k.Release("up")
	if k.Pressed("up") {
		t.Error("Pressed(up) = true after Release")
	}
}

func TestKeySetPruneExpiresDeadlines(t *testing.T) {
	k := NewKeySet()
	now := time.Now()

	k.PressUntil("left", now.Add(100*time.Millisecond))
	k.Press("right") // held, no deadline

	k.Prune(now.Add(50 * time.Millisecond))
	if !k.Pressed("left") {
		t.Error("key expired before its deadline")
	}

	k.Prune(now.Add(200 * time.Millisecond))
	if k.Pressed("left") {
		t.Error("key survived past its deadline")
	}
	if !k.Pressed("right") {
		t.Error("Prune must not release keys held without a deadline")
	}
}

func TestKeySetPressUntilExtends(t *testing.T) {
	k := NewKeySet()
	now := time.Now()

	k.PressUntil("space", now.Add(100*time.Millisecond))
	k.PressUntil("space", now.Add(300*time.Millisecond))

	k.Prune(now.Add(200 * time.Millisecond))
	if !k.Pressed("space") {
		t.Error("re-press did not extend the hold deadline")
	}
}

func TestKeySetClear(t *testing.T) {
	k := NewKeySet()
	k.Press("a")
	k.PressUntil("b", time.Now().Add(time.Hour))

	k.Clear()
	if k.Pressed("a") || k.Pressed("b") {
		t.Error("Clear left keys pressed")
	}
}
