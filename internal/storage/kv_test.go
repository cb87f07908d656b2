package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func openTestKV(t *testing.T) *KV {
	t.Helper()
	kv, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { kv.Close() })
	return kv
}

func TestOpenCreatesFile(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "dir", "test.db")

	kv, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer kv.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("database file was not created")
	}
}

func TestPutGet(t *testing.T) {
	kv := openTestKV(t)

	if err := kv.Put("greeting", []byte("hello")); err != nil {
		t.Fatalf("Put() failed: %v", err)
	}

	val, ok, err := kv.Get("greeting")
	if err != nil {
		t.Fatalf("Get() failed: %v", err)
	}
	if !ok {
		t.Fatal("Get() found nothing")
	}
	if string(val) != "hello" {
		t.Errorf("Get() = %q, expected hello", val)
	}
}

func TestGetMissing(t *testing.T) {
	kv := openTestKV(t)

	_, ok, err := kv.Get("absent")
	if err != nil {
		t.Fatalf("Get() failed: %v", err)
	}
	if ok {
		t.Error("Get() found a value for an absent key")
	}

	has, err := kv.Has("absent")
	if err != nil {
		t.Fatalf("Has() failed: %v", err)
	}
	if has {
		t.Error("Has(absent) = true")
	}
}

func TestPutOverwrites(t *testing.T) {
	kv := openTestKV(t)

	if err := kv.Put("k", []byte("one")); err != nil {
		t.Fatalf("Put() failed: %v", err)
	}
	if err := kv.Put("k", []byte("two")); err != nil {
		t.Fatalf("second Put() failed: %v", err)
	}

	val, _, _ := kv.Get("k")
	if string(val) != "two" {
		t.Errorf("Get() = %q after overwrite, expected two", val)
	}
}

func TestDelete(t *testing.T) {
	kv := openTestKV(t)

	kv.Put("k", []byte("v"))
	if err := kv.Delete("k"); err != nil {
		t.Fatalf("Delete() failed: %v", err)
	}

	if has, _ := kv.Has("k"); has {
		t.Error("key still present after Delete")
	}

	// Deleting an absent key is not an error
	if err := kv.Delete("k"); err != nil {
		t.Errorf("Delete(absent) failed: %v", err)
	}
}

func TestUpdateCommitsAllWrites(t *testing.T) {
	kv := openTestKV(t)

	err := kv.Update(func(tx *Tx) error {
		if err := tx.Put("a", []byte("1")); err != nil {
			return err
		}
		return tx.Put("b", []byte("2"))
	})
	if err != nil {
		t.Fatalf("Update() failed: %v", err)
	}

	for _, key := range []string{"a", "b"} {
		if has, _ := kv.Has(key); !has {
			t.Errorf("key %q missing after committed Update", key)
		}
	}
}

func TestUpdateRollsBackOnError(t *testing.T) {
	kv := openTestKV(t)
	kv.Put("a", []byte("before"))

	failure := errors.New("nope")
	err := kv.Update(func(tx *Tx) error {
		if err := tx.Put("a", []byte("after")); err != nil {
			return err
		}
		if err := tx.Put("b", []byte("new")); err != nil {
			return err
		}
		return failure
	})
	if !errors.Is(err, failure) {
		t.Fatalf("Update() = %v, expected wrapped failure", err)
	}

	val, _, _ := kv.Get("a")
	if string(val) != "before" {
		t.Errorf("a = %q after rollback, expected before", val)
	}
	if has, _ := kv.Has("b"); has {
		t.Error("b exists after rollback")
	}
}

func TestUpdateReadsOwnWrites(t *testing.T) {
	kv := openTestKV(t)

	err := kv.Update(func(tx *Tx) error {
		if err := tx.Put("k", []byte("v")); err != nil {
			return err
		}
		val, ok, err := tx.Get("k")
		if err != nil {
			return err
		}
		if !ok || string(val) != "v" {
			t.Errorf("Tx.Get() = %q/%v, expected in-transaction write", val, ok)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("Update() failed: %v", err)
	}
}

func TestPersistsAcrossReopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	kv, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	kv.Put("k", []byte("persisted"))
	kv.Close()

	kv2, err := Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer kv2.Close()

	val, ok, err := kv2.Get("k")
	if err != nil || !ok {
		t.Fatalf("Get() after reopen = %v/%v", ok, err)
	}
	if string(val) != "persisted" {
		t.Errorf("Get() = %q, expected persisted", val)
	}
}
