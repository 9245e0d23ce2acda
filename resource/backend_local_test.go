package resource

import (
	"errors"
	"sync"
	"testing"
)

func TestLocalBackend_Basic(t *testing.T) {
	b := NewLocalBackend()

	handle, err := b.Create(1, "test value")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if handle == 0 {
		t.Fatal("Expected non-zero handle")
	}

	val, ok := b.Get(handle)
	if !ok {
		t.Fatal("Get failed")
	}
	if val != "test value" {
		t.Fatalf("Expected 'test value', got %v", val)
	}

	typeID, ok := b.TypeID(handle)
	if !ok || typeID != 1 {
		t.Fatalf("TypeID = %d, %v; want 1, true", typeID, ok)
	}

	val, typeID, ok = b.Drop(handle)
	if !ok {
		t.Fatal("Drop failed")
	}
	if val != "test value" || typeID != 1 {
		t.Fatalf("Drop returned %v, %d", val, typeID)
	}

	if _, ok := b.Get(handle); ok {
		t.Fatal("Expected Get to fail after Drop")
	}
	if _, _, ok := b.Drop(handle); ok {
		t.Fatal("Expected second Drop to fail")
	}
}

func TestLocalBackend_StaleHandle(t *testing.T) {
	b := NewLocalBackend()

	h1, _ := b.Create(1, "first")
	b.Drop(h1)

	h2, _ := b.Create(1, "second")
	if h2.slot() != h1.slot() {
		t.Fatalf("Expected slot reuse, got slots %d and %d", h1.slot(), h2.slot())
	}
	if h1 == h2 {
		t.Fatal("Reused slot must produce a different handle")
	}

	if _, ok := b.Get(h1); ok {
		t.Fatal("Stale handle must not resolve to the new value")
	}
	if v, ok := b.Get(h2); !ok || v != "second" {
		t.Fatalf("Get(h2) = %v, %v", v, ok)
	}
}

func TestLocalBackend_GenerationWraps(t *testing.T) {
	b := NewLocalBackend()

	h, _ := b.Create(1, 0)
	for i := 0; i < genMask+5; i++ {
		b.Drop(h)
		h, _ = b.Create(1, i)
		if h == 0 {
			t.Fatalf("Create returned zero handle at iteration %d", i)
		}
		if v, ok := b.Get(h); !ok || v != i {
			t.Fatalf("Get at iteration %d = %v, %v", i, v, ok)
		}
	}
}

type dropCounter struct {
	dropped *int
}

func (d dropCounter) Drop() { *d.dropped++ }

func TestLocalBackend_Close(t *testing.T) {
	b := NewLocalBackend()

	dropped := 0
	b.Create(1, dropCounter{&dropped})
	b.Create(1, dropCounter{&dropped})
	b.Create(1, "plain")

	if err := b.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if dropped != 2 {
		t.Fatalf("Expected 2 drops on Close, got %d", dropped)
	}

	_, err := b.Create(1, "test")
	if !errors.Is(err, ErrClosed) {
		t.Fatal("Expected ErrClosed after Close")
	}

	if err := b.Close(); err != nil {
		t.Fatalf("Second Close failed: %v", err)
	}
}

func TestLocalBackend_Concurrent(t *testing.T) {
	b := NewLocalBackend()
	var wg sync.WaitGroup

	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			h, _ := b.Create(1, id)
			b.Get(h)
			b.Drop(h)
		}(i)
	}

	wg.Wait()

	if b.Len() != 0 {
		t.Fatalf("Expected Len() == 0, got %d", b.Len())
	}
}

func TestLocalBackend_Len(t *testing.T) {
	b := NewLocalBackend()

	if b.Len() != 0 {
		t.Fatal("Expected Len() == 0 initially")
	}

	h1, _ := b.Create(1, "a")
	h2, _ := b.Create(1, "b")
	b.Create(1, "c")

	if b.Len() != 3 {
		t.Fatalf("Expected Len() == 3, got %d", b.Len())
	}

	b.Drop(h1)
	if b.Len() != 2 {
		t.Fatalf("Expected Len() == 2, got %d", b.Len())
	}

	b.Drop(h2)
	if b.Len() != 1 {
		t.Fatalf("Expected Len() == 1, got %d", b.Len())
	}
}

func TestLocalBackend_Each(t *testing.T) {
	b := NewLocalBackend()

	b.Create(1, "a")
	h, _ := b.Create(2, "b")
	b.Create(1, "c")
	b.Drop(h)

	count := 0
	b.Each(func(h Handle, typeID uint32, value any) bool {
		if value == "b" {
			t.Fatal("Each visited a dropped value")
		}
		count++
		return true
	})

	if count != 2 {
		t.Fatalf("Expected to iterate over 2 items, got %d", count)
	}

	count = 0
	b.Each(func(h Handle, typeID uint32, value any) bool {
		count++
		return false
	})

	if count != 1 {
		t.Fatalf("Expected to iterate over 1 item (early term), got %d", count)
	}
}

func TestLocalBackend_InvalidHandle(t *testing.T) {
	b := NewLocalBackend()

	if _, ok := b.Get(0); ok {
		t.Fatal("Handle 0 should be invalid")
	}
	if _, ok := b.TypeID(0); ok {
		t.Fatal("Handle 0 should be invalid for TypeID")
	}
	if _, _, ok := b.Drop(0); ok {
		t.Fatal("Handle 0 should fail Drop")
	}

	if _, ok := b.Get(999); ok {
		t.Fatal("Non-existent handle should be invalid")
	}
}
