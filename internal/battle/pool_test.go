// internal/battle/pool_test.go
package battle

import "testing"

func TestPoolAcquireBeyondCapacity(t *testing.T) {
	p := NewProjectilePool(2)
	a := p.Acquire()
	b := p.Acquire()
	c := p.Acquire() // список пуст — создаётся новый экземпляр
	if a == nil || b == nil || c == nil {
		t.Fatal("Acquire returned nil")
	}
	if p.FreeCount() != 0 {
		t.Fatalf("FreeCount = %d, want 0", p.FreeCount())
	}

	p.Release(a)
	p.Release(b)
	p.Release(c)
	if p.FreeCount() != 3 {
		t.Fatalf("FreeCount after release = %d, want 3", p.FreeCount())
	}
}

func TestPoolReleaseNilIsNoop(t *testing.T) {
	p := NewProjectilePool(1)
	p.Release(nil)
	if p.FreeCount() != 1 {
		t.Fatalf("FreeCount = %d, want 1", p.FreeCount())
	}
}
