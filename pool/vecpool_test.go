package pool_test

import (
	"testing"

	"github.com/MrAwesomeRocks/libds/pool"
	"github.com/MrAwesomeRocks/libds/vec"
)

func TestVectorPoolReuse(t *testing.T) {
	p := pool.NewVectorPool[int](8)

	v1 := p.Get(128)
	if v1.Cap() < 128 {
		t.Fatalf("capacity %d, want >= 128", v1.Cap())
	}
	p.Put(v1)

	v2 := p.Get(64)
	// v2 should reuse v1's grown storage.
	if v2.Cap() < 128 {
		t.Error("vector capacity too small; reuse failed")
	}
	if v2.Len() != 0 {
		t.Errorf("recycled vector not cleared: len %d", v2.Len())
	}

	st := p.Stats()
	if st.Hits != 1 || st.Misses != 1 {
		t.Errorf("stats = %+v, want 1 hit / 1 miss", st)
	}
}

func TestVectorPoolGrowsUndersizedIdle(t *testing.T) {
	p := pool.NewVectorPool[int](8)
	p.Put(vec.WithCapacity[int](4))

	v := p.Get(32)
	if v.Cap() < 32 {
		t.Fatalf("capacity %d, want >= 32", v.Cap())
	}
	if st := p.Stats(); st.Hits != 1 {
		t.Errorf("undersized idle vector should still count as a hit: %+v", st)
	}
}

func TestVectorPoolBounded(t *testing.T) {
	p := pool.NewVectorPool[int](2)
	for i := 0; i < 5; i++ {
		p.Put(vec.WithCapacity[int](8))
	}
	if st := p.Stats(); st.Idle != 2 {
		t.Errorf("idle = %d, want 2 (overflow released)", st.Idle)
	}
}

func TestVectorPoolPutNil(t *testing.T) {
	p := pool.NewVectorPool[int](2)
	p.Put(nil)
	if st := p.Stats(); st.Idle != 0 {
		t.Errorf("idle = %d, want 0", st.Idle)
	}
}

func TestSyncPool(t *testing.T) {
	sp := pool.NewSyncPool[byte](512)
	v := sp.Get()
	if v.Cap() != 512 {
		t.Fatalf("capacity %d, want 512", v.Cap())
	}
	if err := v.Append(1, 2, 3); err != nil {
		t.Fatal(err)
	}
	sp.Put(v)

	// Put clears before parking, so whatever Get hands out is empty.
	v2 := sp.Get()
	if v2.Len() != 0 {
		t.Errorf("recycled vector not cleared: len %d", v2.Len())
	}
	if v2.Cap() < 512 {
		t.Errorf("capacity hint lost: %d", v2.Cap())
	}
}

func TestSyncPoolPutNil(t *testing.T) {
	sp := pool.NewSyncPool[int](8)
	sp.Put(nil)
	if v := sp.Get(); v.Len() != 0 || v.Cap() != 8 {
		t.Errorf("unexpected vector after nil Put: len=%d cap=%d", v.Len(), v.Cap())
	}
}
