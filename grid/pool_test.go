package grid

import (
	"sync"
	"testing"

	"github.com/mwr0707/taffy"
)

func TestTrackBufferPool(t *testing.T) {
	pool := NewTrackBufferPool()

	buf := pool.Get()
	if buf == nil {
		t.Fatal("Get() returned nil")
	}
	if len(*buf) != 0 {
		t.Error("Get() should return an empty buffer")
	}

	// Use the buffer.
	template := []taffy.TemplateEntry{taffy.Single(taffy.Fixed(10))}
	InitializeTracks(buf, TrackCounts{Explicit: 1}, template, nil, taffy.Length(0), nil)
	if len(*buf) != 3 {
		t.Fatalf("len(*buf) = %d, want 3", len(*buf))
	}

	// Return to pool.
	pool.Put(buf)

	// Get again - should be cleared.
	buf2 := pool.Get()
	if len(*buf2) != 0 {
		t.Error("Get() after Put() should return a cleared buffer")
	}
}

func TestTrackBufferPoolNilPut(t *testing.T) {
	pool := NewTrackBufferPool()

	// Should not panic
	pool.Put(nil)
}

func TestTrackBufferPoolWarmup(t *testing.T) {
	pool := NewTrackBufferPool()

	pool.Warmup(10)

	buf := pool.Get()
	if buf == nil {
		t.Fatal("Get() returned nil after Warmup()")
	}
	if len(*buf) != 0 {
		t.Error("Get() should return an empty buffer after Warmup()")
	}
}

func TestTrackBufferPoolConcurrent(t *testing.T) {
	pool := NewTrackBufferPool()
	pool.Warmup(10)

	template := []taffy.TemplateEntry{
		taffy.Single(taffy.Fixed(10)),
		taffy.Single(taffy.Fixed(20)),
	}

	var wg sync.WaitGroup
	const goroutines = 10
	const iterations = 100

	for gi := 0; gi < goroutines; gi++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for it := 0; it < iterations; it++ {
				buf := pool.Get()
				InitializeTracks(buf, TrackCounts{Explicit: 2}, template, nil, taffy.Length(4), nil)
				if len(*buf) != 5 {
					t.Errorf("len(*buf) = %d, want 5", len(*buf))
				}
				pool.Put(buf)
			}
		}()
	}

	wg.Wait()
}

func TestDefaultPool(t *testing.T) {
	buf := GetTrackBuffer()
	if buf == nil {
		t.Fatal("GetTrackBuffer() returned nil")
	}
	PutTrackBuffer(buf)
}
