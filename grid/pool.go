package grid

import "sync"

// TrackBufferPool manages a pool of reusable track list buffers.
// After warmup, repeated layouts of transient nodes are allocation-free.
//
// Long-lived nodes should instead own one buffer per axis outright and pass
// it to InitializeTracks on every pass; the pool exists for callers that
// create and discard many grids (for example, speculative measurement
// passes).
//
// Usage:
//
//	pool := grid.NewTrackBufferPool()
//	buf := pool.Get()
//	defer pool.Put(buf)
//	grid.InitializeTracks(buf, counts, template, nil, gap, hasItems)
type TrackBufferPool struct {
	pool sync.Pool
}

// NewTrackBufferPool creates a new track buffer pool.
func NewTrackBufferPool() *TrackBufferPool {
	return &TrackBufferPool{
		pool: sync.Pool{
			New: func() any {
				buf := make([]GridTrack, 0, 16)
				return &buf
			},
		},
	}
}

// Get retrieves a buffer from the pool. The buffer is cleared and ready
// for use; its capacity is retained from previous uses.
func (p *TrackBufferPool) Get() *[]GridTrack {
	buf := p.pool.Get().(*[]GridTrack)
	*buf = (*buf)[:0]
	return buf
}

// Put returns a buffer to the pool for reuse.
func (p *TrackBufferPool) Put(buf *[]GridTrack) {
	if buf == nil {
		return
	}
	p.pool.Put(buf)
}

// Warmup pre-allocates buffers to avoid allocation during critical paths.
// Call this during initialization if allocation-free operation is required.
func (p *TrackBufferPool) Warmup(count int) {
	buffers := make([]*[]GridTrack, count)
	for i := 0; i < count; i++ {
		buffers[i] = p.Get()
	}
	for i := 0; i < count; i++ {
		p.Put(buffers[i])
	}
}

// DefaultPool is a global track buffer pool for convenience.
// For performance-critical code, consider creating dedicated pools.
var DefaultPool = NewTrackBufferPool()

// GetTrackBuffer retrieves a buffer from the default pool.
func GetTrackBuffer() *[]GridTrack {
	return DefaultPool.Get()
}

// PutTrackBuffer returns a buffer to the default pool.
func PutTrackBuffer(buf *[]GridTrack) {
	DefaultPool.Put(buf)
}
