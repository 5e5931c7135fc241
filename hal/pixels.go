package hal

import (
	"image/color"
	"sync"
)

// MemPixels is an in-memory LED chain. The simulator renders it and tests inspect it.
type MemPixels struct {
	mu     sync.Mutex
	buf    []color.RGBA
	frames uint64
	err    error
}

// NewMemPixels returns a chain of n dark pixels.
func NewMemPixels(n int) *MemPixels {
	if n < 0 {
		n = 0
	}
	return &MemPixels{buf: make([]color.RGBA, n)}
}

func (p *MemPixels) Len() int { return len(p.buf) }

func (p *MemPixels) WriteColors(buf []color.RGBA) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return p.err
	}
	copy(p.buf, buf)
	p.frames++
	return nil
}

// Snapshot copies the last written frame into dst and returns the frame counter.
func (p *MemPixels) Snapshot(dst []color.RGBA) uint64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	copy(dst, p.buf)
	return p.frames
}

// Frames returns how many frames were written.
func (p *MemPixels) Frames() uint64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.frames
}

// FailWith makes subsequent writes return err. A nil err restores normal writes.
func (p *MemPixels) FailWith(err error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.err = err
}
