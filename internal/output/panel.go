package output

import (
	"sync"
	"time"
)

// Panel is an in-memory surface served over HTTP.
type Panel struct {
	mu        sync.Mutex
	content   Content
	reveals   int
	updatedAt time.Time
	disposed  bool
	onDispose []func()
}

func (p *Panel) Reveal() {
	p.mu.Lock()
	p.reveals++
	p.mu.Unlock()
}

func (p *Panel) Update(c Content) {
	p.mu.Lock()
	p.content = c
	p.updatedAt = time.Now()
	p.mu.Unlock()
}

func (p *Panel) OnDispose(fn func()) {
	p.mu.Lock()
	p.onDispose = append(p.onDispose, fn)
	p.mu.Unlock()
}

// Dispose closes the panel and runs dispose callbacks once.
func (p *Panel) Dispose() {
	p.mu.Lock()
	if p.disposed {
		p.mu.Unlock()
		return
	}
	p.disposed = true
	fns := p.onDispose
	p.onDispose = nil
	p.mu.Unlock()
	for _, fn := range fns {
		fn()
	}
}

// Snapshot returns the current content and bookkeeping.
func (p *Panel) Snapshot() (c Content, reveals int, updatedAt time.Time) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.content, p.reveals, p.updatedAt
}

// Disposed reports whether Dispose has run.
func (p *Panel) Disposed() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.disposed
}

// Board tracks the single live Panel. Its Open method is a Factory.
type Board struct {
	mu      sync.Mutex
	current *Panel
}

func NewBoard() *Board { return &Board{} }

// Open creates a new panel and makes it current.
func (b *Board) Open(title string) Surface {
	p := &Panel{content: Content{Title: title}}
	p.OnDispose(func() {
		b.mu.Lock()
		if b.current == p {
			b.current = nil
		}
		b.mu.Unlock()
	})
	b.mu.Lock()
	b.current = p
	b.mu.Unlock()
	return p
}

// Current returns the live panel, or nil.
func (b *Board) Current() *Panel {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.current
}

// Close disposes the live panel. It reports whether there was one.
func (b *Board) Close() bool {
	p := b.Current()
	if p == nil {
		return false
	}
	p.Dispose()
	return true
}
