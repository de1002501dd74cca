package form

import "sync"

// OpClass names a class of mutating operation that must not interleave with
// a second in-flight instance of itself.
type OpClass string

const (
	OpLoad   OpClass = "load"
	OpExport OpClass = "export"
)

// OpGuard is a per-class generation counter. Starting an operation bumps the
// class generation; a completion holding an older token is stale and must
// not swap its result in. This closes the duplicate-load window where a
// second template load started mid-flight could interleave with the first.
type OpGuard struct {
	mu  sync.Mutex
	gen map[OpClass]uint64
}

// NewOpGuard returns a guard with all generations at zero.
func NewOpGuard() *OpGuard {
	return &OpGuard{gen: make(map[OpClass]uint64)}
}

// Begin marks the start of an operation and returns its token.
func (g *OpGuard) Begin(class OpClass) uint64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.gen[class]++
	return g.gen[class]
}

// Stale reports whether a later Begin superseded the given token.
func (g *OpGuard) Stale(class OpClass, token uint64) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.gen[class] != token
}
