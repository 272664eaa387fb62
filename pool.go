package refpool

import "math"

// Pool is the common eviction surface shared by [Keeper], [Manager], and
// [Cacher] (spec §4.4).
type Pool interface {
	// Clean walks the pool's Cached objects oldest-first, unloading
	// them until at least budget bytes (by MemoryCost) have been
	// freed or there is nothing left to unload. It returns the number
	// of bytes actually freed.
	Clean(budget uint64) uint64
	// CleanAll is Clean(math.MaxUint64).
	CleanAll() uint64
}

// noCopy, embedded by value, causes `go vet -copylocks` to flag any
// accidental copy of a Pool, which would duplicate the list/map
// bookkeeping its counters hold back-references into.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// basePool is shared bookkeeping common to every pool flavor: the
// live-counter tally used to assert Close's precondition, and the
// optional diagnostic logger.
type basePool struct {
	noCopy
	logger       Logger
	liveCounters int
}

func newBasePool(logger Logger) basePool {
	return basePool{logger: loggerOrNop(logger)}
}

// Close reports [ErrPoolNotEmpty] if any counter (equivalently, any
// handle) still references the pool. Per spec §4.4 and §7.3 this is a
// precondition violation; the implementation detects it and reports it as
// an error rather than silently leaking or invalidating live handles.
func (p *basePool) Close() error {
	if p.liveCounters != 0 {
		return poolNotEmptyError(p.liveCounters)
	}
	return nil
}

func cleanAllBudget() uint64 { return math.MaxUint64 }
