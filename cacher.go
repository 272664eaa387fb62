package refpool

import (
	"github.com/google/btree"

	"github.com/refpool/refpool/internal/list"
)

// btreeDegree mirrors the degree launix-de-memcp's storage index uses for
// its own btree.BTreeG index: a mid-sized branching factor that keeps tree
// height low without making node splits expensive for the recipe-sized
// keys this index holds.
const btreeDegree = 32

// Cacher is a Manager with deduplication: identical recipes (by a
// caller-supplied total order) converge on the same counter, so two
// callers retrieving "the same thing" get the same Object as long as at
// least one handle to it survives (spec §4.7).
type Cacher[O Object] struct {
	basePool
	allocator Allocator[O]
	unloaded  list.List[*counter]
	cached    list.List[*counter]
	used      list.List[*counter]
	index     *btree.BTreeG[*counter]
	stats     statTracker
}

// NewCacher constructs an empty Cacher.
func NewCacher[O Object](opts ...CacherOption[O]) *Cacher[O] {
	o := defaultCacherOptions[O]()
	for _, opt := range opts {
		opt(&o)
	}
	c := &Cacher[O]{
		basePool:  newBasePool(o.logger),
		allocator: o.allocator,
	}
	c.index = btree.NewG(btreeDegree, func(a, b *counter) bool {
		return a.payload.(OrderedRecipe[O]).Compare(b.payload.(OrderedRecipe[O])) < 0
	})
	return c
}

// RetrieveAsset returns a LazyHandle for recipe, reusing an existing
// counter when one is already registered for an equal recipe (per
// recipe.Compare), or registering a new one on the Unloaded list
// otherwise.
func (c *Cacher[O]) RetrieveAsset(recipe OrderedRecipe[O]) LazyHandle[O] {
	probe := &counter{payload: recipe}
	if existing, ok := c.index.Get(probe); ok {
		return newLazyHandle[O](existing)
	}
	nc := newCounter(c)
	nc.payload = recipe
	c.index.ReplaceOrInsert(nc)
	c.unloaded.PushFront(&nc.Node)
	c.liveCounters++
	return newLazyHandle[O](nc)
}

// Stats returns a snapshot of c's running counters.
func (c *Cacher[O]) Stats() PoolStats { return c.stats.snapshot() }

func (c *Cacher[O]) usable(ct *counter) error {
	if !ct.hasObject {
		recipe := ct.payload.(OrderedRecipe[O])
		obj, err := c.allocator.Allocate(recipe)
		if err != nil {
			return materializationError(recipe.String(), err)
		}
		ct.setObject(obj)
		c.stats.onMaterialize()
		c.logger.Debug("refpool: cacher materialized asset", "recipe", recipe.String())
	} else {
		c.stats.onLeaveCache(ct.object.MemoryCost())
	}
	ct.Node.MoveToBack(&c.used)
	return nil
}

func (c *Cacher[O]) unloadable(ct *counter) {
	ct.Node.MoveToBack(&c.cached)
	c.stats.onEnterCache(ct.object.MemoryCost())
}

// forgettable erases both the Unloaded-list entry and the index entry.
// Unloading alone (see unloadCounter) deliberately does not touch the
// index, so a Cached-then-unloaded-but-not-forgotten counter keeps
// deduplicating against future RetrieveAsset calls for the same recipe.
func (c *Cacher[O]) forgettable(ct *counter) {
	if ct.hasObject {
		c.unloadCounter(ct)
	}
	assert(ct.objectState() == Unloaded, "cacher: counter must be Unloaded immediately before forget")
	c.index.Delete(ct)
	ct.Node.Remove()
	c.liveCounters--
	c.stats.onForget()
}

func (c *Cacher[O]) unloadCounter(ct *counter) uint64 {
	cost := ct.object.MemoryCost()
	c.stats.onLeaveCache(cost)
	ct.clearObject()
	c.stats.onUnload()
	ct.Node.MoveToBack(&c.unloaded)
	return cost
}

// Clean implements [Pool]: oldest-first eviction over the Cached list.
// A counter unloaded here that also has zero lazy holders is forgotten
// immediately afterward (and its index entry erased with it); Clean never
// mutates lazy counts itself, so this is the only way a Cached counter
// becomes forgettable during a Clean pass.
func (c *Cacher[O]) Clean(budget uint64) uint64 {
	var freed uint64
	for freed < budget {
		head := c.cached.Front()
		if head == nil {
			break
		}
		ct := head.Value
		freed += c.unloadCounter(ct)
		if ct.isForgettable() {
			c.forgettable(ct)
		}
	}
	if freed < budget {
		c.logger.Warn("refpool: clean exhausted cached list short of budget",
			"requested", HumanSize(budget), "freed", HumanSize(freed))
	}
	return freed
}

// CleanAll implements [Pool].
func (c *Cacher[O]) CleanAll() uint64 { return c.Clean(cleanAllBudget()) }
