package refpool

import "github.com/refpool/refpool/internal/list"

// Manager retains the Recipe used to construct each registered asset and
// defers materialization to the first firm acquisition, allowing repeated
// materialize/cache/unload cycles without the caller re-supplying the
// recipe (spec §4.6).
type Manager[O Object] struct {
	basePool
	allocator Allocator[O]
	unloaded  list.List[*counter]
	cached    list.List[*counter]
	used      list.List[*counter]
	stats     statTracker
}

// NewManager constructs an empty Manager.
func NewManager[O Object](opts ...ManagerOption[O]) *Manager[O] {
	o := defaultManagerOptions[O]()
	for _, opt := range opts {
		opt(&o)
	}
	return &Manager[O]{
		basePool:  newBasePool(o.logger),
		allocator: o.allocator,
	}
}

// RegisterAsset stores recipe in a new counter on the Unloaded list and
// returns a LazyHandle to it. Materialization is deferred until the first
// [LazyHandle.Load].
func (m *Manager[O]) RegisterAsset(recipe Recipe[O]) LazyHandle[O] {
	c := newCounter(m)
	c.payload = recipe
	m.unloaded.PushFront(&c.Node)
	m.liveCounters++
	return newLazyHandle[O](c)
}

// Stats returns a snapshot of m's running counters.
func (m *Manager[O]) Stats() PoolStats { return m.stats.snapshot() }

// usable implements the Unloaded/Cached → Used transition: materialize if
// necessary, then splice to the tail of Used.
func (m *Manager[O]) usable(c *counter) error {
	if !c.hasObject {
		recipe := c.payload.(Recipe[O])
		obj, err := m.allocator.Allocate(recipe)
		if err != nil {
			return materializationError(recipe.String(), err)
		}
		c.setObject(obj)
		m.stats.onMaterialize()
		m.logger.Debug("refpool: manager materialized asset", "recipe", recipe.String())
	} else {
		// Coming from Cached: it is leaving the cached-bytes tally.
		m.stats.onLeaveCache(c.object.MemoryCost())
	}
	c.Node.MoveToBack(&m.used)
	return nil
}

// unloadable implements the Used → Cached transition.
func (m *Manager[O]) unloadable(c *counter) {
	c.Node.MoveToBack(&m.cached)
	m.stats.onEnterCache(c.object.MemoryCost())
}

// forgettable implements counter erasure: unload first if still loaded,
// then remove from Unloaded.
func (m *Manager[O]) forgettable(c *counter) {
	if c.hasObject {
		m.unloadCounter(c)
	}
	assert(c.objectState() == Unloaded, "manager: counter must be Unloaded immediately before forget")
	c.Node.Remove()
	m.liveCounters--
	m.stats.onForget()
}

// unloadCounter destroys c's materialized Object, moves it to Unloaded,
// and returns the number of bytes freed. c must currently be loaded.
func (m *Manager[O]) unloadCounter(c *counter) uint64 {
	cost := c.object.MemoryCost()
	m.stats.onLeaveCache(cost)
	c.clearObject()
	m.stats.onUnload()
	c.Node.MoveToBack(&m.unloaded)
	return cost
}

// Clean implements [Pool]: oldest-first eviction over the Cached list
// until budget bytes are freed or the list is exhausted.
func (m *Manager[O]) Clean(budget uint64) uint64 {
	var freed uint64
	for freed < budget {
		head := m.cached.Front()
		if head == nil {
			break
		}
		c := head.Value
		freed += m.unloadCounter(c)
		if c.isForgettable() {
			m.forgettable(c)
		}
	}
	if freed < budget {
		m.logger.Warn("refpool: clean exhausted cached list short of budget",
			"requested", HumanSize(budget), "freed", HumanSize(freed))
	}
	return freed
}

// CleanAll implements [Pool].
func (m *Manager[O]) CleanAll() uint64 { return m.Clean(cleanAllBudget()) }
