package refpool

// PoolStats is a snapshot of a Manager or Cacher's running counters,
// returned by value. There is no background collection: every field is a
// plain monotonic (or current-state) counter updated inline by the
// operation that changes it.
type PoolStats struct {
	Materializations uint64 // total successful Build calls
	Unloads          uint64 // total objects discarded (Cached -> Unloaded)
	Forgets          uint64 // total counters erased
	CachedBytes      uint64 // current sum of MemoryCost over the Cached list
}

type statTracker struct {
	stats PoolStats
}

func (t *statTracker) onMaterialize()           { t.stats.Materializations++ }
func (t *statTracker) onEnterCache(cost uint64) { t.stats.CachedBytes += cost }
func (t *statTracker) onLeaveCache(cost uint64) { t.stats.CachedBytes -= cost }
func (t *statTracker) onUnload()                { t.stats.Unloads++ }
func (t *statTracker) onForget()                { t.stats.Forgets++ }
func (t *statTracker) snapshot() PoolStats      { return t.stats }
