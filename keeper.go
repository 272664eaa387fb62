package refpool

// Keeper materializes each asset immediately on registration and does not
// retain its Recipe: there is no Cached state, no eviction, and no
// re-materialization. An asset's Object stays alive for exactly as long as
// any handle (firm or lazy) to it survives (spec §4.5).
type Keeper[O Object] struct {
	basePool
	allocator Allocator[O]
}

// NewKeeper constructs an empty Keeper.
func NewKeeper[O Object](opts ...ManagerOption[O]) *Keeper[O] {
	o := defaultManagerOptions[O]()
	for _, opt := range opts {
		opt(&o)
	}
	return &Keeper[O]{
		basePool:  newBasePool(o.logger),
		allocator: o.allocator,
	}
}

// NewAsset materializes recipe immediately and returns a LazyHandle bound
// to it. recipe is not retained.
func (k *Keeper[O]) NewAsset(recipe Recipe[O]) (LazyHandle[O], error) {
	obj, err := k.allocator.Allocate(recipe)
	if err != nil {
		return LazyHandle[O]{}, materializationError(recipe.String(), err)
	}
	c := newCounter(k)
	c.setObject(obj)
	k.liveCounters++
	k.logger.Debug("refpool: keeper materialized asset", "recipe", recipe.String())
	return newLazyHandle[O](c), nil
}

// Clean implements [Pool]. A Keeper never retains an unreferenced Object,
// so there is nothing to evict.
func (k *Keeper[O]) Clean(uint64) uint64 { return 0 }

// CleanAll implements [Pool].
func (k *Keeper[O]) CleanAll() uint64 { return k.Clean(cleanAllBudget()) }

func (k *Keeper[O]) usable(*counter) error { return nil }
func (k *Keeper[O]) unloadable(*counter)   {}

func (k *Keeper[O]) forgettable(c *counter) {
	c.clearObject()
	k.liveCounters--
	k.logger.Debug("refpool: keeper forgot asset")
}
