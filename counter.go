package refpool

import "github.com/refpool/refpool/internal/list"

// ObjectState is the three-way lifecycle state of a counter's backing
// Object, derived from its reference counts and whether the object is
// currently materialized. It never needs to be stored: it is always
// recomputed from firm/lazy/hasObject, which keeps invariant 1 of the
// design (object present iff Used or Cached) true by construction rather
// than by convention.
type ObjectState uint8

const (
	Unloaded ObjectState = iota
	Cached
	Used
)

func (s ObjectState) String() string {
	switch s {
	case Unloaded:
		return "Unloaded"
	case Cached:
		return "Cached"
	case Used:
		return "Used"
	default:
		return "ObjectState(?)"
	}
}

// hooks is implemented by a pool and invoked by its counters on the three
// state transitions described in spec §4.1. A hook may erase (forget) the
// counter it is passed; after forgettable returns, the counter must not be
// touched again.
//
// hooks (and counter below) are deliberately not parameterized by the
// Object type: the counter stores its materialized value behind the
// [Object] interface, and static typing is re-applied only at the
// [LazyHandle]/[FirmHandle] layer (spec §9's "statically-typed handle
// template parameter" over a type-erased slot). This is what lets a single
// counter be viewed through handles of different static Object types
// (casts, base/derived views) without the pool itself being generic over
// every one of them.
type hooks interface {
	// usable is invoked before firm_count transitions 0→1. It must
	// leave the counter with hasObject == true on success.
	usable(c *counter) error
	// unloadable is invoked after firm_count transitions 1→0.
	unloadable(c *counter)
	// forgettable is invoked after both counts reach zero. It may
	// destroy c.
	forgettable(c *counter)
}

// counter is the per-entity bookkeeping record described in spec §3: two
// independent reference counts, an optional materialized Object, and a
// link (via the embedded list.Node) into exactly one of the owning pool's
// three lists. Manager and Cacher counters are always linked; Keeper and
// standalone counters are never linked into any list.
type counter struct {
	list.Node[*counter]
	firm, lazy int
	object     Object
	hasObject  bool
	owner      hooks
	// payload carries pool-specific side data the counter itself does
	// not need to interpret — e.g. a Manager/Cacher's retained Recipe.
	// Keeping it here (rather than recovering a containing struct via
	// pointer arithmetic) keeps counter usable as a plain, ungeneric
	// type regardless of which generic pool owns it.
	payload any
}

// newCounter creates a counter with zero counts and no object, owned by
// owner. Callers are responsible for giving it an initial list placement.
func newCounter(owner hooks) *counter {
	c := &counter{owner: owner}
	c.Node.Value = c
	return c
}

// hold implements the counter's "hold" operation: firm_count += 1,
// materializing first if the counter is not already Used. On
// materialization failure the count is left unchanged and the error is
// returned.
func (c *counter) hold() (Object, error) {
	if c.firm == 0 {
		if err := c.owner.usable(c); err != nil {
			return nil, err
		}
	}
	c.firm++
	return c.object, nil
}

// release implements the counter's "release" operation. If the counter
// survives (is not forgotten), the returned bool is true.
func (c *counter) release() (survives bool) {
	c.firm--
	if c.firm == 0 {
		c.owner.unloadable(c)
	}
	if c.firm == 0 && c.lazy == 0 {
		c.owner.forgettable(c)
		return false
	}
	return true
}

func (c *counter) lazyHold() { c.lazy++ }

// lazyRelease implements "lazy_release". Returns false if the counter was
// forgotten as a result.
func (c *counter) lazyRelease() (survives bool) {
	c.lazy--
	if c.firm == 0 && c.lazy == 0 {
		c.owner.forgettable(c)
		return false
	}
	return true
}

func (c *counter) isUsable() bool      { return c.firm > 0 }
func (c *counter) isUnloadable() bool  { return c.firm == 0 && c.lazy > 0 }
func (c *counter) isForgettable() bool { return c.firm == 0 && c.lazy == 0 }
func (c *counter) isLoaded() bool      { return c.hasObject }
func (c *counter) isCached() bool      { return c.isUnloadable() && c.hasObject }

func (c *counter) objectState() ObjectState {
	switch {
	case c.firm > 0:
		return Used
	case c.hasObject:
		return Cached
	default:
		return Unloaded
	}
}

// setObject installs a freshly materialized value, marking the counter
// loaded.
func (c *counter) setObject(o Object) {
	c.object = o
	c.hasObject = true
}

// clearObject discards the materialized value, marking the counter
// unloaded. The caller is responsible for having already accounted for
// MemoryCost before calling this.
func (c *counter) clearObject() {
	c.object = nil
	c.hasObject = false
}
