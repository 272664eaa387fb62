package refpool

// standaloneHooks is the singleton hooks implementation shared by every
// standalone counter. A standalone counter never has a firm count of zero
// while alive under normal use (it starts at one and the caller typically
// holds it for the object's whole lifetime), so usable and unloadable are
// unreachable in practice; they are still implemented correctly in case a
// caller clones and releases handles down to zero and back up.
type standaloneHooks struct{}

func (standaloneHooks) usable(c *counter) error { return nil }

func (standaloneHooks) unloadable(c *counter) {}

// forgettable is reached once both counts fall to zero. There is no list or
// index to erase c from — a standalone counter was never linked into one —
// so this only needs to release the embedded Object for garbage collection.
func (standaloneHooks) forgettable(c *counter) { c.clearObject() }

var sharedStandaloneHooks standaloneHooks

// MakeStandalone wraps an already-constructed Object in a counter that
// behaves like any pool-issued one for handle purposes, without belonging
// to a Manager, Cacher, or Keeper (spec §4.8). The returned FirmHandle
// starts with a firm count of one; releasing it down to zero (with no lazy
// handles outstanding) is what finally drops obj.
//
// This is the escape hatch for objects a caller owns directly — a
// stack-scoped value, something received from an unrelated subsystem — but
// still wants to hand to code written against LazyHandle/FirmHandle.
func MakeStandalone[O Object](obj O) FirmHandle[O] {
	c := &counter{owner: sharedStandaloneHooks}
	c.Node.Value = c
	c.setObject(obj)
	c.firm = 1
	return FirmHandle[O]{c: c, obj: obj}
}
