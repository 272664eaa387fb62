// Package refpool implements a generic, in-process asset pool: a
// policy-driven lifecycle manager that mediates between handles held by
// caller code and the in-memory representations of heavy objects (decoded
// textures, parsed documents, compiled shaders, anything expensive to
// construct and worth holding onto for a while).
//
// The central idea is dual reference counting over a single three-state
// lifecycle:
//
//   - Unloaded: no materialized object, nobody is even pretending to want
//     one (identity-only handles may still exist).
//
//   - Cached: the object is materialized but nobody currently holds a firm
//     handle to it; it survives until evicted or a new firm handle is
//     taken out.
//
//   - Used: at least one firm handle exists; the object is guaranteed
//     materialized and stable for the handle's lifetime.
//
// A [LazyHandle] binds identity without forcing materialization. A
// [FirmHandle] guarantees the object is materialized for as long as the
// handle is held. Upgrading a lazy handle to firm via [LazyHandle.Load]
// may trigger materialization; dropping the last firm handle demotes the
// object to Cached rather than discarding it outright, so a subsequent
// upgrade can be free.
//
// Three pool flavors realize this lifecycle against different retention
// policies:
//
//   - [Keeper] materializes immediately and discards as soon as no handle
//     (firm or lazy) remains. It never retains a recipe and never caches.
//
//   - [Manager] retains the recipe used to construct each object and
//     defers materialization to the first firm acquisition, allowing
//     repeated materialize/cache/unload cycles from the same recipe.
//
//   - [Cacher] is a Manager plus deduplication: identical recipes (by a
//     caller-supplied total order) converge on the same counter, so two
//     callers asking for "the same thing" get the same object as long as
//     at least one handle to it survives.
//
// Eviction is synchronous and caller-driven: [Pool.Clean] walks the Cached
// list oldest-first, unloading objects until the requested byte budget is
// freed or the list is exhausted. There are no background workers and no
// internal synchronization; a single Pool and its counters must be used
// from one goroutine at a time (distinct Pools may be used concurrently
// from distinct goroutines, provided no handle crosses between them).
//
// Glossary:
//
//   - Recipe: a caller-provided description of how to construct an
//     Object, plus a load-cost hint.
//
//   - Object: the heavy value ultimately handed to callers. Must report
//     its own approximate memory footprint via MemoryCost.
//
//   - counter: the per-entity bookkeeping record backing every handle:
//     two reference counts, an optional materialized Object, and, in a
//     Manager or Cacher, a link into exactly one of the pool's three
//     internal lists (Keeper and standalone counters are not linked into
//     any list).
//
//   - Forgettable: both counts at zero and the object absent; the
//     counter is erased before the triggering call returns.
package refpool
