package refpool_test

import (
	"errors"
	"fmt"

	"github.com/refpool/refpool"
)

// asset is the test Object: a small value with a caller-chosen cost and a
// counter of how many times Build constructed one, for assertions about
// materialization being deferred/re-triggered the expected number of
// times.
type asset struct {
	id   int
	cost uint64
}

func (a *asset) MemoryCost() uint64 { return a.cost }

var errBuildFailed = errors.New("asset: build failed")

// assetRecipe is a Recipe[*asset] that counts its own Build calls and can
// be told to fail.
type assetRecipe struct {
	id     int
	cost   uint64
	fail   bool
	builds *int
}

func newAssetRecipe(id int, cost uint64, builds *int) *assetRecipe {
	return &assetRecipe{id: id, cost: cost, builds: builds}
}

func (r *assetRecipe) Build() (*asset, error) {
	if r.builds != nil {
		*r.builds++
	}
	if r.fail {
		return nil, errBuildFailed
	}
	return &asset{id: r.id, cost: r.cost}, nil
}

func (r *assetRecipe) LoadCost() uint64 { return r.cost }
func (r *assetRecipe) String() string   { return fmt.Sprintf("asset#%d", r.id) }

// orderedAssetRecipe additionally satisfies refpool.OrderedRecipe, ordering
// by id.
type orderedAssetRecipe struct {
	*assetRecipe
}

func newOrderedAssetRecipe(id int, cost uint64, builds *int) orderedAssetRecipe {
	return orderedAssetRecipe{newAssetRecipe(id, cost, builds)}
}

func (r orderedAssetRecipe) Compare(other refpool.OrderedRecipe[*asset]) int {
	o := other.(orderedAssetRecipe)
	switch {
	case r.id < o.id:
		return -1
	case r.id > o.id:
		return 1
	default:
		return 0
	}
}

var _ refpool.Recipe[*asset] = (*assetRecipe)(nil)
var _ refpool.OrderedRecipe[*asset] = orderedAssetRecipe{}

// assetView shares asset's exact field layout (an int then a uint64) so it
// can stand in as the target of a reinterpret cast: bit-reinterpreting a
// *asset as a *assetView must still read back the same id/cost.
type assetView struct {
	id   int
	cost uint64
}

func (v *assetView) MemoryCost() uint64 { return v.cost }

// shapeBase and square ground spec.md §8 scenario 5 ("Inheritance"),
// mirroring original_source/examples/test_inheritance/main.cpp's
// TestAssetBase/TestAssetDerived split: a base Object interface with a
// method beyond MemoryCost (Kind, callable through the base), and a
// concrete type implementing it whose side field is reachable only after a
// successful dynamic cast down.
type shapeBase interface {
	refpool.Object
	Kind() string
}

type square struct{ side uint64 }

func (s *square) MemoryCost() uint64 { return s.side * s.side }
func (s *square) Kind() string       { return "square" }

type squareRecipe struct{ side uint64 }

func (r squareRecipe) Build() (shapeBase, error) { return &square{side: r.side}, nil }
func (r squareRecipe) LoadCost() uint64          { return r.side * r.side }
func (r squareRecipe) String() string            { return "square" }

var _ refpool.Recipe[shapeBase] = squareRecipe{}
