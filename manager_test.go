package refpool_test

import (
	"errors"
	"testing"

	"github.com/refpool/refpool"
)

func TestManagerDefersMaterializationToLoad(t *testing.T) {
	var builds int
	m := refpool.NewManager[*asset]()
	lazy := m.RegisterAsset(newAssetRecipe(1, 100, &builds))

	if builds != 0 {
		t.Fatalf("builds = %d before Load, want 0", builds)
	}

	firm, err := lazy.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if builds != 1 {
		t.Fatalf("builds = %d after Load, want 1", builds)
	}
	if firm.Get().id != 1 {
		t.Fatalf("Get().id = %d, want 1", firm.Get().id)
	}

	firm.Release()
	lazy.Release()
	if err := m.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
}

func TestManagerRematerializesAfterClean(t *testing.T) {
	var builds int
	m := refpool.NewManager[*asset]()
	lazy := m.RegisterAsset(newAssetRecipe(1, 100, &builds))

	firm, err := lazy.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	firm.Release() // firm -> 0, lazy still 1: object moves to Cached, not forgotten.

	if freed := m.CleanAll(); freed != 100 {
		t.Fatalf("CleanAll = %d, want 100", freed)
	}
	if builds != 1 {
		t.Fatalf("builds = %d after first load, want 1", builds)
	}

	firm, err = lazy.Load()
	if err != nil {
		t.Fatalf("second Load: %v", err)
	}
	if builds != 2 {
		t.Fatalf("builds = %d after re-load, want 2", builds)
	}
	firm.Release()
	lazy.Release()
	if err := m.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
}

// TestManagerCleanAllDoesNotInvalidateLiveFirmHandle is spec.md §8
// scenario 6 ("No-invalidation"): a firm-held counter lives in the Used
// list, never Cached, so CleanAll's walk over Cached must leave it alone.
func TestManagerCleanAllDoesNotInvalidateLiveFirmHandle(t *testing.T) {
	var builds int
	m := refpool.NewManager[*asset]()
	lazy := m.RegisterAsset(newAssetRecipe(1, 100, &builds))

	firm, err := lazy.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if freed := m.CleanAll(); freed != 0 {
		t.Fatalf("CleanAll while firm-held = %d, want 0", freed)
	}
	if firm.Get().id != 1 {
		t.Fatalf("Get().id after CleanAll = %d, want 1", firm.Get().id)
	}
	if builds != 1 {
		t.Fatalf("builds = %d, want 1 (no re-materialization)", builds)
	}

	firm.Release() // now Cached; CleanAll should recover it.
	if freed := m.CleanAll(); freed != 100 {
		t.Fatalf("CleanAll after release = %d, want 100", freed)
	}
	lazy.Release()
	if err := m.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
}

func TestManagerCleanRespectsBudget(t *testing.T) {
	m := refpool.NewManager[*asset]()
	var builds int
	var handles []refpool.LazyHandle[*asset]
	for i := 0; i < 4; i++ {
		lazy := m.RegisterAsset(newAssetRecipe(i, 10, &builds))
		firm, err := lazy.Load()
		if err != nil {
			t.Fatalf("Load(%d): %v", i, err)
		}
		firm.Release()
		handles = append(handles, lazy)
	}

	// All 4 are Cached at 10 bytes apiece; ask for only 25, expect 3 freed
	// (oldest-first, stopping once the running total meets or exceeds budget).
	if freed := m.Clean(25); freed != 30 {
		t.Fatalf("Clean(25) = %d, want 30 (3 objects freed before budget satisfied)", freed)
	}

	for _, h := range handles {
		h.Release()
	}
	if err := m.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
}

func TestManagerCloseRejectsLiveCounters(t *testing.T) {
	m := refpool.NewManager[*asset]()
	var builds int
	lazy := m.RegisterAsset(newAssetRecipe(1, 10, &builds))

	if err := m.Close(); !errors.Is(err, refpool.ErrPoolNotEmpty) {
		t.Fatalf("Close: err = %v, want ErrPoolNotEmpty", err)
	}
	lazy.Release()
	if err := m.Close(); err != nil {
		t.Fatalf("Close after release: %v", err)
	}
}

func TestManagerStatsTrackMaterializationsAndForgets(t *testing.T) {
	m := refpool.NewManager[*asset]()
	var builds int
	lazy := m.RegisterAsset(newAssetRecipe(1, 10, &builds))
	firm, err := lazy.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	firm.Release()
	lazy.Release()

	stats := m.Stats()
	if stats.Materializations != 1 {
		t.Fatalf("Materializations = %d, want 1", stats.Materializations)
	}
	if stats.Forgets != 1 {
		t.Fatalf("Forgets = %d, want 1", stats.Forgets)
	}
	if stats.CachedBytes != 0 {
		t.Fatalf("CachedBytes = %d, want 0", stats.CachedBytes)
	}
}

func TestManagerBuildFailureLeavesLazyHandleUsable(t *testing.T) {
	m := refpool.NewManager[*asset]()
	r := newAssetRecipe(1, 10, nil)
	r.fail = true
	lazy := m.RegisterAsset(r)

	if _, err := lazy.Load(); !errors.Is(err, refpool.ErrMaterializationFailed) {
		t.Fatalf("Load: err = %v, want ErrMaterializationFailed", err)
	}
	lazy.Release()
	if err := m.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
}
