package cache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"chef-backend/models"
)

type fakeOffers struct {
	offers []models.Offer
	err    error
}

func (f *fakeOffers) QueryCurrent() ([]models.Offer, error) { return f.offers, f.err }

type fakeBlobs struct {
	mu          sync.Mutex
	top         []models.Recipe
	cheapest    []models.Recipe
	lastUpdated *time.Time
	saves       int
	loadErr     error
}

func (f *fakeBlobs) Save(top, cheapest []models.Recipe, lastUpdated *time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.top, f.cheapest, f.lastUpdated = top, cheapest, lastUpdated
	f.saves++
	return nil
}

func (f *fakeBlobs) Load() ([]models.Recipe, []models.Recipe, *time.Time, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.top, f.cheapest, f.lastUpdated, f.loadErr
}

type fakeGenerator struct {
	calls int32
	gate  chan struct{} // when set, TopDiscountRecipes blocks until closed
}

func (f *fakeGenerator) TopDiscountRecipes(ctx context.Context, products []models.Offer) []models.Recipe {
	atomic.AddInt32(&f.calls, 1)
	if f.gate != nil {
		<-f.gate
	}
	return []models.Recipe{{ID: 1, Name: "Tocăniță"}}
}

func (f *fakeGenerator) CheapestRecipes(ctx context.Context, products []models.Offer) []models.Recipe {
	return []models.Recipe{{ID: 1, Name: "Clătite"}}
}

func someOffers() []models.Offer {
	return []models.Offer{{ID: "x", Name: "Piept de pui", NewPrice: 20, Store: models.StoreLidl}}
}

func TestGetRegeneratesWhenAbsent(t *testing.T) {
	gen := &fakeGenerator{}
	blobs := &fakeBlobs{}
	c := NewController(&fakeOffers{offers: someOffers()}, blobs, gen, 24*time.Hour, time.Minute)

	recipes, lastUpdated, err := c.Get(context.Background(), models.RecipeKindTop)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(recipes) != 1 || recipes[0].Name != "Tocăniță" {
		t.Fatalf("recipes = %+v, want the generated set", recipes)
	}
	if lastUpdated == nil {
		t.Fatal("last_updated should be set after regeneration from a non-empty store")
	}
	if gen.calls != 1 {
		t.Errorf("generator calls = %d, want 1", gen.calls)
	}
	if blobs.saves != 1 {
		t.Errorf("blob saves = %d, want 1", blobs.saves)
	}
}

func TestFreshnessWindow(t *testing.T) {
	gen := &fakeGenerator{}
	c := NewController(&fakeOffers{offers: someOffers()}, &fakeBlobs{}, gen, 24*time.Hour, time.Minute)

	base := time.Date(2026, 3, 1, 6, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return base }

	if err := c.Regenerate(context.Background()); err != nil {
		t.Fatalf("regenerate: %v", err)
	}

	c.now = func() time.Time { return base.Add(24*time.Hour - time.Second) }
	if !c.Fresh() {
		t.Error("cache should still be fresh just inside the window")
	}
	if _, _, err := c.Get(context.Background(), models.RecipeKindTop); err != nil {
		t.Fatalf("get: %v", err)
	}
	if gen.calls != 1 {
		t.Errorf("generator calls = %d, fresh read must not regenerate", gen.calls)
	}

	c.now = func() time.Time { return base.Add(24*time.Hour + time.Second) }
	if c.Fresh() {
		t.Error("cache should be stale just past the window")
	}
	if _, _, err := c.Get(context.Background(), models.RecipeKindTop); err != nil {
		t.Fatalf("get: %v", err)
	}
	if gen.calls != 2 {
		t.Errorf("generator calls = %d, stale read must regenerate", gen.calls)
	}
}

func TestEmptyStoreNeverMarksFresh(t *testing.T) {
	gen := &fakeGenerator{}
	c := NewController(&fakeOffers{}, &fakeBlobs{}, gen, 24*time.Hour, time.Minute)

	if err := c.Regenerate(context.Background()); err != nil {
		t.Fatalf("regenerate: %v", err)
	}
	if c.Fresh() {
		t.Error("regeneration over an empty store must leave the cache absent")
	}

	_, lastUpdated, err := c.Get(context.Background(), models.RecipeKindTop)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if lastUpdated != nil {
		t.Errorf("last_updated = %v, want nil for an empty store", lastUpdated)
	}
}

func TestConcurrentRegenerationCollapses(t *testing.T) {
	gate := make(chan struct{})
	gen := &fakeGenerator{gate: gate}
	c := NewController(&fakeOffers{offers: someOffers()}, &fakeBlobs{}, gen, 24*time.Hour, time.Minute)

	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = c.Regenerate(context.Background())
		}()
	}

	// Wait until the first regeneration is inside the generator, then let
	// everything through. The second call must join it, not run its own.
	for atomic.LoadInt32(&gen.calls) == 0 {
		time.Sleep(time.Millisecond)
	}
	time.Sleep(10 * time.Millisecond)
	close(gate)
	wg.Wait()

	if got := atomic.LoadInt32(&gen.calls); got != 1 {
		t.Errorf("generator calls = %d, want 1 shared execution", got)
	}
}

func TestRegenerateIfStaleSkipsFreshCache(t *testing.T) {
	gen := &fakeGenerator{}
	c := NewController(&fakeOffers{offers: someOffers()}, &fakeBlobs{}, gen, 24*time.Hour, time.Minute)

	if err := c.Regenerate(context.Background()); err != nil {
		t.Fatalf("regenerate: %v", err)
	}
	if err := c.RegenerateIfStale(context.Background()); err != nil {
		t.Fatalf("regenerate if stale: %v", err)
	}
	if gen.calls != 1 {
		t.Errorf("generator calls = %d, fresh cache must not regenerate", gen.calls)
	}
}

func TestGetDegradesOnOfferStoreFailure(t *testing.T) {
	offers := &fakeOffers{offers: someOffers()}
	gen := &fakeGenerator{}
	c := NewController(offers, &fakeBlobs{}, gen, 24*time.Hour, time.Minute)

	if err := c.Regenerate(context.Background()); err != nil {
		t.Fatalf("regenerate: %v", err)
	}

	// Push past the window, then break the store: the stale content keeps
	// being served instead of an error.
	c.mu.Lock()
	stale := c.now().Add(-48 * time.Hour)
	c.lastUpdated = &stale
	c.mu.Unlock()
	offers.err = errors.New("database gone")

	recipes, _, err := c.Get(context.Background(), models.RecipeKindTop)
	if err != nil {
		t.Fatalf("get should degrade, not fail: %v", err)
	}
	if len(recipes) != 1 {
		t.Fatalf("recipes = %+v, want the previous cached set", recipes)
	}
}

func TestLoadFromStoreRestoresCache(t *testing.T) {
	now := time.Now()
	blobs := &fakeBlobs{
		top:         []models.Recipe{{ID: 1, Name: "Restaurată"}},
		cheapest:    []models.Recipe{{ID: 1, Name: "Ieftină"}},
		lastUpdated: &now,
	}
	c := NewController(&fakeOffers{}, blobs, &fakeGenerator{}, 24*time.Hour, time.Minute)

	if err := c.LoadFromStore(); err != nil {
		t.Fatalf("load: %v", err)
	}
	if !c.Fresh() {
		t.Error("restored cache with a recent timestamp should be fresh")
	}

	recipes, _, err := c.Get(context.Background(), models.RecipeKindCheapest)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(recipes) != 1 || recipes[0].Name != "Ieftină" {
		t.Errorf("recipes = %+v, want the restored cheapest set", recipes)
	}
}
