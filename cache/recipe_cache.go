package cache

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"chef-backend/models"

	"golang.org/x/sync/singleflight"
)

// OfferSource provides the current offer set regeneration works from.
type OfferSource interface {
	QueryCurrent() ([]models.Offer, error)
}

// BlobStore persists the cache across restarts.
type BlobStore interface {
	Save(top, cheapest []models.Recipe, lastUpdated *time.Time) error
	Load() (top, cheapest []models.Recipe, lastUpdated *time.Time, err error)
}

// Generator produces the two cached recipe sets.
type Generator interface {
	TopDiscountRecipes(ctx context.Context, products []models.Offer) []models.Recipe
	CheapestRecipes(ctx context.Context, products []models.Offer) []models.Recipe
}

// Controller owns the recipe cache and its freshness state machine:
// absent (never filled), stale (older than the validity window) or fresh.
// Reads in absent/stale state regenerate synchronously; concurrent triggers
// collapse into a single generator call.
type Controller struct {
	offers       OfferSource
	blobs        BlobStore
	gen          Generator
	window       time.Duration
	regenTimeout time.Duration
	now          func() time.Time

	group singleflight.Group

	mu          sync.Mutex
	top         []models.Recipe
	cheapest    []models.Recipe
	lastUpdated *time.Time
}

func NewController(offers OfferSource, blobs BlobStore, gen Generator, window, regenTimeout time.Duration) *Controller {
	return &Controller{
		offers:       offers,
		blobs:        blobs,
		gen:          gen,
		window:       window,
		regenTimeout: regenTimeout,
		now:          time.Now,
	}
}

// LoadFromStore restores the persisted cache. A missing or malformed blob
// just leaves the cache absent.
func (c *Controller) LoadFromStore() error {
	top, cheapest, lastUpdated, err := c.blobs.Load()
	if err != nil {
		return err
	}
	c.mu.Lock()
	c.top, c.cheapest, c.lastUpdated = top, cheapest, lastUpdated
	c.mu.Unlock()
	return nil
}

// Fresh reports whether the cache can be served without regeneration.
func (c *Controller) Fresh() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.freshLocked()
}

func (c *Controller) freshLocked() bool {
	if c.lastUpdated == nil {
		return false
	}
	return c.now().Sub(*c.lastUpdated) < c.window
}

// Get returns the cached recipe set of the given kind, regenerating first
// when the cache is absent or stale. Regeneration failures degrade to the
// previous cached content rather than surfacing to the caller.
func (c *Controller) Get(ctx context.Context, kind string) ([]models.Recipe, *time.Time, error) {
	c.mu.Lock()
	if c.freshLocked() {
		recipes, lastUpdated := c.snapshotLocked(kind)
		c.mu.Unlock()
		return recipes, lastUpdated, nil
	}
	c.mu.Unlock()

	if err := c.Regenerate(ctx); err != nil {
		log.Printf("⚠️ Recipe regeneration failed, serving previous cache: %v", err)
	}

	c.mu.Lock()
	recipes, lastUpdated := c.snapshotLocked(kind)
	c.mu.Unlock()
	return recipes, lastUpdated, nil
}

func (c *Controller) snapshotLocked(kind string) ([]models.Recipe, *time.Time) {
	if kind == models.RecipeKindCheapest {
		return c.cheapest, c.lastUpdated
	}
	return c.top, c.lastUpdated
}

// Regenerate rebuilds both recipe sets from the current offers, replaces the
// cache wholesale and persists it. Concurrent calls share one execution.
func (c *Controller) Regenerate(ctx context.Context) error {
	_, err, _ := c.group.Do("recipes", func() (interface{}, error) {
		return nil, c.regenerate(ctx)
	})
	return err
}

// RegenerateIfStale is the periodic staleness check: it only pays the
// generation cost when the cache is not fresh.
func (c *Controller) RegenerateIfStale(ctx context.Context) error {
	if c.Fresh() {
		return nil
	}
	return c.Regenerate(ctx)
}

func (c *Controller) regenerate(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, c.regenTimeout)
	defer cancel()

	offers, err := c.offers.QueryCurrent()
	if err != nil {
		return fmt.Errorf("failed to load offers for regeneration: %w", err)
	}

	top := c.gen.TopDiscountRecipes(ctx, offers)
	cheapest := c.gen.CheapestRecipes(ctx, offers)

	// An empty store must not mark the cache fresh, otherwise an empty
	// result would be pinned for a whole validity window.
	var lastUpdated *time.Time
	if len(offers) > 0 {
		t := c.now()
		lastUpdated = &t
	}

	c.mu.Lock()
	c.top, c.cheapest, c.lastUpdated = top, cheapest, lastUpdated
	c.mu.Unlock()

	if err := c.blobs.Save(top, cheapest, lastUpdated); err != nil {
		log.Printf("⚠️ Failed to persist recipe cache: %v", err)
	}
	return nil
}

// Flush persists the current cache state, called on shutdown.
func (c *Controller) Flush() error {
	c.mu.Lock()
	top, cheapest, lastUpdated := c.top, c.cheapest, c.lastUpdated
	c.mu.Unlock()
	return c.blobs.Save(top, cheapest, lastUpdated)
}
