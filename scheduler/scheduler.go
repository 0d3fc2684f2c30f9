package scheduler

import (
	"context"
	"log"
	"sync"
	"time"

	"chef-backend/cache"
	"chef-backend/scraper"

	"github.com/robfig/cron/v3"
)

type job int

const (
	jobFullPass job = iota
	jobStalenessCheck
)

// Scheduler drives the aggregation pipeline at fixed wall-clock times and
// keeps the recipe cache from going stale. All triggers (cron, staleness
// ticker, manual refresh) funnel into one worker goroutine, so overlapping
// passes cannot happen.
type Scheduler struct {
	pipeline       *scraper.Pipeline
	cache          *cache.Controller
	schedule       []string
	stalenessCheck time.Duration

	cron   *cron.Cron
	jobs   chan job
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	mu      sync.Mutex
	running bool
}

func New(pipeline *scraper.Pipeline, cacheCtl *cache.Controller, schedule []string, stalenessCheck time.Duration) *Scheduler {
	ctx, cancel := context.WithCancel(context.Background())
	return &Scheduler{
		pipeline:       pipeline,
		cache:          cacheCtl,
		schedule:       schedule,
		stalenessCheck: stalenessCheck,
		jobs:           make(chan job, 1),
		ctx:            ctx,
		cancel:         cancel,
	}
}

// Start registers the cron jobs, launches the worker and queues the
// immediate startup pass so a cold start never serves an empty store.
func (s *Scheduler) Start() {
	s.cron = cron.New()
	for _, spec := range s.schedule {
		if _, err := s.cron.AddFunc(spec, func() { s.TriggerRefresh() }); err != nil {
			log.Printf("❌ Invalid cron spec %q: %v", spec, err)
		}
	}
	s.cron.Start()

	s.mu.Lock()
	s.running = true
	s.mu.Unlock()

	s.wg.Add(1)
	go s.run()

	s.TriggerRefresh()
	log.Printf("📅 Scheduler started: scrapes at %v, staleness check every %v", s.schedule, s.stalenessCheck)
}

// TriggerRefresh queues a full aggregation + regeneration pass without
// blocking the caller. A pass already queued absorbs the trigger.
func (s *Scheduler) TriggerRefresh() {
	select {
	case s.jobs <- jobFullPass:
	default:
	}
}

func (s *Scheduler) run() {
	defer s.wg.Done()

	ticker := time.NewTicker(s.stalenessCheck)
	defer ticker.Stop()

	for {
		select {
		case <-s.ctx.Done():
			return
		case j := <-s.jobs:
			if j == jobFullPass {
				s.fullPass()
			}
		case <-ticker.C:
			if err := s.cache.RegenerateIfStale(s.ctx); err != nil {
				log.Printf("❌ Staleness regeneration failed: %v", err)
			}
		}
	}
}

func (s *Scheduler) fullPass() {
	if _, err := s.pipeline.Run(s.ctx); err != nil {
		// The previous store content stays authoritative; the next
		// scheduled tick retries.
		log.Printf("❌ Scheduled scrape failed: %v", err)
		return
	}
	if err := s.cache.Regenerate(s.ctx); err != nil {
		log.Printf("❌ Scheduled regeneration failed: %v", err)
	}
}

// Running reports whether the scheduler has been started and not stopped.
func (s *Scheduler) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

// Stop cancels future invocations, waits for the worker and flushes the
// cache. An in-flight regeneration is abandoned; the prior cache state
// remains served.
func (s *Scheduler) Stop() {
	if s.cron != nil {
		s.cron.Stop()
	}
	s.cancel()
	s.wg.Wait()

	s.mu.Lock()
	s.running = false
	s.mu.Unlock()

	if err := s.cache.Flush(); err != nil {
		log.Printf("⚠️ Failed to flush recipe cache on shutdown: %v", err)
	}
	log.Println("👋 Scheduler stopped")
}
