package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/custodia-labs/undiscovered/internal/core/domain"
	"github.com/custodia-labs/undiscovered/internal/core/ports/driven"
	"github.com/custodia-labs/undiscovered/internal/core/ports/driving"
	"github.com/custodia-labs/undiscovered/internal/logger"
)

// Ensure Collector implements the interface.
var _ driving.DiscoveryService = (*Collector)(nil)

// DefaultPause is the fixed back-off after the store signals rate limiting.
const DefaultPause = domain.DefaultPauseSeconds * time.Second

// Collector runs the discovery loop: random term, store search, concurrent
// detail fetches, filter, repeat until the quota is met.
type Collector struct {
	terms          driven.TermSource
	catalog        driven.CatalogClient
	details        driven.DetailClient
	progress       driven.ProgressReporter
	pause          time.Duration
	maxConcurrency int

	// sleep blocks for the rate-limit pause. Replaced in tests.
	sleep func(time.Duration)
}

// NewCollector creates a new collector.
func NewCollector(
	terms driven.TermSource,
	catalog driven.CatalogClient,
	details driven.DetailClient,
) *Collector {
	return &Collector{
		terms:   terms,
		catalog: catalog,
		details: details,
		pause:   DefaultPause,
		sleep:   time.Sleep,
	}
}

// SetProgressReporter sets the optional progress reporter.
func (c *Collector) SetProgressReporter(progress driven.ProgressReporter) {
	c.progress = progress
}

// SetPause sets the rate-limit back-off.
func (c *Collector) SetPause(d time.Duration) {
	if d >= 0 {
		c.pause = d
	}
}

// SetMaxConcurrency caps detail fetches in flight per round. 0 means no cap.
func (c *Collector) SetMaxConcurrency(n int) {
	if n >= 0 {
		c.maxConcurrency = n
	}
}

// collectionRun is the mutable state of one Collect call.
// Only the coordinating goroutine touches it.
type collectionRun struct {
	id        string
	state     domain.CollectionState
	round     int
	pauses    int
	contacted bool
	titles    []domain.TitleRecord
	started   time.Time
}

func (r *collectionRun) transition(to domain.CollectionState) {
	logger.Debug("Run %s: %s -> %s (round %d, %d titles)", r.id, r.state, to, r.round, len(r.titles))
	r.state = to
}

func (r *collectionRun) result() *domain.Collection {
	return &domain.Collection{
		RunID:    r.id,
		Titles:   r.titles,
		Rounds:   r.round,
		Pauses:   r.pauses,
		Duration: time.Since(r.started),
	}
}

// Collect runs rounds until opts.Quota titles pass the filter.
// Cancellation is only observed between rounds; a cancelled run returns
// the titles gathered so far together with the context error.
func (c *Collector) Collect(ctx context.Context, opts domain.CollectOptions) (*domain.Collection, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if c.terms == nil || c.terms.Len() == 0 {
		return nil, domain.ErrEmptyWordList
	}

	run := &collectionRun{
		id:      uuid.NewString(),
		state:   domain.StateCollecting,
		titles:  make([]domain.TitleRecord, 0, opts.Quota),
		started: time.Now(),
	}

	logger.Section("Collection " + run.id)
	logger.Debug("Criteria: max price %.2f, max reviews %d, platforms %v, quota %d",
		opts.Criteria.MaxPrice, opts.Criteria.MaxReviews, opts.Criteria.Platforms, opts.Quota)

	for run.state != domain.StateDone {
		if err := ctx.Err(); err != nil {
			logger.Info("Run %s cancelled after %d rounds", run.id, run.round)
			return run.result(), err
		}

		switch run.state {
		case domain.StateCollecting:
			rateLimited, err := c.runRound(ctx, run, opts)
			if err != nil {
				return nil, err
			}
			switch {
			case len(run.titles) >= opts.Quota:
				run.transition(domain.StateDone)
			case rateLimited:
				run.transition(domain.StateRateLimited)
			}

		case domain.StateRateLimited:
			if c.progress != nil {
				c.progress.RateLimited(c.pause)
			}
			c.sleep(c.pause)
			run.pauses++
			run.transition(domain.StateCollecting)
		}
	}

	if c.progress != nil {
		c.progress.Finished(len(run.titles), run.round)
	}
	logger.Info("Run %s done: %d titles in %d rounds, %d pauses",
		run.id, len(run.titles), run.round, run.pauses)

	return run.result(), nil
}

// runRound performs one search and its detail fan-out.
// It reports whether any request in the round was rate limited.
// The only error it returns is a fatal one.
func (c *Collector) runRound(ctx context.Context, run *collectionRun, opts domain.CollectOptions) (bool, error) {
	run.round++
	term := c.terms.Next()

	if c.progress != nil {
		c.progress.RoundStarted(run.round, len(run.titles), opts.Quota, term)
	}
	logger.Debug("Round %d: term %q", run.round, term)

	// Requests already dispatched for a round run to completion.
	roundCtx := context.WithoutCancel(ctx)

	matches, err := c.catalog.Search(roundCtx, opts.Criteria.MaxPrice, term)
	firstContact := !run.contacted
	run.contacted = true
	if err != nil {
		switch {
		case domain.IsRateLimited(err):
			logger.Warn("Round %d: search rate limited", run.round)
			return true, nil
		case firstContact && errors.Is(err, domain.ErrTransport):
			return false, fmt.Errorf("%w: %w", domain.ErrStoreUnreachable, err)
		default:
			logger.Warn("Round %d: search failed, skipping round: %v", run.round, err)
			return false, nil
		}
	}

	logger.Debug("Round %d: %d matches", run.round, len(matches))

	rateLimited := false
	for i, outcome := range c.fetchAll(roundCtx, matches) {
		if outcome.err != nil {
			if domain.IsRateLimited(outcome.err) {
				rateLimited = true
			}
			logger.Debug("Round %d: dropping %q: %v", run.round, matches[i].Name, outcome.err)
			continue
		}

		if reason := rejectReason(&outcome.title, &opts.Criteria); reason != "" {
			logger.Debug("Round %d: rejected %q: %s", run.round, outcome.title.Name, reason)
			continue
		}

		run.titles = append(run.titles, outcome.title)
	}

	return rateLimited, nil
}

// fetchOutcome is the result slot for one match.
type fetchOutcome struct {
	title domain.TitleRecord
	err   error
}

// fetchAll fetches every match concurrently and returns outcomes in match order.
func (c *Collector) fetchAll(ctx context.Context, matches []domain.SearchMatch) []fetchOutcome {
	outcomes := make([]fetchOutcome, len(matches))

	var g errgroup.Group
	if c.maxConcurrency > 0 {
		g.SetLimit(c.maxConcurrency)
	}

	for i, match := range matches {
		id, err := match.Identifier()
		if err != nil {
			outcomes[i].err = err
			continue
		}

		g.Go(func() error {
			title, err := c.details.Fetch(ctx, id)
			outcomes[i] = fetchOutcome{title: title, err: err}
			return nil // per-title failures never abort the round
		})
	}

	_ = g.Wait()
	return outcomes
}
