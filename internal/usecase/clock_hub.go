package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/panjf2000/ants/v2"

	"github.com/riskibarqy/matchday/internal/domain/match"
	"github.com/riskibarqy/matchday/internal/platform/logging"
)

var ErrClockHubClosed = errors.New("clock hub closed")

const (
	defaultClockTick    = time.Second
	defaultClockWorkers = 256
	clockReleaseTimeout = 2 * time.Second
)

type ClockHubConfig struct {
	TickInterval time.Duration
	// MaxTickers bounds the number of concurrently ticking matches.
	MaxTickers int
}

// ClockHub pushes clock snapshots of watched matches to subscribers. Each
// match with subscribers and a running status has exactly one ticker; it is
// stopped when the status stops running, the last subscriber leaves, or the
// hub closes.
type ClockHub struct {
	matchRepo match.Repository
	clock     clockwork.Clock
	logger    *logging.Logger
	workers   *ants.Pool
	tick      time.Duration

	mu     sync.Mutex
	feeds  map[string]*clockFeed
	nextID uint64
	closed bool
}

type clockFeed struct {
	match match.Match
	subs  map[uint64]chan match.Snapshot
	// stop is non-nil while the feed's ticker loop runs.
	stop chan struct{}
}

func NewClockHub(matchRepo match.Repository, clock clockwork.Clock, logger *logging.Logger, cfg ClockHubConfig) (*ClockHub, error) {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.TickInterval <= 0 {
		cfg.TickInterval = defaultClockTick
	}
	if cfg.MaxTickers <= 0 {
		cfg.MaxTickers = defaultClockWorkers
	}

	workers, err := ants.NewPool(cfg.MaxTickers, ants.WithNonblocking(true))
	if err != nil {
		return nil, fmt.Errorf("create clock worker pool: %w", err)
	}

	return &ClockHub{
		matchRepo: matchRepo,
		clock:     clock,
		logger:    logger.Named("clock"),
		workers:   workers,
		tick:      cfg.TickInterval,
		feeds:     make(map[string]*clockFeed),
	}, nil
}

// Subscribe returns a channel that immediately holds the current snapshot of
// the match and then receives every recomputation. The channel keeps only the
// latest undelivered snapshot. It is closed by cancel, by ctx ending, or when
// the hub closes.
func (h *ClockHub) Subscribe(ctx context.Context, matchID string) (<-chan match.Snapshot, func(), error) {
	matchID, err := requireID("match", matchID)
	if err != nil {
		return nil, nil, err
	}

	item, exists, err := h.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		return nil, nil, fmt.Errorf("get match: %w", err)
	}
	if !exists {
		return nil, nil, fmt.Errorf("%w: match=%s", ErrNotFound, matchID)
	}

	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		return nil, nil, ErrClockHubClosed
	}

	feed, ok := h.feeds[matchID]
	if !ok {
		feed = &clockFeed{match: item, subs: make(map[uint64]chan match.Snapshot)}
		h.feeds[matchID] = feed
	} else if item.UpdatedAt.After(feed.match.UpdatedAt) {
		h.applyLocked(feed, item)
	}
	h.nextID++
	subID := h.nextID
	ch := make(chan match.Snapshot, 1)
	feed.subs[subID] = ch

	offer(ch, match.Clock(feed.match, h.clock.Now()))
	if match.IsRunning(feed.match.Status) && feed.stop == nil {
		h.startLocked(feed)
	}
	h.mu.Unlock()

	var once sync.Once
	leave := func() {
		once.Do(func() { h.unsubscribe(matchID, subID) })
	}
	stopWatch := context.AfterFunc(ctx, leave)

	return ch, func() {
		stopWatch()
		leave()
	}, nil
}

// Notify replaces the watched state of item, pushes a fresh snapshot and
// starts or stops the match ticker to follow the new status. Items older than
// the watched state are ignored.
func (h *ClockHub) Notify(item match.Match) {
	h.mu.Lock()
	defer h.mu.Unlock()

	feed, ok := h.feeds[item.ID]
	if !ok || h.closed {
		return
	}
	h.applyLocked(feed, item)
}

// Remove stops the ticker of a deleted match and closes its subscriber
// channels.
func (h *ClockHub) Remove(matchID string) {
	h.drop(matchID)
}

// Reconcile reloads every watched match so status changes written elsewhere
// reach local subscribers. Watched matches that no longer exist are dropped.
func (h *ClockHub) Reconcile(ctx context.Context) error {
	ids := h.watchedIDs()
	if len(ids) == 0 {
		return nil
	}

	items, err := h.matchRepo.ListByIDs(ctx, ids)
	if err != nil {
		return fmt.Errorf("reload watched matches: %w", err)
	}

	found := make(map[string]struct{}, len(items))
	for _, item := range items {
		found[item.ID] = struct{}{}
		h.Notify(item)
	}
	for _, matchID := range ids {
		if _, ok := found[matchID]; !ok {
			h.drop(matchID)
			h.logger.InfoContext(ctx, "dropped clock feed of deleted match", "match_id", matchID)
		}
	}
	return nil
}

func (h *ClockHub) ActiveTickers() int {
	h.mu.Lock()
	defer h.mu.Unlock()

	n := 0
	for _, feed := range h.feeds {
		if feed.stop != nil {
			n++
		}
	}
	return n
}

func (h *ClockHub) Subscribers() int {
	h.mu.Lock()
	defer h.mu.Unlock()

	n := 0
	for _, feed := range h.feeds {
		n += len(feed.subs)
	}
	return n
}

// Close stops every ticker and closes every subscriber channel.
func (h *ClockHub) Close() error {
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		return nil
	}
	h.closed = true
	for matchID, feed := range h.feeds {
		h.closeFeedLocked(feed)
		delete(h.feeds, matchID)
	}
	h.mu.Unlock()

	if err := h.workers.ReleaseTimeout(clockReleaseTimeout); err != nil {
		return fmt.Errorf("release clock workers: %w", err)
	}
	return nil
}

func (h *ClockHub) unsubscribe(matchID string, subID uint64) {
	h.mu.Lock()
	defer h.mu.Unlock()

	feed, ok := h.feeds[matchID]
	if !ok {
		return
	}
	ch, ok := feed.subs[subID]
	if !ok {
		return
	}
	delete(feed.subs, subID)
	close(ch)

	if len(feed.subs) == 0 {
		if feed.stop != nil {
			h.stopLocked(feed)
		}
		delete(h.feeds, matchID)
	}
}

func (h *ClockHub) drop(matchID string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if feed, ok := h.feeds[matchID]; ok {
		h.closeFeedLocked(feed)
		delete(h.feeds, matchID)
	}
}

func (h *ClockHub) applyLocked(feed *clockFeed, item match.Match) {
	if item.UpdatedAt.Before(feed.match.UpdatedAt) {
		return
	}
	feed.match = item

	h.broadcastLocked(feed, match.Clock(item, h.clock.Now()))
	running := match.IsRunning(item.Status)
	switch {
	case running && feed.stop == nil:
		h.startLocked(feed)
	case !running && feed.stop != nil:
		h.stopLocked(feed)
	}
}

func (h *ClockHub) watchedIDs() []string {
	h.mu.Lock()
	defer h.mu.Unlock()

	ids := make([]string, 0, len(h.feeds))
	for matchID := range h.feeds {
		ids = append(ids, matchID)
	}
	return ids
}

func (h *ClockHub) closeFeedLocked(feed *clockFeed) {
	if feed.stop != nil {
		h.stopLocked(feed)
	}
	for subID, ch := range feed.subs {
		delete(feed.subs, subID)
		close(ch)
	}
}

func (h *ClockHub) startLocked(feed *clockFeed) {
	ticker := h.clock.NewTicker(h.tick)
	stop := make(chan struct{})
	feed.stop = stop

	matchID := feed.match.ID
	if err := h.workers.Submit(func() { h.run(feed, ticker, stop) }); err != nil {
		ticker.Stop()
		feed.stop = nil
		h.logger.Warn("clock ticker not started", "match_id", matchID, "error", err)
	}
}

func (h *ClockHub) stopLocked(feed *clockFeed) {
	close(feed.stop)
	feed.stop = nil
}

func (h *ClockHub) run(feed *clockFeed, ticker clockwork.Ticker, stop <-chan struct{}) {
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.Chan():
			h.mu.Lock()
			select {
			case <-stop:
				h.mu.Unlock()
				return
			default:
			}
			h.broadcastLocked(feed, match.Clock(feed.match, h.clock.Now()))
			h.mu.Unlock()
		}
	}
}

func (h *ClockHub) broadcastLocked(feed *clockFeed, snapshot match.Snapshot) {
	for _, ch := range feed.subs {
		offer(ch, snapshot)
	}
}

// offer delivers s without blocking, replacing an undelivered older snapshot.
func offer(ch chan match.Snapshot, s match.Snapshot) {
	select {
	case ch <- s:
		return
	default:
	}
	select {
	case <-ch:
	default:
	}
	select {
	case ch <- s:
	default:
	}
}
