package exchange

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"github.com/pago46/money"
)

// DefaultUpdateFrequency is the refresh interval used by [LookupWithCache]
// when a non-positive one is given.
const DefaultUpdateFrequency = time.Minute

// LookupWithCache decorates another lookup function to add caching and refreshing.
// Every cached base currency is refreshed every updateFrequency by a goroutine
// that runs until ctx is done, after which the entry is dropped.
// A non-positive updateFrequency selects [DefaultUpdateFrequency].
func LookupWithCache(ctx context.Context, next LookupFunc, updateFrequency time.Duration, logger log.Logger) LookupFunc {
	if logger == nil {
		logger = log.NewNopLogger()
	}
	if updateFrequency <= 0 {
		updateFrequency = DefaultUpdateFrequency
	}
	c := &cache{
		ctx:             ctx,
		cache:           map[money.Currency]Rates{},
		updateFrequency: updateFrequency,
		next:            next,
		logger:          logger,
	}
	return c.lookup
}

// cache of exchange rates. The cache is concurrency safe and will periodically refresh cached values.
type cache struct {
	// ctx bounds the lifetime of the refresh goroutines
	ctx context.Context

	// cache the cache of rates
	cache map[money.Currency]Rates

	// updateFrequency how often to refresh cached values
	updateFrequency time.Duration

	// lock synchronizes access to cache
	lock sync.RWMutex

	// next the LookupFunc being decorated with a cache
	next LookupFunc

	logger log.Logger
}

// lookup exchange rates and cache results
func (c *cache) lookup(ctx context.Context, base money.Currency) (Rates, error) {
	c.lock.RLock()
	rates, ok := c.cache[base]
	c.lock.RUnlock()
	if ok {
		return rates, nil
	}

	level.Debug(c.logger).Log("msg", "seeding cache", "currency", base) //nolint:errcheck
	// Concurrent misses for the same currency may all call next.
	// refreshNow reports the first insertion so only one refresher is started.
	rates, firstTime, err := c.refreshNow(ctx, base)
	if err != nil {
		return nil, fmt.Errorf("refreshing cache [%v]: %w", base, err)
	}
	if firstTime {
		go c.refreshPeriodically(base)
	}
	return rates, nil
}

// refreshNow refreshes a cached entry immediately
func (c *cache) refreshNow(ctx context.Context, base money.Currency) (Rates, bool, error) {
	rates, err := c.next(ctx, base)
	if err != nil {
		return nil, false, fmt.Errorf("refresh [%v]: %w", base, err)
	}
	c.lock.Lock()
	defer c.lock.Unlock()
	_, ok := c.cache[base]
	c.cache[base] = rates
	return rates, !ok, nil
}

// refreshPeriodically refreshes a cached entry on a given schedule.
// It is run in its own goroutine for each currency.
func (c *cache) refreshPeriodically(base money.Currency) {
	ticker := time.NewTicker(c.updateFrequency)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			if _, _, err := c.refreshNow(c.ctx, base); err != nil {
				// keep serving the stale rates
				level.Warn(c.logger).Log("msg", "periodic refresh failed", "currency", base, "err", err) //nolint:errcheck
			}
		case <-c.ctx.Done():
			level.Debug(c.logger).Log("msg", "shutting down periodic refresh", "currency", base) //nolint:errcheck
			c.uncache(base)
			return
		}
	}
}

// uncache safely removes currency from cache
func (c *cache) uncache(base money.Currency) {
	c.lock.Lock()
	defer c.lock.Unlock()
	delete(c.cache, base)
}
