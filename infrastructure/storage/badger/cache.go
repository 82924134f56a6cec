package badger

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/dgraph-io/badger/v4"

	"github.com/felixgeelhaar/chartkit/domain/chart"
)

// Cache stores serialized re-aggregated chart specifications keyed by
// chart id and zoom level, so repeated zoom changes skip the host's
// re-aggregation callback.
type Cache struct {
	db        *badger.DB
	keyPrefix string
	ttl       time.Duration
	hits      atomic.Int64
	misses    atomic.Int64
	gcStop    chan struct{}
	gcWg      sync.WaitGroup
	closeOnce sync.Once
}

// Stats reports cache effectiveness.
type Stats struct {
	Hits   int64
	Misses int64
}

// NewCache creates a new BadgerDB cache with the given configuration.
func NewCache(cfg Config, opts ...Option) (*Cache, error) {
	for _, opt := range opts {
		opt(&cfg)
	}

	db, err := openDB(cfg)
	if err != nil {
		return nil, err
	}

	c := &Cache{
		db:        db,
		keyPrefix: cfg.KeyPrefix,
		ttl:       cfg.TTL,
		gcStop:    make(chan struct{}),
	}

	if cfg.GCInterval > 0 && !cfg.InMemory {
		c.startGC(cfg.GCInterval, cfg.GCDiscardRatio)
	}

	return c, nil
}

// startGC starts the value log garbage collection goroutine.
func (c *Cache) startGC(interval time.Duration, discardRatio float64) {
	c.gcWg.Add(1)
	go func() {
		defer c.gcWg.Done()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-c.gcStop:
				return
			case <-ticker.C:
				for {
					if err := c.db.RunValueLogGC(discardRatio); err != nil {
						break
					}
				}
			}
		}
	}()
}

// key builds the storage key for one chart at one zoom level.
func (c *Cache) key(chartID string, zoom chart.ZoomLevel) []byte {
	return []byte(c.keyPrefix + "reagg:" + chartID + "/" + string(zoom))
}

// Put stores the serialized specification for a chart at a zoom level.
// Entries expire after the configured TTL.
func (c *Cache) Put(ctx context.Context, chartID string, zoom chart.ZoomLevel, raw []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return c.db.Update(func(txn *badger.Txn) error {
		entry := badger.NewEntry(c.key(chartID, zoom), raw)
		if c.ttl > 0 {
			entry = entry.WithTTL(c.ttl)
		}
		return txn.SetEntry(entry)
	})
}

// Get retrieves the serialized specification for a chart at a zoom
// level. The second return value reports whether the entry was found.
func (c *Cache) Get(ctx context.Context, chartID string, zoom chart.ZoomLevel) ([]byte, bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, false, err
	}

	var value []byte
	err := c.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(c.key(chartID, zoom))
		if err != nil {
			return err
		}
		value, err = item.ValueCopy(nil)
		return err
	})

	if errors.Is(err, badger.ErrKeyNotFound) {
		c.misses.Add(1)
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	c.hits.Add(1)
	return value, true, nil
}

// Invalidate removes every cached zoom level for a chart. Called when
// the host replaces the chart's underlying data.
func (c *Cache) Invalidate(ctx context.Context, chartID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return c.db.Update(func(txn *badger.Txn) error {
		for _, zoom := range chart.AllZoomLevels() {
			err := txn.Delete(c.key(chartID, zoom))
			if err != nil && !errors.Is(err, badger.ErrKeyNotFound) {
				return err
			}
		}
		return nil
	})
}

// Stats returns hit and miss counts since the cache was opened.
func (c *Cache) Stats() Stats {
	return Stats{
		Hits:   c.hits.Load(),
		Misses: c.misses.Load(),
	}
}

// Close stops background work and closes the database.
func (c *Cache) Close() error {
	var err error
	c.closeOnce.Do(func() {
		close(c.gcStop)
		c.gcWg.Wait()
		err = c.db.Close()
	})
	return err
}
