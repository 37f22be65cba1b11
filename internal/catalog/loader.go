package catalog

import (
	"context"
	"sync"

	"storefront/internal/domain/entity"
	"storefront/pkg/logger"
)

type LoadState int

const (
	LoadIdle LoadState = iota
	LoadLoading
	LoadLoaded
	LoadFailed
)

func (s LoadState) String() string {
	switch s {
	case LoadIdle:
		return "idle"
	case LoadLoading:
		return "loading"
	case LoadLoaded:
		return "loaded"
	case LoadFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// ProductFetcher is the slice of the data-access client the loader needs.
type ProductFetcher interface {
	GetAll(ctx context.Context) ([]*entity.Product, error)
}

// Loader runs the asynchronous collection load behind an explicit state
// machine: idle -> loading -> loaded | failed. Closing the loader tears
// down the in-flight fetch, and a result that arrives after Close is
// discarded so nothing mutates a view that is gone.
type Loader struct {
	fetcher ProductFetcher

	mu       sync.Mutex
	state    LoadState
	products []*entity.Product
	err      error
	cancel   context.CancelFunc
	closed   bool
	done     chan struct{}
}

func NewLoader(fetcher ProductFetcher) *Loader {
	return &Loader{
		fetcher: fetcher,
		state:   LoadIdle,
	}
}

// Load starts fetching the collection. A load already in flight is left
// alone. There is no retry: a failed fetch stays failed until Load is
// called again.
func (l *Loader) Load(ctx context.Context) {
	l.mu.Lock()
	if l.closed || l.state == LoadLoading {
		l.mu.Unlock()
		return
	}

	ctx, cancel := context.WithCancel(ctx)
	l.cancel = cancel
	l.state = LoadLoading
	l.done = make(chan struct{})
	done := l.done
	l.mu.Unlock()

	go func() {
		defer close(done)
		products, err := l.fetcher.GetAll(ctx)

		l.mu.Lock()
		defer l.mu.Unlock()
		if l.closed {
			logger.Debug("Discarding load result after loader teardown")
			return
		}
		if err != nil {
			l.state = LoadFailed
			l.err = err
			return
		}
		l.state = LoadLoaded
		l.products = products
		l.err = nil
	}()
}

func (l *Loader) State() LoadState {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state
}

// Products returns the last loaded collection; nil unless the loader is
// in the loaded state.
func (l *Loader) Products() []*entity.Product {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.state != LoadLoaded {
		return nil
	}
	return l.products
}

// Err returns the terminal error of a failed load.
func (l *Loader) Err() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.err
}

// Done reports when the current load attempt has settled. It returns a
// closed channel if no load is in flight.
func (l *Loader) Done() <-chan struct{} {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.done == nil {
		settled := make(chan struct{})
		close(settled)
		return settled
	}
	return l.done
}

// Close cancels any in-flight fetch and marks the loader dead. Results
// arriving afterwards are dropped.
func (l *Loader) Close() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed {
		return
	}
	l.closed = true
	if l.cancel != nil {
		l.cancel()
	}
}
