package service

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/summitlog/summits-web/internal/ports"
)

// PageParam is the query parameter that carries the current page.
const PageParam = "page"

// DefaultScrollRestoreDelay is how long after new content settles the scroll position is restored.
const DefaultScrollRestoreDelay = 100 * time.Millisecond

// ErrInvalidPage is returned by HandlePageChange for pages below 1.
var ErrInvalidPage = errors.New("page must be a positive integer")

// FetchFunc loads the data for page. ctx is cancelled when a later page change supersedes it.
type FetchFunc func(ctx context.Context, page int) error

// PaginationOptions configures a PaginationSync.
type PaginationOptions struct {
	// Scroll is optional; without it no scroll capture or restore happens.
	Scroll         ports.ScrollPort
	PreserveScroll bool
	RestoreDelay   time.Duration
	Metrics        Metrics
}

// PaginationSync keeps a current page counter in step with the page query parameter
// and calls the fetch callback once per effective page change.
type PaginationSync struct {
	query   ports.QueryPort
	fetch   FetchFunc
	scroll  ports.ScrollPort
	delay   time.Duration
	metrics Metrics

	mu          sync.Mutex
	currentPage int
	totalPages  int
	generation  uint64
	cancel      context.CancelFunc
}

// ParsePage parses a page query value. It reports false for absent, non-numeric
// and non-positive values.
func ParsePage(raw string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 1 {
		return 0, false
	}
	return n, true
}

// NewPaginationSync reads the page parameter once; anything invalid starts at page 1.
func NewPaginationSync(query ports.QueryPort, fetch FetchFunc, opts PaginationOptions) *PaginationSync {
	if query == nil {
		panic("service: QueryPort is required")
	}
	if fetch == nil {
		panic("service: FetchFunc is required")
	}

	p := &PaginationSync{
		query:       query,
		fetch:       fetch,
		metrics:     metricsOrNop(opts.Metrics),
		currentPage: 1,
		totalPages:  1,
	}
	if opts.PreserveScroll {
		p.scroll = opts.Scroll
		p.delay = opts.RestoreDelay
		if p.delay < 0 {
			p.delay = 0
		}
	}
	if page, ok := ParsePage(query.Values().Get(PageParam)); ok {
		p.currentPage = page
	}
	return p
}

// CurrentPage returns the current page, always >= 1.
func (p *PaginationSync) CurrentPage() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.currentPage
}

// TotalPages returns the caller-supplied page count, always >= 1.
func (p *PaginationSync) TotalPages() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.totalPages
}

// SetTotalPages records the page count; values below 1 are stored as 1.
func (p *PaginationSync) SetTotalPages(n int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.totalPages = max(n, 1)
}

// Refresh fetches the current page. Views call it when they mount.
func (p *PaginationSync) Refresh(ctx context.Context) error {
	page := p.CurrentPage()
	fetchCtx, done := p.begin(ctx)
	defer done()
	return p.fetch(fetchCtx, page)
}

// OnURLChange handles navigation that changed the page parameter, such as
// back/forward or a link. raw is the parameter value, "" when absent (page 1).
// Invalid values are ignored. It reports whether a fetch was made.
func (p *PaginationSync) OnURLChange(ctx context.Context, raw string) (bool, error) {
	page := 1
	if strings.TrimSpace(raw) != "" {
		parsed, ok := ParsePage(raw)
		if !ok {
			return false, nil
		}
		page = parsed
	}

	p.mu.Lock()
	if page == p.currentPage {
		p.mu.Unlock()
		return false, nil
	}
	p.currentPage = page
	p.mu.Unlock()

	p.metrics.ObservePageChange(PageChangeURL)
	fetchCtx, done := p.begin(ctx)
	defer done()
	return true, p.fetch(fetchCtx, page)
}

// HandlePageChange moves to page on an explicit request from the pagination control.
// It rewrites the URL without a history entry (page 1 drops the parameter), fetches,
// then restores the anchor's scroll position when scroll preservation is on.
// Requesting the current page is a no-op. It reports whether a fetch was made.
func (p *PaginationSync) HandlePageChange(ctx context.Context, page int) (bool, error) {
	if page < 1 {
		return false, ErrInvalidPage
	}

	p.mu.Lock()
	if page == p.currentPage {
		p.mu.Unlock()
		return false, nil
	}
	p.mu.Unlock()

	top, restore := 0, false
	if p.scroll != nil {
		top, restore = p.scroll.AnchorOffset()
	}

	values := p.query.Values()
	if page == 1 {
		values.Del(PageParam)
	} else {
		values.Set(PageParam, strconv.Itoa(page))
	}
	p.query.Replace(values)

	p.mu.Lock()
	p.currentPage = page
	p.mu.Unlock()

	p.metrics.ObservePageChange(PageChangeExplicit)
	fetchCtx, done := p.begin(ctx)
	err := p.fetch(fetchCtx, page)
	done()

	if restore {
		p.scroll.RestoreAfter(top, p.delay)
	}
	return true, err
}

// begin cancels the fetch in flight, if any, and derives the context for the next one.
func (p *PaginationSync) begin(ctx context.Context) (context.Context, func()) {
	fetchCtx, cancel := context.WithCancel(ctx)

	p.mu.Lock()
	if p.cancel != nil {
		p.cancel()
	}
	p.generation++
	gen := p.generation
	p.cancel = cancel
	p.mu.Unlock()

	return fetchCtx, func() {
		cancel()
		p.mu.Lock()
		if p.generation == gen {
			p.cancel = nil
		}
		p.mu.Unlock()
	}
}
