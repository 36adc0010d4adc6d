package httpx

import (
	"net/http"
	"net/url"
	"strconv"

	domainauth "github.com/summitlog/summits-web/internal/domain/auth"
	"github.com/summitlog/summits-web/internal/http/uiutil"
	"github.com/summitlog/summits-web/internal/service"
)

// Layout contains the data every page template shares.
type Layout struct {
	Title     string
	RouteName string
	PageID    string
	User      *domainauth.User
	Locale    uiutil.Locale
	LoginURL  string
}

// PageData is the root value handed to page templates.
type PageData struct {
	Layout Layout
	Data   any
	Pager  *Pager
	// Error is a user-facing message shown instead of the data when a fetch failed.
	Error string
}

// buildLayout collects layout data from the request context.
func buildLayout(r *http.Request, loginURL string) Layout {
	ctx := r.Context()
	layout := Layout{
		PageID:   PageIDFromContext(ctx),
		Locale:   LocaleFromContext(ctx),
		LoginURL: loginURL,
	}
	if nav, ok := NavigationFromContext(ctx); ok {
		layout.Title = nav.Title
		layout.RouteName = nav.Route.Name
		layout.User = nav.User
	}
	return layout
}

// Pager renders the pagination control of a list.
type Pager struct {
	Current int
	Total   int
	// Target is the id of the element the control swaps.
	Target string
	path   string
	query  url.Values
}

// PageLink is one entry of the pagination control; Gap entries render as an ellipsis.
type PageLink struct {
	Number  int
	Current bool
	Gap     bool
}

const pagerWindow = 2

func newPager(sync *service.PaginationSync, q *requestQuery, target string) *Pager {
	return &Pager{
		Current: sync.CurrentPage(),
		Total:   sync.TotalPages(),
		Target:  target,
		path:    q.path,
		query:   q.Values(),
	}
}

// HasPrev reports whether a previous page exists.
func (p *Pager) HasPrev() bool { return p.Current > 1 }

// HasNext reports whether a next page exists.
func (p *Pager) HasNext() bool { return p.Current < p.Total }

// Prev is the page before the current one.
func (p *Pager) Prev() int { return max(1, p.Current-1) }

// Next is the page after the current one.
func (p *Pager) Next() int { return min(p.Total, p.Current+1) }

// Links returns the first and last pages plus a window around the current one.
func (p *Pager) Links() []PageLink {
	if p.Total <= 1 {
		return nil
	}
	lo, hi := max(1, p.Current-pagerWindow), min(p.Total, p.Current+pagerWindow)

	var links []PageLink
	add := func(n int) { links = append(links, PageLink{Number: n, Current: n == p.Current}) }

	if lo > 1 {
		add(1)
		if lo > 2 {
			links = append(links, PageLink{Gap: true})
		}
	}
	for n := lo; n <= hi; n++ {
		add(n)
	}
	if hi < p.Total {
		if hi < p.Total-1 {
			links = append(links, PageLink{Gap: true})
		}
		add(p.Total)
	}
	return links
}

// Href is the canonical URL of page n; page 1 carries no page parameter.
func (p *Pager) Href(n int) string {
	q := cloneValues(p.query)
	if n <= 1 {
		q.Del(service.PageParam)
	} else {
		q.Set(service.PageParam, strconv.Itoa(n))
	}
	if enc := q.Encode(); enc != "" {
		return p.path + "?" + enc
	}
	return p.path
}

// Goto is the htmx request URL that changes to page n in place.
func (p *Pager) Goto(n int) string {
	return p.path + "?" + url.Values{GotoParam: {strconv.Itoa(n)}}.Encode()
}
