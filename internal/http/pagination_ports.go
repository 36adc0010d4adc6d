package httpx

import (
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/summitlog/summits-web/internal/ports"
)

const (
	// GotoParam asks a paginated view to change page explicitly.
	GotoParam = "goto"
	// AnchorTopParam carries the list anchor's viewport offset, in pixels.
	AnchorTopParam = "anchor_top"
	// RestoreScrollEvent is handled by static/js/app.js.
	RestoreScrollEvent = "summits:restore-scroll"
)

// controlParams are request-only and never written back to the browser URL.
var controlParams = []string{GotoParam, AnchorTopParam}

var (
	_ ports.QueryPort  = (*requestQuery)(nil)
	_ ports.ScrollPort = (*requestScroll)(nil)
)

// requestQuery exposes the browser URL behind one request as a QueryPort.
// A goto request is issued by the pager of the page the browser shows, so its
// query comes from Hx-Current-Url; every other request carries its own URL.
type requestQuery struct {
	w      http.ResponseWriter
	path   string
	values url.Values
}

func newRequestQuery(w http.ResponseWriter, r *http.Request) *requestQuery {
	values := r.URL.Query()
	if values.Has(GotoParam) {
		if cur, ok := sameCurrentURL(r); ok {
			values = cur.Query()
		}
	}
	return newQuery(w, r.URL.Path, values)
}

// previousQuery is the query of the page an htmx navigation leaves. It is
// empty when the navigation comes from another path.
func previousQuery(w http.ResponseWriter, r *http.Request) *requestQuery {
	values := url.Values{}
	if cur, ok := sameCurrentURL(r); ok {
		values = cur.Query()
	}
	return newQuery(w, r.URL.Path, values)
}

func sameCurrentURL(r *http.Request) (*url.URL, bool) {
	cur, ok := CurrentURL(r)
	if !ok || cur.Path != r.URL.Path {
		return nil, false
	}
	return cur, true
}

func newQuery(w http.ResponseWriter, path string, values url.Values) *requestQuery {
	for _, k := range controlParams {
		values.Del(k)
	}
	return &requestQuery{w: w, path: path, values: values}
}

func (q *requestQuery) Values() url.Values {
	return cloneValues(q.values)
}

// Replace rewrites the browser URL through Hx-Replace-Url, which adds no history entry.
func (q *requestQuery) Replace(values url.Values) {
	q.values = cloneValues(values)
	HTMX(q.w).ReplaceURL(q.URL())
}

// URL is the path with the current query, in canonical form.
func (q *requestQuery) URL() string {
	if enc := q.values.Encode(); enc != "" {
		return q.path + "?" + enc
	}
	return q.path
}

func cloneValues(v url.Values) url.Values {
	out := make(url.Values, len(v))
	for k, vals := range v {
		out[k] = append([]string(nil), vals...)
	}
	return out
}

// requestScroll reads the anchor offset the pagination control sent and asks
// the browser to restore it once the swapped list has settled.
type requestScroll struct {
	w   http.ResponseWriter
	top int
	ok  bool
}

func newRequestScroll(w http.ResponseWriter, r *http.Request) *requestScroll {
	s := &requestScroll{w: w}
	if raw := r.URL.Query().Get(AnchorTopParam); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			s.top, s.ok = n, true
		}
	}
	return s
}

func (s *requestScroll) AnchorOffset() (int, bool) { return s.top, s.ok }

func (s *requestScroll) RestoreAfter(top int, delay time.Duration) {
	HTMX(s.w).TriggerAfterSettle(RestoreScrollEvent, map[string]int64{
		"top":   int64(top),
		"delay": delay.Milliseconds(),
	})
}
