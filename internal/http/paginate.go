package httpx

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/summitlog/summits-web/internal/ports"
	"github.com/summitlog/summits-web/internal/service"
)

// paginated is the outcome of driving a PaginationSync for one request.
type paginated struct {
	sync  *service.PaginationSync
	query *requestQuery
	err   error
}

// paginate drives a PaginationSync for r and reports whether the response was
// already written (a no-op page change or a bad goto value).
//
//   - ?goto=N from the pagination control: HandlePageChange.
//   - htmx navigation (boosted link, history restore): OnURLChange from the
//     page the browser was on, falling back to Refresh when the page did not change.
//   - plain page load: Refresh.
func (h *Pages) paginate(w http.ResponseWriter, r *http.Request, fetch service.FetchFunc) (paginated, bool) {
	query := newRequestQuery(w, r)
	explicit := r.URL.Query().Has(GotoParam)
	navigation := !explicit && IsHTMX(r) && IsNavigation(r)

	// A navigation starts from the page the browser leaves, so OnURLChange
	// can tell whether the page actually changed.
	var port ports.QueryPort = query
	if navigation {
		port = previousQuery(w, r)
	}
	sync := service.NewPaginationSync(port, fetch, service.PaginationOptions{
		Scroll:         newRequestScroll(w, r),
		PreserveScroll: h.preserveScroll,
		RestoreDelay:   h.restoreDelay,
		Metrics:        h.metrics,
	})
	ctx := r.Context()
	out := paginated{sync: sync, query: query}

	if explicit {
		page, err := strconv.Atoi(r.URL.Query().Get(GotoParam))
		if err != nil {
			http.Error(w, "invalid page", http.StatusBadRequest)
			return out, true
		}
		fetched, err := sync.HandlePageChange(ctx, page)
		switch {
		case errors.Is(err, service.ErrInvalidPage):
			http.Error(w, "invalid page", http.StatusBadRequest)
			return out, true
		case err == nil && !fetched:
			HTMX(w).NoContent()
			return out, true
		}
		out.err = err
		return out, false
	}

	if navigation {
		fetched, err := sync.OnURLChange(ctx, r.URL.Query().Get(service.PageParam))
		if fetched {
			out.err = err
			return out, false
		}
	}

	out.err = sync.Refresh(ctx)
	return out, false
}

// keepPager leaves the pager reachable after a failed fetch, when the real
// page count is unknown.
func keepPager(sync *service.PaginationSync) {
	sync.SetTotalPages(max(sync.TotalPages(), sync.CurrentPage()))
}
