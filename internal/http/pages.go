package httpx

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	domainauth "github.com/summitlog/summits-web/internal/domain/auth"
	"github.com/summitlog/summits-web/internal/domain/model"
	apperrors "github.com/summitlog/summits-web/internal/errors"
	"github.com/summitlog/summits-web/internal/http/uiutil"
	"github.com/summitlog/summits-web/internal/ports"
	"github.com/summitlog/summits-web/internal/service"
)

// Page template names, one per file under pages/.
const (
	PageSummits  = "summits"
	PageAbout    = "about"
	PageTop      = "top"
	PageSummit   = "summit"
	PageClimb    = "climb"
	PageUser     = "user"
	PageNotFound = "notfound"
)

// PagesOptions groups dependencies for Pages.
type PagesOptions struct {
	API      ports.SummitsAPI  // Required
	Renderer *TemplateRenderer // Required
	LoginURL string

	PreserveScroll bool
	RestoreDelay   time.Duration
	ItemsPerPage   int

	Metrics service.Metrics
	Logger  *slog.Logger
}

// Pages serves the browser-facing routes.
type Pages struct {
	api            ports.SummitsAPI
	t              *TemplateRenderer
	loginURL       string
	preserveScroll bool
	restoreDelay   time.Duration
	itemsPerPage   int
	metrics        service.Metrics
	log            *slog.Logger
}

// NewPages constructs the page handlers.
func NewPages(opts PagesOptions) *Pages {
	if opts.API == nil || opts.Renderer == nil {
		panic("httpx: Pages requires an API client and a renderer")
	}
	if opts.ItemsPerPage <= 0 {
		opts.ItemsPerPage = model.ItemsPerPage
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Pages{
		api:            opts.API,
		t:              opts.Renderer,
		loginURL:       opts.LoginURL,
		preserveScroll: opts.PreserveScroll,
		restoreDelay:   opts.RestoreDelay,
		itemsPerPage:   opts.ItemsPerPage,
		metrics:        opts.Metrics,
		log:            logger.With("component", "pages"),
	}
}

// Handler returns the handler for a route name, or nil when the name has none.
func (h *Pages) Handler(name string) http.HandlerFunc {
	switch name {
	case "summits":
		return h.Summits
	case "about":
		return h.About
	case "top":
		return h.Top
	case "summit":
		return h.Summit
	case "climb":
		return h.Climb
	case "user":
		return h.User
	case "user_me":
		return h.Me
	default:
		return nil
	}
}

func session(r *http.Request) string {
	if nav, ok := NavigationFromContext(r.Context()); ok {
		return nav.Session
	}
	return ""
}

func (h *Pages) data(r *http.Request) PageData {
	return PageData{Layout: buildLayout(r, h.loginURL)}
}

// fail records err on d, or reports false when err is a not-found that should
// render the 404 page instead.
func (h *Pages) fail(ctx context.Context, d *PageData, what string, err error) bool {
	if apperrors.IsNotFound(err) {
		return false
	}
	if !apperrors.IsCanceled(err) {
		h.log.WarnContext(ctx, "fetch failed",
			slog.String("what", what),
			slog.String("code", string(apperrors.GetCode(err))),
			slog.Any("error", err),
		)
	}
	d.Error = loadErrorMessage(d.Layout.Locale)
	return true
}

func loadErrorMessage(loc uiutil.Locale) string {
	if loc == uiutil.LocaleEN {
		return "Could not load data. Please try again later."
	}
	return "Не удалось загрузить данные. Попробуйте позже."
}

func (h *Pages) render(w http.ResponseWriter, r *http.Request, page string, d PageData) {
	if err := h.t.Render(w, r, page, d); err != nil {
		h.log.ErrorContext(r.Context(), "render failed", slog.String("page", page), slog.Any("error", err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

// NotFound renders the 404 page for browsers and a JSON error for everything else.
func (h *Pages) NotFound(w http.ResponseWriter, r *http.Request) {
	if !IsBrowserRequest(r) {
		WriteError(w, ErrorParams{Code: http.StatusNotFound, ErrCode: "not_found", Err: errNotFound})
		return
	}
	d := h.data(r)
	d.Layout.Title = notFoundTitle(d.Layout.Locale)
	if err := h.t.RenderStatus(w, r, http.StatusNotFound, PageNotFound, d); err != nil {
		http.Error(w, "Not Found", http.StatusNotFound)
	}
}

func notFoundTitle(loc uiutil.Locale) string {
	if loc == uiutil.LocaleEN {
		return "Page not found"
	}
	return "Страница не найдена"
}

// Summits renders the summits index.
func (h *Pages) Summits(w http.ResponseWriter, r *http.Request) {
	d := h.data(r)
	table, err := h.api.Summits(r.Context(), session(r))
	if err != nil {
		h.fail(r.Context(), &d, "summits", err)
	} else {
		d.Data = table
	}
	h.render(w, r, PageSummits, d)
}

// About renders the static about page.
func (h *Pages) About(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, PageAbout, h.data(r))
}

// Top renders the climbers ranking, one API page per view page.
func (h *Pages) Top(w http.ResponseWriter, r *http.Request) {
	d := h.data(r)
	var top *model.Top
	p, done := h.paginate(w, r, func(ctx context.Context, page int) error {
		res, err := h.api.Top(ctx, session(r), page)
		if err != nil {
			return err
		}
		top = res
		return nil
	})
	if done {
		return
	}

	if p.err != nil {
		h.fail(r.Context(), &d, "top", p.err)
		keepPager(p.sync)
	} else if top != nil {
		p.sync.SetTotalPages(top.TotalPages)
		d.Data = top
	}
	d.Pager = newPager(p.sync, p.query, "top-list")
	h.render(w, r, PageTop, d)
}

type summitView struct {
	Summit *model.Summit
	Climbs *model.SummitClimbs
}

// Summit renders a summit with its paginated climb log. In-place page changes
// only refetch the log.
func (h *Pages) Summit(w http.ResponseWriter, r *http.Request) {
	ridgeID, summitID := chi.URLParam(r, "ridge_id"), chi.URLParam(r, "summit_id")
	ctx := r.Context()
	d := h.data(r)
	view := &summitView{}

	if !WantsPartial(r) {
		s, err := h.api.Summit(ctx, session(r), ridgeID, summitID)
		if err != nil {
			if !h.fail(ctx, &d, "summit", err) {
				h.NotFound(w, r)
				return
			}
			h.render(w, r, PageSummit, d)
			return
		}
		view.Summit = s
		d.Layout.Title = s.DisplayName()
	}

	p, done := h.paginate(w, r, func(ctx context.Context, page int) error {
		res, err := h.api.SummitClimbs(ctx, session(r), ridgeID, summitID, page)
		if err != nil {
			return err
		}
		view.Climbs = res
		return nil
	})
	if done {
		return
	}

	if p.err != nil {
		h.fail(ctx, &d, "summit climbs", p.err)
		keepPager(p.sync)
	} else if view.Climbs != nil {
		p.sync.SetTotalPages(model.TotalPages(view.Climbs.TotalClimbs, h.itemsPerPage))
	}
	d.Data = view
	d.Pager = newPager(p.sync, p.query, "climbs-list")
	h.render(w, r, PageSummit, d)
}

// Climb renders the climb editor of the current user for a summit.
func (h *Pages) Climb(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	d := h.data(r)
	s, err := h.api.Summit(ctx, session(r), chi.URLParam(r, "ridge_id"), chi.URLParam(r, "summit_id"))
	if err != nil {
		if !h.fail(ctx, &d, "climb", err) {
			h.NotFound(w, r)
			return
		}
	} else {
		d.Data = s
	}
	h.render(w, r, PageClimb, d)
}

type userView struct {
	User   *domainauth.User
	Climbs []model.UserClimb
	Own    bool
}

// User renders a climber's profile.
func (h *Pages) User(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "user_id"), 10, 64)
	if err != nil || id <= 0 {
		h.NotFound(w, r)
		return
	}
	h.renderUser(w, r, id)
}

// Me renders the current user's own profile.
func (h *Pages) Me(w http.ResponseWriter, r *http.Request) {
	nav, ok := NavigationFromContext(r.Context())
	if !ok || nav.User == nil {
		redirectOut(w, r, h.loginURL)
		return
	}
	h.renderUser(w, r, nav.User.ID)
}

func (h *Pages) renderUser(w http.ResponseWriter, r *http.Request, id int64) {
	ctx := r.Context()
	d := h.data(r)

	user, err := h.api.User(ctx, session(r), id)
	if err != nil {
		if !h.fail(ctx, &d, "user", err) {
			h.NotFound(w, r)
			return
		}
		h.render(w, r, PageUser, d)
		return
	}

	view := &userView{User: user, Own: d.Layout.User != nil && d.Layout.User.ID == user.ID}
	if climbs, err := h.api.UserClimbs(ctx, session(r), id); err != nil {
		h.fail(ctx, &d, "user climbs", err)
	} else {
		view.Climbs = climbs
	}
	if d.Layout.RouteName == "user" {
		d.Layout.Title = user.Name
	}
	d.Data = view
	h.render(w, r, PageUser, d)
}
