package httpx

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/summitlog/summits-web/internal/http/uiutil"
)

func TestRequestID(t *testing.T) {
	var seen string
	h := RequestID()(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		seen = RequestIDFromContext(r.Context())
	}))

	t.Run("mints when absent", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		_, err := uuid.Parse(seen)
		require.NoError(t, err)
		assert.Equal(t, seen, rec.Header().Get(RequestIDHeader))
	})

	t.Run("reuses well-formed header", func(t *testing.T) {
		id := uuid.NewString()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(RequestIDHeader, id)
		h.ServeHTTP(httptest.NewRecorder(), req)
		assert.Equal(t, id, seen)
	})

	t.Run("replaces garbage", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(RequestIDHeader, "<script>")
		h.ServeHTTP(httptest.NewRecorder(), req)
		assert.NotEqual(t, "<script>", seen)
	})
}

func TestPageSession(t *testing.T) {
	var seen string
	h := PageSession()(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		seen = PageIDFromContext(r.Context())
	}))
	existing := uuid.NewString()

	t.Run("plain load mints a new page", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/top", nil)
		req.Header.Set(PageIDHeader, existing)
		h.ServeHTTP(httptest.NewRecorder(), req)
		assert.NotEmpty(t, seen)
		assert.NotEqual(t, existing, seen)
	})

	t.Run("htmx request keeps its page", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/top", nil)
		req.Header.Set("Hx-Request", "true")
		req.Header.Set(PageIDHeader, existing)
		h.ServeHTTP(httptest.NewRecorder(), req)
		assert.Equal(t, existing, seen)
	})

	t.Run("htmx request without page is ephemeral", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/top", nil)
		req.Header.Set("Hx-Request", "true")
		req.Header.Set(PageIDHeader, "not-a-uuid")
		h.ServeHTTP(httptest.NewRecorder(), req)
		assert.Empty(t, seen)
	})
}

func TestLocaleMiddleware(t *testing.T) {
	var seen uiutil.Locale
	h := Locale(uiutil.LocaleRU)(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		seen = LocaleFromContext(r.Context())
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/?lang=en", nil))
	assert.Equal(t, uiutil.LocaleEN, seen)
	require.Len(t, rec.Result().Cookies(), 1)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, uiutil.LocaleRU, seen)
	assert.Empty(t, rec.Result().Cookies())
}

type observedRequest struct {
	route  string
	status int
}

type recordingObserver struct{ got []observedRequest }

func (o *recordingObserver) ObserveHTTP(route string, status int, _ time.Duration) {
	o.got = append(o.got, observedRequest{route: route, status: status})
}

func TestInstrumentAndLogging(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	obs := &recordingObserver{}

	r := chi.NewRouter()
	r.Use(RequestID(), Logging(logger), Instrument(obs))
	r.Get("/user/{user_id}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/user/42", nil))

	require.Len(t, obs.got, 1)
	assert.Equal(t, observedRequest{route: "/user/{user_id}", status: http.StatusTeapot}, obs.got[0])

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "/user/42", entry["path"])
	assert.Equal(t, "/user/{user_id}", entry["route"])
	assert.EqualValues(t, http.StatusTeapot, entry["status"])
	assert.Equal(t, rec.Header().Get(RequestIDHeader), entry["request_id"])
}

func TestInstrument_NilObserver(t *testing.T) {
	next := http.HandlerFunc(func(http.ResponseWriter, *http.Request) {})
	h := Instrument(nil)(next)
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
}

func TestRecover(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	h := Recover(logger)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/top", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, buf.String(), "boom")
}

func TestIsBrowserRequest(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		accept  string
		htmx    bool
		browser bool
	}{
		{name: "api path", path: "/api/user/me", accept: "text/html", browser: false},
		{name: "static asset", path: "/static/js/app.js", accept: "*/*", browser: false},
		{name: "html accept", path: "/top", accept: "text/html,application/xhtml+xml", browser: true},
		{name: "htmx", path: "/top", accept: "*/*", htmx: true, browser: true},
		{name: "no accept", path: "/top", browser: true},
		{name: "json accept", path: "/nope", accept: "application/json", browser: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got bool
			h := BrowserDetection()(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
				got = IsBrowserRequest(r)
			}))
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.accept != "" {
				req.Header.Set("Accept", tt.accept)
			}
			if tt.htmx {
				req.Header.Set("Hx-Request", "true")
			}
			h.ServeHTTP(httptest.NewRecorder(), req)
			assert.Equal(t, tt.browser, got)
			assert.Equal(t, tt.browser, isBrowserRequest(req))
		})
	}
}
