package httpx

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	summitsweb "github.com/summitlog/summits-web"
	domainauth "github.com/summitlog/summits-web/internal/domain/auth"
	"github.com/summitlog/summits-web/internal/domain/route"
	"github.com/summitlog/summits-web/internal/http/uiutil"
	"github.com/summitlog/summits-web/internal/mocks"
	mockauth "github.com/summitlog/summits-web/internal/mocks/auth"
	"github.com/summitlog/summits-web/internal/service"
)

const (
	testLoginURL = "/auth/oauth/vk"
	testSession  = "s3cr3t"
)

type testServer struct {
	handler http.Handler
	api     *mocks.MockSummitsAPI
	source  *mockauth.StaticAuthSource
	states  *service.AuthStates
}

func newTestRenderer(t *testing.T, routes *route.Table) *TemplateRenderer {
	t.Helper()
	r, err := NewTemplateRenderer(TemplateRendererConfig{
		TemplateFS: summitsweb.Templates(),
		Funcs:      TemplateFuncs(routes, uiutil.Images{BaseURL: "https://img.example/"}),
	})
	require.NoError(t, err)
	return r
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	ctrl := gomock.NewController(t)
	api := mocks.NewMockSummitsAPI(ctrl)
	source := mockauth.NewStaticAuthSource(map[string]domainauth.User{
		testSession: {ID: 42, Name: "Иван", Image: "/u/42.jpg"},
	})

	routes, err := route.Default()
	require.NoError(t, err)

	states, err := service.NewAuthStates(service.AuthStatesOptions{Source: source})
	require.NoError(t, err)

	guard, err := NewGuard(GuardOptions{
		States:        states,
		Navigation:    service.NewNavigationGuard(service.NavigationGuardOptions{LoginURL: testLoginURL, DefaultTitle: "Вершины"}),
		SessionCookie: "session",
	})
	require.NoError(t, err)

	pages := NewPages(PagesOptions{
		API:            api,
		Renderer:       newTestRenderer(t, routes),
		LoginURL:       testLoginURL,
		PreserveScroll: true,
		RestoreDelay:   100 * time.Millisecond,
	})

	h, err := NewRouter(RouterOptions{
		Routes:        routes,
		Pages:         pages,
		Guard:         guard,
		States:        states,
		Static:        summitsweb.Static(),
		Placeholder:   uiutil.DefaultPlaceholder,
		DefaultLocale: uiutil.LocaleRU,
	})
	require.NoError(t, err)

	return &testServer{handler: h, api: api, source: source, states: states}
}

type reqOption func(*http.Request)

func withSession(r *http.Request) { r.AddCookie(&http.Cookie{Name: "session", Value: testSession}) }

func withHTMX(r *http.Request) { r.Header.Set("Hx-Request", "true") }

func withBoost(r *http.Request) {
	r.Header.Set("Hx-Request", "true")
	r.Header.Set("Hx-Boosted", "true")
}

func withCurrentURL(u string) reqOption {
	return func(r *http.Request) { r.Header.Set("Hx-Current-Url", u) }
}

func withPageID(id string) reqOption {
	return func(r *http.Request) { r.Header.Set(PageIDHeader, id) }
}

func (s *testServer) get(target string, opts ...reqOption) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	req.Header.Set("Accept", "text/html")
	for _, o := range opts {
		o(req)
	}
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)
	return rec
}
