// Package apiclient is the HTTP client for the climbing-log API.
package apiclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	domainauth "github.com/summitlog/summits-web/internal/domain/auth"
	"github.com/summitlog/summits-web/internal/domain/model"
	apperrors "github.com/summitlog/summits-web/internal/errors"
	"github.com/summitlog/summits-web/internal/ports"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

const (
	tracerName      = "github.com/summitlog/summits-web/internal/adapters/apiclient"
	defaultMePath   = "/api/user/me"
	defaultTimeout  = 10 * time.Second
	maxResponseBody = 4 << 20
)

var (
	_ ports.AuthStatusSource = (*Client)(nil)
	_ ports.SummitsAPI       = (*Client)(nil)
)

// Config captures how to reach the API.
type Config struct {
	// BaseURL is the API origin, e.g. http://localhost:5000.
	BaseURL string
	// MePath is the "who am I" endpoint. Defaults to /api/user/me.
	MePath string
	// SessionCookie is the name of the cookie the API issues at login.
	SessionCookie string
	// Timeout bounds each call when Client is nil.
	Timeout time.Duration
	Client  *http.Client
	// Tracer defaults to the global tracer provider.
	Tracer trace.Tracer
}

// Client calls the API on behalf of a visitor, forwarding their session cookie.
type Client struct {
	base          *url.URL
	mePath        string
	sessionCookie string
	client        *http.Client
	tracer        trace.Tracer
}

// New builds a Client. Callers should pass a validated config.
func New(cfg Config) (*Client, error) {
	raw := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if raw == "" {
		return nil, errors.New("api base url is required")
	}
	base, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("parse api base url: %w", err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("api base url %q must be absolute", raw)
	}

	hc := cfg.Client
	if hc == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = defaultTimeout
		}
		hc = &http.Client{Timeout: timeout}
	}

	tracer := cfg.Tracer
	if tracer == nil {
		tracer = otel.Tracer(tracerName)
	}

	mePath := strings.TrimSpace(cfg.MePath)
	if mePath == "" {
		mePath = defaultMePath
	}

	return &Client{
		base:          base,
		mePath:        mePath,
		sessionCookie: strings.TrimSpace(cfg.SessionCookie),
		client:        hc,
		tracer:        tracer,
	}, nil
}

// CurrentUser returns the user behind session. The API answers 401 for anonymous
// sessions; a 200 without a user record (null, or no id) is treated the same way.
func (c *Client) CurrentUser(ctx context.Context, session string) (*domainauth.User, error) {
	var u *domainauth.User
	if err := c.getJSON(ctx, "get current user", c.mePath, nil, session, &u); err != nil {
		return nil, err
	}
	if u == nil || u.ID == 0 {
		return nil, apperrors.New(apperrors.ErrCodeUnauthenticated, "get current user: no user record")
	}
	return u, nil
}

// Summits returns the summits index.
func (c *Client) Summits(ctx context.Context, session string) (*model.SummitsTable, error) {
	var out model.SummitsTable
	if err := c.getJSON(ctx, "get summits", "/api/summits", nil, session, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Summit returns one summit. The response carries the visitor's climb when session is authenticated.
func (c *Client) Summit(ctx context.Context, session, ridgeID, summitID string) (*model.Summit, error) {
	var out model.Summit
	p := "/api/summit/" + url.PathEscape(ridgeID) + "/" + url.PathEscape(summitID)
	if err := c.getJSON(ctx, "get summit", p, nil, session, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SummitClimbs returns one page of a summit's climb log.
func (c *Client) SummitClimbs(ctx context.Context, session, ridgeID, summitID string, page int) (*model.SummitClimbs, error) {
	var out model.SummitClimbs
	p := "/api/summit/" + url.PathEscape(ridgeID) + "/" + url.PathEscape(summitID) + "/climbs"
	if err := c.getJSON(ctx, "get summit climbs", p, pageQuery(page), session, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Top returns one page of the climbers leaderboard.
func (c *Client) Top(ctx context.Context, session string, page int) (*model.Top, error) {
	var out model.Top
	if err := c.getJSON(ctx, "get top", "/api/top", pageQuery(page), session, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// User returns a public user profile.
func (c *Client) User(ctx context.Context, session string, userID int64) (*domainauth.User, error) {
	var out domainauth.User
	p := "/api/user/" + strconv.FormatInt(userID, 10)
	if err := c.getJSON(ctx, "get user", p, nil, session, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UserClimbs returns every climb logged by a user.
func (c *Client) UserClimbs(ctx context.Context, session string, userID int64) ([]model.UserClimb, error) {
	var out []model.UserClimb
	p := "/api/user/" + strconv.FormatInt(userID, 10) + "/climbs"
	if err := c.getJSON(ctx, "get user climbs", p, nil, session, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func pageQuery(page int) url.Values {
	if page <= 1 {
		return nil
	}
	return url.Values{"page": {strconv.Itoa(page)}}
}

func (c *Client) getJSON(ctx context.Context, op, path string, query url.Values, session string, out any) error {
	ctx, span := c.tracer.Start(ctx, "apiclient "+op,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.request.method", http.MethodGet),
			attribute.String("url.path", path),
		),
	)
	defer span.End()

	err := c.do(ctx, span, op, path, query, session, out)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, string(apperrors.GetCode(err)))
	}
	return err
}

func (c *Client) do(ctx context.Context, span trace.Span, op, path string, query url.Values, session string, out any) error {
	u := *c.base
	u.Path = strings.TrimRight(c.base.Path, "/") + path
	u.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return apperrors.Wrapf(err, apperrors.ErrCodeInternal, "create %s request", op)
	}
	req.Header.Set("Accept", "application/json")
	if session != "" && c.sessionCookie != "" {
		req.AddCookie(&http.Cookie{Name: c.sessionCookie, Value: session})
	}
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))

	resp, err := c.client.Do(req)
	if err != nil {
		return apperrors.FromTransport(op, err)
	}
	defer func() {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxResponseBody))
		_ = resp.Body.Close()
	}()

	span.SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode))
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return apperrors.FromStatus(op, resp.StatusCode)
	}

	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBody)).Decode(out); err != nil {
		return apperrors.Wrapf(err, apperrors.ErrCodeDecode, "decode %s response", op)
	}
	return nil
}
