package httpx

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestHTMX_RequestDetection(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/top", nil)
	r.Header.Set("Hx-Request", "true")
	r.Header.Set("Hx-Boosted", "true")
	if !IsHTMX(r) {
		t.Fatal("expected IsHTMX true")
	}
	if !IsBoosted(r) {
		t.Fatal("expected IsBoosted true")
	}

	r2 := httptest.NewRequest(http.MethodGet, "/top", nil)
	if IsHTMX(r2) || IsBoosted(r2) {
		t.Fatal("expected defaults to false")
	}
}

func TestHTMX_WantsPartial(t *testing.T) {
	tests := []struct {
		name    string
		headers map[string]string
		partial bool
	}{
		{name: "plain load", partial: false},
		{name: "fragment request", headers: map[string]string{"Hx-Request": "true"}, partial: true},
		{name: "boosted link", headers: map[string]string{"Hx-Request": "true", "Hx-Boosted": "true"}, partial: false},
		{
			name:    "history restore",
			headers: map[string]string{"Hx-Request": "true", "Hx-History-Restore-Request": "true"},
			partial: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/top", nil)
			for k, v := range tt.headers {
				r.Header.Set(k, v)
			}
			if got := WantsPartial(r); got != tt.partial {
				t.Fatalf("WantsPartial: expected %v, got %v", tt.partial, got)
			}
			if got := IsNavigation(r); got == tt.partial {
				t.Fatalf("IsNavigation: expected %v, got %v", !tt.partial, got)
			}
		})
	}
}

func TestHTMX_CurrentURLAndPageID(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/top?goto=2", nil)
	if _, ok := CurrentURL(r); ok {
		t.Fatal("expected no current URL without header")
	}
	r.Header.Set("Hx-Current-Url", "https://summits.example/top?page=3&lang=en")
	r.Header.Set(PageIDHeader, " abc ")

	u, ok := CurrentURL(r)
	if !ok {
		t.Fatal("expected current URL")
	}
	if u.Path != "/top" || u.Query().Get("page") != "3" {
		t.Fatalf("unexpected current URL %s", u)
	}
	if got := RequestPageID(r); got != "abc" {
		t.Fatalf("RequestPageID: %q", got)
	}
}

func TestHTMX_ResponseHeaders_Setters(t *testing.T) {
	rr := httptest.NewRecorder()
	SetHXRedirect(rr, "/auth/oauth/vk")
	SetHXReplaceURL(rr, "/top?page=2")
	SetHXTriggerAfterSettle(rr, "summits:restore-scroll", nil)
	res := rr.Result()
	t.Cleanup(func() { _ = res.Body.Close() })

	if got := res.Header.Get("Hx-Redirect"); got != "/auth/oauth/vk" {
		t.Fatalf("HX-Redirect: %q", got)
	}
	if got := res.Header.Get("Hx-Replace-Url"); got != "/top?page=2" {
		t.Fatalf("HX-Replace-Url: %q", got)
	}

	var settle map[string]bool
	if err := json.Unmarshal([]byte(res.Header.Get("Hx-Trigger-After-Settle")), &settle); err != nil {
		t.Fatalf("HX-Trigger-After-Settle JSON: %v", err)
	}
	if !settle["summits:restore-scroll"] {
		t.Fatalf("expected boolean trigger, got %#v", settle)
	}
}

func TestHTMXResponse_Fluent(t *testing.T) {
	rr := httptest.NewRecorder()
	HTMX(rr).ReplaceURL("/top").TriggerAfterSettle("x", 1).NoContent()
	if rr.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rr.Code)
	}
	if rr.Header().Get("Hx-Replace-Url") != "/top" {
		t.Fatal("missing replace url")
	}

	rr = httptest.NewRecorder()
	HTMX(rr).Redirect("/auth/oauth/vk")
	if rr.Code != http.StatusNoContent || rr.Header().Get("Hx-Redirect") != "/auth/oauth/vk" {
		t.Fatalf("unexpected redirect response: %d %v", rr.Code, rr.Header())
	}
}
