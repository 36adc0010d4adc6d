package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestRoutesCommand_PrintsEmbeddedTable(t *testing.T) {
	out, err := execute(t, "routes")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 8)
	assert.Contains(t, lines[0], "NAME")
	assert.Contains(t, lines[1], "summits")
	assert.Regexp(t, `user_me\s+/user/me\s+.+\s+required`, out)
	assert.Regexp(t, `climb\s+/:ridge_id/:summit_id/climb\s+.+\s+required`, out)
}

func TestRoutesCommand_MissingFile(t *testing.T) {
	_, err := execute(t, "routes", "--file", "/nope/routes.yaml")
	require.Error(t, err)
}

func newMeServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/user/me" {
			http.NotFound(w, r)
			return
		}
		c, err := r.Cookie("session")
		if err != nil || c.Value != "s3cr3t" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":42,"name":"Иван","image":"/u/42.jpg"}`))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestWhoamiCommand(t *testing.T) {
	srv := newMeServer(t)

	tests := []struct {
		name     string
		session  string
		wantAuth bool
	}{
		{name: "known session", session: "s3cr3t", wantAuth: true},
		{name: "unknown session", session: "nope"},
		{name: "anonymous"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, "whoami", "--api", srv.URL, "--session", tt.session)
			require.NoError(t, err)

			var res whoamiResult
			require.NoError(t, json.Unmarshal([]byte(out), &res))
			assert.True(t, res.Initialized)
			assert.Equal(t, tt.wantAuth, res.Authenticated)
			if tt.wantAuth {
				require.NotNil(t, res.User)
				assert.Equal(t, int64(42), res.User.ID)
				assert.Equal(t, "Иван", res.User.Name)
			} else {
				assert.Nil(t, res.User)
			}
		})
	}
}

func TestWhoamiCommand_UnreachableAPIIsAnonymous(t *testing.T) {
	srv := newMeServer(t)
	srv.Close()

	out, err := execute(t, "whoami", "--api", srv.URL, "--session", "s3cr3t")
	require.NoError(t, err)
	assert.Contains(t, out, `"initialized": true`)
	assert.Contains(t, out, `"authenticated": false`)
}

func TestWhoamiCommand_RelativeURL(t *testing.T) {
	_, err := execute(t, "whoami", "--api", "/api")
	require.Error(t, err)
}
