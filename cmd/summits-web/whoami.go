package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/net/publicsuffix"

	"github.com/summitlog/summits-web/internal/adapters/apiclient"
	domainauth "github.com/summitlog/summits-web/internal/domain/auth"
	"github.com/summitlog/summits-web/internal/service"
)

type whoamiOptions struct {
	apiURL  string
	mePath  string
	cookie  string
	session string
	timeout time.Duration
}

func whoamiCmd() *cobra.Command {
	opts := whoamiOptions{}

	cmd := &cobra.Command{
		Use:   "whoami",
		Short: "Ask the API who a session cookie belongs to",
		RunE: func(cmd *cobra.Command, _ []string) error {
			state, err := whoami(cmd, opts)
			if err != nil {
				return err
			}
			return printAuthState(cmd.OutOrStdout(), state)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.apiURL, "api", "http://localhost:5000", "API base URL")
	f.StringVar(&opts.mePath, "me-path", "/api/user/me", "current user endpoint")
	f.StringVar(&opts.cookie, "cookie-name", "session", "session cookie name")
	f.StringVar(&opts.session, "session", "", "session cookie value (anonymous when empty)")
	f.DurationVar(&opts.timeout, "timeout", 10*time.Second, "request timeout")
	return cmd
}

func whoami(cmd *cobra.Command, opts whoamiOptions) (*service.AuthState, error) {
	base, err := url.Parse(opts.apiURL)
	if err != nil {
		return nil, fmt.Errorf("parse api url: %w", err)
	}
	if base.Host == "" {
		return nil, errors.New("api url must be absolute")
	}

	jar, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
	if err != nil {
		return nil, fmt.Errorf("cookie jar: %w", err)
	}
	if opts.session != "" {
		jar.SetCookies(base, []*http.Cookie{{Name: opts.cookie, Value: opts.session, Path: "/"}})
	}

	client, err := apiclient.New(apiclient.Config{
		BaseURL: opts.apiURL,
		MePath:  opts.mePath,
		Client:  &http.Client{Jar: jar, Timeout: opts.timeout},
	})
	if err != nil {
		return nil, err
	}

	// The jar carries the cookie, so the state forwards no session of its own.
	state := service.NewAuthState(service.AuthStateOptions{Source: client})
	state.FetchAuthStatus(cmd.Context())
	return state, nil
}

type whoamiResult struct {
	Initialized   bool             `json:"initialized"`
	Authenticated bool             `json:"authenticated"`
	User          *domainauth.User `json:"user,omitempty"`
}

func printAuthState(out io.Writer, state *service.AuthState) error {
	user := state.User()
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(whoamiResult{
		Initialized:   state.Initialized(),
		Authenticated: user != nil,
		User:          user,
	})
}
