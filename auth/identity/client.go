package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/viant/afs/url"
	"golang.org/x/oauth2"
)

const (
	// DefaultMePath is the "who am I" endpoint
	DefaultMePath = "/api/auth/me"
	// DefaultLogoutPath is the session termination endpoint
	DefaultLogoutPath = "/api/auth/logout"
	// DefaultLoginPath is the credential exchange endpoint
	DefaultLoginPath = "/api/auth/login"

	defaultTimeout = 30 * time.Second
)

// Paths defines identity service endpoints, relative to the base URL
type Paths struct {
	Me     string
	Logout string
	Login  string
}

// Client talks to the identity service
type Client struct {
	baseURL   string
	paths     Paths
	transport http.RoundTripper
	timeout   time.Duration
}

// Credentials represents login request
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResult represents login response
type LoginResult struct {
	Token string `json:"token"`
	User  User   `json:"user,omitempty"`
}

type meResponse struct {
	User User `json:"user"`
}

// Me returns the user owning token
func (c *Client) Me(ctx context.Context, token string) (User, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint(c.paths.Me), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	resp, err := c.do(req, token)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if err = checkStatus(req, resp); err != nil {
		return nil, err
	}
	var body meResponse
	if err = json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if body.User == nil {
		return nil, fmt.Errorf("%w: missing user", ErrMalformedResponse)
	}
	return body.User, nil
}

// Logout terminates the remote session bound to token
func (c *Client) Logout(ctx context.Context, token string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint(c.paths.Logout), bytes.NewReader([]byte("{}")))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := c.do(req, token)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)
	return checkStatus(req, resp)
}

// Login exchanges credentials for a bearer token
func (c *Client) Login(ctx context.Context, credentials *Credentials) (*LoginResult, error) {
	data, err := json.Marshal(credentials)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint(c.paths.Login), bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := c.httpClient(nil).Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if err = checkStatus(req, resp); err != nil {
		return nil, err
	}
	result := &LoginResult{}
	if err = json.NewDecoder(resp.Body).Decode(result); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if result.Token == "" {
		return nil, fmt.Errorf("%w: missing token", ErrMalformedResponse)
	}
	return result, nil
}

func (c *Client) do(req *http.Request, token string) (*http.Response, error) {
	if token == "" {
		return nil, ErrMissingToken
	}
	source := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token, TokenType: "Bearer"})
	return c.httpClient(source).Do(req)
}

func (c *Client) httpClient(source oauth2.TokenSource) *http.Client {
	transport := c.transport
	if source != nil {
		transport = &oauth2.Transport{Source: source, Base: c.transport}
	}
	return &http.Client{Transport: transport, Timeout: c.timeout}
}

func (c *Client) endpoint(path string) string {
	return url.Join(c.baseURL, strings.TrimPrefix(path, "/"))
}

func checkStatus(req *http.Request, resp *http.Response) error {
	switch resp.StatusCode {
	case http.StatusOK, http.StatusNoContent:
		return nil
	case http.StatusUnauthorized:
		return ErrUnauthorized
	}
	return &StatusError{Method: req.Method, URL: req.URL.String(), StatusCode: resp.StatusCode}
}

// New creates an identity service client
func New(baseURL string, options ...Option) *Client {
	ret := &Client{
		baseURL:   baseURL,
		transport: http.DefaultTransport,
		timeout:   defaultTimeout,
		paths: Paths{
			Me:     DefaultMePath,
			Logout: DefaultLogoutPath,
			Login:  DefaultLoginPath,
		},
	}
	for _, opt := range options {
		opt(ret)
	}
	return ret
}
