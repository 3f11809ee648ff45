package supabase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// Client is the HTTP wrapper for the Supabase Auth (GoTrue) and REST
// (PostgREST) APIs. Safe for concurrent use.
type Client struct {
	baseURL    string
	anonKey    string
	httpClient *http.Client
}

// NewClient creates a new Supabase client for the given project URL and anon key.
func NewClient(baseURL, anonKey string) *Client {
	return &Client{
		baseURL:    baseURL,
		anonKey:    anonKey,
		httpClient: &http.Client{},
	}
}

// SignInWithPassword exchanges email+password for a session via the
// password grant.
func (c *Client) SignInWithPassword(ctx context.Context, email, password string) (*SignInResponse, error) {
	url := fmt.Sprintf("%s/auth/v1/token?grant_type=password", c.baseURL)

	body, err := json.Marshal(map[string]string{"email": email, "password": password})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal sign-in request: %w", err)
	}

	var result SignInResponse
	if err := c.doAuth(ctx, http.MethodPost, url, "", bytes.NewBuffer(body), &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// SignUp registers a new auth user.
func (c *Client) SignUp(ctx context.Context, req SignUpRequest) (*SignUpResponse, error) {
	url := fmt.Sprintf("%s/auth/v1/signup", c.baseURL)

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal sign-up request: %w", err)
	}

	// Depending on project settings GoTrue returns either {user: {...}} or the
	// bare user object, with session tokens inline when auto-confirm is on;
	// decode all shapes.
	var raw struct {
		AuthUser
		Session
		User *AuthUser `json:"user"`
	}
	if err := c.doAuth(ctx, http.MethodPost, url, "", bytes.NewBuffer(body), &raw); err != nil {
		return nil, err
	}

	result := &SignUpResponse{User: raw.AuthUser}
	if raw.User != nil {
		result.User = *raw.User
	}
	if raw.AccessToken != "" {
		s := raw.Session
		result.Session = &s
	}
	return result, nil
}

// GetUser resolves a bearer access token to its auth user.
func (c *Client) GetUser(ctx context.Context, accessToken string) (*AuthUser, error) {
	url := fmt.Sprintf("%s/auth/v1/user", c.baseURL)

	var user AuthUser
	if err := c.doAuth(ctx, http.MethodGet, url, accessToken, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// SignOut revokes the given access token.
func (c *Client) SignOut(ctx context.Context, accessToken string) error {
	url := fmt.Sprintf("%s/auth/v1/logout", c.baseURL)
	return c.doAuth(ctx, http.MethodPost, url, accessToken, nil, nil)
}

// doAuth performs an Auth API call. A non-2xx status is returned as *APIError
// with the GoTrue error message.
func (c *Client) doAuth(ctx context.Context, method, url, bearer string, body io.Reader, dest any) error {
	httpReq, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return fmt.Errorf("failed to build auth request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("apikey", c.anonKey)
	if bearer != "" {
		httpReq.Header.Set("Authorization", fmt.Sprintf("Bearer %s", bearer))
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("failed to call supabase auth API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(resp.Body)
		var gErr gotrueError
		if json.Unmarshal(raw, &gErr) == nil && gErr.text() != "" {
			return &APIError{StatusCode: resp.StatusCode, Message: gErr.text()}
		}
		return &APIError{StatusCode: resp.StatusCode, Message: string(raw)}
	}

	if dest == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("failed to decode supabase auth response: %w", err)
	}
	return nil
}
