package supabase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

// Select runs GET /rest/v1/{table}?{query} and decodes the result rows into
// dest. When bearer is set it is forwarded so row-level security applies to
// the calling user; otherwise the anon key is used.
func (c *Client) Select(ctx context.Context, table string, query url.Values, bearer string, dest any) error {
	reqURL := fmt.Sprintf("%s/rest/v1/%s", c.baseURL, table)
	if encoded := query.Encode(); encoded != "" {
		reqURL += "?" + encoded
	}

	return c.doRest(ctx, http.MethodGet, reqURL, bearer, nil, nil, dest)
}

// Insert runs POST /rest/v1/{table} with the given row payload.
func (c *Client) Insert(ctx context.Context, table string, row any, bearer string) error {
	reqURL := fmt.Sprintf("%s/rest/v1/%s", c.baseURL, table)

	body, err := json.Marshal(row)
	if err != nil {
		return fmt.Errorf("failed to marshal insert payload: %w", err)
	}

	headers := map[string]string{"Prefer": "return=minimal"}
	return c.doRest(ctx, http.MethodPost, reqURL, bearer, bytes.NewBuffer(body), headers, nil)
}

// Update runs PATCH /rest/v1/{table}?{filter} with the given changes.
func (c *Client) Update(ctx context.Context, table string, filter url.Values, changes any, bearer string) error {
	reqURL := fmt.Sprintf("%s/rest/v1/%s", c.baseURL, table)
	if encoded := filter.Encode(); encoded != "" {
		reqURL += "?" + encoded
	}

	body, err := json.Marshal(changes)
	if err != nil {
		return fmt.Errorf("failed to marshal update payload: %w", err)
	}

	headers := map[string]string{"Prefer": "return=minimal"}
	return c.doRest(ctx, http.MethodPatch, reqURL, bearer, bytes.NewBuffer(body), headers, nil)
}

// doRest performs a REST API call. A non-2xx status is returned as *APIError
// with the PostgREST error message (the code, e.g. 23505 for unique
// violations, is folded into the message so callers can match on it).
func (c *Client) doRest(ctx context.Context, method, reqURL, bearer string, body io.Reader, headers map[string]string, dest any) error {
	httpReq, err := http.NewRequestWithContext(ctx, method, reqURL, body)
	if err != nil {
		return fmt.Errorf("failed to build rest request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("apikey", c.anonKey)
	if bearer == "" {
		bearer = c.anonKey
	}
	httpReq.Header.Set("Authorization", fmt.Sprintf("Bearer %s", bearer))
	for k, v := range headers {
		httpReq.Header.Set(k, v)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("failed to call supabase rest API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(resp.Body)
		var pErr postgrestError
		if json.Unmarshal(raw, &pErr) == nil && pErr.Message != "" {
			msg := pErr.Message
			if pErr.Code != "" {
				msg = pErr.Code + ": " + msg
			}
			return &APIError{StatusCode: resp.StatusCode, Message: msg}
		}
		return &APIError{StatusCode: resp.StatusCode, Message: string(raw)}
	}

	if dest == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("failed to decode supabase rest response: %w", err)
	}
	return nil
}
