// Package accesssdk is a typed HTTP client for the access service. It
// covers every endpoint: bootstrap, invite issuance and redemption, invite
// management, role changes and the health probes.
//
// Authenticated calls require a bearer token minted by the identity
// provider; pass it to WithToken. The client never mints tokens itself.
package accesssdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Client talks to one access service instance.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client

	token string
}

// NewClient creates a client for the service at baseURL.
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// WithToken returns a copy of the client that authenticates with the given
// bearer token.
func (c *Client) WithToken(token string) *Client {
	dup := *c
	dup.token = token
	return &dup
}

// Bootstrap creates the first, protected super-admin account. It only works
// while no accounts exist and requires the deployment's pre-shared token.
func (c *Client) Bootstrap(ctx context.Context, req BootstrapRequest) (*AccountResponse, error) {
	var resp AccountResponse
	if err := c.doJSON(ctx, http.MethodPost, "/v1/bootstrap", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// IssueInvite mints a new invite code. Admin only.
func (c *Client) IssueInvite(ctx context.Context, req IssueInviteRequest) (*InviteResponse, error) {
	var resp InviteResponse
	if err := c.doJSON(ctx, http.MethodPost, "/v1/invites", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// RedeemInvite consumes an invite code and provisions the account. This is
// the one unauthenticated write; it is form-encoded on the wire.
func (c *Client) RedeemInvite(ctx context.Context, req RedeemInviteRequest) (*AccountResponse, error) {
	form := url.Values{}
	form.Set("code", req.Code)
	form.Set("email", req.Email)
	form.Set("password", req.Password)
	if req.DisplayName != "" {
		form.Set("display_name", req.DisplayName)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.BaseURL+"/v1/invites/redeem", strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	var resp AccountResponse
	if err := c.do(httpReq, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// RevokeInvite deactivates an invite by id. Admin only.
func (c *Client) RevokeInvite(ctx context.Context, inviteID string) error {
	return c.doJSON(ctx, http.MethodDelete, "/v1/invites/"+url.PathEscape(inviteID), nil, nil)
}

// ListInvites returns invites, optionally filtered by status or intended
// email. Admin only.
func (c *Client) ListInvites(ctx context.Context, status, intendedEmail string) (*ListInvitesResponse, error) {
	q := url.Values{}
	if status != "" {
		q.Set("status", status)
	}
	if intendedEmail != "" {
		q.Set("intended_email", intendedEmail)
	}

	path := "/v1/invites"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var resp ListInvitesResponse
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Promote grants admin to the target account. Admin only.
func (c *Client) Promote(ctx context.Context, accountID string) error {
	return c.doJSON(ctx, http.MethodPost, "/v1/accounts/"+url.PathEscape(accountID)+"/promote", nil, nil)
}

// Demote revokes admin from the target account. Admin only; fails for
// protected accounts and for the last remaining admin.
func (c *Client) Demote(ctx context.Context, accountID string) error {
	return c.doJSON(ctx, http.MethodPost, "/v1/accounts/"+url.PathEscape(accountID)+"/demote", nil, nil)
}

// Me returns the caller's current role, resolved fresh from storage.
func (c *Client) Me(ctx context.Context) (*RoleResponse, error) {
	var resp RoleResponse
	if err := c.doJSON(ctx, http.MethodGet, "/v1/me/role", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// RoleHistory returns the audit trail of role changes for one account.
// Admin only.
func (c *Client) RoleHistory(ctx context.Context, accountID string) (*RoleHistoryResponse, error) {
	var resp RoleHistoryResponse
	path := "/v1/accounts/" + url.PathEscape(accountID) + "/role-changes"
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Livez checks process liveness.
func (c *Client) Livez(ctx context.Context) (*HealthResponse, error) {
	var resp HealthResponse
	if err := c.doJSON(ctx, http.MethodGet, "/livez", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Readyz checks readiness, including database connectivity.
func (c *Client) Readyz(ctx context.Context) (*HealthResponse, error) {
	var resp HealthResponse
	if err := c.doJSON(ctx, http.MethodGet, "/readyz", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) doJSON(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var apiErr ErrorResponse
		if err := json.NewDecoder(resp.Body).Decode(&apiErr); err != nil || apiErr.Error == "" {
			return &APIError{StatusCode: resp.StatusCode, Code: "unknown_error"}
		}
		return &APIError{
			StatusCode:  resp.StatusCode,
			Code:        apiErr.Error,
			Description: apiErr.ErrorDescription,
		}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
