// Package accountsvc provides the HTTP client for the account service, which
// verifies session tokens and resolves the actor behind them.
package accountsvc

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"forwarding/internal/core/domain/model/account"
	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/pkg/errs"
)

// Client implements ports.IdentityVerifier against the account service's
// session verification endpoint.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates an account service client for the given base URL
// (e.g. "http://accounts:8080").
func NewClient(baseURL string) (*Client, error) {
	if baseURL == "" {
		return nil, errs.NewValueIsRequiredError("baseURL")
	}

	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 5 * time.Second,
		},
	}, nil
}

type verifyResponse struct {
	UID   string `json:"uid"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// Verify resolves a bearer session token to the verified actor behind it.
func (c *Client) Verify(ctx context.Context, sessionToken string) (account.Actor, error) {
	if sessionToken == "" {
		return account.Actor{}, errs.NewValueIsRequiredError("sessionToken")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/v1/sessions/me", nil)
	if err != nil {
		return account.Actor{}, err
	}
	req.Header.Set("Authorization", "Bearer "+sessionToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return account.Actor{}, fmt.Errorf("account service request failed: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// fall through to decoding
	case http.StatusUnauthorized, http.StatusForbidden:
		return account.Actor{}, errs.NewPermissionDeniedError("anonymous", "verify session")
	default:
		return account.Actor{}, fmt.Errorf("account service returned status %d", resp.StatusCode)
	}

	var body verifyResponse
	if err = json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return account.Actor{}, fmt.Errorf("account service response is malformed: %w", err)
	}

	uid, err := kernel.UUIDFromString(body.UID)
	if err != nil {
		return account.Actor{}, err
	}
	role, err := account.RoleFromString(body.Role)
	if err != nil {
		return account.Actor{}, err
	}

	return account.NewActor(uid, body.Email, role)
}
