package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/nexuscare/nexuscare/internal/logger"
	"github.com/nexuscare/nexuscare/internal/storage"
)

// Domain errors. All of these are recovered locally by callers and shown as
// user-facing messages, never propagated to a global handler.
var (
	ErrIdentityConflict        = errors.New("identity clash: email already registered")
	ErrInvalidCredentials      = errors.New("invalid credentials")
	ErrIdentityNotFound        = errors.New("identity not found")
	ErrSecurityChallengeFailed = errors.New("security challenge failed")
	ErrNotFound                = errors.New("record not found")
	ErrValidation              = errors.New("invalid request payload")
)

// Client performs domain operations against the REST API, degrading to the
// local Record Store when the API is unreachable. A call either fully
// resolves via the network or fully resolves via the fallback; transport
// failures are never surfaced to the caller.
type Client struct {
	baseURL string
	httpc   *http.Client
	store   *storage.Store
}

// New creates a client for the API at baseURL (e.g.
// "http://localhost:5000/api") with store as the fallback database.
// A nil httpc defaults to http.DefaultClient.
func New(baseURL string, httpc *http.Client, store *storage.Store) *Client {
	if httpc == nil {
		httpc = http.DefaultClient
	}
	return &Client{baseURL: baseURL, httpc: httpc, store: store}
}

// errRemote marks any remote failure: transport error, non-2xx status or an
// undecodable body. It triggers the fallback path and is never returned.
var errRemote = errors.New("remote call failed")

// do performs one JSON round trip. body may be nil; out may be nil when the
// response body is irrelevant. Any failure collapses into errRemote.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return fmt.Errorf("%w: %v", errRemote, err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, &buf)
	if err != nil {
		return fmt.Errorf("%w: %v", errRemote, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", errRemote, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%w: status %d", errRemote, resp.StatusCode)
	}
	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("%w: %v", errRemote, err)
		}
	}
	return nil
}

// fallback logs the remote failure and signals the caller to run the local
// path. The failure itself is swallowed on purpose: offline operation is a
// mode, not an error.
func (c *Client) fallback(op string, err error) {
	logger.Log.Infow("remote call failed, using local store", "op", op, "error", err)
}

// CheckStatus probes the API liveness endpoint. Transport failure reports
// live so the caller proceeds in local-only mode.
func (c *Client) CheckStatus(ctx context.Context) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/status", nil)
	if err != nil {
		return true
	}
	resp, err := c.httpc.Do(req)
	if err != nil {
		return true
	}
	defer resp.Body.Close()
	return resp.StatusCode >= 200 && resp.StatusCode < 300
}
