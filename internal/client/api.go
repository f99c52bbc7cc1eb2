// Package client implements the client-side deletion controller: the
// two-step confirmation gate, the call to the deletion authority, and the
// local teardown that follows a successful deletion.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	derrors "github.com/kith-app/kith/pkg/domain-errors"
)

// API is the HTTP client for the kith server.
type API struct {
	baseURL string
	client  *http.Client
}

// NewAPI constructs an API client for the server at baseURL.
func NewAPI(baseURL string) *API {
	return &API{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 90 * time.Second},
	}
}

type deleteResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// DeleteAccount calls the deletion authority. No identifier is sent: the
// server derives the acting identity from the bearer credential.
func (a *API) DeleteAccount(ctx context.Context, bearer string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.baseURL+"/delete-account", nil)
	if err != nil {
		return derrors.Wrap(err, derrors.CodeInternal, "build deletion request")
	}
	req.Header.Set("Authorization", "Bearer "+bearer)

	resp, err := a.client.Do(req)
	if err != nil {
		return derrors.Wrap(err, derrors.CodeInternal, "deletion request failed")
	}
	defer resp.Body.Close()

	var body deleteResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return derrors.Wrap(err, derrors.CodeInternal, "decode deletion response")
	}

	switch {
	case resp.StatusCode == http.StatusOK && body.Success:
		return nil
	case resp.StatusCode == http.StatusUnauthorized:
		return derrors.New(derrors.CodeUnauthorized, body.Error)
	default:
		msg := body.Error
		if msg == "" {
			msg = fmt.Sprintf("deletion failed with status %d", resp.StatusCode)
		}
		return derrors.New(derrors.CodeInternal, msg)
	}
}
