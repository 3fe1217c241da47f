package client

import (
	internalhttp "github.com/mediakit-io/ytapi/internal/http"
)

// NewTestClient creates a client against a test server base URL, without a
// credential.
func NewTestClient(baseURL string) *Client {
	httpClient := internalhttp.NewClient(baseURL, nil)

	client := &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
	}

	client.initializeResourceClients()

	return client
}
