package ytclient

import (
	"strings"

	"github.com/mediakit-io/ytapi/internal/client"
	"github.com/mediakit-io/ytapi/internal/constants"
	"github.com/mediakit-io/ytapi/pkg/youtube"
)

// New creates a new YouTube Data API client.
//
// An empty APIEndpoint defaults to the public API; a missing scheme and a
// trailing slash are normalized. The config is not retained.
func New(config *youtube.Config) (youtube.Client, error) {
	if config == nil {
		return nil, youtube.ErrConfigRequired
	}

	cfg := *config
	cfg.APIEndpoint = normalizeEndpoint(cfg.APIEndpoint)

	c, err := client.New(&cfg)
	if err != nil {
		return nil, err
	}

	return c, nil
}

// normalizeEndpoint applies the default endpoint and URL hygiene.
func normalizeEndpoint(endpoint string) string {
	if endpoint == "" {
		return constants.DefaultAPIEndpoint
	}

	endpoint = strings.TrimSuffix(endpoint, "/")
	if !strings.HasPrefix(endpoint, "http://") && !strings.HasPrefix(endpoint, "https://") {
		endpoint = "https://" + endpoint
	}

	return endpoint
}
