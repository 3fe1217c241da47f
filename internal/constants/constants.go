package constants

import "time"

// API defaults.
const (
	// DefaultAPIEndpoint is the public YouTube Data API v3 base URL.
	DefaultAPIEndpoint = "https://www.googleapis.com/youtube/v3"

	// DefaultUserAgent is sent when the caller does not override it.
	DefaultUserAgent = "ytapi-go"

	// APIKeyParam is the query parameter carrying the API credential.
	APIKeyParam = "key"
)

// Pagination limits.
const (
	// MaxPageSize is the hard protocol ceiling for maxResults. The API
	// rejects larger values, so requests are always clamped to it.
	MaxPageSize = 50

	// DefaultPageSize is used by CLI listings when no count is given.
	DefaultPageSize = 25
)

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750

	// ConfigFilePerm is the permission for configuration files.
	ConfigFilePerm = 0600
)

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout is the default timeout for HTTP requests.
	DefaultHTTPTimeout = 30 * time.Second

	// ShortHTTPTimeout is used for quick operations.
	ShortHTTPTimeout = 10 * time.Second
)

// Retry limits. Retries are disabled unless explicitly configured.
const (
	// DefaultRetryWaitMin is the minimum wait between configured retries.
	DefaultRetryWaitMin = 1 * time.Second

	// DefaultRetryWaitMax is the maximum wait between configured retries.
	DefaultRetryWaitMax = 10 * time.Second
)
