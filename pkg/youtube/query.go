package youtube

import (
	"net/url"
	"strconv"
	"strings"
)

// QueryParams represents query parameters for API requests.
type QueryParams struct {
	// Part lists the resource parts to include in the response.
	Part []string
	// MaxResults caps a single page; the server rejects values above 50.
	MaxResults int
	// PageToken selects a specific page of a collection.
	PageToken string
	// Order sets the sort order of a listing (date, rating, relevance, ...).
	Order string
	// Query is the free-text search term (the "q" parameter).
	Query string
	// ChannelID restricts a listing to one channel.
	ChannelID string
	// PlaylistID restricts playlistItems listings to one playlist.
	PlaylistID string
	// RegionCode restricts results to a region (ISO 3166-1 alpha-2).
	RegionCode string
	// Type restricts search results to resource types (video, channel, playlist).
	Type []string
	// Filters holds any additional parameters. Filters are applied last, so
	// they override the named fields on key collision.
	Filters map[string]string
}

// NewQueryParams creates a new empty QueryParams.
func NewQueryParams() *QueryParams {
	return &QueryParams{}
}

// WithPart sets the part selectors.
func (q *QueryParams) WithPart(parts ...string) *QueryParams {
	q.Part = parts

	return q
}

// WithMaxResults sets the per-page size.
func (q *QueryParams) WithMaxResults(n int) *QueryParams {
	q.MaxResults = n

	return q
}

// WithPageToken sets the page cursor.
func (q *QueryParams) WithPageToken(token string) *QueryParams {
	q.PageToken = token

	return q
}

// WithOrder sets the sort order.
func (q *QueryParams) WithOrder(order string) *QueryParams {
	q.Order = order

	return q
}

// WithQuery sets the free-text search term.
func (q *QueryParams) WithQuery(query string) *QueryParams {
	q.Query = query

	return q
}

// WithChannelID restricts the request to one channel.
func (q *QueryParams) WithChannelID(id string) *QueryParams {
	q.ChannelID = id

	return q
}

// WithPlaylistID restricts the request to one playlist.
func (q *QueryParams) WithPlaylistID(id string) *QueryParams {
	q.PlaylistID = id

	return q
}

// WithRegionCode restricts the request to a region.
func (q *QueryParams) WithRegionCode(code string) *QueryParams {
	q.RegionCode = code

	return q
}

// WithType restricts search results to resource types.
func (q *QueryParams) WithType(types ...string) *QueryParams {
	q.Type = types

	return q
}

// WithFilter adds an arbitrary query parameter.
func (q *QueryParams) WithFilter(key, value string) *QueryParams {
	if q.Filters == nil {
		q.Filters = make(map[string]string)
	}

	q.Filters[key] = value

	return q
}

// ToValues converts QueryParams to url.Values. Nil receivers convert to an
// empty set. Precedence within one QueryParams: Filters override named
// fields.
func (q *QueryParams) ToValues() url.Values {
	values := url.Values{}
	if q == nil {
		return values
	}

	if len(q.Part) > 0 {
		values.Set("part", strings.Join(q.Part, ","))
	}

	if q.MaxResults > 0 {
		values.Set("maxResults", strconv.Itoa(q.MaxResults))
	}

	if q.PageToken != "" {
		values.Set("pageToken", q.PageToken)
	}

	if q.Order != "" {
		values.Set("order", q.Order)
	}

	if q.Query != "" {
		values.Set("q", q.Query)
	}

	if q.ChannelID != "" {
		values.Set("channelId", q.ChannelID)
	}

	if q.PlaylistID != "" {
		values.Set("playlistId", q.PlaylistID)
	}

	if q.RegionCode != "" {
		values.Set("regionCode", q.RegionCode)
	}

	if len(q.Type) > 0 {
		values.Set("type", strings.Join(q.Type, ","))
	}

	for key, value := range q.Filters {
		values.Set(key, value)
	}

	return values
}

// CloneValues returns an independent copy of v.
func CloneValues(v url.Values) url.Values {
	clone := make(url.Values, len(v))
	for key, vals := range v {
		clone[key] = append([]string(nil), vals...)
	}

	return clone
}

// MergeValues returns the union of base and overlay without mutating either.
// Overlay wins on key collision (last write wins), matching the layering
// order caller > derived > default used throughout the client.
func MergeValues(base, overlay url.Values) url.Values {
	merged := CloneValues(base)
	for key, vals := range overlay {
		merged[key] = append([]string(nil), vals...)
	}

	return merged
}
