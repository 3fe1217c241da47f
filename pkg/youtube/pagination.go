package youtube

import (
	"context"
	"fmt"
	"math"
	"net/url"
	"strconv"
)

// MaxPageSize is the hard protocol ceiling on items per page. Requests never
// exceed it regardless of caller input.
const MaxPageSize = 50

// Unlimited requests every item the server will supply; the walk then stops
// only when the server omits a next-page token.
const Unlimited = math.MaxInt

// PageFetcher retrieves a single page for the given query parameters. It is
// the seam between the pagination collector and the transport: resource
// clients bind it to one endpoint, tests bind it to a synthetic source.
type PageFetcher[T any] func(ctx context.Context, params url.Values) (*ListResponse[T], error)

// CollectPages walks a cursor-based collection sequentially, accumulating up
// to desired items in server order. Each page requests
// min(MaxPageSize, remaining); maxResults and pageToken always override
// caller-supplied values in params.
//
// The walk stops when the server omits a next-page token, or as soon as the
// current page's limit equals the full remaining count. The second condition
// means a walk for exactly N items issues ceil(N/50) calls and never fetches
// a page it cannot use, even when the server reports more pages upstream:
// the contract is "fetch up to N", not "fetch until the server stops".
//
// A failure on any page aborts the whole walk; items accumulated from prior
// pages are discarded.
func CollectPages[T any](ctx context.Context, fetch PageFetcher[T], desired int, params url.Values) ([]T, error) {
	if desired < 1 {
		return nil, fmt.Errorf("%w: requested %d", ErrCountTooSmall, desired)
	}

	var (
		items  []T
		cursor string
	)

	remaining := desired

	for {
		limit := remaining
		if limit > MaxPageSize {
			limit = MaxPageSize
		}

		query := CloneValues(params)
		query.Set("maxResults", strconv.Itoa(limit))

		if cursor != "" {
			query.Set("pageToken", cursor)
		} else {
			query.Del("pageToken")
		}

		page, err := fetch(ctx, query)
		if err != nil {
			return nil, err
		}

		items = append(items, page.Items...)

		if page.NextPageToken == "" || limit == remaining {
			return items, nil
		}

		remaining -= limit
		cursor = page.NextPageToken
	}
}
