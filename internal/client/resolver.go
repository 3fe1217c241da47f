package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/mediakit-io/ytapi/internal/http"
	"github.com/mediakit-io/ytapi/pkg/youtube"
)

// getResource fetches the first item matching params from the endpoint
// configured for resourceType. The descriptor's default part selectors are
// merged underneath the caller's parameters, so a caller-supplied part
// wins. An empty item list is a not-found failure synthesized locally: the
// server reports missing resources as an empty 200 envelope, not as an HTTP
// error.
func getResource(ctx context.Context, httpClient *http.Client, resourceType string, params url.Values) (json.RawMessage, error) {
	desc, ok := youtube.LookupResource(resourceType)
	if !ok {
		return nil, fmt.Errorf("%w: %q", youtube.ErrUnknownResourceType, resourceType)
	}

	defaults := url.Values{}
	defaults.Set("part", strings.Join(desc.Parts, ","))

	query := youtube.MergeValues(defaults, params)

	resp, err := httpClient.Get(ctx, desc.Path, query)
	if err != nil {
		return nil, fmt.Errorf("getting %s: %w", resourceType, err)
	}

	var envelope youtube.ListResponse[json.RawMessage]

	err = json.Unmarshal(resp.Body, &envelope)
	if err != nil {
		return nil, fmt.Errorf("parsing %s response: %w", resourceType, err)
	}

	if len(envelope.Items) == 0 {
		return nil, &youtube.ResourceNotFoundError{
			Kind: envelope.Kind,
			URL:  requestURL(httpClient.BaseURL(), desc.Path, query),
		}
	}

	// ID-qualified lookups return at most one meaningful match; additional
	// items are ignored.
	return envelope.Items[0], nil
}

// getResourceByID merges id into params (id wins on collision) and
// delegates to getResource.
func getResourceByID(ctx context.Context, httpClient *http.Client, resourceType, id string, params url.Values) (json.RawMessage, error) {
	merged := youtube.CloneValues(params)
	merged.Set("id", id)

	return getResource(ctx, httpClient, resourceType, merged)
}

// getFirstAs is the typed form of getResourceByID used by the convenience
// clients.
func getFirstAs[T any](ctx context.Context, httpClient *http.Client, resourceType, id string, opts *youtube.QueryParams) (*T, error) {
	raw, err := getResourceByID(ctx, httpClient, resourceType, id, opts.ToValues())
	if err != nil {
		return nil, err
	}

	return decodeItem[T](resourceType, raw)
}

// decodeItem unmarshals one raw envelope item into its typed form.
func decodeItem[T any](resourceType string, raw json.RawMessage) (*T, error) {
	var item T

	err := json.Unmarshal(raw, &item)
	if err != nil {
		return nil, fmt.Errorf("parsing %s item: %w", resourceType, err)
	}

	return &item, nil
}

// listPages binds the pagination collector to one endpoint.
func listPages[T any](ctx context.Context, httpClient *http.Client, path string, count int, params url.Values) ([]T, error) {
	fetch := func(ctx context.Context, query url.Values) (*youtube.ListResponse[T], error) {
		resp, err := httpClient.Get(ctx, path, query)
		if err != nil {
			return nil, fmt.Errorf("listing %s: %w", path, err)
		}

		var page youtube.ListResponse[T]

		err = json.Unmarshal(resp.Body, &page)
		if err != nil {
			return nil, fmt.Errorf("parsing %s page: %w", path, err)
		}

		return &page, nil
	}

	return youtube.CollectPages(ctx, fetch, count, params)
}

// withDefaultPart converts opts to url.Values, layering the resource type's
// default part selectors underneath any caller-supplied part.
func withDefaultPart(opts *youtube.QueryParams, resourceType string) url.Values {
	values := opts.ToValues()

	desc, ok := youtube.LookupResource(resourceType)
	if !ok || values.Get("part") != "" {
		return values
	}

	values.Set("part", strings.Join(desc.Parts, ","))

	return values
}

// requestURL reconstructs the URL a request was issued against, without the
// credential, for inclusion in locally synthesized errors.
func requestURL(baseURL, path string, query url.Values) string {
	if len(query) == 0 {
		return baseURL + path
	}

	return baseURL + path + "?" + query.Encode()
}
