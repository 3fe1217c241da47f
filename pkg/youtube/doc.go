// Package youtube provides types, interfaces, and helpers for working with
// the YouTube Data API v3.
//
// # Overview
//
// The package defines the public surface of the client library: typed
// response envelopes, the unified error shape produced by the transport
// layer, the query parameter builder, the bounded pagination collector, and
// the static resource descriptor table that maps resource type names to
// endpoint paths and their required part selectors.
//
// Concrete clients are constructed with the companion package
// github.com/mediakit-io/ytapi/pkg/ytclient:
//
//	client, err := ytclient.New(&youtube.Config{APIKey: "..."})
//	if err != nil {
//		log.Fatal(err)
//	}
//	video, err := client.Videos().Get(ctx, "dQw4w9WgXcQ", nil)
//
// # Pagination
//
// Collection endpoints are cursor based: every page carries an opaque
// nextPageToken and accepts at most 50 items per call. CollectPages walks
// the cursor chain sequentially, accumulating items in server order until
// the requested count is satisfied or the server stops issuing tokens.
// Pass Unlimited to drain every page the server offers.
//
// # Errors
//
// All failures surface as Go errors. Server-reported failures are
// *APIError values carrying the request URL and the decoded error payload
// (or the raw body text when the payload is not JSON). Lookups that
// succeed at the transport level but match nothing yield a
// *ResourceNotFoundError. Reason helpers such as IsNotFound and
// IsQuotaExceeded classify errors without string matching.
package youtube
