package youtube

import "sort"

// ResourceDescriptor maps a resource type name to its endpoint path and the
// part selectors a lookup needs by default. The table is static
// configuration: loaded once, read-only for the process lifetime.
type ResourceDescriptor struct {
	// Kind is the API's kind tag for a single item of this type.
	Kind string
	// Path is the endpoint path relative to the API base URL.
	Path string
	// Parts are the default part selectors merged into every request for
	// this type. Caller-supplied part values override them.
	Parts []string
}

var resourceTable = map[string]ResourceDescriptor{
	"videos": {
		Kind:  "youtube#video",
		Path:  "/videos",
		Parts: []string{"snippet", "contentDetails", "statistics"},
	},
	"channels": {
		Kind:  "youtube#channel",
		Path:  "/channels",
		Parts: []string{"snippet", "contentDetails", "statistics"},
	},
	"playlists": {
		Kind:  "youtube#playlist",
		Path:  "/playlists",
		Parts: []string{"snippet", "contentDetails"},
	},
	"playlistItems": {
		Kind:  "youtube#playlistItem",
		Path:  "/playlistItems",
		Parts: []string{"snippet", "contentDetails"},
	},
	"search": {
		Kind:  "youtube#searchResult",
		Path:  "/search",
		Parts: []string{"snippet"},
	},
	"comments": {
		Kind:  "youtube#comment",
		Path:  "/comments",
		Parts: []string{"snippet"},
	},
	"commentThreads": {
		Kind:  "youtube#commentThread",
		Path:  "/commentThreads",
		Parts: []string{"snippet"},
	},
	"subscriptions": {
		Kind:  "youtube#subscription",
		Path:  "/subscriptions",
		Parts: []string{"snippet", "contentDetails"},
	},
	"activities": {
		Kind:  "youtube#activity",
		Path:  "/activities",
		Parts: []string{"snippet", "contentDetails"},
	},
	"i18nRegions": {
		Kind:  "youtube#i18nRegion",
		Path:  "/i18nRegions",
		Parts: []string{"snippet"},
	},
	"videoCategories": {
		Kind:  "youtube#videoCategory",
		Path:  "/videoCategories",
		Parts: []string{"snippet"},
	},
}

// LookupResource returns the descriptor for a resource type name.
func LookupResource(name string) (ResourceDescriptor, bool) {
	desc, ok := resourceTable[name]

	return desc, ok
}

// ResourceTypes returns the known resource type names, sorted.
func ResourceTypes() []string {
	names := make([]string, 0, len(resourceTable))
	for name := range resourceTable {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}
