package youtube

// Resource is the base structure shared by all API resources.
type Resource struct {
	Kind string `json:"kind" yaml:"kind"`
	Etag string `json:"etag" yaml:"etag"`
	ID   string `json:"id"   yaml:"id"`
}

// PageInfo carries the server's view of a collection's size.
type PageInfo struct {
	TotalResults   int `json:"totalResults"   yaml:"totalResults"`
	ResultsPerPage int `json:"resultsPerPage" yaml:"resultsPerPage"`
}

// ListResponse is the envelope wrapping every collection response. Items
// preserve server order. NextPageToken is empty on the final page.
type ListResponse[T any] struct {
	Kind          string   `json:"kind"                    yaml:"kind"`
	Etag          string   `json:"etag"                    yaml:"etag"`
	NextPageToken string   `json:"nextPageToken,omitempty" yaml:"nextPageToken,omitempty"`
	PrevPageToken string   `json:"prevPageToken,omitempty" yaml:"prevPageToken,omitempty"`
	RegionCode    string   `json:"regionCode,omitempty"    yaml:"regionCode,omitempty"`
	PageInfo      PageInfo `json:"pageInfo"                yaml:"pageInfo"`
	Items         []T      `json:"items"                   yaml:"items"`
}

// Thumbnail is a single image variant of a resource.
type Thumbnail struct {
	URL    string `json:"url"              yaml:"url"`
	Width  int    `json:"width,omitempty"  yaml:"width,omitempty"`
	Height int    `json:"height,omitempty" yaml:"height,omitempty"`
}

// Thumbnails maps a size name (default, medium, high, standard, maxres) to
// its image variant.
type Thumbnails map[string]Thumbnail

// ResourceID identifies a resource of varying kind, as used by search
// results and playlist item snippets.
type ResourceID struct {
	Kind       string `json:"kind"                 yaml:"kind"`
	VideoID    string `json:"videoId,omitempty"    yaml:"videoId,omitempty"`
	ChannelID  string `json:"channelId,omitempty"  yaml:"channelId,omitempty"`
	PlaylistID string `json:"playlistId,omitempty" yaml:"playlistId,omitempty"`
}
