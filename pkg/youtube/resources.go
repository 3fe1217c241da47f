package youtube

import "time"

// Video represents a YouTube video.
type Video struct {
	Resource

	Snippet        *VideoSnippet        `json:"snippet,omitempty"        yaml:"snippet,omitempty"`
	ContentDetails *VideoContentDetails `json:"contentDetails,omitempty" yaml:"contentDetails,omitempty"`
	Statistics     *VideoStatistics     `json:"statistics,omitempty"     yaml:"statistics,omitempty"`
	Status         *VideoStatus         `json:"status,omitempty"         yaml:"status,omitempty"`
}

// VideoSnippet holds the descriptive fields of a video.
type VideoSnippet struct {
	PublishedAt          time.Time  `json:"publishedAt"                    yaml:"publishedAt"`
	ChannelID            string     `json:"channelId"                      yaml:"channelId"`
	Title                string     `json:"title"                          yaml:"title"`
	Description          string     `json:"description"                    yaml:"description"`
	Thumbnails           Thumbnails `json:"thumbnails,omitempty"           yaml:"thumbnails,omitempty"`
	ChannelTitle         string     `json:"channelTitle"                   yaml:"channelTitle"`
	Tags                 []string   `json:"tags,omitempty"                 yaml:"tags,omitempty"`
	CategoryID           string     `json:"categoryId,omitempty"           yaml:"categoryId,omitempty"`
	LiveBroadcastContent string     `json:"liveBroadcastContent,omitempty" yaml:"liveBroadcastContent,omitempty"`
	DefaultLanguage      string     `json:"defaultLanguage,omitempty"      yaml:"defaultLanguage,omitempty"`
}

// VideoContentDetails holds technical metadata of a video.
type VideoContentDetails struct {
	Duration        string `json:"duration"                  yaml:"duration"`
	Dimension       string `json:"dimension,omitempty"       yaml:"dimension,omitempty"`
	Definition      string `json:"definition,omitempty"      yaml:"definition,omitempty"`
	Caption         string `json:"caption,omitempty"         yaml:"caption,omitempty"`
	LicensedContent bool   `json:"licensedContent,omitempty" yaml:"licensedContent,omitempty"`
}

// VideoStatistics holds view and engagement counters. The API returns the
// counters as decimal strings, not numbers.
type VideoStatistics struct {
	ViewCount     string `json:"viewCount,omitempty"     yaml:"viewCount,omitempty"`
	LikeCount     string `json:"likeCount,omitempty"     yaml:"likeCount,omitempty"`
	FavoriteCount string `json:"favoriteCount,omitempty" yaml:"favoriteCount,omitempty"`
	CommentCount  string `json:"commentCount,omitempty"  yaml:"commentCount,omitempty"`
}

// VideoStatus holds upload and privacy state.
type VideoStatus struct {
	UploadStatus  string `json:"uploadStatus,omitempty"  yaml:"uploadStatus,omitempty"`
	PrivacyStatus string `json:"privacyStatus,omitempty" yaml:"privacyStatus,omitempty"`
	License       string `json:"license,omitempty"       yaml:"license,omitempty"`
	Embeddable    bool   `json:"embeddable,omitempty"    yaml:"embeddable,omitempty"`
}

// Channel represents a YouTube channel.
type Channel struct {
	Resource

	Snippet        *ChannelSnippet        `json:"snippet,omitempty"        yaml:"snippet,omitempty"`
	ContentDetails *ChannelContentDetails `json:"contentDetails,omitempty" yaml:"contentDetails,omitempty"`
	Statistics     *ChannelStatistics     `json:"statistics,omitempty"     yaml:"statistics,omitempty"`
}

// ChannelSnippet holds the descriptive fields of a channel.
type ChannelSnippet struct {
	Title       string     `json:"title"                yaml:"title"`
	Description string     `json:"description"          yaml:"description"`
	CustomURL   string     `json:"customUrl,omitempty"  yaml:"customUrl,omitempty"`
	PublishedAt time.Time  `json:"publishedAt"          yaml:"publishedAt"`
	Thumbnails  Thumbnails `json:"thumbnails,omitempty" yaml:"thumbnails,omitempty"`
	Country     string     `json:"country,omitempty"    yaml:"country,omitempty"`
}

// ChannelContentDetails holds the channel's system playlists.
type ChannelContentDetails struct {
	RelatedPlaylists RelatedPlaylists `json:"relatedPlaylists" yaml:"relatedPlaylists"`
}

// RelatedPlaylists names the auto-generated playlists of a channel.
type RelatedPlaylists struct {
	Uploads string `json:"uploads"         yaml:"uploads"`
	Likes   string `json:"likes,omitempty" yaml:"likes,omitempty"`
}

// ChannelStatistics holds channel counters, as decimal strings.
type ChannelStatistics struct {
	ViewCount             string `json:"viewCount,omitempty"       yaml:"viewCount,omitempty"`
	SubscriberCount       string `json:"subscriberCount,omitempty" yaml:"subscriberCount,omitempty"`
	HiddenSubscriberCount bool   `json:"hiddenSubscriberCount"     yaml:"hiddenSubscriberCount"`
	VideoCount            string `json:"videoCount,omitempty"      yaml:"videoCount,omitempty"`
}

// Playlist represents a YouTube playlist.
type Playlist struct {
	Resource

	Snippet        *PlaylistSnippet        `json:"snippet,omitempty"        yaml:"snippet,omitempty"`
	ContentDetails *PlaylistContentDetails `json:"contentDetails,omitempty" yaml:"contentDetails,omitempty"`
	Status         *PlaylistStatus         `json:"status,omitempty"         yaml:"status,omitempty"`
}

// PlaylistSnippet holds the descriptive fields of a playlist.
type PlaylistSnippet struct {
	PublishedAt  time.Time  `json:"publishedAt"          yaml:"publishedAt"`
	ChannelID    string     `json:"channelId"            yaml:"channelId"`
	Title        string     `json:"title"                yaml:"title"`
	Description  string     `json:"description"          yaml:"description"`
	Thumbnails   Thumbnails `json:"thumbnails,omitempty" yaml:"thumbnails,omitempty"`
	ChannelTitle string     `json:"channelTitle"         yaml:"channelTitle"`
}

// PlaylistContentDetails holds the playlist size.
type PlaylistContentDetails struct {
	ItemCount int `json:"itemCount" yaml:"itemCount"`
}

// PlaylistStatus holds the playlist privacy state.
type PlaylistStatus struct {
	PrivacyStatus string `json:"privacyStatus" yaml:"privacyStatus"`
}

// PlaylistItem represents one entry of a playlist.
type PlaylistItem struct {
	Resource

	Snippet        *PlaylistItemSnippet        `json:"snippet,omitempty"        yaml:"snippet,omitempty"`
	ContentDetails *PlaylistItemContentDetails `json:"contentDetails,omitempty" yaml:"contentDetails,omitempty"`
}

// PlaylistItemSnippet holds the descriptive fields of a playlist entry.
type PlaylistItemSnippet struct {
	PublishedAt  time.Time  `json:"publishedAt"          yaml:"publishedAt"`
	ChannelID    string     `json:"channelId"            yaml:"channelId"`
	Title        string     `json:"title"                yaml:"title"`
	Description  string     `json:"description"          yaml:"description"`
	Thumbnails   Thumbnails `json:"thumbnails,omitempty" yaml:"thumbnails,omitempty"`
	ChannelTitle string     `json:"channelTitle"         yaml:"channelTitle"`
	PlaylistID   string     `json:"playlistId"           yaml:"playlistId"`
	Position     int        `json:"position"             yaml:"position"`
	ResourceID   ResourceID `json:"resourceId"           yaml:"resourceId"`
}

// PlaylistItemContentDetails identifies the underlying video.
type PlaylistItemContentDetails struct {
	VideoID          string     `json:"videoId"                    yaml:"videoId"`
	VideoPublishedAt *time.Time `json:"videoPublishedAt,omitempty" yaml:"videoPublishedAt,omitempty"`
}

// SearchResult represents one match of a search listing. Unlike other
// resources its ID is a compound object because a search can match videos,
// channels, and playlists in one result set.
type SearchResult struct {
	Kind    string         `json:"kind"              yaml:"kind"`
	Etag    string         `json:"etag"              yaml:"etag"`
	ID      ResourceID     `json:"id"                yaml:"id"`
	Snippet *SearchSnippet `json:"snippet,omitempty" yaml:"snippet,omitempty"`
}

// SearchSnippet holds the descriptive fields of a search match.
type SearchSnippet struct {
	PublishedAt          time.Time  `json:"publishedAt"                    yaml:"publishedAt"`
	ChannelID            string     `json:"channelId"                      yaml:"channelId"`
	Title                string     `json:"title"                          yaml:"title"`
	Description          string     `json:"description"                    yaml:"description"`
	Thumbnails           Thumbnails `json:"thumbnails,omitempty"           yaml:"thumbnails,omitempty"`
	ChannelTitle         string     `json:"channelTitle"                   yaml:"channelTitle"`
	LiveBroadcastContent string     `json:"liveBroadcastContent,omitempty" yaml:"liveBroadcastContent,omitempty"`
}

// VideoList represents a collection of Video resources.
type VideoList = ListResponse[Video]

// ChannelList represents a collection of Channel resources.
type ChannelList = ListResponse[Channel]

// PlaylistList represents a collection of Playlist resources.
type PlaylistList = ListResponse[Playlist]

// PlaylistItemList represents a collection of PlaylistItem resources.
type PlaylistItemList = ListResponse[PlaylistItem]

// SearchResultList represents a collection of SearchResult resources.
type SearchResultList = ListResponse[SearchResult]
