package youtube_test

import (
	"net/url"
	"testing"

	"github.com/mediakit-io/ytapi/pkg/youtube"
	"github.com/stretchr/testify/assert"
)

//nolint:funlen // Test functions can be longer for detailed testing
func TestQueryParams_ToValues(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		params   *youtube.QueryParams
		expected url.Values
	}{
		{
			name:     "empty params",
			params:   youtube.NewQueryParams(),
			expected: url.Values{},
		},
		{
			name:     "nil params",
			params:   nil,
			expected: url.Values{},
		},
		{
			name: "with pagination",
			params: &youtube.QueryParams{
				MaxResults: 25,
				PageToken:  "CAUQAA",
			},
			expected: url.Values{
				"maxResults": []string{"25"},
				"pageToken":  []string{"CAUQAA"},
			},
		},
		{
			name: "with parts",
			params: &youtube.QueryParams{
				Part: []string{"snippet", "statistics"},
			},
			expected: url.Values{
				"part": []string{"snippet,statistics"},
			},
		},
		{
			name: "with search fields",
			params: &youtube.QueryParams{
				Query:      "golang generics",
				Order:      "date",
				Type:       []string{"video", "playlist"},
				RegionCode: "DE",
			},
			expected: url.Values{
				"q":          []string{"golang generics"},
				"order":      []string{"date"},
				"type":       []string{"video,playlist"},
				"regionCode": []string{"DE"},
			},
		},
		{
			name: "with scoping fields",
			params: &youtube.QueryParams{
				ChannelID:  "UC123",
				PlaylistID: "PL456",
			},
			expected: url.Values{
				"channelId":  []string{"UC123"},
				"playlistId": []string{"PL456"},
			},
		},
		{
			name: "filters override named fields",
			params: &youtube.QueryParams{
				Order: "date",
				Filters: map[string]string{
					"order":           "viewCount",
					"videoDefinition": "high",
				},
			},
			expected: url.Values{
				"order":           []string{"viewCount"},
				"videoDefinition": []string{"high"},
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			result := tt.params.ToValues()
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestQueryParams_Builders(t *testing.T) {
	t.Parallel()

	params := youtube.NewQueryParams().
		WithPart("snippet", "contentDetails").
		WithMaxResults(10).
		WithPageToken("tok").
		WithOrder("rating").
		WithQuery("cats").
		WithChannelID("UC1").
		WithPlaylistID("PL1").
		WithRegionCode("US").
		WithType("video").
		WithFilter("safeSearch", "strict")

	values := params.ToValues()

	assert.Equal(t, "snippet,contentDetails", values.Get("part"))
	assert.Equal(t, "10", values.Get("maxResults"))
	assert.Equal(t, "tok", values.Get("pageToken"))
	assert.Equal(t, "rating", values.Get("order"))
	assert.Equal(t, "cats", values.Get("q"))
	assert.Equal(t, "UC1", values.Get("channelId"))
	assert.Equal(t, "PL1", values.Get("playlistId"))
	assert.Equal(t, "US", values.Get("regionCode"))
	assert.Equal(t, "video", values.Get("type"))
	assert.Equal(t, "strict", values.Get("safeSearch"))
}

func TestQueryParams_InsertionOrderDoesNotMatter(t *testing.T) {
	t.Parallel()

	first := youtube.NewQueryParams().
		WithQuery("dogs").
		WithOrder("date").
		WithRegionCode("GB").
		ToValues()

	second := youtube.NewQueryParams().
		WithRegionCode("GB").
		WithOrder("date").
		WithQuery("dogs").
		ToValues()

	// The logical parameter sets are equal regardless of build order, and
	// the encoded form is canonical (sorted by key).
	assert.Equal(t, first, second)
	assert.Equal(t, first.Encode(), second.Encode())
}

func TestMergeValues(t *testing.T) {
	t.Parallel()

	base := url.Values{}
	base.Set("part", "snippet")
	base.Set("maxResults", "50")

	overlay := url.Values{}
	overlay.Set("part", "snippet,statistics")
	overlay.Set("id", "abc")

	merged := youtube.MergeValues(base, overlay)

	assert.Equal(t, "snippet,statistics", merged.Get("part"))
	assert.Equal(t, "50", merged.Get("maxResults"))
	assert.Equal(t, "abc", merged.Get("id"))

	// Neither input is mutated.
	assert.Equal(t, "snippet", base.Get("part"))
	assert.Empty(t, base.Get("id"))
	assert.Empty(t, overlay.Get("maxResults"))
}

func TestCloneValues_Independent(t *testing.T) {
	t.Parallel()

	original := url.Values{}
	original.Set("part", "snippet")

	clone := youtube.CloneValues(original)
	clone.Set("part", "statistics")
	clone.Set("id", "xyz")

	assert.Equal(t, "snippet", original.Get("part"))
	assert.Empty(t, original.Get("id"))
}
