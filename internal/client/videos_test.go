package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mediakit-io/ytapi/pkg/youtube"
)

func TestVideosClient_Get(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/videos", r.URL.Path)
		assert.Equal(t, "GET", r.Method)
		assert.Equal(t, "dQw4w9WgXcQ", r.URL.Query().Get("id"))
		assert.Equal(t, "snippet,contentDetails,statistics", r.URL.Query().Get("part"))

		response := youtube.VideoList{
			Kind: "youtube#videoListResponse",
			Items: []youtube.Video{
				{
					Resource: youtube.Resource{Kind: "youtube#video", ID: "dQw4w9WgXcQ"},
					Snippet: &youtube.VideoSnippet{
						Title:        "Test Video",
						ChannelTitle: "Test Channel",
					},
					Statistics: &youtube.VideoStatistics{ViewCount: "1000000"},
				},
			},
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(response)
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	video, err := client.Videos().Get(context.Background(), "dQw4w9WgXcQ", nil)
	require.NoError(t, err)
	assert.Equal(t, "dQw4w9WgXcQ", video.ID)
	assert.Equal(t, "Test Video", video.Snippet.Title)
	assert.Equal(t, "1000000", video.Statistics.ViewCount)
}

func TestVideosClient_Get_PartOverride(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "snippet", r.URL.Query().Get("part"))

		response := youtube.VideoList{
			Kind:  "youtube#videoListResponse",
			Items: []youtube.Video{{Resource: youtube.Resource{ID: "abc"}}},
		}
		_ = json.NewEncoder(w).Encode(response)
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	opts := youtube.NewQueryParams().WithPart("snippet")

	_, err := client.Videos().Get(context.Background(), "abc", opts)
	require.NoError(t, err)
}

func TestVideosClient_Get_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// A missing video is an empty 200 envelope, not an HTTP error.
		response := youtube.VideoList{
			Kind:  "youtube#videoListResponse",
			Items: []youtube.Video{},
		}
		_ = json.NewEncoder(w).Encode(response)
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	video, err := client.Videos().Get(context.Background(), "nope", nil)
	require.Error(t, err)
	assert.Nil(t, video)

	notFound := &youtube.ResourceNotFoundError{}
	require.True(t, errors.As(err, &notFound))
	assert.Equal(t, "youtube#videoListResponse", notFound.Kind)
	assert.Contains(t, err.Error(), "resource youtube#videoListResponse not found")
	assert.Contains(t, notFound.URL, "/videos")
	assert.True(t, youtube.IsNotFound(err))
}

func TestVideosClient_Get_FirstItemWins(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		response := youtube.VideoList{
			Kind: "youtube#videoListResponse",
			Items: []youtube.Video{
				{Resource: youtube.Resource{ID: "first"}},
				{Resource: youtube.Resource{ID: "second"}},
			},
		}
		_ = json.NewEncoder(w).Encode(response)
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	video, err := client.Videos().Get(context.Background(), "first", nil)
	require.NoError(t, err)
	assert.Equal(t, "first", video.ID)
}

func TestVideosClient_MostPopular_Paginates(t *testing.T) {
	var calls int

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++

		assert.Equal(t, "/videos", r.URL.Path)
		assert.Equal(t, "mostPopular", r.URL.Query().Get("chart"))

		response := youtube.VideoList{Kind: "youtube#videoListResponse"}

		switch calls {
		case 1:
			assert.Equal(t, "50", r.URL.Query().Get("maxResults"))
			assert.Empty(t, r.URL.Query().Get("pageToken"))

			for i := 0; i < 50; i++ {
				response.Items = append(response.Items, youtube.Video{Resource: youtube.Resource{ID: "page1"}})
			}

			response.NextPageToken = "second-page"
		default:
			assert.Equal(t, "25", r.URL.Query().Get("maxResults"))
			assert.Equal(t, "second-page", r.URL.Query().Get("pageToken"))

			for i := 0; i < 25; i++ {
				response.Items = append(response.Items, youtube.Video{Resource: youtube.Resource{ID: "page2"}})
			}
		}

		_ = json.NewEncoder(w).Encode(response)
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	videos, err := client.Videos().MostPopular(context.Background(), 75, nil)
	require.NoError(t, err)
	assert.Len(t, videos, 75)
	assert.Equal(t, 2, calls)
	assert.Equal(t, "page1", videos[0].ID)
	assert.Equal(t, "page2", videos[74].ID)
}
