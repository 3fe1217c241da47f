package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mediakit-io/ytapi/pkg/youtube"
)

func TestPlaylistsClient_Get(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/playlists", r.URL.Path)
		assert.Equal(t, "PL123", r.URL.Query().Get("id"))
		assert.Equal(t, "snippet,contentDetails", r.URL.Query().Get("part"))

		response := youtube.PlaylistList{
			Kind: "youtube#playlistListResponse",
			Items: []youtube.Playlist{
				{
					Resource:       youtube.Resource{Kind: "youtube#playlist", ID: "PL123"},
					Snippet:        &youtube.PlaylistSnippet{Title: "Favorites"},
					ContentDetails: &youtube.PlaylistContentDetails{ItemCount: 12},
				},
			},
		}
		_ = json.NewEncoder(w).Encode(response)
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	playlist, err := client.Playlists().Get(context.Background(), "PL123", nil)
	require.NoError(t, err)
	assert.Equal(t, "PL123", playlist.ID)
	assert.Equal(t, "Favorites", playlist.Snippet.Title)
	assert.Equal(t, 12, playlist.ContentDetails.ItemCount)
}

func TestPlaylistsClient_ByChannel(t *testing.T) {
	var calls int

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++

		assert.Equal(t, "/playlists", r.URL.Path)
		assert.Equal(t, "UC123", r.URL.Query().Get("channelId"))
		assert.Equal(t, "10", r.URL.Query().Get("maxResults"))

		response := youtube.PlaylistList{Kind: "youtube#playlistListResponse"}
		for i := 0; i < 10; i++ {
			response.Items = append(response.Items, youtube.Playlist{Resource: youtube.Resource{ID: "PL"}})
		}

		_ = json.NewEncoder(w).Encode(response)
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	playlists, err := client.Playlists().ByChannel(context.Background(), "UC123", 10, nil)
	require.NoError(t, err)
	assert.Len(t, playlists, 10)
	assert.Equal(t, 1, calls)
}
