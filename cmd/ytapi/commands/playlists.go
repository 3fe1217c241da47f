package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mediakit-io/ytapi/internal/constants"
	"github.com/mediakit-io/ytapi/pkg/youtube"
)

// NewPlaylistsCommand creates the playlists command group.
func NewPlaylistsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "playlists",
		Aliases: []string{"playlist"},
		Short:   "Look up playlists",
		Long:    "Fetch playlist metadata, list a channel's playlists, and walk playlist entries",
	}

	cmd.AddCommand(newPlaylistsGetCommand())
	cmd.AddCommand(newPlaylistsListCommand())
	cmd.AddCommand(newPlaylistsItemsCommand())

	return cmd
}

func newPlaylistsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get PLAYLIST_ID",
		Short: "Get playlist details",
		Long:  "Display metadata and the item count of a playlist",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			playlist, err := client.Playlists().Get(context.Background(), args[0], nil)
			if err != nil {
				return fmt.Errorf("getting playlist '%s': %w", args[0], err)
			}

			switch viper.GetString("output") {
			case OutputFormatJSON:
				return renderJSON(playlist)
			case OutputFormatYAML:
				return renderYAML(playlist)
			default:
				renderPlaylistTable(playlist)

				return nil
			}
		},
	}
}

func renderPlaylistTable(playlist *youtube.Playlist) {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Property", "Value")

	_ = table.Append("ID", playlist.ID)

	if playlist.Snippet != nil {
		_ = table.Append("Title", playlist.Snippet.Title)
		_ = table.Append("Channel", playlist.Snippet.ChannelTitle)
		_ = table.Append("Published", playlist.Snippet.PublishedAt.Format("2006-01-02"))
	}

	if playlist.ContentDetails != nil {
		_ = table.Append("Items", fmt.Sprintf("%d", playlist.ContentDetails.ItemCount))
	}

	if playlist.Status != nil {
		_ = table.Append("Privacy", playlist.Status.PrivacyStatus)
	}

	_ = table.Render()
}

// PlaylistsListOptions holds the options for listing a channel's playlists.
type PlaylistsListOptions struct {
	Channel string
	Count   int
}

func newPlaylistsListCommand() *cobra.Command {
	var opts PlaylistsListOptions

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List a channel's playlists",
		Long:  "List the playlists owned by a channel",
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.Channel == "" {
				return ErrChannelIDRequired
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			playlists, err := client.Playlists().ByChannel(context.Background(), opts.Channel, opts.Count, nil)
			if err != nil {
				return fmt.Errorf("listing playlists for channel '%s': %w", opts.Channel, err)
			}

			switch viper.GetString("output") {
			case OutputFormatJSON:
				return renderJSON(playlists)
			case OutputFormatYAML:
				return renderYAML(playlists)
			default:
				renderPlaylistListTable(playlists)

				return nil
			}
		},
	}

	cmd.Flags().StringVar(&opts.Channel, "channel", "", "channel ID")
	cmd.Flags().IntVar(&opts.Count, "count", constants.DefaultPageSize, "number of playlists to fetch")

	return cmd
}

func renderPlaylistListTable(playlists []youtube.Playlist) {
	if len(playlists) == 0 {
		_, _ = os.Stdout.WriteString("No playlists found\n")

		return
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Title", "Items")

	for _, playlist := range playlists {
		title, items := NotAvailable, NotAvailable

		if playlist.Snippet != nil {
			title = truncate(playlist.Snippet.Title, 60)
		}

		if playlist.ContentDetails != nil {
			items = fmt.Sprintf("%d", playlist.ContentDetails.ItemCount)
		}

		_ = table.Append(playlist.ID, title, items)
	}

	_ = table.Render()
}

// PlaylistItemsOptions holds the options for walking playlist entries.
type PlaylistItemsOptions struct {
	Count int
}

func newPlaylistsItemsCommand() *cobra.Command {
	var opts PlaylistItemsOptions

	cmd := &cobra.Command{
		Use:   "items PLAYLIST_ID",
		Short: "List playlist entries",
		Long:  "Walk a playlist's entries in playlist order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			items, err := client.PlaylistItems().List(context.Background(), args[0], opts.Count, nil)
			if err != nil {
				return fmt.Errorf("listing items of playlist '%s': %w", args[0], err)
			}

			switch viper.GetString("output") {
			case OutputFormatJSON:
				return renderJSON(items)
			case OutputFormatYAML:
				return renderYAML(items)
			default:
				renderPlaylistItemsTable(items)

				return nil
			}
		},
	}

	cmd.Flags().IntVar(&opts.Count, "count", constants.DefaultPageSize, "number of entries to fetch")

	return cmd
}

func renderPlaylistItemsTable(items []youtube.PlaylistItem) {
	if len(items) == 0 {
		_, _ = os.Stdout.WriteString("No playlist items found\n")

		return
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Position", "Video ID", "Title")

	for _, item := range items {
		position, videoID, title := NotAvailable, NotAvailable, NotAvailable

		if item.Snippet != nil {
			position = fmt.Sprintf("%d", item.Snippet.Position)
			title = truncate(item.Snippet.Title, 60)
		}

		if item.ContentDetails != nil {
			videoID = item.ContentDetails.VideoID
		}

		_ = table.Append(position, videoID, title)
	}

	_ = table.Render()
}
