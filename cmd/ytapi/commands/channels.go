package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mediakit-io/ytapi/pkg/youtube"
)

// NewChannelsCommand creates the channels command group.
func NewChannelsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "channels",
		Aliases: []string{"channel"},
		Short:   "Look up channels",
		Long:    "Fetch channel metadata by ID or legacy username",
	}

	cmd.AddCommand(newChannelsGetCommand())

	return cmd
}

func newChannelsGetCommand() *cobra.Command {
	var username string

	cmd := &cobra.Command{
		Use:   "get [CHANNEL_ID]",
		Short: "Get channel details",
		Long:  "Display metadata and statistics for a channel, by ID or --username",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 && username == "" {
				return ErrChannelIDRequired
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			var channel *youtube.Channel

			if username != "" {
				channel, err = client.Channels().ByUsername(ctx, username, nil)
				if err != nil {
					return fmt.Errorf("getting channel for username '%s': %w", username, err)
				}
			} else {
				channel, err = client.Channels().Get(ctx, args[0], nil)
				if err != nil {
					return fmt.Errorf("getting channel '%s': %w", args[0], err)
				}
			}

			switch viper.GetString("output") {
			case OutputFormatJSON:
				return renderJSON(channel)
			case OutputFormatYAML:
				return renderYAML(channel)
			default:
				renderChannelTable(channel)

				return nil
			}
		},
	}

	cmd.Flags().StringVar(&username, "username", "", "resolve by legacy username instead of ID")

	return cmd
}

func renderChannelTable(channel *youtube.Channel) {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Property", "Value")

	_ = table.Append("ID", channel.ID)

	if channel.Snippet != nil {
		_ = table.Append("Title", channel.Snippet.Title)
		_ = table.Append("Custom URL", orNA(channel.Snippet.CustomURL))
		_ = table.Append("Country", orNA(channel.Snippet.Country))
		_ = table.Append("Created", channel.Snippet.PublishedAt.Format("2006-01-02"))
	}

	if channel.Statistics != nil {
		subscribers := orNA(channel.Statistics.SubscriberCount)
		if channel.Statistics.HiddenSubscriberCount {
			subscribers = "hidden"
		}

		_ = table.Append("Subscribers", subscribers)
		_ = table.Append("Videos", orNA(channel.Statistics.VideoCount))
		_ = table.Append("Views", orNA(channel.Statistics.ViewCount))
	}

	if channel.ContentDetails != nil {
		_ = table.Append("Uploads Playlist", orNA(channel.ContentDetails.RelatedPlaylists.Uploads))
	}

	_ = table.Render()
}
