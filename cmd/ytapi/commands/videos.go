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

// NewVideosCommand creates the videos command group.
func NewVideosCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "videos",
		Aliases: []string{"video"},
		Short:   "Look up videos",
		Long:    "Fetch video metadata and the most-popular chart",
	}

	cmd.AddCommand(newVideosGetCommand())
	cmd.AddCommand(newVideosPopularCommand())

	return cmd
}

func newVideosGetCommand() *cobra.Command {
	var part string

	cmd := &cobra.Command{
		Use:   "get VIDEO_ID",
		Short: "Get video details",
		Long:  "Display metadata, content details, and statistics for a video",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			videoID := args[0]
			if videoID == "" {
				return ErrVideoIDRequired
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			var opts *youtube.QueryParams
			if part != "" {
				opts = youtube.NewQueryParams().WithPart(part)
			}

			video, err := client.Videos().Get(context.Background(), videoID, opts)
			if err != nil {
				return fmt.Errorf("getting video '%s': %w", videoID, err)
			}

			switch viper.GetString("output") {
			case OutputFormatJSON:
				return renderJSON(video)
			case OutputFormatYAML:
				return renderYAML(video)
			default:
				renderVideoTable(video)

				return nil
			}
		},
	}

	cmd.Flags().StringVar(&part, "part", "", "comma-separated part selectors (default per resource)")

	return cmd
}

func renderVideoTable(video *youtube.Video) {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Property", "Value")

	_ = table.Append("ID", video.ID)

	if video.Snippet != nil {
		_ = table.Append("Title", video.Snippet.Title)
		_ = table.Append("Channel", video.Snippet.ChannelTitle)
		_ = table.Append("Published", video.Snippet.PublishedAt.Format("2006-01-02 15:04:05"))
	}

	if video.ContentDetails != nil {
		_ = table.Append("Duration", video.ContentDetails.Duration)
		_ = table.Append("Definition", video.ContentDetails.Definition)
	}

	if video.Statistics != nil {
		_ = table.Append("Views", orNA(video.Statistics.ViewCount))
		_ = table.Append("Likes", orNA(video.Statistics.LikeCount))
		_ = table.Append("Comments", orNA(video.Statistics.CommentCount))
	}

	_ = table.Render()
}

// VideosPopularOptions holds the options for the most-popular chart.
type VideosPopularOptions struct {
	Count  int
	Region string
}

func newVideosPopularCommand() *cobra.Command {
	var opts VideosPopularOptions

	cmd := &cobra.Command{
		Use:   "popular",
		Short: "List most-popular videos",
		Long:  "List the most-popular chart, optionally scoped to a region",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVideosPopularCommand(opts)
		},
	}

	cmd.Flags().IntVar(&opts.Count, "count", constants.DefaultPageSize, "number of videos to fetch")
	cmd.Flags().StringVar(&opts.Region, "region", "", "ISO 3166-1 alpha-2 region code")

	return cmd
}

func runVideosPopularCommand(opts VideosPopularOptions) error {
	client, err := CreateClient()
	if err != nil {
		return err
	}

	var params *youtube.QueryParams
	if opts.Region != "" {
		params = youtube.NewQueryParams().WithRegionCode(opts.Region)
	}

	videos, err := client.Videos().MostPopular(context.Background(), opts.Count, params)
	if err != nil {
		return fmt.Errorf("listing popular videos: %w", err)
	}

	switch viper.GetString("output") {
	case OutputFormatJSON:
		return renderJSON(videos)
	case OutputFormatYAML:
		return renderYAML(videos)
	default:
		renderVideoListTable(videos)

		return nil
	}
}

func renderVideoListTable(videos []youtube.Video) {
	if len(videos) == 0 {
		_, _ = os.Stdout.WriteString("No videos found\n")

		return
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Title", "Channel", "Views")

	for _, video := range videos {
		title, channel, views := NotAvailable, NotAvailable, NotAvailable

		if video.Snippet != nil {
			title = truncate(video.Snippet.Title, 60)
			channel = video.Snippet.ChannelTitle
		}

		if video.Statistics != nil {
			views = orNA(video.Statistics.ViewCount)
		}

		_ = table.Append(video.ID, title, channel, views)
	}

	_ = table.Render()
}

func orNA(s string) string {
	if s == "" {
		return NotAvailable
	}

	return s
}
