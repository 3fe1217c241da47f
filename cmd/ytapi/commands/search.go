package commands

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mediakit-io/ytapi/internal/constants"
	"github.com/mediakit-io/ytapi/pkg/youtube"
)

// SearchOptions holds the options for the search command.
type SearchOptions struct {
	Max     int
	Type    string
	Order   string
	Channel string
}

// NewSearchCommand creates the search command.
func NewSearchCommand() *cobra.Command {
	var opts SearchOptions

	cmd := &cobra.Command{
		Use:   "search QUERY...",
		Short: "Search for videos, channels, and playlists",
		Long:  "Run a free-text search across videos, channels, and playlists",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearchCommand(strings.Join(args, " "), opts)
		},
	}

	cmd.Flags().IntVar(&opts.Max, "max", constants.DefaultPageSize, "number of results to fetch")
	cmd.Flags().StringVar(&opts.Type, "type", "", "restrict to a resource type (video, channel, playlist)")
	cmd.Flags().StringVar(&opts.Order, "order", "", "result order (date, rating, relevance, title, viewCount)")
	cmd.Flags().StringVar(&opts.Channel, "channel", "", "restrict to a channel ID")

	return cmd
}

func runSearchCommand(query string, opts SearchOptions) error {
	if strings.TrimSpace(query) == "" {
		return ErrQueryRequired
	}

	client, err := CreateClient()
	if err != nil {
		return err
	}

	params := youtube.NewQueryParams()
	if opts.Type != "" {
		params = params.WithType(opts.Type)
	}

	if opts.Order != "" {
		params = params.WithOrder(opts.Order)
	}

	if opts.Channel != "" {
		params = params.WithChannelID(opts.Channel)
	}

	results, err := client.Search().List(context.Background(), query, opts.Max, params)
	if err != nil {
		return fmt.Errorf("searching for '%s': %w", query, err)
	}

	switch viper.GetString("output") {
	case OutputFormatJSON:
		return renderJSON(results)
	case OutputFormatYAML:
		return renderYAML(results)
	default:
		renderSearchResultsTable(results)

		return nil
	}
}

func renderSearchResultsTable(results []youtube.SearchResult) {
	if len(results) == 0 {
		_, _ = os.Stdout.WriteString("No results found\n")

		return
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Kind", "ID", "Title", "Channel")

	for _, result := range results {
		title, channel := NotAvailable, NotAvailable

		if result.Snippet != nil {
			title = truncate(result.Snippet.Title, 60)
			channel = result.Snippet.ChannelTitle
		}

		_ = table.Append(shortKind(result.ID.Kind), resultID(result.ID), title, channel)
	}

	_ = table.Render()
}

// resultID picks the populated identifier of a compound search result ID.
func resultID(id youtube.ResourceID) string {
	switch {
	case id.VideoID != "":
		return id.VideoID
	case id.ChannelID != "":
		return id.ChannelID
	case id.PlaylistID != "":
		return id.PlaylistID
	default:
		return NotAvailable
	}
}

// shortKind strips the "youtube#" prefix from a kind tag.
func shortKind(kind string) string {
	return strings.TrimPrefix(kind, "youtube#")
}
