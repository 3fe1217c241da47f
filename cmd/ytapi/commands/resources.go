package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mediakit-io/ytapi/pkg/youtube"
)

// NewResourcesCommand creates the resources command group for resource types
// the typed commands do not cover.
func NewResourcesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "resources",
		Aliases: []string{"resource"},
		Short:   "Generic resource access",
		Long:    "Fetch any known resource type by ID or filter parameters, returning the raw item",
	}

	cmd.AddCommand(newResourcesTypesCommand())
	cmd.AddCommand(newResourcesGetCommand())

	return cmd
}

func newResourcesTypesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "types",
		Short: "List known resource types",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range youtube.ResourceTypes() {
				_, _ = fmt.Fprintln(os.Stdout, name)
			}
		},
	}
}

// ResourcesGetOptions holds the options for the generic get command.
type ResourcesGetOptions struct {
	ID     string
	Params []string
}

func newResourcesGetCommand() *cobra.Command {
	var opts ResourcesGetOptions

	cmd := &cobra.Command{
		Use:   "get RESOURCE_TYPE",
		Short: "Get a resource item",
		Long:  "Fetch the first item of a resource type matching --id or --param filters",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runResourcesGetCommand(args[0], opts)
		},
	}

	cmd.Flags().StringVar(&opts.ID, "id", "", "resource ID")
	cmd.Flags().StringArrayVar(&opts.Params, "param", nil, "query parameter as key=value (repeatable)")

	return cmd
}

func runResourcesGetCommand(resourceType string, opts ResourcesGetOptions) error {
	client, err := CreateClient()
	if err != nil {
		return err
	}

	params := url.Values{}

	for _, pair := range opts.Params {
		key, value, found := strings.Cut(pair, "=")
		if !found {
			return fmt.Errorf("%w: %q is not key=value", ErrInvalidParamFormat, pair)
		}

		params.Add(key, value)
	}

	ctx := context.Background()

	var raw json.RawMessage

	if opts.ID != "" {
		raw, err = client.GetResourceByID(ctx, resourceType, opts.ID, params)
	} else {
		raw, err = client.GetResource(ctx, resourceType, params)
	}

	if err != nil {
		return fmt.Errorf("getting %s: %w", resourceType, err)
	}

	var item interface{}

	err = json.Unmarshal(raw, &item)
	if err != nil {
		return fmt.Errorf("parsing %s item: %w", resourceType, err)
	}

	if viper.GetString("output") == OutputFormatYAML {
		return renderYAML(item)
	}

	return renderJSON(item)
}
