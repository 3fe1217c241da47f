package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/mediakit-io/ytapi/internal/constants"
)

// NewConfigCommand creates the config command group.
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage CLI configuration",
		Long:  "Store and inspect the API key and endpoint used by the CLI",
	}

	cmd.AddCommand(newConfigSetKeyCommand())
	cmd.AddCommand(newConfigGetCommand())
	cmd.AddCommand(newConfigPathCommand())

	return cmd
}

// configFile is the persisted shape of ~/.ytapi/config.yml.
type configFile struct {
	API struct {
		Endpoint string `yaml:"endpoint,omitempty"`
		Key      string `yaml:"key,omitempty"`
	} `yaml:"api"`
}

func newConfigSetKeyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set-key [API_KEY]",
		Short: "Store the API key",
		Long:  "Store the API key in the config file. Without an argument the key is read from a hidden prompt.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var key string

			if len(args) == 1 {
				key = args[0]
			} else {
				_, _ = fmt.Fprint(os.Stderr, "API key: ")

				entered, err := term.ReadPassword(int(syscall.Stdin))

				_, _ = fmt.Fprintln(os.Stderr)

				if err != nil {
					return fmt.Errorf("reading API key: %w", err)
				}

				key = string(entered)
			}

			if strings.TrimSpace(key) == "" {
				return ErrKeyInputEmpty
			}

			return saveKey(key)
		},
	}
}

func saveKey(key string) error {
	path, err := configFilePath()
	if err != nil {
		return err
	}

	var cfg configFile

	// Preserve other settings already in the file.
	if data, err := os.ReadFile(path); err == nil {
		_ = yaml.Unmarshal(data, &cfg)
	}

	cfg.API.Key = key

	err = os.MkdirAll(filepath.Dir(path), constants.ConfigDirPerm)
	if err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(&cfg)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	err = os.WriteFile(path, data, constants.ConfigFilePerm)
	if err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	_, _ = fmt.Fprintf(os.Stdout, "API key saved to %s\n", path)

	return nil
}

func newConfigGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get",
		Short: "Show the resolved configuration",
		Long:  "Show the endpoint and a masked API key after layering flags, environment, and the config file",
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := resolveClientSettings()
			if err != nil {
				return err
			}

			key := NotAvailable
			if settings.Key != "" {
				key = Masked
			}

			_, _ = fmt.Fprintf(os.Stdout, "Endpoint: %s\n", settings.Endpoint)
			_, _ = fmt.Fprintf(os.Stdout, "API key:  %s\n", key)

			return nil
		},
	}
}

func newConfigPathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the config file path",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := configFilePath()
			if err != nil {
				return err
			}

			if used := viper.ConfigFileUsed(); used != "" {
				path = used
			}

			_, _ = fmt.Fprintln(os.Stdout, path)

			return nil
		},
	}
}
