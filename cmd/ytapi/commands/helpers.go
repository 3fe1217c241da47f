// Package commands implements the ytapi CLI commands.
package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"dario.cat/mergo"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/mediakit-io/ytapi/internal/constants"
	"github.com/mediakit-io/ytapi/pkg/youtube"
	"github.com/mediakit-io/ytapi/pkg/ytclient"
)

// Common string constants used throughout the commands package.
const (
	NotAvailable = "N/A"

	// Output formats.
	OutputFormatJSON = "json"
	OutputFormatYAML = "yaml"

	// Masked is printed instead of the stored API key.
	Masked = "***"
)

// Common static errors used throughout the commands package.
var (
	ErrVideoIDRequired    = errors.New("video ID is required")
	ErrChannelIDRequired  = errors.New("channel ID or --username is required")
	ErrPlaylistIDRequired = errors.New("playlist ID is required")
	ErrQueryRequired      = errors.New("search query is required")
	ErrAPIKeyNotSet       = errors.New("no API key configured (run 'ytapi config set-key' or set YTAPI_KEY)")
	ErrKeyInputEmpty      = errors.New("entered key is empty")
	ErrInvalidParamFormat = errors.New("invalid parameter format")
)

// clientSettings is the flattened client configuration assembled from flags,
// environment, and the config file.
type clientSettings struct {
	Endpoint string `yaml:"endpoint,omitempty"`
	Key      string `yaml:"key,omitempty"`
}

// resolveClientSettings layers configuration sources. mergo fills only zero
// fields, so earlier layers win: flags and environment first, then the
// config file, then built-in defaults.
func resolveClientSettings() (clientSettings, error) {
	settings := clientSettings{
		Endpoint: viper.GetString("endpoint"),
		Key:      viper.GetString("key"),
	}

	fileSettings := clientSettings{
		Endpoint: viper.GetString("api.endpoint"),
		Key:      viper.GetString("api.key"),
	}

	err := mergo.Merge(&settings, fileSettings)
	if err != nil {
		return clientSettings{}, fmt.Errorf("merging config file settings: %w", err)
	}

	defaults := clientSettings{Endpoint: constants.DefaultAPIEndpoint}

	err = mergo.Merge(&settings, defaults)
	if err != nil {
		return clientSettings{}, fmt.Errorf("merging default settings: %w", err)
	}

	return settings, nil
}

// CreateClient builds a youtube.Client from the resolved configuration.
func CreateClient() (youtube.Client, error) {
	settings, err := resolveClientSettings()
	if err != nil {
		return nil, err
	}

	if settings.Key == "" {
		return nil, ErrAPIKeyNotSet
	}

	config := &youtube.Config{
		APIEndpoint: settings.Endpoint,
		APIKey:      settings.Key,
	}

	if viper.GetBool("verbose") {
		config.Debug = true
		config.Logger = newCLILogger()
	}

	client, err := ytclient.New(config)
	if err != nil {
		return nil, fmt.Errorf("creating API client: %w", err)
	}

	return client, nil
}

// newCLILogger builds the structured logger used in verbose mode.
func newCLILogger() youtube.Logger {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	return &zerologAdapter{logger: logger}
}

// zerologAdapter adapts zerolog to the youtube.Logger interface.
type zerologAdapter struct {
	logger zerolog.Logger
}

func (z *zerologAdapter) Debug(msg string, fields map[string]interface{}) {
	z.logger.Debug().Fields(fields).Msg(msg)
}

func (z *zerologAdapter) Info(msg string, fields map[string]interface{}) {
	z.logger.Info().Fields(fields).Msg(msg)
}

func (z *zerologAdapter) Warn(msg string, fields map[string]interface{}) {
	z.logger.Warn().Fields(fields).Msg(msg)
}

func (z *zerologAdapter) Error(msg string, fields map[string]interface{}) {
	z.logger.Error().Fields(fields).Msg(msg)
}

// renderJSON writes v to stdout as indented JSON.
func renderJSON(v interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")

	err := encoder.Encode(v)
	if err != nil {
		return fmt.Errorf("encoding JSON output: %w", err)
	}

	return nil
}

// renderYAML writes v to stdout as YAML.
func renderYAML(v interface{}) error {
	encoder := yaml.NewEncoder(os.Stdout)

	err := encoder.Encode(v)
	if err != nil {
		return fmt.Errorf("encoding YAML output: %w", err)
	}

	return encoder.Close()
}

// configFilePath returns the path of the CLI config file, honoring --config.
func configFilePath() (string, error) {
	if cfgFile := viper.GetString("config"); cfgFile != "" {
		return cfgFile, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}

	return filepath.Join(home, ".ytapi", "config.yml"), nil
}

// truncate shortens s for table cells.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}

	return s[:max-3] + "..."
}
