package commands

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"

	"github.com/hay-kot/discli/internal/core/config"
	"github.com/hay-kot/discli/internal/core/discord"
	"github.com/hay-kot/discli/internal/core/history"
	"github.com/hay-kot/discli/internal/core/validate"
	"github.com/hay-kot/discli/internal/discli"
	"github.com/hay-kot/discli/pkg/executil"
)

type Flags struct {
	LogLevel   string
	LogFile    string
	ConfigPath string
	DataDir    string

	// Token is the Discord authorization token, usually from DISCORD_TOKEN.
	Token string

	// Config is loaded in the Before hook and available to all commands
	Config *config.Config

	// History records send attempts
	History history.Store
}

// NewClient creates a Discord client from the token and configuration.
func (f *Flags) NewClient() (*discord.Client, error) {
	return discord.New(discord.Config{
		Token:      f.Token,
		BaseURL:    f.Config.APIURL,
		HTTPClient: &http.Client{Timeout: f.Config.Timeout},
		Logger:     log.With().Str("component", "discord").Logger(),
	})
}

// NewService creates the discli service. Hook command output is written to
// stdout and stderr.
func (f *Flags) NewService(stdout, stderr io.Writer) (*discli.Service, error) {
	client, err := f.NewClient()
	if err != nil {
		return nil, err
	}

	return discli.New(
		client,
		f.History,
		f.Config,
		&executil.RealExecutor{},
		log.With().Str("component", "discli").Logger(),
		stdout, stderr,
	), nil
}

// Channel returns the explicit channel or the configured default.
func (f *Flags) Channel(explicit string) (string, error) {
	channel := explicit
	if channel == "" {
		channel = f.Config.DefaultChannel
	}
	if channel == "" {
		return "", fmt.Errorf("no channel given; pass --channel or set default_channel in %s", f.ConfigPath)
	}
	if err := validate.ChannelID(channel); err != nil {
		return "", err
	}
	return channel, nil
}

// DefaultConfigPath returns the default config file path using XDG_CONFIG_HOME.
func DefaultConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, _ := os.UserHomeDir()
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "discli", "config.yaml")
}

// DefaultDataDir returns the default data directory using XDG_DATA_HOME.
func DefaultDataDir() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "discli")
}
