// Package config handles configuration loading and validation for discli.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/hay-kot/criterio"
	"gopkg.in/yaml.v3"

	"github.com/hay-kot/discli/internal/core/validate"
)

// DefaultMessageFormat prints a message the way a chat log reads.
const DefaultMessageFormat = `{{ .Username }}: {{ .Content }}`

// Config holds the application configuration.
type Config struct {
	APIURL         string        `yaml:"api_url"`
	Timeout        time.Duration `yaml:"timeout"`
	FetchLimit     int           `yaml:"fetch_limit"`
	DefaultChannel string        `yaml:"default_channel"`
	Watch          WatchConfig   `yaml:"watch"`
	Hooks          []Hook              `yaml:"hooks"`
	Templates      map[string]Template `yaml:"templates"`
	History        HistoryConfig       `yaml:"history"`
	DataDir        string              `yaml:"-"` // set by caller, not from config file
}

// WatchConfig holds polling configuration.
type WatchConfig struct {
	Interval time.Duration `yaml:"interval"`
	// Format is a text/template rendered with MessageTemplateData.
	Format string `yaml:"format"`
}

// HistoryConfig holds send history configuration.
type HistoryConfig struct {
	// MaxEntries limits stored sends. 0 keeps everything.
	MaxEntries int `yaml:"max_entries"`
}

// Hook runs commands for watched messages.
type Hook struct {
	// Pattern is a regex matched against message content. Empty matches all.
	Pattern string `yaml:"pattern"`
	// Commands are shell templates rendered with MessageTemplateData.
	Commands []string `yaml:"commands"`
}

// FieldType is the input kind of a template field.
type FieldType string

const (
	FieldTypeString FieldType = "string"
	FieldTypeText   FieldType = "text"
	FieldTypeSelect FieldType = "select"
)

// Template is a reusable message. Content is a text/template rendered with
// the field values keyed by field name.
type Template struct {
	Description string          `yaml:"description"`
	Fields      []TemplateField `yaml:"fields"`
	Content     string          `yaml:"content"`
}

// TemplateField is one value prompted for or passed with --set.
type TemplateField struct {
	Name        string    `yaml:"name"`
	Label       string    `yaml:"label"`
	Type        FieldType `yaml:"type"` // defaults to string
	Default     string    `yaml:"default"`
	Placeholder string    `yaml:"placeholder"`
	Required    bool      `yaml:"required"`
	Options     []string  `yaml:"options"` // select only
}

// MessageTemplateData defines the fields available to message format and
// hook templates.
type MessageTemplateData struct {
	ChannelID   string
	ID          string
	Content     string
	AuthorID    string
	Username    string
	DisplayName string
	Timestamp   string
	Mentions    []string
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		APIURL:     "https://discord.com/api/v9",
		Timeout:    30 * time.Second,
		FetchLimit: 10,
		Watch: WatchConfig{
			Interval: 5 * time.Second,
			Format:   DefaultMessageFormat,
		},
		History: HistoryConfig{
			MaxEntries: 200,
		},
	}
}

// Load reads configuration from the given path and sets the data directory.
// If configPath is empty or doesn't exist, returns defaults with the provided dataDir.
func Load(configPath, dataDir string) (*Config, error) {
	cfg := DefaultConfig()
	cfg.DataDir = dataDir

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			data, err := os.ReadFile(configPath)
			if err != nil {
				return nil, fmt.Errorf("read config file: %w", err)
			}

			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}

			cfg.DataDir = dataDir
		}
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// applyDefaults sets default values for any unset configuration options.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.APIURL == "" {
		c.APIURL = defaults.APIURL
	}
	if c.FetchLimit == 0 {
		c.FetchLimit = defaults.FetchLimit
	}
	if c.Watch.Interval == 0 {
		c.Watch.Interval = defaults.Watch.Interval
	}
	if c.Watch.Format == "" {
		c.Watch.Format = defaults.Watch.Format
	}
	for name, t := range c.Templates {
		for i := range t.Fields {
			if t.Fields[i].Type == "" {
				t.Fields[i].Type = FieldTypeString
			}
		}
		c.Templates[name] = t
	}
}

// Validate checks the fields Load depends on. See ValidateDeep for template
// and pattern checks.
func (c *Config) Validate() error {
	var errs criterio.FieldErrorsBuilder
	return c.validateBasic(errs).ToError()
}

func (c *Config) validateBasic(errs criterio.FieldErrorsBuilder) criterio.FieldErrorsBuilder {
	if c.DataDir == "" {
		errs = errs.Append("data_dir", fmt.Errorf("data directory cannot be empty"))
	}

	if err := validate.APIURL(c.APIURL); err != nil {
		errs = errs.Append("api_url", err)
	}

	if c.Timeout < 0 {
		errs = errs.Append("timeout", fmt.Errorf("cannot be negative"))
	}

	if err := validate.FetchLimit(c.FetchLimit); err != nil {
		errs = errs.Append("fetch_limit", err)
	}

	if c.DefaultChannel != "" {
		if err := validate.ChannelID(c.DefaultChannel); err != nil {
			errs = errs.Append("default_channel", err)
		}
	}

	if c.Watch.Interval < 0 {
		errs = errs.Append("watch.interval", fmt.Errorf("cannot be negative"))
	}

	if c.History.MaxEntries < 0 {
		errs = errs.Append("history.max_entries", fmt.Errorf("cannot be negative"))
	}

	for i, hook := range c.Hooks {
		if len(hook.Commands) == 0 {
			errs = errs.Append(fmt.Sprintf("hooks[%d].commands", i), fmt.Errorf("at least one command is required"))
		}
	}

	return errs
}

// HistoryFile returns the path to the send history JSON file.
func (c *Config) HistoryFile() string {
	return filepath.Join(c.DataDir, "history.json")
}
