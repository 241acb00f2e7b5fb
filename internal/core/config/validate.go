package config

import (
	"fmt"
	"maps"
	"os"
	"regexp"
	"slices"
	"strings"
	"time"

	"github.com/hay-kot/criterio"

	"github.com/hay-kot/discli/pkg/tmpl"
)

// ValidationWarning represents a non-fatal configuration issue.
type ValidationWarning struct {
	Category string `json:"category"`
	Item     string `json:"item,omitempty"`
	Message  string `json:"message"`
}

// sampleMessage exercises every template field during validation.
var sampleMessage = MessageTemplateData{
	ChannelID:   "1100000000000000000",
	ID:          "1100000000000000001",
	Content:     "hello",
	AuthorID:    "42",
	Username:    "alice",
	DisplayName: "Alice",
	Timestamp:   "2026-01-01T00:00:00.000000+00:00",
	Mentions:    []string{"7"},
}

// ValidateDeep performs comprehensive validation of the configuration.
// Unlike Validate(), this checks template syntax, regex patterns, and file
// access. The returned error is a criterio.FieldErrors when non-nil.
func (c *Config) ValidateDeep(configPath string) error {
	var errs criterio.FieldErrorsBuilder

	errs = c.validateBasic(errs)
	errs = c.validateFileAccess(errs, configPath)
	errs = c.validateFormat(errs)
	errs = c.validateHooks(errs)
	errs = c.validateTemplates(errs)

	return errs.ToError()
}

func (c *Config) validateFileAccess(errs criterio.FieldErrorsBuilder, configPath string) criterio.FieldErrorsBuilder {
	if configPath != "" {
		info, err := os.Stat(configPath)
		switch {
		case err == nil && info.IsDir():
			errs = errs.Append("config", fmt.Errorf("%s is a directory, not a file", configPath))
		case err != nil && !os.IsNotExist(err):
			errs = errs.Append("config", fmt.Errorf("cannot access %s: %w", configPath, err))
		}
	}

	if c.DataDir != "" {
		info, err := os.Stat(c.DataDir)
		switch {
		case err == nil && !info.IsDir():
			errs = errs.Append("data_dir", fmt.Errorf("%s exists but is not a directory", c.DataDir))
		case err != nil && !os.IsNotExist(err):
			errs = errs.Append("data_dir", fmt.Errorf("cannot access %s: %w", c.DataDir, err))
		}
	}

	return errs
}

func (c *Config) validateFormat(errs criterio.FieldErrorsBuilder) criterio.FieldErrorsBuilder {
	if _, err := tmpl.Render(c.Watch.Format, sampleMessage); err != nil {
		errs = errs.Append("watch.format", fmt.Errorf("template error: %w", err))
	}
	return errs
}

func (c *Config) validateHooks(errs criterio.FieldErrorsBuilder) criterio.FieldErrorsBuilder {
	for i, hook := range c.Hooks {
		if hook.Pattern != "" {
			if _, err := regexp.Compile(hook.Pattern); err != nil {
				errs = errs.Append(fmt.Sprintf("hooks[%d].pattern", i), fmt.Errorf("invalid regex: %w", err))
			}
		}

		for j, cmd := range hook.Commands {
			if _, err := tmpl.Render(cmd, sampleMessage); err != nil {
				errs = errs.Append(fmt.Sprintf("hooks[%d].commands[%d]", i, j), fmt.Errorf("template error: %w", err))
			}
		}
	}
	return errs
}

func (c *Config) validateTemplates(errs criterio.FieldErrorsBuilder) criterio.FieldErrorsBuilder {
	for _, name := range slices.Sorted(maps.Keys(c.Templates)) {
		t := c.Templates[name]
		prefix := "templates." + name

		if strings.TrimSpace(t.Content) == "" {
			errs = errs.Append(prefix+".content", fmt.Errorf("cannot be empty"))
			continue
		}

		sample := make(map[string]any, len(t.Fields))
		for i, field := range t.Fields {
			fieldPath := fmt.Sprintf("%s.fields[%d]", prefix, i)

			if field.Name == "" {
				errs = errs.Append(fieldPath+".name", fmt.Errorf("cannot be empty"))
				continue
			}
			if _, dup := sample[field.Name]; dup {
				errs = errs.Append(fieldPath+".name", fmt.Errorf("duplicate field %q", field.Name))
				continue
			}
			sample[field.Name] = "sample"

			switch field.Type {
			case "", FieldTypeString, FieldTypeText:
			case FieldTypeSelect:
				if len(field.Options) == 0 {
					errs = errs.Append(fieldPath+".options", fmt.Errorf("select field needs at least one option"))
				} else if field.Default != "" && !slices.Contains(field.Options, field.Default) {
					errs = errs.Append(fieldPath+".default", fmt.Errorf("%q is not one of the options", field.Default))
				}
			default:
				errs = errs.Append(fieldPath+".type", fmt.Errorf("unknown type %q (string, text, select)", field.Type))
			}
		}

		if _, err := tmpl.Render(t.Content, sample); err != nil {
			errs = errs.Append(prefix+".content", fmt.Errorf("template error: %w", err))
		}
	}
	return errs
}

// Warnings returns non-fatal issues worth surfacing to the user.
func (c *Config) Warnings() []ValidationWarning {
	var warnings []ValidationWarning

	if c.Timeout == 0 {
		warnings = append(warnings, ValidationWarning{
			Category: "Network",
			Item:     "timeout",
			Message:  "no request timeout; a stalled connection blocks until interrupted",
		})
	}

	if c.Watch.Interval > 0 && c.Watch.Interval < 2*time.Second {
		warnings = append(warnings, ValidationWarning{
			Category: "Watch",
			Item:     "watch.interval",
			Message:  fmt.Sprintf("polling every %s is likely to hit rate limits", c.Watch.Interval),
		})
	}

	for i, hook := range c.Hooks {
		if hook.Pattern == "" {
			warnings = append(warnings, ValidationWarning{
				Category: "Hooks",
				Item:     fmt.Sprintf("hooks[%d]", i),
				Message:  "empty pattern runs for every message",
			})
		}
	}

	return warnings
}
