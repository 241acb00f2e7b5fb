package templates

import (
	"fmt"
	"slices"
	"strings"

	"github.com/hay-kot/discli/internal/core/config"
	"github.com/hay-kot/discli/pkg/tmpl"
)

// Validate checks values against the template: every required field must be
// non-empty, select values must be one of the options, and names must be
// known fields.
func Validate(t config.Template, values map[string]string) error {
	known := make(map[string]config.TemplateField, len(t.Fields))
	for _, field := range t.Fields {
		known[field.Name] = field
	}

	for name := range values {
		if _, ok := known[name]; !ok {
			return fmt.Errorf("unknown field %q", name)
		}
	}

	for _, field := range t.Fields {
		v, ok := values[field.Name]
		if !ok {
			v = field.Default
		}

		if field.Required && strings.TrimSpace(v) == "" {
			return fmt.Errorf("required field %q is missing", field.Name)
		}

		if field.Type == config.FieldTypeSelect && v != "" && !slices.Contains(field.Options, v) {
			return fmt.Errorf("field %q must be one of %s, got %q", field.Name, strings.Join(field.Options, ", "), v)
		}
	}

	return nil
}

// Render renders the template content. Fields without a value use their
// default, or the empty string.
func Render(t config.Template, values map[string]string) (string, error) {
	data := make(map[string]any, len(t.Fields))
	for _, field := range t.Fields {
		if v, ok := values[field.Name]; ok {
			data[field.Name] = v
		} else {
			data[field.Name] = field.Default
		}
	}

	out, err := tmpl.Render(t.Content, data)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}
