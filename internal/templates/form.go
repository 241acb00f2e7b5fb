// Package templates fills and renders message templates from the config.
package templates

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/hay-kot/discli/internal/core/config"
)

// AllFieldsPrefilled returns true if every template field has a value in
// prefilled.
func AllFieldsPrefilled(tmpl config.Template, prefilled map[string]string) bool {
	for _, field := range tmpl.Fields {
		if _, ok := prefilled[field.Name]; !ok {
			return false
		}
	}
	return true
}

// RunForm prompts for the template's fields with a huh form and returns the
// collected values. Prefilled values become the field defaults.
func RunForm(tmpl config.Template, prefilled map[string]string) (map[string]string, error) {
	values := make(map[string]string, len(tmpl.Fields))
	if len(tmpl.Fields) == 0 {
		return values, nil
	}

	fields := make([]huh.Field, 0, len(tmpl.Fields))
	bindings := make(map[string]*string, len(tmpl.Fields))

	for _, field := range tmpl.Fields {
		value := field.Default
		if v, ok := prefilled[field.Name]; ok {
			value = v
		}

		binding := &value
		fields = append(fields, newField(field, binding))
		bindings[field.Name] = binding
	}

	form := huh.NewForm(huh.NewGroup(fields...))
	if err := form.Run(); err != nil {
		return nil, err
	}

	for name, binding := range bindings {
		values[name] = *binding
	}
	return values, nil
}

func newField(field config.TemplateField, value *string) huh.Field {
	switch field.Type {
	case config.FieldTypeSelect:
		options := make([]huh.Option[string], len(field.Options))
		for i, opt := range field.Options {
			options[i] = huh.NewOption(opt, opt)
		}
		return huh.NewSelect[string]().
			Title(fieldTitle(field)).
			Options(options...).
			Value(value)

	case config.FieldTypeText:
		text := huh.NewText().
			Title(fieldTitle(field)).
			Placeholder(field.Placeholder).
			Value(value)
		if field.Required {
			text.Validate(requiredValidator(field))
		}
		return text

	default:
		input := huh.NewInput().
			Title(fieldTitle(field)).
			Placeholder(field.Placeholder).
			Value(value)
		if field.Required {
			input.Validate(requiredValidator(field))
		}
		return input
	}
}

// fieldTitle generates the display title for a field.
func fieldTitle(field config.TemplateField) string {
	title := field.Label
	if title == "" {
		title = field.Name
	}
	if field.Required {
		title += " *"
	}
	return title
}

func requiredValidator(field config.TemplateField) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", fieldTitle(field))
		}
		return nil
	}
}

// ParseSetValues parses --set flag values of the form "name=value".
func ParseSetValues(sets []string) (map[string]string, error) {
	result := make(map[string]string, len(sets))

	for _, s := range sets {
		name, value, ok := strings.Cut(s, "=")
		if !ok {
			return nil, fmt.Errorf("invalid --set format %q: expected name=value", s)
		}

		name = strings.TrimSpace(name)
		if name == "" {
			return nil, fmt.Errorf("invalid --set format %q: empty name", s)
		}

		result[name] = value
	}

	return result, nil
}
