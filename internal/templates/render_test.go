package templates

import (
	"strings"
	"testing"

	"github.com/hay-kot/discli/internal/core/config"
)

var release = config.Template{
	Fields: []config.TemplateField{
		{Name: "version", Type: config.FieldTypeString, Required: true},
		{Name: "env", Type: config.FieldTypeSelect, Options: []string{"staging", "production"}, Default: "staging"},
		{Name: "notes", Type: config.FieldTypeText},
	},
	Content: `Released **{{ .version }}** to {{ .env }}
{{ .notes }}`,
}

func TestRender(t *testing.T) {
	tests := []struct {
		name   string
		values map[string]string
		want   string
	}{
		{
			name:   "all values",
			values: map[string]string{"version": "1.2.0", "env": "production", "notes": "fixes"},
			want:   "Released **1.2.0** to production\nfixes",
		},
		{
			name:   "defaults and empty optional",
			values: map[string]string{"version": "1.2.0"},
			want:   "Released **1.2.0** to staging",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Render(release, tt.values)
			if err != nil {
				t.Fatalf("Render() unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Render() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRender_TemplateError(t *testing.T) {
	_, err := Render(config.Template{Content: "{{ .missing }}"}, nil)
	if err == nil {
		t.Fatal("expected error for undefined field")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		values  map[string]string
		wantErr string
	}{
		{name: "valid", values: map[string]string{"version": "1.0"}},
		{name: "missing required", values: map[string]string{}, wantErr: `required field "version"`},
		{name: "blank required", values: map[string]string{"version": "  "}, wantErr: `required field "version"`},
		{name: "bad option", values: map[string]string{"version": "1", "env": "qa"}, wantErr: "must be one of staging, production"},
		{name: "unknown field", values: map[string]string{"version": "1", "colour": "red"}, wantErr: `unknown field "colour"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(release, tt.values)
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}
