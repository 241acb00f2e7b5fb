package templates

import (
	"reflect"
	"strings"
	"testing"

	"github.com/hay-kot/discli/internal/core/config"
)

func TestParseSetValues(t *testing.T) {
	tests := []struct {
		name    string
		sets    []string
		want    map[string]string
		wantErr string
	}{
		{
			name: "single value",
			sets: []string{"version=1.2.0"},
			want: map[string]string{"version": "1.2.0"},
		},
		{
			name: "multiple values",
			sets: []string{"version=1.2.0", "env=production"},
			want: map[string]string{"version": "1.2.0", "env": "production"},
		},
		{
			name: "value with equals sign",
			sets: []string{"expr=a=b"},
			want: map[string]string{"expr": "a=b"},
		},
		{
			name: "commas are kept",
			sets: []string{"notes=fast, small"},
			want: map[string]string{"notes": "fast, small"},
		},
		{
			name: "empty value",
			sets: []string{"name="},
			want: map[string]string{"name": ""},
		},
		{
			name:    "missing equals",
			sets:    []string{"namevalue"},
			wantErr: "invalid --set format",
		},
		{
			name:    "empty name",
			sets:    []string{" =value"},
			wantErr: "empty name",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSetValues(tt.sets)
			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("ParseSetValues() error = %v, want containing %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseSetValues() unexpected error: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseSetValues() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAllFieldsPrefilled(t *testing.T) {
	tmpl := config.Template{Fields: []config.TemplateField{{Name: "a"}, {Name: "b"}}}

	if AllFieldsPrefilled(tmpl, map[string]string{"a": "1"}) {
		t.Error("expected false with a missing field")
	}
	if !AllFieldsPrefilled(tmpl, map[string]string{"a": "1", "b": ""}) {
		t.Error("expected true when every field is present")
	}
	if !AllFieldsPrefilled(config.Template{}, nil) {
		t.Error("expected true for a template without fields")
	}
}

func TestFieldTitle(t *testing.T) {
	if got := fieldTitle(config.TemplateField{Name: "version", Required: true}); got != "version *" {
		t.Errorf("fieldTitle() = %q", got)
	}
	if got := fieldTitle(config.TemplateField{Name: "env", Label: "Environment"}); got != "Environment" {
		t.Errorf("fieldTitle() = %q", got)
	}
}
