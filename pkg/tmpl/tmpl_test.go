package tmpl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type message struct {
	Username string
	Content  string
	Mentions []string
}

func TestRender(t *testing.T) {
	tests := []struct {
		name    string
		tmpl    string
		data    any
		want    string
		wantErr bool
	}{
		{
			name: "struct fields",
			tmpl: "{{ .Username }}: {{ .Content }}",
			data: message{Username: "alice", Content: "hi"},
			want: "alice: hi",
		},
		{
			name: "no variables",
			tmpl: "static string",
			data: nil,
			want: "static string",
		},
		{
			name:    "unknown field errors",
			tmpl:    "{{ .Missing }}",
			data:    message{},
			wantErr: true,
		},
		{
			name:    "missing map key errors",
			tmpl:    "{{ .Missing }}",
			data:    map[string]string{"Username": "alice"},
			wantErr: true,
		},
		{
			name:    "invalid template syntax",
			tmpl:    "{{ .Username }",
			data:    message{},
			wantErr: true,
		},
		{
			name: "shq with single quotes",
			tmpl: "notify-send {{ .Content | shq }}",
			data: message{Content: "it's done"},
			want: `notify-send 'it'\''s done'`,
		},
		{
			name: "shq empty",
			tmpl: "echo {{ .Content | shq }}",
			data: message{},
			want: "echo ''",
		},
		{
			name: "shq neutralizes substitution",
			tmpl: "echo {{ .Content | shq }}",
			data: message{Content: "$(rm -rf /)"},
			want: "echo '$(rm -rf /)'",
		},
		{
			name: "trunc",
			tmpl: "{{ trunc 6 .Content }}",
			data: message{Content: "hello world"},
			want: "hello…",
		},
		{
			name: "trunc shorter than limit",
			tmpl: "{{ trunc 20 .Content }}",
			data: message{Content: "hello"},
			want: "hello",
		},
		{
			name: "oneline",
			tmpl: "{{ oneline .Content }}",
			data: message{Content: "line one\n\nline   two"},
			want: "line one line two",
		},
		{
			name: "join",
			tmpl: `{{ join "," .Mentions }}`,
			data: message{Mentions: []string{"1", "2"}},
			want: "1,2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Render(tt.tmpl, tt.data)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTruncate_MultiByte(t *testing.T) {
	assert.Equal(t, "héé…", Truncate(4, "héééé"))
	assert.Equal(t, "…", Truncate(1, "abc"))
	assert.Equal(t, "abc", Truncate(0, "abc"))
}
