package attach

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFiles(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, name := range names {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(name), 0o644))
	}
}

func TestResolve(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "b.png", "a.png", "notes.txt", "shots/c.png", "shots/deep/d.png")

	tests := []struct {
		name     string
		patterns []string
		want     []string
	}{
		{
			name:     "literal path",
			patterns: []string{filepath.Join(dir, "notes.txt")},
			want:     []string{filepath.Join(dir, "notes.txt")},
		},
		{
			name:     "glob is sorted",
			patterns: []string{filepath.Join(dir, "*.png")},
			want:     []string{filepath.Join(dir, "a.png"), filepath.Join(dir, "b.png")},
		},
		{
			name:     "double star",
			patterns: []string{filepath.Join(dir, "shots", "**", "*.png")},
			want:     []string{filepath.Join(dir, "shots", "c.png"), filepath.Join(dir, "shots", "deep", "d.png")},
		},
		{
			name:     "keeps argument order and drops duplicates",
			patterns: []string{filepath.Join(dir, "notes.txt"), filepath.Join(dir, "*"), filepath.Join(dir, "a.png")},
			want: []string{
				filepath.Join(dir, "notes.txt"),
				filepath.Join(dir, "a.png"),
				filepath.Join(dir, "b.png"),
			},
		},
		{
			name:     "no patterns",
			patterns: nil,
			want:     nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Resolve(tt.patterns)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolve_Errors(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "a.png")

	_, err := Resolve([]string{filepath.Join(dir, "missing.png")})
	require.ErrorIs(t, err, os.ErrNotExist)

	_, err = Resolve([]string{filepath.Join(dir, "*.gif")})
	require.ErrorIs(t, err, ErrNoMatches)

	_, err = Resolve([]string{dir})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "is a directory")
}
