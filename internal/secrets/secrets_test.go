// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package secrets

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name   string
		setup  func(t *testing.T) string
		want   Secrets
		errMsg string
	}{
		{
			name: "reads key files and trims whitespace",
			setup: func(t *testing.T) string {
				dir := t.TempDir()
				writeFile(t, dir, APIKeyName, "  bk_abc123  \n")
				writeFile(t, dir, "other-key", "value\n")
				return dir
			},
			want: Secrets{
				APIKeyName:  "bk_abc123",
				"other-key": "value",
			},
		},
		{
			name: "returns empty set for nonexistent directory",
			setup: func(t *testing.T) string {
				return filepath.Join(t.TempDir(), "does-not-exist")
			},
			want: Secrets{},
		},
		{
			name: "skips empty files",
			setup: func(t *testing.T) string {
				dir := t.TempDir()
				writeFile(t, dir, APIKeyName, "valid-key")
				writeFile(t, dir, "empty-key", "")
				writeFile(t, dir, "whitespace-only", "   \n\t  ")
				return dir
			},
			want: Secrets{APIKeyName: "valid-key"},
		},
		{
			name: "skips dotfiles and subdirectories",
			setup: func(t *testing.T) string {
				dir := t.TempDir()
				writeFile(t, dir, ".gitkeep", "")
				writeFile(t, dir, ".hidden-key", "secret")
				writeFile(t, dir, APIKeyName, "bk_real")
				require.NoError(t, os.Mkdir(filepath.Join(dir, "subdir"), 0o755))
				return dir
			},
			want: Secrets{APIKeyName: "bk_real"},
		},
		{
			name: "path is a file",
			setup: func(t *testing.T) string {
				dir := t.TempDir()
				writeFile(t, dir, "plain", "x")
				return filepath.Join(dir, "plain")
			},
			errMsg: "reading secrets directory",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := tt.setup(t)
			got, err := Load(dir, nil)
			if tt.errMsg != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoadUnreadableFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "good-key", "value123")
	// A dangling symlink cannot be read, regardless of the user running the test.
	require.NoError(t, os.Symlink(filepath.Join(dir, "missing"), filepath.Join(dir, "bad-key")))

	core, logs := observer.New(zapcore.WarnLevel)
	got, err := Load(dir, zap.New(core))
	require.NoError(t, err)

	assert.Equal(t, "value123", got["good-key"])
	_, hasBad := got["bad-key"]
	assert.False(t, hasBad, "unreadable file should not appear in result")
	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "bad-key", logs.All()[0].ContextMap()["name"])
}

func TestGet(t *testing.T) {
	s := Secrets{APIKeyName: "from-file"}
	assert.Equal(t, "from-file", s.Get(APIKeyName, ""))
	assert.Equal(t, "from-env", s.Get(APIKeyName, "from-env"))
	assert.Equal(t, "", s.Get("unknown", ""))
	assert.Equal(t, []string{APIKeyName}, s.Names())
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestNamesSorted(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"zeta-key", APIKeyName, "alpha-key", "mid-key"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("v"), 0o600))
	}

	s, err := Load(dir, nil)
	require.NoError(t, err)
	want := []string{"alpha-key", APIKeyName, "mid-key", "zeta-key"}
	for i := 0; i < 5; i++ {
		assert.Equal(t, want, s.Names())
	}
}
