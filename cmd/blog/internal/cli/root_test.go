package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	goerrors "github.com/goliatone/go-errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goliatone/go-blog"
)

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := NewRootCommand(&out, &errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), errOut.String(), err
}

func TestRootCmd_FlagsRegistered(t *testing.T) {
	root := NewRootCommand(&bytes.Buffer{}, &bytes.Buffer{})

	tests := []struct {
		name     string
		kind     string
		expected string
	}{
		{name: "config", kind: "string", expected: ""},
		{name: "content-dir", kind: "string", expected: ""},
		{name: "engine", kind: "string", expected: "lines"},
		{name: "words-per-minute", kind: "int", expected: "225"},
		{name: "log", kind: "bool", expected: "false"},
		{name: "log-level", kind: "string", expected: "info"},
		{name: "log-format", kind: "string", expected: ""},
		{name: "log-provider", kind: "string", expected: "console"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flag := root.PersistentFlags().Lookup(tt.name)
			require.NotNil(t, flag, "%s flag should be registered on root command", tt.name)
			assert.Equal(t, tt.kind, flag.Value.Type())
			assert.Equal(t, tt.expected, flag.DefValue)
		})
	}
}

func TestListCmd_PrintsNewestFirst(t *testing.T) {
	out, _, err := run(t, "list")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)
	assert.Contains(t, lines[0], "design-patterns-builder")
	assert.Contains(t, lines[0], "April 30, 2025")
	assert.Contains(t, lines[3], "design-patterns-introduction")
	assert.Contains(t, lines[3], "April 25, 2025")
}

func TestListCmd_JSON(t *testing.T) {
	out, _, err := run(t, "list", "--json")
	require.NoError(t, err)

	var posts []map[string]string
	require.NoError(t, json.Unmarshal([]byte(out), &posts))
	require.Len(t, posts, 4)
	assert.Equal(t, "design-patterns-builder", posts[0]["slug"])
	assert.NotEmpty(t, posts[0]["content"])
	assert.Equal(t, "5 min read", posts[0]["readTime"])
	assert.Equal(t, "April 30, 2025", posts[0]["date"])
}

func TestShowCmd_Body(t *testing.T) {
	out, _, err := run(t, "show", "design-patterns-singleton", "--body")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "# Singleton Design Pattern"), "unexpected body start: %q", out[:min(len(out), 60)])
	assert.NotContains(t, out, "slug: \"design-patterns-singleton\"")
}

func TestShowCmd_Summary(t *testing.T) {
	out, _, err := run(t, "show", "design-patterns-introduction")
	require.NoError(t, err)
	assert.Contains(t, out, "Title: Introduction to Design Patterns: A Developer's Guide\n")
	assert.Contains(t, out, "Date: April 25, 2025\n")
	assert.Contains(t, out, "Slug: design-patterns-introduction\n")
}

func TestShowCmd_NotFound(t *testing.T) {
	_, _, err := run(t, "show", "nonexistent")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrPostNotFound))
	assert.Contains(t, err.Error(), "post not found")
}

func TestShowCmd_RequiresSlug(t *testing.T) {
	_, _, err := run(t, "show")
	require.Error(t, err)

	_, _, err = run(t, "show", "   ")
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrPostNotFound))
	assert.True(t, goerrors.IsCategory(err, goerrors.CategoryValidation), "expected validation category, got %v", err)
}

func TestRootCmd_ContentDirFlag(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "hello.md"), []byte("---\ntitle: Hello\ndate: 2025-05-01\n---\nHi."), 0o644))

	out, _, err := run(t, "list", "--content-dir", dir)
	require.NoError(t, err)
	assert.Equal(t, "2025-05-01  hello  1 min read  Hello", strings.TrimSpace(out))
}

func TestRootCmd_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	words := strings.TrimSpace(strings.Repeat("word ", 150))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "long.md"), []byte(words), 0o644))

	configPath := filepath.Join(dir, "blog.yaml")
	config := "posts:\n  content_dir: " + dir + "\n  words_per_minute: 100\n"
	require.NoError(t, os.WriteFile(configPath, []byte(config), 0o644))

	out, _, err := run(t, "show", "long", "--json", "--config", configPath)
	require.NoError(t, err)

	var post map[string]string
	require.NoError(t, json.Unmarshal([]byte(out), &post))
	assert.Equal(t, "2 min read", post["readTime"])
}

func TestRootCmd_FlagOverridesConfigFile(t *testing.T) {
	dir := t.TempDir()
	words := strings.TrimSpace(strings.Repeat("word ", 150))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "long.md"), []byte(words), 0o644))

	configPath := filepath.Join(dir, "blog.yaml")
	config := "posts:\n  content_dir: " + dir + "\n  words_per_minute: 100\n"
	require.NoError(t, os.WriteFile(configPath, []byte(config), 0o644))

	out, _, err := run(t, "show", "long", "--json", "--config", configPath, "--words-per-minute", "300")
	require.NoError(t, err)

	var post map[string]string
	require.NoError(t, json.Unmarshal([]byte(out), &post))
	assert.Equal(t, "1 min read", post["readTime"])
}

func TestRootCmd_EnvOverrides(t *testing.T) {
	t.Setenv("BLOG_FRONTMATTER_ENGINE", "toml")

	_, _, err := run(t, "list")
	require.Error(t, err)
	assert.True(t, errors.Is(err, blog.ErrFrontmatterEngineUnknown))
}

func TestRootCmd_MissingConfigFile(t *testing.T) {
	_, _, err := run(t, "list", "--config", filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read config")
}
