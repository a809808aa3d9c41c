package adapter

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/dbgc/internal/model"
)

func TestDefaultProfiles(t *testing.T) {
	set, err := DefaultProfiles()
	require.NoError(t, err)

	for _, name := range []string{"go", "c", "cpp", "java", "rust", "javascript", "python"} {
		p, ok := set.ByName(name)
		require.True(t, ok, name)
		assert.NotEmpty(t, p.Extensions, name)
		assert.NotEmpty(t, p.Quotes, name)
		assert.Equal(t, []string{"debug:", "[debug]"}, p.DebugMarkers, name)
	}

	goProfile, _ := set.ByName("go")
	assert.Equal(t, "//", goProfile.LineComment)
	assert.Equal(t, &m.Delimiters{Open: "/*", Close: "*/"}, goProfile.BlockComment)
	assert.Contains(t, goProfile.Quotes, m.QuoteRule{Delimiter: `"`, Escape: '\\'})
	assert.Contains(t, goProfile.Quotes, m.QuoteRule{Delimiter: "`", Multiline: true})

	c, _ := set.ByName("c")
	assert.Equal(t, "\\", c.LineContinuation)
	assert.True(t, c.CommentSplicing)
	assert.Equal(t, ";", c.Terminator)

	python, _ := set.ByName("python")
	assert.Equal(t, "#", python.LineComment)
	assert.Nil(t, python.BlockComment)
}

func TestProfileSet_ForPath(t *testing.T) {
	set, err := DefaultProfiles()
	require.NoError(t, err)

	tests := map[string]string{
		"main.go":        "go",
		"src/lib.RS":     "rust",
		"a/b/widget.hpp": "cpp",
		"util.h":         "c",
		"app.tsx":        "javascript",
		"Main.java":      "java",
		"tool.py":        "python",
	}

	for path, want := range tests {
		p, err := set.ForPath(path)
		require.NoError(t, err, path)
		assert.Equal(t, want, p.Name, path)
	}

	_, err = set.ForPath("README.md")

	var unsupported *m.ErrUnsupportedLanguage
	require.ErrorAs(t, err, &unsupported)
	assert.Equal(t, ".md", unsupported.Extension)
	assert.Equal(t, "unsupported language: .md", err.Error())
}

func TestLocalProfileStore_LoadYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "dbgc.yaml")

	content := `markers: ["trace:"]
profiles:
  - name: go
    debug_calls: [pp.Println]
  - name: lua
    extensions: [".lua"]
    line_comment: "--"
    quotes:
      - { delimiter: "\"", escape: "\\" }
    output_calls: [print]
    markers: ["dbg"]
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	set, err := NewLocalProfileStore().Load(m.Path(path))
	require.NoError(t, err)

	goProfile, ok := set.ByName("go")
	require.True(t, ok)
	assert.Equal(t, []string{"pp.Println"}, goProfile.DebugCalls)
	assert.Equal(t, []string{"trace:"}, goProfile.DebugMarkers)
	assert.Equal(t, "//", goProfile.LineComment, "unset fields keep the built-in value")

	lua, err := set.ForPath("init.lua")
	require.NoError(t, err)
	assert.Equal(t, "--", lua.LineComment)
	assert.Equal(t, []m.QuoteRule{{Delimiter: `"`, Escape: '\\'}}, lua.Quotes)
	assert.Equal(t, []string{"dbg"}, lua.DebugMarkers)
}

func TestLocalProfileStore_LoadTOML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "dbgc.toml")

	content := `markers = ["debug:"]

[[profiles]]
name = "shell"
extensions = [".sh"]
line_comment = "#"
line_continuation = "\\"
output_calls = ["echo"]

[[profiles.quotes]]
delimiter = '"'
escape = '\'

[[profiles]]
name = "c"
terminator = ""
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	set, err := NewLocalProfileStore().Load(m.Path(path))
	require.NoError(t, err)

	shell, err := set.ForPath("run.sh")
	require.NoError(t, err)
	assert.Equal(t, "#", shell.LineComment)
	assert.Equal(t, "\\", shell.LineContinuation)
	assert.Equal(t, []m.QuoteRule{{Delimiter: `"`, Escape: '\\'}}, shell.Quotes)
	assert.Equal(t, []string{"debug:"}, shell.DebugMarkers)

	c, _ := set.ByName("c")
	assert.Empty(t, c.Terminator)
	assert.True(t, c.CommentSplicing)
}

func TestLocalProfileStore_Errors(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		file    string
		content string
	}{
		{"missing name", "a.yaml", "profiles:\n  - extensions: [\".x\"]\n"},
		{"new profile without extensions", "b.yaml", "profiles:\n  - name: x\n"},
		{"long escape", "c.yaml", "profiles:\n  - name: go\n    quotes:\n      - { delimiter: \"'\", escape: \"ab\" }\n"},
		{"empty delimiter", "d.yaml", "profiles:\n  - name: go\n    quotes:\n      - { delimiter: \"\" }\n"},
		{"bad yaml", "e.yaml", "profiles: [\n"},
		{"bad toml", "f.toml", "markers = [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.file)
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o600))

			_, err := NewLocalProfileStore().Load(m.Path(path))
			assert.Error(t, err)
		})
	}

	_, err := NewLocalProfileStore().Load(m.Path(filepath.Join(dir, "missing.yaml")))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLocalProfileStore_DefaultConfigLookup(t *testing.T) {
	t.Chdir(t.TempDir())

	set, err := NewLocalProfileStore().Load("")
	require.NoError(t, err)

	goProfile, _ := set.ByName("go")
	assert.Equal(t, []string{"debug:", "[debug]"}, goProfile.DebugMarkers)

	require.NoError(t, os.WriteFile(".dbgc.toml", []byte(`markers = ["xx"]`), 0o600))

	set, err = NewLocalProfileStore().Load("")
	require.NoError(t, err)

	goProfile, _ = set.ByName("go")
	assert.Equal(t, []string{"xx"}, goProfile.DebugMarkers)
}

func TestLocalProfileStore_NewProfileKeepsBuiltinMarkers(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".dbgc.yaml")

	content := `profiles:
  - name: lua
    extensions: [".lua"]
    line_comment: "--"
    output_calls: [print]
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	set, err := NewLocalProfileStore().Load(m.Path(path))
	require.NoError(t, err)

	lua, ok := set.ByName("lua")
	require.True(t, ok)
	assert.Equal(t, []string{"debug:", "[debug]"}, lua.DebugMarkers)
}

func TestDefaultProfiles_RustLiterals(t *testing.T) {
	set, err := DefaultProfiles()
	require.NoError(t, err)

	rust, ok := set.ByName("rust")
	require.True(t, ok)

	assert.Contains(t, rust.Quotes, m.QuoteRule{Delimiter: "'", Escape: '\\', Char: true})
	assert.Contains(t, rust.Quotes, m.QuoteRule{Delimiter: `r#"`, Close: `"#`, Multiline: true})
}
