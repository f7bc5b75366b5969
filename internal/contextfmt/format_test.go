package contextfmt_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/phrazzld/devai/internal/contextfmt"
	"github.com/phrazzld/devai/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeFile creates path below dir with the given content.
func writeFile(t *testing.T, dir, name string, content []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, content, 0o600))
	return path
}

func TestFormatEmpty(t *testing.T) {
	out, err := contextfmt.New(nil).Format("")

	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestFormatRawText(t *testing.T) {
	tests := []string{
		"def foo(): pass",
		"x = values[0]",
		"int *p = NULL;",
		"line one\nline two",
	}

	for _, code := range tests {
		t.Run(code, func(t *testing.T) {
			out, err := contextfmt.New(nil).Format(code)

			require.NoError(t, err)
			assert.Equal(t, code, out, "Literal code should pass through unchanged")
		})
	}
}

func TestFormatFile(t *testing.T) {
	path := writeFile(t, t.TempDir(), "main.py", []byte("print('hi')"))

	out, err := contextfmt.New(nil).Format(path)

	require.NoError(t, err)
	assert.Equal(t, "\nFile: "+path+"\nprint('hi')\n", out)
}

func TestFormatBinaryFile(t *testing.T) {
	path := writeFile(t, t.TempDir(), "logo.png", []byte{0x89, 'P', 'N', 'G', 0x00, 0x01})

	out, err := contextfmt.New(nil).Format(path)

	assert.ErrorIs(t, err, contextfmt.ErrNoFiles)
	assert.Empty(t, out, "Binary content must not reach the prompt")
}

func TestFormatDirectory(t *testing.T) {
	dir := t.TempDir()
	b := writeFile(t, dir, "pkg/b.go", []byte("package pkg"))
	a := writeFile(t, dir, "a.md", []byte("# A"))
	writeFile(t, dir, ".git/config", []byte("[core]"))
	writeFile(t, dir, ".env", []byte("SECRET=1"))
	writeFile(t, dir, "logo.png", []byte{0x89, 'P', 'N', 'G', 0x00, 0x01})

	l, buf := logger.GetTestLogger(t)
	out, err := contextfmt.New(l).Format(dir)

	require.NoError(t, err)
	assert.Equal(t, "\nFile: "+a+"\n# A\n"+"\nFile: "+b+"\npackage pkg\n", out)
	assert.NotContains(t, out, "[core]", "Hidden directories should be skipped")
	assert.NotContains(t, out, "SECRET", "Hidden files should be skipped")
	logger.AssertLogContains(t, buf, "Skipping binary context file")
}

func TestFormatDirectoryIsDeterministic(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"z.txt", "m.txt", "a.txt", "sub/q.txt"} {
		writeFile(t, dir, name, []byte(name))
	}

	first, err := contextfmt.New(nil).Format(dir)
	require.NoError(t, err)
	second, err := contextfmt.New(nil).Format(dir)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestFormatDirectoryWithoutText(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "blob.bin", []byte{0x00, 0x01, 0x02})

	_, err := contextfmt.New(nil).Format(dir)

	assert.ErrorIs(t, err, contextfmt.ErrNoFiles)
}

func TestFormatGlob(t *testing.T) {
	dir := t.TempDir()
	one := writeFile(t, dir, "one.go", []byte("package one"))
	two := writeFile(t, dir, "two.go", []byte("package two"))
	writeFile(t, dir, "notes.txt", []byte("not matched"))

	out, err := contextfmt.New(nil).Format(filepath.Join(dir, "*.go"))

	require.NoError(t, err)
	assert.Equal(t, "\nFile: "+one+"\npackage one\n"+"\nFile: "+two+"\npackage two\n", out)
}
