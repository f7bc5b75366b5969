// Package contextfmt turns a user-supplied context reference into the text
// blob embedded in a document prompt. A reference is a file, a directory, a
// glob pattern or, failing all of those, literal source text.
package contextfmt

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode/utf8"
)

// sniffLen is how many leading bytes are inspected to tell text from binary.
const sniffLen = 512

// ErrNoFiles is returned when a glob pattern or directory yields no readable text files.
var ErrNoFiles = errors.New("no readable text files")

// Formatter formats context references.
type Formatter struct {
	logger *slog.Logger
}

// New creates a Formatter. A nil logger discards skip notices.
func New(logger *slog.Logger) *Formatter {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Formatter{logger: logger}
}

// Format resolves ref and returns the formatted context.
//
// Files render as "\nFile: <path>\n<content>\n". Directories render every
// text file below them in lexical order, skipping hidden entries and binary
// files. Glob patterns render each match the same way. A binary file given
// on its own yields ErrNoFiles. Any other ref is returned unchanged as
// literal code.
func (f *Formatter) Format(ref string) (string, error) {
	if ref == "" {
		return "", nil
	}

	info, err := os.Stat(ref)
	switch {
	case err == nil && info.Mode().IsRegular():
		return f.formatPaths(ref, []string{ref})
	case err == nil && info.IsDir():
		return f.formatDir(ref)
	}

	if isGlob(ref) {
		matches, globErr := filepath.Glob(ref)
		if globErr == nil && len(matches) > 0 {
			return f.formatPaths(ref, matches)
		}
	}

	return ref, nil
}

func (f *Formatter) formatDir(root string) (string, error) {
	var paths []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			f.logger.Warn("Skipping unreadable context entry", "path", path, "error", err)
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if path != root && isHidden(d.Name()) {
			if d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if d.Type().IsRegular() {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("failed to walk context directory %s: %w", root, err)
	}

	return f.formatPaths(root, paths)
}

// formatPaths renders the text files among paths in lexical order.
func (f *Formatter) formatPaths(origin string, paths []string) (string, error) {
	sort.Strings(paths)

	var b strings.Builder
	rendered := 0
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil || !info.Mode().IsRegular() {
			continue
		}

		data, err := os.ReadFile(path)
		if err != nil {
			f.logger.Warn("Skipping unreadable context file", "path", path, "error", err)
			continue
		}
		if !isText(data) {
			f.logger.Debug("Skipping binary context file", "path", path)
			continue
		}

		b.WriteString(render(path, data))
		rendered++
	}

	if rendered == 0 {
		return "", fmt.Errorf("%w in %s", ErrNoFiles, origin)
	}

	f.logger.Debug("Formatted context", "origin", origin, "files", rendered, "bytes", b.Len())
	return b.String(), nil
}

func render(path string, data []byte) string {
	return "\nFile: " + path + "\n" + string(data) + "\n"
}

func isGlob(ref string) bool {
	return !strings.ContainsAny(ref, "\n") && strings.ContainsAny(ref, "*?[")
}

func isHidden(name string) bool {
	return strings.HasPrefix(name, ".") && name != "." && name != ".."
}

// isText reports whether data looks like UTF-8 text.
func isText(data []byte) bool {
	head := data
	if len(head) > sniffLen {
		head = head[:sniffLen]
	}
	if bytes.IndexByte(head, 0) >= 0 {
		return false
	}
	if strings.HasPrefix(http.DetectContentType(head), "text/") {
		return true
	}
	return utf8.Valid(data)
}
