// Package fileutil provides file and path utility functions.
package fileutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// markdownExtensions lists the source extensions, lower-cased.
var markdownExtensions = map[string]bool{
	".md":       true,
	".markdown": true,
}

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// DirExists returns true if the path exists and is a directory.
func DirExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// IsFilePath returns true if the string looks like a file path rather than a name.
// A string containing path separators (/, \) is treated as a path.
//
// Examples:
//   - "default" -> false (name)
//   - "./custom.css" -> true (relative path)
//   - "../shared/style.css" -> true (parent path)
//   - "/absolute/path.css" -> true (absolute)
//   - "C:\windows\path.css" -> true (Windows)
//   - "my-style" -> false (hyphenated name)
//   - "sub/dir" -> true (contains separator)
func IsFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}

// IsCSS returns true if the string looks like CSS content rather than a
// name or a path.
func IsCSS(s string) bool {
	return strings.Contains(s, "{")
}

// IsMarkdown reports whether path has a Markdown extension (.md, .markdown),
// case-insensitively.
func IsMarkdown(path string) bool {
	return markdownExtensions[strings.ToLower(filepath.Ext(path))]
}

// OutputPath returns the .html path for the Markdown file src.
// With an empty outDir the page sits next to its source. Otherwise src's
// position below root is mirrored under outDir.
func OutputPath(src, root, outDir string) (string, error) {
	name := strings.TrimSuffix(src, filepath.Ext(src)) + ".html"
	if outDir == "" {
		return name, nil
	}

	rel, err := filepath.Rel(root, name)
	if err != nil {
		return "", fmt.Errorf("resolving %q against %q: %w", src, root, err)
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%q is outside %q", src, root)
	}
	return filepath.Join(outDir, rel), nil
}
