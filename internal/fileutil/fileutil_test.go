package fileutil_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/alnah/go-blogmark/internal/fileutil"
)

// ---------------------------------------------------------------------------
// TestExists - FileExists and DirExists over one tree
// ---------------------------------------------------------------------------

func TestExists(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	post := filepath.Join(root, "hello.md")
	if err := os.WriteFile(post, []byte("# Hello"), 0o644); err != nil {
		t.Fatal(err)
	}
	posts := filepath.Join(root, "posts")
	if err := os.Mkdir(posts, 0o755); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name     string
		path     string
		wantFile bool
		wantDir  bool
	}{
		{name: "post file", path: post, wantFile: true},
		{name: "posts directory", path: posts, wantDir: true},
		{name: "missing", path: filepath.Join(root, "draft.md")},
		{name: "empty path"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := fileutil.FileExists(tt.path); got != tt.wantFile {
				t.Errorf("FileExists(%q) = %v, want %v", tt.path, got, tt.wantFile)
			}
			if got := fileutil.DirExists(tt.path); got != tt.wantDir {
				t.Errorf("DirExists(%q) = %v, want %v", tt.path, got, tt.wantDir)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestStyleValueKinds - IsFilePath and IsCSS split a --style value into a
// name, a path, or inline CSS
// ---------------------------------------------------------------------------

func TestStyleValueKinds(t *testing.T) {
	t.Parallel()

	tests := []struct {
		value    string
		wantPath bool
		wantCSS  bool
	}{
		{value: "default"},
		{value: "dark-mode"},
		{value: "serif_v2"},
		{value: "theme.min"},
		{value: ""},
		{value: "./blog.css", wantPath: true},
		{value: "../shared/blog.css", wantPath: true},
		{value: "/srv/www/blog.css", wantPath: true},
		{value: "themes/dark", wantPath: true},
		{value: `C:\site\blog.css`, wantPath: true},
		{value: "D:/site/blog.css", wantPath: true},
		{value: "/", wantPath: true},
		{value: "article { max-width: 70ch }", wantCSS: true},
		{value: "h1 { margin: 0 } p { margin: 1em 0 }", wantCSS: true},
		{value: "body {", wantCSS: true},
		{value: "a[href^='/'] { color: teal }", wantPath: true, wantCSS: true},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			t.Parallel()

			if got := fileutil.IsFilePath(tt.value); got != tt.wantPath {
				t.Errorf("IsFilePath(%q) = %v, want %v", tt.value, got, tt.wantPath)
			}
			if got := fileutil.IsCSS(tt.value); got != tt.wantCSS {
				t.Errorf("IsCSS(%q) = %v, want %v", tt.value, got, tt.wantCSS)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestIsMarkdown - Markdown extension detection
// ---------------------------------------------------------------------------

func TestIsMarkdown(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path string
		want bool
	}{
		{"post.md", true},
		{"notes/post.markdown", true},
		{"README.MD", true},
		{"post.mdx", false},
		{"post.html", false},
		{"md", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			t.Parallel()

			if got := fileutil.IsMarkdown(tt.path); got != tt.want {
				t.Errorf("IsMarkdown(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestOutputPath - Page path derived from the source path
// ---------------------------------------------------------------------------

func TestOutputPath(t *testing.T) {
	t.Parallel()

	root := filepath.Join("content", "posts")

	tests := []struct {
		name    string
		src     string
		outDir  string
		want    string
		wantErr bool
	}{
		{
			name: "next to source",
			src:  filepath.Join(root, "hello.md"),
			want: filepath.Join(root, "hello.html"),
		},
		{
			name:   "mirrored under output dir",
			src:    filepath.Join(root, "2024", "hello.markdown"),
			outDir: "public",
			want:   filepath.Join("public", "2024", "hello.html"),
		},
		{
			name:    "source outside root",
			src:     filepath.Join("content", "other.md"),
			outDir:  "public",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := fileutil.OutputPath(tt.src, root, tt.outDir)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("OutputPath() = %q, want error", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("OutputPath() unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("OutputPath() = %q, want %q", got, tt.want)
			}
		})
	}
}
