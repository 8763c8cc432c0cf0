package blogmark

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alnah/go-blogmark/internal/assets"
	"github.com/alnah/go-blogmark/internal/highlight"
)

func TestNewAssetLoader_EmptyPath(t *testing.T) {
	t.Parallel()

	loader, err := NewAssetLoader("")
	if err != nil {
		t.Fatalf("NewAssetLoader(\"\") error = %v", err)
	}

	css, err := loader.LoadStyle(DefaultStyle)
	if err != nil {
		t.Errorf("LoadStyle(%q) error = %v", DefaultStyle, err)
	}
	if css == "" {
		t.Error("LoadStyle returned empty CSS for default style")
	}

	tmpl, err := loader.LoadTemplate(DefaultTemplate)
	if err != nil {
		t.Errorf("LoadTemplate(%q) error = %v", DefaultTemplate, err)
	}
	if !strings.Contains(tmpl, "{{ .Body }}") {
		t.Error("LoadTemplate returned a template without a body slot")
	}
}

func TestNewAssetLoader_InvalidPath(t *testing.T) {
	t.Parallel()

	_, err := NewAssetLoader("/nonexistent/path/that/does/not/exist")
	if !errors.Is(err, ErrInvalidAssetPath) {
		t.Errorf("NewAssetLoader() error = %v, want ErrInvalidAssetPath", err)
	}
}

func TestNewAssetLoader_CustomOverrides(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	stylesDir := filepath.Join(tmpDir, "styles")
	templatesDir := filepath.Join(tmpDir, "templates")
	for _, dir := range []string{stylesDir, templatesDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			t.Fatal(err)
		}
	}

	customCSS := "body { color: rebeccapurple; }"
	customPage := "<html><head></head><body>{{ .Body }}</body></html>"
	if err := os.WriteFile(filepath.Join(stylesDir, "default.css"), []byte(customCSS), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(templatesDir, "page.html"), []byte(customPage), 0o644); err != nil {
		t.Fatal(err)
	}

	loader, err := NewAssetLoader(tmpDir)
	if err != nil {
		t.Fatalf("NewAssetLoader() error = %v", err)
	}

	css, err := loader.LoadStyle(DefaultStyle)
	if err != nil {
		t.Fatalf("LoadStyle() error = %v", err)
	}
	if css != customCSS {
		t.Errorf("LoadStyle() = %q, want custom override", css)
	}

	tmpl, err := loader.LoadTemplate(DefaultTemplate)
	if err != nil {
		t.Fatalf("LoadTemplate() error = %v", err)
	}
	if tmpl != customPage {
		t.Errorf("LoadTemplate() = %q, want custom override", tmpl)
	}
}

func TestAssetLoader_NotFound(t *testing.T) {
	t.Parallel()

	loader, err := NewAssetLoader("")
	if err != nil {
		t.Fatalf("NewAssetLoader() error = %v", err)
	}

	tests := []struct {
		name    string
		load    func() error
		wantErr error
	}{
		{
			name:    "style",
			load:    func() error { _, err := loader.LoadStyle("nonexistent"); return err },
			wantErr: ErrStyleNotFound,
		},
		{
			name:    "invalid style name",
			load:    func() error { _, err := loader.LoadStyle("../etc/passwd"); return err },
			wantErr: ErrStyleNotFound,
		},
		{
			name:    "template",
			load:    func() error { _, err := loader.LoadTemplate("nonexistent"); return err },
			wantErr: ErrTemplateNotFound,
		},
		{
			name:    "invalid template name",
			load:    func() error { _, err := loader.LoadTemplate("../page"); return err },
			wantErr: ErrTemplateNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if err := tt.load(); !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestPublicAssetError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		err     error
		missing error
		want    error
	}{
		{name: "nil", err: nil, missing: ErrStyleNotFound, want: nil},
		{name: "missing style", err: assets.ErrStyleNotFound, missing: ErrStyleNotFound, want: ErrStyleNotFound},
		{name: "missing template", err: assets.ErrTemplateNotFound, missing: ErrTemplateNotFound, want: ErrTemplateNotFound},
		{name: "bad template name", err: assets.ErrInvalidAssetName, missing: ErrTemplateNotFound, want: ErrTemplateNotFound},
		{name: "bad name without lookup", err: assets.ErrInvalidAssetName, want: assets.ErrInvalidAssetName},
		{name: "bad base path", err: assets.ErrInvalidBasePath, want: ErrInvalidAssetPath},
		{name: "symlink escape", err: assets.ErrPathTraversal, missing: ErrStyleNotFound, want: ErrInvalidAssetPath},
		{name: "unknown code style", err: highlight.ErrStyleNotFound, missing: ErrStyleNotFound, want: ErrStyleNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := publicAssetError(tt.err, tt.missing)
			if tt.want == nil {
				if got != nil {
					t.Fatalf("publicAssetError() = %v, want nil", got)
				}
				return
			}
			if !errors.Is(got, tt.want) {
				t.Errorf("publicAssetError() = %v, want %v", got, tt.want)
			}
			if got.Error() != tt.err.Error() {
				t.Errorf("message = %q, want %q", got.Error(), tt.err.Error())
			}
		})
	}
}

func TestPublicAssetError_HidesInternal(t *testing.T) {
	t.Parallel()

	err := publicAssetError(fmt.Errorf("%w: %q", assets.ErrStyleNotFound, "serif"), ErrStyleNotFound)
	if errors.Is(err, assets.ErrStyleNotFound) {
		t.Error("internal sentinel reachable through Unwrap")
	}
	if !strings.Contains(err.Error(), `"serif"`) {
		t.Errorf("message %q lost the style name", err)
	}
}
