package assets

import (
	"errors"
	"strings"
	"testing"
)

func TestLoadStyle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		styleName string
		wantErr   error
	}{
		{name: "default style", styleName: DefaultStyleName},
		{name: "nonexistent style", styleName: "nonexistent", wantErr: ErrStyleNotFound},
		{name: "empty name", styleName: "", wantErr: ErrInvalidAssetName},
		{name: "path traversal", styleName: "../secret", wantErr: ErrInvalidAssetName},
		{name: "extension", styleName: "default.css", wantErr: ErrInvalidAssetName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := LoadStyle(tt.styleName)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("LoadStyle(%q) error = %v, want %v", tt.styleName, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("LoadStyle(%q) unexpected error: %v", tt.styleName, err)
			}
			if got == "" {
				t.Errorf("LoadStyle(%q) returned empty content", tt.styleName)
			}
		})
	}
}

func TestLoadStyle_CoversRenderedClasses(t *testing.T) {
	t.Parallel()

	css, err := LoadStyle(DefaultStyleName)
	if err != nil {
		t.Fatalf("LoadStyle() unexpected error: %v", err)
	}
	for _, class := range []string{
		".callout", ".callout-hint", ".callout-content", ".callout-title",
		".callout-toc-toggle", ".toc-list", ".directive-embed", ".directive-youtube",
		".highlight", ".highlight-header", ".highlight-line", ".line-prompt", ".line-number",
	} {
		if !strings.Contains(css, class) {
			t.Errorf("default style has no rule for %s", class)
		}
	}
}

func TestLoadTemplate(t *testing.T) {
	t.Parallel()

	got, err := LoadTemplate(DefaultTemplateName)
	if err != nil {
		t.Fatalf("LoadTemplate() unexpected error: %v", err)
	}
	for _, want := range []string{"<!DOCTYPE html>", "</head>", "{{ .Title }}", "{{ .Body }}"} {
		if !strings.Contains(got, want) {
			t.Errorf("page template missing %q", want)
		}
	}

	if _, err := LoadTemplate("missing"); !errors.Is(err, ErrTemplateNotFound) {
		t.Errorf("LoadTemplate(missing) error = %v, want ErrTemplateNotFound", err)
	}
}
