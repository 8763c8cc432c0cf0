package pipeline

import (
	"context"
	"errors"
	"html/template"
	"strings"
	"testing"

	"github.com/alnah/go-blogmark/internal/assets"
)

func TestSanitizeCSS(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"":                           "",
		"pre { tab-size: 4 }":        "pre { tab-size: 4 }",
		"</style>":                   `<\/style>`,
		"</STYLE><script>":           `<\/STYLE><script>`,
		"</sTyLe>":                   `<\/sTyLe>`,
		"a::after { content: '</' }": `a::after { content: '<\/' }`,
		"</</style>":                 `<\/<\/style>`,
	}

	for in, want := range tests {
		if got := sanitizeCSS(in); got != want {
			t.Errorf("sanitizeCSS(%q) = %q, want %q", in, got, want)
		}
	}
}

// In each page, "|" marks where the <style> element should land.
func TestInjectCSS(t *testing.T) {
	t.Parallel()

	const css = ".callout { border-left: 4px solid }"

	pages := []struct {
		name string
		page string
	}{
		{name: "end of head", page: "<html><head><title>Post</title>|</head><body><p>Hi</p></body></html>"},
		{name: "upper-case head", page: "<html><HEAD>|</HEAD><body></body></html>"},
		{name: "start of body", page: "<html><body>|<article>Hi</article></body></html>"},
		{name: "body with attributes", page: `<html><body class="post" data-theme="dark">|<p>Hi</p></body></html>`},
		{name: "upper-case body", page: "<BODY>|<p>Hi</p></BODY>"},
		{name: "bare fragment", page: "|<h2 id=\"intro\">Intro</h2><p>Hi</p>"},
		{name: "non-ASCII text", page: "<head>|</head><body>Café ☕</body>"},
	}

	injector := &CSSInjection{}

	for _, tt := range pages {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			before, after, _ := strings.Cut(tt.page, "|")
			got := injector.InjectCSS(context.Background(), before+after, css)
			want := before + "<style>" + css + "</style>" + after
			if got != want {
				t.Errorf("InjectCSS()\n got %q\nwant %q", got, want)
			}
		})
	}
}

func TestInjectCSS_Unchanged(t *testing.T) {
	t.Parallel()

	const page = "<html><head></head><body><p>Hi</p></body></html>"
	injector := &CSSInjection{}

	canceled, cancel := context.WithCancel(context.Background())
	cancel()

	if got := injector.InjectCSS(context.Background(), page, ""); got != page {
		t.Errorf("empty CSS changed the page: %q", got)
	}
	if got := injector.InjectCSS(canceled, page, "p { margin: 0 }"); got != page {
		t.Errorf("canceled context changed the page: %q", got)
	}
}

func TestInjectCSS_ClosingTagInCSS(t *testing.T) {
	t.Parallel()

	got := (&CSSInjection{}).InjectCSS(context.Background(), "<p>Hi</p>", "</style><script>alert(1)</script>")
	want := `<style><\/style><script>alert(1)<\/script></style><p>Hi</p>`
	if got != want {
		t.Errorf("InjectCSS() = %q, want %q", got, want)
	}
}

func TestPageTemplate_Wrap(t *testing.T) {
	t.Parallel()

	tmplContent, err := assets.LoadTemplate(assets.DefaultTemplateName)
	if err != nil {
		t.Fatalf("failed to load page template: %v", err)
	}
	page, err := NewPageTemplate(tmplContent)
	if err != nil {
		t.Fatalf("NewPageTemplate() error = %v", err)
	}

	tests := []struct {
		name        string
		data        *PageData
		wantContain []string
		wantAbsent  []string
	}{
		{
			name: "full metadata",
			data: &PageData{
				Lang:        "fr",
				Title:       "Hello & welcome",
				Description: "A first post",
				Tags:        []string{"go", "markdown"},
				Date:        "March 1, 2024",
				DateISO:     "2024-03-01T00:00:00Z",
				Body:        template.HTML(`<p class="lead">Body</p>`),
			},
			wantContain: []string{
				`<html lang="fr">`,
				`<title>Hello &amp; welcome</title>`,
				`<meta name="description" content="A first post">`,
				`<meta property="article:tag" content="go">`,
				`<meta property="article:tag" content="markdown">`,
				`<h1 class="post-title">Hello &amp; welcome</h1>`,
				`<time class="post-date" datetime="2024-03-01T00:00:00Z">March 1, 2024</time>`,
				`<p class="lead">Body</p>`,
			},
		},
		{
			name: "no title skips header",
			data: &PageData{Body: template.HTML("<p>x</p>")},
			wantContain: []string{
				`<html lang="en">`,
				"<p>x</p>",
			},
			wantAbsent: []string{`class="post-header"`, `name="description"`},
		},
		{
			name:        "nil data renders empty page",
			data:        nil,
			wantContain: []string{"<!DOCTYPE html>", "<title></title>"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := page.Wrap(context.Background(), tt.data)
			if err != nil {
				t.Fatalf("Wrap() error = %v", err)
			}
			for _, want := range tt.wantContain {
				if !strings.Contains(got, want) {
					t.Errorf("Wrap() missing %q in:\n%s", want, got)
				}
			}
			for _, absent := range tt.wantAbsent {
				if strings.Contains(got, absent) {
					t.Errorf("Wrap() should not contain %q", absent)
				}
			}
		})
	}
}

func TestPageTemplate_ContextCancellation(t *testing.T) {
	t.Parallel()

	page, err := NewPageTemplate("<body>{{ .Body }}</body>")
	if err != nil {
		t.Fatalf("NewPageTemplate() error = %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = page.Wrap(ctx, &PageData{})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Wrap() error = %v, want context.Canceled", err)
	}
}

func TestPageTemplate_Errors(t *testing.T) {
	t.Parallel()

	t.Run("parse error", func(t *testing.T) {
		t.Parallel()

		if _, err := NewPageTemplate("{{ .Title "); err == nil {
			t.Error("NewPageTemplate() expected error for unterminated action")
		}
	})

	t.Run("execution error", func(t *testing.T) {
		t.Parallel()

		page, err := NewPageTemplate("{{ .Missing }}")
		if err != nil {
			t.Fatalf("NewPageTemplate() error = %v", err)
		}
		_, err = page.Wrap(context.Background(), &PageData{})
		if !errors.Is(err, ErrPageRender) {
			t.Errorf("Wrap() error = %v, want ErrPageRender", err)
		}
	})
}
