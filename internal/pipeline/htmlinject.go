package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
	"strings"
)

// ErrPageRender indicates the page template failed to render.
var ErrPageRender = errors.New("page template rendering failed")

// CSSInjector defines the contract for CSS injection into HTML.
type CSSInjector interface {
	InjectCSS(ctx context.Context, htmlContent, cssContent string) string
}

// CSSInjection injects CSS as a <style> block into HTML content.
type CSSInjection struct{}

var _ CSSInjector = (*CSSInjection)(nil)

// InjectCSS adds cssContent to htmlContent as a <style> element: at the end
// of <head>, else at the start of <body>, else in front of the fragment.
// A canceled ctx or empty CSS leaves the HTML as is.
func (s *CSSInjection) InjectCSS(ctx context.Context, htmlContent, cssContent string) string {
	if cssContent == "" || ctx.Err() != nil {
		return htmlContent
	}
	pos := styleInsertPos(htmlContent)
	return htmlContent[:pos] + "<style>" + sanitizeCSS(cssContent) + "</style>" + htmlContent[pos:]
}

// styleInsertPos finds where a <style> element belongs in page, matching
// tag names case-insensitively.
func styleInsertPos(page string) int {
	lower := strings.ToLower(page)
	if i := strings.Index(lower, "</head>"); i >= 0 {
		return i
	}
	if i := strings.Index(lower, "<body"); i >= 0 {
		if end := strings.IndexByte(page[i:], '>'); end >= 0 {
			return i + end + 1
		}
	}
	return 0
}

// sanitizeCSS escapes "</" so the stylesheet cannot end the <style> block.
func sanitizeCSS(css string) string {
	return strings.ReplaceAll(css, "</", `<\/`)
}

// PageData holds the values a page template can reference.
type PageData struct {
	Lang        string
	Title       string
	Description string
	Tags        []string
	Date        string // display form
	DateISO     string // RFC 3339
	Body        template.HTML
}

// PageWrapper defines the contract for wrapping a fragment in a full page.
type PageWrapper interface {
	Wrap(ctx context.Context, data *PageData) (string, error)
}

// PageTemplate renders fragments into a standalone HTML page.
type PageTemplate struct {
	tmpl *template.Template
}

var _ PageWrapper = (*PageTemplate)(nil)

// NewPageTemplate parses tmplContent as an html/template.
func NewPageTemplate(tmplContent string) (*PageTemplate, error) {
	tmpl, err := template.New("page").Parse(tmplContent)
	if err != nil {
		return nil, fmt.Errorf("parsing page template: %w", err)
	}
	return &PageTemplate{tmpl: tmpl}, nil
}

// Wrap executes the template with data.
// Body is trusted: it is the converter's own output.
func (p *PageTemplate) Wrap(ctx context.Context, data *PageData) (string, error) {
	if data == nil {
		data = &PageData{}
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := p.tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("%w: %v", ErrPageRender, err)
	}
	return buf.String(), nil
}
