package blogmark

import (
	"context"
	"fmt"
	"html/template"
	"os"
	"strings"
	"time"

	"github.com/alnah/go-blogmark/internal/dateutil"
	"github.com/alnah/go-blogmark/internal/directive"
	"github.com/alnah/go-blogmark/internal/fileutil"
	"github.com/alnah/go-blogmark/internal/highlight"
	"github.com/alnah/go-blogmark/internal/pipeline"
	"github.com/alnah/go-blogmark/internal/toc"
)

// Compile-time interface implementation checks.
var (
	_ pipeline.MarkdownPreprocessor = (*pipeline.CommonMarkPreprocessor)(nil)
	_ pipeline.HTMLConverter        = (*pipeline.GoldmarkConverter)(nil)
	_ pipeline.CSSInjector          = (*pipeline.CSSInjection)(nil)
	_ pipeline.PageWrapper          = (*pipeline.PageTemplate)(nil)
)

// Converter orchestrates the Markdown-to-HTML pipeline.
// Create with NewConverter and call Convert from any number of goroutines.
type Converter struct {
	cfg               converterConfig
	publicAssetLoader AssetLoader // from WithAssetLoader
	assetLoader       AssetLoader
	preprocessor      pipeline.MarkdownPreprocessor
	htmlConverter     pipeline.HTMLConverter
	cssInjector       pipeline.CSSInjector
	pageWrapper       pipeline.PageWrapper
	zone              *time.Location
	stylesheet        string
}

// NewConverter creates a Converter with default configuration.
// Use options to customize behavior (e.g., WithProfile, WithTOCDepth, WithStyle).
// Returns error if an option is invalid or asset loading fails.
func NewConverter(opts ...Option) (*Converter, error) {
	c := &Converter{
		cfg:          defaultConfig(),
		preprocessor: &pipeline.CommonMarkPreprocessor{},
		cssInjector:  &pipeline.CSSInjection{},
	}

	for _, opt := range opts {
		opt(c)
	}

	if err := c.cfg.validateTOCDepth(); err != nil {
		return nil, err
	}

	zone, err := dateutil.LoadZone(c.cfg.timeZone)
	if err != nil {
		return nil, err
	}
	c.zone = zone

	if _, err := dateutil.Format(time.Time{}, c.cfg.dateFormat); err != nil {
		return nil, err
	}

	if c.cfg.tagName != "" {
		if _, err := directive.NewHint(c.cfg.tagName, nil); err != nil {
			return nil, err
		}
	}

	aliases, err := parseCalloutAliases(c.cfg.calloutAliases)
	if err != nil {
		return nil, err
	}

	profile, err := highlight.ParseProfile(c.cfg.profile)
	if err != nil {
		return nil, err
	}

	if err := c.resolveAssets(); err != nil {
		return nil, err
	}

	codeCSS, err := CSS(c.cfg.codeStyle)
	if err != nil {
		return nil, err
	}
	c.stylesheet += "\n" + codeCSS

	highlighter := highlight.New(
		highlight.WithProfile(profile),
		highlight.WithAliases(c.cfg.codeAliases),
		highlight.WithStyle(c.codeStyle()),
		highlight.WithLineNumbers(c.cfg.lineNumbers),
		highlight.WithLineHighlighting(c.cfg.lineHighlight),
		highlight.WithLanguageLabel(c.cfg.languageLabel),
		highlight.WithCaption(c.cfg.captions),
		highlight.WithLogger(c.cfg.logger),
	)

	// Create the HTML converter if not injected (e.g., by tests)
	if c.htmlConverter == nil {
		c.htmlConverter = pipeline.NewGoldmarkConverter(pipeline.ConverterOptions{
			Directives: directive.Options{
				TagName:        c.cfg.tagName,
				Server:         c.cfg.serverEmbeds,
				CalloutAliases: aliases,
				TOCMinDepth:    c.cfg.tocMinDepth,
				TOCMaxDepth:    c.cfg.tocMaxDepth,
				Logger:         c.cfg.logger,
			},
			Highlighter: highlighter,
			TOCMinDepth: c.cfg.tocMinDepth,
			TOCMaxDepth: c.cfg.tocMaxDepth,
			Emoji:       c.cfg.emoji,
			Unsafe:      c.cfg.unsafe,
			Logger:      c.cfg.logger,
		})
	}

	return c, nil
}

// Convert renders one document. The context is used for cancellation and
// timeout. Recovers from internal panics to prevent crashes from
// propagating to callers.
func (c *Converter) Convert(ctx context.Context, input Input) (result *Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("internal error: %v", r)
		}
	}()

	if input.Markdown == "" {
		return nil, ErrEmptyMarkdown
	}

	ctx, cancel := context.WithTimeout(ctx, c.cfg.timeout)
	defer cancel()

	mdContent := c.preprocessor.PreprocessMarkdown(ctx, input.Markdown)
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	doc, err := c.htmlConverter.ToHTML(ctx, mdContent)
	if err != nil {
		return nil, fmt.Errorf("converting to HTML: %w", err)
	}

	fm, err := c.frontmatter(doc.Frontmatter)
	if err != nil {
		return nil, err
	}

	htmlContent := doc.HTML
	if c.cfg.rewriteLinks {
		htmlContent, err = pipeline.RewriteMarkdownLinks(htmlContent)
		if err != nil {
			return nil, fmt.Errorf("rewriting links: %w", err)
		}
	}

	res := &Result{
		Headings:    toHeadings(doc.Headings),
		TOC:         c.buildTOC(doc.Headings),
		Frontmatter: fm,
	}

	if input.Standalone {
		htmlContent, err = c.wrapPage(ctx, htmlContent, input, fm)
		if err != nil {
			return nil, err
		}
	}

	res.HTML = []byte(htmlContent)
	return res, nil
}

// Stylesheet returns the page style followed by the code style, as inlined
// into standalone pages.
func (c *Converter) Stylesheet() string {
	return c.stylesheet
}

// CSS returns the stylesheet for highlighted code blocks using the named
// chroma style. An empty name uses DefaultCodeStyle.
func CSS(style string) (string, error) {
	var buf strings.Builder
	if err := highlight.WriteCSS(&buf, style); err != nil {
		return "", publicAssetError(err, ErrStyleNotFound)
	}
	return buf.String(), nil
}

// CodeStyles lists the chroma style names accepted by CSS and WithCodeStyle.
func CodeStyles() []string {
	return highlight.StyleNames()
}

func (c *Converter) codeStyle() string {
	if c.cfg.codeStyle == "" {
		return DefaultCodeStyle
	}
	return c.cfg.codeStyle
}

// resolveAssets sets up the asset loader, the page stylesheet and the page
// template.
func (c *Converter) resolveAssets() error {
	if c.publicAssetLoader != nil {
		c.assetLoader = c.publicAssetLoader
	} else {
		loader, err := NewAssetLoader(c.cfg.assetPath)
		if err != nil {
			return err
		}
		c.assetLoader = loader
	}

	style, err := c.resolveStyle()
	if err != nil {
		return err
	}
	c.stylesheet = style

	tmpl, err := c.assetLoader.LoadTemplate(c.cfg.templateName)
	if err != nil {
		return fmt.Errorf("loading template %q: %w", c.cfg.templateName, err)
	}
	page, err := pipeline.NewPageTemplate(tmpl)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPageRender, err)
	}
	c.pageWrapper = page
	return nil
}

// resolveStyle resolves the style input (name, path, or CSS content) to CSS content.
func (c *Converter) resolveStyle() (string, error) {
	input := c.cfg.styleInput
	if input == "" {
		input = DefaultStyle
	}

	// CSS content? (contains {)
	if fileutil.IsCSS(input) {
		return input, nil
	}

	// File path? (contains / or \)
	if fileutil.IsFilePath(input) {
		content, err := os.ReadFile(input) // #nosec G304 -- user-provided path
		if err != nil {
			return "", fmt.Errorf("loading style file %q: %w", input, err)
		}
		return string(content), nil
	}

	css, err := c.assetLoader.LoadStyle(input)
	if err != nil {
		return "", fmt.Errorf("loading style %q: %w", input, err)
	}
	return css, nil
}

// frontmatter converts decoded frontmatter, parsing the date in the
// configured zone.
func (c *Converter) frontmatter(fm *pipeline.Frontmatter) (*Frontmatter, error) {
	if fm == nil {
		return nil, nil
	}
	out := &Frontmatter{
		Title:       fm.Title,
		Description: fm.Description,
		Tags:        fm.Tags,
		Draft:       fm.Draft,
		Extra:       fm.Extra,
	}
	if fm.Date != "" {
		date, err := dateutil.ParseDate(fm.Date, c.zone)
		if err != nil {
			return nil, fmt.Errorf("frontmatter date: %w", err)
		}
		out.Date = date
	}
	return out, nil
}

// buildTOC nests the headings for the result. Headings that cannot be
// nested leave the result without a TOC; only [[toc]] and ::toc fail
// the document.
func (c *Converter) buildTOC(headings []toc.Heading) []*TOCEntry {
	tree, err := toc.Build(toc.Filter(headings, c.cfg.tocMinDepth, c.cfg.tocMaxDepth), c.cfg.tocMaxDepth)
	if err != nil {
		c.cfg.logger.Debug("result has no table of contents", "error", err)
		return nil
	}
	return toTOCEntries(tree)
}

func (c *Converter) wrapPage(ctx context.Context, body string, input Input, fm *Frontmatter) (string, error) {
	data, err := toPageData(input, fm, c.cfg.dateFormat)
	if err != nil {
		return "", err
	}
	data.Body = template.HTML(body) // #nosec G203 -- rendered by goldmark
	page, err := c.pageWrapper.Wrap(ctx, data)
	if err != nil {
		return "", err
	}

	css := c.stylesheet
	if input.CSS != "" {
		css += "\n" + input.CSS
	}
	page = c.cssInjector.InjectCSS(ctx, page, css)
	if ctx.Err() != nil {
		return "", ctx.Err()
	}
	return page, nil
}

func (cfg converterConfig) validateTOCDepth() error {
	if cfg.tocMinDepth < 1 || cfg.tocMinDepth > toc.MaxLevel {
		return fmt.Errorf("%w: min depth %d (must be 1-%d)", ErrInvalidTOCDepth, cfg.tocMinDepth, toc.MaxLevel)
	}
	if cfg.tocMaxDepth < 1 || cfg.tocMaxDepth > toc.MaxLevel {
		return fmt.Errorf("%w: max depth %d (must be 1-%d)", ErrInvalidTOCDepth, cfg.tocMaxDepth, toc.MaxLevel)
	}
	if cfg.tocMinDepth > cfg.tocMaxDepth {
		return fmt.Errorf("%w: min depth %d exceeds max depth %d", ErrInvalidTOCDepth, cfg.tocMinDepth, cfg.tocMaxDepth)
	}
	return nil
}

// parseCalloutAliases resolves alias targets to callout kinds.
func parseCalloutAliases(aliases map[string]string) (map[string]directive.CalloutKind, error) {
	if len(aliases) == 0 {
		return nil, nil
	}
	out := make(map[string]directive.CalloutKind, len(aliases))
	for name, target := range aliases {
		kind, ok := directive.ParseCalloutKind(target)
		if !ok {
			return nil, fmt.Errorf("%w: %q (alias %q)", ErrUnknownCalloutKind, target, name)
		}
		out[name] = kind
	}
	return out, nil
}
