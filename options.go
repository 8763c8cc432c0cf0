package blogmark

import (
	"log/slog"
	"time"
)

// Option configures a Converter.
type Option func(*Converter)

// converterConfig holds internal configuration for Converter.
type converterConfig struct {
	timeout time.Duration
	logger  *slog.Logger

	// Assets
	styleInput   string // page style name, path or CSS content
	templateName string
	assetPath    string

	// Code blocks
	profile       string
	codeStyle     string
	codeAliases   map[string]string
	lineNumbers   bool
	lineHighlight bool
	languageLabel bool
	captions      bool

	// Directives
	tagName        string
	serverEmbeds   bool
	calloutAliases map[string]string

	// Document
	tocMinDepth  int
	tocMaxDepth  int
	emoji        bool
	unsafe       bool
	rewriteLinks bool
	timeZone     string
	dateFormat   string
}

// Defaults applied by NewConverter.
const (
	defaultTimeout     = 30 * time.Second
	DefaultTOCMinDepth = 2
	DefaultTOCMaxDepth = 6
)

func defaultConfig() converterConfig {
	return converterConfig{
		timeout:       defaultTimeout,
		logger:        slog.Default(),
		templateName:  DefaultTemplate,
		lineNumbers:   true,
		lineHighlight: true,
		languageLabel: true,
		captions:      true,
		serverEmbeds:  true,
		tocMinDepth:   DefaultTOCMinDepth,
		tocMaxDepth:   DefaultTOCMaxDepth,
	}
}

// WithTimeout bounds each conversion.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("blogmark: WithTimeout duration must be positive")
	}
	return func(c *Converter) {
		c.cfg.timeout = d
	}
}

// WithLogger sets the logger used for degraded-rendering warnings.
// A nil logger keeps slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(c *Converter) {
		if l != nil {
			c.cfg.logger = l
		}
	}
}

// WithStyle sets the page stylesheet for standalone output: a style name
// resolved by the asset loader, a path to a .css file, or CSS content.
func WithStyle(style string) Option {
	return func(c *Converter) {
		c.cfg.styleInput = style
	}
}

// WithTemplate sets the page template name resolved by the asset loader.
func WithTemplate(name string) Option {
	return func(c *Converter) {
		c.cfg.templateName = name
	}
}

// WithAssetPath loads styles and templates from dir, falling back to the
// embedded assets.
func WithAssetPath(dir string) Option {
	return func(c *Converter) {
		c.cfg.assetPath = dir
	}
}

// WithAssetLoader replaces the asset loader. It takes precedence over
// WithAssetPath.
func WithAssetLoader(loader AssetLoader) Option {
	return func(c *Converter) {
		c.publicAssetLoader = loader
	}
}

// WithProfile selects the code fence meta profile: "ranges", "caption",
// "prompt" (default) or "chroma".
func WithProfile(name string) Option {
	return func(c *Converter) {
		c.cfg.profile = name
	}
}

// WithCodeStyle sets the chroma style of the code stylesheet.
func WithCodeStyle(name string) Option {
	return func(c *Converter) {
		c.cfg.codeStyle = name
	}
}

// WithCodeAliases adds fence language aliases on top of the defaults.
func WithCodeAliases(aliases map[string]string) Option {
	return func(c *Converter) {
		c.cfg.codeAliases = aliases
	}
}

// WithLineNumbers toggles line numbers on multi-line code blocks.
func WithLineNumbers(on bool) Option {
	return func(c *Converter) {
		c.cfg.lineNumbers = on
	}
}

// WithLineHighlighting toggles the {1,3-5} highlighted lines.
func WithLineHighlighting(on bool) Option {
	return func(c *Converter) {
		c.cfg.lineHighlight = on
	}
}

// WithLanguageLabel toggles the language label in code block headers.
func WithLanguageLabel(on bool) Option {
	return func(c *Converter) {
		c.cfg.languageLabel = on
	}
}

// WithCaptions toggles code block captions.
func WithCaptions(on bool) Option {
	return func(c *Converter) {
		c.cfg.captions = on
	}
}

// WithDirectiveTag sets the element wrapping callouts. Default "aside".
func WithDirectiveTag(tag string) Option {
	return func(c *Converter) {
		c.cfg.tagName = tag
	}
}

// WithServerEmbeds renders YouTube embeds as iframes (true, default) or as
// <lite-youtube> elements for a client-side loader (false).
func WithServerEmbeds(on bool) Option {
	return func(c *Converter) {
		c.cfg.serverEmbeds = on
	}
}

// WithCalloutAliases maps extra directive names to callout kinds,
// e.g. {"info": "note"}.
func WithCalloutAliases(aliases map[string]string) Option {
	return func(c *Converter) {
		c.cfg.calloutAliases = aliases
	}
}

// WithTOCDepth bounds the headings listed by tables of contents.
func WithTOCDepth(minDepth, maxDepth int) Option {
	return func(c *Converter) {
		c.cfg.tocMinDepth = minDepth
		c.cfg.tocMaxDepth = maxDepth
	}
}

// WithEmoji enables :shortcode: emoji.
func WithEmoji(on bool) Option {
	return func(c *Converter) {
		c.cfg.emoji = on
	}
}

// WithUnsafe passes raw HTML in the Markdown through to the output.
func WithUnsafe(on bool) Option {
	return func(c *Converter) {
		c.cfg.unsafe = on
	}
}

// WithLinkRewriting rewrites relative links to .md files into .html links.
func WithLinkRewriting(on bool) Option {
	return func(c *Converter) {
		c.cfg.rewriteLinks = on
	}
}

// WithTimeZone sets the zone of frontmatter dates without an offset.
// Default "GMT".
func WithTimeZone(name string) Option {
	return func(c *Converter) {
		c.cfg.timeZone = name
	}
}

// WithDateFormat sets the display format of the page date, as tokens
// ("MMMM D, YYYY") or a preset ("iso", "european", "us", "long").
func WithDateFormat(format string) Option {
	return func(c *Converter) {
		c.cfg.dateFormat = format
	}
}
