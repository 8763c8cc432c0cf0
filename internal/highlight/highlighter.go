// Package highlight renders fenced code blocks as decorated, syntax
// highlighted HTML using chroma.
package highlight

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"sync"

	"github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/yuin/goldmark/util"
)

// ErrStyleNotFound is returned for an unknown chroma style name.
var ErrStyleNotFound = errors.New("highlight style not found")

// DefaultStyle is the chroma style used for generated stylesheets.
const DefaultStyle = "github"

// plainLanguage is the language name of code rendered without a lexer.
const plainLanguage = "text"

// DefaultAliases maps fence languages to chroma lexer names.
func DefaultAliases() map[string]string {
	return map[string]string{
		"conf":    "ini",
		"shell":   "bash",
		"console": "bash",
		"yml":     "yaml",
	}
}

type config struct {
	profile         Profile
	aliases         map[string]string
	style           string
	showLineNumbers bool
	highlightLines  bool
	showLanguage    bool
	showCaption     bool
	logger          *slog.Logger
}

// Option configures a Highlighter.
type Option func(*config)

// WithProfile selects the fence meta profile.
func WithProfile(p Profile) Option {
	return func(c *config) { c.profile = p }
}

// WithAliases adds language aliases on top of DefaultAliases.
func WithAliases(aliases map[string]string) Option {
	return func(c *config) {
		for k, v := range aliases {
			c.aliases[strings.ToLower(k)] = strings.ToLower(v)
		}
	}
}

// WithStyle sets the chroma style used by ProfileChroma.
func WithStyle(name string) Option {
	return func(c *config) { c.style = name }
}

// WithLineNumbers toggles line numbers on multi-line blocks.
func WithLineNumbers(on bool) Option {
	return func(c *config) { c.showLineNumbers = on }
}

// WithLineHighlighting toggles the highlight-line class on selected lines.
func WithLineHighlighting(on bool) Option {
	return func(c *config) { c.highlightLines = on }
}

// WithLanguageLabel toggles the language label in the block header.
func WithLanguageLabel(on bool) Option {
	return func(c *config) { c.showLanguage = on }
}

// WithCaption toggles the caption in the block header.
func WithCaption(on bool) Option {
	return func(c *config) { c.showCaption = on }
}

// WithLogger sets the logger used for degraded rendering warnings.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// Highlighter tokenizes and decorates code blocks.
// It is safe for concurrent use.
type Highlighter struct {
	cfg    config
	lexers sync.Map // language -> lexerEntry
}

type lexerEntry struct {
	lexer chroma.Lexer // nil when no grammar matches
}

// New returns a Highlighter with every decoration enabled.
func New(opts ...Option) *Highlighter {
	cfg := config{
		profile:         DefaultProfile,
		aliases:         DefaultAliases(),
		style:           DefaultStyle,
		showLineNumbers: true,
		highlightLines:  true,
		showLanguage:    true,
		showCaption:     true,
		logger:          slog.Default(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Highlighter{cfg: cfg}
}

// Profile returns the configured meta profile.
func (h *Highlighter) Profile() Profile {
	return h.cfg.profile
}

// Language normalizes a fence language: lower-cased and remapped through
// the aliases.
func (h *Highlighter) Language(lang string) string {
	lang = strings.ToLower(strings.TrimSpace(lang))
	if alias, ok := h.cfg.aliases[lang]; ok {
		return alias
	}
	return lang
}

func (h *Highlighter) lexer(lang string) chroma.Lexer {
	if v, ok := h.lexers.Load(lang); ok {
		return v.(lexerEntry).lexer
	}
	var entry lexerEntry
	if l := lexers.Get(lang); l != nil {
		entry.lexer = chroma.Coalesce(l)
	}
	v, _ := h.lexers.LoadOrStore(lang, entry)
	return v.(lexerEntry).lexer
}

// Highlight writes code as a decorated block. language is the fence
// language and meta the rest of the info string. An unknown language is
// rendered as escaped plain text.
func (h *Highlighter) Highlight(w io.Writer, code, language, meta string) error {
	m := ParseMeta(meta, h.cfg.profile)
	m.Language = h.Language(language)
	code = strings.TrimSuffix(code, "\n")
	lines := h.tokenize(code, &m)

	bw := bufio.NewWriter(w)
	h.writeBlock(bw, m, lines)
	return bw.Flush()
}

// tokenize splits code into lines of tokens, falling back to plain text
// when no lexer is available. It updates m.Language accordingly.
func (h *Highlighter) tokenize(code string, m *Meta) [][]chroma.Token {
	total := strings.Count(code, "\n") + 1
	if m.Language == "" || m.Language == plainLanguage {
		m.Language = plainLanguage
		return plainLines(code)
	}

	lexer := h.lexer(m.Language)
	if lexer == nil {
		h.cfg.logger.Warn("unknown code block language, rendering as plain text", "language", m.Language)
		m.Language = plainLanguage
		return plainLines(code)
	}
	it, err := lexer.Tokenise(nil, code)
	if err != nil {
		h.cfg.logger.Warn("tokenizing code block failed, rendering as plain text", "language", m.Language, "error", err)
		m.Language = plainLanguage
		return plainLines(code)
	}
	// SplitTokensIntoLines yields nothing for trailing empty lines.
	lines := chroma.SplitTokensIntoLines(it.Tokens())
	if len(lines) > total {
		lines = lines[:total]
	}
	for len(lines) < total {
		lines = append(lines, nil)
	}
	return lines
}

func plainLines(code string) [][]chroma.Token {
	parts := strings.Split(code, "\n")
	lines := make([][]chroma.Token, len(parts))
	for i, p := range parts {
		lines[i] = []chroma.Token{{Type: chroma.Text, Value: p}}
	}
	return lines
}

func (h *Highlighter) writeBlock(w *bufio.Writer, m Meta, lines [][]chroma.Token) {
	lang := util.EscapeHTML([]byte(m.Language))
	_, _ = w.WriteString(`<div class="highlight highlight-`)
	_, _ = w.Write(lang)
	_, _ = w.WriteString(`">`)

	showCaption := h.cfg.showCaption && m.Caption != ""
	if h.cfg.showLanguage || showCaption {
		_, _ = w.WriteString(`<div class="highlight-header">`)
		if h.cfg.showLanguage {
			_, _ = w.WriteString(`<span class="highlight-language">`)
			_, _ = w.Write(lang)
			_, _ = w.WriteString(`</span>`)
		}
		if showCaption {
			_, _ = w.WriteString(`<span class="highlight-caption">`)
			_, _ = w.Write(util.EscapeHTML([]byte(m.Caption)))
			_, _ = w.WriteString(`</span>`)
		}
		_, _ = w.WriteString(`</div>`)
	}

	_, _ = w.WriteString(`<pre class="chroma"><code>`)
	numbered := h.cfg.showLineNumbers && len(lines) > 1
	width := len(strconv.Itoa(len(lines)))
	for i, line := range lines {
		n := i + 1
		_, _ = w.WriteString(`<span class="line`)
		if h.cfg.highlightLines && m.Lines.Has(n) {
			_, _ = w.WriteString(" highlight-line")
		}
		if m.Prompt.Has(n) {
			_, _ = w.WriteString(" line-prompt")
		}
		_, _ = w.WriteString(`">`)
		if numbered {
			fmt.Fprintf(w, `<span class="line-number">%0*d</span>`, width, n)
		}
		for _, tok := range line {
			writeToken(w, tok)
		}
		_, _ = w.WriteString(`</span>`)
		if n < len(lines) {
			_ = w.WriteByte('\n')
		}
	}
	_, _ = w.WriteString(`</code></pre></div>`)
}

func writeToken(w *bufio.Writer, tok chroma.Token) {
	value := strings.TrimSuffix(tok.Value, "\n")
	if value == "" {
		return
	}
	class := tokenClass(tok.Type)
	if class == "" {
		_, _ = w.Write(util.EscapeHTML([]byte(value)))
		return
	}
	_, _ = w.WriteString(`<span class="`)
	_, _ = w.WriteString(class)
	_, _ = w.WriteString(`">`)
	_, _ = w.Write(util.EscapeHTML([]byte(value)))
	_, _ = w.WriteString(`</span>`)
}

// tokenClass returns chroma's short class for t, falling back to its
// sub-category and category.
func tokenClass(t chroma.TokenType) string {
	for _, tt := range []chroma.TokenType{t, t.SubCategory(), t.Category()} {
		if cls, ok := chroma.StandardTypes[tt]; ok {
			return cls
		}
	}
	return ""
}

// WriteCSS writes the stylesheet of the named chroma style for the
// classes used in highlighted blocks. An empty name uses DefaultStyle.
func WriteCSS(w io.Writer, name string) error {
	style, err := lookupStyle(name)
	if err != nil {
		return err
	}
	return chromahtml.New(chromahtml.WithClasses(true)).WriteCSS(w, style)
}

// StyleNames lists the registered chroma styles in sorted order.
func StyleNames() []string {
	return styles.Names()
}

func lookupStyle(name string) (*chroma.Style, error) {
	if name == "" {
		name = DefaultStyle
	}
	style := styles.Get(name)
	if style == styles.Fallback && !strings.EqualFold(name, styles.Fallback.Name) {
		return nil, fmt.Errorf("%w: %q", ErrStyleNotFound, name)
	}
	return style, nil
}
