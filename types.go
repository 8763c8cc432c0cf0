package blogmark

import (
	"time"

	"github.com/alnah/go-blogmark/internal/dateutil"
	"github.com/alnah/go-blogmark/internal/pipeline"
	"github.com/alnah/go-blogmark/internal/toc"
)

// Input is one Markdown document to convert.
type Input struct {
	// Markdown is the source, optionally starting with YAML frontmatter.
	Markdown string

	// Standalone wraps the fragment in a full HTML page with the
	// converter's stylesheet inlined.
	Standalone bool

	// Title is the page title when the frontmatter has none (standalone only).
	Title string

	// Lang is the page language (standalone only). Empty means "en".
	Lang string

	// CSS is appended to the stylesheet (standalone only).
	CSS string
}

// Result holds the output of one conversion.
type Result struct {
	// HTML is the rendered fragment, or the full page for standalone input.
	HTML []byte

	// Headings lists every heading in document order with its anchor id.
	Headings []Heading

	// TOC nests the headings within the configured depth range.
	// It is nil when the headings cannot be nested (see ErrOrphanHeading).
	TOC []*TOCEntry

	// Frontmatter is nil when the source has none.
	Frontmatter *Frontmatter
}

// Heading is a rendered heading.
type Heading struct {
	Depth int    // 1 to 6
	ID    string // anchor, unique within the document
	Title string // plain text
}

// TOCEntry is a heading and the headings nested under it.
type TOCEntry struct {
	Heading
	Children []*TOCEntry
}

// Frontmatter is the decoded YAML block at the top of a post.
type Frontmatter struct {
	Title       string
	Description string
	Date        time.Time // zero when absent
	Tags        []string
	Draft       bool
	Extra       map[string]any // keys not listed above
}

func toHeadings(hs []toc.Heading) []Heading {
	if len(hs) == 0 {
		return nil
	}
	out := make([]Heading, len(hs))
	for i, h := range hs {
		out[i] = Heading(h)
	}
	return out
}

func toTOCEntries(nodes []*toc.Node) []*TOCEntry {
	if len(nodes) == 0 {
		return nil
	}
	out := make([]*TOCEntry, len(nodes))
	for i, n := range nodes {
		out[i] = &TOCEntry{
			Heading:  Heading(n.Heading),
			Children: toTOCEntries(n.Children),
		}
	}
	return out
}

// toPageData builds the template values of a standalone page.
func toPageData(input Input, fm *Frontmatter, dateFormat string) (*pipeline.PageData, error) {
	data := &pipeline.PageData{
		Lang:  input.Lang,
		Title: input.Title,
	}
	if fm == nil {
		return data, nil
	}
	if fm.Title != "" {
		data.Title = fm.Title
	}
	data.Description = fm.Description
	data.Tags = fm.Tags
	if !fm.Date.IsZero() {
		display, err := dateutil.Format(fm.Date, dateFormat)
		if err != nil {
			return nil, err
		}
		data.Date = display
		data.DateISO = fm.Date.Format(time.RFC3339)
	}
	return data, nil
}
