// Package slug turns heading text into URL-safe anchor identifiers.
//
// A Counter disambiguates repeated slugs within one document. Counters are
// not shared between documents: create one per render (or call Reset at the
// start of each document).
package slug

import (
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// replacements are applied after lowercasing and before punctuation folding,
// in order. They keep common technology names readable ("next.js" -> "nextjs").
var replacements = []struct {
	from string
	to   string
}{
	{".js", "js"},
	{"c++", "cpp"},
	{"&", "and"},
}

// Normalize returns the base slug for text without uniqueness tracking.
func Normalize(text string) string {
	s := strings.ToLower(text)
	for _, r := range replacements {
		s = strings.ReplaceAll(s, r.from, r.to)
	}
	s = stripDiacritics(s)

	var b strings.Builder
	b.Grow(len(s))
	pendingSep := false
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if pendingSep && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingSep = false
			b.WriteRune(r)
			continue
		}
		pendingSep = true
	}
	return b.String()
}

// stripDiacritics decomposes s and drops combining marks ("é" -> "e").
func stripDiacritics(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

// Counter produces unique slugs for the lifetime of one document.
// The zero value is ready to use. A Counter is not safe for concurrent use.
type Counter struct {
	seen map[string]int
}

// NewCounter returns an empty Counter.
func NewCounter() *Counter {
	return &Counter{seen: make(map[string]int)}
}

// Slugify returns the slug for text, suffixed with -1, -2, ... when the base
// slug (or a previously generated suffixed slug) was already produced.
func (c *Counter) Slugify(text string) string {
	return c.claim(Normalize(text))
}

// Reserve records an id chosen by the author so later slugs avoid it.
// The id is kept verbatim unless it was already taken, in which case it
// gets the same numeric suffix Slugify would give.
func (c *Counter) Reserve(id string) string {
	return c.claim(id)
}

func (c *Counter) claim(base string) string {
	if c.seen == nil {
		c.seen = make(map[string]int)
	}

	candidate := base
	if n, ok := c.seen[base]; ok {
		for {
			n++
			candidate = base + "-" + strconv.Itoa(n)
			if _, taken := c.seen[candidate]; !taken {
				break
			}
		}
		c.seen[base] = n
	}
	c.seen[candidate] = 0
	return candidate
}

// Reset forgets every slug produced so far.
func (c *Counter) Reset() {
	clear(c.seen)
}
