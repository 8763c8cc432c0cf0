//go:build bench

package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"testing"

	"github.com/alnah/go-blogmark/internal/highlight"
)

func newBenchConverter(opts ConverterOptions) *GoldmarkConverter {
	opts.Logger = slog.New(slog.DiscardHandler)
	opts.TOCMinDepth, opts.TOCMaxDepth = 2, 6
	return NewGoldmarkConverter(opts)
}

func benchToHTML(b *testing.B, c *GoldmarkConverter, content string) {
	b.Helper()
	ctx := context.Background()
	b.ReportAllocs()
	for b.Loop() {
		if _, err := c.ToHTML(ctx, content); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkToHTML covers the post shapes the blog renders most.
func BenchmarkToHTML(b *testing.B) {
	c := newBenchConverter(ConverterOptions{})

	inputs := []struct {
		name    string
		content string
	}{
		{"plain", strings.Repeat("A paragraph of prose with *emphasis*.\n\n", 20)},
		{"frontmatter", "---\ntitle: Post\ndate: 2024-03-01\ntags: [go]\n---\n\nBody.\n"},
		{"callouts", benchPost(0, 20, 0)},
		{"code_blocks", benchPost(0, 0, 20)},
		{"toc_headings", "[[toc]]\n\n" + benchPost(40, 0, 0)},
		{"post_small", benchPost(5, 2, 2)},
		{"post_large", benchPost(60, 20, 20)},
	}

	for _, input := range inputs {
		b.Run(input.name, func(b *testing.B) {
			benchToHTML(b, c, input.content)
		})
	}
}

// BenchmarkToHTMLParallel exercises per-document state under concurrency.
func BenchmarkToHTMLParallel(b *testing.B) {
	c := newBenchConverter(ConverterOptions{})
	content := "[[toc]]\n\n" + benchPost(20, 5, 5)
	ctx := context.Background()

	b.ReportAllocs()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			if _, err := c.ToHTML(ctx, content); err != nil {
				b.Fatal(err)
			}
		}
	})
}

// BenchmarkHighlightProfiles compares the decorated renderer with the plain
// chroma profile.
func BenchmarkHighlightProfiles(b *testing.B) {
	content := benchPost(0, 0, 10)
	for _, profile := range []highlight.Profile{highlight.ProfilePrompt, highlight.ProfileChroma} {
		c := newBenchConverter(ConverterOptions{
			Highlighter: highlight.New(highlight.WithProfile(profile)),
		})
		b.Run(profile.String(), func(b *testing.B) {
			benchToHTML(b, c, content)
		})
	}
}

// benchPost builds a post with the given number of sections, callouts and
// code blocks.
func benchPost(sections, callouts, blocks int) string {
	var sb strings.Builder
	for i := range sections {
		fmt.Fprintf(&sb, "## Section %d\n\nIntro for section %d.\n\n", i, i)
		if i%3 == 0 {
			fmt.Fprintf(&sb, "### Detail %d\n\nMore text.\n\n", i)
		}
	}
	for i := range callouts {
		fmt.Fprintf(&sb, ":::tip{title=\"Tip %d\"}\nUse :time[2024-03-01] wisely.\n:::\n\n", i)
	}
	for i := range blocks {
		fmt.Fprintf(&sb, "```go {2} caption='block %d'\npackage main\n\nfunc main() {\n\tprintln(%d)\n}\n```\n\n", i, i)
	}
	return sb.String()
}
