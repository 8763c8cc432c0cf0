package blogmark_test

import (
	"context"
	"fmt"

	"github.com/alnah/go-blogmark"
)

// Example converts a post to an HTML fragment and lists its headings.
func Example() {
	conv, err := blogmark.NewConverter()
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	result, err := conv.Convert(context.Background(), blogmark.Input{
		Markdown: "# Hello World\n\n## Setup\n\n## Setup\n",
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	for _, h := range result.Headings {
		fmt.Println(h.Depth, h.ID)
	}
	// Output:
	// 1 hello-world
	// 2 setup
	// 2 setup-1
}

// Example_frontmatter reads post metadata from a YAML frontmatter block.
func Example_frontmatter() {
	conv, err := blogmark.NewConverter()
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	result, err := conv.Convert(context.Background(), blogmark.Input{
		Markdown: "---\ntitle: Release notes\ndate: 2024-03-01\ntags: [go, release]\n---\n\nShipped.\n",
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fm := result.Frontmatter
	fmt.Println(fm.Title)
	fmt.Println(fm.Date.Format("2006-01-02"))
	fmt.Println(fm.Tags)
	// Output:
	// Release notes
	// 2024-03-01
	// [go release]
}

// Example_tableOfContents builds a nested table of contents.
func Example_tableOfContents() {
	conv, err := blogmark.NewConverter(blogmark.WithTOCDepth(2, 3))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	result, err := conv.Convert(context.Background(), blogmark.Input{
		Markdown: "# Title\n\n## Install\n\n### Linux\n\n### macOS\n\n## Usage\n",
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	var walk func(entries []*blogmark.TOCEntry, indent string)
	walk = func(entries []*blogmark.TOCEntry, indent string) {
		for _, e := range entries {
			fmt.Printf("%s%s (#%s)\n", indent, e.Title, e.ID)
			walk(e.Children, indent+"  ")
		}
	}
	walk(result.TOC, "")
	// Output:
	// Install (#install)
	//   Linux (#linux)
	//   macOS (#macos)
	// Usage (#usage)
}

// ExampleCSS writes the stylesheet for highlighted code blocks.
func ExampleCSS() {
	css, err := blogmark.CSS("monokai")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(len(css) > 0)
	// Output: true
}
