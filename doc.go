// Package blogmark renders blog posts written in Markdown to HTML.
//
// # Quick Start
//
// Create a converter once and convert documents with it:
//
//	conv, err := blogmark.NewConverter()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := conv.Convert(ctx, blogmark.Input{
//	    Markdown: "# Hello\n\n:::tip\nDirectives work.\n:::\n",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("hello.html", result.HTML, 0644)
//
// The result also carries the headings with their anchor ids, a nested
// table of contents and the decoded frontmatter.
//
// # Markdown Extensions
//
// On top of CommonMark and GitHub Flavored Markdown (tables, strikethrough,
// autolinks, task lists) and footnotes, documents may use:
//
//   - Container, leaf and text directives: :::note, ::youtube{id=...},
//     :time[2024-03-01]{format=long}
//   - Callouts: note, tip, important, warning, caution, setup, footnote and the
//     aliases commend, deter and assert
//   - Embedded quotes (:::embed), video embeds and attribute forwarding
//     (:::attrib{is=section .wide})
//   - A ::toc callout and a [[toc]] paragraph replaced by the page's table
//     of contents
//   - Code fences with meta: ```go {1,3-5} caption='main.go' prompt='7'
//   - YAML frontmatter (title, description, date, tags, draft)
//
// # Conversion Pipeline
//
//  1. Markdown preprocessing (line endings, byte order mark)
//  2. Parsing with goldmark; heading ids, directives and [[toc]] are
//     resolved on the syntax tree of each document
//  3. HTML rendering, with code blocks tokenized by chroma
//  4. Optional link rewriting (.md to .html) and page wrapping
//
// # Errors
//
// Some problems only degrade the output and are logged as warnings: an
// unknown code language, a directive missing required attributes, an
// invalid forwarded tag. Others fail the document: a heading that cannot be
// placed in a table of contents (ErrOrphanHeading), an unparseable date
// (ErrInvalidDate) or zone (ErrInvalidTimeZone), broken frontmatter
// (ErrInvalidFrontmatter).
//
// # Concurrency
//
// A Converter is safe for concurrent use. Every conversion gets its own
// slug counter and heading list, so ids never leak between documents.
package blogmark
