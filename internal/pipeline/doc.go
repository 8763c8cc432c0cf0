// Package pipeline implements the Markdown-to-HTML conversion pipeline.
//
// This package handles the stages around goldmark:
//   - Markdown preprocessing (line endings, byte order mark)
//   - Markdown to HTML conversion via goldmark, with directives, heading
//     anchors, the [[toc]] placeholder, frontmatter and highlighted code
//   - Link rewriting from .md sources to .html pages
//   - Page wrapping and CSS injection for standalone output
//
// Per-document state (slug counter, heading records, fatal errors) lives in
// the goldmark parser.Context of each conversion, so one GoldmarkConverter
// serves concurrent conversions.
package pipeline
