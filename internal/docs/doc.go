// Package docs parses the cornerstones reference document into a tree of
// sections, subsections and typed content blocks.
//
// # Format
//
// The document is an informal markdown subset:
//
//   - "## " lines start a section; anything before the first one is ignored.
//   - "### " lines start a subsection. Content between a section header and
//     its first subsection is the section intro.
//   - Fenced code (three backticks, optional language tag) becomes a code
//     block. Fences are isolated before any other segmentation.
//   - "---" or "***" on their own line become a horizontal rule.
//   - Consecutive "- " lines form a list run. A run where at least
//     LinkThresholdPercent of the lines look like "- [text](url)" becomes a
//     link grid, anything else becomes a checklist.
//   - All other lines are joined into paragraphs; blank lines only separate.
//
// # Usage
//
//	sections := docs.Parse(text)
//	section, ok := docs.FindSection(sections, "1-intro")
//
// Parse is pure and safe for concurrent use. Source adds file loading and
// optional caching on top of it.
package docs
