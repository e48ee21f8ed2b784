// Package markdown appends Markdown content to a docxgen.Document.
//
// The source is parsed with goldmark (CommonMark plus the GFM extensions) and
// the syntax tree is mapped onto document blocks:
//
//	# Heading            → Heading (level 1..6, optionally the first as Title)
//	paragraph            → Paragraph, one run per formatting span
//	**bold** *italic*    → bold and italic runs
//	`code`               → run in the code font
//	- item / 1. item     → BulletParagraph / NumberedParagraph (nesting is flattened)
//	- [x] task           → bullet with a checkbox prefix
//	| a | b |            → Table with a bold header row
//	---                  → PageBreak
//	```lang              → NoSpacing paragraph with chroma-coloured runs
//	> quote              → italic paragraphs
//
// Raw HTML is dropped.
package markdown
