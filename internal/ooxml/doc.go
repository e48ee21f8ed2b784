// Package ooxml reads and writes the Office Open XML parts that make up a
// WordprocessingML (.docx) package.
//
// The writer side models each part as a tree of structs marshaled with
// encoding/xml, using prefixed element names (w:p, w:r, ...) so the output
// matches what Word itself produces. The reader side uses local names only, so
// any producer's prefixes are accepted.
//
// Package layout:
//
//	[Content_Types].xml
//	_rels/.rels
//	docProps/core.xml
//	docProps/app.xml
//	word/document.xml
//	word/styles.xml
//	word/numbering.xml
//	word/settings.xml
//	word/footer1.xml          (only when a footer is configured)
//	word/_rels/document.xml.rels
//
// Part order and ZIP timestamps are fixed, so writing the same Package twice
// produces identical bytes.
package ooxml
