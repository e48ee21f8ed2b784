package markdown

import "regexp"

var (
	// Line ending normalization
	crlfOrCR = regexp.MustCompile(`\r\n?`)

	// Compress multiple blank lines to max 2
	multipleBlankLines = regexp.MustCompile(`\n{3,}`)
)

// preprocess normalizes line endings and blank-line runs so that source
// positions and paragraph splits do not depend on the editor that wrote the
// file.
func preprocess(src []byte) []byte {
	src = crlfOrCR.ReplaceAll(src, []byte("\n"))
	return multipleBlankLines.ReplaceAll(src, []byte("\n\n"))
}
