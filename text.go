package docxgen

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// isXMLChar reports whether r may appear in an XML 1.0 document.
func isXMLChar(r rune) bool {
	switch {
	case r == '\t' || r == '\n' || r == '\r':
		return true
	case r >= 0x20 && r <= 0xD7FF:
		return true
	case r >= 0xE000 && r <= 0xFFFD:
		return true
	case r >= 0x10000 && r <= utf8.MaxRune:
		return true
	}
	return false
}

// checkText returns ErrInvalidText when s is not valid UTF-8 or holds a
// character a .docx part cannot store (NUL, most C0 controls, U+FFFE).
func checkText(s string) error {
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			return fmt.Errorf("%w: invalid UTF-8 at byte %d", ErrInvalidText, i)
		}
		if !isXMLChar(r) {
			return fmt.Errorf("%w: %U at byte %d", ErrInvalidText, r, i)
		}
		i += size
	}
	return nil
}

// checkTexts is checkText over several values.
func checkTexts(values ...string) error {
	for _, v := range values {
		if err := checkText(v); err != nil {
			return err
		}
	}
	return nil
}

// sanitizeText replaces invalid UTF-8 and characters XML cannot hold with
// U+FFFD.
func sanitizeText(s string) string {
	if checkText(s) == nil {
		return s
	}
	return strings.Map(func(r rune) rune {
		if !isXMLChar(r) {
			return utf8.RuneError
		}
		return r
	}, strings.ToValidUTF8(s, string(utf8.RuneError)))
}
