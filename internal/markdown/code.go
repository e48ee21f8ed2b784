package markdown

import (
	"fmt"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"

	"github.com/alnah/go-docxgen"
)

// lexerFor returns the lexer for a fenced block's info string, falling back
// to content analysis and then to plain text.
func lexerFor(lang, code string) chroma.Lexer {
	var l chroma.Lexer
	if lang != "" {
		// Info strings may carry attributes: "go title=main.go".
		name, _, _ := strings.Cut(lang, " ")
		l = lexers.Get(name)
	}
	if l == nil {
		l = lexers.Analyse(code)
	}
	if l == nil {
		l = lexers.Fallback
	}
	return chroma.Coalesce(l)
}

// addCode appends code as one NoSpacing paragraph whose runs carry the
// colours of the chroma style. Newlines inside runs become line breaks.
func (c *Converter) addCode(doc *docxgen.Document, lang, code string) error {
	p, err := doc.AddParagraph("", docxgen.WithStyle(docxgen.StyleNoSpacing))
	if err != nil {
		return err
	}
	if code == "" {
		return nil
	}

	it, err := lexerFor(lang, code).Tokenise(nil, code)
	if err != nil {
		return fmt.Errorf("tokenizing %s code: %w", lang, err)
	}

	tokens := it.Tokens()
	// Lexers may append a final newline the source did not have.
	for n := len(tokens); n > 0; n = len(tokens) {
		tokens[n-1].Value = strings.TrimRight(tokens[n-1].Value, "\n")
		if tokens[n-1].Value != "" {
			break
		}
		tokens = tokens[:n-1]
	}

	for _, tok := range tokens {
		if tok.Value == "" {
			continue
		}
		r := p.AddRun(tok.Value)
		if err := r.SetFont(c.codeFont); err != nil {
			return err
		}
		entry := c.codeStyle.Get(tok.Type)
		if entry.Colour.IsSet() {
			if err := r.SetColor(entry.Colour.String()); err != nil {
				return err
			}
		}
		if entry.Bold == chroma.Yes {
			r.SetBold(true)
		}
		if entry.Italic == chroma.Yes {
			r.SetItalic(true)
		}
	}
	return nil
}
