package docxgen

// Notes:
// - checkText: XML 1.0 characters pass; NUL, other C0 controls, U+FFFE and
//   invalid UTF-8 fail with ErrInvalidText (an ErrValidation)
// - Entry points that return errors reject bad text and change nothing;
//   AddRun substitutes U+FFFD so the model matches what Read returns

import (
	"errors"
	"testing"
)

// ---------------------------------------------------------------------------
// TestCheckText - Characters a .docx can store
// ---------------------------------------------------------------------------

func TestCheckText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"empty", "", false},
		{"turkish letters", "Dijital Bankacılık Uygulaması", false},
		{"tab newline carriage return", "a\tb\nc\rd", false},
		{"replacement character itself", "a\uFFFDb", false},
		{"emoji outside the BMP", "ok \U0001F600", false},
		{"NUL", "a\x00b", true},
		{"start of heading", "a\x01b", true},
		{"vertical tab", "a\vb", true},
		{"U+FFFE", "a\uFFFEb", true},
		{"invalid UTF-8", "c\xffd", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := checkText(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidText) || !errors.Is(err, ErrValidation) {
					t.Errorf("checkText(%q) = %v, want ErrInvalidText", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Errorf("checkText(%q) unexpected error: %v", tt.input, err)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestInvalidText_Rejected - Error-returning entry points
// ---------------------------------------------------------------------------

func TestInvalidText_Rejected(t *testing.T) {
	t.Parallel()

	const bad = "a\x01b"

	tests := []struct {
		name string
		run  func(d *Document) error
	}{
		{"AddHeading", func(d *Document) error { _, err := d.AddHeading(bad, 1); return err }},
		{"AddParagraph", func(d *Document) error { _, err := d.AddParagraph(bad); return err }},
		{"AddBulletItem", func(d *Document) error { _, err := d.AddBulletItem(bad); return err }},
		{"AddNumberedItem", func(d *Document) error { _, err := d.AddNumberedItem(bad); return err }},
		{"AddTableFromRows", func(d *Document) error {
			_, err := d.AddTableFromRows([][]string{{"ok", "ok"}, {"ok", bad}})
			return err
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			doc := mustNewDocument(t)
			if err := tt.run(doc); !errors.Is(err, ErrInvalidText) {
				t.Fatalf("error = %v, want ErrInvalidText", err)
			}
			if doc.Len() != 0 {
				t.Errorf("Len() = %d, want nothing appended", doc.Len())
			}
		})
	}

	t.Run("SetCell and SetRow leave cells unchanged", func(t *testing.T) {
		t.Parallel()

		tbl := mustTable(t, 1, 2)
		if err := tbl.SetRow(0, "x", "y"); err != nil {
			t.Fatal(err)
		}
		before := snapshot(tbl)

		if err := tbl.SetCell(0, 0, bad); !errors.Is(err, ErrInvalidText) {
			t.Errorf("SetCell() error = %v, want ErrInvalidText", err)
		}
		if err := tbl.SetRow(0, "z", bad); !errors.Is(err, ErrInvalidText) {
			t.Errorf("SetRow() error = %v, want ErrInvalidText", err)
		}
		if got := snapshot(tbl); got[0][0] != before[0][0] || got[0][1] != before[0][1] {
			t.Errorf("cells changed: %+v, want %+v", got, before)
		}
	})

	t.Run("footer and metadata", func(t *testing.T) {
		t.Parallel()

		if _, err := NewDocument(WithFooter(&Footer{Text: bad})); !errors.Is(err, ErrInvalidText) {
			t.Errorf("footer error = %v, want ErrInvalidText", err)
		}
		if _, err := NewDocument(WithMetadata(Metadata{Keywords: []string{"ok", bad}})); !errors.Is(err, ErrInvalidText) {
			t.Errorf("metadata error = %v, want ErrInvalidText", err)
		}
	})
}

// ---------------------------------------------------------------------------
// TestAddRun_Sanitizes - Substitution matches the saved document
// ---------------------------------------------------------------------------

func TestAddRun_Sanitizes(t *testing.T) {
	t.Parallel()

	doc := mustNewDocument(t)
	p, err := doc.AddParagraph("")
	if err != nil {
		t.Fatal(err)
	}
	r := p.AddRun("a\x01b\x0bc\xffd")

	const want = "a\uFFFDb\uFFFDc\uFFFDd"
	if r.Text() != want {
		t.Errorf("Text() = %q, want %q", r.Text(), want)
	}

	got := roundTrip(t, doc).Blocks()[0].(*Paragraph).Text()
	if got != want {
		t.Errorf("read back %q, want %q", got, want)
	}
}
