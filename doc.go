// Package docxgen assembles Word (.docx) documents from a sequence of
// structural blocks: headings, paragraphs, list items, tables and page
// breaks.
//
// # Quick Start
//
// Create a document, append blocks in reading order, and save:
//
//	doc, err := docxgen.NewDocument()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	doc.AddHeading("Project Report", 0, docxgen.WithAlign(docxgen.AlignCenter))
//	doc.AddHeading("1. Introduction", 1)
//	doc.AddParagraph("This report describes the system.")
//	doc.AddBulletItem("Account management")
//
//	t, _ := doc.AddTable(2, 2, docxgen.WithHeaderRow())
//	t.SetRow(0, "Name", "Value")
//	t.SetRow(1, "Version", "1.0")
//
//	doc.AddPageBreak()
//
//	if err := doc.Save("report.docx"); err != nil {
//	    log.Fatal(err)
//	}
//
// # Formatting Through Handles
//
// AddParagraph returns a *Paragraph handle. Each AddRun call on it returns a
// *Run handle, and formatting applies to that run only:
//
//	p, _ := doc.AddParagraph("")
//	p.AddRun("Status: ").SetBold(true)
//	p.AddRun("Done").SetItalic(true)
//
// Tables are formatted per cell with SetCellBold, or per row with SetRowBold
// and SetHeaderRow. A cell is bold as a whole, whatever its text contains.
//
// # Configuration
//
// Document-wide settings are functional options:
//
//	doc, err := docxgen.NewDocument(
//	    docxgen.WithFont("Arial"),
//	    docxgen.WithFontSize(10.5),
//	    docxgen.WithPageSettings(&docxgen.PageSettings{Size: "a4", Orientation: "portrait", Margin: 1}),
//	    docxgen.WithFooter(&docxgen.Footer{Text: "Confidential", ShowPageNumber: true}),
//	    docxgen.WithMetadata(docxgen.Metadata{Title: "Report", Author: "Jane Doe"}),
//	)
//
// # Errors
//
// Structural mistakes wrap ErrValidation (bad heading level, alignment,
// style, table size, font size, color, page settings). Table access outside
// the grid wraps ErrIndexOutOfRange and leaves the table untouched. Save
// failures wrap ErrWriteDocument and never leave a partial file.
//
// # Reading
//
// ReadFile parses a .docx back into a Document. Its block outline uses the
// same notation as Block.String:
//
//	Heading(level=1,"TEST")
//	BulletParagraph("item-a")
//	Table(2x2, rows=[["H1","H2"],["v1","v2"]])
//	PageBreak
package docxgen
