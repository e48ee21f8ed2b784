package ooxml

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"io"
	"time"
)

// Part names inside the package.
const (
	PartContentTypes = "[Content_Types].xml"
	PartRootRels     = "_rels/.rels"
	PartCore         = "docProps/core.xml"
	PartApp          = "docProps/app.xml"
	PartDocument     = "word/document.xml"
	PartStyles       = "word/styles.xml"
	PartNumbering    = "word/numbering.xml"
	PartSettings     = "word/settings.xml"
	PartFooter       = "word/footer1.xml"
	PartDocumentRels = "word/_rels/document.xml.rels"
)

// FooterRelID is the relationship ID under which the footer part is linked
// from word/document.xml.
const FooterRelID = "rId4"

const (
	relOfficeDocument = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument"
	relCore           = "http://schemas.openxmlformats.org/package/2006/relationships/metadata/core-properties"
	relExtended       = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/extended-properties"
	relStyles         = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/styles"
	relNumbering      = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/numbering"
	relSettings       = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/settings"
	relFooter         = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/footer"
)

const (
	ctRels      = "application/vnd.openxmlformats-package.relationships+xml"
	ctXML       = "application/xml"
	ctDocument  = "application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"
	ctStyles    = "application/vnd.openxmlformats-officedocument.wordprocessingml.styles+xml"
	ctNumbering = "application/vnd.openxmlformats-officedocument.wordprocessingml.numbering+xml"
	ctSettings  = "application/vnd.openxmlformats-officedocument.wordprocessingml.settings+xml"
	ctFooter    = "application/vnd.openxmlformats-officedocument.wordprocessingml.footer+xml"
	ctCore      = "application/vnd.openxmlformats-package.core-properties+xml"
	ctApp       = "application/vnd.openxmlformats-officedocument.extended-properties+xml"
)

// ContentTypes is [Content_Types].xml.
type ContentTypes struct {
	XMLName   xml.Name          `xml:"Types"`
	Xmlns     string            `xml:"xmlns,attr"`
	Defaults  []ContentDefault  `xml:"Default"`
	Overrides []ContentOverride `xml:"Override"`
}

// ContentDefault maps an extension to a content type.
type ContentDefault struct {
	Extension   string `xml:"Extension,attr"`
	ContentType string `xml:"ContentType,attr"`
}

// ContentOverride maps a single part to a content type.
type ContentOverride struct {
	PartName    string `xml:"PartName,attr"`
	ContentType string `xml:"ContentType,attr"`
}

// Relationships is a .rels part.
type Relationships struct {
	XMLName xml.Name       `xml:"Relationships"`
	Xmlns   string         `xml:"xmlns,attr"`
	Items   []Relationship `xml:"Relationship"`
}

// Relationship is one entry of a .rels part.
type Relationship struct {
	ID     string `xml:"Id,attr"`
	Type   string `xml:"Type,attr"`
	Target string `xml:"Target,attr"`
}

// Package is a complete WordprocessingML package ready to be written.
// Footer is optional; every other part is required.
type Package struct {
	Document  *Document
	Styles    *Styles
	Numbering *Numbering
	Settings  *Settings
	Footer    *Footer
	Core      *CoreProperties
	App       *AppProperties

	// Modified is stamped on every ZIP entry.
	Modified time.Time
}

type part struct {
	name  string
	value any
}

// parts lists the package parts in write order.
func (p *Package) parts() []part {
	types := &ContentTypes{
		Xmlns: namespaceCT,
		Defaults: []ContentDefault{
			{Extension: "rels", ContentType: ctRels},
			{Extension: "xml", ContentType: ctXML},
		},
		Overrides: []ContentOverride{
			{PartName: "/" + PartDocument, ContentType: ctDocument},
			{PartName: "/" + PartStyles, ContentType: ctStyles},
			{PartName: "/" + PartNumbering, ContentType: ctNumbering},
			{PartName: "/" + PartSettings, ContentType: ctSettings},
		},
	}
	docRels := &Relationships{
		Xmlns: namespaceRel,
		Items: []Relationship{
			{ID: "rId1", Type: relStyles, Target: "styles.xml"},
			{ID: "rId2", Type: relNumbering, Target: "numbering.xml"},
			{ID: "rId3", Type: relSettings, Target: "settings.xml"},
		},
	}
	if p.Footer != nil {
		types.Overrides = append(types.Overrides, ContentOverride{PartName: "/" + PartFooter, ContentType: ctFooter})
		docRels.Items = append(docRels.Items, Relationship{ID: FooterRelID, Type: relFooter, Target: "footer1.xml"})
	}
	types.Overrides = append(types.Overrides,
		ContentOverride{PartName: "/" + PartCore, ContentType: ctCore},
		ContentOverride{PartName: "/" + PartApp, ContentType: ctApp},
	)

	rootRels := &Relationships{
		Xmlns: namespaceRel,
		Items: []Relationship{
			{ID: "rId1", Type: relOfficeDocument, Target: PartDocument},
			{ID: "rId2", Type: relCore, Target: PartCore},
			{ID: "rId3", Type: relExtended, Target: PartApp},
		},
	}

	parts := []part{
		{PartContentTypes, types},
		{PartRootRels, rootRels},
		{PartCore, p.Core},
		{PartApp, p.App},
		{PartDocument, p.Document},
		{PartStyles, p.Styles},
		{PartNumbering, p.Numbering},
		{PartSettings, p.Settings},
	}
	if p.Footer != nil {
		parts = append(parts, part{PartFooter, p.Footer})
	}
	return append(parts, part{PartDocumentRels, docRels})
}

// WriteTo writes the package as a ZIP archive. It implements io.WriterTo.
func (p *Package) WriteTo(w io.Writer) (int64, error) {
	if p.Document == nil || p.Styles == nil || p.Numbering == nil ||
		p.Settings == nil || p.Core == nil || p.App == nil {
		return 0, ErrIncompletePackage
	}

	cw := &countingWriter{w: w}
	zw := zip.NewWriter(cw)
	for _, pt := range p.parts() {
		if err := writePart(zw, pt.name, pt.value, p.Modified); err != nil {
			return cw.n, fmt.Errorf("writing %s: %w", pt.name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return cw.n, fmt.Errorf("closing archive: %w", err)
	}
	return cw.n, nil
}

func writePart(zw *zip.Writer, name string, value any, modified time.Time) error {
	f, err := zw.CreateHeader(&zip.FileHeader{
		Name:     name,
		Method:   zip.Deflate,
		Modified: modified,
	})
	if err != nil {
		return err
	}
	if _, err := io.WriteString(f, xml.Header); err != nil {
		return err
	}
	return xml.NewEncoder(f).Encode(value)
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
