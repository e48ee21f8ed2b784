package ooxml

import (
	"encoding/xml"
	"time"
)

// CoreProperties is docProps/core.xml.
type CoreProperties struct {
	XMLName        xml.Name `xml:"cp:coreProperties"`
	XmlnsCP        string   `xml:"xmlns:cp,attr"`
	XmlnsDC        string   `xml:"xmlns:dc,attr"`
	XmlnsDCTerms   string   `xml:"xmlns:dcterms,attr"`
	XmlnsDCMIType  string   `xml:"xmlns:dcmitype,attr"`
	XmlnsXSI       string   `xml:"xmlns:xsi,attr"`
	Title          string   `xml:"dc:title,omitempty"`
	Subject        string   `xml:"dc:subject,omitempty"`
	Creator        string   `xml:"dc:creator,omitempty"`
	Keywords       string   `xml:"cp:keywords,omitempty"`
	Description    string   `xml:"dc:description,omitempty"`
	Identifier     string   `xml:"dc:identifier,omitempty"`
	Language       string   `xml:"dc:language,omitempty"`
	LastModifiedBy string   `xml:"cp:lastModifiedBy,omitempty"`
	Revision       string   `xml:"cp:revision"`
	Created        W3CDate  `xml:"dcterms:created"`
	Modified       W3CDate  `xml:"dcterms:modified"`
}

// W3CDate is a dcterms date element typed as W3CDTF.
type W3CDate struct {
	Type  string `xml:"xsi:type,attr"`
	Value string `xml:",chardata"`
}

// NewW3CDate formats t in UTC, second precision.
func NewW3CDate(t time.Time) W3CDate {
	return W3CDate{Type: "dcterms:W3CDTF", Value: t.UTC().Format(time.RFC3339)}
}

// CoreInfo is the metadata a caller may set on the core properties part.
type CoreInfo struct {
	Title       string
	Subject     string
	Author      string
	Keywords    string
	Description string
	Identifier  string
	Language    string
	Created     time.Time
}

// NewCoreProperties builds the core properties part. Created doubles as the
// modification time so repeated writes stay identical.
func NewCoreProperties(info CoreInfo) *CoreProperties {
	date := NewW3CDate(info.Created)
	return &CoreProperties{
		XmlnsCP:        "http://schemas.openxmlformats.org/package/2006/metadata/core-properties",
		XmlnsDC:        "http://purl.org/dc/elements/1.1/",
		XmlnsDCTerms:   "http://purl.org/dc/terms/",
		XmlnsDCMIType:  "http://purl.org/dc/dcmitype/",
		XmlnsXSI:       "http://www.w3.org/2001/XMLSchema-instance",
		Title:          info.Title,
		Subject:        info.Subject,
		Creator:        info.Author,
		Keywords:       info.Keywords,
		Description:    info.Description,
		Identifier:     info.Identifier,
		Language:       info.Language,
		LastModifiedBy: info.Author,
		Revision:       "1",
		Created:        date,
		Modified:       date,
	}
}

// AppProperties is docProps/app.xml.
type AppProperties struct {
	XMLName     xml.Name `xml:"Properties"`
	Xmlns       string   `xml:"xmlns,attr"`
	Application string   `xml:"Application"`
	DocSecurity int      `xml:"DocSecurity"`
	AppVersion  string   `xml:"AppVersion,omitempty"`
}

// NewAppProperties returns the extended properties naming the generator.
func NewAppProperties(application, version string) *AppProperties {
	return &AppProperties{
		Xmlns:       "http://schemas.openxmlformats.org/officeDocument/2006/extended-properties",
		Application: application,
		AppVersion:  version,
	}
}
