package ooxml

import "errors"

var (
	// ErrIncompletePackage is returned when a required part is missing at write time.
	ErrIncompletePackage = errors.New("incomplete package: required part missing")

	// ErrNotZip is returned when the input is not a ZIP archive.
	ErrNotZip = errors.New("not a zip archive")

	// ErrMissingDocumentPart is returned when a package has no word/document.xml.
	ErrMissingDocumentPart = errors.New("missing word/document.xml")

	// ErrMalformedPart is returned when a part cannot be parsed as XML.
	ErrMalformedPart = errors.New("malformed part")
)
