package docxgen

import (
	"errors"
	"fmt"
)

// Umbrella errors. Every specific error below wraps one of them, so callers
// can test for the class with errors.Is.
var (
	ErrValidation      = errors.New("validation failed")
	ErrIndexOutOfRange = errors.New("index out of range")
	ErrWriteDocument   = errors.New("failed to write document")
	ErrReadDocument    = errors.New("failed to read document")
)

// Block validation errors.
var (
	ErrInvalidHeadingLevel = fmt.Errorf("%w: invalid heading level", ErrValidation)
	ErrInvalidAlignment    = fmt.Errorf("%w: invalid alignment", ErrValidation)
	ErrInvalidStyle        = fmt.Errorf("%w: invalid paragraph style", ErrValidation)
	ErrInvalidTableSize    = fmt.Errorf("%w: invalid table size", ErrValidation)
	ErrInvalidTableStyle   = fmt.Errorf("%w: invalid table style", ErrValidation)
	ErrInvalidSpacing      = fmt.Errorf("%w: invalid paragraph spacing", ErrValidation)
	ErrInvalidText         = fmt.Errorf("%w: text has characters a .docx cannot store", ErrValidation)

	// Run formatting validation errors.
	ErrInvalidFontSize = fmt.Errorf("%w: invalid font size", ErrValidation)
	ErrInvalidColor    = fmt.Errorf("%w: invalid color", ErrValidation)
	ErrEmptyFont       = fmt.Errorf("%w: font name cannot be empty", ErrValidation)

	// Page settings validation errors.
	ErrInvalidPageSize    = fmt.Errorf("%w: invalid page size", ErrValidation)
	ErrInvalidOrientation = fmt.Errorf("%w: invalid orientation", ErrValidation)
	ErrInvalidMargin      = fmt.Errorf("%w: invalid margin", ErrValidation)

	// Table access errors.
	ErrCellOutOfRange = fmt.Errorf("%w: table cell", ErrIndexOutOfRange)
)
