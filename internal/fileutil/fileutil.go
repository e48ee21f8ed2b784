// Package fileutil provides file and path utility functions on top of an
// afero filesystem.
package fileutil

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gosimple/slug"
	"github.com/spf13/afero"
)

// Sentinel errors for file utility operations.
var (
	ErrEmptyPath              = errors.New("path cannot be empty")
	ErrParentNotDirectory     = errors.New("parent path is not a directory")
	ErrTargetIsDirectory      = errors.New("target path is a directory")
	ErrExtensionEmpty         = errors.New("extension cannot be empty")
	ErrExtensionPathTraversal = errors.New("extension contains path separator or null byte")
	ErrInvalidBaseName        = errors.New("not a plain file name")
)

// DefaultFileName is used when a title has no characters usable in a file name.
const DefaultFileName = "document"

// WriteFileAtomic writes data to path through a temporary file in the same
// directory followed by a rename, so readers never observe a partial file
// and a failed write leaves nothing behind. The parent directory must exist.
func WriteFileAtomic(fs afero.Fs, path string, data []byte, perm os.FileMode) error {
	if strings.TrimSpace(path) == "" {
		return ErrEmptyPath
	}

	dir := filepath.Dir(path)
	info, err := fs.Stat(dir)
	if err != nil {
		return fmt.Errorf("checking directory %q: %w", dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %q", ErrParentNotDirectory, dir)
	}
	if info, err := fs.Stat(path); err == nil && info.IsDir() {
		return fmt.Errorf("%w: %q", ErrTargetIsDirectory, path)
	}

	tmp, err := afero.TempFile(fs, dir, ".docxgen-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmp.Name()
	cleanup := func() { _ = fs.Remove(tmpPath) }

	if _, writeErr := tmp.Write(data); writeErr != nil {
		_ = tmp.Close()
		cleanup()
		return fmt.Errorf("writing temp file: %w", writeErr)
	}
	if closeErr := tmp.Close(); closeErr != nil {
		cleanup()
		return fmt.Errorf("closing temp file: %w", closeErr)
	}
	if chmodErr := fs.Chmod(tmpPath, perm); chmodErr != nil {
		cleanup()
		return fmt.Errorf("setting permissions: %w", chmodErr)
	}
	if renameErr := fs.Rename(tmpPath, path); renameErr != nil {
		cleanup()
		return fmt.Errorf("renaming temp file: %w", renameErr)
	}
	return nil
}

// ValidateExtension checks that the extension is safe to append to a file name.
func ValidateExtension(extension string) error {
	if extension == "" {
		return ErrExtensionEmpty
	}
	if strings.ContainsAny(extension, "/\\\x00") {
		return ErrExtensionPathTraversal
	}
	return nil
}

// EnsureExtension appends "."+extension to path unless it already ends with
// it (case-insensitive).
func EnsureExtension(path, extension string) (string, error) {
	if err := ValidateExtension(extension); err != nil {
		return "", err
	}
	ext := "." + strings.TrimPrefix(extension, ".")
	if strings.EqualFold(filepath.Ext(path), ext) {
		return path, nil
	}
	return path + ext, nil
}

// FileName derives a file-system-safe base name from a title, e.g.
// "NovaBank Proje Raporu" -> "novabank-proje-raporu".
func FileName(title string) string {
	name := slug.Make(title)
	if name == "" {
		return DefaultFileName
	}
	return name
}

// FileExists returns true if the path exists and is a regular file.
func FileExists(fs afero.Fs, path string) bool {
	info, err := fs.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// DirExists returns true if the path exists and is a directory.
func DirExists(fs afero.Fs, path string) bool {
	info, err := fs.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// ValidateBaseName checks that name is a single path element: not empty,
// not "." or "..", and free of separators, drive colons and NUL bytes.
// Extensions are allowed.
func ValidateBaseName(name string) error {
	switch {
	case strings.TrimSpace(name) == "":
		return fmt.Errorf("%w: empty", ErrInvalidBaseName)
	case name == "." || name == "..":
		return fmt.Errorf("%w: %q", ErrInvalidBaseName, name)
	case strings.ContainsAny(name, "/\\:\x00"):
		return fmt.Errorf("%w: %q", ErrInvalidBaseName, name)
	}
	return nil
}

// IsFilePath returns true if the string looks like a file path rather than a name.
// A string containing path separators (/, \) is treated as a path.
//
// Examples:
//   - "novabank" -> false (name)
//   - "./report.yaml" -> true (relative path)
//   - "../shared/report.yaml" -> true (parent path)
//   - "/absolute/report.yaml" -> true (absolute)
//   - "C:\reports\report.yaml" -> true (Windows)
//   - "quarterly-review" -> false (hyphenated name)
//   - "sub/dir" -> true (contains separator)
func IsFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}
