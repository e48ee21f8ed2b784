package main

import (
	"bytes"
	"testing"
	"time"

	"github.com/spf13/afero"

	"github.com/alnah/go-docxgen/internal/logger"
)

var fixedNow = time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC)

// testEnv returns an in-memory environment with captured output.
func testEnv(t *testing.T) (*Environment, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	return &Environment{
		Now:    func() time.Time { return fixedNow },
		Stdout: stdout,
		Stderr: stderr,
		FS:     afero.NewMemMapFs(),
		Log:    logger.Nop(),
	}, stdout, stderr
}

func writeFile(t *testing.T, fs afero.Fs, path, content string) {
	t.Helper()
	if err := afero.WriteFile(fs, path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile(%s) error = %v", path, err)
	}
}

const shortReport = `title: Kısa Rapor
output: kisa.docx
vars:
  month: "auto:MMMM YYYY"
blocks:
  - heading: "${month}"
    level: 1
  - table:
      header: true
      rows:
        - [Test, Sonuç]
        - [Giriş, Başarılı]
`

const shortMarkdown = "# Notlar\n\nİlk paragraf.\n\n- madde\n"
