package main

// Notes:
// - discoverJobs: report names, files, walked directories and the .docx
//   output rule run against afero.MemMapFs.
// - outputPath: explicit file, output directory with subdirectories, and
//   the default locations per input kind.

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/afero"

	"github.com/alnah/go-docxgen/internal/assets"
)

// ---------------------------------------------------------------------------
// TestDiscoverJobs - Inputs to build jobs
// ---------------------------------------------------------------------------

func TestDiscoverJobs(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	for _, p := range []string{"/docs/a.md", "/docs/sub/b.yaml", "/docs/notes.txt", "/one.MD", "/img.png"} {
		writeFile(t, fs, p, "x")
	}

	tests := []struct {
		name    string
		args    []string
		output  string
		want    []buildJob
		wantErr error
	}{
		{
			name: "no input builds the default report",
			want: []buildJob{{Input: "novabank", Kind: kindReport}},
		},
		{
			name: "report name and file",
			args: []string{"novabank", "/one.MD"},
			want: []buildJob{
				{Input: "novabank", Kind: kindReport},
				{Input: "/one.MD", Kind: kindMarkdown},
			},
		},
		{
			name: "directory is walked",
			args: []string{"/docs"},
			want: []buildJob{
				{Input: "/docs/a.md", Kind: kindMarkdown, RelDir: "."},
				{Input: "/docs/sub/b.yaml", Kind: kindReportFile, RelDir: "sub"},
			},
		},
		{
			name:   "docx output with one input",
			args:   []string{"/one.MD"},
			output: "/out/x.docx",
			want:   []buildJob{{Input: "/one.MD", Kind: kindMarkdown, Output: "/out/x.docx"}},
		},
		{
			name:    "docx output with several inputs",
			args:    []string{"/docs"},
			output:  "/out/x.docx",
			wantErr: ErrUsage,
		},
		{
			name:    "unsupported file",
			args:    []string{"/img.png"},
			wantErr: ErrUnsupportedInput,
		},
		{
			name:    "missing path",
			args:    []string{"/missing/a.md"},
			wantErr: os.ErrNotExist,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := discoverJobs(fs, tt.args, tt.output)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("discoverJobs() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("discoverJobs() error = %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("jobs mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDiscoverJobs_EmptyDirectory(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	writeFile(t, fs, "/empty/readme.txt", "x")

	_, err := discoverJobs(fs, []string{"/empty"}, "")
	if !errors.Is(err, ErrNoInput) {
		t.Errorf("discoverJobs() error = %v, want ErrNoInput", err)
	}
}

// ---------------------------------------------------------------------------
// TestBuildJob_OutputPath - Output locations
// ---------------------------------------------------------------------------

func TestBuildJob_OutputPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		job       buildJob
		outputDir string
		want      string
	}{
		{"explicit file", buildJob{Input: "a.md", Kind: kindMarkdown, Output: "/x/y.docx"}, "/ignored", "/x/y.docx"},
		{"report in working directory", buildJob{Input: "novabank", Kind: kindReport}, "", "r.docx"},
		{"markdown beside input", buildJob{Input: "/docs/a.md", Kind: kindMarkdown}, "", "/docs/r.docx"},
		{"report file beside input", buildJob{Input: "/defs/b.yaml", Kind: kindReportFile}, "", "/defs/r.docx"},
		{"output directory", buildJob{Input: "novabank", Kind: kindReport}, "/out", "/out/r.docx"},
		{"walked subdirectory", buildJob{Input: "/docs/sub/b.md", Kind: kindMarkdown, RelDir: "sub"}, "/out", "/out/sub/r.docx"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.job.outputPath(tt.outputDir, "r.docx"); got != filepath.FromSlash(tt.want) {
				t.Errorf("outputPath() = %q, want %q", got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestParseVars - key=value flags
// ---------------------------------------------------------------------------

func TestParseVars(t *testing.T) {
	t.Parallel()

	got, err := parseVars([]string{"author=Ömer", "date=auto:DD.MM.YYYY", "empty=", "author=Can"})
	if err != nil {
		t.Fatalf("parseVars() error = %v", err)
	}
	want := map[string]string{"author": "Can", "date": "auto:DD.MM.YYYY", "empty": ""}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("vars mismatch (-want +got):\n%s", diff)
	}

	for _, bad := range []string{"novalue", "=x", " =x"} {
		if _, err := parseVars([]string{bad}); !errors.Is(err, ErrInvalidVar) {
			t.Errorf("parseVars(%q) error = %v, want ErrInvalidVar", bad, err)
		}
	}

	if got, err := parseVars(nil); got != nil || err != nil {
		t.Errorf("parseVars(nil) = %v, %v", got, err)
	}
}

// ---------------------------------------------------------------------------
// TestValidateWorkers - Bounds
// ---------------------------------------------------------------------------

func TestValidateWorkers(t *testing.T) {
	t.Parallel()

	for _, n := range []int{0, 1, 64} {
		if err := validateWorkers(n); err != nil {
			t.Errorf("validateWorkers(%d) error = %v", n, err)
		}
	}
	for _, n := range []int{-1, 65} {
		if err := validateWorkers(n); !errors.Is(err, ErrInvalidWorkerCount) {
			t.Errorf("validateWorkers(%d) error = %v, want ErrInvalidWorkerCount", n, err)
		}
	}
}

func TestDefaultReportIsEmbedded(t *testing.T) {
	t.Parallel()

	if _, err := assets.LoadReport(defaultReport); err != nil {
		t.Errorf("LoadReport(%q) error = %v", defaultReport, err)
	}
}
