package tablexport

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/afero"
	"github.com/xuri/excelize/v2"

	"github.com/alnah/go-docxgen"
)

func buildDocument(t *testing.T) *docxgen.Document {
	t.Helper()
	doc, err := docxgen.NewDocument()
	if err != nil {
		t.Fatal(err)
	}
	if _, err := doc.AddTableFromRows([][]string{{"Ders:", "NTP"}}); err != nil {
		t.Fatal(err)
	}
	if _, err := doc.AddHeading("9.2 Smoke Testler", 2); err != nil {
		t.Fatal(err)
	}
	smoke, err := doc.AddTableFromRows([][]string{
		{"Kategori", "Test Sayısı"},
		{"Export", "2"},
		{"TOPLAM", "20"},
	}, docxgen.WithHeaderRow())
	if err != nil {
		t.Fatal(err)
	}
	if err := smoke.SetRowBold(2); err != nil {
		t.Fatal(err)
	}
	if _, err := doc.AddTableFromRows([][]string{{"a"}}); err != nil {
		t.Fatal(err)
	}
	return doc
}

func openWorkbook(t *testing.T, data []byte) *excelize.File {
	t.Helper()
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("OpenReader() error = %v", err)
	}
	t.Cleanup(func() { _ = f.Close() })
	return f
}

func TestSheets(t *testing.T) {
	t.Parallel()

	var names []string
	for _, s := range Sheets(buildDocument(t)) {
		names = append(names, s.Name)
	}
	want := []string{"Table 1", "9.2 Smoke Testler", "9.2 Smoke Testler (2)"}
	if diff := cmp.Diff(want, names); diff != "" {
		t.Errorf("sheet names mismatch (-want +got):\n%s", diff)
	}
}

func TestSheetName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"Proje İstatistikleri:", "Proje İstatistikleri"},
		{"CI/CD [draft]?", "CICD draft"},
		{"'quoted'", "quoted"},
		{strings.Repeat("ş", 40), strings.Repeat("ş", 31)},
		{"   ", ""},
	}
	for _, tt := range tests {
		if got := sheetName(tt.in); got != tt.want {
			t.Errorf("sheetName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestUniqueName(t *testing.T) {
	t.Parallel()

	long := strings.Repeat("x", 31)
	used := map[string]bool{"report": true, "report (2)": true, long: true}

	if got := uniqueName("Report", used); got != "Report (3)" {
		t.Errorf("uniqueName(Report) = %q, want Report (3)", got)
	}
	if got := uniqueName(long, used); got != strings.Repeat("x", 27)+" (2)" {
		t.Errorf("uniqueName(long) = %q", got)
	}
	if got := uniqueName("fresh", used); got != "fresh" {
		t.Errorf("uniqueName(fresh) = %q", got)
	}
}

func TestWrite(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := Write(&buf, buildDocument(t)); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	f := openWorkbook(t, buf.Bytes())

	want := []string{"Table 1", "9.2 Smoke Testler", "9.2 Smoke Testler (2)"}
	if diff := cmp.Diff(want, f.GetSheetList()); diff != "" {
		t.Fatalf("GetSheetList() mismatch (-want +got):\n%s", diff)
	}

	rows, err := f.GetRows("9.2 Smoke Testler")
	if err != nil {
		t.Fatal(err)
	}
	wantRows := [][]string{{"Kategori", "Test Sayısı"}, {"Export", "2"}, {"TOPLAM", "20"}}
	if diff := cmp.Diff(wantRows, rows); diff != "" {
		t.Errorf("GetRows() mismatch (-want +got):\n%s", diff)
	}

	for cell, wantBold := range map[string]bool{"A1": true, "B1": true, "A2": false, "A3": true} {
		id, err := f.GetCellStyle("9.2 Smoke Testler", cell)
		if err != nil {
			t.Fatal(err)
		}
		style, err := f.GetStyle(id)
		if err != nil {
			t.Fatal(err)
		}
		gotBold := style.Font != nil && style.Font.Bold
		if gotBold != wantBold {
			t.Errorf("cell %s bold = %v, want %v", cell, gotBold, wantBold)
		}
	}
}

func TestWrite_NoTables(t *testing.T) {
	t.Parallel()

	doc, _ := docxgen.NewDocument()
	_, _ = doc.AddHeading("Empty", 1)

	var buf bytes.Buffer
	if err := Write(&buf, doc); !errors.Is(err, ErrNoTables) {
		t.Errorf("Write() error = %v, want ErrNoTables", err)
	}
	if buf.Len() != 0 {
		t.Error("Write() produced output without tables")
	}
}

func TestWriteFile(t *testing.T) {
	t.Parallel()

	t.Run("writes workbook", func(t *testing.T) {
		t.Parallel()

		fs := afero.NewMemMapFs()
		_ = fs.MkdirAll("/out", 0o755)
		if err := WriteFile(fs, "/out/tables.xlsx", buildDocument(t)); err != nil {
			t.Fatalf("WriteFile() error = %v", err)
		}
		data, err := afero.ReadFile(fs, "/out/tables.xlsx")
		if err != nil {
			t.Fatal(err)
		}
		if got := openWorkbook(t, data).GetSheetList(); len(got) != 3 {
			t.Errorf("sheets = %v, want 3", got)
		}
	})

	t.Run("missing directory", func(t *testing.T) {
		t.Parallel()

		err := WriteFile(afero.NewMemMapFs(), "/nope/tables.xlsx", buildDocument(t))
		if !errors.Is(err, ErrExport) {
			t.Errorf("WriteFile() error = %v, want ErrExport", err)
		}
	})
}
