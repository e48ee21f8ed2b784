package hints

import (
	"strings"
	"testing"
)

func TestForConfigNotFound(t *testing.T) {
	t.Parallel()

	t.Run("suggests user config path", func(t *testing.T) {
		t.Parallel()

		paths := []string{"docxgen.yaml", "docxgen.yml", "/home/u/.config/go-docxgen/docxgen.yaml"}
		hint := ForConfigNotFound(paths)

		if !strings.Contains(hint, "--config") {
			t.Error("expected --config suggestion")
		}
		if !strings.Contains(hint, "create /home/u/.config/go-docxgen/docxgen.yaml") {
			t.Errorf("expected user config path, got %q", hint)
		}
	})

	t.Run("no user path", func(t *testing.T) {
		t.Parallel()

		hint := ForConfigNotFound([]string{"docxgen.yaml"})
		if strings.Contains(hint, "create") {
			t.Errorf("unexpected create suggestion: %q", hint)
		}
	})
}

func TestForReportNotFound(t *testing.T) {
	t.Parallel()

	hint := ForReportNotFound([]string{"kisa", "novabank"})
	if !strings.Contains(hint, "available: kisa, novabank") {
		t.Errorf("hint = %q", hint)
	}
	if !strings.Contains(ForReportNotFound(nil), "--asset-path") {
		t.Error("expected --asset-path suggestion when nothing is available")
	}
}

func TestHintFormat(t *testing.T) {
	t.Parallel()

	for name, hint := range map[string]string{
		"output directory": ForOutputDirectory(),
		"undefined var":    ForUndefinedVar(),
		"output file":      ForOutputFile(),
		"output conflict":  ForOutputConflict(),
	} {
		if !strings.HasPrefix(hint, "\n  hint: ") {
			t.Errorf("%s: hint %q lacks the standard prefix", name, hint)
		}
	}
	if !strings.Contains(ForUndefinedVar(), "--var name=value") {
		t.Error("expected --var suggestion")
	}
	if format("") != "" || formatHints(nil) != "" {
		t.Error("empty hints must format to empty strings")
	}
}
