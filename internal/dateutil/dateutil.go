// Package dateutil formats dates from user-friendly patterns with localized
// month names.
package dateutil

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var (
	// ErrInvalidDateFormat indicates an invalid date format string.
	ErrInvalidDateFormat = errors.New("invalid date format")
	// ErrUnknownLocale indicates a locale without month names.
	ErrUnknownLocale = errors.New("unknown locale")
)

// MaxDateFormatLength limits format string length to prevent abuse.
const MaxDateFormatLength = 50

// DefaultDateFormat is used when "auto" is specified without a format.
const DefaultDateFormat = "YYYY-MM-DD"

// Locale selects month names.
type Locale string

const (
	LocaleEnglish Locale = "en"
	LocaleTurkish Locale = "tr"
)

// DefaultLocale is used when no locale is given.
const DefaultLocale = LocaleEnglish

var monthNames = map[Locale][12]string{
	LocaleEnglish: {"January", "February", "March", "April", "May", "June",
		"July", "August", "September", "October", "November", "December"},
	LocaleTurkish: {"Ocak", "Şubat", "Mart", "Nisan", "Mayıs", "Haziran",
		"Temmuz", "Ağustos", "Eylül", "Ekim", "Kasım", "Aralık"},
}

// ParseLocale accepts "en", "tr" and region forms such as "tr-TR" or "tr_TR".
// An empty string yields DefaultLocale.
func ParseLocale(s string) (Locale, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return DefaultLocale, nil
	}
	if i := strings.IndexAny(s, "-_"); i > 0 {
		s = s[:i]
	}
	loc := Locale(s)
	if _, ok := monthNames[loc]; !ok {
		return "", fmt.Errorf("%w: %q (supported: en, tr)", ErrUnknownLocale, s)
	}
	return loc, nil
}

// month returns the full and abbreviated month name. Abbreviations are the
// first three letters, which is how both supported locales shorten them.
func (l Locale) month(m time.Month) (full, short string) {
	names, ok := monthNames[l]
	if !ok {
		names = monthNames[DefaultLocale]
	}
	full = names[m-1]
	r := []rune(full)
	return full, string(r[:min(3, len(r))])
}

type token int

const (
	tokYear4 token = iota
	tokMonthFull
	tokMonthShort
	tokYear2
	tokMonth2
	tokDay2
	tokMonth1
	tokDay1
)

// dateTokens is ordered by length descending for greedy matching.
var dateTokens = []struct {
	text string
	tok  token
}{
	{"YYYY", tokYear4},
	{"MMMM", tokMonthFull},
	{"MMM", tokMonthShort},
	{"YY", tokYear2},
	{"MM", tokMonth2},
	{"DD", tokDay2},
	{"M", tokMonth1},
	{"D", tokDay1},
}

// DatePresets provides named shortcuts for common date formats.
var DatePresets = map[string]string{
	"iso":      "YYYY-MM-DD",
	"european": "DD/MM/YYYY",
	"us":       "MM/DD/YYYY",
	"long":     "MMMM D, YYYY",
	"month":    "MMMM YYYY",
	"turkish":  "D MMMM YYYY",
}

// Format renders t using a pattern of tokens YYYY, YY, MMMM, MMM, MM, M, DD
// and D. Text inside brackets is copied literally: "[Date]: YYYY". Any other
// character is kept as is.
func Format(t time.Time, format string, loc Locale) (string, error) {
	if format == "" {
		return "", fmt.Errorf("%w: format cannot be empty", ErrInvalidDateFormat)
	}
	if len(format) > MaxDateFormatLength {
		return "", fmt.Errorf("%w: format exceeds %d characters", ErrInvalidDateFormat, MaxDateFormatLength)
	}

	var b strings.Builder
	b.Grow(len(format) + 10)

	for i := 0; i < len(format); {
		if format[i] == '[' {
			end := strings.IndexByte(format[i+1:], ']')
			if end == -1 {
				return "", fmt.Errorf("%w: unclosed bracket at position %d", ErrInvalidDateFormat, i)
			}
			b.WriteString(format[i+1 : i+1+end])
			i += end + 2
			continue
		}

		matched := false
		for _, dt := range dateTokens {
			if strings.HasPrefix(format[i:], dt.text) {
				writeToken(&b, t, dt.tok, loc)
				i += len(dt.text)
				matched = true
				break
			}
		}
		if !matched {
			b.WriteByte(format[i])
			i++
		}
	}
	return b.String(), nil
}

func writeToken(b *strings.Builder, t time.Time, tok token, loc Locale) {
	switch tok {
	case tokYear4:
		fmt.Fprintf(b, "%04d", t.Year())
	case tokYear2:
		fmt.Fprintf(b, "%02d", t.Year()%100)
	case tokMonthFull:
		full, _ := loc.month(t.Month())
		b.WriteString(full)
	case tokMonthShort:
		_, short := loc.month(t.Month())
		b.WriteString(short)
	case tokMonth2:
		fmt.Fprintf(b, "%02d", int(t.Month()))
	case tokMonth1:
		b.WriteString(strconv.Itoa(int(t.Month())))
	case tokDay2:
		fmt.Fprintf(b, "%02d", t.Day())
	case tokDay1:
		b.WriteString(strconv.Itoa(t.Day()))
	}
}

// Resolve handles "auto" and "auto:FORMAT" values:
//   - "auto" formats t with DefaultDateFormat
//   - "auto:FORMAT" formats t with a custom pattern ("auto:MMMM YYYY")
//   - "auto:preset" uses a named preset (see DatePresets)
//   - any other value is returned unchanged
func Resolve(value string, t time.Time, loc Locale) (string, error) {
	lower := strings.ToLower(value)

	if !strings.HasPrefix(lower, "auto") {
		return value, nil
	}
	if lower == "auto" {
		return Format(t, DefaultDateFormat, loc)
	}
	if !strings.HasPrefix(lower, "auto:") {
		return "", fmt.Errorf("%w: invalid auto syntax %q, use \"auto\" or \"auto:FORMAT\"", ErrInvalidDateFormat, value)
	}

	// Keep the original case: tokens are upper-case.
	pattern := value[len("auto:"):]
	if pattern == "" {
		return "", fmt.Errorf("%w: format cannot be empty after \"auto:\"", ErrInvalidDateFormat)
	}
	if preset, ok := DatePresets[strings.ToLower(pattern)]; ok {
		pattern = preset
	}
	return Format(t, pattern, loc)
}
