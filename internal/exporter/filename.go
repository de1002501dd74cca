package exporter

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/ThaiBaHoa/daily-nightshift-report/internal/config"
	"github.com/ThaiBaHoa/daily-nightshift-report/internal/model"
)

// stripDiacritics folds accented characters to their ASCII base so output
// filenames survive filesystems and share links that mangle non-ASCII
// names. đ/Đ do not decompose under NFD and are mapped by hand.
func stripDiacritics(s string) string {
	s = strings.NewReplacer("đ", "d", "Đ", "D").Replace(s)
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

// sanitizeSegment makes one filename segment safe: diacritics folded and
// path-hostile characters replaced.
func sanitizeSegment(s string) string {
	s = stripDiacritics(strings.TrimSpace(s))
	return strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', '*', '?', '"', '<', '>', '|':
			return '-'
		default:
			return r
		}
	}, s)
}

// buildFilename constructs the report filename: the fixed report-name
// prefix, the formatted date, the inspector and, when station support is
// enabled, the station, joined with underscores.
func buildFilename(sel model.SessionSelection, cfg *config.Config, ext string) string {
	parts := []string{
		sanitizeSegment(cfg.Output.ReportName),
		sel.Date.Format(model.FilenameDateLayout),
		sanitizeSegment(sel.Inspector),
	}
	if cfg.Session.EnableStation && sel.Station != "" {
		parts = append(parts, sanitizeSegment(sel.Station))
	}
	return strings.Join(parts, "_") + ext
}
