package template

import (
	"fmt"
	"strings"

	"github.com/ThaiBaHoa/daily-nightshift-report/internal/config"
	"github.com/ThaiBaHoa/daily-nightshift-report/internal/model"
)

// NormalizeHeader derives the canonical ordered column set from the raw
// header row of a loaded template:
//
//  1. blank entries and the reserved identifier column are dropped;
//  2. synthetic columns absent from the remainder are appended in a fixed
//     checking order (STATION only when station support is enabled);
//  3. STT, Date and, when enabled, STATION are moved to the front,
//     preserving the relative order of everything else.
//
// Duplicate header names are NOT deduplicated; on projection the later
// duplicate wins. The operation is idempotent: normalizing an already
// canonical list returns it unchanged.
func NormalizeHeader(raw []string, cfg *config.Config) (model.Columns, error) {
	cols := make(model.Columns, 0, len(raw)+5)
	for _, name := range raw {
		name = strings.TrimSpace(name)
		if name == "" || name == cfg.Template.ReservedColumn {
			continue
		}
		cols = append(cols, name)
	}

	if len(cols) == 0 {
		return nil, &LoadError{Err: fmt.Errorf("header row has no usable columns")}
	}

	for _, synthetic := range syntheticColumns(cfg) {
		if !cols.Contains(synthetic) {
			cols = append(cols, synthetic)
		}
	}

	return frontLoad(cols, cfg), nil
}

// syntheticColumns returns the injection list in its fixed checking order.
func syntheticColumns(cfg *config.Config) []string {
	injected := []string{
		model.ColDateUpper,
		model.ColDate,
		model.ColInspector,
	}
	if cfg.Session.EnableStation {
		injected = append(injected, model.ColStation)
	}
	return append(injected, model.ColAttachment)
}

// frontLoad moves the fixed prefix columns to the front. Only the first
// occurrence of each prefix name moves; later duplicates stay in place.
func frontLoad(cols model.Columns, cfg *config.Config) model.Columns {
	prefix := []string{model.ColSTT, model.ColDate}
	if cfg.Session.EnableStation {
		prefix = append(prefix, model.ColStation)
	}

	front := make(model.Columns, 0, len(prefix))
	moved := make(map[string]bool, len(prefix))
	for _, name := range prefix {
		if cols.Contains(name) {
			front = append(front, name)
			moved[name] = true
		}
	}

	rest := make(model.Columns, 0, len(cols))
	for _, name := range cols {
		if moved[name] {
			moved[name] = false // first occurrence consumed, keep later duplicates
			continue
		}
		rest = append(rest, name)
	}

	return append(front, rest...)
}
