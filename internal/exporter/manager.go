package exporter

import "strings"

// GetExporters returns the exporters for the requested format names.
// Unknown names are ignored; duplicates collapse to one exporter.
func GetExporters(formats []string) []Exporter {
	exporters := []Exporter{}
	seen := make(map[string]bool)

	for _, fmtStr := range formats {
		fmtStr = strings.ToLower(strings.TrimSpace(fmtStr))
		if seen[fmtStr] {
			continue
		}
		seen[fmtStr] = true

		switch fmtStr {
		case "excel", "xlsx":
			exporters = append(exporters, NewExcelExporter())
		case "word", "docx":
			exporters = append(exporters, NewWordExporter())
		case "html":
			exporters = append(exporters, NewHTMLExporter())
		}
	}

	return exporters
}
