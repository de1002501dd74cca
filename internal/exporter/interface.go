package exporter

import (
	"github.com/ThaiBaHoa/daily-nightshift-report/internal/config"
	"github.com/ThaiBaHoa/daily-nightshift-report/internal/model"
)

// Exporter is the unified interface for all report renditions. Export
// returns the path of the produced file.
type Exporter interface {
	Export(rows []model.Row, cols model.Columns, sel model.SessionSelection, cfg *config.Config) (string, error)
}
