package sheets

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/xuri/excelize/v2"

	"studentportfolio/internal/dataprocessing"
)

// WorkbookSource reads category tabs from a local .xlsx snapshot of the
// spreadsheet. It serves offline deployments and tests; the workbook is
// re-opened per fetch so an updated snapshot is picked up without a restart.
type WorkbookSource struct {
	path   string
	logger *slog.Logger
}

// NewWorkbookSource builds a WorkbookSource over the workbook at path.
func NewWorkbookSource(path string, logger *slog.Logger) *WorkbookSource {
	return &WorkbookSource{
		path:   path,
		logger: logger.With(slog.String("component", "workbook_source")),
	}
}

// Fetch reads one sheet of the workbook as a Sheet. A tab missing from the
// workbook is an error; the caller decides whether that category is
// load-bearing.
func (w *WorkbookSource) Fetch(ctx context.Context, category Category) (*dataprocessing.Sheet, error) {
	f, err := excelize.OpenFile(w.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(string(category))
	if err != nil {
		return nil, fmt.Errorf("failed to read tab %s: %w", category, err)
	}

	w.logger.DebugContext(ctx, "read tab from workbook",
		slog.String("category", string(category)),
		slog.Int("rows", len(rows)))

	return dataprocessing.NewSheet(rows), nil
}
