package sheets

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/time/rate"
	"google.golang.org/api/option"
	gsheets "google.golang.org/api/sheets/v4"

	"studentportfolio/internal/dataprocessing"
)

// GoogleSource fetches category tabs from a Google Sheets spreadsheet using
// an API key. Requests pass through a rate limiter so a burst of portfolio
// lookups stays inside the Sheets API quota.
type GoogleSource struct {
	service       *gsheets.Service
	spreadsheetID string
	limiter       *rate.Limiter
	logger        *slog.Logger
}

// NewGoogleSource builds a GoogleSource for one spreadsheet. rps bounds the
// sustained request rate against the Sheets API.
func NewGoogleSource(ctx context.Context, spreadsheetID, apiKey string, rps float64, logger *slog.Logger) (*GoogleSource, error) {
	service, err := gsheets.NewService(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}
	return &GoogleSource{
		service:       service,
		spreadsheetID: spreadsheetID,
		limiter:       rate.NewLimiter(rate.Limit(rps), int(rps)+1),
		logger:        logger.With(slog.String("component", "google_source")),
	}, nil
}

// Fetch reads one tab's full value range and returns it as a Sheet.
func (g *GoogleSource) Fetch(ctx context.Context, category Category) (*dataprocessing.Sheet, error) {
	if err := g.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait cancelled: %w", err)
	}

	resp, err := g.service.Spreadsheets.Values.Get(g.spreadsheetID, string(category)).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch tab %s: %w", category, err)
	}

	values := make([][]string, 0, len(resp.Values))
	for _, row := range resp.Values {
		cells := make([]string, 0, len(row))
		for _, cell := range row {
			cells = append(cells, fmt.Sprint(cell))
		}
		values = append(values, cells)
	}

	g.logger.DebugContext(ctx, "fetched tab",
		slog.String("category", string(category)),
		slog.Int("rows", len(values)))

	return dataprocessing.NewSheet(values), nil
}
