package http

import (
	"context"

	"studentportfolio/pkg/contracts/domain"
)

// PortfolioServiceInterface defines what the handlers need from the
// portfolio service. Narrow on purpose; tests mock it.
type PortfolioServiceInterface interface {
	GetPortfolio(ctx context.Context, admissionNo string) (*domain.Portfolio, error)
	GetRecentTests(ctx context.Context, admissionNo string) ([]domain.TestSummary, error)
}
