package http

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"

	apierrors "studentportfolio/internal/errors"
	"studentportfolio/internal/services"
)

// maxAdmissionNoLength bounds the path parameter; real admission numbers are
// short numeric strings.
const maxAdmissionNoLength = 20

// PortfolioHandler handles portfolio-related HTTP requests
type PortfolioHandler struct {
	service      PortfolioServiceInterface
	logger       *slog.Logger
	errorHandler *apierrors.ErrorHandler
}

// NewPortfolioHandler creates a new portfolio handler
func NewPortfolioHandler(service PortfolioServiceInterface, logger *slog.Logger, errorHandler *apierrors.ErrorHandler) *PortfolioHandler {
	return &PortfolioHandler{
		service:      service,
		logger:       logger.With(slog.String("component", "portfolio_handler")),
		errorHandler: errorHandler,
	}
}

// Routes returns the portfolio routes
func (h *PortfolioHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(render.SetContentType(render.ContentTypeJSON))

	r.Route("/{admissionNo}", func(r chi.Router) {
		r.Use(h.AdmissionCtx)
		r.Get("/", h.GetPortfolio)
		r.Get("/tests/recent", h.GetRecentTests)
	})

	return r
}

// AdmissionCtx middleware validates the admission number parameter
func (h *PortfolioHandler) AdmissionCtx(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		admissionNo := chi.URLParam(r, "admissionNo")
		if admissionNo == "" {
			h.errorHandler.HandleError(w, r, apierrors.NewAppValidationError("admission number is required"))
			return
		}
		if len(admissionNo) > maxAdmissionNoLength {
			h.errorHandler.HandleError(w, r, apierrors.NewAppValidationError("admission number is too long"))
			return
		}
		next.ServeHTTP(w, r)
	})
}

// GetPortfolio handles GET /api/portfolio/{admissionNo}
func (h *PortfolioHandler) GetPortfolio(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	admissionNo := chi.URLParam(r, "admissionNo")

	h.logger.InfoContext(ctx, "fetching portfolio",
		slog.String("admission_no", admissionNo),
		slog.String("request_id", middleware.GetReqID(ctx)),
	)

	portfolio, err := h.service.GetPortfolio(ctx, admissionNo)
	if err != nil {
		h.handleServiceError(w, r, err, admissionNo)
		return
	}

	render.JSON(w, r, portfolio)
}

// GetRecentTests handles GET /api/portfolio/{admissionNo}/tests/recent
func (h *PortfolioHandler) GetRecentTests(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	admissionNo := chi.URLParam(r, "admissionNo")

	tests, err := h.service.GetRecentTests(ctx, admissionNo)
	if err != nil {
		h.handleServiceError(w, r, err, admissionNo)
		return
	}

	render.JSON(w, r, map[string]interface{}{
		"admissionNo": admissionNo,
		"recentTests": tests,
	})
}

// handleServiceError maps service errors onto the error taxonomy before
// rendering.
func (h *PortfolioHandler) handleServiceError(w http.ResponseWriter, r *http.Request, err error, admissionNo string) {
	switch {
	case errors.Is(err, services.ErrStudentNotFound):
		h.errorHandler.HandleError(w, r, apierrors.NewNotFoundError("Student "+admissionNo))
	case errors.Is(err, services.ErrSheetFetch):
		h.errorHandler.HandleError(w, r, apierrors.NewNetworkError("sheet source unavailable", err))
	default:
		h.errorHandler.HandleError(w, r, err)
	}
}
