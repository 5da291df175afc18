package http

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	apierrors "studentportfolio/internal/errors"
	"studentportfolio/internal/services"
	"studentportfolio/pkg/contracts/domain"
)

// MockPortfolioService is a mock implementation of PortfolioServiceInterface
type MockPortfolioService struct {
	mock.Mock
}

func (m *MockPortfolioService) GetPortfolio(ctx context.Context, admissionNo string) (*domain.Portfolio, error) {
	args := m.Called(admissionNo)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Portfolio), args.Error(1)
}

func (m *MockPortfolioService) GetRecentTests(ctx context.Context, admissionNo string) ([]domain.TestSummary, error) {
	args := m.Called(admissionNo)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TestSummary), args.Error(1)
}

func newTestRouter(service PortfolioServiceInterface) chi.Router {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	errorHandler := apierrors.NewErrorHandler(logger, false)
	handler := NewPortfolioHandler(service, logger, errorHandler)

	r := chi.NewRouter()
	r.Mount("/api/portfolio", handler.Routes())
	return r
}

func samplePortfolio() *domain.Portfolio {
	return &domain.Portfolio{
		StudentInfo: domain.Student{AdmissionNo: "10234", Name: "Asha Verma", Class: "7", Section: "B"},
		Subjects: []domain.SubjectProgress{
			{Subject: "Math", Progress: "On Track", Grade: "A"},
		},
		Activities:  []domain.Activity{},
		Assignments: []domain.Assignment{},
		Tests:       []domain.Test{},
		RecentTests: []domain.TestSummary{},
		Corrections: []domain.Correction{},
		Attendance:  []domain.AttendanceMonth{},
		Summary:     domain.Summary{TotalSubjects: 1, OverallAttendance: "0.0%"},
	}
}

func TestPortfolioHandler_GetPortfolio(t *testing.T) {
	tests := []struct {
		name           string
		admissionNo    string
		setupMock      func(*MockPortfolioService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:        "successful get portfolio",
			admissionNo: "10234",
			setupMock: func(m *MockPortfolioService) {
				m.On("GetPortfolio", "10234").Return(samplePortfolio(), nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"name":"Asha Verma"`,
		},
		{
			name:        "student not found",
			admissionNo: "99999",
			setupMock: func(m *MockPortfolioService) {
				m.On("GetPortfolio", "99999").Return(nil, services.ErrStudentNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `"Student 99999 not found"`,
		},
		{
			name:        "sheet source unavailable",
			admissionNo: "10234",
			setupMock: func(m *MockPortfolioService) {
				m.On("GetPortfolio", "10234").Return(nil, services.ErrSheetFetch)
			},
			expectedStatus: http.StatusBadGateway,
			expectedBody:   `"The data source could not be reached"`,
		},
		{
			name:        "internal error",
			admissionNo: "10234",
			setupMock: func(m *MockPortfolioService) {
				m.On("GetPortfolio", "10234").Return(nil, errors.New("boom"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `"Internal Server Error"`,
		},
		{
			name:           "admission number too long",
			admissionNo:    strings.Repeat("9", 30),
			setupMock:      func(m *MockPortfolioService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"admission number is too long"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockPortfolioService)
			tt.setupMock(mockService)

			router := newTestRouter(mockService)

			req := httptest.NewRequest("GET", "/api/portfolio/"+tt.admissionNo, nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.expectedBody)
			mockService.AssertExpectations(t)
		})
	}
}

func TestPortfolioHandler_GetRecentTests(t *testing.T) {
	tests := []struct {
		name           string
		setupMock      func(*MockPortfolioService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "successful get recent tests",
			setupMock: func(m *MockPortfolioService) {
				recent := []domain.TestSummary{
					{Subject: "Math", Name: "Unit Test", Date: "10-02-2025", Marks: "45/50", Percentage: 90},
				}
				m.On("GetRecentTests", "10234").Return(recent, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"marks":"45/50"`,
		},
		{
			name: "student not found",
			setupMock: func(m *MockPortfolioService) {
				m.On("GetRecentTests", "10234").Return(nil, services.ErrStudentNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `"Student 10234 not found"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockPortfolioService)
			tt.setupMock(mockService)

			router := newTestRouter(mockService)

			req := httptest.NewRequest("GET", "/api/portfolio/10234/tests/recent", nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.expectedBody)
			mockService.AssertExpectations(t)
		})
	}
}

func TestHealthHandler_Routes(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := services.NewHealthService("1.0.0-test", "workbook", logger)
	handler := NewHealthHandler(svc)

	r := chi.NewRouter()
	r.Mount("/api/health", handler.Routes())

	tests := []struct {
		path         string
		expectedBody string
	}{
		{"/api/health", `"status":"healthy"`},
		{"/api/health/live", `"status":"alive"`},
		{"/api/health/ready", `"status":"ready"`},
		{"/api/health/version", `"version":"1.0.0-test"`},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			req := httptest.NewRequest("GET", tt.path, nil)
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.expectedBody)
		})
	}
}
