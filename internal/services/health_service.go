package services

import (
	"context"
	"log/slog"
	"runtime"
	"time"
)

// HealthService provides health check functionality
type HealthService struct {
	version    string
	sourceMode string
	startTime  time.Time
	logger     *slog.Logger
}

// HealthStatus represents the health status response
type HealthStatus struct {
	Status    string                 `json:"status"`
	Timestamp time.Time              `json:"timestamp"`
	Version   string                 `json:"version"`
	Runtime   map[string]interface{} `json:"runtime,omitempty"`
}

// VersionInfo represents build/version information
type VersionInfo struct {
	Version   string `json:"version"`
	GoVersion string `json:"goVersion"`
	OS        string `json:"os"`
	Arch      string `json:"arch"`
}

// NewHealthService creates a new health service
func NewHealthService(version, sourceMode string, logger *slog.Logger) *HealthService {
	if logger == nil {
		logger = slog.Default()
	}
	return &HealthService{
		version:    version,
		sourceMode: sourceMode,
		startTime:  time.Now(),
		logger:     logger.With(slog.String("component", "health_service")),
	}
}

// HealthCheck returns the overall service health
func (s *HealthService) HealthCheck(ctx context.Context) HealthStatus {
	return HealthStatus{
		Status:    "healthy",
		Timestamp: time.Now().UTC(),
		Version:   s.version,
		Runtime: map[string]interface{}{
			"uptime_seconds": time.Since(s.startTime).Seconds(),
			"goroutines":     runtime.NumGoroutine(),
			"source_mode":    s.sourceMode,
		},
	}
}

// LivenessCheck reports that the process is alive
func (s *HealthService) LivenessCheck(ctx context.Context) HealthStatus {
	return HealthStatus{
		Status:    "alive",
		Timestamp: time.Now().UTC(),
		Version:   s.version,
	}
}

// ReadinessCheck reports whether the service can take traffic
func (s *HealthService) ReadinessCheck(ctx context.Context) HealthStatus {
	return HealthStatus{
		Status:    "ready",
		Timestamp: time.Now().UTC(),
		Version:   s.version,
	}
}

// Version returns build/version information
func (s *HealthService) Version() VersionInfo {
	return VersionInfo{
		Version:   s.version,
		GoVersion: runtime.Version(),
		OS:        runtime.GOOS,
		Arch:      runtime.GOARCH,
	}
}
