package services

import (
	"context"
	"time"
)

// HealthService reports process liveness. The pipeline holds no external
// dependencies, so health is a static OK plus uptime.
type HealthService struct {
	started time.Time
	version string
}

// NewHealthService creates a health service.
func NewHealthService(version string) *HealthService {
	return &HealthService{started: time.Now(), version: version}
}

// HealthStatus is the health check payload.
type HealthStatus struct {
	Status  string `json:"status"`
	Version string `json:"version"`
	Uptime  string `json:"uptime"`
}

// HealthCheck returns the current status.
func (s *HealthService) HealthCheck(ctx context.Context) HealthStatus {
	return HealthStatus{
		Status:  "healthy",
		Version: s.version,
		Uptime:  time.Since(s.started).Round(time.Second).String(),
	}
}
