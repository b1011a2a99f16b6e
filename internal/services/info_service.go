// filepath: internal/services/info_service.go
package services

import (
	"servicehub/internal/models"
	"time"
)

var _ InfoService = (*infoService)(nil)

type infoService struct {
	Version   string
	StartTime time.Time
	Backend   string
}

// NewInfoService creates a new InfoService.
func NewInfoService(version string, startTime time.Time, backend string) *infoService {
	return &infoService{
		Version:   version,
		StartTime: startTime,
		Backend:   backend,
	}
}

// GetInfo retrieves the application information.
func (s *infoService) GetInfo() models.Info {
	return models.Info{
		ServiceName: "servicehub",
		Version:     s.Version,
		UptimeSince: s.StartTime,
		Backend:     s.Backend,
	}
}
