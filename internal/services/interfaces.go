// filepath: internal/services/interfaces.go
package services

import (
	"servicehub/internal/models"
)

// InfoService defines the interface for the info service.
type InfoService interface {
	GetInfo() models.Info
}
