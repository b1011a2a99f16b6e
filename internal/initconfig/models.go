// filepath: internal/initconfig/models.go
package initconfig

import "servicehub/internal/models"

// SeedConfig is the top-level structure of a seed TOML file.
type SeedConfig struct {
	Services []models.Service `toml:"service"`
}
