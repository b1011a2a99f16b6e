// filepath: internal/initconfig/init.go
package initconfig

import (
	"context"
	"fmt"
	"os"
	"servicehub/internal/logging"
	"servicehub/internal/models"

	"github.com/BurntSushi/toml"
)

// Seeder inserts catalog records into a persistent store.
type Seeder interface {
	Seed(ctx context.Context, services []models.Service) (int, error)
}

// DefaultServices is the catalog served when no seed file is configured.
func DefaultServices() []models.Service {
	return []models.Service{
		{ID: 1, Name: "Locate Us", Description: "Awesomeness is HERE!", Versions: 3},
		{ID: 2, Name: "Contact Us", Description: "How can I find you?!", Versions: 2},
	}
}

// Load reads the [[service]] records of a seed file. An empty path yields
// DefaultServices.
func Load(path string) ([]models.Service, error) {
	if path == "" {
		return DefaultServices(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file '%s': %w", path, err)
	}

	var seed SeedConfig
	if _, err := toml.Decode(string(data), &seed); err != nil {
		return nil, fmt.Errorf("failed to parse seed file '%s': %w", path, err)
	}
	if err := validate(seed.Services); err != nil {
		return nil, fmt.Errorf("invalid seed file '%s': %w", path, err)
	}

	logging.Log.Infof("Loaded %d service(s) from seed file %s.", len(seed.Services), path)
	return seed.Services, nil
}

// Run loads the seed file and writes its records through seeder.
func Run(ctx context.Context, seeder Seeder, path string) (int, error) {
	services, err := Load(path)
	if err != nil {
		return 0, err
	}
	n, err := seeder.Seed(ctx, services)
	if err != nil {
		return 0, fmt.Errorf("failed to seed services: %w", err)
	}
	logging.Log.Infof("Seeded %d service(s).", n)
	return n, nil
}

func validate(services []models.Service) error {
	seen := make(map[uint32]bool, len(services))
	for i, s := range services {
		if s.Name == "" {
			return fmt.Errorf("service #%d has an empty name", i+1)
		}
		if seen[s.ID] {
			return fmt.Errorf("duplicate service id %d", s.ID)
		}
		seen[s.ID] = true
	}
	return nil
}
