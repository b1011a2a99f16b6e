// filepath: internal/api/handlers/utils.go
package handlers

import (
	"fmt"
	"strconv"
)

// parseServiceID parses a base-10 unsigned 32-bit service id.
func parseServiceID(s string) (uint32, error) {
	id, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid service id %q", s)
	}
	return uint32(id), nil
}
