package env

import (
	"fmt"
	"os"

	"github.com/forcekit/hubkit/internal/ports"
)

// Environ is the process-environment implementation of ports.Environ.
type Environ struct{}

var _ ports.Environ = Environ{}

func (Environ) Get(key string) string {
	return os.Getenv(key)
}

func (Environ) Set(key, value string) error {
	if err := os.Setenv(key, value); err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	return nil
}
