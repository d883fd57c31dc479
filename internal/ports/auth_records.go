package ports

import (
	"context"

	"github.com/forcekit/hubkit/internal/domain"
)

// AuthRecordStore reads the external CLI's per-username auth records
// and any private-key files they reference.
type AuthRecordStore interface {
	Read(ctx context.Context, username string) (domain.AuthFile, error)
	ReadPrivateKey(ctx context.Context, path string) (string, error)
}
