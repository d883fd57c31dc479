package ports

import (
	"context"

	"github.com/forcekit/hubkit/internal/domain"
)

// TransferJournal keeps non-secret bookkeeping about auth transfers so
// `hubkit status` can show how a hub was last resolved.
type TransferJournal interface {
	Record(ctx context.Context, record domain.TransferRecord) error
	Last(ctx context.Context, username string) (domain.TransferRecord, bool, error)
}
