package ports

import (
	"context"

	"github.com/forcekit/hubkit/internal/domain"
)

// JWTGrant carries everything the external CLI needs for a JWT login.
type JWTGrant struct {
	ClientID    string
	Username    string
	KeyFile     string
	InstanceURL string
}

// OrgCLI is the external authentication CLI. Implementations run it
// synchronously; a nonzero exit surfaces as *domain.ExternalToolError.
type OrgCLI interface {
	AuthorizeJWT(ctx context.Context, grant JWTGrant) error
	StoreAuthURL(ctx context.Context, urlFile string) error
	DisplayOrg(ctx context.Context, username string) (domain.OrgDisplay, error)
}
