package hub

import (
	"testing"
	"time"

	"github.com/forcekit/hubkit/internal/application"
	"github.com/forcekit/hubkit/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestRenderShowsStrategyAndPresence(t *testing.T) {
	t.Parallel()

	out := Render(application.Report{
		Strategy:    domain.StrategyJWT,
		HubUsername: "hub@example.com",
		Instance:    "https://test.salesforce.com",
		HasJWTKey:   true,
	}, RenderOptions{})

	assert.Contains(t, out, "Hub Authentication")
	assert.Contains(t, out, "jwt")
	assert.Contains(t, out, "hub@example.com")
	assert.Contains(t, out, "https://test.salesforce.com")
	assert.Contains(t, out, "present")
	assert.Contains(t, out, "not set")
}

func TestRenderNeverShowsSecretValues(t *testing.T) {
	t.Parallel()

	out := Render(application.Report{
		Strategy:   domain.StrategyAuthURL,
		HasAuthURL: true,
	}, RenderOptions{})

	assert.NotContains(t, out, "force://")
	assert.Contains(t, out, "auth url")
}

func TestRenderWarnsWhenNothingConfigured(t *testing.T) {
	t.Parallel()

	out := Render(application.Report{Strategy: domain.StrategyNone}, RenderOptions{})
	assert.Contains(t, out, "no hub credentials configured")
}

func TestRenderShowsLastTransferAge(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)
	out := Render(application.Report{
		Strategy:    domain.StrategyAuthURL,
		HubUsername: "hub@example.com",
		HasAuthURL:  true,
		LastTransfer: &domain.TransferRecord{
			Username:   "hub@example.com",
			Method:     domain.StrategyAuthURL,
			CapturedAt: now.Add(-30 * time.Minute),
		},
	}, RenderOptions{Now: now})

	assert.Contains(t, out, "last transfer")
	assert.Contains(t, out, "30m ago")
}
