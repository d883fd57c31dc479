package journal

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/forcekit/hubkit/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordThenLastRoundTrips(t *testing.T) {
	t.Parallel()

	j := New(filepath.Join(t.TempDir(), ".hubkit", "transfers.toml"))
	capturedAt := time.Date(2026, 8, 30, 9, 30, 0, 0, time.UTC)

	require.NoError(t, j.Record(context.Background(), domain.TransferRecord{
		Username:   "hub@example.com",
		Method:     domain.StrategyJWT,
		CapturedAt: capturedAt,
	}))

	record, ok, err := j.Last(context.Background(), "hub@example.com")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, domain.StrategyJWT, record.Method)
	assert.True(t, record.CapturedAt.Equal(capturedAt))
}

func TestRecordReplacesEntryForSameUsername(t *testing.T) {
	t.Parallel()

	j := New(filepath.Join(t.TempDir(), "transfers.toml"))

	require.NoError(t, j.Record(context.Background(), domain.TransferRecord{Username: "hub@example.com", Method: domain.StrategyJWT}))
	require.NoError(t, j.Record(context.Background(), domain.TransferRecord{Username: "hub@example.com", Method: domain.StrategyAuthURL}))

	record, ok, err := j.Last(context.Background(), "hub@example.com")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, domain.StrategyAuthURL, record.Method)
}

func TestEntriesForDifferentUsernamesCoexist(t *testing.T) {
	t.Parallel()

	j := New(filepath.Join(t.TempDir(), "transfers.toml"))

	require.NoError(t, j.Record(context.Background(), domain.TransferRecord{Username: "a@example.com", Method: domain.StrategyJWT}))
	require.NoError(t, j.Record(context.Background(), domain.TransferRecord{Username: "b@example.com", Method: domain.StrategyAuthURL}))

	record, ok, err := j.Last(context.Background(), "a@example.com")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, domain.StrategyJWT, record.Method)
}

func TestLastWithoutJournalFileReportsNoEntry(t *testing.T) {
	t.Parallel()

	j := New(filepath.Join(t.TempDir(), "transfers.toml"))

	_, ok, err := j.Last(context.Background(), "hub@example.com")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRecordRejectsEmptyUsername(t *testing.T) {
	t.Parallel()

	j := New(filepath.Join(t.TempDir(), "transfers.toml"))
	require.Error(t, j.Record(context.Background(), domain.TransferRecord{Method: domain.StrategyJWT}))
}

func TestJournalFileIsPrivate(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "transfers.toml")
	require.NoError(t, New(path).Record(context.Background(), domain.TransferRecord{Username: "hub@example.com", Method: domain.StrategyJWT}))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}
