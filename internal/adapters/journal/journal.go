package journal

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/forcekit/hubkit/internal/domain"
	"github.com/forcekit/hubkit/internal/ports"
	toml "github.com/pelletier/go-toml/v2"
)

const (
	fileMode        = 0o600
	dirMode         = 0o700
	tempFilePattern = ".transfers-*.toml.tmp"
	schemaVersion   = 1
)

type entrySchema struct {
	Username   string    `toml:"username"`
	Method     string    `toml:"method"`
	CapturedAt time.Time `toml:"captured_at"`
}

type fileSchema struct {
	Version   int           `toml:"version"`
	Transfers []entrySchema `toml:"transfers"`
}

// Journal records the last auth transfer per hub username in a local
// toml file, conventionally ~/.hubkit/transfers.toml. Credentials
// never land here, only usernames and methods.
type Journal struct {
	path string
}

var _ ports.TransferJournal = (*Journal)(nil)

func New(path string) *Journal {
	return &Journal{path: filepath.Clean(path)}
}

func (j *Journal) Record(ctx context.Context, record domain.TransferRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if record.Username == "" {
		return errors.New("journal entry username is empty")
	}

	file, err := j.read()
	if err != nil {
		return err
	}

	encoded := entrySchema{
		Username:   record.Username,
		Method:     string(record.Method),
		CapturedAt: record.CapturedAt,
	}

	updated := false
	for i := range file.Transfers {
		if file.Transfers[i].Username == encoded.Username {
			file.Transfers[i] = encoded
			updated = true
			break
		}
	}
	if !updated {
		file.Transfers = append(file.Transfers, encoded)
	}

	return j.write(file)
}

// Last returns the recorded transfer for the username, or false when
// none has been recorded yet.
func (j *Journal) Last(ctx context.Context, username string) (domain.TransferRecord, bool, error) {
	if err := ctx.Err(); err != nil {
		return domain.TransferRecord{}, false, err
	}

	file, err := j.read()
	if err != nil {
		return domain.TransferRecord{}, false, err
	}

	for _, entry := range file.Transfers {
		if entry.Username == username {
			return domain.TransferRecord{
				Username:   entry.Username,
				Method:     domain.AuthStrategy(entry.Method),
				CapturedAt: entry.CapturedAt,
			}, true, nil
		}
	}

	return domain.TransferRecord{}, false, nil
}

func (j *Journal) read() (fileSchema, error) {
	data, err := os.ReadFile(j.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fileSchema{Version: schemaVersion}, nil
		}
		return fileSchema{}, fmt.Errorf("read transfer journal: %w", err)
	}

	var file fileSchema
	if err := toml.Unmarshal(data, &file); err != nil {
		return fileSchema{}, fmt.Errorf("decode transfer journal: %w", err)
	}
	if file.Version == 0 {
		file.Version = schemaVersion
	}

	return file, nil
}

func (j *Journal) write(file fileSchema) error {
	if err := os.MkdirAll(filepath.Dir(j.path), dirMode); err != nil {
		return fmt.Errorf("create transfer journal directory: %w", err)
	}

	data, err := toml.Marshal(file)
	if err != nil {
		return fmt.Errorf("encode transfer journal: %w", err)
	}

	tempFile, err := os.CreateTemp(filepath.Dir(j.path), tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp transfer journal: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp transfer journal: %w", err)
	}
	if err := tempFile.Chmod(fileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp transfer journal: %w", err)
	}
	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp transfer journal: %w", err)
	}

	if err := os.Rename(tempName, j.path); err != nil {
		return fmt.Errorf("replace transfer journal: %w", err)
	}
	cleanup = false

	if err := os.Chmod(j.path, fileMode); err != nil {
		return fmt.Errorf("chmod transfer journal: %w", err)
	}

	return nil
}
