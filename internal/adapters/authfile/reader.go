package authfile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/forcekit/hubkit/internal/domain"
	"github.com/forcekit/hubkit/internal/ports"
)

// Reader loads the external CLI's auth records from a fixed directory,
// conventionally ~/.sfdx.
type Reader struct {
	root string
}

var _ ports.AuthRecordStore = (*Reader)(nil)

func NewReader(root string) *Reader {
	return &Reader{root: filepath.Clean(root)}
}

func (r *Reader) Read(ctx context.Context, username string) (domain.AuthFile, error) {
	if err := ctx.Err(); err != nil {
		return domain.AuthFile{}, err
	}

	path, err := r.pathForUsername(username)
	if err != nil {
		return domain.AuthFile{}, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.AuthFile{}, fmt.Errorf("%w: %s", domain.ErrAuthFileNotFound, path)
		}
		return domain.AuthFile{}, fmt.Errorf("read auth file %q: %w", path, err)
	}

	var record domain.AuthFile
	if err := json.Unmarshal(data, &record); err != nil {
		return domain.AuthFile{}, fmt.Errorf("decode auth file %q: %w", path, err)
	}

	return record, nil
}

func (r *Reader) ReadPrivateKey(ctx context.Context, path string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read private key file %q: %w", path, err)
	}

	return string(data), nil
}

func (r *Reader) pathForUsername(username string) (string, error) {
	trimmed := strings.TrimSpace(username)
	if trimmed == "" {
		return "", errors.New("username is empty")
	}

	name := filepath.Clean(trimmed + ".json")
	if filepath.IsAbs(name) || strings.HasPrefix(name, "..") || strings.ContainsRune(name, os.PathSeparator) {
		return "", fmt.Errorf("invalid username %q", username)
	}

	return filepath.Join(r.root, name), nil
}
