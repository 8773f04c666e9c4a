package repository

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ronin-planets/backend/internal/entity"
)

type fileLedgerRepository struct {
	dir  string
	name string
}

// NewFileLedgerRepository keeps the document as <dir>/<key>.json. The
// directory is created on the first save.
func NewFileLedgerRepository(dir, key string) *fileLedgerRepository {
	if key == "" {
		key = entity.LedgerKey
	}

	return &fileLedgerRepository{dir: dir, name: key + ".json"}
}

func (r *fileLedgerRepository) Path() string {
	return filepath.Join(r.dir, r.name)
}

func (r *fileLedgerRepository) Load(ctx context.Context) (*entity.Document, error) {
	data, err := os.ReadFile(r.Path())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return initDocument(ctx, r.Save)
		}
		return nil, fmt.Errorf("reading ledger: %w", err)
	}

	return decodeDocument(data)
}

// Save writes the document with a temp-file-then-rename so a failed write
// never leaves a truncated ledger behind.
func (r *fileLedgerRepository) Save(ctx context.Context, doc *entity.Document) error {
	if err := os.MkdirAll(r.dir, 0o700); err != nil {
		return fmt.Errorf("creating ledger dir: %w", err)
	}

	data, err := encodeDocument(doc)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(r.dir, ".ledger-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmp.Name()
	committed := false
	defer func() {
		if !committed {
			os.Remove(tmpPath)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmpPath, r.Path()); err != nil {
		return fmt.Errorf("renaming ledger file: %w", err)
	}
	committed = true

	return nil
}
