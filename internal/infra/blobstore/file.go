package blobstore

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"netcard-manager/internal/infra"
)

// FileStore keeps the blob in <dir>/<key>.json and replaces it atomically
// with a temp file + rename.
type FileStore struct {
	path   string
	logger *slog.Logger
}

func NewFileStore(dir, key string, logger *slog.Logger) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, infra.WrapStoreErr(logger, infra.KindConnFailure, "create store directory", err)
	}
	return &FileStore{
		path:   filepath.Join(dir, key+".json"),
		logger: logger,
	}, nil
}

func (s *FileStore) Path() string {
	return s.path
}

func (s *FileStore) Load(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, infra.WrapStoreErr(s.logger, infra.KindReadFailure, "read snapshot file", err)
	}
	return data, nil
}

func (s *FileStore) Save(ctx context.Context, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return infra.WrapStoreErr(s.logger, infra.KindWriteFailure, "create temp snapshot file", err)
	}
	tmpName := tmp.Name()
	defer func() {
		// no-op after a successful rename
		_ = os.Remove(tmpName)
	}()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return infra.WrapStoreErr(s.logger, infra.KindWriteFailure, "write temp snapshot file", err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return infra.WrapStoreErr(s.logger, infra.KindWriteFailure, "sync temp snapshot file", err)
	}
	if err := tmp.Close(); err != nil {
		return infra.WrapStoreErr(s.logger, infra.KindWriteFailure, "close temp snapshot file", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		return infra.WrapStoreErr(s.logger, infra.KindWriteFailure, "replace snapshot file", err)
	}
	return nil
}
