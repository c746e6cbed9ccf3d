// Package blobstore persists small state blobs in an embedded leveldb
// database, one key per snapshot.
package blobstore

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/niksmo/storefront/internal/core/port"
	"github.com/syndtr/goleveldb/leveldb"
)

var _ port.BlobStore = (*LevelDB)(nil)

type LevelDB struct {
	db *leveldb.DB
}

func New(path string) (*LevelDB, error) {
	const op = "blobstore.New"
	log := slog.With("op", op)

	db, err := leveldb.OpenFile(path, nil)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to open %q: %w", op, path, err)
	}
	log.Info("blob store is open", "path", path)
	return &LevelDB{db}, nil
}

func (s *LevelDB) Get(key string) ([]byte, bool, error) {
	const op = "LevelDB.Get"

	value, err := s.db.Get([]byte(key), nil)
	if err != nil {
		if errors.Is(err, leveldb.ErrNotFound) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("%s: %w", op, err)
	}
	return value, true, nil
}

func (s *LevelDB) Set(key string, value []byte) error {
	const op = "LevelDB.Set"

	if err := s.db.Put([]byte(key), value, nil); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (s *LevelDB) Remove(key string) error {
	const op = "LevelDB.Remove"

	if err := s.db.Delete([]byte(key), nil); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (s *LevelDB) Close() {
	const op = "LevelDB.Close"
	log := slog.With("op", op)

	log.Info("closing blob store...")
	if err := s.db.Close(); err != nil {
		log.Error("failed to close", "err", err)
		return
	}
	log.Info("blob store is closed")
}
