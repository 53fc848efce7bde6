// Package store persists the error snapshot under the cache directory.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/cespare/xxhash/v2"
	"go.errdex.dev/errdex/internal/core/domain"
	"go.errdex.dev/errdex/internal/core/ports"
	"go.trai.ch/zerr"
)

// Store implements ports.SnapshotStore with two JSON files in the cache
// directory: the record sequence and its metadata. Metadata is written
// after the records, so a readable metadata file always describes a
// complete sequence.
type Store struct {
	dir string
}

var _ ports.SnapshotStore = (*Store)(nil)

// NewStore creates a snapshot store rooted at dir.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Load reads the full snapshot. domain.ErrCacheMiss reports that no
// snapshot has been written yet.
func (s *Store) Load() (*domain.Snapshot, error) {
	info, err := s.Stat()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.recordsPath())
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, domain.ErrCacheMiss
		}
		return nil, zerr.Wrap(err, domain.ErrSnapshotReadFailed.Error())
	}

	var records []domain.ErrorRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, zerr.Wrap(err, domain.ErrSnapshotDecodeFailed.Error())
	}

	return &domain.Snapshot{Records: records, Info: *info}, nil
}

// Stat reads only the snapshot metadata, leaving the record sequence
// untouched. The query path calls this on every invocation.
func (s *Store) Stat() (*domain.SnapshotInfo, error) {
	data, err := os.ReadFile(s.metaPath())
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, domain.ErrCacheMiss
		}
		return nil, zerr.Wrap(err, domain.ErrSnapshotReadFailed.Error())
	}

	var info domain.SnapshotInfo
	if err := json.Unmarshal(data, &info); err != nil {
		return nil, zerr.Wrap(err, domain.ErrSnapshotDecodeFailed.Error())
	}

	return &info, nil
}

// Save overwrites the snapshot wholesale, filling in Count and Digest of
// the given metadata. Both files land via rename, so concurrent readers
// observe either the previous snapshot or the new one, never a torn file.
func (s *Store) Save(records []domain.ErrorRecord, info domain.SnapshotInfo) (*domain.SnapshotInfo, error) {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrSnapshotEncodeFailed.Error())
	}

	info.Count = len(records)
	info.Digest = fmt.Sprintf("%016x", xxhash.Sum64(data))

	meta, err := json.MarshalIndent(info, "", "  ")
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrSnapshotEncodeFailed.Error())
	}

	if err := os.MkdirAll(s.dir, domain.DirPerm); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrCacheDirCreateFailed.Error()), "dir", s.dir)
	}

	if err := writeAtomic(s.recordsPath(), data); err != nil {
		return nil, zerr.Wrap(err, domain.ErrSnapshotWriteFailed.Error())
	}
	if err := writeAtomic(s.metaPath(), meta); err != nil {
		return nil, zerr.Wrap(err, domain.ErrSnapshotWriteFailed.Error())
	}

	return &info, nil
}

// Clear removes both snapshot files. Metadata goes first, so an
// interrupted clear never leaves metadata describing missing records.
// Clearing an empty cache is not an error.
func (s *Store) Clear() error {
	for _, path := range []string{s.metaPath(), s.recordsPath()} {
		if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return zerr.With(zerr.Wrap(err, domain.ErrSnapshotWriteFailed.Error()), "path", path)
		}
	}
	return nil
}

func (s *Store) recordsPath() string {
	return filepath.Join(s.dir, domain.SnapshotFileName)
}

func (s *Store) metaPath() string {
	return filepath.Join(s.dir, domain.SnapshotMetaFileName)
}

// writeAtomic lands data at path via a temp file in the same directory
// followed by a rename.
func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)

	tmpFile, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmpFile.Name()

	// Clean up temp file on error
	defer func() {
		if _, statErr := os.Stat(tmpName); statErr == nil {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmpFile.Write(data); err != nil {
		_ = tmpFile.Close()
		return err
	}

	if err := tmpFile.Close(); err != nil {
		return err
	}

	if err := os.Chmod(tmpName, domain.FilePerm); err != nil {
		return err
	}

	return os.Rename(tmpName, path)
}
