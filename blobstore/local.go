package blobstore

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/mr-c/raptor/internal/fs"
	"github.com/mr-c/raptor/internal/mmap"
)

// tmpMarker separates a blob name from its temporary-file suffix.
const tmpMarker = ".tmp-"

// LocalStore implements BlobStore on a local directory.
// Writes go to a unique temporary file which is synced and renamed into place.
type LocalStore struct {
	root string
	fs   fs.FileSystem
}

// LocalOption configures a LocalStore.
type LocalOption func(*LocalStore)

// WithFileSystem replaces the file system used for writes.
func WithFileSystem(fsys fs.FileSystem) LocalOption {
	return func(s *LocalStore) {
		s.fs = fsys
	}
}

// NewLocalStore creates a LocalStore rooted at dir. The directory is created
// on the first Put.
func NewLocalStore(root string, opts ...LocalOption) *LocalStore {
	s := &LocalStore{root: root, fs: fs.Default}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Root returns the directory holding the blobs.
func (s *LocalStore) Root() string { return s.root }

// Path returns the file path of a blob.
func (s *LocalStore) Path(name string) string { return filepath.Join(s.root, name) }

// Open maps a blob into memory for reading.
func (s *LocalStore) Open(ctx context.Context, name string) (Blob, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := ValidateName(name); err != nil {
		return nil, err
	}
	m, err := mmap.Open(s.Path(name))
	if err != nil {
		return nil, err
	}
	_ = m.Advise(mmap.AccessSequential)
	return &localBlob{m: m}, nil
}

// Put writes data atomically: a crash leaves either the old state or the
// complete new blob, plus at most an orphaned temporary file.
func (s *LocalStore) Put(ctx context.Context, name string, data []byte) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := ValidateName(name); err != nil {
		return err
	}
	if err := s.fs.MkdirAll(s.root, 0o755); err != nil {
		return fmt.Errorf("blobstore: create %s: %w", s.root, err)
	}

	f, err := s.fs.CreateTemp(s.root, name+tmpMarker+"*")
	if err != nil {
		return fmt.Errorf("blobstore: create temp for %s: %w", name, err)
	}
	tmp := f.Name()
	defer func() {
		if err != nil {
			_ = s.fs.Remove(tmp)
		}
	}()

	if err = f.Chmod(0o644); err != nil {
		_ = f.Close()
		return fmt.Errorf("blobstore: chmod temp for %s: %w", name, err)
	}
	if _, err = f.Write(data); err != nil {
		_ = f.Close()
		return fmt.Errorf("blobstore: write %s: %w", name, err)
	}
	if err = f.Sync(); err != nil {
		_ = f.Close()
		return fmt.Errorf("blobstore: sync %s: %w", name, err)
	}
	if err = f.Close(); err != nil {
		return fmt.Errorf("blobstore: close %s: %w", name, err)
	}
	if err = s.fs.Rename(tmp, s.Path(name)); err != nil {
		return fmt.Errorf("blobstore: publish %s: %w", name, err)
	}
	fs.SyncDir(s.fs, s.root)
	return nil
}

// Delete removes a blob.
func (s *LocalStore) Delete(ctx context.Context, name string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := ValidateName(name); err != nil {
		return err
	}
	if err := s.fs.Remove(s.Path(name)); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

// List returns the sorted names beginning with prefix. Temporary files of
// in-flight or abandoned writes are skipped.
func (s *LocalStore) List(ctx context.Context, prefix string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	entries, err := s.fs.ReadDir(s.root)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}

	var names []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || strings.Contains(name, tmpMarker) || !strings.HasPrefix(name, prefix) {
			continue
		}
		names = append(names, name)
	}
	slices.Sort(names)
	return names, nil
}

type localBlob struct {
	m *mmap.Mapping
}

func (b *localBlob) ReadAt(ctx context.Context, p []byte, off int64) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if len(p) == 0 {
		return 0, nil
	}
	return b.m.ReadAt(p, off)
}

func (b *localBlob) Close() error { return b.m.Close() }

func (b *localBlob) Size() int64 { return b.m.Size() }
