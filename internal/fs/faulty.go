package fs

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// ErrInjected is the default error returned by injected faults.
var ErrInjected = errors.New("injected fault error")

// Fault defines specific failure behavior.
type Fault struct {
	FailOnWrite    bool
	FailAfterBytes int64 // With FailOnWrite: bytes a single file may take before writes fail.
	FailOnOpen     bool
	FailOnSync     bool
	FailOnClose    bool
	FailOnRename   bool
	// Times limits how often the fault fires; 0 means always.
	Times int
	Err   error
}

// FaultyFS is a FileSystem wrapper that injects errors for files whose
// base name contains a rule's pattern.
type FaultyFS struct {
	FS FileSystem

	mu    sync.Mutex
	rules map[string]*rule
	fired int
}

type rule struct {
	fault Fault
	fired int
}

// NewFaultyFS wraps fs, or Default if nil.
func NewFaultyFS(fs FileSystem) *FaultyFS {
	if fs == nil {
		fs = Default
	}
	return &FaultyFS{FS: fs, rules: make(map[string]*rule)}
}

// AddRule adds a fault for names containing pattern.
func (f *FaultyFS) AddRule(pattern string, fault Fault) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if fault.Err == nil {
		fault.Err = ErrInjected
	}
	f.rules[pattern] = &rule{fault: fault}
}

// Fired returns how many faults have been injected so far.
func (f *FaultyFS) Fired() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.fired
}

// trigger returns the fault error if a rule matching name selects it.
func (f *FaultyFS) trigger(name string, sel func(Fault) bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for pattern, r := range f.rules {
		if !strings.Contains(filepath.Base(name), pattern) || !sel(r.fault) {
			continue
		}
		if r.fault.Times > 0 && r.fired >= r.fault.Times {
			continue
		}
		r.fired++
		f.fired++
		return r.fault.Err
	}
	return nil
}

func (f *FaultyFS) OpenFile(name string, flag int, perm os.FileMode) (File, error) {
	if err := f.trigger(name, func(x Fault) bool { return x.FailOnOpen }); err != nil {
		return nil, err
	}
	file, err := f.FS.OpenFile(name, flag, perm)
	if err != nil {
		return nil, err
	}
	return &faultyFile{File: file, fs: f}, nil
}

func (f *FaultyFS) CreateTemp(dir, pattern string) (File, error) {
	if err := f.trigger(pattern, func(x Fault) bool { return x.FailOnOpen }); err != nil {
		return nil, err
	}
	file, err := f.FS.CreateTemp(dir, pattern)
	if err != nil {
		return nil, err
	}
	return &faultyFile{File: file, fs: f}, nil
}

func (f *FaultyFS) Remove(name string) error { return f.FS.Remove(name) }

func (f *FaultyFS) Rename(oldpath, newpath string) error {
	if err := f.trigger(newpath, func(x Fault) bool { return x.FailOnRename }); err != nil {
		return err
	}
	return f.FS.Rename(oldpath, newpath)
}

func (f *FaultyFS) Stat(name string) (os.FileInfo, error) { return f.FS.Stat(name) }

func (f *FaultyFS) MkdirAll(path string, perm os.FileMode) error { return f.FS.MkdirAll(path, perm) }

func (f *FaultyFS) ReadDir(name string) ([]os.DirEntry, error) { return f.FS.ReadDir(name) }

type faultyFile struct {
	File
	fs      *FaultyFS
	written int64
}

func (ff *faultyFile) Write(p []byte) (int, error) {
	if err := ff.fs.trigger(ff.Name(), func(x Fault) bool {
		return x.FailOnWrite && ff.written+int64(len(p)) > x.FailAfterBytes
	}); err != nil {
		return 0, err
	}
	n, err := ff.File.Write(p)
	ff.written += int64(n)
	return n, err
}

func (ff *faultyFile) Sync() error {
	if err := ff.fs.trigger(ff.Name(), func(x Fault) bool { return x.FailOnSync }); err != nil {
		return err
	}
	return ff.File.Sync()
}

func (ff *faultyFile) Close() error {
	if err := ff.fs.trigger(ff.Name(), func(x Fault) bool { return x.FailOnClose }); err != nil {
		_ = ff.File.Close()
		return err
	}
	return ff.File.Close()
}
