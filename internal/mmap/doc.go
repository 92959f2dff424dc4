// Package mmap maps cached correction artifacts into memory for reading.
//
//	m, err := mmap.Open(path)
//	if err != nil { ... }
//	defer m.Close()
//	_ = m.Advise(mmap.AccessSequential)
//	n, err := m.ReadAt(buf, 0)
//
// Unix platforms use mmap(2) and madvise(2). Windows uses
// CreateFileMapping/MapViewOfFile and ignores access hints.
//
// A Mapping is safe for concurrent reads. Close is idempotent; slices
// returned by Bytes must not be used after it.
package mmap
