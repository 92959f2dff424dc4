// Package fs provides filesystem abstractions for testability and fault injection.
//
//   - [FileSystem] abstracts the operations the local blob store needs
//     (open, rename, remove, stat, mkdir, readdir)
//   - [LocalFS] is the production implementation backed by package os
//   - [FaultyFS] injects errors to exercise failed or partial artifact writes
//
// Production code uses fs.Default:
//
//	f, err := fs.Default.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
//
// Tests inject faults by file name pattern:
//
//	ffs := fs.NewFaultyFS(nil)
//	ffs.AddRule("correction_", fs.Fault{FailOnRename: true, Times: 1})
//
// Operations take no context.Context: local file system calls are short and
// not interruptible at the syscall level.
package fs
