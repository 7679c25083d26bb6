// Package filesystem provides implementations of the types.FS interface.
//
// Two implementations are available:
//   - NewOS: backed by the real filesystem via the os package
//   - NewAferoFS: backed by any afero.Fs, used for in-memory testing
package filesystem
