// Package filesystem provides the file layer dotmerge reads and writes
// configuration files through.
//
// Everything is an afero.Fs: the OS filesystem for real runs, a memory
// filesystem for tests, and a copy-on-write overlay for dry runs. The
// overlay keeps the disk untouched while letting later worklist steps
// observe the effects of earlier ones, so a dry run reports exactly the
// outcomes a real run would.
package filesystem
