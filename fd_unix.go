//go:build unix

package kstdio

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// Standard descriptors.
const (
	StdinFD  FDTransport = 0
	StdoutFD FDTransport = 1
	StderrFD FDTransport = 2
)

// FDTransport is a [Transport] over a raw file descriptor. Every call maps
// to exactly one system call; interrupted or short transfers are reported
// as they are and never retried.
type FDTransport int

// OpenFD opens path read-only and returns its descriptor.
func OpenFD(path string) (FDTransport, error) {
	fd, err := unix.Open(path, unix.O_RDONLY|unix.O_CLOEXEC, 0)
	if err != nil {
		return -1, fmt.Errorf("open %s: %w", path, err)
	}
	return FDTransport(fd), nil
}

// Read implements [Transport].
func (fd FDTransport) Read(p []byte) int {
	if fd < 0 {
		return -1
	}
	n, err := unix.Read(int(fd), p)
	if err != nil {
		return -1
	}
	return n
}

// Write implements [Transport].
func (fd FDTransport) Write(p []byte) int {
	if fd < 0 {
		return -1
	}
	n, err := unix.Write(int(fd), p)
	if err != nil {
		return -1
	}
	return n
}

// Seek implements [Seeker].
func (fd FDTransport) Seek(offset int64, whence int) int64 {
	if fd < 0 {
		return -1
	}
	off, err := unix.Seek(int(fd), offset, whence)
	if err != nil {
		return -1
	}
	return off
}

// Close implements [Closer].
func (fd FDTransport) Close() int {
	if fd < 0 {
		return -1
	}
	if err := unix.Close(int(fd)); err != nil {
		return -1
	}
	return 0
}

func stdTransports() (in, out, errw Transport) {
	return StdinFD, StdoutFD, StderrFD
}
