//go:build !unix

package kstdio

import "os"

func stdTransports() (in, out, errw Transport) {
	return IOTransport{R: os.Stdin}, IOTransport{W: os.Stdout}, IOTransport{W: os.Stderr}
}
